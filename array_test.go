package kofi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArrayText(t *testing.T) {
	t.Parallel()
	a := NewArray(Int32Value(1), Int32Value(2), Int32Value(3))
	want := "[ 1, 2, 3 ]"
	if got := a.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestArrayTextWithTypeSpec(t *testing.T) {
	t.Parallel()
	a := NewArray(Int32Value(1))
	a.SetTypeSpec("int")
	want := "[ $int, 1 ]"
	if got := a.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestArrayEqual(t *testing.T) {
	t.Parallel()
	a := NewArray(Int32Value(1), StringValue("x"))
	b := NewArray(Int32Value(1), StringValue("x"))
	c := NewArray(StringValue("x"), Int32Value(1))
	if !a.Equal(b) {
		t.Error("expected equal arrays to be equal")
	}
	if a.Equal(c) {
		t.Error("arrays with different order should not be equal")
	}
}

func TestArrayStructuralDiff(t *testing.T) {
	t.Parallel()
	a := NewArray(Int32Value(1), StringValue("x"))
	a.SetTypeSpec("mixed")
	b := NewArray(Int32Value(1), StringValue("x"))
	b.SetTypeSpec("mixed")
	if diff := cmp.Diff(a, b, cmp.AllowUnexported(Array{}, Value{}, Object{}, objectEntry{})); diff != "" {
		t.Errorf("Array mismatch (-want +got):\n%s", diff)
	}
}

func TestArrayLenAndAt(t *testing.T) {
	t.Parallel()
	a := NewArray(Int32Value(7))
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.Len())
	}
	if v, _ := a.At(0).AsInt32(); v != 7 {
		t.Errorf("At(0) = %d, want 7", v)
	}
}
