package kofi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueEqual(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc string
		a, b Value
		want bool
	}{
		{"null==null", NullValue(), NullValue(), true},
		{"bool same", BoolValue(true), BoolValue(true), true},
		{"bool diff", BoolValue(true), BoolValue(false), false},
		{"int32 same", Int32Value(5), Int32Value(5), true},
		{"int32 vs int64", Int32Value(5), Int64Value(5), false},
		{"float64 nan equal", Float64Value(nan64()), Float64Value(nan64()), true},
		{"string same", StringValue("a"), StringValue("a"), true},
		{"char same", CharValue('x'), CharValue('x'), true},
	} {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal() = %v, want %v", got, tc.want)
			}
		})
	}
}

func nan64() float64 {
	var z float64
	return z / z
}

func TestValueText(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc string
		v    Value
		want string
	}{
		{"null", NullValue(), "null"},
		{"true", BoolValue(true), "true"},
		{"false", BoolValue(false), "false"},
		{"int32", Int32Value(42), "42"},
		{"int64", Int64Value(42), "42L"},
		{"float32", Float32Value(1.5), "1.5f"},
		{"float64", Float64Value(1.5), "1.5d"},
		{"string", StringValue(`a"b`), `"a\"b"`},
		{"char printable", CharValue('x'), "'x'"},
		{"char control", CharValue(0x01), "'\\u0001'"},
	} {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := tc.v.Text(); got != tc.want {
				t.Errorf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValueStructuralDiffNestedArray(t *testing.T) {
	t.Parallel()
	doc, err := ParseDocument("a = [1, [2, 3], \"x\"]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := doc.GetValue("", "a")

	inner := NewArray(Int32Value(2), Int32Value(3))
	want := ArrayValue(NewArray(Int32Value(1), ArrayValue(inner), StringValue("x")))

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Value{}, Array{}, Object{}, objectEntry{})); diff != "" {
		t.Errorf("parsed array mismatch (-want +got):\n%s", diff)
	}
}

func TestValueIsAssignableTo(t *testing.T) {
	t.Parallel()
	if !Int32Value(1).IsAssignableTo(KindFloat64) {
		t.Error("int32 should be assignable to float64")
	}
	if !Int32Value(1).IsAssignableTo(KindFloat32) {
		t.Error("int32 should be assignable to float32")
	}
	if Float32Value(1).IsAssignableTo(KindInt32) {
		t.Error("float32 should not be assignable to int32")
	}
	if !Int32Value(1).IsAssignableTo(KindInt64) {
		t.Error("int32 should be assignable to int64")
	}
}
