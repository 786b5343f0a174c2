package kofi

import (
	"path/filepath"
	"testing"
)

// rawTextCodec is a second, minimal codec used only to exercise dispatch
// choosing among multiple registered codecs rather than degenerating to
// a single hard-coded check. It treats the whole file as one opaque
// global-section string property named "text".
type rawTextCodec struct{}

func (rawTextCodec) Extension() string { return ".txt" }

func (rawTextCodec) CanRead(path string) bool { return filepath.Ext(path) == ".txt" }

func (rawTextCodec) CanWrite(path string, _ *Document) bool { return filepath.Ext(path) == ".txt" }

func (rawTextCodec) Decode(text string) (*Document, error) {
	doc := NewDocument()
	doc.AddProperty("", "text", StringValue(text))
	return doc, nil
}

func (rawTextCodec) Encode(doc *Document) string {
	v, _ := doc.GetValue("", "text")
	s, _ := v.AsString()
	return s
}

func TestRegistryDispatchByExtension(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Register(KofiCodec{})
	r.Register(rawTextCodec{})

	doc, err := r.ReadString(".kofi", "a = 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.Contains("", "a") {
		t.Error("expected kofi codec to parse property")
	}

	doc2, err := r.ReadString(".txt", "hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := doc2.GetValue("", "text")
	if !ok {
		t.Fatal("expected text property")
	}
	if s, _ := v.AsString(); s != "hello world" {
		t.Errorf("got %q, want %q", s, "hello world")
	}
}

func TestRegistryUnavailable(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Register(KofiCodec{})
	_, err := r.ReadString(".xyz", "anything")
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*CodecUnavailableError); !ok {
		t.Fatalf("expected *CodecUnavailableError, got %T", err)
	}
}

func TestKofiCodecExtensionDispatch(t *testing.T) {
	t.Parallel()
	r := DefaultRegistry()
	doc, err := r.ReadString(".kofi", "[s]\nk = \"v\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := doc.GetValue("s", "k")
	if !ok {
		t.Fatal("expected property")
	}
	if s, _ := v.AsString(); s != "v" {
		t.Errorf("got %q, want %q", s, "v")
	}
}
