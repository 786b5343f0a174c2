package kofi

import (
	"os"
	"path/filepath"
)

// Codec knows how to read and write documents for a particular file
// extension and textual shape.
type Codec interface {
	// CanRead reports whether this codec should handle path for reading.
	CanRead(path string) bool
	// CanWrite reports whether this codec should handle path and doc for
	// writing.
	CanWrite(path string, doc *Document) bool
	// Decode parses text into a Document.
	Decode(text string) (*Document, error)
	// Encode renders doc to its textual form.
	Encode(doc *Document) string
	// Extension returns the codec's dotted file-name extension.
	Extension() string
}

// Registry maps file-name extensions to codecs and dispatches read/write
// requests by asking each registered codec, in registration order,
// whether it can handle a given path. The first affirmative wins.
type Registry struct {
	codecs []Codec
}

// NewRegistry returns an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds codec to the registry. Later registrations are tried
// after earlier ones.
func (r *Registry) Register(c Codec) {
	r.codecs = append(r.codecs, c)
}

// ByExtension returns the first registered codec whose Extension matches
// ext exactly (case-sensitive, leading '.').
func (r *Registry) ByExtension(ext string) (Codec, bool) {
	for _, c := range r.codecs {
		if c.Extension() == ext {
			return c, true
		}
	}
	return nil, false
}

func (r *Registry) findReader(path string) (Codec, error) {
	for _, c := range r.codecs {
		if c.CanRead(path) {
			return c, nil
		}
	}
	return nil, &CodecUnavailableError{Path: path}
}

func (r *Registry) findWriter(path string, doc *Document) (Codec, error) {
	for _, c := range r.codecs {
		if c.CanWrite(path, doc) {
			return c, nil
		}
	}
	return nil, &CodecUnavailableError{Path: path}
}

// ReadFile reads and decodes the document at path, dispatching to the
// first codec that claims it.
func (r *Registry) ReadFile(path string) (*Document, error) {
	c, err := r.findReader(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return c.Decode(string(data))
}

// WriteFile encodes doc and writes it to path, dispatching to the first
// codec that claims it.
func (r *Registry) WriteFile(path string, doc *Document) error {
	c, err := r.findWriter(path, doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(c.Encode(doc)), 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// ReadString decodes text using the codec registered for ext.
func (r *Registry) ReadString(ext, text string) (*Document, error) {
	c, ok := r.ByExtension(ext)
	if !ok {
		return nil, &CodecUnavailableError{Path: "*" + ext}
	}
	return c.Decode(text)
}

// WriteString encodes doc using the codec registered for ext.
func (r *Registry) WriteString(ext string, doc *Document) (string, error) {
	c, ok := r.ByExtension(ext)
	if !ok {
		return "", &CodecUnavailableError{Path: "*" + ext}
	}
	return c.Encode(doc), nil
}

// extensionOf returns the dotted extension of path, e.g. "a/b.kofi" ->
// ".kofi", matching filepath.Ext's case-sensitive semantics.
func extensionOf(path string) string {
	return filepath.Ext(path)
}

// KofiCodec implements Codec for the ".kofi" textual grammar described
// in this package's doc comment.
type KofiCodec struct{}

func (KofiCodec) Extension() string { return ".kofi" }

func (KofiCodec) CanRead(path string) bool { return extensionOf(path) == ".kofi" }

func (KofiCodec) CanWrite(path string, _ *Document) bool { return extensionOf(path) == ".kofi" }

func (KofiCodec) Decode(text string) (*Document, error) { return ParseDocument(text) }

func (KofiCodec) Encode(doc *Document) string { return Serialize(doc) }

// DefaultRegistry returns a Registry with the standard KofiCodec
// registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KofiCodec{})
	return r
}
