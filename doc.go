// Package kofi implements the textual codec for the KoFi configuration
// and data-interchange format: INI-style sectioning with JSON-like typed
// values.
//
// # Sections and properties
//
// A document is a sequence of lines. A line is either blank, a comment
// starting with ';', a bracketed section header, or a key=value
// property. Properties before the first section header belong to the
// global section.
//
//	; a comment
//	[server]
//	host = "localhost"
//	port = 8080
//
// Key and section lookups are case-insensitive and locale-independent.
//
// # Values
//
// A property's value is one of null, bool, int32, int64, float32,
// float64, char, string, array, or object:
//
//	count  = 3
//	big    = 3L
//	ratio  = 1.5f
//	ratio2 = 1.5d
//	name   = "hi\tthere"
//	letter = 'x'
//	list   = [1, 2, 3]
//	map    = {"a": 1, "b": 2}
//
// Numbers accept a signed "infinity" and "nan" in addition to ordinary
// decimal literals, and an optional precision suffix (L for a 64-bit
// integer, F/D for 32/64-bit floats). On a literal without a fraction or
// exponent, F still yields an int32 while D yields a float64.
//
// Arrays and objects may carry an optional leading "$name" type
// specifier, an opaque hint for typed reconstruction that this package
// does not interpret.
//
// # Errors
//
// Every parse failure is a *ParseError carrying a 1-based line and
// column. I/O failures are reported as *IOError, kept distinct from
// parse failures. Dispatch failures (no codec claims a path) are
// reported as *CodecUnavailableError.
package kofi
