package kofi

import "strings"

// keyEscapeExtra is the set of additional code points escaped anywhere in
// property keys beyond the baseline control-character table: '=' (the
// property separator). A leading ';' or '[' (which would otherwise be read
// back as a comment or section header) is escaped by escapeKey itself.
const keyEscapeExtra = "="

// Serialize renders doc back to its canonical textual form: one element
// per line, separated by a single '\n', with no trailing newline after
// the last element.
func Serialize(doc *Document) string {
	var b strings.Builder
	elements := doc.Elements()
	for i, e := range elements {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(serializeElement(e))
	}
	return b.String()
}

func serializeElement(e Element) string {
	switch e.kind {
	case ElementWhitespace:
		return ""
	case ElementComment:
		return ";" + e.comment
	case ElementSectionHeader:
		return "[" + escape(e.section, "]") + "]"
	case ElementProperty:
		return escapeKey(e.key) + "=" + e.value.Text()
	}
	return ""
}

// escapeKey escapes a property key so that on re-read it is recognized
// as a key rather than a comment/section marker, and so that any
// leading/trailing whitespace within it survives trimming.
func escapeKey(key string) string {
	escaped := escape(key, keyEscapeExtra)
	if escaped == "" {
		return escaped
	}
	var b strings.Builder
	for i := 0; i < len(escaped); i++ {
		if i == 0 && (escaped[0] == ';' || escaped[0] == '[') {
			b.WriteByte('\\')
		}
		if (i == 0 || i == len(escaped)-1) && isWhitespace(escaped[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(escaped[i])
	}
	return b.String()
}
