package kofi

// ElementKind identifies which of the four line-level shapes an Element
// holds.
type ElementKind int

const (
	ElementWhitespace ElementKind = iota
	ElementComment
	ElementSectionHeader
	ElementProperty
)

// Element is one line of a document: whitespace, a comment, a section
// header, or a key/value property.
type Element struct {
	kind    ElementKind
	comment string
	section string
	key     string
	value   Value
}

func (e Element) Kind() ElementKind { return e.kind }

// Comment returns the comment text after the leading ';', verbatim except
// that trailing whitespace of the line is removed.
func (e Element) Comment() string { return e.comment }

// SectionName returns the unescaped section name of a SectionHeader.
func (e Element) SectionName() string { return e.section }

// Key returns the unescaped, trimmed property key.
func (e Element) Key() string { return e.key }

// Value returns the property's value.
func (e Element) Value() Value { return e.value }

func whitespaceElement() Element { return Element{kind: ElementWhitespace} }

func commentElement(text string) Element {
	return Element{kind: ElementComment, comment: text}
}

func sectionElement(name string) Element {
	return Element{kind: ElementSectionHeader, section: name}
}

func propertyElement(key string, v Value) Element {
	return Element{kind: ElementProperty, key: key, value: v}
}

// parseLine classifies one line (1-based lineNo) and, for property lines,
// invokes the value scanner.
func parseLine(text string, lineNo int) (Element, error) {
	start, end := 0, len(text)
	for start < end && isWhitespace(text[start]) {
		start++
	}
	for end > start && isWhitespace(text[end-1]) {
		end--
	}
	if start >= end {
		return whitespaceElement(), nil
	}

	switch text[start] {
	case ';':
		return commentElement(text[start+1 : end]), nil
	case '[':
		if text[end-1] != ']' {
			return Element{}, newParseError(lineNo, end, ErrSectionBracketExpected, "section closing bracket ']' expected at column %d", end)
		}
		name := unescape(trim(text, start+1, end-1))
		return sectionElement(name), nil
	}

	eq := -1
	for i := start; i < end; i++ {
		if text[i] == '=' && !isEscaped(text, i, start-1) {
			eq = i
			break
		}
	}
	if eq < 0 {
		return Element{}, newParseError(lineNo, start+1, ErrInvalidElement, "invalid element at column %d", start+1)
	}
	keyEnd := eq
	for keyEnd > start && isWhitespace(text[keyEnd-1]) && !isEscaped(text, keyEnd-1, start-1) {
		keyEnd--
	}
	key := unescape(text[start:keyEnd])

	v, d, err := scanValue(text, eq+1, end, lineNo)
	if err != nil {
		return Element{}, err
	}
	if d.length == 0 {
		return Element{}, newParseError(lineNo, eq+2, ErrPropertyValueExpected, "property value expected at column %d", eq+2)
	}
	if eq+1+d.length != end {
		return Element{}, newParseError(lineNo, eq+1+d.length+1, ErrPropertyTrailingData, "property value has trailing characters at column %d", eq+1+d.length+1)
	}
	return propertyElement(key, v), nil
}
