package kofi

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var foldCaser = cases.Upper(language.Und)

// foldKey returns the locale-independent uppercase fold of s, used for all
// case-insensitive key/section comparisons.
func foldKey(s string) string {
	return foldCaser.String(s)
}

// Document is an ordered sequence of elements representing one textual
// source. Properties before any SectionHeader belong to the global
// section, addressed by the empty section name.
type Document struct {
	elements []Element
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Size returns the number of elements in the document.
func (d *Document) Size() int { return len(d.elements) }

// Elements returns the document's elements in line order. The returned
// slice must not be mutated by callers.
func (d *Document) Elements() []Element { return d.elements }

// AddElement inserts element at index (appending when index is out of
// [0, Size()]). The element is always inserted; a zero Element is a
// whitespace line.
func (d *Document) AddElement(index int, element Element) {
	if index < 0 || index > len(d.elements) {
		index = len(d.elements)
	}
	d.elements = append(d.elements, Element{})
	copy(d.elements[index+1:], d.elements[index:])
	d.elements[index] = element
}

// span is one contiguous run of elements belonging to a single physical
// SectionHeader occurrence (or to the global section, for which headerIdx
// is -1).
type span struct {
	headerIdx, begin, end int
}

// sectionSpans returns every physical span belonging to section
// (case-insensitive), in document order. A section name may be reopened
// with more than one SectionHeader; per the "one effective header" rule,
// all of its spans address the same logical section, with later spans
// taking precedence over earlier ones for same-keyed properties. The
// global section (empty name) always has exactly one span, running from
// the start of the document up to its first SectionHeader.
func (d *Document) sectionSpans(section string) []span {
	folded := foldKey(section)
	if folded == "" {
		end := len(d.elements)
		for i, e := range d.elements {
			if e.kind == ElementSectionHeader {
				end = i
				break
			}
		}
		return []span{{headerIdx: -1, begin: 0, end: end}}
	}
	var spans []span
	for i, e := range d.elements {
		if e.kind == ElementSectionHeader && foldKey(e.section) == folded {
			end := len(d.elements)
			for j := i + 1; j < len(d.elements); j++ {
				if d.elements[j].kind == ElementSectionHeader {
					end = j
					break
				}
			}
			spans = append(spans, span{headerIdx: i, begin: i + 1, end: end})
		}
	}
	return spans
}

// GetSections returns the names of all section headers, in document
// order, including duplicates (duplicate headers address the same
// logical section per AddProperty's merge rule, but the raw element list
// is not deduplicated by GetSections).
func (d *Document) GetSections() []string {
	var names []string
	for _, e := range d.elements {
		if e.kind == ElementSectionHeader {
			names = append(names, e.section)
		}
	}
	return names
}

// AddProperty ensures section exists (appending a fresh SectionHeader at
// the end if not), then inserts property before the section's next
// header, or replaces an existing property with a case-insensitively
// matching key in place. It returns the replaced property, if any.
func (d *Document) AddProperty(section, key string, value Value) (replaced Element, hadReplaced bool) {
	spans := d.sectionSpans(section)
	if len(spans) == 0 {
		d.elements = append(d.elements, sectionElement(section))
		spans = []span{{headerIdx: len(d.elements) - 1, begin: len(d.elements), end: len(d.elements)}}
	}

	folded := foldKey(key)
	for si := len(spans) - 1; si >= 0; si-- {
		s := spans[si]
		for i := s.begin; i < s.end; i++ {
			if d.elements[i].kind == ElementProperty && foldKey(d.elements[i].key) == folded {
				replaced = d.elements[i]
				d.elements[i] = propertyElement(key, value)
				return replaced, true
			}
		}
	}

	last := spans[len(spans)-1]
	d.AddElement(last.end, propertyElement(key, value))
	return Element{}, false
}

// RemoveProperty removes the property matching key (case-insensitively)
// within section's span, along with any immediately preceding comment
// lines attached to it. It reports whether a property was removed.
func (d *Document) RemoveProperty(section, key string) bool {
	spans := d.sectionSpans(section)
	if len(spans) == 0 {
		return false
	}
	folded := foldKey(key)
	for si := len(spans) - 1; si >= 0; si-- {
		s := spans[si]
		for i := s.begin; i < s.end; i++ {
			if d.elements[i].kind == ElementProperty && foldKey(d.elements[i].key) == folded {
				from := i
				for from > s.begin && d.elements[from-1].kind == ElementComment {
					from--
				}
				d.elements = append(d.elements[:from], d.elements[i+1:]...)
				return true
			}
		}
	}
	return false
}

// RemoveSection removes the section's header, all of its properties, and
// any comments immediately preceding the header. It reports whether the
// section was found.
func (d *Document) RemoveSection(section string) bool {
	spans := d.sectionSpans(section)
	if len(spans) == 0 || spans[0].headerIdx < 0 {
		return false
	}
	// Remove every reopened header's block, from the last to the first so
	// earlier indices stay valid while later ones are deleted.
	for si := len(spans) - 1; si >= 0; si-- {
		s := spans[si]
		from := s.headerIdx
		for from > 0 && d.elements[from-1].kind == ElementComment {
			from--
		}
		d.elements = append(d.elements[:from], d.elements[s.end:]...)
	}
	return true
}

// GetProperty returns the property element matching key within section's
// span (case-insensitive).
func (d *Document) GetProperty(section, key string) (Element, bool) {
	spans := d.sectionSpans(section)
	folded := foldKey(key)
	for si := len(spans) - 1; si >= 0; si-- {
		s := spans[si]
		for i := s.end - 1; i >= s.begin; i-- {
			if d.elements[i].kind == ElementProperty && foldKey(d.elements[i].key) == folded {
				return d.elements[i], true
			}
		}
	}
	return Element{}, false
}

// GetValue returns the value of the property matching key within
// section's span.
func (d *Document) GetValue(section, key string) (Value, bool) {
	e, ok := d.GetProperty(section, key)
	if !ok {
		return Value{}, false
	}
	return e.value, true
}

// Contains reports whether section contains a property matching key.
func (d *Document) Contains(section, key string) bool {
	_, ok := d.GetProperty(section, key)
	return ok
}

// GetValueOfKind returns the value of the property matching key within
// section's span, requiring its kind be exactly want or assignable to
// want per Value.IsAssignableTo.
func (d *Document) GetValueOfKind(section, key string, want Kind) (Value, bool) {
	v, ok := d.GetValue(section, key)
	if !ok || !v.IsAssignableTo(want) {
		return Value{}, false
	}
	return v, true
}

// GetPropertyCount returns the number of distinct (case-insensitively
// folded) property keys across section's span(s), counting a key
// reopened or replaced across multiple spans once.
func (d *Document) GetPropertyCount(section string) int {
	spans := d.sectionSpans(section)
	seen := make(map[string]struct{})
	for _, s := range spans {
		for i := s.begin; i < s.end; i++ {
			if d.elements[i].kind == ElementProperty {
				seen[foldKey(d.elements[i].key)] = struct{}{}
			}
		}
	}
	return len(seen)
}
