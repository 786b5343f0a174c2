package kofi

import (
	"math"
	"strconv"
)

// descriptor is the transient result of scanning a value region: a kind
// tag, the bounds of the value text itself, and length — the number of
// bytes consumed from the region's start, including trailing whitespace
// belonging to the value's slot. Callers resume scanning at start+length.
type descriptor struct {
	kind       Kind
	start, end int
	length     int
	arrType    string
	hasArrType bool
}

// scanValue recognizes a value token in s[start:end). When the region is
// empty or whitespace-only (no value present) it returns a zero Value, a
// descriptor with length 0, and a nil error.
func scanValue(s string, start, end, line int) (Value, descriptor, error) {
	i := start
	for i < end && isWhitespace(s[i]) {
		i++
	}
	if i >= end {
		return Value{}, descriptor{}, nil
	}

	c := s[i]
	switch {
	case c == 'n' || c == 'N':
		if matchesCI(s, i, "NULL") {
			return finishSimple(s, start, end, i+4, NullValue(), line)
		}
		if matchesCI(s, i, "NAN") {
			return finishSimple(s, start, end, i+3, Float32Value(float32NaN()), line)
		}
		return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidValue, "invalid value at column %d", i+1)
	case c == 't' || c == 'T':
		if matchesCI(s, i, "TRUE") {
			return finishSimple(s, start, end, i+4, BoolValue(true), line)
		}
		return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidBoolean, "invalid boolean at column %d", i+1)
	case c == 'f' || c == 'F':
		if matchesCI(s, i, "FALSE") {
			return finishSimple(s, start, end, i+5, BoolValue(false), line)
		}
		return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidBoolean, "invalid boolean at column %d", i+1)
	case c == 'i' || c == 'I':
		if matchesCI(s, i, "INFINITY") {
			return finishSimple(s, start, end, i+8, Float32Value(float32Inf(1)), line)
		}
		return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidValue, "invalid value at column %d", i+1)
	case c == '"':
		return scanString(s, start, end, i, line)
	case c == '\'':
		return scanChar(s, start, end, i, line)
	case isDigit(c) || c == '+' || c == '-' || c == '.':
		return scanNumber(s, start, end, i, line)
	case c == '[':
		return scanArray(s, start, end, i, line)
	case c == '{':
		return scanObject(s, start, end, i, line)
	default:
		return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidValue, "invalid value at column %d", i+1)
	}
}

func float32NaN() float32   { var z float32; return z / z }
func float32Inf(sign int) float32 {
	return float32(math.Inf(sign))
}

// finishSimple consumes trailing whitespace after a fixed-width literal
// ending at valEnd and returns the completed descriptor/value.
func finishSimple(s string, start, end, valEnd int, v Value, line int) (Value, descriptor, error) {
	j := valEnd
	for j < end && isWhitespace(s[j]) {
		j++
	}
	return v, descriptor{kind: v.Kind(), start: start, end: valEnd, length: j - start}, nil
}

// scanString scans a double-quoted string starting at quoteIdx.
func scanString(s string, start, end, quoteIdx, line int) (Value, descriptor, error) {
	i := quoteIdx + 1
	for i < end {
		if s[i] == '"' && !isEscaped(s, i, quoteIdx) {
			text := s[quoteIdx+1 : i]
			j := i + 1
			for j < end && isWhitespace(s[j]) {
				j++
			}
			return StringValue(unescape(text)), descriptor{kind: KindString, start: quoteIdx, end: i + 1, length: j - start}, nil
		}
		i++
	}
	return Value{}, descriptor{}, newParseError(line, quoteIdx+1, ErrUnterminatedString, "unterminated string starting at column %d", quoteIdx+1)
}

// scanChar scans a character literal: 'X', '\X', or '\uXXXX'.
func scanChar(s string, start, end, quoteIdx, line int) (Value, descriptor, error) {
	i := quoteIdx + 1
	if i >= end {
		return Value{}, descriptor{}, newParseError(line, quoteIdx+1, ErrInvalidChar, "invalid char literal at column %d", quoteIdx+1)
	}
	var r rune
	var closeIdx int
	if s[i] == '\\' {
		if i+1 >= end {
			return Value{}, descriptor{}, newParseError(line, quoteIdx+1, ErrInvalidChar, "invalid char literal at column %d", quoteIdx+1)
		}
		if s[i+1] == 'u' {
			if i+6 > end || !isHexDigit(s[i+2]) || !isHexDigit(s[i+3]) || !isHexDigit(s[i+4]) || !isHexDigit(s[i+5]) {
				return Value{}, descriptor{}, newParseError(line, quoteIdx+1, ErrInvalidCodepoint, "invalid unicode escape at column %d", quoteIdx+1)
			}
			v := hexVal(s[i+2])<<12 | hexVal(s[i+3])<<8 | hexVal(s[i+4])<<4 | hexVal(s[i+5])
			r = rune(v)
			closeIdx = i + 6
		} else {
			esc := unescape(s[i : i+2])
			rs := []rune(esc)
			if len(rs) != 1 {
				return Value{}, descriptor{}, newParseError(line, quoteIdx+1, ErrInvalidChar, "invalid char escape at column %d", quoteIdx+1)
			}
			r = rs[0]
			closeIdx = i + 2
		}
	} else {
		r = rune(s[i])
		closeIdx = i + 1
	}
	if closeIdx >= end || s[closeIdx] != '\'' {
		return Value{}, descriptor{}, newParseError(line, quoteIdx+1, ErrInvalidChar, "invalid char literal at column %d", quoteIdx+1)
	}
	j := closeIdx + 1
	for j < end && isWhitespace(s[j]) {
		j++
	}
	return CharValue(r), descriptor{kind: KindChar, start: quoteIdx, end: closeIdx + 1, length: j - start}, nil
}

type fractionState int

const (
	fractionNone fractionState = iota
	fractionSeparatorSeen
	fractionDigitsAfter
)

type exponentState int

const (
	exponentNone exponentState = iota
	exponentPrefix
	exponentSigned
	exponentDigits
)

type precisionState int

const (
	precisionNone precisionState = iota
	precisionP32
	precisionP64
)

// scanNumber implements the §4.B number state machine.
func scanNumber(s string, start, end, i0, line int) (Value, descriptor, error) {
	i := i0
	litStart := i
	hasDigits := false
	fraction := fractionNone
	exponent := exponentNone
	precision := precisionNone
	sign := 1
	first := true
	precisionIdx := -1
	precisionFromD := false

	for i < end {
		c := s[i]
		switch {
		case isDigit(c):
			hasDigits = true
			if exponent == exponentPrefix || exponent == exponentSigned {
				exponent = exponentDigits
			}
			if fraction == fractionSeparatorSeen {
				fraction = fractionDigitsAfter
			}
			i++
		case c == '.':
			if fraction != fractionNone || exponent != exponentNone {
				return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidNumber, "invalid number at column %d", i+1)
			}
			fraction = fractionSeparatorSeen
			i++
		case c == '+' || c == '-':
			if first {
				if c == '-' {
					sign = -1
				}
				i++
			} else if exponent == exponentPrefix {
				exponent = exponentSigned
				i++
			} else {
				goto done
			}
		case c == 'e' || c == 'E':
			if !hasDigits || exponent != exponentNone {
				return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidNumber, "invalid number at column %d", i+1)
			}
			exponent = exponentPrefix
			i++
		case c == 'L' || c == 'l':
			if !hasDigits || fraction != fractionNone || exponent != exponentNone || precision != precisionNone {
				return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidNumber, "invalid number at column %d", i+1)
			}
			precision = precisionP64
			precisionIdx = i
			i++
		case c == 'D' || c == 'd':
			if !hasDigits || precision != precisionNone {
				return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidNumber, "invalid number at column %d", i+1)
			}
			precision = precisionP64
			precisionIdx = i
			precisionFromD = true
			i++
		case c == 'F' || c == 'f':
			if !hasDigits || precision != precisionNone {
				return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidNumber, "invalid number at column %d", i+1)
			}
			precision = precisionP32
			precisionIdx = i
			i++
		case (c == 'i' || c == 'I') && !hasDigits && fraction == fractionNone && matchesCI(s, i, "INFINITY"):
			i += 8
			v := float32Inf(sign)
			j := i
			for j < end && isWhitespace(s[j]) {
				j++
			}
			return Float32Value(v), descriptor{kind: KindFloat32, start: litStart, end: i, length: j - start}, nil
		case isWhitespace(c) || c == ',' || c == ']' || c == '}':
			goto done
		default:
			return Value{}, descriptor{}, newParseError(line, i+1, ErrInvalidNumber, "invalid number at column %d", i+1)
		}
		first = false
	}
done:
	if !hasDigits {
		return Value{}, descriptor{}, newParseError(line, litStart+1, ErrInvalidNumber, "invalid number at column %d", litStart+1)
	}
	if exponent == exponentPrefix || exponent == exponentSigned {
		return Value{}, descriptor{}, newParseError(line, litStart+1, ErrInvalidNumber, "invalid number at column %d", litStart+1)
	}

	litEnd := i
	numText := s[litStart:litEnd]
	if precisionIdx >= 0 {
		numText = s[litStart:precisionIdx]
	}

	hasFraction := fraction == fractionSeparatorSeen || fraction == fractionDigitsAfter
	hasExponent := exponent == exponentDigits

	var v Value
	var kind Kind
	switch {
	case !hasFraction && !hasExponent && precision == precisionNone:
		n, err := strconv.ParseInt(numText, 10, 32)
		if err != nil {
			return Value{}, descriptor{}, newParseError(line, litStart+1, ErrInvalidNumber, "invalid number %q: %s", numText, err)
		}
		v, kind = Int32Value(int32(n)), KindInt32
	case !hasFraction && !hasExponent && precision == precisionP32:
		n, err := strconv.ParseInt(numText, 10, 32)
		if err != nil {
			return Value{}, descriptor{}, newParseError(line, litStart+1, ErrInvalidNumber, "invalid number %q: %s", numText, err)
		}
		v, kind = Int32Value(int32(n)), KindInt32
	case !hasFraction && !hasExponent && precision == precisionP64 && !precisionFromD:
		n, err := strconv.ParseInt(numText, 10, 64)
		if err != nil {
			return Value{}, descriptor{}, newParseError(line, litStart+1, ErrInvalidNumber, "invalid number %q: %s", numText, err)
		}
		v, kind = Int64Value(n), KindInt64
	case !hasFraction && !hasExponent && precision == precisionP64 && precisionFromD:
		// Open question (see DESIGN.md): a bare "D" suffix with no
		// fraction or exponent still yields Float64, unlike "L".
		n, err := strconv.ParseFloat(numText, 64)
		if err != nil {
			return Value{}, descriptor{}, newParseError(line, litStart+1, ErrInvalidNumber, "invalid number %q: %s", numText, err)
		}
		v, kind = Float64Value(n), KindFloat64
	case precision == precisionP32:
		n, err := strconv.ParseFloat(numText, 32)
		if err != nil {
			return Value{}, descriptor{}, newParseError(line, litStart+1, ErrInvalidNumber, "invalid number %q: %s", numText, err)
		}
		v, kind = Float32Value(float32(n)), KindFloat32
	default:
		n, err := strconv.ParseFloat(numText, 64)
		if err != nil {
			return Value{}, descriptor{}, newParseError(line, litStart+1, ErrInvalidNumber, "invalid number %q: %s", numText, err)
		}
		v, kind = Float64Value(n), KindFloat64
	}

	j := litEnd
	for j < end && isWhitespace(s[j]) {
		j++
	}
	return v, descriptor{kind: kind, start: litStart, end: litEnd, length: j - start}, nil
}

// findMatchingBracket locates the close bracket matching the open bracket
// at openIdx, tracking nesting depth while ignoring brackets inside
// quoted strings.
func findMatchingBracket(s string, openIdx int, open, close byte) (int, bool) {
	depth := 1
	i := openIdx + 1
	for i < len(s) {
		c := s[i]
		switch {
		case c == '"' || c == '\'':
			q := c
			qStart := i
			i++
			for i < len(s) && (s[i] != q || isEscaped(s, i, qStart)) {
				i++
			}
			if i >= len(s) {
				return 0, false
			}
			i++
			continue
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return 0, false
}

// scanArray scans "[" ... "]" starting at openIdx (s[openIdx] == '[').
func scanArray(s string, start, end, openIdx, line int) (Value, descriptor, error) {
	closeIdx, ok := findMatchingBracket(s, openIdx, '[', ']')
	if !ok {
		return Value{}, descriptor{}, newParseError(line, openIdx+1, ErrUnterminatedArray, "array starting at column %d is not terminated", openIdx+1)
	}
	arr := NewArray()
	i := openIdx + 1
	bodyEnd := closeIdx

	i, err := maybeScanTypeSpec(s, i, bodyEnd, line, func(spec string) { arr.SetTypeSpec(spec) })
	if err != nil {
		return Value{}, descriptor{}, err
	}

	seenValue := false
	for {
		j := i
		for j < bodyEnd && isWhitespace(s[j]) {
			j++
		}
		if j >= bodyEnd {
			break
		}
		if seenValue {
			if s[j] != ',' {
				return Value{}, descriptor{}, newParseError(line, j+1, ErrArraySeparatorExpected, "array value separator ',' expected at column %d", j+1)
			}
			j++
		}
		k := j
		for k < bodyEnd && isWhitespace(s[k]) {
			k++
		}
		if k >= bodyEnd {
			if seenValue {
				break
			}
			i = j
			continue
		}
		v, d, err := scanValue(s, k, bodyEnd, line)
		if err != nil {
			return Value{}, descriptor{}, err
		}
		if d.length == 0 {
			return Value{}, descriptor{}, newParseError(line, k+1, ErrArrayValueExpected, "array value expected at column %d", k+1)
		}
		arr.Append(v)
		seenValue = true
		i = k + d.length
	}

	j := closeIdx + 1
	for j < end && isWhitespace(s[j]) {
		j++
	}
	return ArrayValue(arr), descriptor{kind: KindArray, start: openIdx, end: closeIdx + 1, length: j - start}, nil
}

// maybeScanTypeSpec consumes an optional "$token" specifier at the start
// of an array/object body, terminated by "," or the region end. On
// success it returns the index to resume scanning from.
func maybeScanTypeSpec(s string, i, bodyEnd, line int, set func(string)) (int, error) {
	j := i
	for j < bodyEnd && isWhitespace(s[j]) {
		j++
	}
	if j >= bodyEnd || s[j] != '$' {
		return i, nil
	}
	k := j + 1
	for k < bodyEnd && s[k] != ',' {
		k++
	}
	set(trim(s, j+1, k))
	if k < bodyEnd && s[k] == ',' {
		k++
	}
	return k, nil
}

// scanObject scans "{" ... "}" starting at openIdx (s[openIdx] == '{').
func scanObject(s string, start, end, openIdx, line int) (Value, descriptor, error) {
	closeIdx, ok := findMatchingBracket(s, openIdx, '{', '}')
	if !ok {
		return Value{}, descriptor{}, newParseError(line, openIdx+1, ErrUnterminatedObject, "object starting at column %d is not terminated", openIdx+1)
	}
	obj := NewObject()
	i := openIdx + 1
	bodyEnd := closeIdx

	i, err := maybeScanTypeSpec(s, i, bodyEnd, line, func(spec string) { obj.SetTypeSpec(spec) })
	if err != nil {
		return Value{}, descriptor{}, err
	}

	seenEntry := false
	for {
		j := i
		for j < bodyEnd && isWhitespace(s[j]) {
			j++
		}
		if j >= bodyEnd {
			break
		}
		if seenEntry {
			if s[j] != ',' {
				return Value{}, descriptor{}, newParseError(line, j+1, ErrObjectEntrySeparatorExpected, "object entry separator ',' expected at column %d", j+1)
			}
			j++
			k := j
			for k < bodyEnd && isWhitespace(s[k]) {
				k++
			}
			if k >= bodyEnd {
				break
			}
			j = k
		}

		name, nameEnd, err := parseEntryName(s, j, bodyEnd, line)
		if err != nil {
			return Value{}, descriptor{}, err
		}
		k := nameEnd
		for k < bodyEnd && isWhitespace(s[k]) {
			k++
		}
		if k >= bodyEnd || s[k] != ':' {
			return Value{}, descriptor{}, newParseError(line, k+1, ErrObjectNameValueSeparatorExpected, "object name-value separator ':' expected at column %d", k+1)
		}
		k++
		v, d, err := scanValue(s, k, bodyEnd, line)
		if err != nil {
			return Value{}, descriptor{}, err
		}
		if d.length == 0 {
			return Value{}, descriptor{}, newParseError(line, k+1, ErrObjectEntryValueExpected, "object entry value expected at column %d", k+1)
		}
		obj.Put(name, v)
		seenEntry = true
		i = k + d.length
	}

	j := closeIdx + 1
	for j < end && isWhitespace(s[j]) {
		j++
	}
	return ObjectValue(obj), descriptor{kind: KindObject, start: openIdx, end: closeIdx + 1, length: j - start}, nil
}

// parseEntryName consumes leading whitespace, then reads the entry name.
// A name starting with '"' runs to the next unescaped '"' and is
// unescaped. Any other name runs up to an unescaped ':'; unescaped
// trailing whitespace is dropped, escaped trailing whitespace is kept.
func parseEntryName(s string, start, end, line int) (string, int, error) {
	i := start
	for i < end && isWhitespace(s[i]) {
		i++
	}
	nameStart := i
	if i < end && s[i] == '"' {
		j := i + 1
		for j < end && (s[j] != '"' || isEscaped(s, j, i)) {
			j++
		}
		if j >= end {
			return "", 0, newParseError(line, nameStart+1, ErrUnterminatedString, "unterminated string starting at column %d", nameStart+1)
		}
		return unescape(s[i+1 : j]), j + 1, nil
	}
	for i < end {
		if s[i] == ':' && !isEscaped(s, i, nameStart-1) {
			break
		}
		i++
	}
	if i >= end {
		return "", 0, newParseError(line, nameStart+1, ErrObjectNameValueSeparatorExpected, "object name-value separator ':' expected at column %d", nameStart+1)
	}
	rawEnd := i
	for rawEnd > nameStart && isWhitespace(s[rawEnd-1]) && !isEscaped(s, rawEnd-1, nameStart-1) {
		rawEnd--
	}
	return unescape(s[nameStart:rawEnd]), i, nil
}
