package htmltag

import "bytes"

// ClassList lazily iterates the tokens of a `class` attribute value,
// replacing NUL bytes with U+FFFD and skipping duplicates by first
// occurrence.
type ClassList struct {
	value []byte
	at    int
	seen  map[string]struct{}
}

// NewClassList builds a ClassList over an already entity-decoded class
// attribute value.
func NewClassList(value []byte) *ClassList {
	return &ClassList{value: value, seen: make(map[string]struct{})}
}

// Next returns the next not-yet-seen class name, or (nil, false) once the
// value is exhausted.
func (c *ClassList) Next() ([]byte, bool) {
	for {
		c.at += spanWhile(c.value, c.at, isWhitespace)
		if c.at >= len(c.value) {
			return nil, false
		}
		start := c.at
		length := spanUntil(c.value, c.at, isWhitespace)
		c.at += length

		token := replaceNulWithReplacementChar(c.value[start : start+length])
		key := string(token)
		if _, dup := c.seen[key]; dup {
			continue
		}
		c.seen[key] = struct{}{}
		return token, true
	}
}

// HasClass reports whether name appears in the class attribute value,
// without allocating an iterator for the whole list. Comparison is exact in
// no-quirks/limited-quirks mode and ASCII case-insensitive in quirks mode.
func HasClass(value []byte, name []byte, quirks bool) bool {
	at := 0
	for at < len(value) {
		at += spanWhile(value, at, isWhitespace)
		if at >= len(value) {
			break
		}
		start := at
		length := spanUntil(value, at, isWhitespace)
		at += length

		token := replaceNulWithReplacementChar(value[start : start+length])
		if quirks {
			if bytes.EqualFold(token, name) {
				return true
			}
		} else if bytes.Equal(token, name) {
			return true
		}
	}
	return false
}

func replaceNulWithReplacementChar(b []byte) []byte {
	if bytes.IndexByte(b, 0) < 0 {
		return b
	}
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == 0 {
			out = append(out, 0xEF, 0xBF, 0xBD)
		} else {
			out = append(out, c)
		}
	}
	return out
}
