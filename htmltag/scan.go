package htmltag

// bytePredicate is a small ASCII byte class, e.g. HTML whitespace.
type bytePredicate func(b byte) bool

// isWhitespace reports whether b is one of the five HTML whitespace bytes:
// space, tab, form feed, carriage return, or line feed.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\f', '\r', '\n':
		return true
	}
	return false
}

func isAsciiAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAsciiAlnum(b byte) bool {
	return isAsciiAlpha(b) || (b >= '0' && b <= '9')
}

func isAsciiDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// spanWhile returns the number of consecutive bytes starting at off that
// satisfy pred.
func spanWhile(h []byte, off int, pred bytePredicate) int {
	n := 0
	for off+n < len(h) && pred(h[off+n]) {
		n++
	}
	return n
}

// spanUntil returns the number of consecutive bytes starting at off that do
// NOT satisfy pred.
func spanUntil(h []byte, off int, pred bytePredicate) int {
	n := 0
	for off+n < len(h) && !pred(h[off+n]) {
		n++
	}
	return n
}

// findByte returns the offset of the first occurrence of b at or after off,
// or -1 if not found.
func findByte(h []byte, off int, b byte) int {
	for i := off; i < len(h); i++ {
		if h[i] == b {
			return i
		}
	}
	return -1
}

// findBytes finds the first case-sensitive occurrence of needle at or after
// off, or -1 if not found.
func findBytes(h []byte, off int, needle []byte) int {
	if len(needle) == 0 {
		return off
	}
	limit := len(h) - len(needle)
	for i := off; i <= limit; i++ {
		if matchAt(h, i, needle, false) {
			return i
		}
	}
	return -1
}

// findBytesFold finds the first ASCII-case-insensitive occurrence of needle
// at or after off, or -1 if not found.
func findBytesFold(h []byte, off int, needle []byte) int {
	if len(needle) == 0 {
		return off
	}
	limit := len(h) - len(needle)
	for i := off; i <= limit; i++ {
		if matchAt(h, i, needle, true) {
			return i
		}
	}
	return -1
}

func matchAt(h []byte, at int, needle []byte, fold bool) bool {
	if at+len(needle) > len(h) {
		return false
	}
	for i, c := range needle {
		hb := h[at+i]
		if fold {
			hb = toLowerByte(hb)
			c = toLowerByte(c)
		}
		if hb != c {
			return false
		}
	}
	return true
}

// hasPrefixFold reports whether h[off:] begins with needle, ASCII
// case-insensitively.
func hasPrefixFold(h []byte, off int, needle []byte) bool {
	return matchAt(h, off, needle, true)
}

func hasPrefix(h []byte, off int, needle []byte) bool {
	return matchAt(h, off, needle, false)
}

func toAsciiLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = toLowerByte(c)
	}
	return out
}
