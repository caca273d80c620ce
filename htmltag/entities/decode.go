package entities

import "unicode/utf8"

// Context is the HTML parsing context a reference is being decoded in; it
// only changes behavior for named references lacking a trailing ';'
// (the ambiguous-ampersand rule applies in Attribute context only).
type Context int

const (
	BodyText Context = iota
	Attribute
	ForeignText
	Script
	Style
)

var replacementChar = []byte{0xEF, 0xBF, 0xBD} // U+FFFD

// DecodeRef attempts to decode a single character reference starting at
// input[offset], which must be '&'. It returns the decoded UTF-8 bytes and
// the number of input bytes consumed, or (nil, 0, false) if no reference
// starts there.
func DecodeRef(ctx Context, input []byte, offset int) ([]byte, int, bool) {
	if len(input) < offset+3 {
		return nil, 0, false
	}
	if input[offset] != '&' {
		return nil, 0, false
	}
	if input[offset+1] == '#' {
		return decodeNumericRef(input, offset)
	}

	prefix := [2]byte{input[offset+1], input[offset+2]}
	for _, c := range lookup(prefix) {
		end := offset + 3 + len(c.suffix)
		if end > len(input) {
			continue
		}
		if string(input[offset+3:end]) == string(c.suffix) {
			terminated := len(c.suffix) > 0 && c.suffix[len(c.suffix)-1] == ';'
			if ctx == Attribute && !terminated && end < len(input) {
				if next := input[end]; isAsciiAlnum(next) || next == '=' {
					return nil, 0, false
				}
			}
			return c.decoded, 3 + len(c.suffix), true
		}
	}
	return nil, 0, false
}

// DecodeAll scans input for character references and returns a new slice
// with every reference replaced by its decoded bytes; non-reference regions
// are copied verbatim.
func DecodeAll(ctx Context, input []byte) []byte {
	decoded := make([]byte, 0, len(input))
	end := len(input)
	at := 0
	wasAt := 0

	for at < end {
		next := indexByte(input, at, '&')
		if next < 0 {
			break
		}

		ref, consumed, ok := DecodeRef(ctx, input, next)
		if ok {
			if ctx == Attribute {
				lastByte := input[next+consumed-1]
				ambiguous := lastByte != ';'
				if ambiguous && next+consumed < end {
					trailing := input[next+consumed]
					if isAsciiAlnum(trailing) || trailing == '=' {
						at++
						continue
					}
				}
			}

			at = next
			decoded = append(decoded, input[wasAt:at]...)
			decoded = append(decoded, ref...)
			at += consumed
			wasAt = at
			continue
		}

		at++
	}

	if wasAt < end {
		decoded = append(decoded, input[wasAt:]...)
	}
	return decoded
}

func isAsciiAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func indexByte(b []byte, from int, c byte) int {
	for i := from; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// cp1252Replacements maps code points 0x80..0x9F (a Windows-1252 artifact of
// the HTML numeric-reference algorithm) to the Unicode code point a browser
// actually renders for them.
var cp1252Replacements = [32]rune{
	0x20AC, 0x81, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0x8D, 0x017D, 0x8F,
	0x90, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0x9D, 0x017E, 0x0178,
}

func hexDigitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// decodeNumericRef implements §4.3's numeric-reference algorithm: `&#NNN;`
// and `&#xHH;`, including the Windows-1252 override, surrogate rejection,
// and the "too many digits" / "no digits" edge cases.
func decodeNumericRef(input []byte, offset int) ([]byte, int, bool) {
	end := len(input)
	at := offset

	if end < offset+3 || input[at] != '&' || input[at+1] != '#' {
		return nil, 0, false
	}
	at += 2

	hex := false
	if at < end && (input[at]|0x20) == 'x' {
		hex = true
		at++
	}

	zerosAt := at
	for at < end && input[at] == '0' {
		at++
	}
	zeroCount := at - zerosAt

	digitsAt := at
	maxDigits := 7
	if hex {
		maxDigits = 6
	}
	for at < end && hexDigitValue(input[at]) >= 0 && (hex || hexDigitValue(input[at]) <= 9) {
		at++
	}
	digitCount := at - digitsAt
	afterDigits := at

	hasSemicolon := afterDigits < end && input[afterDigits] == ';'
	endOfSpan := afterDigits
	if hasSemicolon {
		endOfSpan++
	}
	matchedLen := endOfSpan - offset

	if zeroCount == 0 && digitCount == 0 {
		return nil, 0, false
	}
	if digitCount == 0 {
		return replacementChar, matchedLen, true
	}
	if digitCount > maxDigits {
		return replacementChar, matchedLen, true
	}

	var codePoint int64
	base := int64(10)
	if hex {
		base = 16
	}
	for i := digitsAt; i < afterDigits; i++ {
		codePoint = codePoint*base + int64(hexDigitValue(input[i]))
	}

	if codePoint >= 0x80 && codePoint <= 0x9F {
		codePoint = int64(cp1252Replacements[codePoint-0x80])
	}

	if codePoint >= 0xD800 && codePoint <= 0xDFFF {
		return replacementChar, matchedLen, true
	}

	return encodeCodePoint(rune(codePoint)), matchedLen, true
}

func encodeCodePoint(r rune) []byte {
	if !utf8.ValidRune(r) {
		return replacementChar
	}
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}
