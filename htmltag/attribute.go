package htmltag

// rawAttribute is the internal record pushed by parseNextAttribute, prior
// to name-casing and value decoding (which accessors apply lazily).
type rawAttribute struct {
	token    AttributeToken
	nameLow  string // ASCII-lowercased name, for case-insensitive lookup
}

// parseNextAttribute implements §4.5's attribute-parsing state rules. It
// returns (token, lowercased name, true) on a successfully parsed attribute,
// (zero, "", false) when there are no more attributes to parse (cursor left
// at the `>`, past any whitespace and slashes), and sets p.state to StateIncompleteInput (leaving the cursor
// unspecified — the caller rewinds) when the input ends mid-attribute.
func (p *Processor) parseNextAttribute() (AttributeToken, string, bool) {
	h := p.html

	p.cursor += spanWhile(h, p.cursor, isAttrNameBoundary)

	if p.cursor >= len(h) {
		p.state = StateIncompleteInput
		return AttributeToken{}, "", false
	}

	attrStart := p.cursor
	nameStart := p.cursor

	// A leading '=' is treated as part of the name (one-byte shift) per the
	// tokenizer's documented quirk, matching browsers' handling of `<a =b>`.
	if h[p.cursor] == '=' {
		p.cursor++
	}

	nameLen := spanUntil(h, p.cursor, isAttrNameTerminator)
	p.cursor += nameLen

	totalNameLen := p.cursor - nameStart
	if totalNameLen == 0 {
		p.cursor = attrStart
		return AttributeToken{}, "", false
	}
	if p.cursor >= len(h) {
		p.state = StateIncompleteInput
		return AttributeToken{}, "", false
	}

	name := h[nameStart : nameStart+totalNameLen]
	nameLow := string(toAsciiLower(name))

	p.cursor += spanWhile(h, p.cursor, isWhitespace)
	if p.cursor >= len(h) {
		p.state = StateIncompleteInput
		return AttributeToken{}, "", false
	}

	hasValue := false
	valueStart := p.cursor
	valueLen := 0

	if h[p.cursor] == '=' {
		hasValue = true
		p.cursor++
		p.cursor += spanWhile(h, p.cursor, isWhitespace)
		if p.cursor >= len(h) {
			p.state = StateIncompleteInput
			return AttributeToken{}, "", false
		}

		if h[p.cursor] == '\'' || h[p.cursor] == '"' {
			quote := h[p.cursor]
			p.cursor++
			valueStart = p.cursor
			valueLen = spanUntil(h, p.cursor, func(b byte) bool { return b == quote })
			p.cursor += valueLen
			if p.cursor >= len(h) {
				p.state = StateIncompleteInput
				return AttributeToken{}, "", false
			}
			p.cursor++ // past the closing quote
		} else {
			valueStart = p.cursor
			valueLen = spanUntil(h, p.cursor, isUnquotedValueTerminator)
			p.cursor += valueLen
		}
	}

	attrLen := p.cursor - attrStart
	if !hasValue {
		attrLen = totalNameLen
	}

	tok := AttributeToken{
		Start:         attrStart,
		Length:        attrLen,
		NameLength:    totalNameLen,
		ValueStartsAt: valueStart,
		ValueLength:   valueLen,
		IsTrue:        !hasValue,
	}
	return tok, nameLow, true
}

func isAttrNameBoundary(b byte) bool {
	return isWhitespace(b) || b == '/'
}

func isAttrNameTerminator(b byte) bool {
	switch b {
	case '=', '/', '>':
		return true
	}
	return isWhitespace(b)
}

func isUnquotedValueTerminator(b byte) bool {
	return isWhitespace(b) || b == '>'
}
