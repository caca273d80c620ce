package htmltag

import "bytes"

// DoctypeInfo is the parsed representation of a DOCTYPE token, together with
// the document compatibility mode it indicates.
type DoctypeInfo struct {
	Name                 *string
	PublicIdentifier     *string
	SystemIdentifier     *string
	IndicatedCompatMode  CompatMode

	// Err is non-nil when some part of the token was malformed badly
	// enough to force quirks mode. It is always a *DoctypeError; recover
	// the reason with errors.As.
	Err error
}

// ParseDoctype parses a complete raw DOCTYPE declaration token, including
// its surrounding `<!DOCTYPE` and `>`, and derives its compatibility mode.
// It returns (nil, false) if doctypeHTML is not a well-formed DOCTYPE token:
// too short, missing the `<!DOCTYPE` prefix, not ending in `>`, or containing
// an interior `>`.
func ParseDoctype(doctypeHTML []byte) (*DoctypeInfo, bool) {
	if len(doctypeHTML) < 10 {
		return nil, false
	}
	if !hasPrefixFold(doctypeHTML, 0, []byte("<!DOCTYPE")) {
		return nil, false
	}

	end := len(doctypeHTML) - 1
	at := 9

	if doctypeHTML[end] != '>' || findByte(doctypeHTML, at, '>') != end {
		return nil, false
	}

	normalized := normalizeDoctypeNewlines(doctypeHTML)
	end = len(normalized) - 1

	return parseDoctypeBody(normalized, at, end), true
}

// normalizeDoctypeNewlines applies HTML's input-stream preprocessing to a
// DOCTYPE token's raw bytes: CRLF and lone CR collapse to LF, and NUL bytes
// become U+FFFD.
func normalizeDoctypeNewlines(h []byte) []byte {
	out := make([]byte, 0, len(h))
	for i := 0; i < len(h); i++ {
		switch h[i] {
		case '\r':
			out = append(out, '\n')
			if i+1 < len(h) && h[i+1] == '\n' {
				i++
			}
		case 0:
			out = append(out, 0xEF, 0xBF, 0xBD)
		default:
			out = append(out, h[i])
		}
	}
	return out
}

func parseDoctypeBody(h []byte, at, end int) *DoctypeInfo {
	at += spanWhile(h, at, isWhitespace)
	if at >= end {
		return newDoctypeInfo(nil, nil, nil, "missing doctype name")
	}

	nameLen := spanUntil(h[:end], at, isWhitespace)
	name := string(toAsciiLower(h[at : at+nameLen]))
	at += nameLen
	at += spanWhile(h, at, isWhitespace)
	if at >= end {
		return newDoctypeInfo(&name, nil, nil, "")
	}

	if at+6 >= end {
		return newDoctypeInfo(&name, nil, nil, "no room for PUBLIC or SYSTEM keyword after name")
	}

	if hasPrefixFold(h, at, []byte("PUBLIC")) {
		at += 6
		at += spanWhile(h, at, isWhitespace)
		if at >= end {
			return newDoctypeInfo(&name, nil, nil, "missing public identifier after PUBLIC keyword")
		}
		return parseDoctypePublicIdentifier(h, at, end, &name)
	}

	if hasPrefixFold(h, at, []byte("SYSTEM")) {
		at += 6
		at += spanWhile(h, at, isWhitespace)
		if at >= end {
			return newDoctypeInfo(&name, nil, nil, "missing system identifier after SYSTEM keyword")
		}
		return parseDoctypeSystemIdentifier(h, at, end, &name, nil)
	}

	return newDoctypeInfo(&name, nil, nil, "unrecognized keyword after doctype name")
}

func parseDoctypePublicIdentifier(h []byte, at, end int, name *string) *DoctypeInfo {
	closer := h[at]
	if closer != '"' && closer != '\'' {
		return newDoctypeInfo(name, nil, nil, "missing quote before public identifier")
	}
	at++

	idLen := findQuoteEnd(h, at, closer)
	publicID := string(h[at : at+idLen])
	at += idLen
	if at >= end || h[at] != closer {
		return newDoctypeInfo(name, &publicID, nil, "unterminated public identifier")
	}
	at++

	at += spanWhile(h, at, isWhitespace)
	if at >= end {
		return newDoctypeInfo(name, &publicID, nil, "")
	}

	return parseDoctypeSystemIdentifier(h, at, end, name, &publicID)
}

func parseDoctypeSystemIdentifier(h []byte, at, end int, name, publicID *string) *DoctypeInfo {
	closer := h[at]
	if closer != '"' && closer != '\'' {
		return newDoctypeInfo(name, publicID, nil, "missing quote before system identifier")
	}
	at++

	idLen := findQuoteEnd(h, at, closer)
	systemID := string(h[at : at+idLen])
	at += idLen
	if at >= end || h[at] != closer {
		return newDoctypeInfo(name, publicID, &systemID, "unterminated system identifier")
	}

	return newDoctypeInfo(name, publicID, &systemID, "")
}

// findQuoteEnd returns the number of bytes from at up to (not including) the
// next occurrence of closer, or the remaining length if closer never
// appears.
func findQuoteEnd(h []byte, at int, closer byte) int {
	idx := bytes.IndexByte(h[at:], closer)
	if idx < 0 {
		return len(h) - at
	}
	return idx
}

// newDoctypeInfo builds a DoctypeInfo. reason, when non-empty, names why the
// state machine is forcing quirks mode; it is surfaced as a *DoctypeError on
// the returned info's Err field in place of the source's early-return gotos.
func newDoctypeInfo(name, publicID, systemID *string, reason string) *DoctypeInfo {
	forceQuirks := reason != ""

	var err error
	if forceQuirks {
		nameStr := ""
		if name != nil {
			nameStr = *name
		}
		err = &DoctypeError{Name: nameStr, Reason: reason}
	}

	return &DoctypeInfo{
		Name:                name,
		PublicIdentifier:    publicID,
		SystemIdentifier:    systemID,
		IndicatedCompatMode: deriveCompatMode(name, publicID, systemID, forceQuirks),
		Err:                 err,
	}
}
