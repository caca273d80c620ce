package htmltag

// CompatMode is the document compatibility mode a DOCTYPE token indicates.
type CompatMode int

const (
	NoQuirks CompatMode = iota
	Quirks
	LimitedQuirks
)

func (m CompatMode) String() string {
	switch m {
	case Quirks:
		return "quirks-mode"
	case LimitedQuirks:
		return "limited-quirks"
	default:
		return "no-quirks-mode"
	}
}

// quirksPublicIdExact lists public identifiers that force Quirks mode when
// matched exactly (after ASCII-lowercasing).
var quirksPublicIdExact = []string{
	"-//w3o//dtd w3 html strict 3.0//en//",
	"-/w3c/dtd html 4.0 transitional/en",
	"html",
}

// quirksSystemIdExact lists system identifiers that force Quirks mode when
// matched exactly.
var quirksSystemIdExact = []string{
	"http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd",
}

// quirksPublicIdPrefixes is the closed literal set of DOCTYPE PUBLIC
// identifier prefixes that force Quirks mode, reproduced verbatim from the
// HTML Living Standard's "initial insertion mode" table.
var quirksPublicIdPrefixes = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0 level 1//",
	"-//ietf//dtd html 2.0 level 2//",
	"-//ietf//dtd html 2.0 strict level 1//",
	"-//ietf//dtd html 2.0 strict level 2//",
	"-//ietf//dtd html 2.0 strict//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

// quirksPublicIdPrefixesNoSystemId additionally force Quirks mode, but only
// when no system identifier is present.
var quirksPublicIdPrefixesNoSystemId = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

// limitedQuirksPublicIdPrefixes force LimitedQuirks mode unconditionally.
var limitedQuirksPublicIdPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

// limitedQuirksPublicIdPrefixesWithSystemId force LimitedQuirks mode, but
// only when a system identifier IS present (the mirror image of
// quirksPublicIdPrefixesNoSystemId, sharing the same two prefixes).
var limitedQuirksPublicIdPrefixesWithSystemId = quirksPublicIdPrefixesNoSystemId

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if len(s) >= len(p) && s[:len(p)] == p {
			return true
		}
	}
	return false
}

func equalsAny(s string, candidates []string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}

// deriveCompatMode implements the HTML Living Standard's DOCTYPE
// compatibility-mode decision table. name, publicID, and systemID should be
// nil when the corresponding identifier is missing (as opposed to present
// but empty) — a missing system identifier behaves differently from an
// empty one in the "no system identifier" conditions below.
func deriveCompatMode(name *string, publicID, systemID *string, forceQuirks bool) CompatMode {
	if forceQuirks {
		return Quirks
	}

	if name != nil && *name == "html" && publicID == nil && systemID == nil {
		return NoQuirks
	}

	if name == nil || *name != "html" {
		return Quirks
	}

	systemIDMissing := systemID == nil

	publicClean := ""
	if publicID != nil {
		publicClean = string(toAsciiLower([]byte(*publicID)))
	}
	systemClean := ""
	if systemID != nil {
		systemClean = string(toAsciiLower([]byte(*systemID)))
	}

	if equalsAny(publicClean, quirksPublicIdExact) {
		return Quirks
	}

	if equalsAny(systemClean, quirksSystemIdExact) {
		return Quirks
	}

	if publicClean == "" {
		return Quirks
	}

	if hasAnyPrefix(publicClean, quirksPublicIdPrefixes) {
		return Quirks
	}

	if systemIDMissing && hasAnyPrefix(publicClean, quirksPublicIdPrefixesNoSystemId) {
		return Quirks
	}

	if hasAnyPrefix(publicClean, limitedQuirksPublicIdPrefixes) {
		return LimitedQuirks
	}

	if !systemIDMissing && hasAnyPrefix(publicClean, limitedQuirksPublicIdPrefixesWithSystemId) {
		return LimitedQuirks
	}

	return NoQuirks
}
