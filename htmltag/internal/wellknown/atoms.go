// Package wellknown holds the closed, compile-time tag-name tables the
// tokenizer consults: which tags are self-contained (their content is
// skipped rather than tokenized) and which request special cursor handling
// right after their opening tag.
package wellknown

import "golang.org/x/net/html/atom"

// SelfContainedKind classifies how a self-contained element's content
// should be skipped.
type SelfContainedKind int

const (
	NotSelfContained SelfContainedKind = iota
	SkipScriptData
	SkipRCData
	SkipRawtext
)

// selfContained maps an atom to how its content should be skipped, mirroring
// §4.5 step 9's dispatch table.
var selfContained = map[atom.Atom]SelfContainedKind{
	atom.Script:   SkipScriptData,
	atom.Textarea: SkipRCData,
	atom.Title:    SkipRCData,
	atom.Iframe:   SkipRawtext,
	atom.Noembed:  SkipRawtext,
	atom.Noframes: SkipRawtext,
	atom.Style:    SkipRawtext,
	atom.Xmp:      SkipRawtext,
}

// SelfContainedKindOf reports how the named tag's content should be skipped,
// or NotSelfContained if the tag has normal tokenized content.
func SelfContainedKindOf(tagName string) SelfContainedKind {
	a := atom.Lookup([]byte(tagName))
	if a == 0 {
		return NotSelfContained
	}
	return selfContained[a]
}

// skipsLeadingNewline is the set of elements after whose opening tag a
// single leading LF in their content must be elided (§4.5 step 9).
var skipsLeadingNewline = map[atom.Atom]bool{
	atom.Listing: true,
	atom.Pre:     true,
}

// SkipsLeadingNewline reports whether tagName is LISTING or PRE.
func SkipsLeadingNewline(tagName string) bool {
	a := atom.Lookup([]byte(tagName))
	return a != 0 && skipsLeadingNewline[a]
}

// dispatchFirstLetters is the closed set of first letters (lowercased) a
// tag name must start with for the tokenizer to even consider it for
// self-contained-element or leading-newline handling (§4.5 step 8); this
// lets next_token skip the atom lookup entirely for tags that can't match.
var dispatchFirstLetters = map[byte]bool{
	'i': true, 'l': true, 'n': true, 'p': true, 's': true, 't': true, 'x': true,
}

// HasRelevantFirstLetter reports whether b (already ASCII-lowercased) is one
// of the first letters of any self-contained or leading-newline tag name.
func HasRelevantFirstLetter(b byte) bool {
	return dispatchFirstLetters[b]
}

// Textarea reports whether tagName names TEXTAREA, used by the
// modifiable-text leading-LF rule (§4.5's get_modifiable_text).
func Textarea(tagName string) bool {
	return atom.Lookup([]byte(tagName)) == atom.Textarea
}

// Br reports whether tagName names BR, the sole element whose closing tag
// is treated as an opener (§4.5's is_tag_closer carve-out).
func Br(tagName string) bool {
	return atom.Lookup([]byte(tagName)) == atom.Br
}
