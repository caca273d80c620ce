// Package entities decodes HTML named and numeric character references.
//
// The named-entity table is built once, at package init, from an embedded
// JSON asset shaped `{ "&name;": {"codepoints": [...], "characters": "..."} }`
// (only the "characters" field is consulted — the decoder works in UTF-8
// bytes, never code points, per the core's byte-oriented design).
package entities

import (
	_ "embed"
	"encoding/json"
	"sort"
)

//go:embed entities.json
var rawTable []byte

type entityAsset struct {
	Codepoints []int  `json:"codepoints"`
	Characters string `json:"characters"`
}

// candidate is one possible suffix match for a given 2-byte prefix: the
// bytes following the prefix (including a trailing ';' when the source name
// had one) and the decoded UTF-8 bytes it expands to.
type candidate struct {
	suffix  []byte
	decoded []byte
}

// table maps the first two bytes after '&' to its candidates, longest suffix
// first so the decoder's first match is the longest-match-first winner HTML
// requires.
var table map[[2]byte][]candidate

func init() {
	var raw map[string]entityAsset
	if err := json.Unmarshal(rawTable, &raw); err != nil {
		panic("htmltag/entities: invalid embedded entity table: " + err.Error())
	}

	table = make(map[[2]byte][]candidate, len(raw)/2)
	for name, asset := range raw {
		// name is "&...", possibly ending in ';'; strip the leading '&'.
		body := []byte(name[1:])
		if len(body) < 2 {
			continue
		}
		var prefix [2]byte
		prefix[0], prefix[1] = body[0], body[1]
		suffix := append([]byte(nil), body[2:]...)
		table[prefix] = append(table[prefix], candidate{
			suffix:  suffix,
			decoded: []byte(asset.Characters),
		})
	}

	for prefix, candidates := range table {
		sort.SliceStable(candidates, func(i, j int) bool {
			return len(candidates[i].suffix) > len(candidates[j].suffix)
		})
		table[prefix] = candidates
	}
}

// lookup returns the ordered candidate list for the 2-byte prefix following
// '&', or nil if no named entity begins with that prefix.
func lookup(prefix [2]byte) []candidate {
	return table[prefix]
}
