package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupLongestMatchFirst(t *testing.T) {
	// "not" and "notin;" both start with prefix "no"; longest suffix must
	// be tried first so a longer name isn't shadowed by a shorter prefix.
	candidates := lookup([2]byte{'n', 'o'})
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, len(candidates[i-1].suffix), len(candidates[i].suffix))
	}
}

func TestLookupUnknownPrefix(t *testing.T) {
	assert.Nil(t, lookup([2]byte{'z', 'z'}))
}
