package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpotapov/go-htmltag/htmltag"
)

func TestTagQueryMatches(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		where string
		want  bool
	}{
		{"empty where always matches", `<div id="x">`, "", true},
		{"tag name match", `<div>`, `Tag == "div"`, true},
		{"tag name mismatch", `<span>`, `Tag == "div"`, false},
		{"class membership", `<div class="a b">`, `"b" in Classes`, true},
		{"attr lookup", `<a href="/x">`, `Attrs["href"] == "/x"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := compileTagQuery(tt.where)
			require.NoError(t, err)

			p := htmltag.NewProcessor([]byte(tt.html))
			require.True(t, p.NextToken())

			matched, err := q.matches(p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestCompileTagQueryRejectsBadExpr(t *testing.T) {
	_, err := compileTagQuery("Tag ===")
	assert.Error(t, err)
}
