package htmltag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseDoctype(t *testing.T) {
	tests := []struct {
		name string
		html string
		want *DoctypeInfo
	}{
		{
			name: "bare doctype",
			html: "<!DOCTYPE html>",
			want: &DoctypeInfo{Name: strPtr("html"), IndicatedCompatMode: NoQuirks},
		},
		{
			name: "legacy quirks no system id",
			html: `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN">`,
			want: &DoctypeInfo{
				Name:                strPtr("html"),
				PublicIdentifier:    strPtr("-//W3C//DTD HTML 4.01 Frameset//EN"),
				IndicatedCompatMode: Quirks,
			},
		},
		{
			name: "limited quirks",
			html: `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN">`,
			want: &DoctypeInfo{
				Name:                strPtr("html"),
				PublicIdentifier:    strPtr("-//W3C//DTD XHTML 1.0 Frameset//EN"),
				IndicatedCompatMode: LimitedQuirks,
			},
		},
		{
			name: "missing name forces quirks",
			html: "<!DOCTYPE >",
			want: &DoctypeInfo{
				IndicatedCompatMode: Quirks,
				Err:                 &DoctypeError{Reason: "missing doctype name"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDoctype([]byte(tt.html))
			require.True(t, ok)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("ParseDoctype(%q) mismatch (-got +want):\n%s", tt.html, diff)
			}
		})
	}
}

func TestParseDoctypeForceQuirksErrIsDoctypeError(t *testing.T) {
	info, ok := ParseDoctype([]byte(`<!DOCTYPE html SYSTEM >`))
	require.True(t, ok)
	require.Error(t, info.Err)

	var de *DoctypeError
	require.ErrorAs(t, info.Err, &de)
	assert.Equal(t, "html", de.Name)
	assert.Equal(t, "missing system identifier after SYSTEM keyword", de.Reason)
}

func TestParseDoctypeRejectsMalformed(t *testing.T) {
	_, ok := ParseDoctype([]byte("<!DOCTYPE"))
	assert.False(t, ok)

	_, ok = ParseDoctype([]byte("<!doctype html"))
	assert.False(t, ok)
}
