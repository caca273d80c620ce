package htmltag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTokenBasicTagsAndText(t *testing.T) {
	p := NewProcessor([]byte(`<div id="a">Hello &amp; world</div>`))

	require.True(t, p.NextToken())
	tt, ok := p.TokenType()
	require.True(t, ok)
	assert.Equal(t, TokenTag, tt)
	tag, ok := p.Tag()
	require.True(t, ok)
	if diff := cmp.Diff(tag, TagName{Name: "div"}); diff != "" {
		t.Errorf("Tag() mismatch (-got +want):\n%s", diff)
	}
	assert.False(t, p.IsTagClosing())

	val, ok := p.Attribute("id")
	require.True(t, ok)
	assert.False(t, val.IsBoolean)
	assert.Equal(t, "a", string(val.String))

	require.True(t, p.NextToken())
	tt, _ = p.TokenType()
	assert.Equal(t, TokenText, tt)
	assert.Equal(t, "Hello & world", string(p.GetModifiableText()))

	require.True(t, p.NextToken())
	tt, _ = p.TokenType()
	assert.Equal(t, TokenTag, tt)
	assert.True(t, p.IsTagClosing())
	tag, _ = p.Tag()
	assert.Equal(t, "div", tag.Name)

	assert.False(t, p.NextToken())
	assert.False(t, p.PausedAtIncompleteToken())
}

func TestBooleanAttributeAndSelfClosing(t *testing.T) {
	p := NewProcessor([]byte(`<input disabled />`))
	require.True(t, p.NextToken())

	val, ok := p.Attribute("disabled")
	require.True(t, ok)
	assert.True(t, val.IsBoolean)
	assert.True(t, val.Bool)

	assert.True(t, p.HasSelfClosingFlag())
}

func TestBrClosingTagIsNotTreatedAsCloser(t *testing.T) {
	p := NewProcessor([]byte(`</br>`))
	require.True(t, p.NextToken())
	assert.False(t, p.IsTagClosing())
}

func TestDuplicateAttributesFirstOccurrenceWins(t *testing.T) {
	p := NewProcessor([]byte(`<a data-x="1" data-x="2" data-y="3">`))
	require.True(t, p.NextToken())

	val, ok := p.Attribute("data-x")
	require.True(t, ok)
	assert.Equal(t, "1", string(val.String))

	names, ok := p.GetAttributeNamesWithPrefix("data-")
	require.True(t, ok)
	assert.Equal(t, []string{"data-x", "data-y"}, names)
}

func TestCommentVariants(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		wantType CommentType
		wantText string
	}{
		{"plain", "<!-- hi -->", CommentHTML, " hi "},
		{"abrupt empty", "<!-->", CommentAbruptlyClosed, ""},
		{"abrupt dash", "<!--->", CommentAbruptlyClosed, ""},
		{"cdata lookalike", "<!--[CDATA[foo]]-->", CommentCdataLookalike, "foo"},
		{"invalid html", "<!weird>", CommentInvalidHTML, "weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor([]byte(tt.html))
			require.True(t, p.NextToken())
			text, ok := p.GetFullCommentText()
			require.True(t, ok)
			assert.Equal(t, tt.wantText, string(text))
			assert.Equal(t, tt.wantType, p.commentType)
		})
	}
}

func TestFunkyCommentAndPresumptuousTag(t *testing.T) {
	p := NewProcessor([]byte(`</3></>`))
	require.True(t, p.NextToken())
	tt, _ := p.TokenType()
	assert.Equal(t, TokenFunkyComment, tt)
	text, ok := p.GetFullCommentText()
	require.True(t, ok)
	assert.Equal(t, "3", string(text))

	require.True(t, p.NextToken())
	tt, _ = p.TokenType()
	assert.Equal(t, TokenPresumptuousTag, tt)
}

func TestPINodeLookalike(t *testing.T) {
	p := NewProcessor([]byte(`<?xml version="1.0"?>`))
	require.True(t, p.NextToken())
	assert.Equal(t, CommentPiNodeLookalike, p.commentType)
	tag, ok := p.Tag()
	require.True(t, ok)
	assert.True(t, tag.Arbitrary)
	assert.Equal(t, "xml", tag.Name)
}

func TestDoctypeToken(t *testing.T) {
	p := NewProcessor([]byte("<!DOCTYPE html>"))
	require.True(t, p.NextToken())
	tt, _ := p.TokenType()
	assert.Equal(t, TokenDoctype, tt)

	info, ok := p.GetDoctypeInfo()
	require.True(t, ok)
	want := &DoctypeInfo{Name: strPtr("html"), IndicatedCompatMode: NoQuirks}
	if diff := cmp.Diff(info, want); diff != "" {
		t.Errorf("GetDoctypeInfo() mismatch (-got +want):\n%s", diff)
	}
}

func TestTextareaDropsLeadingNewline(t *testing.T) {
	p := NewProcessor([]byte("<textarea>\nHello</textarea>"))
	require.True(t, p.NextToken())
	assert.Equal(t, "Hello", string(p.GetModifiableText()))
}

func TestPreDropsLeadingNewlineOnlyImmediatelyAfterOpener(t *testing.T) {
	p := NewProcessor([]byte("<pre>\nfirst</pre>"))
	require.True(t, p.NextToken()) // <pre>
	require.True(t, p.NextToken()) // text
	tt, _ := p.TokenType()
	require.Equal(t, TokenText, tt)
	assert.Equal(t, "first", string(p.GetModifiableText()))
}

func TestScriptDataEscapeStateMachine(t *testing.T) {
	html := "<script><!--<script>inner</script>-->real</script>"
	p := NewProcessor([]byte(html))
	require.True(t, p.NextToken())
	tt, _ := p.TokenType()
	require.Equal(t, TokenTag, tt)
	assert.Equal(t, "<!--<script>inner</script>-->real", string(p.GetModifiableText()))
}

func TestRawtextNoEntityDecoding(t *testing.T) {
	p := NewProcessor([]byte("<style>a &amp; b</style>"))
	require.True(t, p.NextToken())
	assert.Equal(t, "a &amp; b", string(p.GetModifiableText()))
}

func TestForeignCDATASection(t *testing.T) {
	p := NewProcessor([]byte("<![CDATA[raw&amp;text]]>"))
	p.ChangeParsingNamespace(NamespaceSVG)
	require.True(t, p.NextToken())
	tt, _ := p.TokenType()
	assert.Equal(t, TokenCdataSection, tt)
	assert.Equal(t, "raw&amp;text", string(p.GetModifiableText()))
}

func TestQualifiedNamesUnderSVGNamespace(t *testing.T) {
	p := NewProcessor([]byte(`<clipPath viewBox="0 0 1 1">`))
	p.ChangeParsingNamespace(NamespaceSVG)
	require.True(t, p.NextToken())

	qname, ok := p.GetQualifiedTagName()
	require.True(t, ok)
	assert.Equal(t, "clipPath", qname)

	qattr, ok := p.GetQualifiedAttributeName("viewbox")
	require.True(t, ok)
	assert.Equal(t, "viewBox", qattr)
}

func TestSetBookmarkAndSeek(t *testing.T) {
	p := NewProcessor([]byte(`<a>1</a><b>2</b>`))

	require.True(t, p.NextToken()) // <a>
	require.NoError(t, p.SetBookmark("mark"))

	require.True(t, p.NextToken()) // "1"
	require.True(t, p.NextToken()) // </a>
	require.True(t, p.NextToken()) // <b>

	require.True(t, p.Seek("mark"))
	require.True(t, p.NextToken())
	tag, ok := p.Tag()
	require.True(t, ok)
	assert.Equal(t, "a", tag.Name)
	assert.False(t, p.IsTagClosing())
}

func TestReleaseAndHasBookmark(t *testing.T) {
	p := NewProcessor([]byte(`<a>`))
	require.True(t, p.NextToken())
	require.NoError(t, p.SetBookmark("x"))
	assert.True(t, p.HasBookmark("x"))
	assert.True(t, p.ReleaseBookmark("x"))
	assert.False(t, p.HasBookmark("x"))
	assert.False(t, p.ReleaseBookmark("x"))
}

func TestSetBookmarkFailsWithoutCurrentToken(t *testing.T) {
	p := NewProcessor([]byte(``))
	err := p.SetBookmark("x")
	assert.ErrorIs(t, err, ErrBookmarkUnavailable)
}

func TestNextTagWithClassAndMatchOffset(t *testing.T) {
	html := `<div class="a">1</div><div class="b">2</div><div class="a">3</div>`
	p := NewProcessor([]byte(html))

	require.True(t, p.NextTag(TagQuery{TagName: "div", ClassName: "a", MatchOffset: 2}))

	require.True(t, p.NextToken())
	tt, _ := p.TokenType()
	require.Equal(t, TokenText, tt)
	assert.Equal(t, "3", string(p.GetModifiableText()))
}

func TestNextTagSkipsClosersByDefault(t *testing.T) {
	p := NewProcessor([]byte(`</div><div>`))
	require.True(t, p.NextTag(TagQuery{TagName: "div"}))
	assert.False(t, p.IsTagClosing())
}

func TestHasClassAndClassList(t *testing.T) {
	p := NewProcessor([]byte(`<div class="foo bar foo">`))
	require.True(t, p.NextToken())

	has, ok := p.HasClass("bar")
	require.True(t, ok)
	assert.True(t, has)

	has, ok = p.HasClass("baz")
	require.True(t, ok)
	assert.False(t, has)

	var names []string
	cl := p.ClassList()
	for {
		tok, ok := cl.Next()
		if !ok {
			break
		}
		names = append(names, string(tok))
	}
	assert.Equal(t, []string{"foo", "bar"}, names)
}

func TestSubdivideTextAppropriately(t *testing.T) {
	p := NewProcessor([]byte("   hello"))
	require.True(t, p.NextToken())
	tt, _ := p.TokenType()
	require.Equal(t, TokenText, tt)

	require.True(t, p.SubdivideTextAppropriately())
	assert.Equal(t, TextWhitespace, p.textNodeClassification)
	assert.Equal(t, "   ", string(p.GetModifiableText()))

	require.True(t, p.NextToken())
	assert.Equal(t, "hello", string(p.GetModifiableText()))
}

func TestIncompleteInputRewindsCursor(t *testing.T) {
	p := NewProcessor([]byte(`<div id="a`))
	assert.False(t, p.NextToken())
	assert.True(t, p.PausedAtIncompleteToken())
	assert.Equal(t, 0, p.cursor)
}

func TestNamespaceDefaultsToHTML(t *testing.T) {
	p := NewProcessor([]byte(``))
	assert.Equal(t, NamespaceHTML, p.Namespace())
	assert.True(t, p.ChangeParsingNamespace(NamespaceMathML))
	assert.Equal(t, NamespaceMathML, p.Namespace())
}
