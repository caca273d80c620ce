package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRefNamed(t *testing.T) {
	decoded, n, ok := DecodeRef(BodyText, []byte("&amp;rest"), 0)
	require.True(t, ok)
	assert.Equal(t, "&", string(decoded))
	assert.Equal(t, 5, n)
}

func TestDecodeRefLegacyWithoutSemicolon(t *testing.T) {
	decoded, n, ok := DecodeRef(BodyText, []byte("&amp rest"), 0)
	require.True(t, ok)
	assert.Equal(t, "&", string(decoded))
	assert.Equal(t, 4, n)
}

func TestDecodeRefUnknownFails(t *testing.T) {
	_, _, ok := DecodeRef(BodyText, []byte("&notarealentity;"), 0)
	assert.False(t, ok)
}

func TestDecodeNumericDecimalAndHex(t *testing.T) {
	decoded, n, ok := DecodeRef(BodyText, []byte("&#65;"), 0)
	require.True(t, ok)
	assert.Equal(t, "A", string(decoded))
	assert.Equal(t, 5, n)

	decoded, n, ok = DecodeRef(BodyText, []byte("&#x41;"), 0)
	require.True(t, ok)
	assert.Equal(t, "A", string(decoded))
	assert.Equal(t, 6, n)
}

func TestDecodeNumericCp1252Override(t *testing.T) {
	decoded, _, ok := DecodeRef(BodyText, []byte("&#x80;"), 0)
	require.True(t, ok)
	assert.Equal(t, "€", string(decoded))
}

func TestDecodeNumericSurrogateRejected(t *testing.T) {
	decoded, _, ok := DecodeRef(BodyText, []byte("&#xD800;"), 0)
	require.True(t, ok)
	assert.Equal(t, "�", string(decoded))
}

func TestDecodeNumericNoDigitsFails(t *testing.T) {
	_, _, ok := DecodeRef(BodyText, []byte("&#;"), 0)
	assert.False(t, ok)
}

func TestDecodeAllAmbiguousAmpersandInAttribute(t *testing.T) {
	// "&amp" followed by an alphanumeric in an attribute value must NOT be
	// decoded (the ambiguous-ampersand rule).
	got := DecodeAll(Attribute, []byte("a&ampBc"))
	assert.Equal(t, "a&ampBc", string(got))
}

func TestDecodeAllAmbiguousAmpersandDoesNotApplyInBodyText(t *testing.T) {
	got := DecodeAll(BodyText, []byte("a&ampBc"))
	assert.Equal(t, "a&Bc", string(got))
}

func TestDecodeAllMixedContent(t *testing.T) {
	got := DecodeAll(BodyText, []byte("Tom &amp; Jerry &#x21; plain"))
	assert.Equal(t, "Tom & Jerry ! plain", string(got))
}
