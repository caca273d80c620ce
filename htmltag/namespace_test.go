package htmltag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedTagName(t *testing.T) {
	assert.Equal(t, "div", QualifiedTagName("DIV", NamespaceHTML))
	assert.Equal(t, "foreignobject", QualifiedTagName("foreignobject", NamespaceHTML))
	assert.Equal(t, "foreignObject", QualifiedTagName("foreignobject", NamespaceSVG))
	assert.Equal(t, "clipPath", QualifiedTagName("CLIPPATH", NamespaceSVG))
	assert.Equal(t, "rect", QualifiedTagName("rect", NamespaceSVG))
	assert.Equal(t, "math", QualifiedTagName("MATH", NamespaceMathML))
}

func TestQualifiedAttributeName(t *testing.T) {
	assert.Equal(t, "viewBox", QualifiedAttributeName("viewbox", NamespaceSVG))
	assert.Equal(t, "viewbox", QualifiedAttributeName("viewbox", NamespaceHTML))
	assert.Equal(t, "xlink href", QualifiedAttributeName("xlink:href", NamespaceSVG))
	assert.Equal(t, "definitionURL", QualifiedAttributeName("definitionurl", NamespaceMathML))
}
