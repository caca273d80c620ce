package htmltag

// QualifiedTagName returns the adjusted tag name for tag under the given
// namespace: lowercased in HTML, and camel-cased for a closed set of SVG
// names (the rest of SVG and all of MathML simply lowercase, per the HTML
// Living Standard's foreign-content tag name adjustments).
func QualifiedTagName(tag string, ns Namespace) string {
	lower := string(toAsciiLower([]byte(tag)))
	if ns != NamespaceSVG {
		return lower
	}
	if camel, ok := svgTagNameAdjustments[lower]; ok {
		return camel
	}
	return lower
}

// QualifiedAttributeName returns the adjusted attribute name for name under
// the given namespace: lowercased in HTML; in foreign content, a fixed set
// of `xlink:`/`xml:`/`xmlns:`-prefixed names are rewritten with a space in
// place of the colon, MathML's `definitionurl` is recapitalized, and SVG's
// closed set of camelCase attribute names is restored.
func QualifiedAttributeName(name string, ns Namespace) string {
	lower := string(toAsciiLower([]byte(name)))

	if ns != NamespaceHTML {
		if spaced, ok := foreignAttributeSpaceForms[lower]; ok {
			return spaced
		}
	}

	switch ns {
	case NamespaceMathML:
		if lower == "definitionurl" {
			return "definitionURL"
		}
		return lower
	case NamespaceSVG:
		if camel, ok := svgAttributeNameAdjustments[lower]; ok {
			return camel
		}
		return lower
	default:
		return lower
	}
}

// foreignAttributeSpaceForms rewrites a small set of namespaced attribute
// names by replacing their colon with a space, for SVG and MathML content.
var foreignAttributeSpaceForms = map[string]string{
	"xlink:actuate": "xlink actuate",
	"xlink:arcrole": "xlink arcrole",
	"xlink:href":    "xlink href",
	"xlink:role":    "xlink role",
	"xlink:show":    "xlink show",
	"xlink:title":   "xlink title",
	"xlink:type":    "xlink type",
	"xml:lang":      "xml lang",
	"xml:space":     "xml space",
	"xmlns":         "xmlns",
	"xmlns:xlink":   "xmlns xlink",
}

// svgAttributeNameAdjustments is the HTML Living Standard's closed list of
// SVG attribute names that must be restored to their camelCase spelling
// after the tokenizer lowercases them.
var svgAttributeNameAdjustments = map[string]string{
	"attributename":       "attributeName",
	"attributetype":       "attributeType",
	"basefrequency":       "baseFrequency",
	"baseprofile":         "baseProfile",
	"calcmode":            "calcMode",
	"clippathunits":       "clipPathUnits",
	"diffuseconstant":     "diffuseConstant",
	"edgemode":            "edgeMode",
	"filterunits":         "filterUnits",
	"glyphref":            "glyphRef",
	"gradienttransform":   "gradientTransform",
	"gradientunits":       "gradientUnits",
	"kernelmatrix":        "kernelMatrix",
	"kernelunitlength":    "kernelUnitLength",
	"keypoints":           "keyPoints",
	"keysplines":          "keySplines",
	"keytimes":            "keyTimes",
	"lengthadjust":        "lengthAdjust",
	"limitingconeangle":   "limitingConeAngle",
	"markerheight":        "markerHeight",
	"markerunits":         "markerUnits",
	"markerwidth":         "markerWidth",
	"maskcontentunits":    "maskContentUnits",
	"maskunits":           "maskUnits",
	"numoctaves":          "numOctaves",
	"pathlength":          "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":    "patternTransform",
	"patternunits":        "patternUnits",
	"pointsatx":           "pointsAtX",
	"pointsaty":           "pointsAtY",
	"pointsatz":           "pointsAtZ",
	"preservealpha":       "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":      "primitiveUnits",
	"refx":                "refX",
	"refy":                "refY",
	"repeatcount":         "repeatCount",
	"repeatdur":           "repeatDur",
	"requiredextensions":  "requiredExtensions",
	"requiredfeatures":    "requiredFeatures",
	"specularconstant":    "specularConstant",
	"specularexponent":    "specularExponent",
	"spreadmethod":        "spreadMethod",
	"startoffset":         "startOffset",
	"stddeviation":        "stdDeviation",
	"stitchtiles":         "stitchTiles",
	"surfacescale":        "surfaceScale",
	"systemlanguage":      "systemLanguage",
	"tablevalues":         "tableValues",
	"targetx":             "targetX",
	"targety":             "targetY",
	"textlength":          "textLength",
	"viewbox":             "viewBox",
	"viewtarget":          "viewTarget",
	"xchannelselector":    "xChannelSelector",
	"ychannelselector":    "yChannelSelector",
	"zoomandpan":          "zoomAndPan",
}

// svgTagNameAdjustments is the HTML Living Standard's closed list of SVG tag
// names that must be restored to their camelCase spelling.
var svgTagNameAdjustments = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}
