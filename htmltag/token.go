package htmltag

// ParserState is the tokenizer's own coarse state, distinct from the finer
// sub-states used while scanning a single token (script data escape levels,
// DOCTYPE sub-states, and so on).
type ParserState int

const (
	// StateReady means the cursor sits at the start of an as-yet-unparsed
	// token.
	StateReady ParserState = iota
	// StateComplete means the entire input has been consumed.
	StateComplete
	// StateIncompleteInput means the cursor stopped mid-token because the
	// input ended before the token could be completed. The cursor has been
	// rewound to the start of that token.
	StateIncompleteInput
	StateMatchedTag
	StateTextNode
	StateCDATANode
	StateComment
	StateDoctype
	// StatePresumptuousTag is the empty closing tag `</>`.
	StatePresumptuousTag
	// StateFunkyComment is a closing tag whose first character after `</`
	// is not an ASCII letter, e.g. `</3>`.
	StateFunkyComment
)

func (s ParserState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateComplete:
		return "complete"
	case StateIncompleteInput:
		return "incomplete-input"
	case StateMatchedTag:
		return "matched-tag"
	case StateTextNode:
		return "text-node"
	case StateCDATANode:
		return "cdata-node"
	case StateComment:
		return "comment"
	case StateDoctype:
		return "doctype"
	case StatePresumptuousTag:
		return "presumptuous-tag"
	case StateFunkyComment:
		return "funky-comment"
	default:
		return "unknown"
	}
}

// TokenType is the externally visible classification returned by
// Processor.TokenType, mirroring the WHATWG names used by the standard's
// tree-builder collaborators.
type TokenType int

const (
	TokenNone TokenType = iota
	TokenTag
	TokenText
	TokenCdataSection
	TokenComment
	TokenDoctype
	TokenPresumptuousTag
	TokenFunkyComment
)

func (t TokenType) String() string {
	switch t {
	case TokenTag:
		return "#tag"
	case TokenText:
		return "#text"
	case TokenCdataSection:
		return "#cdata-section"
	case TokenComment:
		return "#comment"
	case TokenDoctype:
		return "#doctype"
	case TokenPresumptuousTag:
		return "#presumptuous-tag"
	case TokenFunkyComment:
		return "#funky-comment"
	default:
		return ""
	}
}

// CommentType further classifies a StateComment token.
type CommentType int

const (
	CommentNone CommentType = iota
	CommentAbruptlyClosed
	CommentCdataLookalike
	CommentHTML
	CommentPiNodeLookalike
	CommentInvalidHTML
)

// TextNodeClassification further classifies a StateTextNode token, as
// produced by Processor.SubdivideTextAppropriately.
type TextNodeClassification int

const (
	TextGeneric TextNodeClassification = iota
	TextNullSequence
	TextWhitespace
)

// Namespace is the foreign-content namespace the tokenizer is currently
// parsing in. It never changes on its own; a tree-builder collaborator
// drives it via ChangeParsingNamespace.
type Namespace int

const (
	NamespaceHTML Namespace = iota
	NamespaceSVG
	NamespaceMathML
)

func (n Namespace) String() string {
	switch n {
	case NamespaceSVG:
		return "svg"
	case NamespaceMathML:
		return "mathml"
	default:
		return "html"
	}
}

// TagName is the name of a matched tag as read from the input, without any
// namespace adjustment (see Processor.GetQualifiedTagName). Arbitrary marks processing-instruction-lookalike
// targets, which are not validated against any known tag set.
type TagName struct {
	// Name is the lowercase HTML tag name, e.g. "div", "script".
	Name string
	// Arbitrary is true when Name did not come from a recognized tag token
	// (a PI-lookalike comment's target).
	Arbitrary bool
}

// NodeName identifies the current token for callers that want a single
// comparable value regardless of token kind.
type NodeName struct {
	Tag   TagName
	Token TokenType
	IsTag bool
}

// AttributeValue is the decoded value of an attribute: a boolean attribute
// carries no string, a valued attribute carries its entity-decoded bytes.
type AttributeValue struct {
	IsBoolean bool
	Bool      bool
	String    []byte
}

// AttributeToken records the byte-offset span of one parsed attribute.
// Length covers the entire attribute syntax, from the first name byte
// through any closing quote.
type AttributeToken struct {
	Start          int
	Length         int
	NameLength     int
	ValueStartsAt  int
	ValueLength    int
	IsTrue         bool
}

// Span is a byte-offset range into the input buffer.
type Span struct {
	Start  int
	Length int
}

// End returns the first offset after the span.
func (s Span) End() int { return s.Start + s.Length }

// IsZero reports whether both Start and Length are 0.
func (s Span) IsZero() bool { return s.Start == 0 && s.Length == 0 }
