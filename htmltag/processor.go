package htmltag

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dpotapov/go-htmltag/htmltag/entities"
	"github.com/dpotapov/go-htmltag/htmltag/internal/wellknown"
)

// TagCloserPolicy controls whether NextTag's query considers closing tags a
// possible match.
type TagCloserPolicy int

const (
	SkipClosers TagCloserPolicy = iota
	VisitClosers
)

// TagQuery narrows NextTag to tokens matching every non-zero field. An empty
// TagName or ClassName matches any tag; MatchOffset counts matches starting
// at 1 and defaults to 1 when left at its zero value.
type TagQuery struct {
	TagName     string
	ClassName   string
	MatchOffset int
	TagClosers  TagCloserPolicy
}

// Processor is a streaming, single-pass tokenizer over an HTML byte buffer.
// Its exported fields are configuration and must be set, if at all, before
// the first call to any other method. Create one with NewProcessor; the input
// buffer is unexported, so a plain struct literal cannot supply it.
type Processor struct {
	Logger                       *slog.Logger
	BookmarkLimit                int
	LexicalUpdateFlushThreshold  int

	initOnce sync.Once

	html   []byte
	cursor int
	state  ParserState

	tokenStartsAt int
	tokenLength   int

	hasTagName      bool
	tagNameStartsAt int
	tagNameLength   int

	hasTextSpan bool
	textStartsAt int
	textLength   int

	isClosingTag            bool
	commentType              CommentType
	textNodeClassification   TextNodeClassification
	skipNewlineAt            int

	attributes     []rawAttribute
	attributeIndex map[string]int

	parsingNamespace Namespace

	bookmarksTable *bookmarks
	lexUpdates     *lexicalUpdateQueue
}

// NewProcessor returns a Processor ready to scan html from its first byte.
func NewProcessor(html []byte) *Processor {
	return &Processor{html: html, skipNewlineAt: -1}
}

func (p *Processor) init() {
	p.initOnce.Do(func() {
		if p.Logger == nil {
			p.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		if p.BookmarkLimit <= 0 {
			p.BookmarkLimit = defaultBookmarkLimit
		}
		if p.LexicalUpdateFlushThreshold <= 0 {
			p.LexicalUpdateFlushThreshold = defaultLexicalUpdateFlushThreshold
		}
		p.bookmarksTable = newBookmarks(p.BookmarkLimit, p.Logger)
		p.lexUpdates = newLexicalUpdateQueue(p.LexicalUpdateFlushThreshold, p.Logger)
		p.attributeIndex = make(map[string]int)
		if p.skipNewlineAt == 0 {
			p.skipNewlineAt = -1
		}
	})
}

// PausedAtIncompleteToken reports whether the last NextToken call stopped
// because the buffer ended mid-token, leaving the cursor rewound to the
// start of that token.
func (p *Processor) PausedAtIncompleteToken() bool {
	return p.state == StateIncompleteInput
}

// Namespace reports the foreign-content namespace currently in effect.
func (p *Processor) Namespace() Namespace {
	return p.parsingNamespace
}

// ChangeParsingNamespace switches the namespace used to qualify subsequent
// tag and attribute names. It performs no validation against the current
// token and always succeeds; the boolean return exists for symmetry with
// the rest of the package's boolean error channel.
func (p *Processor) ChangeParsingNamespace(ns Namespace) bool {
	p.init()
	p.parsingNamespace = ns
	return true
}

// afterTag resets per-token state and, if enough lexical updates have
// queued up, materializes them into a new buffer before the next token is
// read.
func (p *Processor) afterTag() {
	if p.lexUpdates.shouldFlush() {
		newHTML := p.lexUpdates.flush(p.html)
		delta := len(newHTML) - len(p.html)
		if delta != 0 {
			p.bookmarksTable.shiftAfter(p.cursor, delta)
		}
		p.html = newHTML
	}

	p.tokenStartsAt = 0
	p.tokenLength = 0
	p.hasTagName = false
	p.tagNameStartsAt = 0
	p.tagNameLength = 0
	p.hasTextSpan = false
	p.textStartsAt = 0
	p.textLength = 0
	p.isClosingTag = false
	p.commentType = CommentNone
	p.textNodeClassification = TextGeneric
	p.attributes = p.attributes[:0]
	for k := range p.attributeIndex {
		delete(p.attributeIndex, k)
	}
}

// NextToken advances the cursor past the current token and parses the next
// one, reporting whether a complete token was found. It returns false both
// when the input is exhausted (PausedAtIncompleteToken reports false) and
// when the remaining bytes don't form a complete token
// (PausedAtIncompleteToken reports true and the cursor has been rewound).
func (p *Processor) NextToken() bool {
	p.init()
	p.afterTag()

	if p.state == StateComplete {
		return false
	}

	wasAt := p.cursor
	p.state = StateReady
	defer func() {
		if p.state == StateIncompleteInput {
			p.Logger.Debug("htmltag: paused at incomplete token", "offset", p.cursor)
		}
	}()

	if p.cursor >= len(p.html) {
		p.state = StateComplete
		return false
	}

	if !p.parseNextTag() {
		if p.state == StateIncompleteInput {
			p.cursor = wasAt
		}
		return false
	}

	if p.state != StateMatchedTag {
		return true
	}

	for {
		tok, nameLow, ok := p.parseNextAttribute()
		if p.state == StateIncompleteInput {
			p.cursor = wasAt
			return false
		}
		if !ok {
			break
		}
		if !p.isClosingTag {
			p.pushAttribute(tok, nameLow)
		}
	}

	p.cursor += spanWhile(p.html, p.cursor, isWhitespace)
	if p.cursor < len(p.html) && p.html[p.cursor] == '/' {
		p.cursor++
	}
	if p.cursor >= len(p.html) || p.html[p.cursor] != '>' {
		p.state = StateIncompleteInput
		p.cursor = wasAt
		return false
	}
	p.cursor++
	p.tokenLength = p.cursor - p.tokenStartsAt

	if p.isClosingTag || p.parsingNamespace != NamespaceHTML {
		return true
	}

	tagLower := strings.ToLower(string(p.html[p.tagNameStartsAt : p.tagNameStartsAt+p.tagNameLength]))
	if len(tagLower) == 0 || !wellknown.HasRelevantFirstLetter(tagLower[0]) {
		return true
	}

	openTagStart := p.tokenStartsAt
	openTagEnd := p.cursor

	switch wellknown.SelfContainedKindOf(tagLower) {
	case wellknown.SkipScriptData:
		if !p.skipScriptData(openTagStart, openTagEnd) {
			p.cursor = wasAt
			return false
		}
	case wellknown.SkipRCData:
		if !p.skipRCData(tagLower, openTagStart, openTagEnd) {
			p.cursor = wasAt
			return false
		}
	case wellknown.SkipRawtext:
		if !p.skipRawtext(tagLower, openTagStart, openTagEnd) {
			p.cursor = wasAt
			return false
		}
	}

	if wellknown.SkipsLeadingNewline(tagLower) {
		p.skipNewlineAt = openTagEnd
	}

	return true
}

// parseNextTag implements step 2 onward of the tokenizer algorithm: find the
// next token boundary, classify it, and record its span. Plain text runs are
// emitted as their own token before the '<' that follows them is examined.
func (p *Processor) parseNextTag() bool {
	h := p.html
	start := p.cursor
	pos := start

	for {
		lt := findByte(h, pos, '<')
		if lt < 0 {
			if start < len(h) {
				p.emitText(start, len(h))
				return true
			}
			p.state = StateComplete
			return false
		}
		if lt > start {
			p.emitText(start, lt)
			return true
		}

		at := lt + 1
		if at >= len(h) {
			p.state = StateIncompleteInput
			return false
		}

		switch b := h[at]; {
		case b == '/':
			return p.parseClosingTag(lt, at+1)
		case b == '!':
			return p.parseMarkupDeclaration(lt)
		case b == '?':
			return p.parseBogusComment(lt)
		case isAsciiAlpha(b):
			p.isClosingTag = false
			return p.parseTagNameAndEnterAttributes(lt, at)
		default:
			pos = at
			continue
		}
	}
}

func (p *Processor) emitText(start, end int) {
	p.tokenStartsAt = start
	p.tokenLength = end - start
	p.hasTextSpan = true
	p.textStartsAt = start
	p.textLength = end - start
	p.cursor = end
	p.state = StateTextNode
}

func isTagNameTerminator(b byte) bool {
	return isWhitespace(b) || b == '/' || b == '>'
}

func (p *Processor) parseTagNameAndEnterAttributes(tokenStart, nameStart int) bool {
	h := p.html
	nameLen := spanUntil(h, nameStart, isTagNameTerminator)

	p.tokenStartsAt = tokenStart
	p.hasTagName = true
	p.tagNameStartsAt = nameStart
	p.tagNameLength = nameLen
	p.cursor = nameStart + nameLen
	p.state = StateMatchedTag
	return true
}

func (p *Processor) parseClosingTag(lt, nameStart int) bool {
	h := p.html
	if nameStart >= len(h) {
		p.state = StateIncompleteInput
		return false
	}

	b := h[nameStart]
	switch {
	case isAsciiAlpha(b):
		p.isClosingTag = true
		return p.parseTagNameAndEnterAttributes(lt, nameStart)
	case b == '>':
		p.tokenStartsAt = lt
		p.tokenLength = nameStart + 1 - lt
		p.cursor = nameStart + 1
		p.state = StatePresumptuousTag
		return true
	default:
		gt := findByte(h, nameStart, '>')
		if gt < 0 {
			p.state = StateIncompleteInput
			return false
		}
		p.tokenStartsAt = lt
		p.hasTextSpan = true
		p.textStartsAt = nameStart
		p.textLength = gt - nameStart
		p.cursor = gt + 1
		p.tokenLength = p.cursor - lt
		p.state = StateFunkyComment
		return true
	}
}

func (p *Processor) parseMarkupDeclaration(lt int) bool {
	h := p.html
	switch {
	case hasPrefix(h, lt, []byte("<!--")):
		return p.parseComment(lt, lt+4)
	case hasPrefixFold(h, lt, []byte("<!DOCTYPE")):
		return p.parseDoctypeToken(lt, lt+9)
	case p.parsingNamespace != NamespaceHTML && hasPrefix(h, lt, []byte("<![CDATA[")):
		return p.parseCdataSection(lt, lt+9)
	default:
		return p.scanBogusComment(lt, lt+2, CommentInvalidHTML, false)
	}
}

func (p *Processor) parseBogusComment(lt int) bool {
	return p.scanBogusComment(lt, lt+2, CommentInvalidHTML, true)
}

// scanBogusComment handles both an unrecognized `<!...>` markup declaration
// and a `<?...>` processing-instruction-lookalike; the latter additionally
// gets a chance to be reclassified as a named PI-lookalike target.
func (p *Processor) scanBogusComment(lt, bodyStart int, ct CommentType, tryPI bool) bool {
	h := p.html
	gt := findByte(h, bodyStart, '>')
	if gt < 0 {
		p.state = StateIncompleteInput
		return false
	}
	p.tokenStartsAt = lt
	p.hasTextSpan = true
	p.textStartsAt = bodyStart
	p.textLength = gt - bodyStart
	p.cursor = gt + 1
	p.tokenLength = p.cursor - lt
	p.commentType = ct
	p.state = StateComment

	if tryPI {
		p.tryReclassifyPI(bodyStart, gt)
	}
	return true
}

func isPiTargetStart(b byte) bool { return isAsciiAlpha(b) || b == ':' || b == '_' }
func isPiTargetCont(b byte) bool {
	return isAsciiAlnum(b) || b == ':' || b == '_' || b == '.' || b == '-'
}

// tryReclassifyPI checks whether the bogus-comment body between bodyStart
// and gt (exclusive of the closing '>') is of the form `target ... ?`, and
// if so splits it into a PI-lookalike target and trailing text.
func (p *Processor) tryReclassifyPI(bodyStart, gt int) {
	h := p.html
	if gt-1 < bodyStart || h[gt-1] != '?' {
		return
	}
	inner := gt - 1
	if bodyStart >= inner || !isPiTargetStart(h[bodyStart]) {
		return
	}
	targetLen := 1 + spanWhile(h, bodyStart+1, isPiTargetCont)
	if bodyStart+targetLen > inner {
		targetLen = inner - bodyStart
	}

	p.commentType = CommentPiNodeLookalike
	p.hasTagName = true
	p.tagNameStartsAt = bodyStart
	p.tagNameLength = targetLen
	p.textStartsAt = bodyStart + targetLen
	p.textLength = inner - (bodyStart + targetLen)
}

func findCommentCloser(h []byte, from int) (idx int, length int) {
	i1 := findBytes(h, from, []byte("-->"))
	i2 := findBytes(h, from, []byte("--!>"))
	switch {
	case i1 < 0 && i2 < 0:
		return -1, 0
	case i1 < 0:
		return i2, 4
	case i2 < 0:
		return i1, 3
	case i1 <= i2:
		return i1, 3
	default:
		return i2, 4
	}
}

func (p *Processor) parseComment(lt, bodyStart int) bool {
	h := p.html

	if bodyStart < len(h) && h[bodyStart] == '>' {
		p.finishAbruptComment(lt, bodyStart, bodyStart+1)
		return true
	}
	if bodyStart+1 < len(h) && h[bodyStart] == '-' && h[bodyStart+1] == '>' {
		p.finishAbruptComment(lt, bodyStart, bodyStart+2)
		return true
	}

	closerIdx, closerLen := findCommentCloser(h, bodyStart)
	if closerIdx < 0 {
		p.state = StateIncompleteInput
		return false
	}

	p.tokenStartsAt = lt
	p.hasTextSpan = true
	textLen := closerIdx - bodyStart
	p.textStartsAt = bodyStart
	p.textLength = textLen
	p.cursor = closerIdx + closerLen
	p.tokenLength = p.cursor - lt
	p.commentType = CommentHTML
	p.state = StateComment

	if textLen >= 9 && hasPrefix(h, bodyStart, []byte("[CDATA[")) &&
		h[bodyStart+textLen-2] == ']' && h[bodyStart+textLen-1] == ']' {
		p.commentType = CommentCdataLookalike
		p.textStartsAt = bodyStart + 7
		p.textLength = textLen - 7 - 2
	}
	return true
}

func (p *Processor) finishAbruptComment(lt, bodyStart, cursorAfter int) {
	p.tokenStartsAt = lt
	p.hasTextSpan = true
	p.textStartsAt = bodyStart
	p.textLength = 0
	p.cursor = cursorAfter
	p.tokenLength = p.cursor - lt
	p.commentType = CommentAbruptlyClosed
	p.state = StateComment
}

func (p *Processor) parseDoctypeToken(lt, bodyStart int) bool {
	h := p.html
	gt := findByte(h, bodyStart, '>')
	if gt < 0 {
		p.state = StateIncompleteInput
		return false
	}
	p.tokenStartsAt = lt
	p.hasTextSpan = true
	p.textStartsAt = bodyStart
	p.textLength = gt - bodyStart
	p.cursor = gt + 1
	p.tokenLength = p.cursor - lt
	p.state = StateDoctype
	return true
}

func (p *Processor) parseCdataSection(lt, bodyStart int) bool {
	h := p.html
	closer := findBytes(h, bodyStart, []byte("]]>"))
	if closer < 0 {
		p.state = StateIncompleteInput
		return false
	}
	p.tokenStartsAt = lt
	p.hasTextSpan = true
	p.textStartsAt = bodyStart
	p.textLength = closer - bodyStart
	p.cursor = closer + 3
	p.tokenLength = p.cursor - lt
	p.state = StateCDATANode
	return true
}

func isSelfContainedNameBoundary(h []byte, idx int) bool {
	return idx < len(h) && (isWhitespace(h[idx]) || h[idx] == '/' || h[idx] == '>')
}

type scriptEscapeState int

const (
	scriptUnescaped scriptEscapeState = iota
	scriptEscaped
	scriptDoubleEscaped
)

// skipScriptData implements the SCRIPT element's three-state escape machine
// (§4.5 step 9): plain script content can contain HTML-comment-like
// sequences that suppress recognition of a literal `</script`.
func (p *Processor) skipScriptData(openTagStart, openTagEnd int) bool {
	h := p.html
	pos := openTagEnd
	state := scriptUnescaped

	for pos < len(h) {
		switch {
		case hasPrefix(h, pos, []byte("-->")):
			state = scriptUnescaped
			pos += 3
		case state == scriptUnescaped && hasPrefix(h, pos, []byte("<!--")):
			state = scriptEscaped
			pos += 4
		case state == scriptEscaped && hasPrefixFold(h, pos, []byte("<script")) &&
			isSelfContainedNameBoundary(h, pos+7) && (pos == 0 || h[pos-1] != '/'):
			state = scriptDoubleEscaped
			pos += 7
		case state == scriptDoubleEscaped && hasPrefixFold(h, pos, []byte("</script")) &&
			isSelfContainedNameBoundary(h, pos+8):
			state = scriptEscaped
			pos += 8
		case hasPrefixFold(h, pos, []byte("</script")) && isSelfContainedNameBoundary(h, pos+8):
			return p.finishSelfContained(openTagStart, openTagEnd, pos, 8)
		default:
			pos++
		}
	}
	p.state = StateIncompleteInput
	return false
}

func (p *Processor) skipRCData(tagLower string, openTagStart, openTagEnd int) bool {
	return p.skipUntilClosingTag(tagLower, openTagStart, openTagEnd)
}

func (p *Processor) skipRawtext(tagLower string, openTagStart, openTagEnd int) bool {
	return p.skipUntilClosingTag(tagLower, openTagStart, openTagEnd)
}

func (p *Processor) skipUntilClosingTag(tagLower string, openTagStart, openTagEnd int) bool {
	h := p.html
	needle := []byte("</" + tagLower)
	pos := openTagEnd
	for pos < len(h) {
		if hasPrefixFold(h, pos, needle) && isSelfContainedNameBoundary(h, pos+len(needle)) {
			return p.finishSelfContained(openTagStart, openTagEnd, pos, len(needle))
		}
		pos++
	}
	p.state = StateIncompleteInput
	return false
}

// finishSelfContained records the text span between an opener and its
// closer, then parses (and discards) the closer's attributes to find the
// `>` that ends the whole self-contained token.
func (p *Processor) finishSelfContained(openTagStart, openTagEnd, closerAt, closerNameLen int) bool {
	h := p.html

	p.hasTextSpan = true
	p.textStartsAt = openTagEnd
	p.textLength = closerAt - openTagEnd

	p.hasTagName = true
	p.tagNameStartsAt = closerAt + 2
	p.tagNameLength = closerNameLen - 2

	p.cursor = closerAt + closerNameLen
	for {
		_, _, ok := p.parseNextAttribute()
		if p.state == StateIncompleteInput {
			return false
		}
		if !ok {
			break
		}
	}
	p.cursor += spanWhile(h, p.cursor, isWhitespace)
	if p.cursor < len(h) && h[p.cursor] == '/' {
		p.cursor++
	}
	if p.cursor >= len(h) || h[p.cursor] != '>' {
		p.state = StateIncompleteInput
		return false
	}
	p.cursor++

	p.tokenStartsAt = openTagStart
	p.tokenLength = p.cursor - openTagStart
	p.state = StateMatchedTag
	return true
}

func (p *Processor) pushAttribute(tok AttributeToken, nameLow string) {
	if _, exists := p.attributeIndex[nameLow]; exists {
		return
	}
	p.attributeIndex[nameLow] = len(p.attributes)
	p.attributes = append(p.attributes, rawAttribute{token: tok, nameLow: nameLow})
}

// NextTag advances through tokens until one matching query is found (or the
// input is exhausted), returning whether a match was found.
func (p *Processor) NextTag(query TagQuery) bool {
	p.init()
	offset := query.MatchOffset
	if offset <= 0 {
		offset = 1
	}

	matches := 0
	for p.NextToken() {
		tt, ok := p.TokenType()
		if !ok || tt != TokenTag {
			continue
		}
		if p.isClosingTag && query.TagClosers == SkipClosers {
			continue
		}
		if query.TagName != "" {
			tag, ok := p.Tag()
			if !ok || !strings.EqualFold(tag.Name, query.TagName) {
				continue
			}
		}
		if query.ClassName != "" {
			has, ok := p.HasClass(query.ClassName)
			if !ok || !has {
				continue
			}
		}
		matches++
		if matches >= offset {
			return true
		}
	}
	return false
}

// TokenType reports the kind of the current token, or (TokenNone, false) if
// the processor isn't positioned on one (Ready, Complete, IncompleteInput).
func (p *Processor) TokenType() (TokenType, bool) {
	switch p.state {
	case StateMatchedTag:
		return TokenTag, true
	case StateDoctype:
		return TokenDoctype, true
	case StateTextNode:
		return TokenText, true
	case StateCDATANode:
		return TokenCdataSection, true
	case StateComment:
		return TokenComment, true
	case StatePresumptuousTag:
		return TokenPresumptuousTag, true
	case StateFunkyComment:
		return TokenFunkyComment, true
	default:
		return TokenNone, false
	}
}

// TokenName identifies the current token: a tag's lowercase name for
// TokenTag, or the token type itself otherwise.
func (p *Processor) TokenName() (NodeName, bool) {
	tt, ok := p.TokenType()
	if !ok {
		return NodeName{}, false
	}
	if tt == TokenTag {
		tag, _ := p.Tag()
		return NodeName{Tag: tag, IsTag: true}, true
	}
	return NodeName{Token: tt}, true
}

// Tag returns the current tag token's name, or (zero, false) if the
// processor isn't on a tag, self-contained element, or PI-lookalike
// comment.
func (p *Processor) Tag() (TagName, bool) {
	if !p.hasTagName {
		return TagName{}, false
	}
	raw := p.html[p.tagNameStartsAt : p.tagNameStartsAt+p.tagNameLength]
	if p.state == StateComment && p.commentType == CommentPiNodeLookalike {
		return TagName{Name: string(raw), Arbitrary: true}, true
	}
	return TagName{Name: string(toAsciiLower(raw))}, true
}

// GetQualifiedTagName returns the current tag's namespace-adjusted name.
func (p *Processor) GetQualifiedTagName() (string, bool) {
	tag, ok := p.Tag()
	if !ok || tag.Arbitrary {
		return "", false
	}
	return QualifiedTagName(tag.Name, p.parsingNamespace), true
}

// GetQualifiedAttributeName returns name's namespace-adjusted form while the
// processor is positioned on a tag.
func (p *Processor) GetQualifiedAttributeName(name string) (string, bool) {
	if p.state != StateMatchedTag {
		return "", false
	}
	return QualifiedAttributeName(name, p.parsingNamespace), true
}

// IsTagClosing reports whether the current tag is a closing tag. BR is
// never considered closing even when spelled `</br>`, matching how browsers
// treat it as an implicit opener.
func (p *Processor) IsTagClosing() bool {
	if p.state != StateMatchedTag || !p.isClosingTag {
		return false
	}
	tag, ok := p.Tag()
	if ok && wellknown.Br(tag.Name) {
		return false
	}
	return true
}

// HasSelfClosingFlag reports whether the current tag's syntax ends in `/>`.
// It carries no meaning for void elements, which close regardless.
func (p *Processor) HasSelfClosingFlag() bool {
	if p.state != StateMatchedTag {
		return false
	}
	end := p.tokenStartsAt + p.tokenLength
	return end >= 2 && p.html[end-2] == '/'
}

// Attribute returns the decoded value of the named attribute (already
// ASCII-lowercased by the caller), or (zero, false) if it isn't present.
func (p *Processor) Attribute(nameLower string) (AttributeValue, bool) {
	if p.state != StateMatchedTag {
		return AttributeValue{}, false
	}
	idx, ok := p.attributeIndex[nameLower]
	if !ok {
		return AttributeValue{}, false
	}
	raw := p.attributes[idx]
	if raw.token.IsTrue {
		return AttributeValue{IsBoolean: true, Bool: true}, true
	}
	valueBytes := p.html[raw.token.ValueStartsAt : raw.token.ValueStartsAt+raw.token.ValueLength]
	decoded := entities.DecodeAll(entities.Attribute, valueBytes)
	return AttributeValue{String: decoded}, true
}

// GetAttributeNamesWithPrefix returns every attribute name (lowercased,
// first-occurrence order) starting with prefix.
func (p *Processor) GetAttributeNamesWithPrefix(prefix string) ([]string, bool) {
	if p.state != StateMatchedTag {
		return nil, false
	}
	prefixLower := string(toAsciiLower([]byte(prefix)))
	var names []string
	for _, a := range p.attributes {
		if strings.HasPrefix(a.nameLow, prefixLower) {
			names = append(names, a.nameLow)
		}
	}
	return names, true
}

func normalizeNewlines(h []byte) []byte {
	out := make([]byte, 0, len(h))
	for i := 0; i < len(h); i++ {
		switch h[i] {
		case '\r':
			out = append(out, '\n')
			if i+1 < len(h) && h[i+1] == '\n' {
				i++
			}
		default:
			out = append(out, h[i])
		}
	}
	return out
}

func removeNulBytes(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != 0 {
			out = append(out, c)
		}
	}
	return out
}

func replaceNulFFFD(b []byte) []byte {
	return replaceNulWithReplacementChar(b)
}

// GetModifiableText returns the current token's text content, decoded and
// normalized according to the token's kind and (for text nodes and
// RCDATA elements) the active namespace.
func (p *Processor) GetModifiableText() []byte {
	if !p.hasTextSpan {
		return []byte{}
	}
	raw := p.html[p.textStartsAt : p.textStartsAt+p.textLength]
	normalized := normalizeNewlines(raw)

	switch p.state {
	case StateComment, StateCDATANode, StateDoctype, StateFunkyComment:
		return replaceNulFFFD(normalized)
	case StateMatchedTag:
		tagLower := ""
		if tag, ok := p.Tag(); ok {
			tagLower = tag.Name
		}
		switch wellknown.SelfContainedKindOf(tagLower) {
		case wellknown.SkipScriptData, wellknown.SkipRawtext:
			return replaceNulFFFD(normalized)
		case wellknown.SkipRCData:
			decoded := entities.DecodeAll(entities.BodyText, normalized)
			return p.finalizeBodyText(decoded, tagLower)
		default:
			return replaceNulFFFD(normalized)
		}
	default:
		decoded := entities.DecodeAll(entities.BodyText, normalized)
		return p.finalizeBodyText(decoded, "")
	}
}

func (p *Processor) finalizeBodyText(decoded []byte, tagLower string) []byte {
	if len(decoded) > 0 && decoded[0] == '\n' {
		dropLeadingLF := wellknown.Textarea(tagLower) || p.skipNewlineAt == p.tokenStartsAt
		if dropLeadingLF {
			decoded = decoded[1:]
		}
	}
	if p.parsingNamespace == NamespaceHTML {
		return removeNulBytes(decoded)
	}
	return replaceNulFFFD(decoded)
}

// GetFullCommentText returns the text of a comment or funky comment token,
// newline-normalized with NUL bytes replaced by U+FFFD; character
// references are not decoded.
func (p *Processor) GetFullCommentText() ([]byte, bool) {
	if p.state != StateComment && p.state != StateFunkyComment {
		return nil, false
	}
	return p.GetModifiableText(), true
}

// GetDoctypeInfo parses the current DOCTYPE token's properties.
func (p *Processor) GetDoctypeInfo() (*DoctypeInfo, bool) {
	if p.state != StateDoctype {
		return nil, false
	}
	return ParseDoctype(p.html[p.tokenStartsAt : p.tokenStartsAt+p.tokenLength])
}

func (p *Processor) classAttributeValue() ([]byte, bool) {
	v, ok := p.Attribute("class")
	if !ok {
		return nil, false
	}
	if v.IsBoolean {
		return nil, true
	}
	return v.String, true
}

// ClassList returns an iterator over the current tag's class attribute.
func (p *Processor) ClassList() *ClassList {
	v, _ := p.classAttributeValue()
	return NewClassList(v)
}

// HasClass reports whether name is present in the current tag's class
// attribute. The second return is false if there is no class attribute at
// all.
func (p *Processor) HasClass(name string) (bool, bool) {
	v, ok := p.classAttributeValue()
	if !ok {
		return false, false
	}
	return HasClass(v, []byte(name), false), true
}

// SubdivideTextAppropriately narrows the current text token to its leading
// run of NUL bytes, whitespace, or a single leading whitespace-only
// character reference, reclassifying it accordingly. It reports whether any
// narrowing happened.
func (p *Processor) SubdivideTextAppropriately() bool {
	if p.state != StateTextNode {
		return false
	}
	h := p.html
	start := p.textStartsAt

	if nulLen := spanWhile(h, start, func(b byte) bool { return b == 0 }); nulLen > 0 {
		p.shortenCurrentText(nulLen)
		p.textNodeClassification = TextNullSequence
		return true
	}

	if wsLen := spanWhile(h, start, isWhitespace); wsLen > 0 {
		p.shortenCurrentText(wsLen)
		p.textNodeClassification = TextWhitespace
		return true
	}

	if start < len(h) && h[start] == '&' {
		ref, consumed, ok := entities.DecodeRef(entities.BodyText, h, start)
		if ok && len(ref) > 0 && isWhitespace(ref[0]) {
			p.shortenCurrentText(consumed)
			p.textNodeClassification = TextWhitespace
			return true
		}
	}

	return false
}

func (p *Processor) shortenCurrentText(newLen int) {
	p.textLength = newLen
	p.tokenLength = (p.textStartsAt + newLen) - p.tokenStartsAt
	p.cursor = p.tokenStartsAt + p.tokenLength
}

// SetBookmark names the current token's span for later Seek, failing if
// there is no current token or the bookmark table is at BookmarkLimit.
func (p *Processor) SetBookmark(name string) error {
	p.init()
	if p.state == StateComplete || p.state == StateIncompleteInput || p.state == StateReady {
		return ErrBookmarkUnavailable
	}
	return p.bookmarksTable.set(name, Span{Start: p.tokenStartsAt, Length: p.tokenLength})
}

// HasBookmark reports whether name names a live bookmark.
func (p *Processor) HasBookmark(name string) bool {
	p.init()
	return p.bookmarksTable.has(name)
}

// ReleaseBookmark forgets name, reporting whether it had existed.
func (p *Processor) ReleaseBookmark(name string) bool {
	p.init()
	return p.bookmarksTable.release(name)
}

// Seek moves the cursor to the start of name's bookmarked token, so the next
// NextToken call re-parses it. It reports whether name names a live
// bookmark.
func (p *Processor) Seek(name string) bool {
	p.init()
	span, ok := p.bookmarksTable.get(name)
	if !ok {
		return false
	}
	p.cursor = span.Start
	p.state = StateReady
	return true
}
