package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dpotapov/go-htmltag/htmltag"
)

// demoNode is one level of the demo tree built by renderTree. It tracks
// nothing but tag name and nesting depth — no insertion modes, no implied
// end tags, no adoption agency. It exists only to give the CLI a --tree
// rendering mode and makes no conformance claim about the resulting
// structure.
type demoNode struct {
	name  string
	depth int
}

// renderTree walks every tag token in p, indenting by a naive open/close
// stack depth, and writes one line per opening tag to w. Self-contained
// elements (script/style/textarea/title) never get a matching "close" line
// walked into, since their contents were already skipped by the tokenizer.
func renderTree(p *htmltag.Processor, w io.Writer) error {
	var stack []demoNode

	for p.NextToken() {
		tt, ok := p.TokenType()
		if !ok || tt != htmltag.TokenTag {
			continue
		}

		tag, ok := p.Tag()
		if !ok {
			continue
		}

		if p.IsTagClosing() {
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name == tag.Name {
					stack = stack[:i]
					break
				}
			}
			continue
		}

		depth := len(stack)
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), tag.Name)

		if !p.HasSelfClosingFlag() {
			stack = append(stack, demoNode{name: tag.Name, depth: depth})
		}
	}

	return nil
}
