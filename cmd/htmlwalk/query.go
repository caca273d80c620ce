package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dpotapov/go-htmltag/htmltag"
)

// tagQuery compiles a --where boolean expression once and evaluates it
// against each matched tag's name, attributes, and class list.
type tagQuery struct {
	prog *vm.Program
}

// compileTagQuery compiles expr into a reusable predicate. An empty expr
// always matches.
func compileTagQuery(src string) (*tagQuery, error) {
	if src == "" {
		return &tagQuery{}, nil
	}
	prog, err := expr.Compile(src, expr.AsBool(), expr.Env(tagQueryEnv{}))
	if err != nil {
		return nil, fmt.Errorf("compiling --where expression: %w", err)
	}
	return &tagQuery{prog: prog}, nil
}

// tagQueryEnv is the variable set available to a --where expression.
type tagQueryEnv struct {
	Tag     string
	Classes []string
	Attrs   map[string]string
}

func (q *tagQuery) matches(p *htmltag.Processor) (bool, error) {
	if q.prog == nil {
		return true, nil
	}

	env := tagQueryEnv{Attrs: map[string]string{}}

	if tag, ok := p.Tag(); ok {
		env.Tag = tag.Name
	}

	if names, ok := p.GetAttributeNamesWithPrefix(""); ok {
		for _, name := range names {
			if val, ok := p.Attribute(name); ok {
				if val.IsBoolean {
					env.Attrs[name] = ""
				} else {
					env.Attrs[name] = string(val.String)
				}
			}
		}
	}

	cl := p.ClassList()
	for {
		tok, ok := cl.Next()
		if !ok {
			break
		}
		env.Classes = append(env.Classes, string(tok))
	}

	out, err := expr.Run(q.prog, env)
	if err != nil {
		return false, err
	}
	matched, _ := out.(bool)
	return matched, nil
}
