// Package typeexpr implements the unexposed-template-argument parser of
// spec.md §4.E: turning a raw, front-end-supplied template-argument
// string into a structured model.TemplateParameter tree. It exists
// because the front-end sometimes cannot fully resolve a dependent type
// and instead hands back unstructured text (e.g. nested aliases with
// constraints) that still needs to render sensibly in a diagram.
package typeexpr

import (
	"strings"

	"github.com/clanguml-go/core/model"
)

// NSResolve expands aliases/typedefs discovered in context (§4.E.4). A
// nil NSResolve leaves names untouched.
type NSResolve func(name string) string

// Parse tokenizes and parses a single template-argument-list string such
// as "A<B<C,D>,E>" into its top-level arguments.
func Parse(s string, resolve NSResolve) []*model.TemplateParameter {
	p := &parser{toks: tokenize(s), resolve: resolve}
	return p.parseArgList()
}

type parser struct {
	toks    []token
	pos     int
	resolve NSResolve
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// parseArgList parses a comma-separated list of type arguments at the
// current depth, stopping at an unmatched ">" or end of input (§4.E.2).
func (p *parser) parseArgList() []*model.TemplateParameter {
	var args []*model.TemplateParameter
	cur := p.parseOneArg()
	if cur != nil {
		args = append(args, cur)
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind == tokGt {
			return args
		}
		if t.kind == tokComma {
			p.next()
			next := p.parseOneArg()
			if next != nil {
				args = append(args, next)
			}
			continue
		}
		// Unrecognized token at this position: best-effort recovery,
		// consume and continue rather than looping forever (§7
		// "template parser: unterminated '<' — best-effort close").
		p.next()
	}
}

// parseOneArg consumes one top-level argument: a name, qualifiers, and
// (recursively) a nested "<...>" argument list, plus a variadic "..."
// suffix that marks the preceding parameter as a pack expansion.
func (p *parser) parseOneArg() *model.TemplateParameter {
	var nameParts []string
	var qualifiers []string
	var isPointer, isLRef, isRRef int

	for {
		t, ok := p.peek()
		if !ok {
			break
		}
		switch t.kind {
		case tokIdent, tokScope:
			p.next()
			nameParts = append(nameParts, t.text)
		case tokConst, tokVolatile:
			p.next()
			qualifiers = append(qualifiers, t.text)
		case tokStar:
			p.next()
			isPointer++
		case tokAmp:
			p.next()
			isLRef++
		case tokAmpAmp:
			p.next()
			isRRef++
		default:
			goto doneName
		}
	}
doneName:
	if len(nameParts) == 0 {
		// nothing parseable at this position (e.g. a stray comma); avoid
		// returning a hollow node.
		if t, ok := p.peek(); ok && (t.kind == tokLt) {
			p.next() // stray '<' with no preceding name: skip it
			_ = p.parseArgList()
			if t2, ok2 := p.peek(); ok2 && t2.kind == tokGt {
				p.next()
			}
		}
		return nil
	}

	name := strings.Join(nameParts, "")
	if p.resolve != nil {
		name = p.resolve(name)
	}

	tp := &model.TemplateParameter{
		Kind: model.TPConcreteType,
		Name: renderQualified(name, qualifiers, isPointer, isLRef, isRRef),
	}

	if t, ok := p.peek(); ok && t.kind == tokLt {
		p.next()
		tp.Children = p.parseArgList()
		if t2, ok2 := p.peek(); ok2 && t2.kind == tokGt {
			p.next()
		}
		// an unterminated '<' (no matching '>' before EOF) is closed
		// best-effort: we simply stop, preserving whatever children were
		// parsed (§7 "template parser" error policy).
	}

	if t, ok := p.peek(); ok && t.kind == tokEllipsis {
		p.next()
		tp.IsPack = true
	}

	return tp
}

func renderQualified(name string, qualifiers []string, ptr, lref, rref int) string {
	var b strings.Builder
	for _, q := range qualifiers {
		b.WriteString(q)
		b.WriteString(" ")
	}
	b.WriteString(name)
	for i := 0; i < ptr; i++ {
		b.WriteString("*")
	}
	for i := 0; i < lref; i++ {
		b.WriteString("&")
	}
	for i := 0; i < rref; i++ {
		b.WriteString("&&")
	}
	return b.String()
}

// Unexposed wraps a raw string the parser could not structure as an
// opaque unexposed template parameter, preserved verbatim (§4.E edge
// policies: "unresolved tokens survive as opaque unexposed strings so
// nothing is silently dropped").
func Unexposed(raw string) *model.TemplateParameter {
	return &model.TemplateParameter{Kind: model.TPTypeParameter, Unexposed: raw}
}
