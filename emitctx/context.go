// Package emitctx assembles the Jinja-style rendering context of spec.md
// §4.H: a nested map tree keyed by dotted paths ("diagram.elements",
// "diagram.relationships") that a template engine walks to render a
// diagram. The insertion policy — split on ".", descend creating
// intermediate maps, and fail loudly on a collision with an existing
// non-map leaf — is the only piece of behavior spec.md actually asks
// for; rendering itself is handed to text/template, the template engine
// the teacher's own code generator already reaches for
// (theRebelliousNerd-codenerd's tool_templates.go).
package emitctx

import (
	"fmt"
	"strings"
)

// Context is the nested map tree assembled for one render pass.
type Context map[string]any

// New returns an empty Context.
func New() Context {
	return Context{}
}

// Set inserts value at the dotted path (e.g. "class.elements"),
// creating intermediate maps as needed. It returns an error if any
// intermediate segment already holds a non-map value — the §4.H
// "erroring when a path segment is already a non-map leaf" rule, which
// exists so two diagram builders can never silently clobber each
// other's slice of the context.
func (c Context) Set(path string, value any) error {
	segments := strings.Split(path, ".")
	if len(segments) == 0 || segments[0] == "" {
		return fmt.Errorf("emitctx: empty path")
	}
	cur := c
	for i, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg]
		if !ok {
			m := Context{}
			cur[seg] = m
			cur = m
			continue
		}
		m, ok := next.(Context)
		if !ok {
			return fmt.Errorf("emitctx: path %q: segment %q is already a non-map value (set at %q)",
				path, seg, strings.Join(segments[:i+1], "."))
		}
		cur = m
	}
	last := segments[len(segments)-1]
	if existing, ok := cur[last]; ok {
		if _, isMap := existing.(Context); isMap {
			return fmt.Errorf("emitctx: path %q: a nested map already exists at this path", path)
		}
	}
	cur[last] = value
	return nil
}

// Get looks up a dotted path, returning (nil, false) if any segment is
// missing.
func (c Context) Get(path string) (any, bool) {
	segments := strings.Split(path, ".")
	var cur any = c
	for _, seg := range segments {
		m, ok := cur.(Context)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
