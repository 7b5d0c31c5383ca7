// Package diagram implements the four diagram models of spec.md §4.G:
// class, package, include, and (together with the sibling sequence
// package) sequence diagrams, each built from the merged partial models
// traverse produces, plus the finalization pass each diagram type runs
// before rendering. The id-indexed, pointer-free element storage is
// grounded on inspector/graph's Type/File maps, generalized from "one
// language's source graph" to "the merged C/C++ semantic model".
package diagram

import (
	"fmt"

	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/identity"
	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/traverse"
)

// Model is the fully merged semantic model: every translation unit's
// partial Result folded together under the §5 serial-merge rule. It
// owns no language-specific structure — the four diagram builders each
// slice it differently.
type Model struct {
	Classes       map[identity.ID]*model.Class
	Relationships []model.Relationship
	Includes      []frontend.Include
	Calls         []traverse.Call

	USRIndex      map[frontend.USR]identity.ID
	LocationIndex map[frontend.SourceLocation]identity.ID
}

// Merge implements spec.md §5's serial-merge step: translation units are
// visited independently and in parallel (traverse.Visitor, one per TU),
// then folded together here under what the caller holds as an exclusive
// lock. Folding is id-keyed, so two translation units that both declare
// the same entity converge on one element (spec.md §3 "Lifecycles":
// elements are merged, never duplicated).
//
// Each traverse.Visitor only ever owns a per-TU identity.Registry, so a
// collision between two translation units — distinct canonical names
// that happen to hash to the same id — is invisible until the partial
// models are brought together here. Merge therefore re-claims every
// class's canonical qualified name against one cross-TU
// identity.Registry before folding it in, surfacing a *identity.
// CollisionError as a fatal error per spec.md §5/§8 scenario 6 rather
// than silently unioning two unrelated entities under one id.
func Merge(results []*traverse.Result) (*Model, error) {
	m := &Model{
		Classes:       make(map[identity.ID]*model.Class),
		USRIndex:      make(map[frontend.USR]identity.ID),
		LocationIndex: make(map[frontend.SourceLocation]identity.ID),
	}
	registry := identity.NewRegistry()
	for _, r := range results {
		for id, cls := range r.Classes {
			if _, err := registry.Claim(cls.QualifiedName()); err != nil {
				return nil, fmt.Errorf("diagram: %w", err)
			}
			existing, ok := m.Classes[id]
			if !ok {
				m.Classes[id] = cls
				continue
			}
			mergeClasses(existing, cls)
		}
		m.Relationships = append(m.Relationships, r.Relationships...)
		m.Includes = append(m.Includes, r.Includes...)
		m.Calls = append(m.Calls, r.Calls...)
		for usr, id := range r.USRIndex {
			m.USRIndex[usr] = id
		}
		for loc, id := range r.LocationIndex {
			m.LocationIndex[loc] = id
		}
	}
	return m, nil
}

// mergeClasses folds b into a in place. A declaration carrying members
// or methods always wins over one that carries neither (the "non-forward
// beats forward" rule, spec.md §5) — attributes themselves are unioned
// rather than overwritten, since two translation units may each see a
// different partial set of a class's bases.
func mergeClasses(a, b *model.Class) {
	a.Abstract = a.Abstract || b.Abstract
	a.Template = a.Template || b.Template
	if len(a.Members) == 0 && len(a.Methods) == 0 && (len(b.Members) > 0 || len(b.Methods) > 0) {
		a.Members = b.Members
		a.Methods = b.Methods
	}
	for _, nb := range b.Bases {
		seen := false
		for _, ob := range a.Bases {
			if ob.ID == nb.ID {
				seen = true
				break
			}
		}
		if !seen {
			a.Bases = append(a.Bases, nb)
		}
	}
	if a.Comment == "" {
		a.Comment = b.Comment
	}
	if a.Specializes == nil {
		a.Specializes = b.Specializes
	}
}
