// Package filter implements the include/exclude rule engine of spec.md
// §4.D: deciding per-entity and per-relationship inclusion from a
// diagram's configured rule blocks. The predicate-composition style is
// grounded on analyzer/option.go's MatcherFn (a func(os.FileInfo) bool
// built up from named matchers such as GolangFiles/JavaFiles), here
// generalized from "match a file" to "match a candidate" (an element, a
// qualified name, a path, or a template parameter).
package filter

import (
	"path/filepath"
	"strings"

	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/qualname"
)

// Verdict is the tri-valued outcome of spec.md §4.D: "admitted,
// excluded, deferred (applies when a template specialization's base
// template is not yet known)".
type Verdict int

const (
	Excluded Verdict = iota
	Admitted
	Deferred
)

// Candidate is what a Rules block is evaluated against. Callers fill in
// only the fields relevant to what is being tested; zero-value fields
// simply never match a corresponding predicate.
type Candidate struct {
	QualifiedName qualname.Name
	Path          string
	ElementType   model.ElementKind
	Relationship  model.RelationshipKind
	Access        model.Access

	// IsSubclassOf/IsSpecializationOf/IsParentOf/DependsOnNamespace let
	// callers pre-compute transitive relations (subclasses,
	// specializations, parents, dependencies) since the filter engine
	// itself has no access to the full diagram graph.
	IsSubclassOf       func(ns qualname.Name) bool
	IsSpecializationOf func(ns qualname.Name) bool
	IsParentOf         func(ns qualname.Name) bool
	DependsOnNamespace func(ns qualname.Name) bool

	// SpecializationBaseKnown is false while a specialization's primary
	// template has not yet been visited, producing Deferred (§4.D).
	SpecializationBaseKnown bool
	IsSpecialization        bool
}

// Block is one include or exclude block (spec.md §4.D).
type Block struct {
	Namespaces      []qualname.Name
	Paths           []string // globs, matched against a normalized absolute path
	Elements        []qualname.Name
	ElementTypes    []model.ElementKind
	Relationships   []model.RelationshipKind
	Access          []model.Access
	Subclasses      []qualname.Name
	Specializations []qualname.Name
	Parents         []qualname.Name
	Dependencies    []qualname.Name
}

// Rules is a diagram's include/exclude configuration.
type Rules struct {
	Include Block
	Exclude Block
}

// empty reports whether a block carries no predicates at all.
func (b Block) empty() bool {
	return len(b.Namespaces) == 0 && len(b.Paths) == 0 && len(b.Elements) == 0 &&
		len(b.ElementTypes) == 0 && len(b.Relationships) == 0 && len(b.Access) == 0 &&
		len(b.Subclasses) == 0 && len(b.Specializations) == 0 && len(b.Parents) == 0 &&
		len(b.Dependencies) == 0
}

// matches reports whether any predicate in the block matches c, i.e. the
// "union of all inclusion predicates" test of §4.D.1.
func (b Block) matches(c Candidate) bool {
	for _, ns := range b.Namespaces {
		if c.QualifiedName.HasPrefix(ns) {
			return true
		}
	}
	normalizedPath := filepath.ToSlash(c.Path)
	for _, pattern := range b.Paths {
		if ok, _ := filepath.Match(pattern, normalizedPath); ok {
			return true
		}
		if strings.HasPrefix(normalizedPath, strings.TrimSuffix(pattern, "*")) {
			return true
		}
	}
	for _, el := range b.Elements {
		if el.Equal(c.QualifiedName) {
			return true
		}
	}
	for _, et := range b.ElementTypes {
		if et == c.ElementType {
			return true
		}
	}
	for _, rel := range b.Relationships {
		if rel == c.Relationship {
			return true
		}
	}
	for _, acc := range b.Access {
		if acc == c.Access {
			return true
		}
	}
	if c.IsSubclassOf != nil {
		for _, ns := range b.Subclasses {
			if c.IsSubclassOf(ns) {
				return true
			}
		}
	}
	if c.IsSpecializationOf != nil {
		for _, ns := range b.Specializations {
			if c.IsSpecializationOf(ns) {
				return true
			}
		}
	}
	if c.IsParentOf != nil {
		for _, ns := range b.Parents {
			if c.IsParentOf(ns) {
				return true
			}
		}
	}
	if c.DependsOnNamespace != nil {
		for _, ns := range b.Dependencies {
			if c.DependsOnNamespace(ns) {
				return true
			}
		}
	}
	return false
}

// Evaluate implements §4.D.1: "An element is admitted iff the union of
// all inclusion predicates is non-empty and every exclusion predicate
// yields false. If include is empty, all predicates are treated as true
// except those overridden by exclude."
func (r Rules) Evaluate(c Candidate) Verdict {
	if c.IsSpecialization && !c.SpecializationBaseKnown {
		return Deferred
	}

	included := r.Include.empty() || r.Include.matches(c)
	if !included {
		return Excluded
	}
	if !r.Exclude.empty() && r.Exclude.matches(c) {
		return Excluded
	}
	return Admitted
}
