package traverse

import (
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/identity"
	"github.com/clanguml-go/core/model"
)

// Call is one resolved call site discovered while visiting a function or
// method body (spec.md §4.F "For function calls inside a body"). It
// carries both ends as ids when the callee could be resolved against a
// symbol seen in the same translation unit; CalleeID is the zero value
// and HasCallee is false when the callee is external (e.g. a library
// function the front-end never defines).
type Call struct {
	CallerID   identity.ID
	CalleeID   identity.ID
	HasCallee  bool
	CalleeName string
	Location   frontend.SourceLocation

	IsConditional bool
	IsLoop        bool
	IsLambda      bool
}

// Result is one translation unit's partial model (spec.md §5 "each
// translation unit is visited independently, producing a partial
// model"). engine.Run fans one Result out per TU and diagram.Merge folds
// them together under an exclusive lock afterwards.
type Result struct {
	TranslationUnit string
	Classes         map[identity.ID]*model.Class
	Relationships   []model.Relationship
	Calls           []Call
	Includes        []frontend.Include

	// USRIndex and LocationIndex resolve a sequence diagram's entry-point
	// spec (spec.md §4.I "entry-point resolution by qualified name/USR/
	// source location") back to an id. LocationIndex only ever covers
	// free functions and records, since frontend.Method carries no
	// Attrs/Location of its own.
	USRIndex      map[frontend.USR]identity.ID
	LocationIndex map[frontend.SourceLocation]identity.ID
}

// NewResult allocates an empty partial model for one translation unit.
func NewResult(translationUnit string) *Result {
	return &Result{
		TranslationUnit: translationUnit,
		Classes:         make(map[identity.ID]*model.Class),
		USRIndex:        make(map[frontend.USR]identity.ID),
		LocationIndex:   make(map[frontend.SourceLocation]identity.ID),
	}
}

// AddRelationship appends rel unless it is a reflexive edge pointing
// from an element to itself, mirroring the self-edge suppression the
// package diagram applies for namespaces (spec.md §4.G) — a class never
// legitimately depends on itself either.
func (r *Result) AddRelationship(rel model.Relationship) {
	if rel.SourceID == rel.TargetID {
		return
	}
	r.Relationships = append(r.Relationships, rel)
}
