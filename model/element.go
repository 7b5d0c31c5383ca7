package model

import "github.com/clanguml-go/core/identity"

// Element is the abstract base every modeled entity embeds (spec.md §3
// "Element", §9 "Polymorphic elements"). Its invariant is
// id == hash(qualified_name()), enforced by callers deriving IDs through
// identity.Of and never forging one.
type Element struct {
	ID         identity.ID
	Name       string
	Namespace  string // namespace prefix rendered with "::", e.g. "a::b"
	Kind       ElementKind
	Location   Location
	Comment    string
	Style      map[string]string
	Skip       bool
	Deprecated bool
	Access     Access
}

// QualifiedName renders Namespace + "::" + Name, or just Name when
// Namespace is empty, matching how a qualname.Name would stringify.
func (e *Element) QualifiedName() string {
	if e.Namespace == "" {
		return e.Name
	}
	return e.Namespace + "::" + e.Name
}
