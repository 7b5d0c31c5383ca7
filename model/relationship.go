package model

import "github.com/clanguml-go/core/identity"

// Relationship connects two elements by id — never by pointer — which
// keeps the model cycle-tolerant (spec.md §3 "Relationship", §9 "Cyclic
// model graphs").
type Relationship struct {
	SourceID identity.ID
	TargetID identity.ID
	Kind     RelationshipKind
	Label    *string // set only when mediated by a named field/method (§4.C)
	Access   Access

	MultiplicitySource string
	MultiplicityTarget string
}

// SamePair reports whether two relationships connect the same ordered
// endpoint pair, the granularity the dedup pass (§4.G) and the §8
// "Relationship dedup" property operate at.
func (r Relationship) SamePair(other Relationship) bool {
	return r.SourceID == other.SourceID && r.TargetID == other.TargetID
}
