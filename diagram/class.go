package diagram

import (
	"github.com/clanguml-go/core/diagnostics"
	"github.com/clanguml-go/core/identity"
	"github.com/clanguml-go/core/model"
)

// ClassDiagram is the element/relationship slice of Model admitted by a
// class diagram's filter rules (spec.md §4.G "Class diagram").
type ClassDiagram struct {
	Elements      map[identity.ID]*model.Class
	Relationships []model.Relationship
}

// NewClassDiagram slices m down to the admitted ids and runs the
// finalization pass immediately, mirroring the teacher's
// build-then-finalize package shape (analyzer/package.go).
func NewClassDiagram(m *Model, admitted map[identity.ID]bool) *ClassDiagram {
	d := &ClassDiagram{Elements: make(map[identity.ID]*model.Class)}
	for id := range admitted {
		if cls, ok := m.Classes[id]; ok {
			d.Elements[id] = cls
		}
	}
	for _, rel := range m.Relationships {
		if admitted[rel.SourceID] && admitted[rel.TargetID] {
			d.Relationships = append(d.Relationships, rel)
		}
	}
	d.computeNestedIn()
	d.finalize()
	return d
}

// computeNestedIn implements spec.md §4.G "compute nested_in for nested
// types": a class's Namespace is also the fully-qualified name of its
// enclosing record whenever that name resolves to another element in
// this same diagram (a plain namespace never does, since no class
// shares a namespace's qualified name).
func (d *ClassDiagram) computeNestedIn() {
	for _, cls := range d.Elements {
		if cls.Namespace == "" {
			continue
		}
		enclosingID := identity.Of(cls.Namespace)
		if _, ok := d.Elements[enclosingID]; ok {
			cls.NestedIn = &enclosingID
		}
	}
}

// Validate enforces spec.md §7/§8 scenario 5: a diagram admitting no
// elements is a fatal configuration error unless allowEmpty permits it,
// in which case the caller should log a warning and still emit the
// empty diagram wrapper.
func (d *ClassDiagram) Validate(allowEmpty bool) error {
	return diagnostics.CheckEmptyDiagram(len(d.Elements) == 0, allowEmpty)
}

// finalize runs the two passes spec.md §4.G names for class diagrams:
// relationship dedup and inheritance reduction. Both collapse to the
// same operation — for each ordered (source, target) pair, keep only
// the strongest relationship kind (model.Stronger) — because an
// extension edge already implies, and so should suppress, any weaker
// edge (dependency/association/aggregation) discovered between the same
// two classes (spec.md §8 "Relationship dedup").
func (d *ClassDiagram) finalize() {
	type pair struct {
		source, target identity.ID
	}
	best := make(map[pair]model.Relationship, len(d.Relationships))
	order := make([]pair, 0, len(d.Relationships))
	for _, rel := range d.Relationships {
		key := pair{rel.SourceID, rel.TargetID}
		cur, ok := best[key]
		if !ok {
			best[key] = rel
			order = append(order, key)
			continue
		}
		if model.Stronger(rel.Kind, cur.Kind) {
			best[key] = rel
		}
	}
	deduped := make([]model.Relationship, 0, len(order))
	for _, key := range order {
		deduped = append(deduped, best[key])
	}
	d.Relationships = deduped
}
