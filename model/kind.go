package model

// Access is the C++ access specifier. An unknown/absent access (free
// functions, namespace-level declarations) is treated as Public, per
// spec.md §9 "Access-specifier mapping".
type Access string

const (
	AccessPublic    Access = "public"
	AccessProtected Access = "protected"
	AccessPrivate   Access = "private"
	AccessNone      Access = "none"
)

// ElementKind distinguishes the polymorphic element payloads sharing the
// Element contract (spec.md §9 "Polymorphic elements").
type ElementKind string

const (
	KindClass   ElementKind = "class"
	KindStruct  ElementKind = "struct"
	KindEnum    ElementKind = "enum"
	KindConcept ElementKind = "concept"
	KindPackage ElementKind = "package"
)

// RelationshipKind enumerates the eight relationship kinds from the
// glossary.
type RelationshipKind string

const (
	RelExtension     RelationshipKind = "extension"
	RelComposition   RelationshipKind = "composition"
	RelAggregation   RelationshipKind = "aggregation"
	RelAssociation   RelationshipKind = "association"
	RelDependency    RelationshipKind = "dependency"
	RelInstantiation RelationshipKind = "instantiation"
	RelFriendship    RelationshipKind = "friendship"
	RelConstraint    RelationshipKind = "constraint"
)

// strength orders relationship kinds from weakest to strongest for the
// "dedup edges already implied by a stronger edge" rule (spec.md §3
// "Lifecycles", §4.G, §8 "Relationship dedup"). Extension/composition/
// aggregation dominate a mere dependency between the same pair.
var strength = map[RelationshipKind]int{
	RelDependency:    0,
	RelAssociation:   1,
	RelInstantiation: 1,
	RelFriendship:    1,
	RelConstraint:    1,
	RelAggregation:   2,
	RelComposition:   2,
	RelExtension:     3,
}

// Stronger reports whether kind a dominates kind b for dedup purposes.
func Stronger(a, b RelationshipKind) bool {
	return strength[a] > strength[b]
}
