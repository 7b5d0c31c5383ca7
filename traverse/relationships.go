package traverse

import (
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/model"
)

// Found is one relationship target discovered while unwrapping a
// frontend.Type (spec.md §4.F dispatch table).
type Found struct {
	QualifiedName string
	IsEnum        bool
	Kind          model.RelationshipKind
}

// FindRelationships implements the §4.F type-dispatch table: a field,
// parameter, or return type is unwrapped through pointer/reference/
// array/template-specialization/function-proto layers until a record or
// enum is reached. The outermost layer decides the kind: a pointer yields
// aggregation, a reference association, a record held by value the
// caller-supplied seed (the "caller hint"); an array yields aggregation and
// an enum dependency at any depth. Nested template arguments and
// function-proto parameter/return types always degrade to a plain
// dependency, since owning a template argument or a transient parameter
// is weaker than owning the field itself.
func FindRelationships(t frontend.Type, seed model.RelationshipKind) []Found {
	return findRelationships(t, seed, true)
}

func findRelationships(t frontend.Type, kind model.RelationshipKind, topLevel bool) []Found {
	switch {
	case t.IsVoid:
		return nil

	case t.IsPointer && t.Pointee != nil:
		if topLevel {
			kind = model.RelAggregation
		}
		return findRelationships(*t.Pointee, kind, false)

	case (t.IsLValueReference || t.IsRValueReference) && t.Pointee != nil:
		if topLevel {
			kind = model.RelAssociation
		}
		return findRelationships(*t.Pointee, kind, false)

	case t.IsArray && t.Pointee != nil:
		// §4.F's dispatch table names "array -> aggregation"
		// unconditionally, unlike the record row's caller-supplied hint:
		// an array member always owns its elements as an aggregation,
		// regardless of what the enclosing field/parameter's hint was.
		return findRelationships(*t.Pointee, model.RelAggregation, false)

	case t.IsRecord:
		found := []Found{{QualifiedName: t.RecordQualifiedName, Kind: kind}}
		for _, arg := range t.Args {
			found = append(found, findRelationships(arg, model.RelDependency, false)...)
		}
		return found

	case t.IsEnum:
		// §4.F's dispatch table names "enum -> dependency" unconditionally,
		// distinct from the record row's caller-supplied hint: an enum
		// member is always a plain dependency, never a composition or
		// aggregation edge.
		return []Found{{QualifiedName: t.EnumQualifiedName, IsEnum: true, Kind: model.RelDependency}}

	case t.IsTemplateSpecialization:
		var found []Found
		for _, arg := range t.Args {
			found = append(found, findRelationships(arg, model.RelDependency, false)...)
		}
		return found

	case t.IsFunctionProto:
		var found []Found
		for _, p := range t.Params {
			found = append(found, findRelationships(p, model.RelDependency, false)...)
		}
		if t.Pointee != nil {
			found = append(found, findRelationships(*t.Pointee, model.RelDependency, false)...)
		}
		return found

	default:
		return nil
	}
}
