package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanguml-go/core/filter"
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/identity"
	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/qualname"
	"github.com/clanguml-go/core/traverse"
)

func recordType(qualifiedName string) frontend.Type {
	return frontend.Type{IsRecord: true, RecordQualifiedName: qualifiedName, CanonicalName: qualifiedName}
}

func pointerTo(t frontend.Type) frontend.Type {
	return frontend.Type{IsPointer: true, Pointee: &t, CanonicalName: "*" + t.CanonicalName}
}

func refTo(t frontend.Type) frontend.Type {
	return frontend.Type{IsLValueReference: true, Pointee: &t, CanonicalName: "&" + t.CanonicalName}
}

func TestVisitTranslationUnit_MemberRelationshipKinds(t *testing.T) {
	tu := &frontend.TranslationUnit{
		Path: "engine.h",
		Records: []frontend.Record{
			{
				QualifiedName: "ns::Engine",
				Kind:          "class",
				Fields: []frontend.Field{
					{Name: "wheel_", Type: recordType("ns::Wheel")},
					{Name: "driver_", Type: pointerTo(recordType("ns::Driver"))},
					{Name: "log_", Type: refTo(recordType("ns::Logger"))},
				},
			},
			{QualifiedName: "ns::Wheel", Kind: "struct"},
			{QualifiedName: "ns::Driver", Kind: "class"},
			{QualifiedName: "ns::Logger", Kind: "class"},
		},
	}

	v := traverse.NewVisitor(filter.Rules{})
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)

	engineID := identity.Of("ns::Engine")
	require.Contains(t, result.Classes, engineID)
	assert.Equal(t, "Engine", result.Classes[engineID].Name)
	assert.Equal(t, "ns", result.Classes[engineID].Namespace)

	kindByTarget := map[identity.ID]model.RelationshipKind{}
	for _, rel := range result.Relationships {
		if rel.SourceID == engineID {
			kindByTarget[rel.TargetID] = rel.Kind
		}
	}
	assert.Equal(t, model.RelComposition, kindByTarget[identity.Of("ns::Wheel")])
	assert.Equal(t, model.RelAggregation, kindByTarget[identity.Of("ns::Driver")])
	assert.Equal(t, model.RelAssociation, kindByTarget[identity.Of("ns::Logger")])
}

func TestVisitTranslationUnit_FilterExcludesNamespace(t *testing.T) {
	tu := &frontend.TranslationUnit{
		Path: "detail.h",
		Records: []frontend.Record{
			{QualifiedName: "detail::Hidden", Kind: "class"},
		},
	}
	rules := filter.Rules{
		Exclude: filter.Block{Namespaces: []qualname.Name{qualname.Parse("detail")}},
	}
	v := traverse.NewVisitor(rules)
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)
	assert.Empty(t, result.Classes)
}

func TestVisitTranslationUnit_RepeatedDeclarationIsIdempotent(t *testing.T) {
	tu := &frontend.TranslationUnit{
		Path: "fwd.h",
		Records: []frontend.Record{
			{QualifiedName: "ns::Fwd", Kind: "class"}, // forward declaration
			{QualifiedName: "ns::Fwd", Kind: "class", Fields: []frontend.Field{
				{Name: "x", Type: frontend.Type{CanonicalName: "int"}},
			}},
		},
	}
	v := traverse.NewVisitor(filter.Rules{})
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)

	id := identity.Of("ns::Fwd")
	require.Contains(t, result.Classes, id)
	assert.Len(t, result.Classes[id].Members, 1)
}

func TestVisitTranslationUnit_PimplIdiom(t *testing.T) {
	// widget owns its impl through a pointer (aggregation); impl's method
	// takes widget by value, which only ever degrades to a dependency
	// (spec.md §8 scenario 1 "Pimpl idiom").
	tu := &frontend.TranslationUnit{
		Path: "widget.h",
		Records: []frontend.Record{
			{
				QualifiedName: "widget",
				Kind:          "class",
				Fields: []frontend.Field{
					{Name: "pimpl_", Type: pointerTo(recordType("widget::impl"))},
				},
			},
			{
				QualifiedName: "widget::impl",
				Kind:          "class",
				Methods: []frontend.Method{
					{Name: "doWork", Parameters: []frontend.Param{
						{Name: "w", Type: recordType("widget")},
					}},
				},
			},
		},
	}
	v := traverse.NewVisitor(filter.Rules{})
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)

	widgetID := identity.Of("widget")
	implID := identity.Of("widget::impl")

	var widgetToImpl, implToWidget *model.Relationship
	for i, rel := range result.Relationships {
		switch {
		case rel.SourceID == widgetID && rel.TargetID == implID:
			widgetToImpl = &result.Relationships[i]
		case rel.SourceID == implID && rel.TargetID == widgetID:
			implToWidget = &result.Relationships[i]
		}
	}
	require.NotNil(t, widgetToImpl)
	assert.Equal(t, model.RelAggregation, widgetToImpl.Kind)
	require.NotNil(t, implToWidget)
	assert.Equal(t, model.RelDependency, implToWidget.Kind)
}

func TestVisitTranslationUnit_SpecializationSynthesizesInstantiation(t *testing.T) {
	tu := &frontend.TranslationUnit{
		Path: "box.h",
		Records: []frontend.Record{
			{QualifiedName: "ns::Box", Kind: "class", IsTemplate: true},
			{QualifiedName: "ns::Box<int>", Kind: "class", Specializes: "ns::Box"},
		},
	}
	v := traverse.NewVisitor(filter.Rules{})
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)

	primaryID := identity.Of("ns::Box")
	specID := identity.Of("ns::Box<int>")
	require.Contains(t, result.Classes, specID)
	require.NotNil(t, result.Classes[specID].Specializes)
	assert.Equal(t, primaryID, *result.Classes[specID].Specializes)

	var found bool
	for _, rel := range result.Relationships {
		if rel.SourceID == specID && rel.TargetID == primaryID && rel.Kind == model.RelInstantiation {
			found = true
		}
	}
	assert.True(t, found, "expected an instantiation relationship from the specialization to its primary template")
}

func TestVisitTranslationUnit_SpecializationBeforePrimaryTemplateStillResolves(t *testing.T) {
	// The front-end may report a specialization before its primary
	// template within the same TU; §4.D's "deferred" verdict must still
	// resolve it once the primary registers, rather than dropping it
	// (spec.md §8 scenario 2 "nested templates").
	tu := &frontend.TranslationUnit{
		Path: "box.h",
		Records: []frontend.Record{
			{QualifiedName: "ns::Box<int>", Kind: "class", Specializes: "ns::Box"},
			{QualifiedName: "ns::Box", Kind: "class", IsTemplate: true},
		},
	}
	v := traverse.NewVisitor(filter.Rules{})
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)

	specID := identity.Of("ns::Box<int>")
	primaryID := identity.Of("ns::Box")
	require.Contains(t, result.Classes, specID)

	var found bool
	for _, rel := range result.Relationships {
		if rel.SourceID == specID && rel.TargetID == primaryID && rel.Kind == model.RelInstantiation {
			found = true
		}
	}
	assert.True(t, found)
}

func TestVisitTranslationUnit_ArrayAndEnumDispatch(t *testing.T) {
	arrayOf := func(t frontend.Type) frontend.Type {
		return frontend.Type{IsArray: true, Pointee: &t, CanonicalName: t.CanonicalName + "[]"}
	}
	enumType := func(qualifiedName string) frontend.Type {
		return frontend.Type{IsEnum: true, EnumQualifiedName: qualifiedName, CanonicalName: qualifiedName}
	}

	tu := &frontend.TranslationUnit{
		Path: "shape.h",
		Records: []frontend.Record{
			{
				QualifiedName: "ns::Shape",
				Kind:          "class",
				Fields: []frontend.Field{
					{Name: "points_", Type: arrayOf(recordType("ns::Point"))},
					{Name: "color_", Type: enumType("ns::Color")},
				},
			},
			{QualifiedName: "ns::Point", Kind: "struct"},
		},
		Enums: []frontend.Enum{
			{QualifiedName: "ns::Color", Enumerators: []string{"Red", "Green", "Blue"}},
		},
	}
	v := traverse.NewVisitor(filter.Rules{})
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)

	shapeID := identity.Of("ns::Shape")
	colorID := identity.Of("ns::Color")
	require.Contains(t, result.Classes, colorID)
	assert.Equal(t, model.KindEnum, result.Classes[colorID].Kind)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, func() []string {
		var names []string
		for _, m := range result.Classes[colorID].Members {
			names = append(names, m.Name)
		}
		return names
	}())

	kindByTarget := map[identity.ID]model.RelationshipKind{}
	for _, rel := range result.Relationships {
		if rel.SourceID == shapeID {
			kindByTarget[rel.TargetID] = rel.Kind
		}
	}
	assert.Equal(t, model.RelAggregation, kindByTarget[identity.Of("ns::Point")])
	assert.Equal(t, model.RelDependency, kindByTarget[colorID])
}

func TestVisitTranslationUnit_StaticFieldsAndFriends(t *testing.T) {
	tu := &frontend.TranslationUnit{
		Path: "registry.h",
		Records: []frontend.Record{
			{
				QualifiedName: "ns::Registry",
				Kind:          "class",
				StaticFields: []frontend.Field{
					{Name: "instance_", Type: frontend.Type{CanonicalName: "ns::Registry*"}},
				},
				Friends: []string{"ns::Tool"},
			},
		},
	}
	v := traverse.NewVisitor(filter.Rules{})
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)

	id := identity.Of("ns::Registry")
	require.Contains(t, result.Classes, id)
	require.Len(t, result.Classes[id].Members, 1)
	assert.True(t, result.Classes[id].Members[0].Static)
	require.Len(t, result.Classes[id].Friends, 1)
	assert.Equal(t, identity.Of("ns::Tool"), result.Classes[id].Friends[0])
}

func TestVisitTranslationUnit_CallSitesResolveCallerAndCallee(t *testing.T) {
	tu := &frontend.TranslationUnit{
		Path: "svc.h",
		Functions: []frontend.Function{
			{
				QualifiedName: "svc::caller",
				USR:           "usr_caller",
				Body: &frontend.Body{
					Calls: []frontend.Call{
						{CallerUSR: "usr_caller", CalleeUSR: "usr_callee", CalleeName: "callee"},
					},
				},
			},
			{QualifiedName: "svc::callee", USR: "usr_callee"},
		},
	}
	v := traverse.NewVisitor(filter.Rules{})
	result, err := v.VisitTranslationUnit(tu)
	require.NoError(t, err)

	require.Len(t, result.Calls, 1)
	call := result.Calls[0]
	assert.Equal(t, identity.Of("svc::caller"), call.CallerID)
	assert.True(t, call.HasCallee)
	assert.Equal(t, identity.Of("svc::callee"), call.CalleeID)
}
