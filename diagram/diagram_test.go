package diagram_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanguml-go/core/diagnostics"
	"github.com/clanguml-go/core/diagram"
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/identity"
	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/traverse"
)

func classResult(tu string, classes ...*model.Class) *traverse.Result {
	r := traverse.NewResult(tu)
	for _, c := range classes {
		r.Classes[c.ID] = c
	}
	return r
}

func newClass(qualifiedName, namespace string) *model.Class {
	return &model.Class{Element: model.Element{
		ID:        identity.Of(qualifiedName),
		Name:      qualifiedName,
		Namespace: namespace,
		Kind:      model.KindClass,
	}}
}

func TestMerge_NonForwardBeatsForward(t *testing.T) {
	forward := newClass("ns::A", "ns")
	full := newClass("ns::A", "ns")
	full.AddMember(model.Member{Name: "x", Type: "int"})

	m, err := diagram.Merge([]*traverse.Result{
		classResult("tu1.cc", forward),
		classResult("tu2.cc", full),
	})
	require.NoError(t, err)

	id := identity.Of("ns::A")
	require.Contains(t, m.Classes, id)
	assert.Len(t, m.Classes[id].Members, 1)
}

func TestClassDiagram_DedupPrefersStrongestKind(t *testing.T) {
	a := newClass("ns::A", "ns")
	b := newClass("ns::B", "ns")
	m, err := diagram.Merge([]*traverse.Result{classResult("tu.cc", a, b)})
	require.NoError(t, err)
	m.Relationships = []model.Relationship{
		{SourceID: a.ID, TargetID: b.ID, Kind: model.RelDependency},
		{SourceID: a.ID, TargetID: b.ID, Kind: model.RelExtension},
	}

	admitted := map[identity.ID]bool{a.ID: true, b.ID: true}
	cd := diagram.NewClassDiagram(m, admitted)

	require.Len(t, cd.Relationships, 1)
	assert.Equal(t, model.RelExtension, cd.Relationships[0].Kind)
}

func TestPackageDiagram_SynthesizesCrossNamespaceDependency(t *testing.T) {
	a := newClass("ns1::A", "ns1")
	b := newClass("ns2::B", "ns2")
	m, err := diagram.Merge([]*traverse.Result{classResult("tu.cc", a, b)})
	require.NoError(t, err)
	m.Relationships = []model.Relationship{
		{SourceID: a.ID, TargetID: b.ID, Kind: model.RelAssociation},
	}

	admitted := map[identity.ID]bool{a.ID: true, b.ID: true}
	pd := diagram.NewPackageDiagram(m, admitted)

	ns1ID := identity.Of("ns1")
	ns2ID := identity.Of("ns2")
	require.Contains(t, pd.Packages, ns1ID)
	require.Contains(t, pd.Packages, ns2ID)
	assert.True(t, pd.Packages[ns1ID].DependsOn[ns2ID])
}

func TestClassDiagram_ComputesNestedIn(t *testing.T) {
	outer := newClass("ns::Outer", "ns")
	inner := newClass("ns::Outer::Inner", "ns::Outer")
	m, err := diagram.Merge([]*traverse.Result{classResult("tu.cc", outer, inner)})
	require.NoError(t, err)

	admitted := map[identity.ID]bool{outer.ID: true, inner.ID: true}
	cd := diagram.NewClassDiagram(m, admitted)

	require.NotNil(t, cd.Elements[inner.ID].NestedIn)
	assert.Equal(t, outer.ID, *cd.Elements[inner.ID].NestedIn)
	assert.Nil(t, cd.Elements[outer.ID].NestedIn)
}

func TestClassDiagram_ValidateEmptyDiagram(t *testing.T) {
	cd := diagram.NewClassDiagram(&diagram.Model{}, map[identity.ID]bool{})

	err := cd.Validate(false)
	require.Error(t, err)
	var de *diagnostics.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, diagnostics.StageFilter, de.Stage)
	assert.True(t, errors.Is(err, diagnostics.ErrEmptyDiagram))

	assert.NoError(t, cd.Validate(true))
}

func TestIncludeDiagram_LabelsSystemProjectExternal(t *testing.T) {
	m := &diagram.Model{
		Includes: []frontend.Include{
			{FromFile: "main.cc", ToFile: "/usr/include/stdio.h"},
			{FromFile: "main.cc", ToFile: "/home/project/src/lib.h"},
			{FromFile: "main.cc", ToFile: "/home/vendor/thirdparty.h"},
		},
	}
	d := diagram.NewIncludeDiagram(m, "/home/project")
	require.Len(t, d.Edges, 3)
	assert.Equal(t, "system", d.Edges[0].Kind)
	assert.Equal(t, "project", d.Edges[1].Kind)
	assert.Equal(t, "external", d.Edges[2].Kind)
}
