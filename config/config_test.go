package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanguml-go/core/config"
	"github.com/clanguml-go/core/filter"
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/qualname"
)

const sampleYAML = `
compilation_database_dir: .
output_directory: diagrams
diagrams:
  main_class:
    type: class
    glob:
      - src/*.cc
    include:
      namespaces:
        - myapp
    exclude:
      access:
        - private
`

func TestLoad_DecodesDiagramBlocks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clang-uml.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	g, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".", g.CompilationDatabaseDir)
	require.Contains(t, g.Diagrams, "main_class")
	d := g.Diagrams["main_class"]
	assert.Equal(t, "class", d.Type)
	assert.Equal(t, []string{"myapp"}, d.Include.Namespaces)
	assert.Equal(t, []string{"private"}, d.Exclude.Access)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestDiagram_ToRules(t *testing.T) {
	d := &config.Diagram{
		Include: config.IncludeExcludeBlock{Namespaces: []string{"myapp"}},
		Exclude: config.IncludeExcludeBlock{Access: []string{"private"}},
	}
	rules := d.ToRules()

	require.Len(t, rules.Include.Namespaces, 1)
	assert.True(t, rules.Include.Namespaces[0].Equal(qualname.Parse("myapp")))
	require.Len(t, rules.Exclude.Access, 1)
	assert.Equal(t, model.AccessPrivate, rules.Exclude.Access[0])

	admitted := rules.Evaluate(filter.Candidate{
		QualifiedName: qualname.Parse("myapp::widget"),
		Access:        model.AccessPublic,
	})
	assert.Equal(t, filter.Admitted, admitted)

	excluded := rules.Evaluate(filter.Candidate{
		QualifiedName: qualname.Parse("myapp::widget"),
		Access:        model.AccessPrivate,
	})
	assert.Equal(t, filter.Excluded, excluded)
}

func TestEntryPoint_ToSpec(t *testing.T) {
	byFunction := config.EntryPoint{Function: "tmain"}
	assert.Equal(t, "tmain", byFunction.ToSpec().QualifiedName)

	byUSR := config.EntryPoint{USR: "c:@F@tmain"}
	assert.Equal(t, frontend.USR("c:@F@tmain"), byUSR.ToSpec().USR)

	byLocation := config.EntryPoint{Location: "src/main.cc:42"}
	spec := byLocation.ToSpec()
	assert.Equal(t, frontend.SourceLocation{File: "src/main.cc", Line: 42}, spec.Location)

	malformed := config.EntryPoint{Location: "src/main.cc:not-a-line"}
	assert.Equal(t, frontend.SourceLocation{}, malformed.ToSpec().Location)
}
