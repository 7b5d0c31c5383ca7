// Package config decodes the YAML configuration surface of spec.md: a
// global compilation-database/output section plus one Diagram block per
// named diagram. Struct field tagging follows the teacher's own
// yaml-tagged config structs (analyzer/linage's package/linter config),
// generalized from a Go-linting config shape to a C/C++ diagram-
// generator config shape; decoding itself stays on gopkg.in/yaml.v3, the
// teacher's existing direct dependency.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Global is the top-level configuration document (spec.md §2 "global
// configuration").
type Global struct {
	CompilationDatabaseDir string            `yaml:"compilation_database_dir"`
	OutputDirectory        string            `yaml:"output_directory"`
	AddCompileFlags        []string          `yaml:"add_compile_flags"`
	RemoveCompileFlags     []string          `yaml:"remove_compile_flags"`
	QueryDriver            string            `yaml:"query_driver"`
	UserData               map[string]string `yaml:"user_data"`
	AllowEmptyDiagrams     bool              `yaml:"allow_empty_diagrams"`
	NoMetadata             bool              `yaml:"no_metadata"`

	Diagrams map[string]*Diagram `yaml:"diagrams"`
}

// Diagram is one named diagram's configuration block.
type Diagram struct {
	Type string   `yaml:"type"` // "class" | "sequence" | "package" | "include"
	Glob []string `yaml:"glob"`

	UsingNamespace []string `yaml:"using_namespace"`

	Include IncludeExcludeBlock `yaml:"include"`
	Exclude IncludeExcludeBlock `yaml:"exclude"`

	StartFrom  []EntryPoint `yaml:"start_from"`
	RelativeTo string       `yaml:"relative_to"`

	GenerateMethodArguments     bool `yaml:"generate_method_arguments"`
	GeneratePackageDependencies bool `yaml:"generate_package_dependencies"`
	GenerateTemplateArguments   bool `yaml:"generate_template_arguments"`

	Layout map[string][]string `yaml:"layout"`
}

// IncludeExcludeBlock mirrors filter.Block's predicate families as raw
// YAML-decoded strings, before qualname.Parse/model.ElementKind
// conversion turns them into a filter.Rules block.
type IncludeExcludeBlock struct {
	Namespaces      []string `yaml:"namespaces"`
	Paths           []string `yaml:"paths"`
	Elements        []string `yaml:"elements"`
	ElementTypes    []string `yaml:"element_types"`
	Relationships   []string `yaml:"relationships"`
	Access          []string `yaml:"access"`
	Subclasses      []string `yaml:"subclasses"`
	Specializations []string `yaml:"specializations"`
	Parents         []string `yaml:"parents"`
	Dependencies    []string `yaml:"dependencies"`
}

// EntryPoint is a sequence diagram's raw, YAML-decoded start_from entry,
// before sequence.EntryPointSpec resolution.
type EntryPoint struct {
	Function string `yaml:"function"`
	USR      string `yaml:"usr"`
	Location string `yaml:"location"` // "file:line"
}

// Load reads and decodes a YAML configuration file at path.
func Load(path string) (*Global, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var g Global
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &g, nil
}
