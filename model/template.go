package model

// TemplateParameterKind is the variant tag of TemplateParameter (spec.md
// §3 "Template parameter").
type TemplateParameterKind string

const (
	TPTypeParameter    TemplateParameterKind = "type-parameter"
	TPConcreteType     TemplateParameterKind = "concrete-type"
	TPNonTypeValue     TemplateParameterKind = "non-type-value"
	TPTemplateTemplate TemplateParameterKind = "template-template"
	TPPackExpansion    TemplateParameterKind = "pack-expansion"
)

// TemplateParameter is a variant over the shapes listed in spec.md §3. It
// may recursively hold nested template parameters (e.g. the children of
// A<B<C,D>,E>) and carries an optional default.
type TemplateParameter struct {
	Kind TemplateParameterKind

	// Type-parameter fields (valid when Kind == TPTypeParameter).
	IndexL    int
	IndexR    int
	Qualifier string // e.g. "typename", "class", a concept name

	// Name is the rendered spelling: a concrete type name, a non-type
	// value's literal text, or a template-template's template name.
	Name string

	// Unexposed holds the front-end's raw textual argument when the
	// parser could not fully structure it (spec.md §9 "Unexposed
	// template strings" — preserved verbatim, never approximated).
	Unexposed string

	Children []*TemplateParameter
	Default  *TemplateParameter
	IsPack   bool
}

// Clone deep-copies a TemplateParameter tree.
func (t *TemplateParameter) Clone() *TemplateParameter {
	if t == nil {
		return nil
	}
	c := *t
	c.Children = nil
	for _, child := range t.Children {
		c.Children = append(c.Children, child.Clone())
	}
	c.Default = t.Default.Clone()
	return &c
}
