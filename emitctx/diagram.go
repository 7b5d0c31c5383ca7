package emitctx

import (
	"github.com/clanguml-go/core/diagram"
	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/sequence"
)

// FromClassDiagram projects a diagram.ClassDiagram into the context
// shape a class-diagram template expects: "elements" and
// "relationships" lists under the given root path (spec.md §4.H,
// §4.G "Class diagram").
func FromClassDiagram(root string, d *diagram.ClassDiagram) (Context, error) {
	ctx := New()
	var elements []*model.Class
	for _, cls := range d.Elements {
		elements = append(elements, cls)
	}
	if err := ctx.Set(root+".elements", elements); err != nil {
		return nil, err
	}
	if err := ctx.Set(root+".relationships", d.Relationships); err != nil {
		return nil, err
	}
	return ctx, nil
}

// FromPackageDiagram projects a diagram.PackageDiagram into "packages".
func FromPackageDiagram(root string, d *diagram.PackageDiagram) (Context, error) {
	ctx := New()
	var packages []*model.Package
	for _, pkg := range d.Packages {
		packages = append(packages, pkg)
	}
	if err := ctx.Set(root+".packages", packages); err != nil {
		return nil, err
	}
	return ctx, nil
}

// FromIncludeDiagram projects a diagram.IncludeDiagram into "includes".
func FromIncludeDiagram(root string, d *diagram.IncludeDiagram) (Context, error) {
	ctx := New()
	if err := ctx.Set(root+".includes", d.Edges); err != nil {
		return nil, err
	}
	return ctx, nil
}

// FromSequence projects a resolved sequence.Message trace into
// "messages".
func FromSequence(root string, messages []sequence.Message) (Context, error) {
	ctx := New()
	if err := ctx.Set(root+".messages", messages); err != nil {
		return nil, err
	}
	return ctx, nil
}
