package diagram

import (
	"github.com/clanguml-go/core/identity"
	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/qualname"
)

// PackageDiagram promotes every distinct namespace among the admitted
// classes to a first-class model.Package node (spec.md §3 "Package",
// §4.G "Package diagram").
type PackageDiagram struct {
	Packages map[identity.ID]*model.Package
}

// NewPackageDiagram derives one Package per namespace found among
// admitted classes and synthesizes a package-level dependency whenever
// two classes in different namespaces are related, then runs the §4.G
// finalization pass (cross-namespace dependency synthesis is done
// inline below; self-edges are already suppressed by Package.AddDependency).
func NewPackageDiagram(m *Model, admitted map[identity.ID]bool) *PackageDiagram {
	d := &PackageDiagram{Packages: make(map[identity.ID]*model.Package)}

	for id := range admitted {
		cls, ok := m.Classes[id]
		if !ok || cls.Namespace == "" {
			continue
		}
		d.ensurePackage(cls.Namespace)
	}

	for _, rel := range m.Relationships {
		if !admitted[rel.SourceID] || !admitted[rel.TargetID] {
			continue
		}
		src, ok1 := m.Classes[rel.SourceID]
		dst, ok2 := m.Classes[rel.TargetID]
		if !ok1 || !ok2 || src.Namespace == "" || dst.Namespace == "" {
			continue
		}
		if src.Namespace == dst.Namespace {
			continue
		}
		srcPkg := d.ensurePackage(src.Namespace)
		dstPkg := d.ensurePackage(dst.Namespace)
		srcPkg.AddDependency(dstPkg.ID)
	}

	return d
}

func (d *PackageDiagram) ensurePackage(namespace string) *model.Package {
	id := identity.Of(namespace)
	if pkg, ok := d.Packages[id]; ok {
		return pkg
	}
	ns := qualname.Parse(namespace)
	name := ns.Name()
	ns.PopBack()
	pkg := &model.Package{
		Element: model.Element{
			ID:   id,
			Name: name,
			Kind: model.KindPackage,
		},
		NamespaceParent: ns.String(),
	}
	d.Packages[id] = pkg
	return pkg
}
