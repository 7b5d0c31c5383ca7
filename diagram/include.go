package diagram

import "strings"

// IncludeDiagram is the #include graph discovered via preprocessor hooks
// (spec.md §4.G "Include diagram"), with every edge labelled system,
// external, or project.
type IncludeDiagram struct {
	Edges []IncludeEdge
}

// IncludeEdge is one labelled #include relationship.
type IncludeEdge struct {
	FromFile string
	ToFile   string
	Kind     string // "system" | "external" | "project"
}

var systemPrefixes = []string{"/usr/include", "/usr/lib", "/opt/"}

// NewIncludeDiagram labels every edge in m.Includes. A front-end that
// already classified an edge (Kind non-empty) is trusted verbatim;
// otherwise the edge is labelled system when its target lives under a
// known system header root, project when it lives under projectRoot,
// and external otherwise (spec.md §4.G "system/external/project
// labelling").
func NewIncludeDiagram(m *Model, projectRoot string) *IncludeDiagram {
	d := &IncludeDiagram{}
	for _, inc := range m.Includes {
		kind := inc.Kind
		if kind == "" {
			kind = classifyInclude(inc.ToFile, projectRoot)
		}
		d.Edges = append(d.Edges, IncludeEdge{FromFile: inc.FromFile, ToFile: inc.ToFile, Kind: kind})
	}
	return d
}

func classifyInclude(path, projectRoot string) string {
	if projectRoot != "" && strings.HasPrefix(path, projectRoot) {
		return "project"
	}
	for _, prefix := range systemPrefixes {
		if strings.HasPrefix(path, prefix) {
			return "system"
		}
	}
	return "external"
}
