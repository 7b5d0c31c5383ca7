package config

import (
	"strconv"
	"strings"

	"github.com/clanguml-go/core/filter"
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/qualname"
	"github.com/clanguml-go/core/sequence"
)

// ToRules converts the raw YAML-decoded include/exclude blocks into the
// filter.Rules a traverse.Visitor evaluates candidates against (spec.md
// §6 "the structured surface that drives filtering").
func (d *Diagram) ToRules() filter.Rules {
	return filter.Rules{
		Include: d.Include.toBlock(),
		Exclude: d.Exclude.toBlock(),
	}
}

// toBlock converts one raw namespaces/paths/elements/... block into a
// filter.Block, parsing each qualified-name string with qualname.Parse
// and casting the plain-string element/relationship/access lists to
// their model.* types directly — all three are just named strings.
func (b IncludeExcludeBlock) toBlock() filter.Block {
	block := filter.Block{
		Paths: b.Paths,
	}
	for _, ns := range b.Namespaces {
		block.Namespaces = append(block.Namespaces, qualname.Parse(ns))
	}
	for _, el := range b.Elements {
		block.Elements = append(block.Elements, qualname.Parse(el))
	}
	for _, et := range b.ElementTypes {
		block.ElementTypes = append(block.ElementTypes, model.ElementKind(et))
	}
	for _, rel := range b.Relationships {
		block.Relationships = append(block.Relationships, model.RelationshipKind(rel))
	}
	for _, acc := range b.Access {
		block.Access = append(block.Access, model.Access(acc))
	}
	for _, ns := range b.Subclasses {
		block.Subclasses = append(block.Subclasses, qualname.Parse(ns))
	}
	for _, ns := range b.Specializations {
		block.Specializations = append(block.Specializations, qualname.Parse(ns))
	}
	for _, ns := range b.Parents {
		block.Parents = append(block.Parents, qualname.Parse(ns))
	}
	for _, ns := range b.Dependencies {
		block.Dependencies = append(block.Dependencies, qualname.Parse(ns))
	}
	return block
}

// ToSpec converts one raw start_from entry into a sequence.EntryPointSpec,
// resolving its "file:line" Location string into a frontend.SourceLocation
// (spec.md §4.I "entry-point resolution by qualified name/USR/source
// location"). Function and USR pass through unchanged; an unparsable
// Location (missing or non-numeric line) is left as the zero value, which
// sequence.ResolveEntryPoint already treats as "no location given".
func (e EntryPoint) ToSpec() sequence.EntryPointSpec {
	spec := sequence.EntryPointSpec{
		QualifiedName: e.Function,
		USR:           frontend.USR(e.USR),
	}
	if file, line, ok := splitFileLine(e.Location); ok {
		spec.Location = frontend.SourceLocation{File: file, Line: line}
	}
	return spec
}

// splitFileLine parses a "file:line" string as used by config.EntryPoint.
// Location, splitting on the last colon so Windows-style drive-letter
// paths ("C:\foo\bar.cpp:42") still split correctly.
func splitFileLine(loc string) (file string, line int, ok bool) {
	i := strings.LastIndex(loc, ":")
	if i < 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(loc[i+1:])
	if err != nil {
		return "", 0, false
	}
	return loc[:i], n, true
}
