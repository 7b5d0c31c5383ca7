package model

import "github.com/clanguml-go/core/identity"

// Package models a namespace promoted to a first-class node in the
// package diagram (spec.md §3 "Package"). Its invariant is
// id == hash(ns_qualified_name).
type Package struct {
	Element

	NamespaceParent string
	DependsOn       map[identity.ID]bool
}

// AddDependency records that this package depends on target, suppressing
// self-edges per spec.md §4.G "Self-edges are suppressed".
func (p *Package) AddDependency(target identity.ID) {
	if target == p.ID {
		return
	}
	if p.DependsOn == nil {
		p.DependsOn = make(map[identity.ID]bool)
	}
	p.DependsOn[target] = true
}
