package model

import "github.com/clanguml-go/core/identity"

// Base is one entry in a Class's base list (spec.md §3).
type Base struct {
	ID        identity.ID
	Access    Access
	IsVirtual bool
}

// Member is a field or static field (spec.md §3 "Class ... members").
type Member struct {
	Name   string
	Type   string // rendered type-expression text
	Access Access
	Static bool
	Const  bool
}

// Parameter is a method/function formal parameter.
type Parameter struct {
	Name string
	Type string
}

// Method is a member function (spec.md §3 "Class ... methods").
type Method struct {
	Name       string
	ReturnType string
	Parameters []Parameter
	Access     Access
	Static     bool
	Const      bool
	Virtual    bool
	Pure       bool
	Default    bool
	Defaulted  bool
}

// Class models a class/struct/enum/concept element (spec.md §3 "Class").
// Field names and grouping mirror inspector/graph.Type (the teacher's Go
// type model), re-expressed for C++ class semantics: bases instead of
// Extends/Implements, pure/defaulted method flags instead of Go methods.
type Class struct {
	Element

	Abstract bool
	Template bool

	Bases              []Base
	Members            []Member
	Methods            []Method
	TemplateParameters []*TemplateParameter
	Friends            []identity.ID

	// NestedIn is the id of the enclosing record, if this class is
	// declared inside another (spec.md §4.G "compute nested_in").
	NestedIn *identity.ID

	// Specializes is set on an explicit/partial specialization, pointing
	// at the primary template's id (spec.md §4.F "Template identity").
	Specializes *identity.ID
}

// AddMember appends a member field.
func (c *Class) AddMember(m Member) {
	c.Members = append(c.Members, m)
}

// AddMethod appends a method.
func (c *Class) AddMethod(m Method) {
	c.Methods = append(c.Methods, m)
}

// AddBase appends a base-class reference.
func (c *Class) AddBase(b Base) {
	c.Bases = append(c.Bases, b)
}
