// Package fixture provides a fake front-end that builds a
// frontend.TranslationUnit from a real parse tree instead of hand-built
// frontend structs, since the real C/C++ AST producer is an external
// collaborator (spec.md §1). Only this package's own tests use it; the
// traverse, diagram and sequence tests build their inputs by hand. FromSource
// reuses the teacher's tree-sitter-driven walk shape
// (inspector/golang/inspector_tree_sitter.go,
// analyzer/golang_analyzer.go's buildScopeHierarchy/processDeclarations)
// against the bundled Go grammar, and projects the result into
// frontend.TranslationUnit so the rest of the test suite never needs to
// special-case "this is actually Go syntax, not C++".
package fixture

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/clanguml-go/core/frontend"
)

// FromSource parses src (Go syntax, used only as a convenient stand-in
// grammar) and produces a frontend.TranslationUnit: type declarations
// become Records, their methods become Record.Methods, free functions
// become Functions, and call expressions inside a body become Calls.
func FromSource(path string, src []byte) (*frontend.TranslationUnit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("fixture: failed to parse source: %w", err)
	}

	tu := &frontend.TranslationUnit{Path: path}
	root := tree.RootNode()

	recordsByName := map[string]*frontend.Record{}
	var pendingMethods []pendingMethod

	for i := 0; i < int(root.NamedChildCount()); i++ {
		decl := root.NamedChild(i)
		switch decl.Type() {
		case "type_declaration":
			for j := 0; j < int(decl.NamedChildCount()); j++ {
				spec := decl.NamedChild(j)
				if spec.Type() != "type_spec" {
					continue
				}
				rec := typeSpecToRecord(spec, src)
				if rec != nil {
					recordsByName[rec.QualifiedName] = rec
					tu.Records = append(tu.Records, *rec)
				}
			}
		case "function_declaration":
			fn := funcDeclToFunction(decl, src)
			tu.Functions = append(tu.Functions, fn)
		case "method_declaration":
			recv, method := methodDeclToMethod(decl, src)
			if recv != "" {
				pendingMethods = append(pendingMethods, pendingMethod{recv: recv, method: method})
			}
		}
	}

	for _, pm := range pendingMethods {
		if rec, ok := recordsByName[pm.recv]; ok {
			rec.Methods = append(rec.Methods, pm.method)
		}
	}
	// rewrite tu.Records with the mutated pointers' values since Records
	// holds copies, not pointers.
	for idx, rec := range tu.Records {
		if updated, ok := recordsByName[rec.QualifiedName]; ok {
			tu.Records[idx] = *updated
		}
	}

	return tu, nil
}

type pendingMethod struct {
	recv   string
	method frontend.Method
}

func text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return string(src[n.StartByte():n.EndByte()])
}

func typeSpecToRecord(spec *sitter.Node, src []byte) *frontend.Record {
	nameNode := spec.ChildByFieldName("name")
	typeNode := spec.ChildByFieldName("type")
	if nameNode == nil || typeNode == nil {
		return nil
	}
	rec := &frontend.Record{
		QualifiedName: text(nameNode, src),
		Kind:          "struct",
	}
	if typeNode.Type() != "struct_type" {
		return rec
	}
	var body *sitter.Node
	for i := 0; i < int(typeNode.NamedChildCount()); i++ {
		if c := typeNode.NamedChild(i); c.Type() == "field_declaration_list" {
			body = c
		}
	}
	if body == nil {
		return rec
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		fieldDecl := body.NamedChild(i)
		if fieldDecl.Type() != "field_declaration" {
			continue
		}
		fieldType := fieldTypeOf(fieldDecl, src)
		names := fieldDecl.ChildByFieldName("name")
		if names != nil {
			rec.Fields = append(rec.Fields, frontend.Field{
				Name:   text(names, src),
				Type:   fieldType,
				Access: accessFor(text(names, src)),
			})
		}
	}
	return rec
}

func fieldTypeOf(fieldDecl *sitter.Node, src []byte) frontend.Type {
	typeNode := fieldDecl.ChildByFieldName("type")
	return classifyType(typeNode, src)
}

// classifyType projects a tree-sitter Go type node onto the
// frontend.Type shape's shape classifier bits (spec.md §6 "type
// classifier"), matching the pointer/record/array distinctions the
// traversal dispatch table in §4.F keys off of.
func classifyType(n *sitter.Node, src []byte) frontend.Type {
	if n == nil {
		return frontend.Type{IsVoid: true}
	}
	switch n.Type() {
	case "pointer_type":
		inner := classifyType(n.ChildByFieldName("type"), src)
		return frontend.Type{IsPointer: true, Pointee: &inner, CanonicalName: "*" + inner.CanonicalName}
	case "slice_type", "array_type":
		inner := classifyType(n.ChildByFieldName("element"), src)
		return frontend.Type{IsArray: true, Pointee: &inner, CanonicalName: "[]" + inner.CanonicalName}
	case "qualified_type", "type_identifier":
		name := text(n, src)
		if isPrimitive(name) {
			return frontend.Type{CanonicalName: name}
		}
		return frontend.Type{IsRecord: true, RecordQualifiedName: name, CanonicalName: name}
	default:
		return frontend.Type{CanonicalName: text(n, src)}
	}
}

func isPrimitive(name string) bool {
	switch name {
	case "int", "int32", "int64", "uint", "uint32", "uint64", "float32", "float64", "string", "bool", "byte", "rune", "error":
		return true
	}
	return false
}

func accessFor(name string) string {
	if name == "" {
		return "public"
	}
	if strings.ToUpper(name[:1]) == name[:1] {
		return "public"
	}
	return "private"
}

func funcDeclToFunction(decl *sitter.Node, src []byte) frontend.Function {
	nameNode := decl.ChildByFieldName("name")
	fn := frontend.Function{
		QualifiedName: text(nameNode, src),
		USR:           frontend.USR(text(nameNode, src)),
	}
	if body := decl.ChildByFieldName("body"); body != nil {
		fn.Body = &frontend.Body{Calls: extractCalls(body, src, fn.USR)}
	}
	return fn
}

func methodDeclToMethod(decl *sitter.Node, src []byte) (string, frontend.Method) {
	recvNode := decl.ChildByFieldName("receiver")
	nameNode := decl.ChildByFieldName("name")
	recvType := receiverTypeName(recvNode, src)
	m := frontend.Method{
		Name:   text(nameNode, src),
		Access: accessFor(text(nameNode, src)),
		USR:    frontend.USR(recvType + "." + text(nameNode, src)),
	}
	if body := decl.ChildByFieldName("body"); body != nil {
		m.Body = &frontend.Body{Calls: extractCalls(body, src, m.USR)}
	}
	return recvType, m
}

func receiverTypeName(recv *sitter.Node, src []byte) string {
	if recv == nil {
		return ""
	}
	if recv.Type() == "parameter_list" && recv.NamedChildCount() > 0 {
		recv = recv.NamedChild(0)
	}
	typeNode := recv.ChildByFieldName("type")
	if typeNode == nil {
		return ""
	}
	if typeNode.Type() == "pointer_type" {
		typeNode = typeNode.ChildByFieldName("type")
	}
	return text(typeNode, src)
}

// extractCalls walks body looking for call_expression nodes in visit
// order, matching spec.md §4.F "produces messages in visit order".
func extractCalls(body *sitter.Node, src []byte, caller frontend.USR) []frontend.Call {
	var calls []frontend.Call
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "call_expression" {
			fn := n.ChildByFieldName("function")
			if fn != nil {
				calls = append(calls, frontend.Call{
					CallerUSR:  caller,
					CalleeUSR:  frontend.USR(text(fn, src)),
					CalleeName: text(fn, src),
				})
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(body)
	return calls
}
