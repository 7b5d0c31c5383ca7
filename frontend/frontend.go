// Package frontend declares the capability set a C/C++ AST producer must
// expose for the traverse package to consume (spec.md §6 "Front-end
// adapter (consumed)"). The concrete front-end — parsing real C++ with a
// compiler — is explicitly out of scope (spec.md §1); this package only
// names the interface traverse is written against, mirroring the shape
// of the teacher's own Inspector interface
// (inspector/inspector.go) generalized from "one interface per source
// language" to "one interface the core traversal depends on".
package frontend

// SourceLocation pins a declaration or expression to file/line/column
// within a translation unit.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// USR is the Unified Symbol Resolution string: an opaque stable key a
// front-end assigns per declared symbol, stable across translation
// units (glossary).
type USR string

// Attrs carries cross-cutting declaration metadata every visit_*
// callback receives: doc comment, deprecated flag, access specifier.
type Attrs struct {
	Comment    string
	Deprecated bool
	Access     string // "public" | "protected" | "private" | "" (none -> Public)
	Location   SourceLocation
}

// Base describes one entry in a record's base-class list.
type Base struct {
	QualifiedName string
	Access        string
	IsVirtual     bool
}

// TemplateParam is a template parameter as the front-end reports it,
// before typeexpr structures any unexposed string it carries.
type TemplateParam struct {
	Name      string
	IsType    bool
	IsPack    bool
	Default   string
	Unexposed string // raw text when the front-end could not resolve it
}

// Field describes a member or static field.
type Field struct {
	Name   string
	Type   Type
	Access string
	Static bool
	Const  bool
	Attrs  Attrs
}

// Method describes a member function.
type Method struct {
	Name       string
	ReturnType Type
	Parameters []Param
	Access     string
	Static     bool
	Const      bool
	Virtual    bool
	Pure       bool
	Default    bool
	Defaulted  bool
	// ExplicitlyDefaulted distinguishes "= default" from a compiler
	// synthesized default (spec.md §9 open question (i)).
	ExplicitlyDefaulted bool
	Body                *Body
	USR                 USR
}

// Param is a function/method formal parameter.
type Param struct {
	Name string
	Type Type
}

// Record is a class/struct/union declaration.
type Record struct {
	QualifiedName  string
	Kind           string // "class" | "struct" | "union" | "enum" | "concept"
	Abstract       bool
	IsTemplate     bool
	Bases          []Base
	TemplateParams []TemplateParam
	Fields         []Field
	StaticFields   []Field
	Methods        []Method
	Friends        []string
	Attrs          Attrs
	// Specializes is the primary template's qualified name, set only on
	// an explicit/partial specialization (spec.md §4.F).
	Specializes string
}

// Enum is an enum declaration.
type Enum struct {
	QualifiedName string
	Enumerators   []string
	Attrs         Attrs
}

// Function is a free function or member function declaration.
type Function struct {
	QualifiedName  string
	ReturnType     Type
	Parameters     []Param
	TemplateParams []TemplateParam
	Attrs          Attrs
	Body           *Body
	USR            USR
}

// Namespace is a namespace declaration.
type Namespace struct {
	QualifiedName string
	Inline        bool
	Anonymous     bool
}

// Call is one call site inside a function/method body (spec.md §6
// "visit_call").
type Call struct {
	CallerUSR     USR
	CalleeUSR     USR
	CalleeName    string
	Location      SourceLocation
	IsLambda      bool
	IsConditional bool
	IsLoop        bool
}

// Body is the sequence of call sites discovered inside a function body,
// in source visit order (spec.md §4.F "For function calls inside a
// body").
type Body struct {
	Calls []Call
}

// Type is the type classifier capability set of spec.md §6: booleans for
// shape plus accessors for the referenced pieces. Exactly one of the
// Is* booleans (other than IsConst/IsVolatile qualifiers) is expected to
// be true for a given Type.
type Type struct {
	CanonicalName string

	IsPointer                bool
	IsLValueReference        bool
	IsRValueReference        bool
	IsArray                  bool
	IsEnum                   bool
	IsRecord                 bool
	IsTemplateSpecialization bool
	IsVoid                   bool
	IsFunctionProto          bool

	Pointee *Type  // pointer/reference/array element type
	Args    []Type // template-specialization argument list
	Params  []Type // function-proto parameter types

	// RecordQualifiedName/EnumQualifiedName resolve IsRecord/IsEnum to a
	// concrete declared entity by name, matching "as_record_decl" /
	// "as_enum_decl" in spec.md §6.
	RecordQualifiedName string
	EnumQualifiedName   string

	// Unexposed carries a raw, front-end-supplied string for a dependent
	// type the front-end could not fully resolve (spec.md §4.E, §9).
	Unexposed string
}

// SourceManager exposes the file/system-header classification spec.md
// §6 names.
type SourceManager interface {
	IsInSystemHeader(loc SourceLocation) bool
	FilePath(loc SourceLocation) string
	PresumedLine(loc SourceLocation) int
}

// TranslationUnit is the per-TU capability set traverse.Visitor walks.
type TranslationUnit struct {
	Path       string
	Namespaces []Namespace
	Records    []Record
	Enums      []Enum
	Functions  []Function
	Includes   []Include

	SourceManager SourceManager
}

// Include is one #include edge discovered via preprocessor hooks
// (spec.md §4.G "Include diagram").
type Include struct {
	FromFile string
	ToFile   string
	Kind     string // "system" | "external" | "project"
}
