// Package traverse implements the AST-adapter traversal of spec.md §4.F:
// walking a frontend.TranslationUnit, consulting the filter engine before
// admitting each element or relationship, deriving stable ids, and
// producing one per-translation-unit partial model (a Result). It never
// parses C++ itself — the concrete front-end is an external collaborator
// (spec.md §1, §6).
//
// The visit shape — register every declaration first, then derive
// relationships in a second pass once every symbol in the TU is known —
// is grounded on the teacher's two-phase package build
// (analyzer/package.go's Collect-then-Resolve split).
package traverse

import (
	"fmt"

	"github.com/clanguml-go/core/filter"
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/identity"
	"github.com/clanguml-go/core/model"
	"github.com/clanguml-go/core/qualname"
)

// Visitor walks one translation unit at a time into a *Result. A Visitor
// is not safe for concurrent use by multiple goroutines on the same
// translation unit, but spec.md §5 only ever asks for one Visitor per TU
// running in its own goroutine, each writing its own Result.
type Visitor struct {
	Rules    filter.Rules
	Registry *identity.Registry

	result *Result
	// usrToQualifiedName resolves a call's CalleeUSR back to the
	// qualified name claimed for it during the registration pass, so
	// Result.Calls can carry a resolved id instead of a bare name
	// (spec.md §4.F "For function calls inside a body").
	usrToQualifiedName map[frontend.USR]string
	// knownSpecializationBase reports whether a given primary-template
	// qualified name has already been claimed, resolving the §4.D
	// "Deferred" verdict for specializations visited before their base.
	knownSpecializationBase map[string]bool
	// admittedID remembers the id claimed for each admitted qualified
	// name so the analysis pass never re-derives or re-claims it —
	// Registry.Claim is only ever called once per admitted record.
	admittedID map[string]identity.ID
	deferred   []deferredSpecialization
}

type deferredSpecialization struct {
	path string
	rec  frontend.Record
}

// NewVisitor creates a Visitor for one translation unit.
func NewVisitor(rules filter.Rules) *Visitor {
	return &Visitor{
		Rules:                   rules,
		Registry:                identity.NewRegistry(),
		usrToQualifiedName:      make(map[frontend.USR]string),
		knownSpecializationBase: make(map[string]bool),
		admittedID:              make(map[string]identity.ID),
	}
}

// VisitTranslationUnit walks tu and returns its partial model. Errors are
// reserved for identity collisions (spec.md §8 scenario 6: "Identity
// collisions ... are fatal model errors") — an excluded or deferred
// element is not an error.
func (v *Visitor) VisitTranslationUnit(tu *frontend.TranslationUnit) (*Result, error) {
	v.result = NewResult(tu.Path)

	for _, rec := range tu.Records {
		if err := v.registerRecord(tu.Path, rec); err != nil {
			return nil, err
		}
	}
	for _, e := range tu.Enums {
		if err := v.registerEnum(tu.Path, e); err != nil {
			return nil, err
		}
	}
	for _, fn := range tu.Functions {
		v.registerFunction(fn)
	}

	// Retry every specialization the first pass deferred (§4.D
	// "deferred"), now that every primary template declared in this TU
	// has had a chance to register. A retry that is still Deferred (its
	// base was never declared in this TU) is re-queued rather than
	// discarded, matching §7's "unresolved specialization beyond a
	// fix-point — logged, deferred" policy.
	pending := v.deferred
	v.deferred = nil
	for _, p := range pending {
		if err := v.registerRecord(p.path, p.rec); err != nil {
			return nil, err
		}
	}

	for _, rec := range tu.Records {
		if err := v.analyzeRecord(rec); err != nil {
			return nil, err
		}
	}
	for _, p := range pending {
		if err := v.analyzeRecord(p.rec); err != nil {
			return nil, err
		}
	}
	for _, fn := range tu.Functions {
		v.analyzeFunction(fn)
	}

	v.result.Includes = append(v.result.Includes, tu.Includes...)
	v.buildSequenceIndices(tu)
	return v.result, nil
}

// buildSequenceIndices populates Result.USRIndex/LocationIndex from the
// symbols this visitor resolved, so sequence.ResolveEntryPoint can turn
// a qualified-name/USR/source-location spec into an id (spec.md §4.I).
func (v *Visitor) buildSequenceIndices(tu *frontend.TranslationUnit) {
	for usr, qn := range v.usrToQualifiedName {
		v.result.USRIndex[usr] = identity.Of(qn)
	}
	for _, fn := range tu.Functions {
		v.result.LocationIndex[fn.Attrs.Location] = identity.Of(fn.QualifiedName)
	}
	for _, rec := range tu.Records {
		if id, ok := v.admittedID[rec.QualifiedName]; ok {
			v.result.LocationIndex[rec.Attrs.Location] = id
		}
	}
}

func (v *Visitor) candidateFor(path string, rec frontend.Record) filter.Candidate {
	c := filter.Candidate{
		QualifiedName: qualname.Parse(rec.QualifiedName),
		Path:          path,
		ElementType:   elementKindFor(rec.Kind),
		Access:        accessFrom(rec.Attrs.Access),
	}
	if rec.Specializes != "" {
		c.IsSpecialization = true
		c.SpecializationBaseKnown = v.knownSpecializationBase[rec.Specializes]
	}
	return c
}

// registerRecord claims an id for rec (or defers it) without yet
// deriving relationships, so that forward declarations seen earlier in
// the TU and specializations seen before their primary template both
// resolve correctly once every declaration has been registered.
func (v *Visitor) registerRecord(path string, rec frontend.Record) error {
	verdict := v.Rules.Evaluate(v.candidateFor(path, rec))
	if verdict == filter.Deferred {
		v.deferred = append(v.deferred, deferredSpecialization{path: path, rec: rec})
		return nil
	}
	if verdict == filter.Excluded {
		return nil
	}

	id, err := v.Registry.Claim(rec.QualifiedName)
	if err != nil {
		return fmt.Errorf("traverse: %w", err)
	}
	v.knownSpecializationBase[rec.QualifiedName] = true
	v.admittedID[rec.QualifiedName] = id

	cls := v.existingOrNewClass(id, rec)
	mergeRecordInto(cls, rec)

	for _, m := range rec.Methods {
		if m.USR != "" {
			v.usrToQualifiedName[m.USR] = rec.QualifiedName + "::" + m.Name
		}
	}
	return nil
}

func (v *Visitor) existingOrNewClass(id identity.ID, rec frontend.Record) *model.Class {
	if cls, ok := v.result.Classes[id]; ok {
		return cls
	}
	ns := qualname.Parse(rec.QualifiedName)
	ns.PopBack()
	cls := &model.Class{
		Element: model.Element{
			ID:         id,
			Name:       qualname.Parse(rec.QualifiedName).Name(),
			Namespace:  ns.String(),
			Kind:       elementKindFor(rec.Kind),
			Comment:    rec.Attrs.Comment,
			Deprecated: rec.Attrs.Deprecated,
			Access:     accessFrom(rec.Attrs.Access),
			Location: model.Location{
				File:   rec.Attrs.Location.File,
				Line:   rec.Attrs.Location.Line,
				Column: rec.Attrs.Location.Column,
			},
		},
	}
	v.result.Classes[id] = cls
	return cls
}

// registerEnum claims an id for e and admits it as a model.Class with
// Kind model.KindEnum, the "visit_enum" capability spec.md §6 names
// alongside visit_record. Enumerators carry no type/access information
// of their own, so each is folded into cls.Members as a bare Member
// (name only), the same shape the class diagram already renders.
func (v *Visitor) registerEnum(path string, e frontend.Enum) error {
	c := filter.Candidate{
		QualifiedName: qualname.Parse(e.QualifiedName),
		Path:          path,
		ElementType:   model.KindEnum,
		Access:        accessFrom(e.Attrs.Access),
	}
	if v.Rules.Evaluate(c) != filter.Admitted {
		return nil
	}

	id, err := v.Registry.Claim(e.QualifiedName)
	if err != nil {
		return fmt.Errorf("traverse: %w", err)
	}
	v.admittedID[e.QualifiedName] = id

	cls, ok := v.result.Classes[id]
	if !ok {
		ns := qualname.Parse(e.QualifiedName)
		ns.PopBack()
		cls = &model.Class{
			Element: model.Element{
				ID:         id,
				Name:       qualname.Parse(e.QualifiedName).Name(),
				Namespace:  ns.String(),
				Kind:       model.KindEnum,
				Comment:    e.Attrs.Comment,
				Deprecated: e.Attrs.Deprecated,
				Access:     accessFrom(e.Attrs.Access),
				Location: model.Location{
					File:   e.Attrs.Location.File,
					Line:   e.Attrs.Location.Line,
					Column: e.Attrs.Location.Column,
				},
			},
		}
		v.result.Classes[id] = cls
	}
	for _, enumerator := range e.Enumerators {
		cls.AddMember(model.Member{Name: enumerator})
	}
	return nil
}

// mergeRecordInto folds rec's declaration-level data into cls. A later
// visit that carries fields/methods always wins over an earlier forward
// declaration that carried none (spec.md §5 "non-forward beats forward"
// merge rule, generalized here to within-TU merging of repeated
// declarations of the same entity).
func mergeRecordInto(cls *model.Class, rec frontend.Record) {
	isFullDeclaration := len(rec.Fields) > 0 || len(rec.StaticFields) > 0 || len(rec.Methods) > 0 || len(rec.Bases) > 0
	if !isFullDeclaration && (len(cls.Members) > 0 || len(cls.Methods) > 0) {
		return
	}

	cls.Abstract = cls.Abstract || rec.Abstract
	cls.Template = cls.Template || rec.IsTemplate

	for _, f := range rec.Fields {
		cls.AddMember(model.Member{
			Name:   f.Name,
			Type:   f.Type.CanonicalName,
			Access: accessFrom(f.Access),
			Static: f.Static,
			Const:  f.Const,
		})
	}
	for _, f := range rec.StaticFields {
		cls.AddMember(model.Member{
			Name:   f.Name,
			Type:   f.Type.CanonicalName,
			Access: accessFrom(f.Access),
			Static: true,
			Const:  f.Const,
		})
	}
	for _, friend := range rec.Friends {
		cls.Friends = append(cls.Friends, identity.Of(friend))
	}
	for _, m := range rec.Methods {
		var params []model.Parameter
		for _, p := range m.Parameters {
			params = append(params, model.Parameter{Name: p.Name, Type: p.Type.CanonicalName})
		}
		cls.AddMethod(model.Method{
			Name:       m.Name,
			ReturnType: m.ReturnType.CanonicalName,
			Parameters: params,
			Access:     accessFrom(m.Access),
			Static:     m.Static,
			Const:      m.Const,
			Virtual:    m.Virtual,
			Pure:       m.Pure,
			Default:    m.Default,
			Defaulted:  m.ExplicitlyDefaulted,
		})
	}
	for _, b := range rec.Bases {
		cls.AddBase(model.Base{
			ID:        identity.Of(b.QualifiedName),
			Access:    accessFrom(b.Access),
			IsVirtual: b.IsVirtual,
		})
	}
}

// analyzeRecord derives the relationship edges rec implies, once every
// symbol in the TU has a claimed id. It is a no-op for a record that
// registerRecord excluded (no Class entry exists for it).
func (v *Visitor) analyzeRecord(rec frontend.Record) error {
	id, ok := v.admittedID[rec.QualifiedName]
	if !ok {
		return nil // excluded, or deferred and never resolved
	}

	if rec.Specializes != "" {
		specID := identity.Of(rec.Specializes)
		v.result.Classes[id].Specializes = &specID
		// §4.F "records as instantiation relationship to its primary";
		// §4.G "synthesize instantiation edges from specialization→primary".
		v.result.AddRelationship(model.Relationship{
			SourceID: id,
			TargetID: specID,
			Kind:     model.RelInstantiation,
		})
	}

	for _, f := range rec.Fields {
		label := f.Name
		for _, found := range FindRelationships(f.Type, model.RelComposition) {
			v.result.AddRelationship(model.Relationship{
				SourceID: id,
				TargetID: targetID(found),
				Kind:     found.Kind,
				Label:    &label,
				Access:   accessFrom(f.Access),
			})
		}
	}
	for _, m := range rec.Methods {
		v.analyzeCallable(id, m.Parameters, m.ReturnType)
		if m.Body != nil {
			v.visitCalls(m.Body.Calls)
		}
	}
	return nil
}

func (v *Visitor) analyzeCallable(sourceID identity.ID, params []frontend.Param, returnType frontend.Type) {
	for _, p := range params {
		for _, found := range FindRelationships(p.Type, model.RelDependency) {
			v.result.AddRelationship(model.Relationship{
				SourceID: sourceID,
				TargetID: targetID(found),
				Kind:     model.RelDependency,
			})
		}
	}
	for _, found := range FindRelationships(returnType, model.RelDependency) {
		v.result.AddRelationship(model.Relationship{
			SourceID: sourceID,
			TargetID: targetID(found),
			Kind:     model.RelDependency,
		})
	}
}

func (v *Visitor) registerFunction(fn frontend.Function) {
	if fn.USR != "" {
		v.usrToQualifiedName[fn.USR] = fn.QualifiedName
	}
}

func (v *Visitor) analyzeFunction(fn frontend.Function) {
	if fn.Body == nil {
		return
	}
	v.visitCalls(fn.Body.Calls)
}

// visitCalls resolves each call site's caller/callee USR against the
// symbols registered in this TU, recording an unresolved callee (an
// external or not-yet-seen symbol) rather than dropping the call
// (spec.md §4.F "produces messages in visit order" — sequence assembly
// downstream decides what to do with an unresolved callee).
func (v *Visitor) visitCalls(calls []frontend.Call) {
	for _, c := range calls {
		callerQN, ok := v.usrToQualifiedName[c.CallerUSR]
		if !ok {
			continue
		}
		call := Call{
			CallerID:      identity.Of(callerQN),
			CalleeName:    c.CalleeName,
			Location:      c.Location,
			IsConditional: c.IsConditional,
			IsLoop:        c.IsLoop,
			IsLambda:      c.IsLambda,
		}
		if calleeQN, ok := v.usrToQualifiedName[c.CalleeUSR]; ok {
			call.CalleeID = identity.Of(calleeQN)
			call.HasCallee = true
		}
		v.result.Calls = append(v.result.Calls, call)
	}
}

func targetID(f Found) identity.ID {
	return identity.Of(f.QualifiedName)
}

func elementKindFor(kind string) model.ElementKind {
	switch kind {
	case "class":
		return model.KindClass
	case "struct", "union":
		return model.KindStruct
	case "enum":
		return model.KindEnum
	case "concept":
		return model.KindConcept
	default:
		return model.KindClass
	}
}

func accessFrom(s string) model.Access {
	switch s {
	case "public":
		return model.AccessPublic
	case "protected":
		return model.AccessProtected
	case "private":
		return model.AccessPrivate
	default:
		// spec.md §9 "Access-specifier mapping": an unknown/absent access
		// specifier (free functions, namespace-level declarations) is
		// treated as Public.
		return model.AccessPublic
	}
}
