// Package sequence implements the call-graph sequence engine of spec.md
// §4.I: turning the flat Call edges traverse collected per translation
// unit into an ordered Message trace rooted at a resolved entry point. It
// has no direct teacher analogue — the teacher repo never models call
// graphs — so its DFS-with-reentrancy-guard shape is original to this
// component, built in the same id-indexed, pointer-free style the rest
// of the model uses (model.Relationship, traverse.Call).
package sequence

import (
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/identity"
	"github.com/clanguml-go/core/traverse"
)

// Message is one call or return arrow in the rendered sequence diagram.
type Message struct {
	FromID   identity.ID
	ToID     identity.ID
	Name     string
	Depth    int
	IsReturn bool
}

// ReturnTypeLookup reports whether calleeID's return type is void, per
// spec.md §4.I "call/return message pairing unless return type is void"
// — a void-returning call never gets a paired return arrow.
type ReturnTypeLookup func(calleeID identity.ID) bool

// Engine replays the call edges of one or more translation units into an
// ordered per-entry-point message trace.
type Engine struct {
	callsByCaller map[identity.ID][]traverse.Call
}

// NewEngine indexes calls by caller id so Resolve can walk outward from
// an entry point without rescanning the full call list at each step.
func NewEngine(calls []traverse.Call) *Engine {
	e := &Engine{callsByCaller: make(map[identity.ID][]traverse.Call)}
	for _, c := range calls {
		e.callsByCaller[c.CallerID] = append(e.callsByCaller[c.CallerID], c)
	}
	return e
}

// Resolve replays calls depth-first from entry, in the visit order
// traverse recorded them, pairing each call with a return message unless
// isVoidReturn reports the callee returns void. A caller already active
// higher up the current call stack is not re-entered — the "active-USR
// re-entrancy guard" of spec.md §4.I — which keeps a recursive or
// mutually-recursive call chain from rendering an infinite sequence.
func (e *Engine) Resolve(entry identity.ID, isVoidReturn ReturnTypeLookup) []Message {
	active := map[identity.ID]bool{}
	var msgs []Message
	e.walk(entry, 0, active, isVoidReturn, &msgs)
	return msgs
}

func (e *Engine) walk(callerID identity.ID, depth int, active map[identity.ID]bool, isVoidReturn ReturnTypeLookup, msgs *[]Message) {
	if active[callerID] {
		return
	}
	active[callerID] = true
	defer delete(active, callerID)

	for _, call := range e.callsByCaller[callerID] {
		if !call.HasCallee {
			continue
		}
		*msgs = append(*msgs, Message{FromID: callerID, ToID: call.CalleeID, Name: call.CalleeName, Depth: depth})
		e.walk(call.CalleeID, depth+1, active, isVoidReturn, msgs)
		if isVoidReturn == nil || !isVoidReturn(call.CalleeID) {
			*msgs = append(*msgs, Message{FromID: call.CalleeID, ToID: callerID, Name: call.CalleeName, Depth: depth, IsReturn: true})
		}
	}
}

// EntryPointSpec names a sequence diagram's starting point one of three
// ways (spec.md §4.I "entry-point resolution by qualified name/USR/
// source location"); ResolveEntryPoint tries the fields in that order.
type EntryPointSpec struct {
	QualifiedName string
	USR           frontend.USR
	Location      frontend.SourceLocation
}

// ResolveEntryPoint turns spec into an id using, in order, a direct
// qualified-name hash, the USR index, then the source-location index. A
// populated qualified name always wins; a USR missing from the index falls
// through to the location.
func ResolveEntryPoint(spec EntryPointSpec, usrIndex map[frontend.USR]identity.ID, locationIndex map[frontend.SourceLocation]identity.ID) (identity.ID, bool) {
	if spec.QualifiedName != "" {
		return identity.Of(spec.QualifiedName), true
	}
	if spec.USR != "" {
		if id, ok := usrIndex[spec.USR]; ok {
			return id, true
		}
	}
	if spec.Location != (frontend.SourceLocation{}) {
		if id, ok := locationIndex[spec.Location]; ok {
			return id, true
		}
	}
	return identity.ID(0), false
}
