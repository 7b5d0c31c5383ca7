package diagnostics

import (
	"errors"
	"fmt"
)

// Stage tags which pipeline stage an error originated in, so a caller
// can errors.As against *Error and decide how to report a failure
// without string-matching messages (spec.md §7 error taxonomy:
// configuration / filter / front-end / identity / traversal /
// template-parser).
type Stage string

const (
	StageConfiguration  Stage = "configuration"
	StageFilter         Stage = "filter"
	StageFrontend       Stage = "frontend"
	StageIdentity       Stage = "identity"
	StageTraversal      Stage = "traversal"
	StageTemplateParser Stage = "template-parser"
)

// Error wraps an underlying error with the stage it occurred in.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with stage, or returns nil if err is nil.
func Wrap(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Stage: stage, Err: err}
}

// ErrEmptyDiagram signals that a diagram's filter rules admitted no
// elements at all (spec.md §7 "filter: no elements admitted ⇒ empty
// diagram — demoted to warning when allow_empty_diagrams").
var ErrEmptyDiagram = errors.New("diagnostics: diagram admits no elements")

// CheckEmptyDiagram implements spec.md §8 scenario 5: an empty diagram
// is a fatal StageFilter configuration error unless allowEmpty is set,
// in which case the caller is expected to log a warning instead and
// still emit the empty @startuml/@enduml wrapper.
func CheckEmptyDiagram(empty, allowEmpty bool) error {
	if !empty || allowEmpty {
		return nil
	}
	return Wrap(StageFilter, ErrEmptyDiagram)
}
