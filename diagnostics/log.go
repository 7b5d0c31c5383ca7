// Package diagnostics carries the ambient logging and error-taxonomy
// concerns spec.md's Non-goals exclude as *features* but never as
// ambient plumbing: every run still needs structured, leveled logging
// and a way to classify what stage failed. Logging is zap
// (go.uber.org/zap), grounded on theRebelliousNerd-codenerd's
// cmd/nerd/main.go, which builds a zap.Logger once at startup and
// threads it through the rest of the program.
package diagnostics

import (
	"go.uber.org/zap"
)

// NewLogger builds a zap.Logger in either structured JSON mode (for log
// aggregation) or a human-readable console mode (for interactive use),
// mirroring the teacher's own --json/--human toggle.
func NewLogger(jsonOutput bool, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if !jsonOutput {
		cfg = zap.NewDevelopmentConfig()
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
