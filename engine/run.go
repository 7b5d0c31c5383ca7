// Package engine is the §5 concurrency orchestrator: one traverse.Visitor
// goroutine per translation unit, each writing its own Result with no
// shared mutable state, followed by the exclusive-lock serial merge
// (diagram.Merge). The worker-pool shape is grounded on
// golang.org/x/sync/errgroup, promoted here from an indirect teacher
// dependency to a direct one because it is the one piece of the
// teacher's module graph built exactly for this job.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/clanguml-go/core/diagnostics"
	"github.com/clanguml-go/core/diagram"
	"github.com/clanguml-go/core/filter"
	"github.com/clanguml-go/core/frontend"
	"github.com/clanguml-go/core/traverse"
)

// Run visits every translation unit in parallel and merges the results
// into one Model. A single translation unit's identity collision (or
// any other traversal error) cancels the remaining goroutines via the
// errgroup's derived context and fails the whole run — spec.md §8
// scenario 6 treats identity collisions as fatal model errors, not
// per-TU warnings.
func Run(ctx context.Context, log *zap.Logger, tus []*frontend.TranslationUnit, rules filter.Rules) (*diagram.Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	results := make([]*traverse.Result, len(tus))

	g, gctx := errgroup.WithContext(ctx)
	for i, tu := range tus {
		i, tu := i, tu
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			log.Debug("visiting translation unit", zap.String("path", tu.Path))
			v := traverse.NewVisitor(rules)
			r, err := v.VisitTranslationUnit(tu)
			if err != nil {
				return diagnostics.Wrap(diagnostics.StageTraversal, fmt.Errorf("%s: %w", tu.Path, err))
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug("merging translation units", zap.Int("count", len(results)))
	model, err := diagram.Merge(results)
	if err != nil {
		// A cross-TU identity collision is the only error diagram.Merge
		// returns (spec.md §8 scenario 6); tag it distinctly from a
		// per-TU traversal failure.
		return nil, diagnostics.Wrap(diagnostics.StageIdentity, err)
	}
	return model, nil
}
