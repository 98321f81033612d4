// Package stems derives the twelve principal-part stems of Ancient Greek
// verbs from a single root and checks hand-curated lexicon entries
// against the derivation.
//
// Each verb class ("0a", "1c", ...) constrains the shape of its roots and
// alters them into two intermediate forms; the stem formulas themselves
// are shared by all classes:
//
//	set, err := stems.Derive("φιλε", stems.Class1a)
//	set[stems.PerfectActive] // "πεφιληκ"
package stems

import (
	"context"

	"go.uber.org/zap"
)

// Engine bundles derivation and lexicon checking for long-running
// callers such as the HTTP server.
type Engine struct {
	logger  *zap.Logger
	metrics *Metrics
}

// NewEngine returns an Engine. Both arguments may be nil.
func NewEngine(logger *zap.Logger, metrics *Metrics) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, metrics: metrics}
}

// Derive computes the stems of root under class.
func (e *Engine) Derive(root string, class VerbClass) (StemSet, error) {
	s, err := Derive(root, class)
	e.metrics.derived(class, err)
	if err != nil {
		e.logger.Debug("derive failed", zap.String("root", root), zap.String("class", string(class)), zap.Error(err))
	}
	return s, err
}

// CheckLexicon checks a single partition already in memory.
func (e *Engine) CheckLexicon(lex *Lexicon, class VerbClass) (PartitionReport, error) {
	c := &Checker{logger: e.logger, metrics: e.metrics}
	return c.CheckLexicon(lex, class)
}

// Check runs a full checker pass over cfg.
func (e *Engine) Check(ctx context.Context, cfg Config, opts ...Option) (*Summary, error) {
	opts = append([]Option{WithLogger(e.logger), WithMetrics(e.metrics)}, opts...)
	c, err := NewChecker(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx)
}
