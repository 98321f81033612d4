package stems

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Checker verifies that the stems recorded in lexicon partitions agree
// with the derivation rules of their verb class.
type Checker struct {
	cfg     Config
	source  Source
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSource overrides where partitions are read from.
// The default reads Config.LexiconDir.
func WithSource(s Source) Option {
	return func(c *Checker) { c.source = s }
}

// WithMetrics records check outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Checker) { c.metrics = m }
}

// NewChecker validates cfg and returns a Checker for it.
func NewChecker(cfg Config, opts ...Option) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Checker{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.source == nil {
		c.source = DirSource(cfg.LexiconDir)
	}
	return c, nil
}

// Run checks every configured partition. Partitions are independent;
// each stops at its first fault. The returned summary always lists
// every partition in table order, and the error joins the faults of all
// failing partitions in that same order.
func (c *Checker) Run(ctx context.Context) (*Summary, error) {
	reports := make([]PartitionReport, len(c.cfg.Partitions))

	var g errgroup.Group
	g.SetLimit(max(1, c.cfg.Workers))
	for i, p := range c.cfg.Partitions {
		i, p := i, p
		g.Go(func() error {
			reports[i] = c.checkPartition(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	sum := &Summary{Partitions: reports}
	var errs []error
	for _, r := range reports {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return sum, errors.Join(errs...)
}

func (c *Checker) checkPartition(ctx context.Context, p Partition) PartitionReport {
	lex, err := c.source.Lexicon(ctx, p.File)
	if err != nil {
		c.metrics.fault(p.File, "load")
		return PartitionReport{File: p.File, Class: p.Class, Err: err}
	}
	r, err := c.CheckLexicon(lex, p.Class)
	r.File = p.File
	r.Err = err
	return r
}

// CheckLexicon checks the entries of lex against the rules of class,
// in file order, and stops at the first fault. Prefixed entries are
// skipped, as are entries that list every stem and carry no root.
func (c *Checker) CheckLexicon(lex *Lexicon, class VerbClass) (PartitionReport, error) {
	report := PartitionReport{File: lex.Name, Class: class}
	log := c.logger.With(zap.String("lexicon", lex.Name), zap.String("class", string(class)))

	fail := func(kind string, err error) (PartitionReport, error) {
		c.metrics.fault(lex.Name, kind)
		log.Error("lexicon check failed", zap.String("kind", kind), zap.Error(err))
		report.Err = err
		return report, err
	}

	for _, e := range lex.Entries {
		if e.HasPrefix {
			report.Prefixed++
			c.metrics.entry(lex.Name, "prefixed")
			log.Debug("skip prefixed entry", zap.String("headword", e.Headword), zap.String("prefix", e.Prefix))
			continue
		}
		if !e.HasRoot() {
			if e.Suppletive() {
				report.Suppletive++
				c.metrics.entry(lex.Name, "suppletive")
				log.Debug("skip suppletive entry", zap.String("headword", e.Headword))
				continue
			}
			return fail("missing_root", &MissingRootError{Lexicon: lex.Name, Headword: e.Headword})
		}

		derived, err := Derive(e.Root, class)
		c.metrics.derived(class, err)
		if err != nil {
			return fail("shape", &EntryError{Lexicon: lex.Name, Headword: e.Headword, Err: err})
		}
		report.Entries++
		c.metrics.entry(lex.Name, "derived")

		if err := compareStems(lex.Name, e, derived, &report); err != nil {
			return fail("mismatch", err)
		}
	}
	log.Info("lexicon checked",
		zap.Int("entries", report.Entries),
		zap.Int("skipped", report.Skipped()),
		zap.Int("compared", report.Compared))
	return report, nil
}

func compareStems(lexicon string, e *Entry, derived StemSet, report *PartitionReport) error {
	for _, n := range StemNames {
		recorded, ok := e.Stems[n]
		if !ok {
			continue
		}
		report.Compared++
		if recorded != derived[n] {
			return &MismatchError{
				Lexicon:  lexicon,
				Headword: e.Headword,
				Stem:     n,
				Derived:  derived[n],
				Recorded: recorded,
			}
		}
	}
	return nil
}
