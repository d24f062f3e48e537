// Package batch compares every method folder under a generation root
// against a fixed baseline method.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pablasso/pairwise/internal/survey"
)

// Builder builds a single comparison and returns the written path and
// document. *survey.Builder satisfies it.
type Builder interface {
	BuildDocument(methodA, methodB, generationDir, outputDir string) (string, *survey.Document, error)
}

// Options configure a batch run.
type Options struct {
	GenerationDir string
	OutputDir     string
	Baseline      string
	// Exclude lists extra folder names to skip.
	Exclude []string
}

// Result is the outcome of one comparison.
type Result struct {
	Method   string
	Baseline string
	Path     string
	Pages    int
	Err      error
}

// OK reports whether the comparison was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary totals a finished batch.
type Summary struct {
	Succeeded int
	Failed    int
	Duration  time.Duration
}

// Runner drives the batch.
type Runner struct {
	builder Builder
	events  Events
	logger  *zap.Logger
}

// New creates a Runner that builds with b.
func New(b Builder) *Runner {
	return &Runner{
		builder: b,
		events:  noopEvents{},
		logger:  zap.NewNop(),
	}
}

// WithEvents sets the callbacks notified as pairs complete.
func (r *Runner) WithEvents(e Events) *Runner {
	if e != nil {
		r.events = e
	}
	return r
}

// WithLogger sets the logger.
func (r *Runner) WithLogger(l *zap.Logger) *Runner {
	if l != nil {
		r.logger = l
	}
	return r
}

// Methods lists the folders under the generation root that are compared
// against the baseline: every directory except the baseline itself, names
// containing an underscore and anything in Exclude. Sorted by name.
func Methods(opts Options) ([]string, error) {
	entries, err := os.ReadDir(opts.GenerationDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read generation directory: %w", err)
	}

	var methods []string
	for _, entry := range entries {
		name := entry.Name()
		if !isDir(opts.GenerationDir, entry) {
			continue
		}
		if name == opts.Baseline || strings.Contains(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}
		if slices.Contains(opts.Exclude, name) {
			continue
		}
		methods = append(methods, name)
	}
	return methods, nil
}

func isDir(root string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}

// Run builds one comparison per method. A failing pair is recorded in its
// Result and the batch moves on. Run only returns an error when the method
// list cannot be read or ctx is cancelled; results gathered so far are
// returned alongside.
func (r *Runner) Run(ctx context.Context, opts Options) ([]Result, error) {
	start := time.Now()

	methods, err := Methods(opts)
	if err != nil {
		return nil, err
	}
	r.events.OnBatchStart(methods, opts.Baseline)

	results := make([]Result, 0, len(methods))
	var summary Summary
	for i, method := range methods {
		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(start)
			r.events.OnBatchComplete(summary)
			return results, err
		}

		r.events.OnPairStart(i+1, len(methods), method)
		res := r.buildOne(method, opts)
		results = append(results, res)

		if res.OK() {
			summary.Succeeded++
			r.events.OnPairComplete(res)
		} else {
			summary.Failed++
			r.logger.Warn("comparison failed",
				zap.String("method", method),
				zap.String("baseline", opts.Baseline),
				zap.Error(res.Err))
			r.events.OnPairFailed(res)
		}
	}

	summary.Duration = time.Since(start)
	r.events.OnBatchComplete(summary)
	return results, nil
}

func (r *Runner) buildOne(method string, opts Options) Result {
	res := Result{Method: method, Baseline: opts.Baseline}

	path, doc, err := r.builder.BuildDocument(method, opts.Baseline, opts.GenerationDir, opts.OutputDir)
	if err != nil {
		res.Err = err
		return res
	}
	res.Path = path
	res.Pages = len(doc.Pages)
	return res
}

// Summarize totals a result list.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.OK() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
