package pgen

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/rogueforge/pkg/trace"
)

// TraceEvent re-exports trace.Event so pgen callers don't need a separate
// import just to read a Result's trace.
type TraceEvent = trace.Event

func convertEvents(events []trace.Event) []TraceEvent {
	return events
}

// Builder is a typed linear composition of passes: Builder[I, O] produces O
// from I. NewPipeline starts the chain at the identity transform; Pipe and
// When extend it one pass at a time. Each extension changes the static
// output type, which is why Pipe/When are free functions rather than
// methods (Go does not allow a method to introduce new type parameters).
type Builder[I, O any] struct {
	name string
	run  func(in I, ctx *Context) (O, error)
}

// NewPipeline starts a pipeline over artifact type I.
func NewPipeline[I any](name string) *Builder[I, I] {
	return &Builder[I, I]{
		name: name,
		run:  func(in I, ctx *Context) (I, error) { return in, nil },
	}
}

// Pipe appends an unconditional pass, changing the pipeline's output type
// from O to NO.
func Pipe[I, O, NO any](b *Builder[I, O], p Pass[O, NO]) *Builder[I, NO] {
	prev := b.run
	return &Builder[I, NO]{
		name: b.name,
		run: func(in I, ctx *Context) (NO, error) {
			mid, err := prev(in, ctx)
			if err != nil {
				var zero NO
				return zero, err
			}
			return runOne(p, mid, ctx)
		},
	}
}

// When appends a conditionally-run pass. Because Go has no tagged unions,
// the branch is constrained to an endomorphism (O -> O): when predicate(mid)
// is false the artifact passes through unchanged, identical to the input
// of p.
func When[I, O any](b *Builder[I, O], predicate func(O) bool, p Pass[O, O]) *Builder[I, O] {
	prev := b.run
	return &Builder[I, O]{
		name: b.name,
		run: func(in I, ctx *Context) (O, error) {
			mid, err := prev(in, ctx)
			if err != nil {
				var zero O
				return zero, err
			}
			if !predicate(mid) {
				ctx.Trace.Decide(p.ID, trace.Decision{
					System: "when", Question: "run pass?",
					Options: []string{"skip", "run"}, Chosen: "skip",
					Reason: "predicate was false",
				})
				return mid, nil
			}
			ctx.Trace.Decide(p.ID, trace.Decision{
				System: "when", Question: "run pass?",
				Options: []string{"skip", "run"}, Chosen: "run",
				Reason: "predicate was true",
			})
			return runOne(p, mid, ctx)
		},
	}
}

// Result is the outcome of executing a pipeline: either a final artifact or
// an error, always carrying duration, trace events, optional snapshots, and
// per-pass metrics.
type Result[O any] struct {
	RunID     string
	Artifact  O
	Err       error
	Duration  time.Duration
	Trace     []TraceEvent
	Snapshots []Snapshot
	Metrics   []PassMetrics
}

// Execute runs the pipeline synchronously to completion; a pass runs to
// completion before the next begins, and cancellation is not honored mid
// or between passes.
func Execute[I, O any](b *Builder[I, O], in I, ctx *Context) *Result[O] {
	runID := uuid.NewString()
	start := time.Now()

	out, err := b.run(in, ctx)

	return &Result[O]{
		RunID:     runID,
		Artifact:  out,
		Err:       err,
		Duration:  time.Since(start),
		Trace:     convertEvents(ctx.Trace.Events()),
		Snapshots: ctx.snapshots,
		Metrics:   ctx.metrics,
	}
}

// ExecuteAsync runs the pipeline honoring goCtx cancellation, checked
// between passes (never mid-pass). Multiple independent runs may execute
// concurrently provided they use distinct Context instances.
func ExecuteAsync[I, O any](goCtx context.Context, b *Builder[I, O], in I, ctx *Context) *Result[O] {
	ctx.goCtx = goCtx
	return Execute(b, in, ctx)
}

// ExecuteMany runs len(ins) independent invocations of b concurrently, one
// goroutine per (input, Context) pair, and returns their results in input
// order. Each Context must be distinct: the RNG streams, trace collector,
// and snapshot/metrics buffers a Context carries are not safe to share
// across concurrent runs.
//
// If goCtx is cancelled, or any run's pass chain returns an error, the
// group cancels the shared context and the first such error is returned.
// Every run's Result is still populated: runs still in flight see the
// cancellation at their next pass boundary and report it in Err. This
// is the concurrent-runs counterpart to ExecuteAsync, for fanning out
// several independent generation attempts (e.g. batch previews, or
// benchmarking across seeds) rather than cancelling a single run.
func ExecuteMany[I, O any](goCtx context.Context, b *Builder[I, O], ins []I, ctxs []*Context) ([]*Result[O], error) {
	if len(ins) != len(ctxs) {
		panic("pgen: ExecuteMany requires one Context per input")
	}

	results := make([]*Result[O], len(ins))
	g, groupCtx := errgroup.WithContext(goCtx)
	for i := range ins {
		i := i
		g.Go(func() error {
			results[i] = ExecuteAsync(groupCtx, b, ins[i], ctxs[i])
			return results[i].Err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
