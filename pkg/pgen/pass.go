package pgen

import (
	"fmt"
	"time"
)

// Pass is a pure transform from artifact I to artifact O. Run must never
// mutate in; it returns a fresh value. ID identifies the pass for tracing,
// snapshots, and error reporting.
type Pass[I, O any] struct {
	ID  string
	Run func(in I, ctx *Context) (O, error)
}

// PassError wraps an error raised by a specific pass, preserving which pass
// failed so pipeline.Result can surface it.
type PassError struct {
	PassID string
	Err    error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("pass %q failed: %v", e.PassID, e.Err)
}

func (e *PassError) Unwrap() error { return e.Err }

// runOne executes a single pass with tracing, snapshot, and metrics
// bookkeeping, and the asynchronous-cancellation check.
func runOne[I, O any](p Pass[I, O], in I, ctx *Context) (O, error) {
	var zero O

	if err := ctx.cancelled(); err != nil {
		return zero, err
	}

	ctx.passIndex++
	ctx.Trace.PassStart(p.ID)
	start := time.Now()

	out, err := p.Run(in, ctx)

	dur := time.Since(start)
	ctx.Trace.PassEnd(p.ID)

	if err != nil {
		return zero, &PassError{PassID: p.ID, Err: err}
	}

	if intro, ok := any(out).(Introspectable); ok {
		info := intro.Info()
		ctx.recordSnapshot(p.ID, info)
		ctx.recordMetrics(p.ID, dur, info)
		ctx.Trace.Artifact(p.ID, fmt.Sprintf("rooms=%d connections=%d spawns=%d floor=%.3f",
			info.RoomCount, info.ConnectionCount, info.SpawnCount, info.FloorRatio))
	} else {
		ctx.recordMetrics(p.ID, dur, ArtifactInfo{})
	}

	return out, nil
}
