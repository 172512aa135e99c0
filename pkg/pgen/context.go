package pgen

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/rogueforge/pkg/randstream"
	"github.com/dshills/rogueforge/pkg/trace"
)

// ArtifactInfo is the generic summary a pass's output artifact can expose
// for snapshotting and metrics, without pgen needing to know the concrete
// artifact type.
type ArtifactInfo struct {
	RoomCount       int
	ConnectionCount int
	SpawnCount      int
	FloorRatio      float64
	Terrain         []byte // independent copy, or nil if not applicable
	Custom          map[string]float64
}

// Introspectable is implemented by pipeline artifacts that want snapshot and
// metrics support. Artifacts that don't implement it simply skip those
// features.
type Introspectable interface {
	Info() ArtifactInfo
}

// Context is threaded through every pass: isolated RNG streams, immutable
// configuration, the trace collector, and the seed bundle.
type Context struct {
	Streams *randstream.Streams
	Seed    randstream.SeedBundle
	Config  any
	Trace   trace.Collector
	Logger  *zap.Logger

	snapshotsEnabled bool
	metricsEnabled   bool
	snapshots        []Snapshot
	metrics          []PassMetrics
	passIndex        int

	goCtx context.Context // nil for synchronous execution
}

// NewContext builds a pipeline context. logger may be nil (a no-op logger
// is substituted). If collector is nil, tracing is disabled via
// trace.NoopCollector.
func NewContext(seed randstream.SeedBundle, cfg any, collector trace.Collector, logger *zap.Logger, snapshots, metrics bool) *Context {
	if collector == nil {
		collector = trace.NoopCollector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		Streams:          randstream.NewStreams(seed),
		Seed:             seed,
		Config:           cfg,
		Trace:            collector,
		Logger:           logger,
		snapshotsEnabled: snapshots,
		metricsEnabled:   metrics,
	}
}

// cancelled reports whether the context's external goroutine context (set
// only for asynchronous execution) has been cancelled.
func (c *Context) cancelled() error {
	if c.goCtx == nil {
		return nil
	}
	select {
	case <-c.goCtx.Done():
		return c.goCtx.Err()
	default:
		return nil
	}
}

func (c *Context) recordSnapshot(passID string, info ArtifactInfo) {
	if !c.snapshotsEnabled {
		return
	}
	c.snapshots = append(c.snapshots, Snapshot{
		PassID:          passID,
		PassIndex:       c.passIndex,
		TimestampMs:     time.Now().UnixMilli(),
		RoomCount:       info.RoomCount,
		ConnectionCount: info.ConnectionCount,
		Terrain:         info.Terrain,
	})
}

func (c *Context) recordMetrics(passID string, dur time.Duration, info ArtifactInfo) {
	if !c.metricsEnabled {
		return
	}
	c.metrics = append(c.metrics, PassMetrics{
		PassID:          passID,
		DurationMs:      dur.Milliseconds(),
		SpawnCount:      info.SpawnCount,
		FloorRatio:      info.FloorRatio,
		RoomCount:       info.RoomCount,
		ConnectionCount: info.ConnectionCount,
		Custom:          info.Custom,
	})
}
