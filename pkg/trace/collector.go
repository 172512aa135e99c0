package trace

import (
	"time"

	"go.uber.org/zap"
)

// Collector records trace events emitted during pipeline execution.
// Implementations must be safe to use from exactly one pipeline run (not
// shared across concurrent runs).
type Collector interface {
	// PassStart records the beginning of a pass.
	PassStart(passID string)
	// PassEnd records the completion of a pass.
	PassEnd(passID string)
	// Decide records a structured decision made within the current pass.
	Decide(passID string, d Decision)
	// Warn records a non-fatal warning.
	Warn(passID, message string)
	// Artifact records a short artifact summary after a pass completes.
	Artifact(passID, summary string)
	// Events returns every event recorded so far, in emission order.
	Events() []Event
}

// NoopCollector discards everything. Its methods perform no allocation so
// tracing can be left permanently wired without cost when disabled.
type NoopCollector struct{}

var _ Collector = NoopCollector{}

func (NoopCollector) PassStart(string)            {}
func (NoopCollector) PassEnd(string)              {}
func (NoopCollector) Decide(string, Decision)     {}
func (NoopCollector) Warn(string, string)         {}
func (NoopCollector) Artifact(string, string)     {}
func (NoopCollector) Events() []Event             { return nil }

// RecordingCollector accumulates events in memory, stamping each with a
// shared RunID and a millisecond offset from its own construction time.
type RecordingCollector struct {
	runID   string
	start   time.Time
	events  []Event
	logger  *zap.Logger
}

var _ Collector = (*RecordingCollector)(nil)

// NewRecordingCollector creates a collector stamping events with runID.
// logger may be nil to disable mirrored structured logging.
func NewRecordingCollector(runID string, logger *zap.Logger) *RecordingCollector {
	return &RecordingCollector{runID: runID, start: time.Now(), logger: logger}
}

func (c *RecordingCollector) elapsedMs() int64 {
	return time.Since(c.start).Milliseconds()
}

func (c *RecordingCollector) emit(e Event) {
	e.RunID = c.runID
	e.TimestampMs = c.elapsedMs()
	c.events = append(c.events, e)
}

func (c *RecordingCollector) PassStart(passID string) {
	c.emit(Event{PassID: passID, Type: EventStart})
	if c.logger != nil {
		c.logger.Debug("pass start", zap.String("pass", passID), zap.String("run", c.runID))
	}
}

func (c *RecordingCollector) PassEnd(passID string) {
	c.emit(Event{PassID: passID, Type: EventEnd})
	if c.logger != nil {
		c.logger.Debug("pass end", zap.String("pass", passID), zap.String("run", c.runID))
	}
}

func (c *RecordingCollector) Decide(passID string, d Decision) {
	dCopy := d
	c.emit(Event{PassID: passID, Type: EventDecision, Decision: &dCopy})
	if c.logger != nil {
		c.logger.Debug("decision",
			zap.String("pass", passID),
			zap.String("system", d.System),
			zap.String("question", d.Question),
			zap.String("chosen", d.Chosen),
			zap.Float64("confidence", d.Confidence),
		)
	}
}

func (c *RecordingCollector) Warn(passID, message string) {
	c.emit(Event{PassID: passID, Type: EventWarning, Warning: message})
	if c.logger != nil {
		c.logger.Warn(message, zap.String("pass", passID), zap.String("run", c.runID))
	}
}

func (c *RecordingCollector) Artifact(passID, summary string) {
	c.emit(Event{PassID: passID, Type: EventArtifact, Artifact: summary})
}

// Events returns all recorded events in emission order.
func (c *RecordingCollector) Events() []Event {
	return c.events
}
