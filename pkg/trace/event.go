package trace

// EventType enumerates the closed set of trace event kinds.
type EventType string

const (
	EventStart    EventType = "start"
	EventEnd      EventType = "end"
	EventDecision EventType = "decision"
	EventArtifact EventType = "artifact"
	EventWarning  EventType = "warning"
)

// Decision records a single structured choice a pass made, for post-hoc
// inspection of generation behavior.
type Decision struct {
	System      string         // closed-set system tag, e.g. "bsp.partition"
	Question    string         // what was being decided
	Options     []string       // candidate choices considered
	Chosen      string         // the option actually picked
	Reason      string         // human-readable justification
	Confidence  float64        // 0..1, subjective confidence in the choice
	RNGConsumed uint64         // number of RNG draws spent making this decision
	Context     map[string]any // optional free-form context
}

// Event is one entry in a trace. TimestampMs is relative to the pipeline
// run's start, not wall-clock, so traces stay comparable across runs.
type Event struct {
	RunID       string
	TimestampMs int64
	PassID      string
	Type        EventType
	Decision    *Decision
	Warning     string
	Artifact    string // short artifact summary, e.g. "rooms=12 floor=0.42"
}
