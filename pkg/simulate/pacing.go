package simulate

import "fmt"

// Spike is a single relative-intensity jump above the analyzer's threshold.
type Spike struct {
	VisitIndex int
	RoomID     int
	Delta      float64
}

// Issue is a pacing problem flagged by the analyzer, with a recommendation.
type Issue struct {
	RoomID         int
	VisitIndex     int
	Message        string
	Recommendation string
}

// PacingReport is the pacing analyzer's output: a per-visit engagement
// curve, the spikes detected on it, and the issues derived from them.
type PacingReport struct {
	Engagement []float64
	Spikes     []Spike
	Issues     []Issue
}

// Analyze consumes a playthrough trace and produces an engagement curve
// (per-visit intensity, normalized damage taken relative to starting
// health), flags relative intensity deltas above spikeThreshold as
// difficulty spikes, and emits one issue record per spike. It also flags
// a starved opening: if the first quarter of the playthrough carries zero
// engagement, the pacing is front-loaded with nothing at stake.
func Analyze(trace Trace, cfg Config, spikeThreshold float64) PacingReport {
	engagement := make([]float64, len(trace.Visits))
	for i, v := range trace.Visits {
		if cfg.StartHealth > 0 {
			engagement[i] = v.DamageTaken / cfg.StartHealth
		}
	}

	report := PacingReport{Engagement: engagement}
	for i := 1; i < len(engagement); i++ {
		delta := engagement[i] - engagement[i-1]
		if delta <= spikeThreshold {
			continue
		}
		room := trace.Visits[i].RoomID
		report.Spikes = append(report.Spikes, Spike{VisitIndex: i, RoomID: room, Delta: delta})
		report.Issues = append(report.Issues, Issue{
			RoomID:         room,
			VisitIndex:     i,
			Message:        fmt.Sprintf("difficulty spike of %.2f at step %d (room %d)", delta, trace.Visits[i].Step, room),
			Recommendation: "reduce enemy weight in this room or add a lighter buffer room before it",
		})
	}

	if dry := dryOpening(engagement); dry {
		report.Issues = append(report.Issues, Issue{
			RoomID:         trace.Visits[0].RoomID,
			VisitIndex:     0,
			Message:        "no engagement in the first quarter of the playthrough",
			Recommendation: "move an early encounter closer to the entrance",
		})
	}

	return report
}

// dryOpening reports whether the first quarter of the curve carries zero
// engagement at all.
func dryOpening(engagement []float64) bool {
	if len(engagement) < 4 {
		return false
	}
	quarter := len(engagement) / 4
	for i := 0; i < quarter; i++ {
		if engagement[i] > 0 {
			return false
		}
	}
	return true
}
