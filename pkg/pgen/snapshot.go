package pgen

// Snapshot captures the grid and counts immediately after a pass ran.
// Snapshots are memory-intensive and opt-in. Terrain is an
// independent copy; a Snapshot is immutable once captured.
type Snapshot struct {
	PassID          string
	PassIndex       int
	TimestampMs     int64
	RoomCount       int
	ConnectionCount int
	Terrain         []byte // may be nil if the artifact has no terrain yet
}

// PassMetrics captures cheap per-pass statistics suitable for dashboards.
type PassMetrics struct {
	PassID          string
	DurationMs      int64
	SpawnCount      int
	FloorRatio      float64
	RoomCount       int
	ConnectionCount int
	Custom          map[string]float64
}
