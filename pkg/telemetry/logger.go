package telemetry

import "go.uber.org/zap"

// NewLogger returns a development zap logger, or a no-op logger if verbose
// is false, routed through structured logging instead of conditional
// fmt.Printf calls (pgen.Context's "logger may be nil" convention treats a
// nil *zap.Logger as "use zap.NewNop()"; this constructor makes that choice
// explicit for callers assembling a Context).
func NewLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}
