// Package telemetry is the module's ambient logging and metrics setup: a
// zap logger constructor matching pgen.Context.Logger's nil-means-quiet
// convention, and a Prometheus registry exposing per-pass and per-tick
// gauges/counters/histograms "suitable for dashboards",
// using a package-level-registry idiom common to Prometheus-instrumented
// Go services.
package telemetry
