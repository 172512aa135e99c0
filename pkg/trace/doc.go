// Package trace implements the pipeline's decision/metrics tracing facility.
// A Collector records pass start/end, structured decisions, warnings, and
// artifact summaries. The zero-cost NoopCollector is used when tracing is
// disabled; it allocates nothing on its hot paths.
package trace
