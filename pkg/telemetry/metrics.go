package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector this module registers, mirroring the
// teacher-adjacent r3e-network-service_layer pkg/metrics package-level
// registry idiom (a dedicated registry rather than the global default, so
// tests and multiple CLI invocations in one process don't collide).
var Registry = prometheus.NewRegistry()

var (
	passDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rogueforge",
			Subsystem: "pipeline",
			Name:      "pass_duration_seconds",
			Help:      "Duration of a single generation pass.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		},
		[]string{"pipeline", "pass", "status"},
	)

	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rogueforge",
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of pipeline runs, grouped by pipeline name and outcome.",
		},
		[]string{"pipeline", "status"},
	)

	runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rogueforge",
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Duration of a full pipeline run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		},
		[]string{"pipeline"},
	)

	ecsTickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rogueforge",
			Subsystem: "ecs",
			Name:      "tick_duration_seconds",
			Help:      "Duration of one World.Tick call.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 18),
		},
	)

	ecsEntityCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rogueforge",
			Subsystem: "ecs",
			Name:      "alive_entities",
			Help:      "Current number of alive entities in the world.",
		},
	)

	ecsEventQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rogueforge",
			Subsystem: "ecs",
			Name:      "event_queue_depth",
			Help:      "Number of events awaiting dispatch at the end of the last tick.",
		},
	)
)

func init() {
	Registry.MustRegister(
		passDuration,
		runsTotal,
		runDuration,
		ecsTickDuration,
		ecsEntityCount,
		ecsEventQueueDepth,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler exposes the registry over HTTP in the Prometheus exposition
// format, for a CLI or service that wants to serve /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordPass records one pass's duration and outcome.
func RecordPass(pipeline, pass string, dur time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	passDuration.WithLabelValues(pipeline, pass, status).Observe(dur.Seconds())
}

// RecordRun records one full pipeline run's duration and outcome.
func RecordRun(pipeline string, dur time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	runsTotal.WithLabelValues(pipeline, status).Inc()
	runDuration.WithLabelValues(pipeline).Observe(dur.Seconds())
}

// RecordTick records one ECS tick's duration and the world's resulting
// entity count and pending event-queue depth.
func RecordTick(dur time.Duration, aliveEntities, eventQueueDepth int) {
	ecsTickDuration.Observe(dur.Seconds())
	ecsEntityCount.Set(float64(aliveEntities))
	ecsEventQueueDepth.Set(float64(eventQueueDepth))
}
