package observability

import (
	"net/http"
	"time"
	"whisperwall/domain"
	"whisperwall/domain/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ event.Metrics = (*Collector)(nil)

// Collector publishes the telemetry handlers to Prometheus.
// It owns its registry so several instances can live in one test binary.
type Collector struct {
	registry *prometheus.Registry

	workerRestarts    *prometheus.CounterVec
	drops             *prometheus.CounterVec
	jobOutcomes       *prometheus.CounterVec
	censoredWords     prometheus.Counter
	swept             *prometheus.CounterVec
	channelLength     *prometheus.GaugeVec
	channelCapacity   *prometheus.GaugeVec
	rssBytes          prometheus.Gauge
	heapBytes         prometheus.Gauge
	sessions          prometheus.Gauge
	generationLatency *prometheus.HistogramVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		workerRestarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "whisperwall_worker_restarts_total",
			Help: "Total number of workers restarted after a panic",
		}, []string{"worker"}),
		drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "whisperwall_realtime_drops_total",
			Help: "Total number of real-time events dropped without notifying the sender",
		}, []string{"reason", "event"}),
		jobOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "whisperwall_job_outcomes_total",
			Help: "Total number of reply job state changes by action",
		}, []string{"action"}),
		censoredWords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "whisperwall_censored_words_total",
			Help: "Total number of words masked by the moderator",
		}),
		swept: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "whisperwall_swept_total",
			Help: "Total number of stale entries reclaimed by kind",
		}, []string{"kind"}),
		channelLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "whisperwall_channel_length",
			Help: "Current number of queued items per internal channel",
		}, []string{"channel"}),
		channelCapacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "whisperwall_channel_capacity",
			Help: "Capacity of each internal channel",
		}, []string{"channel"}),
		rssBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "whisperwall_process_rss_bytes",
			Help: "Resident set size sampled by the cleanup sweeper",
		}),
		heapBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "whisperwall_heap_alloc_bytes",
			Help: "Go heap allocation sampled by the cleanup sweeper",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "whisperwall_sessions",
			Help: "Live real-time sessions at the last sample",
		}),
		generationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "whisperwall_generation_latency_seconds",
			Help:    "Latency of reply generation calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"result"}),
	}
	c.registry.MustRegister(
		c.workerRestarts, c.drops, c.jobOutcomes, c.censoredWords, c.swept,
		c.channelLength, c.channelCapacity, c.rssBytes, c.heapBytes, c.sessions,
		c.generationLatency,
		collectors.NewGoCollector(),
	)
	return c
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) IncWorkerRestart(worker string) {
	c.workerRestarts.WithLabelValues(worker).Inc()
}

func (c *Collector) IncDrop(reason event.DropReason, eventName string) {
	c.drops.WithLabelValues(string(reason), eventName).Inc()
}

func (c *Collector) IncJobOutcome(action domain.AuditAction) {
	c.jobOutcomes.WithLabelValues(string(action)).Inc()
}

func (c *Collector) IncCensored(words int) {
	c.censoredWords.Add(float64(words))
}

func (c *Collector) SetChannelUsage(name string, length, capacity int) {
	c.channelLength.WithLabelValues(name).Set(float64(length))
	c.channelCapacity.WithLabelValues(name).Set(float64(capacity))
}

func (c *Collector) SetMemory(rss, heapAlloc uint64, sessions int) {
	c.rssBytes.Set(float64(rss))
	c.heapBytes.Set(float64(heapAlloc))
	c.sessions.Set(float64(sessions))
}

func (c *Collector) ObserveGeneration(latency time.Duration, failed bool) {
	result := "ok"
	if failed {
		result = "failed"
	}
	c.generationLatency.WithLabelValues(result).Observe(latency.Seconds())
}

func (c *Collector) AddSwept(kind string, n int) {
	if n <= 0 {
		return
	}
	c.swept.WithLabelValues(kind).Add(float64(n))
}
