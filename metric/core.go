package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch path label values for delivered messages.
const (
	PathChecked   = "checked"
	PathUnchecked = "unchecked"
)

// Metrics contains all wiring-layer metrics (not application-specific).
// All Record methods are nil-safe so instrumentation can be left unset.
type Metrics struct {
	// Queue metrics
	MessagesEnqueued prometheus.Counter
	MessagesPurged   prometheus.Counter
	QueueDepth       prometheus.Gauge

	// Dispatch metrics
	MessagesDelivered *prometheus.CounterVec
	MessagesDropped   prometheus.Counter
	DispatchDuration  prometheus.Histogram

	// Connection graph metrics
	LinksCreated prometheus.Counter
	LinksActive  prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all wiring-layer metrics
func NewMetrics() *Metrics {
	return &Metrics{
		MessagesEnqueued: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "signalkit",
				Subsystem: "queue",
				Name:      "enqueued_total",
				Help:      "Total number of queue entries created by emissions",
			},
		),

		MessagesPurged: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "signalkit",
				Subsystem: "queue",
				Name:      "purged_total",
				Help:      "Total number of queue entries purged by link destruction",
			},
		),

		QueueDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "signalkit",
				Subsystem: "queue",
				Name:      "depth",
				Help:      "Current number of pending queue entries",
			},
		),

		MessagesDelivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "signalkit",
				Subsystem: "dispatch",
				Name:      "delivered_total",
				Help:      "Total number of messages handed to slot handlers",
			},
			[]string{"path"},
		),

		MessagesDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "signalkit",
				Subsystem: "dispatch",
				Name:      "dropped_total",
				Help:      "Total number of messages dropped by the checked path on type mismatch",
			},
		),

		DispatchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "signalkit",
				Subsystem: "dispatch",
				Name:      "duration_seconds",
				Help:      "Slot handler execution duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		LinksCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "signalkit",
				Subsystem: "links",
				Name:      "created_total",
				Help:      "Total number of links created by connect",
			},
		),

		LinksActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "signalkit",
				Subsystem: "links",
				Name:      "active",
				Help:      "Current number of live links",
			},
		),
	}
}

// RecordEnqueued increments the enqueued counter
func (c *Metrics) RecordEnqueued() {
	if c == nil {
		return
	}
	c.MessagesEnqueued.Inc()
}

// RecordPurged adds purged queue entries to the purge counter
func (c *Metrics) RecordPurged(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.MessagesPurged.Add(float64(n))
}

// RecordQueueDepth updates the pending entry gauge
func (c *Metrics) RecordQueueDepth(depth int) {
	if c == nil {
		return
	}
	c.QueueDepth.Set(float64(depth))
}

// RecordDelivered increments the delivered counter for a dispatch path
// and records the handler execution time.
func (c *Metrics) RecordDelivered(path string, duration time.Duration) {
	if c == nil {
		return
	}
	c.MessagesDelivered.WithLabelValues(path).Inc()
	c.DispatchDuration.Observe(duration.Seconds())
}

// RecordDropped increments the checked-path mismatch counter
func (c *Metrics) RecordDropped() {
	if c == nil {
		return
	}
	c.MessagesDropped.Inc()
}

// RecordLinkOpened increments the created counter and the active gauge
func (c *Metrics) RecordLinkOpened() {
	if c == nil {
		return
	}
	c.LinksCreated.Inc()
	c.LinksActive.Inc()
}

// RecordLinkClosed decrements the active gauge
func (c *Metrics) RecordLinkClosed() {
	if c == nil {
		return
	}
	c.LinksActive.Dec()
}
