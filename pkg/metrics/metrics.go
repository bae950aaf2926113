package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records order-creation outcomes for the checkout pipeline.
type CheckoutMetrics struct {
	duration *prometheus.HistogramVec
	created  prometheus.Counter
	failed   *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Duration of order creation in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders persisted successfully.",
	})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_create_failures_total",
		Help: "Order creation attempts that did not persist.",
	}, []string{"reason"})
	reg.MustRegister(duration, created, failed)
	return &CheckoutMetrics{
		duration: duration,
		created:  created,
		failed:   failed,
	}
}

// ObserveDuration records how long an order creation attempt took.
func (c *CheckoutMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncCreated increments the successful order counter.
func (c *CheckoutMetrics) IncCreated() {
	if c == nil || c.created == nil {
		return
	}
	c.created.Inc()
}

// IncFailed increments the failure counter for the given reason.
func (c *CheckoutMetrics) IncFailed(reason string) {
	if c == nil || c.failed == nil {
		return
	}
	c.failed.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
