package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	AllocationPreviews  prometheus.Counter
	PayoutsGenerated    prometheus.Counter
	PayoutStatusChanges *prometheus.CounterVec
	RuleGuardRejections *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AllocationPreviews: factory.NewCounter(prometheus.CounterOpts{
			Name: "awqaf_allocation_previews_total",
			Help: "Total number of profit allocation evaluations",
		}),
		PayoutsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "awqaf_payouts_generated_total",
			Help: "Total number of payouts created from allocations",
		}),
		PayoutStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "awqaf_payout_status_changes_total",
			Help: "Payout status transitions by target status",
		}, []string{"status"}),
		RuleGuardRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "awqaf_rule_guard_rejections_total",
			Help: "Distribution rule writes rejected by validation, by reason",
		}, []string{"reason"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "awqaf_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementAllocationPreviews() {
	m.AllocationPreviews.Inc()
}

func (m *Metrics) AddPayoutsGenerated(n int) {
	m.PayoutsGenerated.Add(float64(n))
}

func (m *Metrics) IncrementPayoutStatusChange(status string) {
	m.PayoutStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementRuleRejection(reason string) {
	m.RuleGuardRejections.WithLabelValues(reason).Inc()
}

// Middleware records request latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
