package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the BFA.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	httpDuration     *prometheus.HistogramVec
	donationsTotal   *prometheus.CounterVec
	donatedAmount    *prometheus.CounterVec
	listenerFailures *prometheus.CounterVec
	rejectedTotal    *prometheus.CounterVec
	authOperations   *prometheus.CounterVec
	gatewayErrors    prometheus.Counter
	breakerState     *prometheus.GaugeVec
	ledgerRecords    *prometheus.GaugeVec
	activeViews      prometheus.Gauge
	activeSessions   prometheus.Gauge
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "donor_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by method, route pattern and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		donationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donor_donations_total",
				Help: "Total simulated donations completed.",
			},
			[]string{"ngo"},
		),
		donatedAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donor_donated_amount_total",
				Help: "Sum of simulated donation amounts in the smallest currency unit.",
			},
			[]string{"ngo"},
		),
		listenerFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donor_listener_failures_total",
				Help: "Donation event listeners that returned an error or panicked.",
			},
			[]string{"listener"},
		),
		rejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donor_submissions_rejected_total",
				Help: "Donation submissions rejected before processing.",
			},
			[]string{"reason"},
		),
		authOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donor_auth_operations_total",
				Help: "Simulated auth operations by kind.",
			},
			[]string{"operation"},
		),
		gatewayErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "donor_gateway_errors_total",
				Help: "Payment gateway charges that failed after retries.",
			},
		),
		breakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "donor_circuit_breaker_state",
				Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open.",
			},
			[]string{"name"},
		),
		ledgerRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "donor_ledger_records",
				Help: "Visible ledger rows of the most recently updated view per organization.",
			},
			[]string{"ngo"},
		),
		activeViews: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "donor_active_views",
				Help: "Mounted detail views.",
			},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "donor_active_sessions",
				Help: "Signed-in sessions.",
			},
		),
	}
}

// RecordHTTPRequest records the duration of an HTTP request. route is the
// matched pattern, not the raw path.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// RecordDonation counts one completed donation.
func (m *Metrics) RecordDonation(ngoID string, amount int64) {
	m.donationsTotal.WithLabelValues(ngoID).Inc()
	m.donatedAmount.WithLabelValues(ngoID).Add(float64(amount))
}

// IncrListenerFailure counts a failed donation listener.
func (m *Metrics) IncrListenerFailure(listener string) {
	m.listenerFailures.WithLabelValues(listener).Inc()
}

// IncrRejected counts a rejected submission.
func (m *Metrics) IncrRejected(reason string) {
	m.rejectedTotal.WithLabelValues(reason).Inc()
}

// IncrAuth counts an auth operation.
func (m *Metrics) IncrAuth(operation string) {
	m.authOperations.WithLabelValues(operation).Inc()
}

// IncrGatewayError counts a failed gateway charge.
func (m *Metrics) IncrGatewayError() {
	m.gatewayErrors.Inc()
}

// SetBreakerState records the state of a named circuit breaker.
func (m *Metrics) SetBreakerState(name string, state int) {
	m.breakerState.WithLabelValues(name).Set(float64(state))
}

// SetLedgerRecords sets the visible ledger size for an organization.
func (m *Metrics) SetLedgerRecords(ngoID string, n int) {
	m.ledgerRecords.WithLabelValues(ngoID).Set(float64(n))
}

// SetActiveViews sets the mounted view gauge.
func (m *Metrics) SetActiveViews(n int) {
	m.activeViews.Set(float64(n))
}

// SetActiveSessions sets the session gauge.
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

// DonationCount returns the cumulative donation counter for an organization.
func (m *Metrics) DonationCount(ngoID string) float64 {
	return getCounterValue(m.donationsTotal, ngoID)
}

// ListenerFailureCount returns the cumulative failure counter for a listener.
func (m *Metrics) ListenerFailureCount(listener string) float64 {
	return getCounterValue(m.listenerFailures, listener)
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
