// Package metrics exposes Prometheus instruments for the redemption protocol.
package metrics

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"perks/config"
	"perks/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "perks"

// Metrics implements service.RedemptionMetrics on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	redemptions  *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	scansIgnored *prometheus.CounterVec
	events       *prometheus.CounterVec
}

// New registers the redemption instruments, labelled with the service name.
func New(serviceName string) *Metrics {
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		serviceName = namespace
	}
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "redemption_attempts_total",
			Help:        "Redemption attempts by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "redemption_duration_seconds",
			Help:        "Time from scan to redemption result.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15},
		}, []string{"outcome"}),
		scansIgnored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "scans_ignored_total",
			Help:        "Scans dropped by a scan session.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "redemption_events_published_total",
			Help:        "Redemption events handed to the event bus by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.redemptions,
		m.duration,
		m.scansIgnored,
		m.events,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveRedemption(outcome string, elapsed time.Duration) {
	m.redemptions.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *Metrics) IncScanIgnored(reason string) {
	m.scansIgnored.WithLabelValues(reason).Inc()
}

// IncEventPublished counts a publish attempt; result is "ok" or "error".
func (m *Metrics) IncEventPublished(result string) {
	m.events.WithLabelValues(result).Inc()
}

// RegisterDBStats exports connection pool stats for db under the given name.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Result hands the same instance to Fx under both types.
type Result struct {
	fx.Out

	Metrics    *Metrics
	Redemption service.RedemptionMetrics
}

// Provide builds the metrics for the configured service.
func Provide(cfg *config.Config) Result {
	m := New(cfg.Env.ServiceName)

	return Result{Metrics: m, Redemption: m}
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(Provide),
)
