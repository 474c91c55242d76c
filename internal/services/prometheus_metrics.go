package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricOperationSuccess = "ledger.operation.success"
	MetricOperationFailed  = "ledger.operation.failed"
	MetricOperationTime    = "ledger.operation"
	MetricAccountOpened    = "account.opened"
	MetricFeeApplied       = "fee.applied"
	MetricInterestApplied  = "interest.applied"
	MetricAuthEvent        = "authentication_event"
	MetricTransferAmount   = "transfer_amount"
	MetricActiveSessions   = "active_sessions"
)

// PrometheusMetrics records ledger metrics on its own registry so that several
// instances can coexist in one process
type PrometheusMetrics struct {
	registry                  *prometheus.Registry
	operationsTotal           *prometheus.CounterVec
	operationDuration         prometheus.Histogram
	accountsOpenedTotal       *prometheus.CounterVec
	feesAppliedTotal          prometheus.Counter
	interestAppliedTotal      prometheus.Counter
	transferAmount            prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
	activeSessions            prometheus.Gauge
}

func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		accountsOpenedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_opened_total",
				Help: "Total number of accounts opened by type",
			},
			[]string{"account_type"},
		),
		feesAppliedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "maintenance_fees_applied_total",
				Help: "Total number of maintenance fees charged",
			},
		),
		interestAppliedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "interest_applied_total",
				Help: "Total number of interest credits",
			},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_sessions",
				Help: "Current number of live user sessions",
			},
		),
	}
}

// Registry exposes the private registry for gathering
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case MetricOperationSuccess:
		m.operationsTotal.WithLabelValues(operation, "success").Inc()
	case MetricOperationFailed:
		m.operationsTotal.WithLabelValues(operation, "failed_"+tags["reason"]).Inc()
	case MetricAccountOpened:
		if accountType := tags["account_type"]; accountType != "" {
			m.accountsOpenedTotal.WithLabelValues(accountType).Inc()
		}
	case MetricFeeApplied:
		m.feesAppliedTotal.Inc()
	case MetricInterestApplied:
		m.interestAppliedTotal.Inc()
	case MetricAuthEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricOperationTime:
		m.operationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricTransferAmount:
		m.transferAmount.Observe(value)
	case MetricActiveSessions:
		m.activeSessions.Set(value)
	}
}
