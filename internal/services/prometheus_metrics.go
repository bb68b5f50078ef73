package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricAccountOperation = "account_operation"
	MetricAccountsTotal    = "accounts_total"
	MetricAmountOwedTotal  = "amount_owed_total"
	MetricMigrationSize    = "migration_size"
)

type PrometheusMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	accountsTotal     prometheus.Gauge
	amountOwedTotal   prometheus.Gauge
	migrationSize     prometheus.Histogram
}

// NewPrometheusMetrics registers the store metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_operations_total",
				Help: "Total number of record store operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "account_operation_duration_milliseconds",
				Help:    "Record store operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		accountsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "accounts_total",
				Help: "Number of accounts held after the last listing or mutation",
			},
		),
		amountOwedTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "accounts_amount_owed_total",
				Help: "Sum of amount owed across accounts after the last listing",
			},
		),
		migrationSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "account_migration_size",
				Help:    "Number of accounts per migration request",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAccountOperation:
		status := tags["status"]
		if status == "" {
			status = "success"
		}
		m.operationsTotal.WithLabelValues(tags["operation"], status).Inc()
	}
}

// RecordProcessingTime expects names of the form "account_operation.<operation>"
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if operation, ok := strings.CutPrefix(name, MetricAccountOperation+"."); ok && operation != "" {
		m.operationDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAccountsTotal:
		m.accountsTotal.Set(value)
	case MetricAmountOwedTotal:
		m.amountOwedTotal.Set(value)
	case MetricMigrationSize:
		m.migrationSize.Observe(value)
	}
}

// noopMetrics drops every observation
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
