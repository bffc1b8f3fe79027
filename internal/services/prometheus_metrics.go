package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded  *prometheus.CounterVec
	categoriesAutoCreated *prometheus.CounterVec
	closureRuns           *prometheus.CounterVec
	closureDuration       prometheus.Histogram
	closureBatchSize      prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"kind"},
		),
		categoriesAutoCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categories_auto_created_total",
				Help: "Total number of categories created on first use",
			},
			[]string{"kind"},
		),
		closureRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "closure_runs_total",
				Help: "Total number of period closure runs",
			},
			[]string{"status"},
		),
		closureDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "closure_duration_milliseconds",
				Help:    "Period closure duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		closureBatchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "closure_batch_size",
				Help:    "Number of transactions marked closed per closure run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordTransactionCreated(kind string) {
	m.transactionsRecorded.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) RecordCategoryAutoCreated(kind string) {
	m.categoriesAutoCreated.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) RecordClosureRun(status string) {
	m.closureRuns.WithLabelValues(status).Inc()
}

func (m *PrometheusMetrics) ObserveClosureDuration(duration time.Duration) {
	m.closureDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) ObserveClosureBatchSize(size int) {
	m.closureBatchSize.Observe(float64(size))
}
