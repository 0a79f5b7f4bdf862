package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	forecastRuns      *prometheus.CounterVec
	forecastDuration  prometheus.Histogram
	modelTrainings    *prometheus.CounterVec
	trainingDuration  prometheus.Histogram
	cacheEvents       *prometheus.CounterVec
	goalComputations  *prometheus.CounterVec
	ledgerEntriesSeen prometheus.Histogram
	activeForecasts   prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		forecastRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_runs_total",
				Help: "Total number of forecast engine runs",
			},
			[]string{"status"},
		),
		forecastDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_run_duration_milliseconds",
				Help:    "Forecast run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		modelTrainings: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_model_trainings_total",
				Help: "Total number of regression model trainings by metric",
			},
			[]string{"metric", "status"},
		),
		trainingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_model_training_duration_milliseconds",
				Help:    "Regression model training duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		cacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_cache_events_total",
				Help: "Cache hits and misses by cache name",
			},
			[]string{"cache", "result"},
		),
		goalComputations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goal_projections_total",
				Help: "Total number of goal projection computations",
			},
			[]string{"status"},
		),
		ledgerEntriesSeen: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_ledger_window_entries",
				Help:    "Number of ledger entries aggregated per forecast run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		activeForecasts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forecast_runs_in_flight",
				Help: "Number of forecast runs currently executing",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "forecast.run":
		if status != "" {
			m.forecastRuns.WithLabelValues(status).Inc()
		}
	case "forecast.model.trained":
		m.modelTrainings.WithLabelValues(tags["metric"], "success").Inc()
	case "forecast.model.fallback":
		m.modelTrainings.WithLabelValues(tags["metric"], "fallback").Inc()
	case "forecast.cache":
		if cache := tags["cache"]; cache != "" && tags["result"] != "" {
			m.cacheEvents.WithLabelValues(cache, tags["result"]).Inc()
		}
	case "goal.projection":
		if status != "" {
			m.goalComputations.WithLabelValues(status).Inc()
		}
	case "forecast.run.started":
		m.activeForecasts.Inc()
	case "forecast.run.finished":
		m.activeForecasts.Dec()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "forecast.run":
		m.forecastDuration.Observe(float64(duration.Milliseconds()))
	case "forecast.model.training":
		m.trainingDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "forecast.ledger.entries":
		m.ledgerEntriesSeen.Observe(value)
	}
}
