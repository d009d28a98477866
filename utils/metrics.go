package utils

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Domain Metrics
	AnswersSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "answers_submitted_total",
			Help: "Total number of submitted answers",
		},
		[]string{"result"}, // correct / incorrect
	)

	StatsBackfillsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_backfills_total",
			Help: "Total number of weekly activity backfills written",
		},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions_total",
			Help: "Total number of active sessions",
		},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"component", "type"},
	)

	// System Metrics
	CPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Current CPU usage percentage",
		},
	)
)

// TrackDBOperation times a database operation; callers defer ObserveDuration.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackAuthAttempt records authentication attempts
func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}

// TrackError increments the error counter for a component
func TrackError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// TrackAnswer records a graded answer submission
func TrackAnswer(correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	AnswersSubmittedTotal.WithLabelValues(result).Inc()
}

// UpdateActiveSessions sets the current number of active sessions
func UpdateActiveSessions(count float64) {
	ActiveSessions.Set(count)
}

// StartSystemMetrics samples CPU usage in the background.
func StartSystemMetrics(interval time.Duration) {
	go func() {
		for {
			percentage, err := cpu.Percent(time.Second, false)
			if err != nil {
				log.Printf("Error getting CPU usage: %v", err)
			} else if len(percentage) > 0 {
				CPUUsage.Set(percentage[0])
			}
			time.Sleep(interval)
		}
	}()
}
