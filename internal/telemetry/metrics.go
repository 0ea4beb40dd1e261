/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APIRequestsTotal counts HTTP requests by method, route and status.
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "openhours_api_requests_total",
		Help: "Total HTTP requests served",
	}, []string{"method", "endpoint", "status"})

	// APIRequestDuration observes request latency.
	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "openhours_api_request_duration_seconds",
		Help:    "HTTP request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint", "status"})

	// APIActiveConnections gauges in-flight HTTP requests.
	APIActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "openhours_api_active_connections",
		Help: "In-flight HTTP requests",
	})

	// EvaluationsTotal counts open-hours evaluations by scope and outcome
	// (open, closed, error).
	EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "openhours_evaluations_total",
		Help: "Open-hours evaluations by outcome",
	}, []string{"scope", "outcome"})

	// StoreFetchDuration observes schedule-record fetch latency.
	StoreFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "openhours_store_fetch_duration_seconds",
		Help:    "Schedule record fetch duration",
		Buckets: prometheus.DefBuckets,
	})

	// DuplicateActiveRecords counts data-integrity warnings where more than
	// one active record of a category matched the same evaluation.
	DuplicateActiveRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "openhours_duplicate_active_records_total",
		Help: "Evaluations that saw duplicate active records in one category",
	}, []string{"kind"})
)

// Handler exposes the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
