package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuditsCalculated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retention_audits_calculated_total",
			Help: "Total number of audits calculated",
		},
		[]string{"industry", "maturity"},
	)

	AuditsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retention_audits_rejected_total",
			Help: "Total number of audit requests rejected before calculation",
		},
		[]string{"reason"},
	)

	AuditOverallScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "retention_audit_overall_score",
			Help:    "Distribution of overall audit scores",
			Buckets: prometheus.LinearBuckets(10, 10, 9),
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "retention_audit_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route", "status"},
	)
)
