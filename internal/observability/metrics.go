// Package observability holds the service's prometheus collectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuoteGenerations counts quote generation attempts by outcome
	// (ok, error, parse_error).
	QuoteGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orcaobra",
		Name:      "quote_generations_total",
		Help:      "Quote generation attempts by outcome.",
	}, []string{"status"})

	// ReportGenerations counts report generation attempts by outcome.
	ReportGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orcaobra",
		Name:      "report_generations_total",
		Help:      "Technical report generation attempts by outcome.",
	}, []string{"status"})

	// ModelCallDuration observes wall time of generative model calls.
	ModelCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orcaobra",
		Name:      "model_call_duration_seconds",
		Help:      "Duration of generative model calls.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"operation"})
)
