// Package metrics holds the Prometheus collectors for the matching service:
// request throughput and latency, ranking cost and cache effectiveness.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts served requests by route template, method and
	// status code.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parish_match_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration records handler latency in seconds.
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parish_match_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"route", "method"})

	// RankingDuration records the time spent scoring and ordering candidates,
	// labeled by view: "jobs", "recommended" or "users".
	RankingDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parish_match_ranking_duration_seconds",
		Help:    "Time spent ranking candidates",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"view"})

	// CandidatesScored counts every candidate passed through the scorer.
	CandidatesScored = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parish_match_candidates_scored_total",
		Help: "Total number of candidates scored",
	}, []string{"view"})

	// CacheRequests counts recommendation cache lookups, labeled by result:
	// "hit", "miss" or "error".
	CacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parish_match_cache_requests_total",
		Help: "Recommendation cache lookups",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		RankingDuration,
		CandidatesScored,
		CacheRequests,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
