package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// result: correct/incorrect, mode: translation/verb_drill/noun_drill
	Answers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_answers_total",
			Help: "Total number of evaluated quiz answers",
		},
		[]string{"result", "mode"},
	)

	// change: granted/revoked
	RewardChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_reward_changes_total",
			Help: "Total number of bronze reward grants and revocations",
		},
		[]string{"change"},
	)

	// op: meanings/classify
	LookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_failures_total",
			Help: "Dictionary lookups that failed and were degraded",
		},
		[]string{"op"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time spent handling HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func ResultLabel(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}
