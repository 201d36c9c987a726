package recommend

import "github.com/prometheus/client_golang/prometheus"

var (
	servedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_results_served_total",
			Help: "Recommendation rows served, by slot and source.",
		},
		[]string{"slot", "source"},
	)

	feedbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_feedback_events_total",
			Help: "Feedback events logged, by slot and event type.",
		},
		[]string{"slot", "event_type"},
	)

	cacheHitTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_cache_hits_total",
			Help: "Result cache lookups, by slot and outcome.",
		},
		[]string{"slot", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(servedTotal, feedbackTotal, cacheHitTotal)
}
