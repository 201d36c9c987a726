package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handler
	RecommendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reco_recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	}, []string{"slot"})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reco_recommend_requests_total",
		Help: "Total number of recommend requests",
	}, []string{"slot"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
	)
}
