package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "settleview", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "settleview", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	ResourceOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "settleview", Name: "resource_ops_total", Help: "Resource store operations by collection and verb."},
		[]string{"collection", "op"},
	)
	ActiveStreams = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "settleview", Name: "active_streams", Help: "Currently open event-stream connections by kind."},
		[]string{"kind"},
	)
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "settleview", Name: "events_published_total", Help: "Events pushed to stream subscribers by kind."},
		[]string{"kind"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(ResourceOps)
	reg.MustRegister(ActiveStreams)
	reg.MustRegister(EventsPublished)
}
