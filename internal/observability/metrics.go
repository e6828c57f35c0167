// Package observability exposes Prometheus collectors for roster activity.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	unregistrationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregistrationCounter, rosterSizeGauge)
}

// RecordSignup updates the roster collectors after a signup commits.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordUnregistration updates the roster collectors after an unregistration commits.
func RecordUnregistration(activity string, rosterSize int) {
	unregistrationCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}
