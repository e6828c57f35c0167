package events

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Number of roster events delivered to Kafka.",
	}, []string{"topic", "event_type"})

	publishFailureCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Number of roster events that could not be delivered.",
	}, []string{"topic", "event_type"})

	publishDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "activity_directory",
		Subsystem: "events",
		Name:      "publish_duration_seconds",
		Help:      "Time spent delivering a roster event to Kafka.",
		Buckets:   prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(publishedCounter, publishFailureCounter, publishDuration)
}

func recordPublished(topic, eventType string, elapsed time.Duration) {
	publishedCounter.WithLabelValues(topic, eventType).Inc()
	publishDuration.Observe(elapsed.Seconds())
}

func recordPublishFailure(topic, eventType string) {
	publishFailureCounter.WithLabelValues(topic, eventType).Inc()
}
