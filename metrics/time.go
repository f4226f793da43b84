package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ClassifierTime = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "groupguard_classifier_time_seconds",
	Help: "The time spent waiting for the classifier",
})

var ClassifierErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_classifier_errors",
	Help: "The total number of classifier failures handled fail-open",
}, []string{"kind"})

var QueueWaitTime = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "groupguard_queue_wait_time_seconds",
	Help: "The time between submitting a message and finishing its check",
})

func StartClassifierTimer() *prometheus.Timer {
	return prometheus.NewTimer(ClassifierTime)
}

func RecordClassifierError(kind string) {
	ClassifierErrors.With(prometheus.Labels{
		"kind": kind,
	}).Inc()
}

func StartQueueTimer() *prometheus.Timer {
	return prometheus.NewTimer(QueueWaitTime)
}
