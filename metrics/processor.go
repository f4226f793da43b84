package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ViolationSource string

const ViolationSourceKeyword ViolationSource = "keyword"
const ViolationSourceClassifier ViolationSource = "classifier"

var MessageChecks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_message_checks",
	Help: "The total number of checked messages",
}, []string{"ok"})

var ViolationsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_violations_detected",
	Help: "The total number of detected violations",
}, []string{"source"})

func RecordMessageCheck(ok bool) {
	MessageChecks.With(prometheus.Labels{
		"ok": strconv.FormatBool(ok),
	}).Inc()
}

func RecordViolation(source ViolationSource) {
	ViolationsDetected.With(prometheus.Labels{
		"source": string(source),
	}).Inc()
}
