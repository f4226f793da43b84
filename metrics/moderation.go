package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ModerationAction string

const ModerationActionWarn ModerationAction = "warn"
const ModerationActionDelete ModerationAction = "delete"
const ModerationActionBan ModerationAction = "ban"

type ModerationStatus string

const ModerationStatusOk ModerationStatus = "ok"
const ModerationStatusError ModerationStatus = "error"

var ModerationActions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_moderation_actions",
	Help: "The total number of moderation actions",
}, []string{"action", "status"})

func RecordModerationAction(action ModerationAction, status ModerationStatus) {
	ModerationActions.With(prometheus.Labels{
		"action": string(action),
		"status": string(status),
	}).Inc()
}
