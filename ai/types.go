package ai

// ErrorReason - the reason attached to the fail-open result when classification fails.
const ErrorReason = "analysis error"

// Scores - raw sub-scores from the classifier, each nominally in [0,100]. The violation
// verdict is not part of this type: it is derived locally by the scorer.
type Scores struct {
	Spam   float64
	Toxic  float64
	Danger float64
	Reason string
}

// rawClassification - the JSON shape requested from the model. Extra fields (including
// any violation/violation_score the model volunteers) are ignored; missing fields decode
// to zero.
type rawClassification struct {
	Spam   float64 `json:"spam"`
	Toxic  float64 `json:"toxic"`
	Danger float64 `json:"danger"`
	Reason string  `json:"reason"`
}
