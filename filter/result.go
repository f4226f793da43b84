package filter

// Result - the outcome of checking one message. Ephemeral, never persisted.
type Result struct {
	// Raw sub-scores, each in [0,100].
	Spam   float64
	Toxic  float64
	Danger float64

	// ViolationScore is always computed locally by Evaluate (or pre-assigned for ban
	// words). A classifier-supplied score is never trusted.
	ViolationScore float64
	Violation      bool
	Reason         string
}
