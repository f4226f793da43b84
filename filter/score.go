package filter

import "math"

// Score - blends the three sub-scores (each nominally 0-100) into one composite 0-100
// score: the highest sub-score plus half the sum of the other two, capped at 100.
// Out-of-range classifier output is clamped rather than rejected.
func Score(spam float64, toxic float64, danger float64) float64 {
	spamN := clamp01(spam / 100)
	toxicN := clamp01(toxic / 100)
	dangerN := clamp01(danger / 100)

	base := math.Max(spamN, math.Max(toxicN, dangerN))
	extra := 0.5 * (spamN + toxicN + dangerN - base)
	return math.Min(base+extra, 1.0) * 100
}

// Threshold - converts a sensitivity (1-100) into the minimum composite score that counts
// as a violation. Higher sensitivity means a lower threshold. The 1.01 offset keeps the
// threshold above zero at sensitivity 100, so a zero composite can never trip it.
func Threshold(sensitivity int) float64 {
	return (1.01 - float64(sensitivity)/100) * 100
}

// Evaluate - runs the scorer over raw sub-scores and produces a complete Result.
func Evaluate(spam float64, toxic float64, danger float64, sensitivity int, reason string) *Result {
	score := Score(spam, toxic, danger)
	return &Result{
		Spam:           spam,
		Toxic:          toxic,
		Danger:         danger,
		ViolationScore: score,
		Violation:      score >= Threshold(sensitivity),
		Reason:         reason,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
