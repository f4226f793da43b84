package filter

import "strings"

const BanWordReason = "banned word"

// CheckText - reports whether any ban word occurs in text. Matching is case-insensitive
// and purely substring based: no tokenization, so "cat" matches "concatenate".
func CheckText(text string, banWords []string) bool {
	lowered := strings.ToLower(text)
	for _, word := range banWords {
		if word == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// BanWordResult - the fixed-severity result used when CheckText matches. The severity is
// pre-assigned regardless of which word matched (or how many), and bypasses the scorer
// entirely.
func BanWordResult() *Result {
	return &Result{
		Spam:           90,
		Toxic:          40,
		Danger:         70,
		ViolationScore: 90,
		Violation:      true,
		Reason:         BanWordReason,
	}
}
