package test

import (
	"context"

	"github.com/groupguard/groupguard/ai"
)

// FixedClassifier - a processor.Classifier returning canned scores. Calls counts how many
// times Analyze ran, so tests can assert the rule filter short-circuited.
type FixedClassifier struct {
	Scores *ai.Scores
	Calls  int
}

func (f *FixedClassifier) Analyze(ctx context.Context, text string) *ai.Scores {
	f.Calls++
	if f.Scores == nil {
		return &ai.Scores{}
	}
	return f.Scores
}
