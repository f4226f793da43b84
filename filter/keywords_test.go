package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckTextIsCaseInsensitive(t *testing.T) {
	assert.True(t, CheckText("Buy CHEAP stuff", []string{"cheap"}))
	assert.True(t, CheckText("buy cheap stuff", []string{"CHEAP"}))
}

func TestCheckTextMatchesSubstrings(t *testing.T) {
	// No word-boundary awareness: "cat" matches "concatenate".
	assert.True(t, CheckText("we concatenate strings here", []string{"cat"}))
	assert.False(t, CheckText("nothing to see", []string{"cat"}))
	assert.False(t, CheckText("anything", nil))
	assert.False(t, CheckText("anything", []string{""}))
}

func TestBanWordResult(t *testing.T) {
	result := BanWordResult()
	assert.Equal(t, 90.0, result.Spam)
	assert.Equal(t, 40.0, result.Toxic)
	assert.Equal(t, 70.0, result.Danger)
	assert.Equal(t, 90.0, result.ViolationScore)
	assert.True(t, result.Violation)
	assert.Equal(t, BanWordReason, result.Reason)
}
