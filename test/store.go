package test

import (
	"path/filepath"
	"testing"

	"github.com/groupguard/groupguard/store"
	"github.com/stretchr/testify/assert"
)

// MustMakeStore - a DataStore backed by a fresh temp file, with default settings.
func MustMakeStore(t *testing.T) *store.DataStore {
	data, err := store.Load(filepath.Join(t.TempDir(), "data.json"))
	assert.NoError(t, err)
	assert.NotNil(t, data)
	return data
}
