package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	data, err := Load(path)
	assert.NoError(t, err)
	assert.NotNil(t, data)

	assert.Equal(t, 70, data.Sensitivity())
	assert.True(t, data.AutoDelete())
	assert.Equal(t, 3, data.WarnBeforeBan())
	assert.NotEmpty(t, data.BanWords())
	assert.Equal(t, Stats{}, data.Stats())

	// The default file is written to disk immediately.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	data, err := Load(path)
	assert.NoError(t, err)

	data.SetSensitivity(42)
	data.SetWarnBeforeBan(5)
	data.SetAutoDelete(false)
	assert.True(t, data.AddBanWord("pyramid scheme"))
	data.TouchUser("12345", "spammer", "Sam", "Spam")
	data.AddWarning("12345")
	data.IncMessagesChecked()
	data.IncViolationsFound()
	data.IncDeletedMessages()
	data.IncBannedUsers()
	assert.NoError(t, data.Save())

	reloaded, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, data.Settings(), reloaded.Settings())
	assert.Equal(t, data.Stats(), reloaded.Stats())

	user, ok := reloaded.User("12345")
	assert.True(t, ok)
	assert.Equal(t, UserRecord{
		Username:  "spammer",
		FirstName: "Sam",
		LastName:  "Spam",
		Messages:  1,
		Warnings:  1,
	}, user)
}

func TestLoadRegeneratesOnMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	data, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 70, data.Sensitivity())
	assert.Equal(t, Stats{}, data.Stats())
}

func TestLoadRegeneratesOnMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"settings":{"sensitivity":99}}`), 0644))

	data, err := Load(path)
	assert.NoError(t, err)
	// The partial document is discarded wholesale, not merged.
	assert.Equal(t, 70, data.Sensitivity())
}

func TestBanWordsAreCaseFoldedAndDeduplicated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data, err := Load(path)
	assert.NoError(t, err)

	assert.True(t, data.AddBanWord("  SPAM  "))
	assert.Contains(t, data.BanWords(), "spam")
	assert.False(t, data.AddBanWord("spam"))

	assert.True(t, data.RemoveBanWord("SPAM"))
	assert.NotContains(t, data.BanWords(), "spam")
	assert.False(t, data.RemoveBanWord("spam"))
}

func TestTouchUserCapturesIdentityOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data, err := Load(path)
	assert.NoError(t, err)

	data.TouchUser("1", "original", "First", "Last")
	data.TouchUser("1", "renamed", "Changed", "Name")

	user, ok := data.User("1")
	assert.True(t, ok)
	assert.Equal(t, int64(2), user.Messages)
	// Identity is a creation-time snapshot.
	assert.Equal(t, "original", user.Username)
	assert.Equal(t, "First", user.FirstName)
}

func TestFindUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data, err := Load(path)
	assert.NoError(t, err)

	data.TouchUser("777", "SomeUser", "Some", "User")

	userId, user, ok := data.FindUser("777")
	assert.True(t, ok)
	assert.Equal(t, "777", userId)
	assert.Equal(t, "SomeUser", user.Username)

	_, user, ok = data.FindUser("someuser")
	assert.True(t, ok)
	assert.Equal(t, "SomeUser", user.Username)

	_, _, ok = data.FindUser("missing")
	assert.False(t, ok)
}

func TestWarningsAccumulate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data, err := Load(path)
	assert.NoError(t, err)

	data.TouchUser("1", "u", "", "")
	assert.Equal(t, 1, data.AddWarning("1"))
	assert.Equal(t, 2, data.AddWarning("1"))
	assert.Equal(t, 3, data.AddWarning("1"))
}
