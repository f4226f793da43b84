package processor_test

import (
	"testing"

	"github.com/groupguard/groupguard/processor"
	"github.com/groupguard/groupguard/test"
	"github.com/stretchr/testify/assert"
)

func TestCommandsStartAndList(t *testing.T) {
	commands := processor.NewCommands(test.MustMakeStore(t))

	assert.Contains(t, commands.Start(), "Group moderation bot")

	list := commands.List()
	for _, name := range []string{"/start", "/commands", "/settings", "/set_sensitivity", "/add_ban_word", "/remove_ban_word", "/ban_list", "/stats", "/user_info"} {
		assert.Contains(t, list, name)
	}
}

func TestCommandsSettings(t *testing.T) {
	data := test.MustMakeStore(t)
	commands := processor.NewCommands(data)

	reply := commands.Settings()
	assert.Contains(t, reply, "Sensitivity: 70%")
	assert.Contains(t, reply, "Auto-delete: enabled")
	assert.Contains(t, reply, "Warnings before ban: 3")

	data.SetAutoDelete(false)
	assert.Contains(t, commands.Settings(), "Auto-delete: disabled")
}

func TestCommandsSetSensitivity(t *testing.T) {
	data := test.MustMakeStore(t)
	commands := processor.NewCommands(data)

	assert.Equal(t, "Provide a level between 1 and 100", commands.SetSensitivity("  "))
	assert.Equal(t, "Please provide a number between 1 and 100", commands.SetSensitivity("high"))
	assert.Equal(t, "The level must be between 1 and 100", commands.SetSensitivity("0"))
	assert.Equal(t, "The level must be between 1 and 100", commands.SetSensitivity("101"))

	assert.Equal(t, "✅ Sensitivity set to 85%", commands.SetSensitivity("85"))
	assert.Equal(t, 85, data.Sensitivity())
}

func TestCommandsBanWords(t *testing.T) {
	data := test.MustMakeStore(t)
	commands := processor.NewCommands(data)

	assert.Equal(t, "Provide a word to add", commands.AddBanWord(""))
	assert.Equal(t, "✅ 'crypto' added to the ban list", commands.AddBanWord(" Crypto "))
	assert.Equal(t, "❌ 'crypto' is already in the list", commands.AddBanWord("CRYPTO"))
	assert.Contains(t, data.BanWords(), "crypto")

	assert.Contains(t, commands.BanList(), "• crypto")

	assert.Equal(t, "Provide a word to remove", commands.RemoveBanWord(""))
	assert.Equal(t, "✅ 'crypto' removed from the ban list", commands.RemoveBanWord("crypto"))
	assert.Equal(t, "❌ 'crypto' is not in the list", commands.RemoveBanWord("crypto"))
}

func TestCommandsBanListEmpty(t *testing.T) {
	data := test.MustMakeStore(t)
	commands := processor.NewCommands(data)

	for _, word := range data.BanWords() {
		data.RemoveBanWord(word)
	}
	assert.Equal(t, "📭 The ban word list is empty", commands.BanList())
}

func TestCommandsStats(t *testing.T) {
	data := test.MustMakeStore(t)
	commands := processor.NewCommands(data)

	data.IncMessagesChecked()
	data.IncMessagesChecked()
	data.IncViolationsFound()

	reply := commands.Stats()
	assert.Contains(t, reply, "Messages checked: 2")
	assert.Contains(t, reply, "Violations found: 1")
	assert.Contains(t, reply, "Messages deleted: 0")
	assert.Contains(t, reply, "Users banned: 0")
}

func TestCommandsUserInfo(t *testing.T) {
	data := test.MustMakeStore(t)
	commands := processor.NewCommands(data)

	assert.Equal(t, "Provide a user ID or @username", commands.UserInfo(""))
	assert.Equal(t, "User not found", commands.UserInfo("@nobody"))

	data.TouchUser("101", "someone", "Some", "One")
	data.AddWarning("101")

	reply := commands.UserInfo("@Someone")
	assert.Contains(t, reply, "Username: @someone")
	assert.Contains(t, reply, "Name: Some One")
	assert.Contains(t, reply, "Messages: 1")
	assert.Contains(t, reply, "Warnings: 1")

	assert.Contains(t, commands.UserInfo("101"), "Username: @someone")
}

func TestCommandsUserInfoWithoutUsername(t *testing.T) {
	data := test.MustMakeStore(t)
	commands := processor.NewCommands(data)

	data.TouchUser("202", "", "Quiet", "Person")
	assert.Contains(t, commands.UserInfo("202"), "Username: @none")
}
