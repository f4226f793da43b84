package processor

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/groupguard/groupguard/store"
)

// Commands implements the operator-facing command surface. Each method returns the reply
// text to send; the transport layer decides how to deliver it. Every settings mutation is
// persisted immediately.
type Commands struct {
	store *store.DataStore
}

func NewCommands(data *store.DataStore) *Commands {
	return &Commands{store: data}
}

func (c *Commands) Start() string {
	return "🛡️ Group moderation bot\n\n" +
		"Automatically removes spam, insults and repeat offenders.\n" +
		"Add me to a group with admin rights!"
}

func (c *Commands) List() string {
	commands := []string{
		"/start - About this bot",
		"/commands - List all commands",
		"/settings - Current settings",
		"/set_sensitivity <1-100> - Set strictness",
		"/add_ban_word <word> - Add a banned word",
		"/remove_ban_word <word> - Remove a banned word",
		"/ban_list - Show banned words",
		"/stats - Moderation statistics",
		"/user_info <@username|id> - User details",
	}
	return "📜 Available commands:\n\n" + strings.Join(commands, "\n")
}

func (c *Commands) Settings() string {
	settings := c.store.Settings()
	autoDelete := "disabled"
	if settings.AutoDelete {
		autoDelete = "enabled"
	}
	return fmt.Sprintf(
		"⚙️ Current settings:\n\n"+
			"• Sensitivity: %d%%\n"+
			"• Auto-delete: %s\n"+
			"• Warnings before ban: %d\n"+
			"• Banned words: %d",
		settings.Sensitivity, autoDelete, settings.WarnBeforeBan, len(settings.BanWords))
}

func (c *Commands) SetSensitivity(args string) string {
	args = strings.TrimSpace(args)
	if args == "" {
		return "Provide a level between 1 and 100"
	}
	level, err := strconv.Atoi(args)
	if err != nil {
		return "Please provide a number between 1 and 100"
	}
	if level < 1 || level > 100 {
		return "The level must be between 1 and 100"
	}
	c.store.SetSensitivity(level)
	c.save()
	return fmt.Sprintf("✅ Sensitivity set to %d%%", level)
}

func (c *Commands) AddBanWord(args string) string {
	word := strings.ToLower(strings.TrimSpace(args))
	if word == "" {
		return "Provide a word to add"
	}
	if !c.store.AddBanWord(word) {
		return fmt.Sprintf("❌ '%s' is already in the list", word)
	}
	c.save()
	return fmt.Sprintf("✅ '%s' added to the ban list", word)
}

func (c *Commands) RemoveBanWord(args string) string {
	word := strings.ToLower(strings.TrimSpace(args))
	if word == "" {
		return "Provide a word to remove"
	}
	if !c.store.RemoveBanWord(word) {
		return fmt.Sprintf("❌ '%s' is not in the list", word)
	}
	c.save()
	return fmt.Sprintf("✅ '%s' removed from the ban list", word)
}

func (c *Commands) BanList() string {
	words := c.store.BanWords()
	if len(words) == 0 {
		return "📭 The ban word list is empty"
	}
	lines := make([]string, len(words))
	for i, word := range words {
		lines[i] = "• " + word
	}
	return "📋 Banned words:\n\n" + strings.Join(lines, "\n")
}

func (c *Commands) Stats() string {
	stats := c.store.Stats()
	return fmt.Sprintf(
		"📊 Moderation statistics:\n\n"+
			"• Messages checked: %d\n"+
			"• Violations found: %d\n"+
			"• Messages deleted: %d\n"+
			"• Users banned: %d",
		stats.MessagesChecked, stats.ViolationsFound, stats.DeletedMessages, stats.BannedUsers)
}

func (c *Commands) UserInfo(args string) string {
	query := strings.TrimPrefix(strings.TrimSpace(args), "@")
	if query == "" {
		return "Provide a user ID or @username"
	}
	_, user, ok := c.store.FindUser(query)
	if !ok {
		return "User not found"
	}
	username := user.Username
	if username == "" {
		username = "none"
	}
	return fmt.Sprintf(
		"👤 User details:\n\n"+
			"• Username: @%s\n"+
			"• Name: %s %s\n"+
			"• Messages: %d\n"+
			"• Warnings: %d",
		username, user.FirstName, user.LastName, user.Messages, user.Warnings)
}

func (c *Commands) save() {
	if err := c.store.Save(); err != nil {
		log.Println("Failed to persist settings:", err)
	}
}
