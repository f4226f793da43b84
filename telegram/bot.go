package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/groupguard/groupguard/chat"
	"github.com/groupguard/groupguard/processor"
	"github.com/groupguard/groupguard/queue"
)

// Bot consumes Telegram updates and dispatches them: commands go straight to the command
// surface, everything else is submitted to the processing pool.
type Bot struct {
	client   *Client
	pool     *queue.Pool
	commands *processor.Commands
}

func NewBot(client *Client, pool *queue.Pool, commands *processor.Commands) *Bot {
	return &Bot{
		client:   client,
		pool:     pool,
		commands: commands,
	}
}

// Run - blocks consuming updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.client.api.GetUpdatesChan(u)
	log.Println("Listening for updates as", b.client.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.client.api.StopReceivingUpdates()
			return
		case update := <-updates:
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	m := update.Message
	if m == nil || m.Text == "" || m.From == nil {
		return
	}
	if m.IsCommand() {
		b.handleCommand(m)
		return
	}

	msg := &chat.Message{
		ChatID:    m.Chat.ID,
		MessageID: m.MessageID,
		Text:      m.Text,
		Sender: chat.Sender{
			ID:        m.From.ID,
			Username:  m.From.UserName,
			FirstName: m.From.FirstName,
			LastName:  m.From.LastName,
			IsBot:     m.From.IsBot,
		},
	}

	// No cancellation propagation: a message whose check is slow still completes and
	// persists its effect.
	ctx := context.Background()
	ch := make(chan *queue.PoolResult, 1)
	if err := b.pool.Submit(ctx, msg, ch); err != nil {
		log.Println("Failed to submit message for checking:", err)
		return
	}
	go func() {
		res := <-ch
		if res.Err == nil {
			return
		}
		// Enforcement-critical failure: log the detail, tell the chat something generic.
		log.Printf("Error processing message %d in chat %d: %s", msg.MessageID, msg.ChatID, res.Err)
		if _, err := b.client.SendReply(ctx, msg.ChatID, msg.MessageID, "⚠️ An error occurred while processing the message"); err != nil {
			log.Println("Failed to send failure notice:", err)
		}
	}()
}

func (b *Bot) handleCommand(m *tgbotapi.Message) {
	var reply string
	switch m.Command() {
	case "start":
		reply = b.commands.Start()
	case "commands":
		reply = b.commands.List()
	case "settings":
		reply = b.commands.Settings()
	case "set_sensitivity":
		reply = b.commands.SetSensitivity(m.CommandArguments())
	case "add_ban_word":
		reply = b.commands.AddBanWord(m.CommandArguments())
	case "remove_ban_word":
		reply = b.commands.RemoveBanWord(m.CommandArguments())
	case "ban_list":
		reply = b.commands.BanList()
	case "stats":
		reply = b.commands.Stats()
	case "user_info":
		reply = b.commands.UserInfo(m.CommandArguments())
	default:
		return // not our command
	}

	if _, err := b.client.SendReply(context.Background(), m.Chat.ID, m.MessageID, reply); err != nil {
		log.Println("Failed to reply to command:", err)
	}
}
