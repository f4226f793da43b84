package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/groupguard/groupguard/chat"
)

// Client - the Telegram implementation of chat.Client. The underlying library doesn't
// take contexts, so the ctx parameters exist only to satisfy the interface.
type Client struct {
	api *tgbotapi.BotAPI
}

func NewClient(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

func (c *Client) SendReply(ctx context.Context, chatId int64, replyTo int, text string) (*chat.Ref, error) {
	m := tgbotapi.NewMessage(chatId, text)
	m.ReplyToMessageID = replyTo
	sent, err := c.api.Send(m)
	if err != nil {
		return nil, err
	}
	return &chat.Ref{ChatID: chatId, MessageID: sent.MessageID}, nil
}

func (c *Client) SendText(ctx context.Context, chatId int64, text string) (*chat.Ref, error) {
	sent, err := c.api.Send(tgbotapi.NewMessage(chatId, text))
	if err != nil {
		return nil, err
	}
	return &chat.Ref{ChatID: chatId, MessageID: sent.MessageID}, nil
}

func (c *Client) EditText(ctx context.Context, ref *chat.Ref, text string) error {
	_, err := c.api.Send(tgbotapi.NewEditMessageText(ref.ChatID, ref.MessageID, text))
	return err
}

func (c *Client) DeleteMessage(ctx context.Context, chatId int64, messageId int) error {
	_, err := c.api.Request(tgbotapi.NewDeleteMessage(chatId, messageId))
	return err
}

func (c *Client) BanMember(ctx context.Context, chatId int64, userId int64) error {
	_, err := c.api.Request(tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatId,
			UserID: userId,
		},
	})
	return err
}
