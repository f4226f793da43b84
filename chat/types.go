package chat

import "context"

// Sender - the author of an inbound message.
type Sender struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	IsBot     bool
}

// Message - an inbound text message from the platform.
type Message struct {
	ChatID    int64
	MessageID int
	Text      string
	Sender    Sender
}

// Ref - a message the bot itself has sent, kept so it can be edited later.
type Ref struct {
	ChatID    int64
	MessageID int
}

// Client - the outbound surface of the chat platform. Implementations are expected to be
// safe for concurrent use.
type Client interface {
	// SendReply - sends text to the chat as a reply referencing another message.
	SendReply(ctx context.Context, chatId int64, replyTo int, text string) (*Ref, error)

	// SendText - sends text to the chat without referencing another message.
	SendText(ctx context.Context, chatId int64, text string) (*Ref, error)

	// EditText - replaces the text of a message previously sent by the bot.
	EditText(ctx context.Context, ref *Ref, text string) error

	// DeleteMessage - removes the given message from the chat.
	DeleteMessage(ctx context.Context, chatId int64, messageId int) error

	// BanMember - removes the user from the chat and prevents them from rejoining.
	BanMember(ctx context.Context, chatId int64, userId int64) error
}
