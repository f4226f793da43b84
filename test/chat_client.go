package test

import (
	"context"
	"errors"
	"testing"

	"github.com/groupguard/groupguard/chat"
	"github.com/stretchr/testify/assert"
)

var SimulatedError = errors.New("simulated error")

// SentMessage - one outbound message captured by the memory client.
type SentMessage struct {
	Ref     chat.Ref
	ReplyTo int // zero when not a reply
	Text    string
}

// DeletedMessage - one delete call captured by the memory client.
type DeletedMessage struct {
	ChatID    int64
	MessageID int
}

// MemoryChatClient - an in-memory chat.Client for tests. Failure flags make the
// corresponding operation return SimulatedError.
type MemoryChatClient struct {
	t *testing.T

	Sent    []*SentMessage
	Edits   map[int]string // sent message ID -> replacement text
	Deleted []DeletedMessage
	Banned  []int64

	FailSend   bool
	FailDelete bool
	FailBan    bool

	nextMessageId int
}

func NewMemoryChatClient(t *testing.T) *MemoryChatClient {
	return &MemoryChatClient{
		t:             t,
		Sent:          make([]*SentMessage, 0),
		Edits:         make(map[int]string),
		Deleted:       make([]DeletedMessage, 0),
		Banned:        make([]int64, 0),
		nextMessageId: 1000,
	}
}

func (m *MemoryChatClient) SendReply(ctx context.Context, chatId int64, replyTo int, text string) (*chat.Ref, error) {
	assert.NotNil(m.t, ctx, "context is required")

	if m.FailSend {
		return nil, SimulatedError
	}
	m.nextMessageId++
	sent := &SentMessage{
		Ref:     chat.Ref{ChatID: chatId, MessageID: m.nextMessageId},
		ReplyTo: replyTo,
		Text:    text,
	}
	m.Sent = append(m.Sent, sent)
	ref := sent.Ref
	return &ref, nil
}

func (m *MemoryChatClient) SendText(ctx context.Context, chatId int64, text string) (*chat.Ref, error) {
	return m.SendReply(ctx, chatId, 0, text)
}

func (m *MemoryChatClient) EditText(ctx context.Context, ref *chat.Ref, text string) error {
	assert.NotNil(m.t, ctx, "context is required")

	m.Edits[ref.MessageID] = text
	return nil
}

func (m *MemoryChatClient) DeleteMessage(ctx context.Context, chatId int64, messageId int) error {
	assert.NotNil(m.t, ctx, "context is required")

	if m.FailDelete {
		return SimulatedError
	}
	m.Deleted = append(m.Deleted, DeletedMessage{ChatID: chatId, MessageID: messageId})
	return nil
}

func (m *MemoryChatClient) BanMember(ctx context.Context, chatId int64, userId int64) error {
	assert.NotNil(m.t, ctx, "context is required")

	if m.FailBan {
		return SimulatedError
	}
	m.Banned = append(m.Banned, userId)
	return nil
}

// LastSent - the most recent outbound message, or nil.
func (m *MemoryChatClient) LastSent() *SentMessage {
	if len(m.Sent) == 0 {
		return nil
	}
	return m.Sent[len(m.Sent)-1]
}
