package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/groupguard/groupguard/chat"
	"github.com/groupguard/groupguard/enforce"
	"github.com/groupguard/groupguard/processor"
	"github.com/groupguard/groupguard/queue"
	"github.com/groupguard/groupguard/test"
	"github.com/stretchr/testify/assert"
)

func makePool(t *testing.T, client *test.MemoryChatClient) *queue.Pool {
	data := test.MustMakeStore(t)
	proc := processor.NewProcessor(data, &test.FixedClassifier{}, enforce.NewEngine(client, data, nil), nil)
	pool, err := queue.NewPool(2, proc)
	assert.NoError(t, err)
	assert.NotNil(t, pool)
	return pool
}

func makeMessage(text string) *chat.Message {
	return &chat.Message{
		ChatID:    -1001,
		MessageID: 7,
		Text:      text,
		Sender:    chat.Sender{ID: 777, Username: "chatter"},
	}
}

func TestPoolDeliversResult(t *testing.T) {
	client := test.NewMemoryChatClient(t)
	pool := makePool(t, client)
	defer pool.Release()

	waitCh := make(chan *queue.PoolResult, 1)
	err := pool.Submit(context.Background(), makeMessage("hello there"), waitCh)
	assert.NoError(t, err)

	result := <-waitCh
	assert.NoError(t, result.Err)
	assert.Empty(t, client.Sent)
}

func TestPoolDeliversProcessingError(t *testing.T) {
	client := test.NewMemoryChatClient(t)
	client.FailSend = true
	pool := makePool(t, client)
	defer pool.Release()

	waitCh := make(chan *queue.PoolResult, 1)
	err := pool.Submit(context.Background(), makeMessage("free money"), waitCh)
	assert.NoError(t, err)

	result := <-waitCh
	assert.ErrorIs(t, result.Err, test.SimulatedError)
}

func TestPoolFireAndForget(t *testing.T) {
	client := test.NewMemoryChatClient(t)
	pool := makePool(t, client)

	// A nil waitCh means the caller doesn't care about the outcome; errors are only logged.
	err := pool.Submit(context.Background(), makeMessage("hello there"), nil)
	assert.NoError(t, err)

	// Give the task a chance to run before the pool goes away.
	time.Sleep(50 * time.Millisecond)
	pool.Release()
}
