package queue

import (
	"context"
	"log"
	"time"

	"github.com/groupguard/groupguard/chat"
	"github.com/groupguard/groupguard/metrics"
	"github.com/groupguard/groupguard/processor"
	"github.com/panjf2000/ants/v2"
)

type PoolResult struct {
	// The error processing the message, if any. Only enforcement-critical failures
	// surface here; classifier and delete failures are absorbed by the pipeline.
	Err error
}

// Pool runs message checks off the update loop so a slow classifier call doesn't stall
// inbound updates. Shared state stays consistent because every mutation goes through the
// store's lock.
type Pool struct {
	processor *processor.Processor
	internal  *ants.Pool
}

func NewPool(size int, proc *processor.Processor) (*Pool, error) {
	internal, err := ants.NewPool(size, ants.WithOptions(ants.Options{
		ExpiryDuration:   1 * time.Minute,
		PreAlloc:         false,
		MaxBlockingTasks: 0, // no limit on submissions
		Nonblocking:      false,
		// If we don't supply a panic handler then ants will print a stack trace for us
		Logger:       log.Default(),
		DisablePurge: false,
	}))
	if err != nil {
		return nil, err
	}
	return &Pool{
		processor: proc,
		internal:  internal,
	}, nil
}

// Submit asks the pool to run the moderation pipeline for the given message. If waitCh is
// non-nil it receives the result upon completion; it is not called when there was a
// submission error - that is instead returned from Submit.
func (p *Pool) Submit(ctx context.Context, msg *chat.Message, waitCh chan<- *PoolResult) error {
	t := metrics.StartQueueTimer()

	workFn := func() {
		err := p.processor.ProcessMessage(ctx, msg)
		t.ObserveDuration()

		if waitCh == nil {
			if err != nil {
				log.Printf("Error processing message %d in chat %d: %s", msg.MessageID, msg.ChatID, err)
			}
			return
		}

		select {
		case waitCh <- &PoolResult{Err: err}:
		case <-ctx.Done():
			log.Printf("Result channel closed, not sending result for message %d in chat %d: %s", msg.MessageID, msg.ChatID, ctx.Err())
		}
	}
	return p.internal.Submit(workFn)
}

func (p *Pool) Release() {
	p.internal.Release()
}
