package audit

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/segmentio/ksuid"
)

// Record - one enforcement action, posted to the operator's webhook.
type Record struct {
	ID              string  `json:"id"`
	Action          string  `json:"action"` // warn, delete, ban
	ChatID          int64   `json:"chat_id"`
	UserID          int64   `json:"user_id"`
	Username        string  `json:"username,omitempty"`
	Reason          string  `json:"reason,omitempty"`
	ViolationScore  float64 `json:"violation_score,omitempty"`
	Warnings        int     `json:"warnings,omitempty"`
	TimestampMillis int64   `json:"timestamp_ms"`
}

// Queue - posts enforcement records to a webhook without blocking the moderation
// pipeline. A nil Queue or an empty webhook URL makes Submit a no-op.
type Queue struct {
	pool       *ants.Pool
	webhookUrl string
}

func NewQueue(size int, webhookUrl string) (*Queue, error) {
	pool, err := ants.NewPool(size, ants.WithOptions(ants.Options{
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
	return &Queue{
		pool:       pool,
		webhookUrl: webhookUrl,
	}, nil
}

func (q *Queue) Submit(record *Record) error {
	if q == nil || q.webhookUrl == "" {
		return nil
	}
	record.ID = ksuid.New().String()
	record.TimestampMillis = time.Now().UnixMilli()

	workFn := func() {
		buf := bytes.NewBuffer(nil)
		if err := json.NewEncoder(buf).Encode(record); err != nil {
			log.Printf("[%s] Failed to encode audit record: %s", record.ID, err)
			return
		}

		req, err := http.NewRequest("POST", q.webhookUrl, buf)
		if err != nil {
			log.Printf("[%s] Failed to create audit request: %s", record.ID, err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "groupguard")

		res, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Printf("[%s] Failed to send audit record: %s", record.ID, err)
			return
		}
		defer res.Body.Close()
		log.Printf("[%s] Audit webhook response: %s", record.ID, res.Status)
	}
	return q.pool.Submit(workFn)
}
