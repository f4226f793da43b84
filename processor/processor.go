package processor

import (
	"context"
	"log"
	"strconv"

	"github.com/groupguard/groupguard/ai"
	"github.com/groupguard/groupguard/chat"
	"github.com/groupguard/groupguard/enforce"
	"github.com/groupguard/groupguard/filter"
	"github.com/groupguard/groupguard/metrics"
	"github.com/groupguard/groupguard/store"
	"github.com/ryanuber/go-glob"
)

// Classifier - the subset of the AI analyzer the processor needs. Tests substitute fakes;
// the analyzer is fail-open so there is no error return.
type Classifier interface {
	Analyze(ctx context.Context, text string) *ai.Scores
}

// Processor wires the moderation pipeline together: rule filter first (short-circuit),
// otherwise classifier plus scorer, then enforcement on a violation, then persistence.
type Processor struct {
	store      *store.DataStore
	classifier Classifier
	engine     *enforce.Engine
	exempt     []string
}

func NewProcessor(data *store.DataStore, classifier Classifier, engine *enforce.Engine, exemptSenders []string) *Processor {
	return &Processor{
		store:      data,
		classifier: classifier,
		engine:     engine,
		exempt:     exemptSenders,
	}
}

// ProcessMessage - runs the pipeline over one inbound message. The returned error is
// reserved for enforcement-critical failures (warn delivery, bans); classifier and delete
// failures are handled internally. State is persisted whether or not a violation was
// found, so message counters survive restarts.
func (p *Processor) ProcessMessage(ctx context.Context, msg *chat.Message) error {
	if msg == nil || msg.Text == "" {
		return nil
	}
	if msg.Sender.IsBot {
		return nil
	}
	if p.isExempt(&msg.Sender) {
		return nil
	}

	userId := strconv.FormatInt(msg.Sender.ID, 10)
	p.store.TouchUser(userId, msg.Sender.Username, msg.Sender.FirstName, msg.Sender.LastName)
	p.store.IncMessagesChecked()

	defer func() {
		if err := p.store.Save(); err != nil {
			log.Println("Failed to persist moderation state:", err)
		}
	}()

	var result *filter.Result
	if filter.CheckText(msg.Text, p.store.BanWords()) {
		result = filter.BanWordResult()
		metrics.RecordViolation(metrics.ViolationSourceKeyword)
	} else {
		scores := p.classifier.Analyze(ctx, msg.Text)
		result = filter.Evaluate(scores.Spam, scores.Toxic, scores.Danger, p.store.Sensitivity(), scores.Reason)
		if result.Violation {
			metrics.RecordViolation(metrics.ViolationSourceClassifier)
		}
	}

	if result.Violation {
		if err := p.engine.Apply(ctx, msg, result); err != nil {
			metrics.RecordMessageCheck(false)
			return err
		}
	}

	metrics.RecordMessageCheck(true)
	return nil
}

func (p *Processor) isExempt(sender *chat.Sender) bool {
	if len(p.exempt) == 0 {
		return false
	}
	id := strconv.FormatInt(sender.ID, 10)
	for _, pattern := range p.exempt {
		if pattern == "" {
			continue
		}
		if glob.Glob(pattern, id) {
			return true
		}
		if sender.Username != "" && glob.Glob(pattern, sender.Username) {
			return true
		}
	}
	return false
}
