package enforce

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/groupguard/groupguard/audit"
	"github.com/groupguard/groupguard/chat"
	"github.com/groupguard/groupguard/filter"
	"github.com/groupguard/groupguard/metrics"
	"github.com/groupguard/groupguard/store"
)

// Engine runs the warn/delete/ban sequence for confirmed violations. The error handling
// is deliberately asymmetric: a failed delete is swallowed and annotated on the warning
// message, while a failed ban is returned to the caller.
type Engine struct {
	client chat.Client
	store  *store.DataStore
	audit  *audit.Queue // may be nil
}

func NewEngine(client chat.Client, data *store.DataStore, auditQueue *audit.Queue) *Engine {
	return &Engine{
		client: client,
		store:  data,
		audit:  auditQueue,
	}
}

// Apply - handles one violation: counts it, warns the user as a reply to the offending
// message, deletes the message when auto-delete is on, and bans the user once their
// warning count reaches the configured limit. The delete step never aborts the sequence;
// the ban check always runs.
func (e *Engine) Apply(ctx context.Context, msg *chat.Message, result *filter.Result) error {
	userId := strconv.FormatInt(msg.Sender.ID, 10)

	e.store.IncViolationsFound()
	warnings := e.store.AddWarning(userId)
	limit := e.store.WarnBeforeBan()

	warningText := formatWarning(result, warnings, limit)
	warningRef, err := e.client.SendReply(ctx, msg.ChatID, msg.MessageID, warningText)
	if err != nil {
		metrics.RecordModerationAction(metrics.ModerationActionWarn, metrics.ModerationStatusError)
		return fmt.Errorf("sending warning: %w", err)
	}
	metrics.RecordModerationAction(metrics.ModerationActionWarn, metrics.ModerationStatusOk)
	e.record("warn", msg, result, warnings)

	if e.store.AutoDelete() {
		e.deleteMessage(ctx, msg, result, warningRef, warningText, warnings)
	}

	if warnings >= limit {
		if err := e.ban(ctx, msg); err != nil {
			log.Printf("Failed to ban user %s in chat %d: %s", userId, msg.ChatID, err)
			metrics.RecordModerationAction(metrics.ModerationActionBan, metrics.ModerationStatusError)
			return fmt.Errorf("banning user %s: %w", userId, err)
		}
		metrics.RecordModerationAction(metrics.ModerationActionBan, metrics.ModerationStatusOk)
		e.record("ban", msg, result, warnings)
	}

	return nil
}

func formatWarning(result *filter.Result, warnings int, limit int) string {
	return fmt.Sprintf(
		"🚨 Rule violation!\n"+
			"▫️ Reason: %s\n"+
			"▫️ Violation score: %.0f%%\n"+
			"▫️ Spam: %.0f%%\n"+
			"▫️ Toxicity: %.0f%%\n"+
			"▫️ Danger: %.0f%%\n\n"+
			"Warning %d/%d",
		result.Reason, result.ViolationScore, result.Spam, result.Toxic, result.Danger,
		warnings, limit)
}

func (e *Engine) deleteMessage(ctx context.Context, msg *chat.Message, result *filter.Result, warningRef *chat.Ref, warningText string, warnings int) {
	err := e.client.DeleteMessage(ctx, msg.ChatID, msg.MessageID)
	if err == nil {
		e.store.IncDeletedMessages()
		metrics.RecordModerationAction(metrics.ModerationActionDelete, metrics.ModerationStatusOk)
		e.record("delete", msg, result, warnings)
		return
	}

	// Deletion failure is cosmetic: annotate the warning and keep going so the ban check
	// still runs.
	log.Printf("Failed to delete message %d in chat %d: %s", msg.MessageID, msg.ChatID, err)
	metrics.RecordModerationAction(metrics.ModerationActionDelete, metrics.ModerationStatusError)
	if warningRef != nil {
		if editErr := e.client.EditText(ctx, warningRef, warningText+"\n\n⚠️ Could not delete the message"); editErr != nil {
			log.Printf("Failed to annotate warning %d in chat %d: %s", warningRef.MessageID, warningRef.ChatID, editErr)
		}
	}
}

func (e *Engine) ban(ctx context.Context, msg *chat.Message) error {
	if err := e.client.BanMember(ctx, msg.ChatID, msg.Sender.ID); err != nil {
		return err
	}
	e.store.IncBannedUsers()

	name := msg.Sender.Username
	if name == "" {
		name = strconv.FormatInt(msg.Sender.ID, 10)
	}
	_, err := e.client.SendText(ctx, msg.ChatID, fmt.Sprintf("🚫 @%s has been banned for repeated violations!", name))
	return err
}

func (e *Engine) record(action string, msg *chat.Message, result *filter.Result, warnings int) {
	err := e.audit.Submit(&audit.Record{
		Action:         action,
		ChatID:         msg.ChatID,
		UserID:         msg.Sender.ID,
		Username:       msg.Sender.Username,
		Reason:         result.Reason,
		ViolationScore: result.ViolationScore,
		Warnings:       warnings,
	})
	if err != nil {
		log.Printf("Failed to submit %s audit record: %s", action, err)
	}
}
