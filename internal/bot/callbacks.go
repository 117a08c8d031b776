package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cbTogglePrefix     = "toggle:"
	cbDeletePrefix     = "del:"
	cbDeleteOKPrefix   = "delok:"
	cbNavigatePrefix   = "nav:"
	cbStudyPrefix      = "rmstudy:"
	cbSyllabusConfirm  = "syl:ok"
	cbSyllabusCancel   = "syl:no"
	cbKeep             = "keep"
	callbackDataMaxLen = 64
)

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil {
		return nil
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("[warn] callback ack: %v", err)
	}

	chatID := cb.Message.Chat.ID
	if !b.allowed(chatID) {
		return nil
	}
	data := cb.Data

	switch {
	case strings.HasPrefix(data, cbTogglePrefix):
		date, itemID, ok := splitDateID(strings.TrimPrefix(data, cbTogglePrefix))
		if !ok {
			return nil
		}
		log.Printf("[info] callback toggle item=%s date=%s", itemID, date)
		if _, err := b.app.Completions.Toggle(ctx, itemID, date); err != nil {
			return b.sendError(chatID, err)
		}
		return b.refreshView(chatID, cb.Message.MessageID, date)
	case strings.HasPrefix(data, cbDeletePrefix):
		date, taskID, ok := splitDateID(strings.TrimPrefix(data, cbDeletePrefix))
		if !ok {
			return nil
		}
		task, err := b.app.Tasks.GetTask(taskID)
		if err != nil {
			return b.sendError(chatID, err)
		}
		out := tgbotapi.NewMessage(chatID, fmt.Sprintf("Delete \"%s\"?", escape(task.Name)))
		out.ParseMode = tgbotapi.ModeHTML
		out.ReplyMarkup = confirmDeleteKeyboard(date, task.ID)
		_, err = b.api.Send(out)
		return err
	case strings.HasPrefix(data, cbDeleteOKPrefix):
		date, taskID, ok := splitDateID(strings.TrimPrefix(data, cbDeleteOKPrefix))
		if !ok {
			return nil
		}
		task, err := b.app.Tasks.DeleteTask(ctx, taskID)
		if err != nil {
			return b.sendError(chatID, err)
		}
		log.Printf("[info] task deleted id=%s", task.ID)
		if err := b.removeMessage(chatID, cb.Message.MessageID); err != nil {
			log.Printf("[warn] remove confirmation: %v", err)
		}
		if err := b.sendText(chatID, fmt.Sprintf("🗑 \"%s\" deleted.", escape(task.Name))); err != nil {
			return err
		}
		day, err := b.app.Schedule.ParseDate(date)
		if err != nil {
			return nil
		}
		return b.sendDay(chatID, day)
	case strings.HasPrefix(data, cbNavigatePrefix):
		return b.refreshView(chatID, cb.Message.MessageID, strings.TrimPrefix(data, cbNavigatePrefix))
	case strings.HasPrefix(data, cbStudyPrefix):
		block, err := b.app.StudyBlocks.DeleteBlock(ctx, strings.TrimPrefix(data, cbStudyPrefix))
		if err != nil {
			return b.sendError(chatID, err)
		}
		log.Printf("[info] study block removed id=%s", block.ID)
		blocks := b.app.StudyBlocks.ListBlocks()
		text := formatStudyBlocks(blocks)
		if len(blocks) == 0 {
			text = "No study blocks left."
		}
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, text, studyKeyboard(blocks))
		edit.ParseMode = tgbotapi.ModeHTML
		_, err = b.api.Send(edit)
		return err
	case data == cbSyllabusConfirm:
		return b.confirmSyllabus(ctx, chatID)
	case data == cbSyllabusCancel:
		b.clearDialog(chatID)
		return b.sendText(chatID, "⏪ Nothing was added.")
	case data == cbKeep:
		return b.removeMessage(chatID, cb.Message.MessageID)
	default:
		return nil
	}
}

func (b *Bot) refreshView(chatID int64, messageID int, date string) error {
	day, err := b.app.Schedule.ParseDate(date)
	if err != nil {
		return nil
	}
	return b.refreshDay(chatID, messageID, day)
}

func (b *Bot) removeMessage(chatID int64, messageID int) error {
	_, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

// splitDateID splits "<YYYY-MM-DD>:<id>".
func splitDateID(raw string) (string, string, bool) {
	date, id, ok := strings.Cut(raw, ":")
	if !ok || date == "" || id == "" {
		return "", "", false
	}
	return date, id, true
}
