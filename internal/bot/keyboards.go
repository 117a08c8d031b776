package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-planner/internal/model"
	"study-planner/internal/service"
)

const (
	btnSkip            = "⏭️ Skip"
	btnCancelDialog    = "⏪ Cancel"
	btnHigh            = "🔥 High"
	btnNormal          = "Normal"
	menuLabelToday     = "📅 Today"
	menuLabelDashboard = "📊 Dashboard"
	menuLabelAdd       = "➕ Add task"
	menuLabelUpcoming  = "⏳ Upcoming"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelToday),
			tgbotapi.NewKeyboardButton(menuLabelDashboard),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelAdd),
			tgbotapi.NewKeyboardButton(menuLabelUpcoming),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func typeKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(string(model.TaskAssignment)),
			tgbotapi.NewKeyboardButton(string(model.TaskQuiz)),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(string(model.TaskProject)),
			tgbotapi.NewKeyboardButton(string(model.TaskOther)),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func priorityKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHigh),
			tgbotapi.NewKeyboardButton(btnNormal),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func syllabusKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Add all", cbSyllabusConfirm),
			tgbotapi.NewInlineKeyboardButtonData("↩️ Cancel", cbSyllabusCancel),
		),
	)
}

func confirmDeleteKeyboard(date, taskID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", cbDeleteOKPrefix+date+":"+taskID),
			tgbotapi.NewInlineKeyboardButtonData("Keep", cbKeep),
		),
	)
}

// dayKeyboard has a toggle row per completable item and a navigation row.
func dayKeyboard(view service.DayView) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, entry := range view.Items {
		if !entry.Completable {
			continue
		}
		toggle := cbTogglePrefix + view.Date + ":" + entry.CompletionID()
		if len(toggle) > callbackDataMaxLen {
			continue
		}
		mark := "⬜"
		if entry.Completed {
			mark = "✅"
		}
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %s", mark, shortTitle(entry.Name, 28)), toggle),
		}
		if entry.Deletable {
			del := cbDeletePrefix + view.Date + ":" + entry.ID
			if len(del) <= callbackDataMaxLen {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData("🗑", del))
			}
		}
		rows = append(rows, row)
	}

	if day, err := time.Parse(model.DateLayout, view.Date); err == nil {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ "+day.AddDate(0, 0, -1).Format("Jan 2"), cbNavigatePrefix+model.FormatDate(day.AddDate(0, 0, -1))),
			tgbotapi.NewInlineKeyboardButtonData(day.AddDate(0, 0, 1).Format("Jan 2")+" ▶️", cbNavigatePrefix+model.FormatDate(day.AddDate(0, 0, 1))),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func studyKeyboard(blocks []model.StudyBlock) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(blocks))
	for _, block := range blocks {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+shortTitle(block.Course, 24), cbStudyPrefix+block.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func isSkipInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == "-" || value == strings.ToLower(btnSkip) || value == "skip"
}

func isCancelInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnCancelDialog) || value == "cancel"
}
