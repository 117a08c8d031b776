package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-planner/internal/model"
	"study-planner/internal/service"
)

func (b *Bot) startQuickAdd(msg *tgbotapi.Message) error {
	date := b.viewingDate(msg.Chat.ID)
	b.setDialog(msg.Chat.ID, &dialogState{stage: stageQuickName, task: service.TaskInput{DueDate: date}})
	return b.sendWithReplyMarkup(msg.Chat.ID, fmt.Sprintf("🆕 New task for %s.\n<b>Step 1:</b> what is it called?", escape(date)), cancelKeyboard())
}

func (b *Bot) startProject(msg *tgbotapi.Message) error {
	b.setDialog(msg.Chat.ID, &dialogState{stage: stageProjectName, task: service.TaskInput{Type: model.TaskProject}})
	return b.sendWithReplyMarkup(msg.Chat.ID, "📁 New project.\n<b>Step 1:</b> project name?", cancelKeyboard())
}

func (b *Bot) startSyllabus(msg *tgbotapi.Message) error {
	b.setDialog(msg.Chat.ID, &dialogState{stage: stageSyllabusCourse})
	return b.sendWithReplyMarkup(msg.Chat.ID, "📄 Which course is this syllabus for? (e.g. <code>MAT 302</code>)", cancelKeyboard())
}

func (b *Bot) startAddStudy(msg *tgbotapi.Message) error {
	b.setDialog(msg.Chat.ID, &dialogState{stage: stageStudyCourse})
	return b.sendWithReplyMarkup(msg.Chat.ID, "📚 New study block.\n<b>Step 1:</b> which course?", cancelKeyboard())
}

func (b *Bot) handleDialog(ctx context.Context, msg *tgbotapi.Message, state *dialogState) error {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch state.stage {
	case stageQuickName:
		if text == "" {
			return b.sendWithReplyMarkup(chatID, "The name cannot be empty.", cancelKeyboard())
		}
		state.task.Name = text
		state.stage = stageQuickType
		return b.sendWithReplyMarkup(chatID, "🏷 What kind of task?", typeKeyboard())
	case stageQuickType:
		taskType := model.TaskType(strings.ToLower(text))
		if !taskType.Valid() {
			return b.sendWithReplyMarkup(chatID, "Pick one of the buttons.", typeKeyboard())
		}
		state.task.Type = taskType
		b.clearDialog(chatID)
		return b.finishTask(ctx, chatID, state.task)

	case stageProjectName:
		if text == "" {
			return b.sendWithReplyMarkup(chatID, "The name cannot be empty.", cancelKeyboard())
		}
		state.task.Name = text
		state.stage = stageProjectDate
		return b.sendWithReplyMarkup(chatID, "📅 Due date as <code>2026-03-01</code>?", cancelKeyboard())
	case stageProjectDate:
		if _, err := model.ParseDate(text, b.app.Schedule.Location()); err != nil {
			return b.sendWithReplyMarkup(chatID, "Use the format <code>2026-03-01</code>.", cancelKeyboard())
		}
		state.task.DueDate = text
		state.stage = stageProjectTime
		return b.sendWithReplyMarkup(chatID, "⏰ Time as <code>17:00</code> (or skip)?", skipKeyboard())
	case stageProjectTime:
		if !isSkipInput(text) {
			if !model.ValidTime(text) {
				return b.sendWithReplyMarkup(chatID, "Use the format <code>17:00</code> or skip.", skipKeyboard())
			}
			state.task.Time = text
		}
		state.stage = stageProjectPriority
		return b.sendWithReplyMarkup(chatID, "❗ Priority?", priorityKeyboard())
	case stageProjectPriority:
		switch strings.ToLower(text) {
		case strings.ToLower(btnHigh), "high":
			state.task.Priority = string(model.PriorityHigh)
		case strings.ToLower(btnNormal), "normal":
			state.task.Priority = ""
		default:
			return b.sendWithReplyMarkup(chatID, "Pick one of the buttons.", priorityKeyboard())
		}
		state.stage = stageProjectNotes
		return b.sendWithReplyMarkup(chatID, "📝 Any notes? (or skip)", skipKeyboard())
	case stageProjectNotes:
		state.task.Description = "Work project"
		if !isSkipInput(text) && text != "" {
			state.task.Description = text
		}
		b.clearDialog(chatID)
		return b.finishTask(ctx, chatID, state.task)

	case stageSyllabusCourse:
		if text == "" {
			return b.sendWithReplyMarkup(chatID, "The course cannot be empty.", cancelKeyboard())
		}
		state.course = text
		state.stage = stageSyllabusText
		return b.sendWithReplyMarkup(chatID, "📋 Paste the syllabus text. Lines with a keyword and a date become tasks.", cancelKeyboard())
	case stageSyllabusText:
		candidates, err := b.app.Syllabus.Extract(state.course, text)
		if err != nil {
			return b.sendError(chatID, err)
		}
		if len(candidates) == 0 {
			b.clearDialog(chatID)
			return b.sendText(chatID, "🤷 No assignments found. Each line needs a keyword like HW or quiz and a date.")
		}
		state.candidates = candidates
		state.stage = stageSyllabusReview
		return b.sendWithReplyMarkup(chatID, formatCandidates(candidates), syllabusKeyboard())
	case stageSyllabusReview:
		return b.sendWithReplyMarkup(chatID, "Confirm or cancel with the buttons above.", cancelKeyboard())

	case stageStudyCourse:
		if text == "" {
			return b.sendWithReplyMarkup(chatID, "The course cannot be empty.", cancelKeyboard())
		}
		state.block.Course = text
		state.stage = stageStudyDays
		return b.sendWithReplyMarkup(chatID, "📆 Which days? e.g. <code>mon,wed,fri</code>", cancelKeyboard())
	case stageStudyDays:
		days := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
		for _, day := range days {
			if _, ok := model.NormalizeWeekday(day); !ok {
				return b.sendWithReplyMarkup(chatID, fmt.Sprintf("Unknown day %q. Try <code>mon,wed,fri</code>.", escape(day)), cancelKeyboard())
			}
		}
		if len(days) == 0 {
			return b.sendWithReplyMarkup(chatID, "Name at least one day.", cancelKeyboard())
		}
		state.block.Days = days
		state.stage = stageStudyStart
		return b.sendWithReplyMarkup(chatID, "⏰ Start time as <code>15:00</code>?", cancelKeyboard())
	case stageStudyStart:
		if !model.ValidTime(text) {
			return b.sendWithReplyMarkup(chatID, "Use the format <code>15:00</code>.", cancelKeyboard())
		}
		state.block.StartTime = text
		state.stage = stageStudyEnd
		return b.sendWithReplyMarkup(chatID, "⏰ End time?", cancelKeyboard())
	case stageStudyEnd:
		if !model.ValidTime(text) {
			return b.sendWithReplyMarkup(chatID, "Use the format <code>16:30</code>.", cancelKeyboard())
		}
		state.block.EndTime = text
		block, err := b.app.StudyBlocks.AddBlock(ctx, state.block)
		if err != nil {
			if state.block.EndTime <= state.block.StartTime {
				return b.sendWithReplyMarkup(chatID, "The end must be after the start. End time?", cancelKeyboard())
			}
			b.clearDialog(chatID)
			return b.sendError(chatID, err)
		}
		b.clearDialog(chatID)
		log.Printf("[info] study block added id=%s course=%s", block.ID, block.Course)
		return b.sendText(chatID, fmt.Sprintf("✅ Study block for <b>%s</b> saved.\n%s", escape(block.Course), formatBlockSchedule(block)))

	default:
		b.clearDialog(chatID)
		return b.sendText(chatID, "Dialog reset. Start again from /help.")
	}
}

func (b *Bot) finishTask(ctx context.Context, chatID int64, input service.TaskInput) error {
	task, err := b.app.Tasks.CreateTask(ctx, input)
	if err != nil {
		return b.sendError(chatID, err)
	}
	log.Printf("[info] task created id=%s type=%s due=%s", task.ID, task.Type, task.DueDate)
	return b.sendText(chatID, formatTaskSaved(task))
}

// confirmSyllabus commits the staged candidates of chatID's dialog.
func (b *Bot) confirmSyllabus(ctx context.Context, chatID int64) error {
	state := b.getDialog(chatID)
	if state == nil || state.stage != stageSyllabusReview {
		return b.sendText(chatID, "Nothing to confirm. Start with /syllabus.")
	}
	b.clearDialog(chatID)
	added, err := b.app.Syllabus.Confirm(ctx, state.candidates)
	if err != nil {
		return b.sendError(chatID, err)
	}
	log.Printf("[info] syllabus confirmed course=%s tasks=%d", state.course, len(added))
	return b.sendText(chatID, fmt.Sprintf("✅ Added %d tasks for %s.", len(added), escape(state.course)))
}
