package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-planner/internal/model"
	"study-planner/internal/service"
)

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	if err := b.app.Entries.Put(ctx, ChatIDKey, strconv.FormatInt(msg.Chat.ID, 10)); err != nil {
		return err
	}
	log.Printf("[info] chat %d registered for reminders", msg.Chat.ID)

	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "there"
	}

	text := fmt.Sprintf(
		"👋 Hi, %s!\n<b>I keep your classes, routine and deadlines in one place.</b>\n\n"+
			"• /today — today's schedule\n"+
			"• /dashboard — progress and focus\n"+
			"• /add — quick task\n"+
			"• /syllabus — pull deadlines from a syllabus\n"+
			"• /help — everything else",
		escape(name),
	)
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := "ℹ️ <b>Commands</b>\n" +
		"• /today, /day &lt;YYYY-MM-DD&gt; — day view with toggles\n" +
		"• /week [date] — week overview\n" +
		"• /dashboard — completion and deadlines\n" +
		"• /briefing — morning briefing\n" +
		"• /upcoming [assignment|quiz|project|other] — next 30 days\n" +
		"• /add — quick task for the viewed day\n" +
		"• /project — project with date, time and priority\n" +
		"• /syllabus — extract deadlines from pasted text\n" +
		"• /courses, /load &lt;code&gt; — preloaded course schedules\n" +
		"• /routine — show routine settings\n" +
		"• /wake &lt;HH:MM|off&gt;\n" +
		"• /workout &lt;mon,wed,fri|off&gt; [HH:MM]\n" +
		"• /tennis &lt;HH:MM|off&gt; [day]\n" +
		"• /notify &lt;on|off&gt; [minutes]\n" +
		"• /testnotify — send a test reminder\n" +
		"• /study, /addstudy — study blocks\n" +
		"• /cancel — abort the current dialog"
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleDay(msg *tgbotapi.Message) error {
	date, err := b.app.Schedule.ParseDate(strings.TrimSpace(msg.CommandArguments()))
	if err != nil {
		return b.sendText(msg.Chat.ID, "Use the date format <code>2026-01-26</code>.")
	}
	return b.sendDay(msg.Chat.ID, date)
}

func (b *Bot) sendDay(chatID int64, date time.Time) error {
	view := b.app.Schedule.Day(date)
	b.setViewing(chatID, view.Date)
	out := tgbotapi.NewMessage(chatID, formatDay(view))
	out.ParseMode = tgbotapi.ModeHTML
	out.ReplyMarkup = dayKeyboard(view)
	_, err := b.api.Send(out)
	return err
}

// refreshDay redraws an existing day message in place.
func (b *Bot) refreshDay(chatID int64, messageID int, date time.Time) error {
	view := b.app.Schedule.Day(date)
	b.setViewing(chatID, view.Date)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, formatDay(view), dayKeyboard(view))
	edit.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(edit)
	return err
}

func (b *Bot) handleWeek(msg *tgbotapi.Message) error {
	date, err := b.app.Schedule.ParseDate(strings.TrimSpace(msg.CommandArguments()))
	if err != nil {
		return b.sendText(msg.Chat.ID, "Use the date format <code>2026-01-26</code>.")
	}
	return b.sendText(msg.Chat.ID, formatWeek(b.app.Schedule.Week(date), model.FormatDate(b.app.Schedule.Today())))
}

func (b *Bot) handleDashboard(msg *tgbotapi.Message) error {
	return b.sendText(msg.Chat.ID, formatDashboard(b.app.Schedule.Dashboard(b.app.Schedule.Today())))
}

func (b *Bot) handleBriefing(msg *tgbotapi.Message) error {
	return b.sendText(msg.Chat.ID, formatBriefing(b.app.Schedule.Briefing(b.app.Schedule.Today())))
}

func (b *Bot) handleUpcoming(msg *tgbotapi.Message) error {
	filter := model.TaskType(strings.ToLower(strings.TrimSpace(msg.CommandArguments())))
	if filter == "all" {
		filter = ""
	}
	if filter != "" && !filter.Valid() {
		return b.sendText(msg.Chat.ID, "Filter by assignment, quiz, project or other.")
	}
	return b.sendText(msg.Chat.ID, formatUpcoming(b.app.Schedule.Upcoming(b.app.Schedule.Today(), filter)))
}

func (b *Bot) handleCourses(msg *tgbotapi.Message) error {
	courses := b.app.Courses.Courses()
	if len(courses) == 0 {
		return b.sendText(msg.Chat.ID, "No preloaded courses.")
	}
	var builder strings.Builder
	builder.WriteString("🎓 <b>Preloaded courses</b>\n")
	for _, course := range courses {
		builder.WriteString(fmt.Sprintf("• <code>%s</code> %s · %d items\n", escape(course.Code), escape(course.Course), len(course.Items)))
	}
	builder.WriteString("\nLoad one with /load &lt;code&gt;.")
	return b.sendText(msg.Chat.ID, builder.String())
}

func (b *Bot) handleLoad(ctx context.Context, msg *tgbotapi.Message) error {
	code := strings.TrimSpace(msg.CommandArguments())
	if code == "" {
		return b.sendText(msg.Chat.ID, "Name the course: /load MAT302")
	}
	course, n, err := b.app.Courses.LoadCourse(ctx, code)
	if err != nil {
		return b.sendError(msg.Chat.ID, err)
	}
	log.Printf("[info] course %s loaded with %d tasks", course.Code, n)
	return b.sendText(msg.Chat.ID, fmt.Sprintf("✅ Loaded %d items for %s.", n, escape(course.Course)))
}

func (b *Bot) handleRoutine(msg *tgbotapi.Message) error {
	return b.sendText(msg.Chat.ID, formatRoutine(b.app.Routines.Routine()))
}

func (b *Bot) handleWake(ctx context.Context, msg *tgbotapi.Message) error {
	arg := strings.TrimSpace(msg.CommandArguments())
	if arg == "" {
		return b.sendText(msg.Chat.ID, "Give a time: /wake 07:00 (or /wake off)")
	}
	if strings.EqualFold(arg, "off") {
		arg = ""
	}
	routine, err := b.app.Routines.SetWakeTime(ctx, arg)
	if err != nil {
		return b.sendError(msg.Chat.ID, err)
	}
	return b.sendText(msg.Chat.ID, formatRoutine(routine))
}

func (b *Bot) handleWorkout(ctx context.Context, msg *tgbotapi.Message) error {
	days, clock, err := parseWorkoutArgs(msg.CommandArguments())
	if err != nil {
		return b.sendText(msg.Chat.ID, escape(err.Error()))
	}
	routine, err := b.app.Routines.SetWorkout(ctx, days, clock)
	if err != nil {
		return b.sendError(msg.Chat.ID, err)
	}
	return b.sendText(msg.Chat.ID, formatRoutine(routine))
}

func (b *Bot) handleTennis(ctx context.Context, msg *tgbotapi.Message) error {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) == 0 {
		return b.sendText(msg.Chat.ID, "Give a time: /tennis 18:00 [thursday] (or /tennis off)")
	}

	var (
		routine model.Routine
		err     error
	)
	if strings.EqualFold(fields[0], "off") {
		routine, err = b.app.Routines.DisableTennis(ctx)
	} else {
		day := ""
		if len(fields) > 1 {
			day = fields[1]
		}
		routine, err = b.app.Routines.SetTennis(ctx, day, fields[0])
	}
	if err != nil {
		return b.sendError(msg.Chat.ID, err)
	}
	return b.sendText(msg.Chat.ID, formatRoutine(routine))
}

func (b *Bot) handleNotify(ctx context.Context, msg *tgbotapi.Message) error {
	enabled, minutes, err := parseNotifyArgs(msg.CommandArguments())
	if err != nil {
		return b.sendText(msg.Chat.ID, escape(err.Error()))
	}
	routine, err := b.app.Routines.SetNotifications(ctx, enabled, minutes)
	if err != nil {
		return b.sendError(msg.Chat.ID, err)
	}
	return b.sendText(msg.Chat.ID, formatRoutine(routine))
}

func (b *Bot) handleTestNotify(ctx context.Context, msg *tgbotapi.Message) error {
	if err := b.app.Reminders.SendTest(ctx); err != nil {
		return b.sendError(msg.Chat.ID, err)
	}
	return nil
}

func (b *Bot) handleStudy(msg *tgbotapi.Message) error {
	blocks := b.app.StudyBlocks.ListBlocks()
	if len(blocks) == 0 {
		return b.sendText(msg.Chat.ID, "No study blocks yet. Add one with /addstudy.")
	}
	out := tgbotapi.NewMessage(msg.Chat.ID, formatStudyBlocks(blocks))
	out.ParseMode = tgbotapi.ModeHTML
	out.ReplyMarkup = studyKeyboard(blocks)
	_, err := b.api.Send(out)
	return err
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	text := strings.TrimSpace(strings.ToLower(msg.Text))
	switch text {
	case strings.ToLower(menuLabelToday):
		return true, b.sendDay(msg.Chat.ID, b.app.Schedule.Today())
	case strings.ToLower(menuLabelDashboard):
		return true, b.handleDashboard(msg)
	case strings.ToLower(menuLabelAdd):
		return true, b.startQuickAdd(msg)
	case strings.ToLower(menuLabelUpcoming):
		return true, b.sendText(msg.Chat.ID, formatUpcoming(b.app.Schedule.Upcoming(b.app.Schedule.Today(), "")))
	default:
		return false, nil
	}
}

// sendError reports validation and lookup failures to the user and passes
// anything else up to the polling loop.
func (b *Bot) sendError(chatID int64, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrNotFound):
		return b.sendText(chatID, "⚠️ "+escape(err.Error()))
	case errors.Is(err, service.ErrNotificationsUnavailable):
		return b.sendText(chatID, "🔕 "+escape(err.Error()))
	default:
		if sendErr := b.sendText(chatID, "Something went wrong, try again."); sendErr != nil {
			log.Printf("[warn] send error reply: %v", sendErr)
		}
		return err
	}
}

// parseWorkoutArgs reads "<days|off> [HH:MM]" where days are comma separated.
func parseWorkoutArgs(args string) ([]string, string, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return nil, "", errors.New("Usage: /workout mon,wed,fri [08:00] or /workout off")
	}
	if strings.EqualFold(fields[0], "off") {
		return []string{}, "", nil
	}
	days := strings.FieldsFunc(fields[0], func(r rune) bool { return r == ',' || r == '/' })
	clock := ""
	if len(fields) > 1 {
		clock = fields[1]
	}
	if len(fields) > 2 {
		return nil, "", errors.New("Usage: /workout mon,wed,fri [08:00] or /workout off")
	}
	return days, clock, nil
}

// parseNotifyArgs reads "<on|off> [minutes]".
func parseNotifyArgs(args string) (bool, int, error) {
	fields := strings.Fields(strings.ToLower(args))
	if len(fields) == 0 || len(fields) > 2 {
		return false, 0, errors.New("Usage: /notify on [minutes] or /notify off")
	}
	var enabled bool
	switch fields[0] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return false, 0, errors.New("Usage: /notify on [minutes] or /notify off")
	}
	minutes := 0
	if len(fields) == 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return false, 0, errors.New("Minutes must be a positive number, e.g. /notify on 60")
		}
		minutes = n
	}
	return enabled, minutes, nil
}
