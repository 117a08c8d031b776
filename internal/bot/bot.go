package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-planner/internal/app"
	"study-planner/internal/model"
	"study-planner/internal/service"
)

// ChatIDKey is the entry holding the chat registered through /start.
const ChatIDKey = "telegram_chat_id"

type dialogStage int

const (
	stageNone dialogStage = iota
	stageQuickName
	stageQuickType
	stageProjectName
	stageProjectDate
	stageProjectTime
	stageProjectPriority
	stageProjectNotes
	stageSyllabusCourse
	stageSyllabusText
	stageSyllabusReview
	stageStudyCourse
	stageStudyDays
	stageStudyStart
	stageStudyEnd
)

type dialogState struct {
	stage      dialogStage
	task       service.TaskInput
	block      service.StudyBlockInput
	course     string
	candidates []model.Task
}

// Bot serves the planner over Telegram for a single owner.
type Bot struct {
	api     *tgbotapi.BotAPI
	app     *app.App
	ownerID int64
	dialogs map[int64]*dialogState
	viewing map[int64]string
	mu      sync.Mutex
}

func New(token string, a *app.App) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:     api,
		app:     a,
		ownerID: a.Config.TelegramOwnerID,
		dialogs: make(map[int64]*dialogState),
		viewing: make(map[int64]string),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Printf("[warn] handle callback: %v", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Printf("[warn] handle message: %v", err)
			}
		}
	}

	return nil
}

// Notify sends a reminder to the registered chat.
func (b *Bot) Notify(ctx context.Context, title, body string) error {
	chatID, err := b.registeredChat(ctx)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("🔔 <b>%s</b>\n%s", escape(title), escape(body))
	return b.sendText(chatID, text)
}

func (b *Bot) registeredChat(ctx context.Context) (int64, error) {
	raw, ok, err := b.app.Entries.Get(ctx, ChatIDKey)
	if err != nil {
		return 0, fmt.Errorf("read chat id: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: no chat registered, send /start to the bot", service.ErrNotificationsUnavailable)
	}
	chatID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: stored chat id %q is malformed", service.ErrNotificationsUnavailable, raw)
	}
	return chatID, nil
}

func (b *Bot) allowed(chatID int64) bool {
	return b.ownerID == 0 || b.ownerID == chatID
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}
	if !b.allowed(msg.Chat.ID) {
		log.Printf("[warn] rejected message from chat %d", msg.Chat.ID)
		return b.sendText(msg.Chat.ID, "This planner is private.")
	}

	if !msg.IsCommand() && isCancelInput(msg.Text) {
		b.clearDialog(msg.Chat.ID)
		return b.sendText(msg.Chat.ID, "⏪ Cancelled.")
	}

	if !msg.IsCommand() {
		if handled, err := b.handleMenuAlias(ctx, msg); handled {
			return err
		}
	}

	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s %s", msg.Chat.ID, msg.Command(), msg.CommandArguments())
		return b.handleCommand(ctx, msg)
	}

	if state := b.getDialog(msg.Chat.ID); state != nil {
		log.Printf("[info] dialog step %d from %d", state.stage, msg.Chat.ID)
		return b.handleDialog(ctx, msg, state)
	}

	return b.sendText(msg.Chat.ID, "I did not get that. Try /today, /add or /help.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.handleHelp(msg)
	case "today":
		return b.sendDay(msg.Chat.ID, b.app.Schedule.Today())
	case "day":
		return b.handleDay(msg)
	case "week":
		return b.handleWeek(msg)
	case "dashboard":
		return b.handleDashboard(msg)
	case "briefing":
		return b.handleBriefing(msg)
	case "upcoming":
		return b.handleUpcoming(msg)
	case "add":
		return b.startQuickAdd(msg)
	case "project":
		return b.startProject(msg)
	case "syllabus":
		return b.startSyllabus(msg)
	case "courses":
		return b.handleCourses(msg)
	case "load":
		return b.handleLoad(ctx, msg)
	case "routine":
		return b.handleRoutine(msg)
	case "wake":
		return b.handleWake(ctx, msg)
	case "workout":
		return b.handleWorkout(ctx, msg)
	case "tennis":
		return b.handleTennis(ctx, msg)
	case "notify":
		return b.handleNotify(ctx, msg)
	case "testnotify":
		return b.handleTestNotify(ctx, msg)
	case "study":
		return b.handleStudy(msg)
	case "addstudy":
		return b.startAddStudy(msg)
	case "cancel":
		b.clearDialog(msg.Chat.ID)
		return b.sendText(msg.Chat.ID, "⏪ Cancelled.")
	default:
		return b.sendText(msg.Chat.ID, "Unknown command. See /help.")
	}
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithReplyMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) setDialog(chatID int64, state *dialogState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dialogs[chatID] = state
}

func (b *Bot) getDialog(chatID int64) *dialogState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dialogs[chatID]
}

func (b *Bot) clearDialog(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.dialogs, chatID)
}

func (b *Bot) setViewing(chatID int64, date string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.viewing[chatID] = date
}

// viewingDate is the last day shown in chatID, or today.
func (b *Bot) viewingDate(chatID int64) string {
	b.mu.Lock()
	date, ok := b.viewing[chatID]
	b.mu.Unlock()
	if !ok {
		return model.FormatDate(b.app.Schedule.Today())
	}
	return date
}
