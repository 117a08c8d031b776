package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
)

// Notifier delivers a reminder to the owner.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// ReminderService notifies the owner shortly before task deadlines.
type ReminderService struct {
	store   *Store
	entries *repository.EntryRepository
	tick    time.Duration
	loc     *time.Location

	mu       sync.Mutex
	notifier Notifier
}

func NewReminderService(store *Store, entries *repository.EntryRepository, tick time.Duration, loc *time.Location) *ReminderService {
	if tick <= 0 {
		tick = time.Minute
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReminderService{store: store, entries: entries, tick: tick, loc: loc}
}

// SetNotifier installs the delivery channel. A nil notifier disables delivery.
func (s *ReminderService) SetNotifier(n Notifier) {
	s.mu.Lock()
	s.notifier = n
	s.mu.Unlock()
}

func (s *ReminderService) currentNotifier() Notifier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifier
}

// Check sends every reminder that became due during the last tick and
// returns how many were delivered. Each task occurrence is notified at most
// once; the marker is written even when delivery fails. Deadlines are
// evaluated in the service's location whatever zone now carries.
func (s *ReminderService) Check(ctx context.Context, now time.Time) (int, error) {
	now = now.In(s.loc)
	st := s.store.Snapshot()
	if !st.Routine.Notifications.Enabled {
		return 0, nil
	}
	lead := time.Duration(st.Routine.ReminderLead()) * time.Minute
	due := planner.DueReminders(now, st.Tasks, lead, s.tick)

	sent := 0
	for _, task := range due {
		key := planner.NotificationKey(task)
		seen, err := s.entries.Has(ctx, key)
		if err != nil {
			return sent, err
		}
		if seen {
			continue
		}

		err = s.deliver(ctx, "Upcoming Deadline", ReminderText(task))
		switch {
		case err == nil:
			sent++
			log.Printf("[info] reminder sent task=%s due=%s", task.ID, task.DueDate)
		case errors.Is(err, ErrNotificationsUnavailable):
			log.Printf("[warn] reminder for task=%s skipped: %v", task.ID, err)
		default:
			log.Printf("[warn] reminder for task=%s failed: %v", task.ID, err)
		}

		if err := s.entries.Put(ctx, key, "true"); err != nil {
			return sent, err
		}
	}
	return sent, nil
}

// SendTest delivers a test notification.
func (s *ReminderService) SendTest(ctx context.Context) error {
	return s.deliver(ctx, "Test Notification", "Notifications are working!")
}

func (s *ReminderService) deliver(ctx context.Context, title, body string) error {
	n := s.currentNotifier()
	if n == nil {
		return ErrNotificationsUnavailable
	}
	return n.Notify(ctx, title, body)
}

// ReminderText renders the reminder body for task.
func ReminderText(task model.Task) string {
	var b strings.Builder
	b.WriteString(task.Name)
	b.WriteString(" is due ")
	b.WriteString(ShortDate(task.DueDate))
	if task.Time != "" {
		b.WriteString(fmt.Sprintf(" at %s", model.Clock12(task.Time)))
	}
	if task.Course != "" {
		b.WriteString(fmt.Sprintf(" (%s)", task.Course))
	}
	return b.String()
}

// ShortDate renders YYYY-MM-DD as "Jan 2". Malformed input is returned as is.
func ShortDate(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
