package service

import (
	"time"

	"study-planner/internal/model"
	"study-planner/internal/planner"
)

// DayEntry is a day item with its completion state for the viewed date.
type DayEntry struct {
	model.DayItem
	Completed   bool `json:"completed"`
	Completable bool `json:"completable"`
	Deletable   bool `json:"deletable"`
}

// DayView is everything needed to paint one day.
type DayView struct {
	Date      string     `json:"date"`
	Weekday   string     `json:"weekday"`
	WakeTime  string     `json:"wakeTime,omitempty"`
	Items     []DayEntry `json:"items"`
	Completed int        `json:"completed"`
	Total     int        `json:"total"`
}

// ScheduleService builds read-only views from state snapshots.
type ScheduleService struct {
	store    *Store
	semester planner.Semester
	loc      *time.Location
	now      func() time.Time
}

func NewScheduleService(store *Store, semester planner.Semester, loc *time.Location) *ScheduleService {
	if loc == nil {
		loc = time.Local
	}
	return &ScheduleService{store: store, semester: semester, loc: loc, now: time.Now}
}

// Today returns midnight of the current day in the planner location.
func (s *ScheduleService) Today() time.Time {
	return model.StartOfDay(s.now().In(s.loc))
}

func (s *ScheduleService) Location() *time.Location {
	return s.loc
}

// ParseDate parses a YYYY-MM-DD value in the planner location. An empty
// value means today.
func (s *ScheduleService) ParseDate(value string) (time.Time, error) {
	if value == "" {
		return s.Today(), nil
	}
	t, err := model.ParseDate(value, s.loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Day returns the display-ordered items of date.
func (s *ScheduleService) Day(date time.Time) DayView {
	st := s.store.Snapshot()
	dateStr := model.FormatDate(date)
	items := planner.ItemsForDate(date, st.Routine, st.StudyBlocks, st.Tasks, s.semester)
	planner.SortForDisplay(items, dateStr, st.Completions)
	completed, total := planner.CountCompleted(items, dateStr, st.Completions)

	view := DayView{
		Date:      dateStr,
		Weekday:   model.WeekdayName(date),
		WakeTime:  st.Routine.WakeTime,
		Items:     make([]DayEntry, 0, len(items)),
		Completed: completed,
		Total:     total,
	}
	for _, item := range items {
		view.Items = append(view.Items, DayEntry{
			DayItem:     item,
			Completed:   planner.IsCompleted(item, dateStr, st.Completions),
			Completable: item.Completable(),
			Deletable:   item.ID != "" && item.IsTask(),
		})
	}
	return view
}

func (s *ScheduleService) Week(date time.Time) []planner.WeekDay {
	return planner.Week(date, s.store.Snapshot(), s.semester)
}

func (s *ScheduleService) Dashboard(today time.Time) planner.Dashboard {
	return planner.BuildDashboard(today, s.store.Snapshot(), s.semester)
}

func (s *ScheduleService) Briefing(today time.Time) planner.Briefing {
	return planner.BuildBriefing(today, s.store.Snapshot(), s.semester)
}

func (s *ScheduleService) Upcoming(today time.Time, filter model.TaskType) []planner.UpcomingTask {
	st := s.store.Snapshot()
	return planner.Upcoming(st.Tasks, st.Completions, today, filter)
}
