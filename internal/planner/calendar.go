// Package planner holds the pure planning logic: day aggregation, display
// ordering, syllabus extraction, analytics and reminder selection. Nothing in
// this package reads the clock or touches storage.
package planner

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"study-planner/internal/model"
)

//go:embed calendar.yaml
var defaultCalendarYAML []byte

// Calendar is the term-specific configuration: semester range, class
// sessions, the fallback year for extracted dates and preloaded courses.
type Calendar struct {
	FallbackYear int              `yaml:"fallback_year"`
	Semester     Semester         `yaml:"semester"`
	Courses      []CourseSchedule `yaml:"courses"`
}

// Semester bounds class sessions. All bounds are inclusive YYYY-MM-DD dates.
type Semester struct {
	Start      string         `yaml:"start"`
	End        string         `yaml:"end"`
	BreakStart string         `yaml:"break_start"`
	BreakEnd   string         `yaml:"break_end"`
	Sessions   []ClassSession `yaml:"sessions"`
}

// ClassSession is a fixed weekly class meeting.
type ClassSession struct {
	Name     string   `yaml:"name"`
	Days     []string `yaml:"days"`
	Time     string   `yaml:"time"`
	Location string   `yaml:"location"`
}

// CourseSchedule is a preloaded list of graded items for one course.
type CourseSchedule struct {
	Code        string       `yaml:"code"`
	Course      string       `yaml:"course"`
	Description string       `yaml:"description"`
	Items       []CourseItem `yaml:"items"`
}

type CourseItem struct {
	Name string         `yaml:"name"`
	Due  string         `yaml:"due"`
	Type model.TaskType `yaml:"type"`
}

// DefaultCalendar returns the embedded calendar.
func DefaultCalendar() Calendar {
	cal, err := parseCalendar(defaultCalendarYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded calendar: %v", err))
	}
	return cal
}

// LoadCalendar reads a calendar YAML file. An empty path yields the default.
func LoadCalendar(path string) (Calendar, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCalendar(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Calendar{}, fmt.Errorf("read calendar: %w", err)
	}
	cal, err := parseCalendar(raw)
	if err != nil {
		return Calendar{}, fmt.Errorf("calendar %s: %w", path, err)
	}
	return cal, nil
}

func parseCalendar(raw []byte) (Calendar, error) {
	var cal Calendar
	if err := yaml.Unmarshal(raw, &cal); err != nil {
		return Calendar{}, fmt.Errorf("decode calendar: %w", err)
	}
	if err := cal.validate(); err != nil {
		return Calendar{}, err
	}
	return cal, nil
}

func (c Calendar) validate() error {
	if c.FallbackYear <= 0 {
		return fmt.Errorf("fallback_year must be a positive year, got %d", c.FallbackYear)
	}
	s := c.Semester
	for _, d := range []string{s.Start, s.End, s.BreakStart, s.BreakEnd} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(model.DateLayout, d); err != nil {
			return fmt.Errorf("semester date %q is not YYYY-MM-DD", d)
		}
	}
	for _, session := range s.Sessions {
		if !model.ValidTime(session.Time) {
			return fmt.Errorf("session %q has invalid time %q", session.Name, session.Time)
		}
		for _, day := range session.Days {
			if _, ok := model.NormalizeWeekday(day); !ok {
				return fmt.Errorf("session %q has invalid day %q", session.Name, day)
			}
		}
	}
	seen := make(map[string]bool, len(c.Courses))
	for _, course := range c.Courses {
		code := strings.ToUpper(course.Code)
		if code == "" || seen[code] {
			return fmt.Errorf("course code %q is empty or duplicated", course.Code)
		}
		seen[code] = true
		for _, item := range course.Items {
			if _, err := time.Parse(model.DateLayout, item.Due); err != nil {
				return fmt.Errorf("course %s item %q has invalid due date", course.Code, item.Name)
			}
			if !item.Type.Valid() {
				return fmt.Errorf("course %s item %q has invalid type %q", course.Code, item.Name, item.Type)
			}
		}
	}
	return nil
}

// Course looks up a preloaded schedule by code, ignoring case and spaces.
func (c Calendar) Course(code string) (CourseSchedule, bool) {
	want := strings.ToUpper(strings.ReplaceAll(code, " ", ""))
	for _, course := range c.Courses {
		if strings.ToUpper(course.Code) == want {
			return course, true
		}
	}
	return CourseSchedule{}, false
}

// Tasks materialises the schedule into tasks with fresh identifiers.
func (cs CourseSchedule) Tasks(newID func() string) []model.Task {
	tasks := make([]model.Task, 0, len(cs.Items))
	for _, item := range cs.Items {
		tasks = append(tasks, model.Task{
			ID:          newID(),
			Name:        item.Name,
			DueDate:     item.Due,
			Type:        item.Type,
			Course:      cs.Course,
			Description: cs.Description,
		})
	}
	return tasks
}

// InSession reports whether classes meet on date: inside the semester and
// outside the break.
func (s Semester) InSession(date string) bool {
	if s.Start != "" && date < s.Start {
		return false
	}
	if s.End != "" && date > s.End {
		return false
	}
	if s.BreakStart != "" && s.BreakEnd != "" && date >= s.BreakStart && date <= s.BreakEnd {
		return false
	}
	return true
}

// SessionsOn returns the class-session items for date.
func (s Semester) SessionsOn(date time.Time) []model.DayItem {
	if !s.InSession(model.FormatDate(date)) {
		return nil
	}
	day := model.WeekdayName(date)
	var items []model.DayItem
	for _, session := range s.Sessions {
		for _, d := range session.Days {
			if normalized, _ := model.NormalizeWeekday(d); normalized == day {
				items = append(items, model.DayItem{
					Name:        session.Name,
					Type:        model.ItemClassSession,
					Time:        session.Time,
					Description: session.Location,
				})
				break
			}
		}
	}
	return items
}
