package planner

import (
	"math"
	"sort"
	"strings"
	"time"

	"study-planner/internal/model"
)

const (
	weekHorizonDays     = 7
	upcomingHorizonDays = 30
	briefingScheduleMax = 8
	briefingWeekMax     = 5
)

// CourseCount is the number of tasks of one course due within the week.
type CourseCount struct {
	Course string `json:"course"`
	Count  int    `json:"count"`
}

// Dashboard summarises today's progress and deadlines.
type Dashboard struct {
	Date         string        `json:"date"`
	Percentage   int           `json:"percentage"`
	Completed    int           `json:"completed"`
	Total        int           `json:"total"`
	DueToday     int           `json:"dueToday"`
	DueThisWeek  int           `json:"dueThisWeek"`
	Overdue      int           `json:"overdue"`
	CourseCounts []CourseCount `json:"courseCounts"`
	Focus        *model.Task   `json:"focus,omitempty"`
}

// BuildDashboard derives the dashboard for today from a state snapshot.
func BuildDashboard(today time.Time, st model.State, sem Semester) Dashboard {
	todayStr := model.FormatDate(today)
	weekEnd := model.FormatDate(model.StartOfDay(today).AddDate(0, 0, weekHorizonDays))

	items := ItemsForDate(today, st.Routine, st.StudyBlocks, st.Tasks, sem)
	completed, total := CountCompleted(items, todayStr, st.Completions)

	d := Dashboard{
		Date:         todayStr,
		Percentage:   Percentage(completed, total),
		Completed:    completed,
		Total:        total,
		CourseCounts: []CourseCount{},
	}

	courseIndex := map[string]int{}
	for _, task := range st.Tasks {
		due := task.DueDate
		inWeek := due >= todayStr && due <= weekEnd
		if due == todayStr {
			d.DueToday++
		}
		if inWeek {
			d.DueThisWeek++
		}
		if due < todayStr && !st.Completions.Done(task.ID, due) {
			d.Overdue++
		}
		if task.Course == "" {
			continue
		}
		key := CourseKey(task.Course)
		idx, ok := courseIndex[key]
		if !ok {
			idx = len(d.CourseCounts)
			courseIndex[key] = idx
			d.CourseCounts = append(d.CourseCounts, CourseCount{Course: key})
		}
		if inWeek {
			d.CourseCounts[idx].Count++
		}
	}

	if focus, ok := SuggestedFocus(st.Tasks, st.Completions, today); ok {
		d.Focus = &focus
	}
	return d
}

// Percentage rounds completed/total to a whole percent, 0 when total is 0.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// CourseKey keeps the first two words of a course label ("MAT 302 - Discrete"
// becomes "MAT 302").
func CourseKey(course string) string {
	fields := strings.Fields(course)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return strings.Join(fields, " ")
}

// SuggestedFocus picks the incomplete task due today or later with the best
// score (quizzes and high priority first), breaking ties by due date.
func SuggestedFocus(tasks []model.Task, done model.Completions, today time.Time) (model.Task, bool) {
	todayStr := model.FormatDate(today)
	var candidates []model.Task
	for _, task := range tasks {
		if task.DueDate >= todayStr && !done.Done(task.ID, task.DueDate) {
			candidates = append(candidates, task)
		}
	}
	if len(candidates) == 0 {
		return model.Task{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := focusScore(candidates[i]), focusScore(candidates[j])
		if si != sj {
			return si < sj
		}
		return candidates[i].DueDate < candidates[j].DueDate
	})
	return candidates[0], true
}

func focusScore(t model.Task) int {
	score := 0
	if t.Type != model.TaskQuiz {
		score++
	}
	if t.Priority != model.PriorityHigh {
		score += 2
	}
	return score
}

// UpcomingTask is a task entry of the upcoming list.
type UpcomingTask struct {
	model.Task
	Overdue bool `json:"overdue"`
}

// Upcoming lists incomplete tasks that are overdue or due within 30 days,
// optionally restricted to one type, ordered by due date.
func Upcoming(tasks []model.Task, done model.Completions, today time.Time, filter model.TaskType) []UpcomingTask {
	todayStr := model.FormatDate(today)
	horizon := model.FormatDate(model.StartOfDay(today).AddDate(0, 0, upcomingHorizonDays))
	out := []UpcomingTask{}
	for _, task := range tasks {
		if filter != "" && task.Type != filter {
			continue
		}
		if done.Done(task.ID, task.DueDate) {
			continue
		}
		overdue := task.DueDate < todayStr
		if !overdue && task.DueDate > horizon {
			continue
		}
		out = append(out, UpcomingTask{Task: task, Overdue: overdue})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	return out
}

// Workload rates how busy a day is.
type Workload string

const (
	WorkloadLight  Workload = "light"
	WorkloadNormal Workload = "normal"
	WorkloadHeavy  Workload = "heavy"
)

// WeekDay is one column of the week view.
type WeekDay struct {
	Date      string          `json:"date"`
	Weekday   string          `json:"weekday"`
	Items     []model.DayItem `json:"items"`
	TaskCount int             `json:"taskCount"`
	Workload  Workload        `json:"workload"`
}

// WeekStart returns the Sunday that starts the week containing date.
func WeekStart(date time.Time) time.Time {
	day := model.StartOfDay(date)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Week builds the seven days of the week containing date.
func Week(date time.Time, st model.State, sem Semester) []WeekDay {
	start := WeekStart(date)
	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		items := ItemsForDate(d, st.Routine, st.StudyBlocks, st.Tasks, sem)
		count := 0
		for _, item := range items {
			switch item.Type {
			case model.ItemAssignment, model.ItemQuiz, model.ItemProject:
				count++
			}
		}
		days = append(days, WeekDay{
			Date:      model.FormatDate(d),
			Weekday:   model.WeekdayName(d),
			Items:     items,
			TaskCount: count,
			Workload:  workloadFor(count),
		})
	}
	return days
}

func workloadFor(taskCount int) Workload {
	switch {
	case taskCount >= 5:
		return WorkloadHeavy
	case taskCount <= 1:
		return WorkloadLight
	default:
		return WorkloadNormal
	}
}

// Briefing is the morning overview.
type Briefing struct {
	Date     string          `json:"date"`
	WakeTime string          `json:"wakeTime,omitempty"`
	Schedule []model.DayItem `json:"schedule"`
	Focus    *model.Task     `json:"focus,omitempty"`
	Week     []model.Task    `json:"week"`
}

// BuildBriefing collects today's first items, the focus pick and the next
// tasks due within the week.
func BuildBriefing(today time.Time, st model.State, sem Semester) Briefing {
	todayStr := model.FormatDate(today)
	weekEnd := model.FormatDate(model.StartOfDay(today).AddDate(0, 0, weekHorizonDays))

	items := ItemsForDate(today, st.Routine, st.StudyBlocks, st.Tasks, sem)
	SortForDisplay(items, todayStr, st.Completions)
	if len(items) > briefingScheduleMax {
		items = items[:briefingScheduleMax]
	}

	week := []model.Task{}
	for _, task := range st.Tasks {
		if task.DueDate > todayStr && task.DueDate <= weekEnd {
			week = append(week, task)
		}
	}
	sort.SliceStable(week, func(i, j int) bool { return week[i].DueDate < week[j].DueDate })
	if len(week) > briefingWeekMax {
		week = week[:briefingWeekMax]
	}

	b := Briefing{Date: todayStr, WakeTime: st.Routine.WakeTime, Schedule: items, Week: week}
	if focus, ok := SuggestedFocus(st.Tasks, st.Completions, today); ok {
		b.Focus = &focus
	}
	return b
}
