package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/service"
)

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	lightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	normalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	heavyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	timeColWidth = 9
	typeColWidth = 13
)

func renderDay(view service.DayView) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", capitalize(view.Weekday), view.Date)))
	b.WriteString("\n")
	if view.WakeTime != "" {
		b.WriteString(dimStyle.Render("wake up " + model.Clock12(view.WakeTime)))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%d/%d done (%d%%)\n\n", view.Completed, view.Total, planner.Percentage(view.Completed, view.Total)))

	if len(view.Items) == 0 {
		b.WriteString(dimStyle.Render("nothing planned"))
		b.WriteString("\n")
		return b.String()
	}
	for _, entry := range view.Items {
		mark := "[ ]"
		switch {
		case !entry.Completable:
			mark = "   "
		case entry.Completed:
			mark = "[x]"
		}
		name := entry.Name
		switch {
		case entry.Completed:
			name = doneStyle.Render(name)
		case entry.Priority == model.PriorityHigh:
			name = highStyle.Render(name)
		}
		clock := ""
		if entry.Time != "" {
			clock = model.Clock12(entry.Time)
		}
		b.WriteString(fmt.Sprintf("%s %-*s %-*s %s", mark, timeColWidth, clock, typeColWidth, entry.Type, name))
		if entry.Description != "" {
			b.WriteString(" " + dimStyle.Render(entry.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderWeek(days []planner.WeekDay) string {
	var b strings.Builder
	if len(days) > 0 {
		b.WriteString(titleStyle.Render("Week of " + days[0].Date))
		b.WriteString("\n")
	}
	for _, day := range days {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s", capitalize(day.Weekday), day.Date)))
		b.WriteString(" " + workloadStyle(day.Workload).Render(string(day.Workload)))
		b.WriteString("\n")
		for _, item := range day.Items {
			clock := ""
			if item.Time != "" {
				clock = model.Clock12(item.Time)
			}
			b.WriteString(fmt.Sprintf("  %-*s %s\n", timeColWidth, clock, item.Name))
		}
	}
	return b.String()
}

func workloadStyle(w planner.Workload) lipgloss.Style {
	switch w {
	case planner.WorkloadHeavy:
		return heavyStyle
	case planner.WorkloadNormal:
		return normalStyle
	default:
		return lightStyle
	}
}

func renderDashboard(d planner.Dashboard) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard " + d.Date))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Today       %d/%d (%d%%)\n", d.Completed, d.Total, d.Percentage))
	b.WriteString(fmt.Sprintf("Due today   %d\n", d.DueToday))
	b.WriteString(fmt.Sprintf("This week   %d\n", d.DueThisWeek))
	overdue := fmt.Sprintf("Overdue     %d", d.Overdue)
	if d.Overdue > 0 {
		overdue = overdueStyle.Render(overdue)
	}
	b.WriteString(overdue + "\n")

	if len(d.CourseCounts) > 0 {
		b.WriteString("\n" + headerStyle.Render("By course") + "\n")
		for _, cc := range d.CourseCounts {
			b.WriteString(fmt.Sprintf("  %-12s %d\n", cc.Course, cc.Count))
		}
	}
	if d.Focus != nil {
		b.WriteString("\n" + headerStyle.Render("Focus") + "\n")
		b.WriteString("  " + taskLine(*d.Focus) + "\n")
	}
	return b.String()
}

func renderUpcoming(tasks []planner.UpcomingTask) string {
	if len(tasks) == 0 {
		return "Nothing due in the next 30 days.\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Upcoming (%d)", len(tasks))))
	b.WriteString("\n")
	for _, t := range tasks {
		line := taskLine(t.Task)
		if t.Overdue {
			line = overdueStyle.Render("overdue ") + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderCandidates(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No assignments found.\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Found %d items", len(tasks))))
	b.WriteString("\n")
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("%s  %-*s %s\n", t.DueDate, typeColWidth, t.Type, t.Name))
	}
	return b.String()
}

func taskLine(t model.Task) string {
	line := fmt.Sprintf("%s  %-*s %s", t.DueDate, typeColWidth, t.Type, t.Name)
	if t.Course != "" {
		line += " " + dimStyle.Render("("+t.Course+")")
	}
	if t.Priority == model.PriorityHigh {
		line += " " + highStyle.Render("!")
	}
	return line
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
