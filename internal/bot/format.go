package bot

import (
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/service"
)

func escape(s string) string {
	return html.EscapeString(s)
}

func shortTitle(title string, maxLen int) string {
	clean := strings.TrimSpace(strings.ReplaceAll(title, "\n", " "))
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func itemIcon(t model.ItemType) string {
	switch t {
	case model.ItemRoutine:
		return "🏃"
	case model.ItemStudyBlock:
		return "📚"
	case model.ItemClassSession:
		return "🏫"
	case model.ItemAssignment:
		return "📝"
	case model.ItemQuiz:
		return "❓"
	case model.ItemProject:
		return "📁"
	default:
		return "🔹"
	}
}

func formatDay(view service.DayView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 <b>%s, %s</b>\n", capitalize(view.Weekday), escape(service.ShortDate(view.Date))))
	if view.WakeTime != "" {
		b.WriteString(fmt.Sprintf("⏰ Wake up %s\n", model.Clock12(view.WakeTime)))
	}
	b.WriteString(fmt.Sprintf("Done %d/%d (%d%%)\n\n", view.Completed, view.Total, planner.Percentage(view.Completed, view.Total)))

	if len(view.Items) == 0 {
		b.WriteString("Nothing planned.")
		return b.String()
	}
	for _, entry := range view.Items {
		b.WriteString(formatEntry(entry))
	}
	return strings.TrimSpace(b.String())
}

func formatEntry(entry service.DayEntry) string {
	var b strings.Builder
	name := escape(entry.Name)
	if entry.Completed {
		name = "<s>" + name + "</s>"
	}
	if entry.Priority == model.PriorityHigh {
		name += " 🔥"
	}
	clock := ""
	if entry.Time != "" {
		clock = model.Clock12(entry.Time) + " · "
	}
	b.WriteString(fmt.Sprintf("%s %s%s\n", itemIcon(entry.Type), clock, name))
	if entry.Description != "" {
		b.WriteString(fmt.Sprintf("   <i>%s</i>\n", escape(entry.Description)))
	}
	return b.String()
}

func formatWeek(days []planner.WeekDay, today string) string {
	var b strings.Builder
	b.WriteString("🗓 <b>Week</b>\n")
	for _, day := range days {
		marker := ""
		if day.Date == today {
			marker = " ◀️"
		}
		b.WriteString(fmt.Sprintf("\n<b>%s %s</b> · %s%s\n", capitalize(day.Weekday[:3]), escape(service.ShortDate(day.Date)), workloadLabel(day.Workload), marker))
		if len(day.Items) == 0 {
			b.WriteString("   free\n")
			continue
		}
		for _, item := range day.Items {
			b.WriteString(fmt.Sprintf("   %s %s\n", itemIcon(item.Type), escape(shortTitle(item.Name, 40))))
		}
	}
	return strings.TrimSpace(b.String())
}

func workloadLabel(w planner.Workload) string {
	switch w {
	case planner.WorkloadHeavy:
		return "🔴 heavy"
	case planner.WorkloadNormal:
		return "🟡 normal"
	default:
		return "🟢 light"
	}
}

func formatDashboard(d planner.Dashboard) string {
	var b strings.Builder
	b.WriteString("📊 <b>Dashboard</b>\n")
	b.WriteString(fmt.Sprintf("Today: %d/%d done (%d%%)\n", d.Completed, d.Total, d.Percentage))
	b.WriteString(fmt.Sprintf("Due today: %d\n", d.DueToday))
	b.WriteString(fmt.Sprintf("Due this week: %d\n", d.DueThisWeek))
	if d.Overdue > 0 {
		b.WriteString(fmt.Sprintf("⚠️ Overdue: %d\n", d.Overdue))
	}
	if len(d.CourseCounts) > 0 {
		b.WriteString("\n<b>By course (7 days)</b>\n")
		for _, cc := range d.CourseCounts {
			b.WriteString(fmt.Sprintf("• %s: %d\n", escape(cc.Course), cc.Count))
		}
	}
	if d.Focus != nil {
		b.WriteString(fmt.Sprintf("\n🎯 <b>Focus:</b> %s\n", formatTaskLine(*d.Focus)))
	}
	return strings.TrimSpace(b.String())
}

func formatBriefing(br planner.Briefing) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("☀️ <b>Good morning!</b> %s\n", escape(service.ShortDate(br.Date))))
	if br.WakeTime != "" {
		b.WriteString(fmt.Sprintf("Wake up %s\n", model.Clock12(br.WakeTime)))
	}
	b.WriteString("\n<b>Today</b>\n")
	if len(br.Schedule) == 0 {
		b.WriteString("Nothing scheduled.\n")
	}
	for _, item := range br.Schedule {
		clock := ""
		if item.Time != "" {
			clock = model.Clock12(item.Time) + " · "
		}
		b.WriteString(fmt.Sprintf("%s %s%s\n", itemIcon(item.Type), clock, escape(item.Name)))
	}
	if br.Focus != nil {
		b.WriteString(fmt.Sprintf("\n🎯 <b>Focus:</b> %s\n", formatTaskLine(*br.Focus)))
	}
	if len(br.Week) > 0 {
		b.WriteString("\n<b>Coming up</b>\n")
		for _, task := range br.Week {
			b.WriteString(fmt.Sprintf("• %s\n", formatTaskLine(task)))
		}
	}
	return strings.TrimSpace(b.String())
}

func formatUpcoming(tasks []planner.UpcomingTask) string {
	if len(tasks) == 0 {
		return "🎉 Nothing due in the next 30 days."
	}
	var b strings.Builder
	b.WriteString("⏳ <b>Upcoming</b>\n")
	for _, t := range tasks {
		icon := itemIcon(model.ItemType(t.Type))
		if t.Overdue {
			icon = "⚠️"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", icon, formatTaskLine(t.Task)))
	}
	return strings.TrimSpace(b.String())
}

func formatTaskLine(task model.Task) string {
	line := fmt.Sprintf("%s · %s", escape(task.Name), escape(service.ShortDate(task.DueDate)))
	if task.Time != "" {
		line += " " + model.Clock12(task.Time)
	}
	if task.Course != "" {
		line += fmt.Sprintf(" (%s)", escape(task.Course))
	}
	return line
}

func formatTaskSaved(task model.Task) string {
	var b strings.Builder
	b.WriteString("✅ <b>Task saved</b>\n")
	b.WriteString(fmt.Sprintf("• <b>Name:</b> %s\n", escape(task.Name)))
	b.WriteString(fmt.Sprintf("• <b>Type:</b> %s\n", task.Type))
	b.WriteString(fmt.Sprintf("• <b>Due:</b> %s", escape(task.DueDate)))
	if task.Time != "" {
		b.WriteString(" " + model.Clock12(task.Time))
	}
	b.WriteByte('\n')
	if task.Priority == model.PriorityHigh {
		b.WriteString("• <b>Priority:</b> high\n")
	}
	if task.Description != "" {
		b.WriteString(fmt.Sprintf("• <b>Notes:</b> %s\n", escape(task.Description)))
	}
	return strings.TrimSpace(b.String())
}

func formatRoutine(r model.Routine) string {
	var b strings.Builder
	b.WriteString("🔁 <b>Routine</b>\n")
	if r.WakeTime != "" {
		b.WriteString(fmt.Sprintf("• Wake up: %s\n", model.Clock12(r.WakeTime)))
	} else {
		b.WriteString("• Wake up: off\n")
	}
	if r.Workout.Enabled {
		b.WriteString(fmt.Sprintf("• Workout: %s at %s\n", formatDays(r.Workout.Days), model.Clock12(r.Workout.Time)))
	} else {
		b.WriteString("• Workout: off\n")
	}
	if r.Tennis.Enabled {
		b.WriteString(fmt.Sprintf("• Tennis: %s at %s\n", capitalize(r.TennisDay()), model.Clock12(r.Tennis.Time)))
	} else {
		b.WriteString("• Tennis: off\n")
	}
	if r.Notifications.Enabled {
		b.WriteString(fmt.Sprintf("• Reminders: %d min before deadlines\n", r.ReminderLead()))
	} else {
		b.WriteString("• Reminders: off\n")
	}
	return strings.TrimSpace(b.String())
}

func formatDays(days []string) string {
	short := make([]string, 0, len(days))
	for _, d := range days {
		if len(d) >= 3 {
			d = d[:3]
		}
		short = append(short, capitalize(d))
	}
	return strings.Join(short, "/")
}

func formatStudyBlocks(blocks []model.StudyBlock) string {
	var b strings.Builder
	b.WriteString("📚 <b>Study blocks</b>\n")
	for _, block := range blocks {
		b.WriteString(fmt.Sprintf("• <b>%s</b> %s\n", escape(block.Course), formatBlockSchedule(block)))
	}
	return strings.TrimSpace(b.String())
}

func formatBlockSchedule(block model.StudyBlock) string {
	return fmt.Sprintf("%s %s - %s", formatDays(block.Days), model.Clock12(block.StartTime), model.Clock12(block.EndTime))
}

const (
	// messageMaxLen is Telegram's limit on the text of one message. Emoji
	// count twice there, so the preview keeps some headroom.
	messageMaxLen       = 4096
	previewMaxLen       = messageMaxLen - 96
	candidatePreviewMax = 25
)

func formatCandidates(tasks []model.Task) string {
	const footer = "\nAdd them all?"
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔎 <b>Found %d items</b>\n", len(tasks)))
	size := utf8.RuneCountInString(b.String()) + utf8.RuneCountInString(footer)
	for i, task := range tasks {
		line := fmt.Sprintf("%s %s · %s\n", itemIcon(model.ItemType(task.Type)), escape(task.Name), escape(task.DueDate))
		rest := fmt.Sprintf("…and %d more\n", len(tasks)-i)
		n := utf8.RuneCountInString(line)
		if i >= candidatePreviewMax || size+n+utf8.RuneCountInString(rest) > previewMaxLen {
			b.WriteString(rest)
			break
		}
		b.WriteString(line)
		size += n
	}
	b.WriteString(footer)
	return b.String()
}
