package planner

import (
	"time"

	"study-planner/internal/model"
)

// endOfDayTime is the deadline of tasks without a time of day.
const endOfDayTime = "23:59"

// Deadline returns the moment task is due in loc.
func Deadline(task model.Task, loc *time.Location) (time.Time, bool) {
	clock := task.Time
	if !model.ValidTime(clock) {
		clock = endOfDayTime
	}
	t, err := time.ParseInLocation(model.DateLayout+" "+model.TimeLayout, task.DueDate+" "+clock, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DueReminders returns the tasks whose reminder moment (deadline minus lead)
// falls within the last tick before now, i.e. lead-tick < deadline-now <= lead.
// Deadlines are read in now's location.
func DueReminders(now time.Time, tasks []model.Task, lead, tick time.Duration) []model.Task {
	var due []model.Task
	for _, task := range tasks {
		deadline, ok := Deadline(task, now.Location())
		if !ok {
			continue
		}
		left := deadline.Sub(now)
		if left > 0 && left <= lead && left > lead-tick {
			due = append(due, task)
		}
	}
	return due
}

// NotificationKey marks a reminder as sent for one task occurrence.
func NotificationKey(task model.Task) string {
	return "notified_" + task.ID + "_" + task.DueDate
}
