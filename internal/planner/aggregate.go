package planner

import (
	"fmt"
	"sort"
	"time"

	"study-planner/internal/model"
)

// latestTime stands in for items without a time of day when sorting.
const latestTime = "23:59"

// ItemsForDate returns everything scheduled on date in emission order:
// workout, tennis, study blocks, class sessions, then tasks due that day.
func ItemsForDate(date time.Time, routine model.Routine, blocks []model.StudyBlock, tasks []model.Task, sem Semester) []model.DayItem {
	dateStr := model.FormatDate(date)
	day := model.WeekdayName(date)
	items := make([]model.DayItem, 0, 8)

	if routine.Workout.Enabled && routine.HasWorkoutOn(day) {
		items = append(items, model.DayItem{
			ID:          model.WorkoutID,
			Name:        "Workout",
			Type:        model.ItemRoutine,
			Time:        routine.Workout.Time,
			Description: "Daily workout session",
		})
	}

	if routine.Tennis.Enabled && routine.TennisDay() == day {
		items = append(items, model.DayItem{
			ID:          model.TennisID,
			Name:        "Tennis",
			Type:        model.ItemRoutine,
			Time:        routine.Tennis.Time,
			Description: "Weekly tennis session",
		})
	}

	items = append(items, studyItems(day, blocks)...)
	items = append(items, sem.SessionsOn(date)...)

	for _, task := range tasks {
		if task.DueDate == dateStr {
			items = append(items, task.DayItem())
		}
	}
	return items
}

func studyItems(day string, blocks []model.StudyBlock) []model.DayItem {
	var items []model.DayItem
	for _, block := range blocks {
		if !block.MeetsOn(day) {
			continue
		}
		items = append(items, model.DayItem{
			ID:          block.ID,
			Name:        block.Course + " Study",
			Type:        model.ItemStudyBlock,
			Time:        block.StartTime,
			Description: fmt.Sprintf("%s - %s", model.Clock12(block.StartTime), model.Clock12(block.EndTime)),
			Course:      block.Course,
		})
	}
	return items
}

// IsCompleted looks up the occurrence of item on date.
func IsCompleted(item model.DayItem, date string, done model.Completions) bool {
	if !item.Completable() {
		return false
	}
	return done.Done(item.CompletionID(), date)
}

// SortForDisplay orders items in place: incomplete first, then by time of
// day with untimed items last. Equal keys keep emission order.
func SortForDisplay(items []model.DayItem, date string, done model.Completions) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := IsCompleted(items[i], date, done), IsCompleted(items[j], date, done)
		if ci != cj {
			return !ci
		}
		return sortTime(items[i]) < sortTime(items[j])
	})
}

func sortTime(item model.DayItem) string {
	if item.Time == "" {
		return latestTime
	}
	return item.Time
}

// CountCompleted returns how many completable items are done and how many
// completable items there are.
func CountCompleted(items []model.DayItem, date string, done model.Completions) (completed, total int) {
	for _, item := range items {
		if !item.Completable() {
			continue
		}
		total++
		if IsCompleted(item, date, done) {
			completed++
		}
	}
	return completed, total
}
