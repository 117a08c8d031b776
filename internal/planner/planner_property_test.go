package planner

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"study-planner/internal/model"
)

func drawDate(t *rapid.T, label string) time.Time {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	offset := rapid.IntRange(0, 580).Draw(t, label)
	return base.AddDate(0, 0, offset)
}

func drawClock(t *rapid.T, label string) string {
	h := rapid.IntRange(0, 23).Draw(t, label+"-hour")
	m := rapid.IntRange(0, 59).Draw(t, label+"-minute")
	return fmt.Sprintf("%02d:%02d", h, m)
}

// TestProperty_NoClassSessionsOutsideTerm verifies that dates outside the
// semester or inside the break never yield class sessions.
func TestProperty_NoClassSessionsOutsideTerm(t *testing.T) {
	sem := DefaultCalendar().Semester
	rapid.Check(t, func(t *rapid.T) {
		date := drawDate(t, "date")
		dateStr := model.FormatDate(date)
		outside := dateStr < sem.Start || dateStr > sem.End ||
			(dateStr >= sem.BreakStart && dateStr <= sem.BreakEnd)

		sessions := 0
		for _, item := range ItemsForDate(date, model.DefaultRoutine(), nil, nil, sem) {
			if item.Type == model.ItemClassSession {
				sessions++
			}
		}
		if outside && sessions != 0 {
			t.Fatalf("%s: %d class sessions outside the term", dateStr, sessions)
		}
	})
}

// TestProperty_ThursdayHasOneTennis verifies that every Thursday with tennis
// enabled has exactly one tennis item at the configured time.
func TestProperty_ThursdayHasOneTennis(t *testing.T) {
	sem := DefaultCalendar().Semester
	rapid.Check(t, func(t *rapid.T) {
		date := drawDate(t, "date")
		for date.Weekday() != time.Thursday {
			date = date.AddDate(0, 0, 1)
		}
		routine := model.DefaultRoutine()
		routine.Tennis.Time = drawClock(t, "tennis")

		var tennis []model.DayItem
		for _, item := range ItemsForDate(date, routine, nil, nil, sem) {
			if item.ID == model.TennisID {
				tennis = append(tennis, item)
			}
		}
		if len(tennis) != 1 {
			t.Fatalf("%s: got %d tennis items, want 1", model.FormatDate(date), len(tennis))
		}
		if tennis[0].Time != routine.Tennis.Time {
			t.Fatalf("tennis time = %s, want %s", tennis[0].Time, routine.Tennis.Time)
		}
	})
}

// TestProperty_SortForDisplayIsPermutation verifies that display ordering
// keeps every item and puts incomplete ones first.
func TestProperty_SortForDisplayIsPermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		items := make([]model.DayItem, n)
		done := model.Completions{}
		for i := range items {
			items[i] = model.DayItem{ID: fmt.Sprintf("i%d", i), Name: fmt.Sprintf("item %d", i), Type: model.ItemOther}
			if rapid.Bool().Draw(t, fmt.Sprintf("timed-%d", i)) {
				items[i].Time = drawClock(t, fmt.Sprintf("time-%d", i))
			}
			if rapid.Bool().Draw(t, fmt.Sprintf("done-%d", i)) {
				done[model.CompletionKey(items[i].ID, "2026-02-02")] = true
			}
		}

		sorted := append([]model.DayItem{}, items...)
		SortForDisplay(sorted, "2026-02-02", done)

		if len(sorted) != len(items) {
			t.Fatalf("length changed: %d -> %d", len(items), len(sorted))
		}
		seenDone := false
		for _, item := range sorted {
			isDone := IsCompleted(item, "2026-02-02", done)
			if seenDone && !isDone {
				t.Fatalf("incomplete item %q after a completed one", item.Name)
			}
			seenDone = seenDone || isDone
		}
	})
}

// TestProperty_ExtractIsDeterministic verifies that extraction yields the same
// names, dates and types for the same input.
func TestProperty_ExtractIsDeterministic(t *testing.T) {
	keywords := []string{"HW", "Quiz", "Lab", "Project", "Midterm", "Reading", "Exam"}
	monthNames := []string{"Jan", "Feb", "March", "Apr", "Sept", "Dec", "Foo"}

	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) string {
			kw := rapid.SampledFrom(keywords).Draw(t, "keyword")
			num := rapid.IntRange(1, 20).Draw(t, "number")
			if rapid.Bool().Draw(t, "numeric") {
				return fmt.Sprintf("%s %d due %d/%d", kw, num,
					rapid.IntRange(0, 14).Draw(t, "month"), rapid.IntRange(0, 33).Draw(t, "day"))
			}
			return fmt.Sprintf("%s %d %s %d", kw, num,
				rapid.SampledFrom(monthNames).Draw(t, "monthName"), rapid.IntRange(0, 33).Draw(t, "day"))
		}), 0, 8).Draw(t, "lines")
		text := strings.Join(lines, "\n")

		first := NewExtractor(2026, sequentialIDs()).Extract(text, "MAT 302")
		second := NewExtractor(2026, func() string { return "other" }).Extract(text, "MAT 302")
		if len(first) != len(second) {
			t.Fatalf("candidate counts differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			a, b := first[i], second[i]
			if a.Name != b.Name || a.DueDate != b.DueDate || a.Type != b.Type {
				t.Fatalf("candidate %d differs: %+v vs %+v", i, a, b)
			}
			if _, err := time.Parse(model.DateLayout, a.DueDate); err != nil {
				t.Fatalf("candidate %d has invalid date %q", i, a.DueDate)
			}
		}
	})
}
