package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/service"
)

// executeCommand runs the root command against a fresh database and returns
// its output.
func executeCommand(t *testing.T, dbPath, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TZ_NAME", "UTC")
	t.Setenv("PLANNER_CALENDAR", "")

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--db", dbPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "planner.db")
}

func TestDayCommand(t *testing.T) {
	out, err := executeCommand(t, testDB(t), "", "day", "2026-01-26")
	if err != nil {
		t.Fatalf("day: %v\n%s", err, out)
	}
	for _, want := range []string{"Monday 2026-01-26", "wake up 7:00 AM", "0/1 done", "Workout", "MAT 302 - Discrete Math"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDayCommand_InvalidDate(t *testing.T) {
	if _, err := executeCommand(t, testDB(t), "", "day", "26/01/2026"); err == nil {
		t.Fatal("expected an error for a malformed date")
	}
}

func TestLoadThenUpcoming(t *testing.T) {
	db := testDB(t)

	out, err := executeCommand(t, db, "", "load", "MAT302")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.HasPrefix(out, "Loaded ") || !strings.Contains(out, "MAT 302") {
		t.Fatalf("load output = %q", out)
	}

	out, err = executeCommand(t, db, "", "upcoming", "--type", "quiz", "--on", "2026-01-21")
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if !strings.Contains(out, "quiz") || strings.Contains(out, "assignment") {
		t.Fatalf("upcoming output:\n%s", out)
	}

	if _, err := executeCommand(t, db, "", "load", "NOPE1"); err == nil {
		t.Fatal("expected an error for an unknown course")
	}
}

func TestUpcoming_UnknownType(t *testing.T) {
	if _, err := executeCommand(t, testDB(t), "", "upcoming", "--type", "essay"); err == nil {
		t.Fatal("expected an error for an unknown type")
	}
}

func TestExtractCommand(t *testing.T) {
	db := testDB(t)
	syllabus := "Week 1\nQuiz 1 Jan 30\nHomework 1.2 due 2/2\n"

	out, err := executeCommand(t, db, syllabus, "extract", "--course", "MAT 302")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(out, "Found 2 items") || strings.Contains(out, "Saved") {
		t.Fatalf("extract output:\n%s", out)
	}

	file := filepath.Join(t.TempDir(), "syllabus.txt")
	if err := os.WriteFile(file, []byte(syllabus), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = executeCommand(t, db, "", "extract", "--course", "MAT 302", "--file", file, "--save")
	if err != nil {
		t.Fatalf("extract --save: %v", err)
	}
	if !strings.Contains(out, "Saved 2 tasks for MAT 302.") {
		t.Fatalf("extract --save output:\n%s", out)
	}

	out, _ = executeCommand(t, db, "", "day", "2026-01-30")
	if !strings.Contains(out, "Quiz 1") {
		t.Fatalf("saved quiz missing from its due date:\n%s", out)
	}
}

func TestExtractCommand_NothingFound(t *testing.T) {
	out, err := executeCommand(t, testDB(t), "Welcome to class", "extract", "--course", "MAT 302", "--save")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if out != "No assignments found.\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestExtractCommand_RequiresCourse(t *testing.T) {
	if _, err := executeCommand(t, testDB(t), "Quiz 1 Jan 30", "extract"); err == nil {
		t.Fatal("expected an error without --course")
	}
}

func TestWeekAndDashboardCommands(t *testing.T) {
	db := testDB(t)
	out, err := executeCommand(t, db, "", "week", "2026-01-28")
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if !strings.Contains(out, "Week of 2026-01-25") || !strings.Contains(out, "Saturday 2026-01-31") {
		t.Fatalf("week output:\n%s", out)
	}

	out, err = executeCommand(t, db, "", "dashboard", "--on", "2026-01-26")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !strings.Contains(out, "Dashboard 2026-01-26") || !strings.Contains(out, "Today       0/1 (0%)") {
		t.Fatalf("dashboard output:\n%s", out)
	}
}

func TestRenderDay_Marks(t *testing.T) {
	view := service.DayView{
		Date:      "2026-01-26",
		Weekday:   "monday",
		Completed: 1,
		Total:     1,
		Items: []service.DayEntry{
			{DayItem: model.DayItem{Name: "MAT 302", Type: model.ItemClassSession, Time: "10:00"}},
			{DayItem: model.DayItem{ID: model.WorkoutID, Name: "Workout", Type: model.ItemRoutine, Time: "08:00"}, Completed: true, Completable: true},
		},
	}
	out := renderDay(view)
	if !strings.Contains(out, "[x] 8:00 AM") {
		t.Errorf("completed routine not marked:\n%s", out)
	}
	if strings.Contains(out, "[ ] 10:00 AM") {
		t.Errorf("class session should have no checkbox:\n%s", out)
	}
	if !strings.Contains(out, "1/1 done (100%)") {
		t.Errorf("progress line missing:\n%s", out)
	}
}

func TestRenderUpcoming_Empty(t *testing.T) {
	if got := renderUpcoming(nil); got != "Nothing due in the next 30 days.\n" {
		t.Fatalf("renderUpcoming(nil) = %q", got)
	}
	got := renderUpcoming([]planner.UpcomingTask{{Task: model.Task{Name: "Quiz 1", DueDate: "2026-01-30", Type: model.TaskQuiz}, Overdue: true}})
	if !strings.Contains(got, "overdue") || !strings.Contains(got, "Quiz 1") {
		t.Fatalf("renderUpcoming = %q", got)
	}
}
