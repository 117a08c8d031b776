package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
)

type testEnv struct {
	db      *gorm.DB
	entries *repository.EntryRepository
	store   *Store
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	entries := repository.NewEntryRepository(db)
	store := NewStore(repository.NewStateRepository(entries), sequentialIDs())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return &testEnv{db: db, entries: entries, store: store}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := model.ParseDate(value, time.UTC)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", value, err)
	}
	return d
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, title, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, title+": "+body)
	return nil
}

func TestStore_FailedUpdateLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())

	if _, err := tasks.CreateTask(ctx, TaskInput{Name: "HW 1", DueDate: "2026-02-02"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	boom := errors.New("boom")
	err := env.store.Update(ctx, repository.SlotTasks, func(st *model.State) error {
		st.Tasks = nil
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want boom", err)
	}
	if got := len(tasks.ListTasks()); got != 1 {
		t.Fatalf("got %d tasks after a failed mutation, want 1", got)
	}

	sqlDB, err := env.db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.Close()
	if _, err := tasks.CreateTask(ctx, TaskInput{Name: "HW 2", DueDate: "2026-02-03"}); err == nil {
		t.Fatal("expected a save error on a closed database")
	}
	if got := len(tasks.ListTasks()); got != 1 {
		t.Fatalf("got %d tasks after a failed save, want 1", got)
	}
}

func TestStore_PersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	if _, err := tasks.CreateTask(ctx, TaskInput{Name: "Quiz 1", DueDate: "2026-02-05", Type: model.TaskQuiz, Priority: "HIGH"}); err != nil {
		t.Fatal(err)
	}

	reloaded := NewStore(repository.NewStateRepository(env.entries), sequentialIDs())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := reloaded.Snapshot().Tasks
	if len(got) != 1 || got[0].Priority != model.PriorityHigh || got[0].Type != model.TaskQuiz {
		t.Fatalf("reloaded tasks = %+v", got)
	}
}

func TestStore_LoadAssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	legacy := `[{"name":"Old HW","dueDate":"2026-02-02","type":"assignment"}]`
	if err := env.entries.Put(ctx, repository.KeyTasks, legacy); err != nil {
		t.Fatal(err)
	}

	store := NewStore(repository.NewStateRepository(env.entries), func() string { return "fresh" })
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if id := store.Snapshot().Tasks[0].ID; id != "fresh" {
		t.Fatalf("ID = %q, want fresh", id)
	}
	raw, _, _ := env.entries.Get(ctx, repository.KeyTasks)
	if raw == legacy {
		t.Fatal("assigned identifier was not written back")
	}
}

func TestTaskService_Validation(t *testing.T) {
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())

	inputs := map[string]TaskInput{
		"no name":      {DueDate: "2026-02-02"},
		"no due date":  {Name: "HW"},
		"bad due date": {Name: "HW", DueDate: "2026-02-30"},
		"bad time":     {Name: "HW", DueDate: "2026-02-02", Time: "25:00"},
		"bad type":     {Name: "HW", DueDate: "2026-02-02", Type: "essay"},
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := tasks.CreateTask(context.Background(), input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
	if n := len(tasks.ListTasks()); n != 0 {
		t.Fatalf("invalid input created %d tasks", n)
	}
}

func TestTaskService_AddTasksRejectsWholeBatch(t *testing.T) {
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())

	_, err := tasks.AddTasks(context.Background(), []model.Task{
		{Name: "Quiz 1", DueDate: "2026-02-05", Type: model.TaskQuiz},
		{Name: "", DueDate: "2026-02-06"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if n := len(tasks.ListTasks()); n != 0 {
		t.Fatalf("partial batch stored %d tasks", n)
	}
}

func TestTaskService_DeleteTaskPurgesCompletions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	completions := NewCompletionService(env.store)
	schedule := NewScheduleService(env.store, planner.Semester{}, time.UTC)

	task, err := tasks.CreateTask(ctx, TaskInput{Name: "HW 3.1", DueDate: "2026-02-02", Type: model.TaskAssignment})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := completions.Toggle(ctx, task.ID, task.DueDate); err != nil {
		t.Fatal(err)
	}

	removed, err := tasks.DeleteTask(ctx, task.ID)
	if err != nil || removed.ID != task.ID {
		t.Fatalf("DeleteTask = %+v, %v", removed, err)
	}
	if completions.IsDone(task.ID, task.DueDate) {
		t.Error("completion survived task deletion")
	}
	for _, entry := range schedule.Day(mustDate(t, "2026-02-02")).Items {
		if entry.ID == task.ID {
			t.Error("deleted task still shown on its due date")
		}
	}

	if _, err := tasks.DeleteTask(ctx, task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestCompletionService_ToggleTwice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	completions := NewCompletionService(env.store)

	done, err := completions.Toggle(ctx, model.WorkoutID, "2026-01-26")
	if err != nil || !done {
		t.Fatalf("first toggle = %v, %v", done, err)
	}
	done, err = completions.Toggle(ctx, model.WorkoutID, "2026-01-26")
	if err != nil || done {
		t.Fatalf("second toggle = %v, %v", done, err)
	}
	if completions.IsDone(model.WorkoutID, "2026-01-26") {
		t.Fatal("item still done after toggling twice")
	}

	if _, err := completions.Toggle(ctx, "", "2026-01-26"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty id err = %v", err)
	}
	if _, err := completions.Toggle(ctx, model.WorkoutID, "26/01/2026"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad date err = %v", err)
	}
}

func TestCourseService_LoadTwiceKeepsOneCopy(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	cal := planner.DefaultCalendar()
	courses := NewCourseService(env.store, cal, sequentialIDs())
	completions := NewCompletionService(env.store)

	course, n, err := courses.LoadCourse(ctx, "mat302")
	if err != nil {
		t.Fatalf("LoadCourse: %v", err)
	}
	if n != len(course.Items) {
		t.Fatalf("loaded %d, want %d", n, len(course.Items))
	}
	first := env.store.Snapshot().Tasks[0]
	if _, err := completions.Toggle(ctx, first.ID, first.DueDate); err != nil {
		t.Fatal(err)
	}

	if _, _, err := courses.LoadCourse(ctx, "MAT302"); err != nil {
		t.Fatalf("second LoadCourse: %v", err)
	}
	st := env.store.Snapshot()
	if len(st.Tasks) != len(course.Items) {
		t.Fatalf("got %d tasks after reloading, want %d", len(st.Tasks), len(course.Items))
	}
	if st.Completions.Done(first.ID, first.DueDate) {
		t.Error("completion of a replaced task survived")
	}

	if _, _, err := courses.LoadCourse(ctx, "BIO101"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown course err = %v", err)
	}
}

func TestCourseService_KeepsOtherCourses(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	courses := NewCourseService(env.store, planner.DefaultCalendar(), sequentialIDs())

	if _, err := tasks.CreateTask(ctx, TaskInput{Name: "Essay", DueDate: "2026-03-01", Course: "ENG 101"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := courses.LoadCourse(ctx, "DST234"); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, task := range tasks.ListTasks() {
		if task.Name == "Essay" {
			found = true
		}
	}
	if !found {
		t.Fatal("task of another course was removed")
	}
}

func TestStudyBlockService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	blocks := NewStudyBlockService(env.store, sequentialIDs())
	completions := NewCompletionService(env.store)
	schedule := NewScheduleService(env.store, planner.Semester{}, time.UTC)

	block, err := blocks.AddBlock(ctx, StudyBlockInput{Course: "MAT 302", Days: []string{"Wed", "mon", "monday"}, StartTime: "15:00", EndTime: "16:30"})
	if err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	if len(block.Days) != 2 || block.Days[0] != "monday" || block.Days[1] != "wednesday" {
		t.Fatalf("days = %v, want [monday wednesday]", block.Days)
	}
	if _, err := completions.Toggle(ctx, block.ID, "2026-01-26"); err != nil {
		t.Fatal(err)
	}

	day := schedule.Day(mustDate(t, "2026-01-26"))
	if len(day.Items) != 2 || day.Items[1].ID != block.ID || !day.Items[1].Completed {
		t.Fatalf("day items = %+v", day.Items)
	}

	if _, err := blocks.DeleteBlock(ctx, block.ID); err != nil {
		t.Fatalf("DeleteBlock: %v", err)
	}
	if completions.IsDone(block.ID, "2026-01-26") {
		t.Error("completion survived block deletion")
	}
	for _, entry := range schedule.Day(mustDate(t, "2026-01-26")).Items {
		if entry.ID == block.ID {
			t.Error("deleted block still scheduled")
		}
	}
	if _, err := blocks.DeleteBlock(ctx, block.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestStudyBlockService_Validation(t *testing.T) {
	env := newTestEnv(t)
	blocks := NewStudyBlockService(env.store, sequentialIDs())

	inputs := map[string]StudyBlockInput{
		"no course":       {Days: []string{"mon"}, StartTime: "15:00", EndTime: "16:00"},
		"no days":         {Course: "MAT 302", StartTime: "15:00", EndTime: "16:00"},
		"unknown day":     {Course: "MAT 302", Days: []string{"funday"}, StartTime: "15:00", EndTime: "16:00"},
		"end before":      {Course: "MAT 302", Days: []string{"mon"}, StartTime: "16:00", EndTime: "15:00"},
		"equal times":     {Course: "MAT 302", Days: []string{"mon"}, StartTime: "16:00", EndTime: "16:00"},
		"malformed times": {Course: "MAT 302", Days: []string{"mon"}, StartTime: "3pm", EndTime: "16:00"},
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			if _, err := blocks.AddBlock(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRoutineService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	routines := NewRoutineService(env.store)

	r, err := routines.SetWorkout(ctx, []string{"tue", "Thu"}, "06:45")
	if err != nil {
		t.Fatalf("SetWorkout: %v", err)
	}
	if !r.Workout.Enabled || len(r.Workout.Days) != 2 || r.Workout.Time != "06:45" {
		t.Fatalf("workout = %+v", r.Workout)
	}
	r, _ = routines.SetWorkout(ctx, nil, "")
	if r.Workout.Enabled || r.Workout.Time != "06:45" {
		t.Fatalf("workout after clearing days = %+v", r.Workout)
	}

	r, err = routines.SetTennis(ctx, "fri", "17:30")
	if err != nil || r.Tennis.Day != "friday" || !r.Tennis.Enabled {
		t.Fatalf("SetTennis = %+v, %v", r.Tennis, err)
	}
	r, _ = routines.SetTennis(ctx, "", "19:00")
	if r.Tennis.Day != "friday" || r.Tennis.Time != "19:00" {
		t.Fatalf("tennis day should be kept: %+v", r.Tennis)
	}
	r, _ = routines.DisableTennis(ctx)
	if r.Tennis.Enabled {
		t.Fatal("tennis still enabled")
	}

	r, _ = routines.SetNotifications(ctx, true, 0)
	if !r.Notifications.Enabled || r.Notifications.ReminderMinutes != model.DefaultReminderMinutes {
		t.Fatalf("notifications = %+v", r.Notifications)
	}

	if _, err := routines.SetWakeTime(ctx, "7am"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("SetWakeTime err = %v", err)
	}
	if _, err := routines.SetTennis(ctx, "", "noon"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("SetTennis err = %v", err)
	}
	if _, err := routines.SetWorkout(ctx, []string{"mon", "nope"}, "07:00"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("SetWorkout err = %v", err)
	}
	if got := routines.Routine().Workout.Time; got != "06:45" {
		t.Fatalf("rejected update changed the routine: %s", got)
	}
}

func TestReminderService_Check(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	routines := NewRoutineService(env.store)
	reminders := NewReminderService(env.store, env.entries, time.Minute, time.UTC)

	task, err := tasks.CreateTask(ctx, TaskInput{Name: "Quiz 2", DueDate: "2026-02-03", Time: "10:00", Course: "MAT 302", Type: model.TaskQuiz})
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)

	notifier := &fakeNotifier{}
	reminders.SetNotifier(notifier)
	if n, err := reminders.Check(ctx, now); err != nil || n != 0 {
		t.Fatalf("Check while disabled = %d, %v", n, err)
	}

	if _, err := routines.SetNotifications(ctx, true, 60); err != nil {
		t.Fatal(err)
	}
	n, err := reminders.Check(ctx, now)
	if err != nil || n != 1 {
		t.Fatalf("Check = %d, %v; want 1", n, err)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "Upcoming Deadline: Quiz 2 is due Feb 3 at 10:00 AM (MAT 302)" {
		t.Fatalf("sent = %q", notifier.sent)
	}

	if n, _ := reminders.Check(ctx, now.Add(30*time.Second)); n != 0 {
		t.Fatalf("reminder sent twice")
	}
	if seen, _ := env.entries.Has(ctx, planner.NotificationKey(task)); !seen {
		t.Fatal("notification marker missing")
	}
}

func TestReminderService_UsesConfiguredLocation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	routines := NewRoutineService(env.store)
	eastern := time.FixedZone("EST", -5*60*60)
	reminders := NewReminderService(env.store, env.entries, time.Minute, eastern)
	notifier := &fakeNotifier{}
	reminders.SetNotifier(notifier)

	if _, err := tasks.CreateTask(ctx, TaskInput{Name: "Quiz 3", DueDate: "2026-02-10", Time: "10:00"}); err != nil {
		t.Fatal(err)
	}
	if _, err := routines.SetNotifications(ctx, true, 60); err != nil {
		t.Fatal(err)
	}

	// 09:00 UTC is one hour before a UTC deadline but 04:00 in the configured zone.
	if n, err := reminders.Check(ctx, time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)); err != nil || n != 0 {
		t.Fatalf("Check at 09:00 UTC = %d, %v; want 0", n, err)
	}
	// 14:00 UTC is 09:00 EST, one hour before the deadline.
	if n, err := reminders.Check(ctx, time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)); err != nil || n != 1 {
		t.Fatalf("Check at 14:00 UTC = %d, %v; want 1", n, err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("sent = %q", notifier.sent)
	}
}

func TestReminderService_MarksWithoutNotifier(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	routines := NewRoutineService(env.store)
	reminders := NewReminderService(env.store, env.entries, time.Minute, time.UTC)

	task, _ := tasks.CreateTask(ctx, TaskInput{Name: "HW 4", DueDate: "2026-02-04"})
	if _, err := routines.SetNotifications(ctx, true, 30); err != nil {
		t.Fatal(err)
	}
	// No time of day: the deadline is 23:59.
	now := time.Date(2026, 2, 4, 23, 29, 0, 0, time.UTC)

	n, err := reminders.Check(ctx, now)
	if err != nil || n != 0 {
		t.Fatalf("Check = %d, %v", n, err)
	}
	if seen, _ := env.entries.Has(ctx, planner.NotificationKey(task)); !seen {
		t.Fatal("marker must be written even when nothing can deliver")
	}

	if err := reminders.SendTest(ctx); !errors.Is(err, ErrNotificationsUnavailable) {
		t.Fatalf("SendTest err = %v, want ErrNotificationsUnavailable", err)
	}
}

func TestReminderService_FailedDeliveryStillMarks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	routines := NewRoutineService(env.store)
	reminders := NewReminderService(env.store, env.entries, time.Minute, time.UTC)
	reminders.SetNotifier(&fakeNotifier{err: errors.New("telegram down")})

	task, _ := tasks.CreateTask(ctx, TaskInput{Name: "Lab 2", DueDate: "2026-02-05", Time: "12:00"})
	if _, err := routines.SetNotifications(ctx, true, 120); err != nil {
		t.Fatal(err)
	}
	if n, err := reminders.Check(ctx, time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)); err != nil || n != 0 {
		t.Fatalf("Check = %d, %v", n, err)
	}
	if seen, _ := env.entries.Has(ctx, planner.NotificationKey(task)); !seen {
		t.Fatal("marker missing after failed delivery")
	}
}

func TestSyllabusService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	syllabus := NewSyllabusService(planner.NewExtractor(2026, sequentialIDs()), tasks)

	if _, err := syllabus.Extract("", "HW 1 due Jan 30"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty course err = %v", err)
	}
	if _, err := syllabus.Extract("MAT 302", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty text err = %v", err)
	}

	candidates, err := syllabus.Extract("MAT 302", "Quiz 1 Jan 30\nHomework 1.2 due 2/2")
	if err != nil || len(candidates) != 2 {
		t.Fatalf("Extract = %+v, %v", candidates, err)
	}
	if n := len(tasks.ListTasks()); n != 0 {
		t.Fatalf("extraction stored %d tasks", n)
	}

	added, err := syllabus.Confirm(ctx, candidates)
	if err != nil || len(added) != 2 {
		t.Fatalf("Confirm = %d, %v", len(added), err)
	}
	if _, err := syllabus.Confirm(ctx, candidates); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("confirming the same batch twice err = %v", err)
	}
	if _, err := syllabus.Confirm(ctx, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty confirm err = %v", err)
	}
}

func TestScheduleService_DayView(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tasks := NewTaskService(env.store, sequentialIDs())
	completions := NewCompletionService(env.store)
	schedule := NewScheduleService(env.store, planner.DefaultCalendar().Semester, time.UTC)
	schedule.now = func() time.Time { return time.Date(2026, 1, 26, 15, 4, 0, 0, time.UTC) }

	if _, err := tasks.CreateTask(ctx, TaskInput{Name: "HW 2.1", DueDate: "2026-01-26", Time: "09:00"}); err != nil {
		t.Fatal(err)
	}
	if _, err := completions.Toggle(ctx, model.WorkoutID, "2026-01-26"); err != nil {
		t.Fatal(err)
	}

	today, err := schedule.ParseDate("")
	if err != nil || model.FormatDate(today) != "2026-01-26" {
		t.Fatalf("ParseDate(\"\") = %v, %v", today, err)
	}
	view := schedule.Day(today)
	if view.Weekday != "monday" || view.Completed != 1 || view.Total != 2 {
		t.Fatalf("view = %s %d/%d", view.Weekday, view.Completed, view.Total)
	}
	last := view.Items[len(view.Items)-1]
	if last.ID != model.WorkoutID || !last.Completed {
		t.Fatalf("completed workout should sort last, got %+v", last)
	}
	for _, entry := range view.Items {
		if entry.Type == model.ItemClassSession && (entry.Completable || entry.Deletable) {
			t.Errorf("class session %q is actionable", entry.Name)
		}
		if entry.IsTask() && !entry.Deletable {
			t.Errorf("task %q should be deletable", entry.Name)
		}
	}

	if _, err := schedule.ParseDate("2026-13-01"); err == nil {
		t.Fatal("expected an error for an invalid date")
	}
}

func TestSchedulerService_ScheduleInterval(t *testing.T) {
	s := NewSchedulerService(time.UTC)
	if _, err := s.ScheduleInterval(0, func() {}); err == nil {
		t.Fatal("expected an error for a zero interval")
	}
	if _, err := s.ScheduleInterval(500*time.Millisecond, func() {}); err != nil {
		t.Fatalf("ScheduleInterval: %v", err)
	}
	if s.Entries() != 1 {
		t.Fatalf("Entries = %d, want 1", s.Entries())
	}
}

func TestReminderText(t *testing.T) {
	got := ReminderText(model.Task{Name: "Project 1", DueDate: "2026-02-12"})
	if got != "Project 1 is due Feb 12" {
		t.Fatalf("ReminderText = %q", got)
	}
	if ShortDate("soon") != "soon" {
		t.Fatal("malformed dates should pass through")
	}
}
