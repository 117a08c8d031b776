package service

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/model"
	"study-planner/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Name        string
	DueDate     string
	Time        string
	Type        model.TaskType
	Course      string
	Priority    string
	Description string
}

// TaskService wraps task-related business logic.
type TaskService struct {
	store *Store
	newID func() string
}

func NewTaskService(store *Store, newID func() string) *TaskService {
	return &TaskService{store: store, newID: newID}
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (model.Task, error) {
	task, err := s.buildTask(input)
	if err != nil {
		return model.Task{}, err
	}

	err = s.store.Update(ctx, repository.SlotTasks, func(st *model.State) error {
		st.Tasks = append(st.Tasks, task)
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (s *TaskService) buildTask(input TaskInput) (model.Task, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Task{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	due := strings.TrimSpace(input.DueDate)
	if due == "" {
		return model.Task{}, fmt.Errorf("%w: due date is required", ErrInvalidInput)
	}
	if _, err := model.ParseDate(due, nil); err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	clock := strings.TrimSpace(input.Time)
	if clock != "" && !model.ValidTime(clock) {
		return model.Task{}, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrInvalidInput, clock)
	}
	kind := input.Type
	if kind == "" {
		kind = model.TaskOther
	}
	if !kind.Valid() {
		return model.Task{}, fmt.Errorf("%w: unknown task type %q", ErrInvalidInput, kind)
	}

	task := model.Task{
		ID:          s.newID(),
		Name:        name,
		DueDate:     due,
		Time:        clock,
		Type:        kind,
		Course:      strings.TrimSpace(input.Course),
		Description: strings.TrimSpace(input.Description),
	}
	if strings.EqualFold(strings.TrimSpace(input.Priority), string(model.PriorityHigh)) {
		task.Priority = model.PriorityHigh
	}
	return task, nil
}

// AddTasks appends a confirmed batch. The whole batch is rejected if any task
// is invalid.
func (s *TaskService) AddTasks(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	added := make([]model.Task, 0, len(tasks))
	for i, t := range tasks {
		built, err := s.buildTask(TaskInput{
			Name:        t.Name,
			DueDate:     t.DueDate,
			Time:        t.Time,
			Type:        t.Type,
			Course:      t.Course,
			Priority:    string(t.Priority),
			Description: t.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if t.ID != "" {
			built.ID = t.ID
		}
		added = append(added, built)
	}

	err := s.store.Update(ctx, repository.SlotTasks, func(st *model.State) error {
		for _, t := range added {
			if st.FindTask(t.ID) >= 0 {
				return fmt.Errorf("%w: duplicate task id %s", ErrInvalidInput, t.ID)
			}
		}
		st.Tasks = append(st.Tasks, added...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (s *TaskService) ListTasks() []model.Task {
	return s.store.Snapshot().Tasks
}

func (s *TaskService) GetTask(id string) (model.Task, error) {
	st := s.store.Snapshot()
	idx := st.FindTask(id)
	if idx < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return st.Tasks[idx], nil
}

// DeleteTask removes a task together with all of its completion records.
func (s *TaskService) DeleteTask(ctx context.Context, id string) (model.Task, error) {
	var removed model.Task
	err := s.store.Update(ctx, repository.SlotTasks|repository.SlotCompletions, func(st *model.State) error {
		idx := st.FindTask(id)
		if idx < 0 {
			return fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		removed = st.Tasks[idx]
		st.Tasks = append(st.Tasks[:idx], st.Tasks[idx+1:]...)
		st.Completions.Purge(id)
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return removed, nil
}
