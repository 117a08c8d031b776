package model

// TaskType classifies a due-dated task.
type TaskType string

const (
	TaskAssignment TaskType = "assignment"
	TaskQuiz       TaskType = "quiz"
	TaskProject    TaskType = "project"
	TaskOther      TaskType = "other"
)

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskAssignment, TaskQuiz, TaskProject, TaskOther:
		return true
	}
	return false
}

// Priority is either PriorityHigh or unset.
type Priority string

const PriorityHigh Priority = "high"

// Task represents a single due-dated item in the planner.
type Task struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DueDate     string   `json:"dueDate"`
	Time        string   `json:"time,omitempty"`
	Type        TaskType `json:"type"`
	Course      string   `json:"course,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	Description string   `json:"description,omitempty"`
}

// DayItem projects the task onto its due date.
func (t Task) DayItem() DayItem {
	return DayItem{
		ID:          t.ID,
		Name:        t.Name,
		Type:        ItemType(t.Type),
		Time:        t.Time,
		Description: t.Description,
		Course:      t.Course,
		Priority:    t.Priority,
	}
}
