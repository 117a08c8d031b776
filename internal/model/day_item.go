package model

// ItemType is the display category of a DayItem.
type ItemType string

const (
	ItemRoutine      ItemType = "routine"
	ItemStudyBlock   ItemType = "study-block"
	ItemClassSession ItemType = "class-session"
	ItemAssignment   ItemType = ItemType(TaskAssignment)
	ItemQuiz         ItemType = ItemType(TaskQuiz)
	ItemProject      ItemType = ItemType(TaskProject)
	ItemOther        ItemType = ItemType(TaskOther)
)

// DayItem is the transient projection of a routine, class session, study
// block or task onto one date.
type DayItem struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Time        string   `json:"time,omitempty"`
	Description string   `json:"description,omitempty"`
	Course      string   `json:"course,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
}

// Completable is false only for class sessions.
func (i DayItem) Completable() bool {
	return i.Type != ItemClassSession
}

// IsTask reports whether the item came from the task collection.
func (i DayItem) IsTask() bool {
	switch i.Type {
	case ItemAssignment, ItemQuiz, ItemProject, ItemOther:
		return true
	}
	return false
}

// CompletionID is the identifier used in completion keys. Items without an
// identifier use a name-derived one.
func (i DayItem) CompletionID() string {
	if i.ID != "" {
		return i.ID
	}
	return "routine_" + i.Name
}
