package model

import "strings"

// Completions maps a completion key to its done flag.
type Completions map[string]bool

// CompletionKey joins an item identifier and a date.
func CompletionKey(itemID, date string) string {
	return itemID + "_" + date
}

// Done reports whether the occurrence is marked complete.
func (c Completions) Done(itemID, date string) bool {
	return c[CompletionKey(itemID, date)]
}

// Purge removes every key belonging to itemID and returns how many were removed.
func (c Completions) Purge(itemID string) int {
	prefix := itemID + "_"
	removed := 0
	for key := range c {
		if strings.HasPrefix(key, prefix) {
			delete(c, key)
			removed++
		}
	}
	return removed
}

// State holds the four persisted collections.
type State struct {
	Tasks       []Task
	Routine     Routine
	StudyBlocks []StudyBlock
	Completions Completions
}

// NewState returns an empty state with the default routine.
func NewState() State {
	return State{
		Tasks:       []Task{},
		Routine:     DefaultRoutine(),
		StudyBlocks: []StudyBlock{},
		Completions: Completions{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Tasks:       append([]Task{}, s.Tasks...),
		Routine:     s.Routine,
		StudyBlocks: make([]StudyBlock, len(s.StudyBlocks)),
		Completions: make(Completions, len(s.Completions)),
	}
	out.Routine.Workout.Days = append([]string{}, s.Routine.Workout.Days...)
	for i, b := range s.StudyBlocks {
		b.Days = append([]string{}, b.Days...)
		out.StudyBlocks[i] = b
	}
	for k, v := range s.Completions {
		out.Completions[k] = v
	}
	return out
}

// FindTask returns the index of the task with id, or -1.
func (s State) FindTask(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// FindStudyBlock returns the index of the block with id, or -1.
func (s State) FindStudyBlock(id string) int {
	for i, b := range s.StudyBlocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
