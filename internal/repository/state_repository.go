package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"study-planner/internal/model"
)

// Slot selects persisted collections.
type Slot uint8

const (
	SlotTasks Slot = 1 << iota
	SlotRoutine
	SlotStudyBlocks
	SlotCompletions

	SlotAll = SlotTasks | SlotRoutine | SlotStudyBlocks | SlotCompletions
)

// Storage keys of the four collections.
const (
	KeyTasks       = "planner_tasks"
	KeyRoutines    = "planner_routines"
	KeyStudyBlocks = "planner_study_blocks"
	KeyCompleted   = "planner_completed"
)

// StateRepository reads and writes whole collections as JSON entries.
type StateRepository struct {
	entries *EntryRepository
}

func NewStateRepository(entries *EntryRepository) *StateRepository {
	return &StateRepository{entries: entries}
}

// Load reads all four collections. A missing or unreadable entry leaves that
// collection at its default; only database failures are returned.
func (r *StateRepository) Load(ctx context.Context) (model.State, error) {
	st := model.NewState()

	if err := r.loadSlot(ctx, KeyTasks, &st.Tasks); err != nil {
		return st, err
	}
	if st.Tasks == nil {
		st.Tasks = []model.Task{}
	}

	routine := model.DefaultRoutine()
	if err := r.loadSlot(ctx, KeyRoutines, &routine); err != nil {
		return st, err
	}
	st.Routine = routine

	if err := r.loadSlot(ctx, KeyStudyBlocks, &st.StudyBlocks); err != nil {
		return st, err
	}
	if st.StudyBlocks == nil {
		st.StudyBlocks = []model.StudyBlock{}
	}

	if err := r.loadSlot(ctx, KeyCompleted, &st.Completions); err != nil {
		return st, err
	}
	if st.Completions == nil {
		st.Completions = model.Completions{}
	}

	return st, nil
}

// loadSlot decodes the entry under key into dst. dst must hold the default
// value; on a corrupt entry it is reset to a fresh decode target and the
// problem is only logged.
func (r *StateRepository) loadSlot(ctx context.Context, key string, dst any) error {
	raw, ok, err := r.entries.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok || raw == "" {
		return nil
	}
	if err := decodeInto(raw, dst); err != nil {
		log.Printf("[warn] stored %s is corrupt, using defaults: %v", key, err)
	}
	return nil
}

// decodeInto decodes into a copy first so that a failed decode never leaves
// dst half-written.
func decodeInto(raw string, dst any) error {
	switch v := dst.(type) {
	case *[]model.Task:
		var out []model.Task
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return err
		}
		*v = out
	case *model.Routine:
		out := *v
		out.Workout.Days = append([]string{}, v.Workout.Days...)
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return err
		}
		*v = out
	case *[]model.StudyBlock:
		var out []model.StudyBlock
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return err
		}
		*v = out
	case *model.Completions:
		var out model.Completions
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return err
		}
		*v = out
	default:
		return fmt.Errorf("unsupported slot type %T", dst)
	}
	return nil
}

// Save overwrites the selected collections in one transaction.
func (r *StateRepository) Save(ctx context.Context, st model.State, slots Slot) error {
	type slotValue struct {
		slot  Slot
		key   string
		value any
	}
	values := []slotValue{
		{SlotTasks, KeyTasks, st.Tasks},
		{SlotRoutine, KeyRoutines, st.Routine},
		{SlotStudyBlocks, KeyStudyBlocks, st.StudyBlocks},
		{SlotCompletions, KeyCompleted, st.Completions},
	}

	return r.entries.Transaction(ctx, func(tx *EntryRepository) error {
		for _, v := range values {
			if slots&v.slot == 0 {
				continue
			}
			raw, err := json.Marshal(v.value)
			if err != nil {
				return fmt.Errorf("encode %s: %w", v.key, err)
			}
			if err := tx.Put(ctx, v.key, string(raw)); err != nil {
				return err
			}
		}
		return nil
	})
}
