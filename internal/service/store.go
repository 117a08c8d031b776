package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"study-planner/internal/model"
	"study-planner/internal/repository"
)

// Store owns the planner state. Every mutation runs under one mutex,
// operates on a clone and is swapped in only after it was persisted.
type Store struct {
	mu    sync.Mutex
	repo  *repository.StateRepository
	newID func() string
	state model.State
}

func NewStore(repo *repository.StateRepository, newID func() string) *Store {
	return &Store{repo: repo, newID: newID, state: model.NewState()}
}

// Load reads persisted state. Tasks and study blocks stored without an
// identifier get one, and the fix is written back.
func (s *Store) Load(ctx context.Context) error {
	st, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	var dirty repository.Slot
	for i := range st.Tasks {
		if st.Tasks[i].ID == "" {
			st.Tasks[i].ID = s.newID()
			dirty |= repository.SlotTasks
		}
	}
	for i := range st.StudyBlocks {
		if st.StudyBlocks[i].ID == "" {
			st.StudyBlocks[i].ID = s.newID()
			dirty |= repository.SlotStudyBlocks
		}
	}
	if dirty != 0 {
		log.Printf("[info] assigning identifiers to legacy records")
		if err := s.repo.Save(ctx, st, dirty); err != nil {
			return fmt.Errorf("save identifiers: %w", err)
		}
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// Snapshot returns an independent copy of the current state.
func (s *Store) Snapshot() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update applies fn to a copy of the state and persists the given slots. If
// fn or the save fails, the state is left untouched.
func (s *Store) Update(ctx context.Context, slots repository.Slot, fn func(st *model.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, next, slots); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	s.state = next
	return nil
}
