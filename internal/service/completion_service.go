package service

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/model"
	"study-planner/internal/repository"
)

// CompletionService toggles per-occurrence completion flags.
type CompletionService struct {
	store *Store
}

func NewCompletionService(store *Store) *CompletionService {
	return &CompletionService{store: store}
}

// Toggle flips the flag of itemID on date and returns the new value.
func (s *CompletionService) Toggle(ctx context.Context, itemID, date string) (bool, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return false, fmt.Errorf("%w: item id is required", ErrInvalidInput)
	}
	if _, err := model.ParseDate(date, nil); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var done bool
	err := s.store.Update(ctx, repository.SlotCompletions, func(st *model.State) error {
		key := model.CompletionKey(itemID, date)
		done = !st.Completions[key]
		st.Completions[key] = done
		return nil
	})
	return done, err
}

func (s *CompletionService) IsDone(itemID, date string) bool {
	return s.store.Snapshot().Completions.Done(itemID, date)
}
