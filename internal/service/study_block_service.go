package service

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/model"
	"study-planner/internal/repository"
)

// StudyBlockInput represents data required to add a study block.
type StudyBlockInput struct {
	Course    string
	Days      []string
	StartTime string
	EndTime   string
}

// StudyBlockService manages recurring study sessions.
type StudyBlockService struct {
	store *Store
	newID func() string
}

func NewStudyBlockService(store *Store, newID func() string) *StudyBlockService {
	return &StudyBlockService{store: store, newID: newID}
}

func (s *StudyBlockService) ListBlocks() []model.StudyBlock {
	return s.store.Snapshot().StudyBlocks
}

func (s *StudyBlockService) AddBlock(ctx context.Context, input StudyBlockInput) (model.StudyBlock, error) {
	course := strings.TrimSpace(input.Course)
	if course == "" {
		return model.StudyBlock{}, fmt.Errorf("%w: course is required", ErrInvalidInput)
	}
	days, err := normalizeDays(input.Days)
	if err != nil {
		return model.StudyBlock{}, err
	}
	if len(days) == 0 {
		return model.StudyBlock{}, fmt.Errorf("%w: select at least one day", ErrInvalidInput)
	}
	start, end := strings.TrimSpace(input.StartTime), strings.TrimSpace(input.EndTime)
	if start == "" || end == "" {
		return model.StudyBlock{}, fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}
	if !model.ValidTime(start) || !model.ValidTime(end) {
		return model.StudyBlock{}, fmt.Errorf("%w: times must be HH:MM", ErrInvalidInput)
	}
	if start >= end {
		return model.StudyBlock{}, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	block := model.StudyBlock{
		ID:        s.newID(),
		Course:    course,
		Days:      days,
		StartTime: start,
		EndTime:   end,
	}
	err = s.store.Update(ctx, repository.SlotStudyBlocks, func(st *model.State) error {
		st.StudyBlocks = append(st.StudyBlocks, block)
		return nil
	})
	if err != nil {
		return model.StudyBlock{}, err
	}
	return block, nil
}

// DeleteBlock removes the block and its completion records.
func (s *StudyBlockService) DeleteBlock(ctx context.Context, id string) (model.StudyBlock, error) {
	var removed model.StudyBlock
	err := s.store.Update(ctx, repository.SlotStudyBlocks|repository.SlotCompletions, func(st *model.State) error {
		idx := st.FindStudyBlock(id)
		if idx < 0 {
			return fmt.Errorf("study block %s: %w", id, ErrNotFound)
		}
		removed = st.StudyBlocks[idx]
		st.StudyBlocks = append(st.StudyBlocks[:idx], st.StudyBlocks[idx+1:]...)
		st.Completions.Purge(id)
		return nil
	})
	if err != nil {
		return model.StudyBlock{}, err
	}
	return removed, nil
}
