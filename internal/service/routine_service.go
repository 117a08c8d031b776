package service

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/model"
	"study-planner/internal/repository"
)

// RoutineService edits the single routine configuration.
type RoutineService struct {
	store *Store
}

func NewRoutineService(store *Store) *RoutineService {
	return &RoutineService{store: store}
}

func (s *RoutineService) Routine() model.Routine {
	return s.store.Snapshot().Routine
}

// SetWakeTime stores the wake-up time; an empty value hides the wake-up line.
func (s *RoutineService) SetWakeTime(ctx context.Context, clock string) (model.Routine, error) {
	clock = strings.TrimSpace(clock)
	if clock != "" && !model.ValidTime(clock) {
		return model.Routine{}, fmt.Errorf("%w: invalid wake time %q, expected HH:MM", ErrInvalidInput, clock)
	}
	return s.update(ctx, func(r *model.Routine) { r.WakeTime = clock })
}

// SetWorkout replaces the workout days and time. No days disables the workout.
func (s *RoutineService) SetWorkout(ctx context.Context, days []string, clock string) (model.Routine, error) {
	normalized, err := normalizeDays(days)
	if err != nil {
		return model.Routine{}, err
	}
	clock = strings.TrimSpace(clock)
	if clock != "" && !model.ValidTime(clock) {
		return model.Routine{}, fmt.Errorf("%w: invalid workout time %q, expected HH:MM", ErrInvalidInput, clock)
	}
	return s.update(ctx, func(r *model.Routine) {
		r.Workout.Enabled = len(normalized) > 0
		r.Workout.Days = normalized
		if clock != "" {
			r.Workout.Time = clock
		}
	})
}

// SetTennis enables tennis at clock. An empty day keeps the current day.
func (s *RoutineService) SetTennis(ctx context.Context, day, clock string) (model.Routine, error) {
	clock = strings.TrimSpace(clock)
	if !model.ValidTime(clock) {
		return model.Routine{}, fmt.Errorf("%w: invalid tennis time %q, expected HH:MM", ErrInvalidInput, clock)
	}
	var weekday string
	if strings.TrimSpace(day) != "" {
		d, ok := model.NormalizeWeekday(day)
		if !ok {
			return model.Routine{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
		weekday = d
	}
	return s.update(ctx, func(r *model.Routine) {
		r.Tennis.Enabled = true
		r.Tennis.Time = clock
		if weekday != "" {
			r.Tennis.Day = weekday
		} else {
			r.Tennis.Day = r.TennisDay()
		}
	})
}

func (s *RoutineService) DisableTennis(ctx context.Context) (model.Routine, error) {
	return s.update(ctx, func(r *model.Routine) { r.Tennis.Enabled = false })
}

// SetNotifications toggles reminders. Non-positive minutes keep the lead time.
func (s *RoutineService) SetNotifications(ctx context.Context, enabled bool, minutes int) (model.Routine, error) {
	return s.update(ctx, func(r *model.Routine) {
		r.Notifications.Enabled = enabled
		if minutes > 0 {
			r.Notifications.ReminderMinutes = minutes
		}
	})
}

func (s *RoutineService) update(ctx context.Context, fn func(r *model.Routine)) (model.Routine, error) {
	var out model.Routine
	err := s.store.Update(ctx, repository.SlotRoutine, func(st *model.State) error {
		fn(&st.Routine)
		out = st.Routine
		return nil
	})
	return out, err
}

// normalizeDays maps day names to canonical weekday names in week order,
// dropping duplicates.
func normalizeDays(days []string) ([]string, error) {
	seen := make(map[string]bool, len(days))
	for _, raw := range days {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		day, ok := model.NormalizeWeekday(raw)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, raw)
		}
		seen[day] = true
	}
	out := []string{}
	for _, day := range model.Weekdays[1:] {
		if seen[day] {
			out = append(out, day)
		}
	}
	if seen["sunday"] {
		out = append(out, "sunday")
	}
	return out, nil
}
