package service

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
)

// CourseService loads preloaded course schedules from the calendar.
type CourseService struct {
	store    *Store
	calendar planner.Calendar
	newID    func() string
}

func NewCourseService(store *Store, calendar planner.Calendar, newID func() string) *CourseService {
	return &CourseService{store: store, calendar: calendar, newID: newID}
}

func (s *CourseService) Courses() []planner.CourseSchedule {
	return s.calendar.Courses
}

// LoadCourse replaces every task of the course with the preloaded schedule
// and returns how many tasks were added.
func (s *CourseService) LoadCourse(ctx context.Context, code string) (planner.CourseSchedule, int, error) {
	course, ok := s.calendar.Course(code)
	if !ok {
		return planner.CourseSchedule{}, 0, fmt.Errorf("%w: unknown course %q", ErrInvalidInput, code)
	}
	tasks := course.Tasks(s.newID)

	err := s.store.Update(ctx, repository.SlotTasks|repository.SlotCompletions, func(st *model.State) error {
		kept := st.Tasks[:0]
		for _, t := range st.Tasks {
			if t.Course != "" && strings.Contains(t.Course, course.Course) {
				st.Completions.Purge(t.ID)
				continue
			}
			kept = append(kept, t)
		}
		st.Tasks = append(kept, tasks...)
		return nil
	})
	if err != nil {
		return planner.CourseSchedule{}, 0, err
	}
	return course, len(tasks), nil
}
