package model

// Fixed identifiers of the routine day items.
const (
	WorkoutID = "routine_workout"
	TennisID  = "routine_tennis"
)

// Routine is the single recurring-activity configuration.
type Routine struct {
	WakeTime      string        `json:"wakeTime"`
	Workout       Workout       `json:"workout"`
	Tennis        Tennis        `json:"tennis"`
	Notifications Notifications `json:"notifications"`
}

type Workout struct {
	Enabled bool     `json:"enabled"`
	Days    []string `json:"days"`
	Time    string   `json:"time"`
}

type Tennis struct {
	Enabled bool   `json:"enabled"`
	Day     string `json:"day"`
	Time    string `json:"time"`
}

// Notifications configures the reminder loop.
type Notifications struct {
	Enabled         bool `json:"enabled"`
	ReminderMinutes int  `json:"reminderMinutes"`
}

// DefaultReminderMinutes is one day.
const DefaultReminderMinutes = 1440

// DefaultRoutine returns the configuration used when nothing is stored.
func DefaultRoutine() Routine {
	return Routine{
		WakeTime: "07:00",
		Workout: Workout{
			Enabled: true,
			Days:    []string{"monday", "wednesday", "friday"},
			Time:    "08:00",
		},
		Tennis: Tennis{
			Enabled: true,
			Day:     "thursday",
			Time:    "18:00",
		},
		Notifications: Notifications{
			Enabled:         false,
			ReminderMinutes: DefaultReminderMinutes,
		},
	}
}

// HasWorkoutOn reports whether day is one of the workout days.
func (r Routine) HasWorkoutOn(day string) bool {
	for _, d := range r.Workout.Days {
		if d == day {
			return true
		}
	}
	return false
}

// TennisDay falls back to thursday when unset.
func (r Routine) TennisDay() string {
	if r.Tennis.Day == "" {
		return "thursday"
	}
	return r.Tennis.Day
}

// ReminderLead returns the reminder lead in minutes, defaulting to one day.
func (r Routine) ReminderLead() int {
	if r.Notifications.ReminderMinutes <= 0 {
		return DefaultReminderMinutes
	}
	return r.Notifications.ReminderMinutes
}
