package model

// StudyBlock is a recurring study session on a set of weekdays.
type StudyBlock struct {
	ID        string   `json:"id"`
	Course    string   `json:"course"`
	Days      []string `json:"days"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

// MeetsOn reports whether the block is scheduled on the weekday name.
func (b StudyBlock) MeetsOn(day string) bool {
	for _, d := range b.Days {
		if d == day {
			return true
		}
	}
	return false
}
