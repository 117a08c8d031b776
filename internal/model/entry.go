package model

import "time"

// Entry is one key/value row of persisted planner state.
type Entry struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "planner_entries" }
