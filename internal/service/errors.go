package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidInput wraps every validation failure; nothing was changed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned for unknown task or study block identifiers.
	ErrNotFound = errors.New("not found")
	// ErrNotificationsUnavailable means no recipient can receive notifications.
	ErrNotificationsUnavailable = errors.New("notifications unavailable")
)

// NewID generates identifiers for tasks and study blocks.
func NewID() string {
	return uuid.NewString()
}
