package entities

import "time"

// UserSettings stores per-chat preferences that survive restarts.
type UserSettings struct {
	ChatID           int64
	Muted            bool // suppress sound cues
	RemindersEnabled bool // receive the daily play reminder
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUserSettings creates settings with default values: sound on, reminders
// off until the user opts in.
func NewUserSettings(chatID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		ChatID:    chatID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
