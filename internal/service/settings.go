package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-quiz-bot/internal/infra/postgres/repository"
)

// SettingsService manages per-chat settings.
type SettingsService struct {
	repository SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repository SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

// GetOrCreate returns the chat's settings, creating defaults on first contact.
func (s *SettingsService) GetOrCreate(ctx context.Context, chatID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			if err := s.repository.Create(ctx, chatID); err != nil {
				return nil, err
			}
			// Retrieve newly created settings.
			return s.repository.GetByChatID(ctx, chatID)
		}
		return nil, err
	}

	return settings, nil
}

// ToggleReminders flips the chat's daily reminder opt-in and returns the new
// value.
func (s *SettingsService) ToggleReminders(ctx context.Context, chatID int64) (bool, error) {
	settings, err := s.GetOrCreate(ctx, chatID)
	if err != nil {
		return false, err
	}

	enabled := !settings.RemindersEnabled
	if err := s.repository.SetRemindersEnabled(ctx, chatID, enabled); err != nil {
		return false, err
	}

	return enabled, nil
}

// SetReminders sets the chat's daily reminder opt-in to an explicit value.
func (s *SettingsService) SetReminders(ctx context.Context, chatID int64, enabled bool) error {
	if _, err := s.GetOrCreate(ctx, chatID); err != nil {
		return err
	}
	return s.repository.SetRemindersEnabled(ctx, chatID, enabled)
}
