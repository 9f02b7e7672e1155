package service

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderService broadcasts a daily play reminder to opted-in chats on a
// cron schedule.
type ReminderService struct {
	settingsRepo SettingsRepository
	notifier     ReminderNotifier
	schedule     string
	logger       *zap.Logger
}

// NewReminderService creates a new reminder service with a cron schedule
// expression (UTC).
func NewReminderService(settingsRepo SettingsRepository, schedule string, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		settingsRepo: settingsRepo,
		schedule:     schedule,
		logger:       logger,
	}
}

// SetNotifier sets the notifier (called after the handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start begins the reminder scheduling loop and blocks until ctx is done.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started", zap.String("schedule", s.schedule))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		if err := s.broadcast(ctx); err != nil {
			s.logger.Error("failed to broadcast reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

// broadcast sends the reminder to every opted-in chat, a few at a time.
func (s *ReminderService) broadcast(ctx context.Context) error {
	if s.notifier == nil {
		return nil
	}

	chatIDs, err := s.settingsRepo.ListReminderChatIDs(ctx)
	if err != nil {
		return err
	}

	const maxConcurrent = 10
	sem := make(chan struct{}, maxConcurrent)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sent int
	)

	for _, chatID := range chatIDs {
		sem <- struct{}{}
		wg.Add(1)

		go func(chatID int64) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.notifier.SendReminder(chatID); err != nil {
				s.logger.Warn("failed to send reminder",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
				return
			}

			mu.Lock()
			sent++
			mu.Unlock()
		}(chatID)
	}

	wg.Wait()

	s.logger.Info("reminders processed",
		zap.Int("opted_in", len(chatIDs)),
		zap.Int("sent", sent),
	)

	return nil
}
