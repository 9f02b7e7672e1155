package service

import (
	"context"
	"testing"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
)

func TestGetOrCreateCreatesDefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	settings, err := svc.GetOrCreate(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if settings.ChatID != 1 {
		t.Fatalf("chat id = %d, want 1", settings.ChatID)
	}
	if settings.Muted || settings.RemindersEnabled {
		t.Fatalf("defaults = %+v, want sound on and reminders off", settings)
	}
}

func TestGetOrCreateReturnsExisting(t *testing.T) {
	repo := newFakeSettingsRepo()
	stored := entities.NewUserSettings(2)
	stored.RemindersEnabled = true
	repo.settings[2] = stored

	svc := NewSettingsService(repo)

	settings, err := svc.GetOrCreate(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if !settings.RemindersEnabled {
		t.Fatal("existing settings should be returned, not replaced")
	}
}

func TestToggleRemindersFlips(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	enabled, err := svc.ToggleReminders(ctx, 1)
	if err != nil {
		t.Fatalf("ToggleReminders() error = %v", err)
	}
	if !enabled {
		t.Fatal("first toggle should enable reminders")
	}

	enabled, err = svc.ToggleReminders(ctx, 1)
	if err != nil {
		t.Fatalf("ToggleReminders() error = %v", err)
	}
	if enabled {
		t.Fatal("second toggle should disable reminders")
	}
}

func TestSetRemindersExplicit(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	if _, err := svc.ToggleReminders(ctx, 1); err != nil {
		t.Fatalf("ToggleReminders() error = %v", err)
	}

	ids, err := repo.ListReminderChatIDs(ctx)
	if err != nil {
		t.Fatalf("ListReminderChatIDs() error = %v", err)
	}
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("opted-in chats = %v, want [1]", ids)
	}

	if err := svc.SetReminders(ctx, 1, false); err != nil {
		t.Fatalf("SetReminders() error = %v", err)
	}

	ids, err = repo.ListReminderChatIDs(ctx)
	if err != nil {
		t.Fatalf("ListReminderChatIDs() error = %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("opted-in chats = %v, want none", ids)
	}
}
