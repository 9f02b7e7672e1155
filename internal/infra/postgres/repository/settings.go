package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-quiz-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to per-chat settings in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates default settings for a chat.
func (r *SettingsRepository) Create(ctx context.Context, chatID int64) error {
	query := `
		INSERT INTO user_settings (chat_id, muted, reminders_enabled, created_at, updated_at)
		VALUES ($1, FALSE, FALSE, NOW(), NOW())
		ON CONFLICT (chat_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, chatID)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByChatID retrieves settings for a chat.
func (r *SettingsRepository) GetByChatID(ctx context.Context, chatID int64) (*entities.UserSettings, error) {
	query := `
		SELECT chat_id, muted, reminders_enabled, created_at, updated_at
		FROM user_settings
		WHERE chat_id = $1
	`

	var settings entities.UserSettings
	err := r.db.QueryRow(ctx, query, chatID).Scan(
		&settings.ChatID,
		&settings.Muted,
		&settings.RemindersEnabled,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// SetMuted upserts the mute flag for a chat, creating the settings row on
// first use so callers don't need a separate existence check.
func (r *SettingsRepository) SetMuted(ctx context.Context, chatID int64, muted bool) error {
	query := `
		INSERT INTO user_settings (chat_id, muted, reminders_enabled, created_at, updated_at)
		VALUES ($1, $2, FALSE, NOW(), NOW())
		ON CONFLICT (chat_id) DO UPDATE
		SET muted = EXCLUDED.muted,
		    updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, chatID, muted)
	if err != nil {
		return fmt.Errorf("set muted: %w", err)
	}

	return nil
}

// SetRemindersEnabled upserts the reminder opt-in flag for a chat.
func (r *SettingsRepository) SetRemindersEnabled(ctx context.Context, chatID int64, enabled bool) error {
	query := `
		INSERT INTO user_settings (chat_id, muted, reminders_enabled, created_at, updated_at)
		VALUES ($1, FALSE, $2, NOW(), NOW())
		ON CONFLICT (chat_id) DO UPDATE
		SET reminders_enabled = EXCLUDED.reminders_enabled,
		    updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, chatID, enabled)
	if err != nil {
		return fmt.Errorf("set reminders enabled: %w", err)
	}

	return nil
}

// ListReminderChatIDs returns the chats that opted in to the daily reminder.
func (r *SettingsRepository) ListReminderChatIDs(ctx context.Context) ([]int64, error) {
	query := `
		SELECT chat_id
		FROM user_settings
		WHERE reminders_enabled = TRUE
		ORDER BY chat_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reminder chats: %w", err)
	}
	defer rows.Close()

	var chatIDs []int64
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, fmt.Errorf("scan reminder chat: %w", err)
		}
		chatIDs = append(chatIDs, chatID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminder chats: %w", err)
	}

	return chatIDs, nil
}
