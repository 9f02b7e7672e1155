package storage

import (
	"sync"
	"time"
)

// ReminderMessage identifies the last reminder sent to a chat.
type ReminderMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// ReminderStorage tracks the last reminder message per chat so a new daily
// reminder can replace the previous one instead of piling up.
type ReminderStorage struct {
	mu       sync.RWMutex
	messages map[int64]ReminderMessage
}

// NewReminderStorage creates a new ReminderStorage.
func NewReminderStorage() *ReminderStorage {
	return &ReminderStorage{
		messages: make(map[int64]ReminderMessage),
	}
}

// UpsertAndGetPrev records the newly sent reminder and returns the previous
// one for the chat, if any, so the caller can delete it.
func (s *ReminderStorage) UpsertAndGetPrev(chatID int64, messageID int) (prev ReminderMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]

	s.messages[chatID] = ReminderMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    time.Now(),
	}

	return prev, hadPrev
}

// Get returns the last reminder sent to a chat.
func (s *ReminderStorage) Get(chatID int64) (ReminderMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[chatID]
	return msg, ok
}

// Delete forgets the last reminder for a chat.
func (s *ReminderStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, chatID)
}
