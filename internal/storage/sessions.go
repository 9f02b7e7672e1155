package storage

import (
	"sync"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// GetOrCreate returns the session for a chat, creating it on first contact.
// The created flag lets callers run one-time initialization such as loading
// persisted settings into the fresh session.
func (s *SessionStorage) GetOrCreate(chatID int64) (session *entities.QuizSession, created bool) {
	s.mu.RLock()
	session, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return session, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok = s.sessions[chatID]; ok {
		return session, false
	}

	session = entities.NewQuizSession(chatID)
	s.sessions[chatID] = session
	return session, true
}

// Get retrieves the session for a chat if one exists.
func (s *SessionStorage) Get(chatID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[chatID]
	return session, ok
}

// Delete removes the session for a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}
