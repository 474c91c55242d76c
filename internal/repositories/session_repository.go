package repositories

import (
	"errors"
	"sync"
	"time"

	"bank-ledger/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

// NewSessionRepository creates an empty session repository
func NewSessionRepository() SessionRepositoryInterface {
	return &sessionRepository{sessions: make(map[string]models.Session)}
}

func (r *sessionRepository) Save(session *models.Session) error {
	if session == nil || session.Username == "" {
		return errors.New("session requires a username")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Username] = *session
	return nil
}

func (r *sessionRepository) GetByUsername(username string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[username]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Delete(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[username]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, username)
	return nil
}

// DeleteExpired removes every session that expired before now
func (r *sessionRepository) DeleteExpired(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for username, session := range r.sessions {
		if session.IsExpired(now) {
			delete(r.sessions, username)
			removed++
		}
	}
	return removed, nil
}

func (r *sessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
