package repositories

import (
	"time"

	"bank-ledger/internal/models"
)

// UserRepositoryInterface defines the contract for user storage
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	List() ([]*models.User, error)
}

// SessionRepositoryInterface stores at most one live session per username
type SessionRepositoryInterface interface {
	// Save replaces any session already held by the same username
	Save(session *models.Session) error
	GetByUsername(username string) (*models.Session, error)
	Delete(username string) error
	DeleteExpired(now time.Time) (int64, error)
	Count() int
}
