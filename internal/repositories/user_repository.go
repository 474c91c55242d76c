package repositories

import (
	"errors"
	"sort"
	"sync"

	"bank-ledger/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository keeps users in memory, keyed by username
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewUserRepository creates an empty user repository
func NewUserRepository() UserRepositoryInterface {
	return &UserRepository{
		users: make(map[string]*models.User),
	}
}

// Create stores a new user
func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return ErrUserAlreadyExists
	}
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

// GetByUsername returns a copy of the stored user
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// Update overwrites an existing user
func (r *UserRepository) Update(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; !ok {
		return ErrUserNotFound
	}
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

// List returns all users ordered by username
func (r *UserRepository) List() ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
	return users, nil
}
