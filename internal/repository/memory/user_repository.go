package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"identity-server/internal/domain"
	"identity-server/internal/repository"
)

// UserRepository is an array-backed store for tests and local development.
// Safe for concurrent use.
type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email domain.Email) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email().String() == email.String() {
			return u, nil
		}
	}
	return nil, nil
}

// Save holds the lock across the lookup and the write, so check-and-insert is
// atomic with respect to concurrent registrations.
func (r *UserRepository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if user.ID() == "" {
		saved := domain.ReconstructUser(uuid.NewString(), user.Email(), user.Username(), user.Password(), user.CreatedAt(), now)
		r.users = append(r.users, saved)
		return saved, nil
	}

	for i, u := range r.users {
		if u.ID() == user.ID() {
			updated := domain.ReconstructUser(user.ID(), user.Email(), user.Username(), user.Password(), user.CreatedAt(), now)
			r.users[i] = updated
			return updated, nil
		}
	}
	return nil, nil
}
