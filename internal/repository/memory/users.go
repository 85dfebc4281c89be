package memory

import (
	"sync"

	"github.com/ibeloyar/cupcake/internal/model"
)

// Repository is the in-memory user directory keyed by email.
// Entries are only ever added.
type Repository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func New() *Repository {
	return &Repository{
		users: make(map[string]model.User),
	}
}

func (r *Repository) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return model.ErrUserExists
	}

	r.users[user.Email] = user

	return nil
}

func (r *Repository) GetUserByEmail(email string) *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil
	}

	return &user
}
