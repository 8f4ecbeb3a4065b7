package repository

import (
	"fmt"
	"sync"

	"user-service/models"
)

// MemoryUserRepository keeps users in a map keyed by id.
// Stored and returned users are copies, so callers never share state with the map.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int]*models.User
	nextID int
}

var _ UserRepository = (*MemoryUserRepository)(nil)

// NewMemoryUserRepository creates an empty repository; ids start at 1.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

// Save stores user. A user without an id gets the next id; a user with an
// id overwrites whatever is stored there.
func (r *MemoryUserRepository) Save(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := user.ID()
	if !ok {
		id = r.nextID
		r.nextID++
		r.users[id] = user.WithID(id)
		return
	}
	r.users[id] = user.Clone()
}

// Update replaces a stored user. It fails if the user has no id or the id is unknown.
func (r *MemoryUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := user.ID()
	if !ok {
		return fmt.Errorf("cannot update user without ID: %w", ErrUserNotFound)
	}
	if _, exists := r.users[id]; !exists {
		return &NotFoundError{ID: id}
	}
	r.users[id] = user.Clone()
	return nil
}

func (r *MemoryUserRepository) Delete(user *models.User) {
	id, ok := user.ID()
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

func (r *MemoryUserRepository) GetByID(id int) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, false
	}
	return user.Clone(), true
}

// GetByIDOrFail is GetByID returning a *NotFoundError for unknown ids.
func (r *MemoryUserRepository) GetByIDOrFail(id int) (*models.User, error) {
	user, ok := r.GetByID(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return user, nil
}

// GetAll returns a snapshot of every stored user keyed by id.
func (r *MemoryUserRepository) GetAll() map[int]*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make(map[int]*models.User, len(r.users))
	for id, user := range r.users {
		all[id] = user.Clone()
	}
	return all
}
