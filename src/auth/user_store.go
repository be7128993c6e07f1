package auth

import (
	"slices"
	"sync"
	"time"
)

// UserStore keeps server users and their password hashes in memory.
type UserStore struct {
	params HashParams
	users  map[string]User // username -> user
	mu     sync.RWMutex
}

// NewUserStore creates an empty store hashing new passwords with params.
func NewUserStore(params HashParams) *UserStore {
	return &UserStore{
		params: params,
		users:  make(map[string]User),
	}
}

// GetUser retrieves a user by username, without the password hash.
func (s *UserStore) GetUser(username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storedUser, exists := s.users[username]
	if !exists {
		return nil, ErrUserNotFound
	}
	return &User{
		ID:             storedUser.ID,
		Username:       storedUser.Username,
		CreatedAt:      storedUser.CreatedAt,
		LastModifiedAt: storedUser.LastModifiedAt,
	}, nil
}

// ListUsers returns all usernames in sorted order.
func (s *UserStore) ListUsers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usernames := make([]string, 0, len(s.users))
	for name := range s.users {
		usernames = append(usernames, name)
	}
	slices.Sort(usernames)
	return usernames
}

// AddUser adds a new user to the store
func (s *UserStore) AddUser(user NewUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return ErrUserAlreadyExists
	}

	hash, err := hashPassword(user.Password, s.params)
	if err != nil {
		return err
	}

	now := time.Now()
	s.users[user.Username] = User{
		ID:             user.ID,
		Username:       user.Username,
		PasswordHash:   hash,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
	return nil
}

// UpdateUser replaces the password of an existing user
func (s *UserStore) UpdateUser(updatedUser NewUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existingUser, exists := s.users[updatedUser.Username]
	if !exists {
		return ErrUserNotFound
	}

	hash, err := hashPassword(updatedUser.Password, s.params)
	if err != nil {
		return err
	}

	existingUser.PasswordHash = hash
	existingUser.LastModifiedAt = time.Now()
	s.users[updatedUser.Username] = existingUser
	return nil
}

// RemoveUser removes a user from the store
func (s *UserStore) RemoveUser(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; !exists {
		return ErrUserNotFound
	}
	delete(s.users, username)
	return nil
}
