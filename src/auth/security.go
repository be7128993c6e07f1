package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// VerifyCredentials checks if the provided credentials are valid. It returns
// the user, without the password hash, on success.
func (s *UserStore) VerifyCredentials(username, password string) (bool, *User) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storedUser, exists := s.users[username]
	if !exists {
		return false, nil
	}

	// Hash the password using the same parameters and salt
	hash := argon2.IDKey(
		[]byte(password),
		storedUser.PasswordHash.Salt,
		storedUser.PasswordHash.Time,
		storedUser.PasswordHash.Memory,
		storedUser.PasswordHash.Threads,
		storedUser.PasswordHash.KeyLen,
	)

	if subtle.ConstantTimeCompare(hash, storedUser.PasswordHash.Hash) != 1 {
		return false, nil
	}
	return true, &User{
		ID:       storedUser.ID,
		Username: storedUser.Username,
	}
}
