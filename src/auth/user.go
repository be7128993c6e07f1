package auth

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/argon2"
)

type PasswordHash struct {
	Hash    []byte `json:"hash"`
	Salt    []byte `json:"salt"`
	Method  string `json:"method"`  // "argon2id"
	Time    uint32 `json:"time"`    // time parameter for Argon2
	Memory  uint32 `json:"memory"`  // memory parameter in KiB
	Threads uint8  `json:"threads"` // threads parameter
	KeyLen  uint32 `json:"keylen"`  // length of the hash in bytes
}

type User struct {
	ID             string
	Username       string
	PasswordHash   PasswordHash
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

type NewUser struct {
	ID       string
	Username string
	Password string
}

// HashParams are the Argon2id cost parameters applied to new passwords.
type HashParams struct {
	Time     uint32
	Memory   uint32 // KiB
	Threads  uint8
	KeyLen   uint32
	SaltSize int
}

// DefaultHashParams follows the OWASP recommendation:
// time 1, 64 MB memory, 4 threads, 32 byte key.
var DefaultHashParams = HashParams{
	Time:     1,
	Memory:   64 * 1024,
	Threads:  4,
	KeyLen:   32,
	SaltSize: 16,
}

// hashPassword hashes password with a fresh random salt.
func hashPassword(password string, params HashParams) (PasswordHash, error) {
	salt := make([]byte, params.SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return PasswordHash{}, fmt.Errorf("failed to generate salt: %w", err)
	}

	return PasswordHash{
		Hash:    argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, params.KeyLen),
		Salt:    salt,
		Method:  "argon2id",
		Time:    params.Time,
		Memory:  params.Memory,
		Threads: params.Threads,
		KeyLen:  params.KeyLen,
	}, nil
}
