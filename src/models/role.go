package models

import (
	"fmt"
	"unicode/utf8"

	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
)

// Role is a player's position, e.g. "Quarterback" / "QB  ".
// The short name is always exactly 4 characters; NewRole is the only way to
// build one.
type Role struct {
	FullName  string
	shortName [4]rune
}

// NewRole validates shortName and returns ErrInvalidShortName unless it is
// exactly 4 characters (runes, not bytes).
func NewRole(fullName, shortName string) (Role, error) {
	if utf8.RuneCountInString(shortName) != 4 {
		return Role{}, pbcerrors.ErrInvalidShortName
	}
	var short [4]rune
	copy(short[:], []rune(shortName))
	return Role{FullName: fullName, shortName: short}, nil
}

// MustRole is NewRole for static data; it panics on a bad short name.
func MustRole(fullName, shortName string) Role {
	r, err := NewRole(fullName, shortName)
	if err != nil {
		panic(fmt.Sprintf("role %q: %v", fullName, err))
	}
	return r
}

// ShortName returns the 4-character short name.
func (r Role) ShortName() string {
	return string(r.shortName[:])
}

func (r Role) String() string {
	return fmt.Sprintf("%s (%s)", r.FullName, r.ShortName())
}
