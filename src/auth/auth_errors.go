package auth

import "github.com/obraunsdorf/playbook-creator/src/pbcerrors"

// ErrUserAlreadyExists is returned when a user already exists in the system.
var ErrUserAlreadyExists = pbcerrors.New(pbcerrors.CodeAlreadyExists, "user already exists")
var ErrUserNotFound = pbcerrors.New(pbcerrors.CodeNotFound, "user not found")
var ErrInvalidCredentials = pbcerrors.New(pbcerrors.CodeUnauthorized, "invalid username or password")
