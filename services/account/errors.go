package account

import "errors"

var (
	// ErrEmailTaken marks registration attempts with an email already on file.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrProfileNotFound marks lookups where no profile matched the given id.
	ErrProfileNotFound = errors.New("profile not found")
)
