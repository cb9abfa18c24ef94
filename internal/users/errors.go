package users

import "errors"

var (
	// ErrNotFound indicates the user was not found.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate indicates the username or email is already taken.
	ErrDuplicate = errors.New("username or email already exists")

	// ErrBadCredentials indicates login failed.
	ErrBadCredentials = errors.New("invalid username or password")
)
