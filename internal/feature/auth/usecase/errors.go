// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the email or username is already registered.
	ErrUserAlreadyExists = errors.New("email or username already registered")

	// ErrInvalidCredentials is returned when login fails, without saying which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned for any bearer token that cannot be resolved to a user.
	ErrInvalidToken = errors.New("could not validate credentials")

	// ErrPasswordTooLong is returned when the password cannot be hashed because of its length.
	ErrPasswordTooLong = errors.New("password is too long")
)
