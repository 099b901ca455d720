package usecase

import "errors"

var (
	// ErrPostNotFound is returned when no post has the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrOwnerRequired is returned when a post is created without an authenticated owner.
	ErrOwnerRequired = errors.New("post owner is required")
)
