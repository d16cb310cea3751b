package service

import "errors"

// Service-level error taxonomy. Handlers translate these into HTTP statuses;
// anything not matching either sentinel is an unexpected failure and surfaces
// as a generic server error. No operation retries internally.
var (
	// ErrNotFound is returned when a referenced task, user, or team
	// membership does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned on malformed input, such as a
	// non-positive assignee id or a user without a team where one is required.
	ErrInvalidArgument = errors.New("invalid argument")
)
