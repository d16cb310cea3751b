package store

import (
	"errors"
	"fmt"
)

// Common store errors. Implementations translate driver-level "no rows"
// conditions into these so callers can use errors.Is without knowing
// which backend is underneath.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrTaskNotFound indicates that the requested task does not exist.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = fmt.Errorf("%w: team", ErrNotFound)

	// ErrMembershipNotFound indicates that no membership exists for the
	// given (user, team) pair.
	ErrMembershipNotFound = fmt.Errorf("%w: membership", ErrNotFound)
)
