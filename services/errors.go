package services

import "errors"

var (
	// ErrForbidden means the record exists but the requester doesn't own
	// it. Deliberately distinct from repository.ErrNotFound.
	ErrForbidden = errors.New("forbidden")

	ErrEmptyCart = errors.New("cart is empty")

	// ErrConflict means a guarded update lost a race with a concurrent
	// transition.
	ErrConflict = errors.New("conflicting update")
)
