package types

import "errors"

var (
	// ErrAuth means the provider credential exchange failed. It is fatal for
	// the gateway call that triggered it and surfaces as a tab-level error
	// state; it is never retried automatically.
	ErrAuth = errors.New("provider authentication failed")

	// ErrDuplicateItem means an add collided with an existing (id, type)
	// entry. Surfaced to the user as a notice, not fatal.
	ErrDuplicateItem = errors.New("item already in itinerary")

	// ErrInvalidItem means an item failed validation before entering the
	// itinerary (missing id, non-positive price or unknown type tag).
	ErrInvalidItem = errors.New("invalid trip item")
)
