package store

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when a preference key is blank.
var ErrEmptyKey = errors.New("preference key must not be empty")

// PreferenceRepo is a small persistent key-value map for user settings.
type PreferenceRepo interface {
	// Get returns the value for key. found is false when the key is unset.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an unset key is not an error.
	Delete(ctx context.Context, key string) error
}
