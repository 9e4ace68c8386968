package sessionstore

import "errors"

var (
	// ErrEntryNotFound indicates the entry is not present in the store
	ErrEntryNotFound = errors.New("sessionstore.entry_not_found")

	// ErrStoreUnavailable indicates persistence is disabled or blocked
	ErrStoreUnavailable = errors.New("sessionstore.unavailable")

	// ErrWriteFailed indicates the entry could not be written
	ErrWriteFailed = errors.New("sessionstore.write_failed")
)
