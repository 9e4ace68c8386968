package sessionstore

import "context"

// Store is a session-scoped key-value port.
type Store interface {
	// ReadEntry returns the value stored under name, or ErrEntryNotFound.
	ReadEntry(ctx context.Context, name string) (string, error)

	// WriteEntry stores value under name. Entries never expire on their own.
	WriteEntry(ctx context.Context, name, value string, opts EntryOptions) error
}
