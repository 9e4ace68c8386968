package sessionstore

import "context"

// DisabledStore models persistence that is switched off, e.g. cookies blocked
// by user policy.
type DisabledStore struct{}

func (DisabledStore) ReadEntry(context.Context, string) (string, error) {
	return "", ErrEntryNotFound
}

func (DisabledStore) WriteEntry(context.Context, string, string, EntryOptions) error {
	return ErrStoreUnavailable
}
