package sessionstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessiontag/pkg/sessionstore"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("read write clear", func(t *testing.T) {
		t.Parallel()
		s := sessionstore.NewMemoryStore()

		_, err := s.ReadEntry(ctx, "sid")
		assert.ErrorIs(t, err, sessionstore.ErrEntryNotFound)

		opts := sessionstore.NewEntryOptions(sessionstore.WithPath("/app"))
		require.NoError(t, s.WriteEntry(ctx, "sid", "abc", opts))

		v, err := s.ReadEntry(ctx, "sid")
		require.NoError(t, err)
		assert.Equal(t, "abc", v)

		got, ok := s.EntryOptions("sid")
		require.True(t, ok)
		assert.Equal(t, "/app", got.Path)
		assert.Equal(t, sessionstore.SameSiteLax, got.SameSite)
		assert.True(t, got.Secure)

		s.Clear()
		assert.Zero(t, s.Len())
		_, err = s.ReadEntry(ctx, "sid")
		assert.ErrorIs(t, err, sessionstore.ErrEntryNotFound)
	})

	t.Run("delete single entry", func(t *testing.T) {
		t.Parallel()
		s := sessionstore.NewMemoryStore()
		require.NoError(t, s.WriteEntry(ctx, "sid", "a", sessionstore.DefaultEntryOptions()))
		require.NoError(t, s.WriteEntry(ctx, "sfp", "b", sessionstore.DefaultEntryOptions()))

		s.Delete("sfp")
		assert.Equal(t, 1, s.Len())
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()
		s := sessionstore.NewMemoryStore()

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = s.WriteEntry(ctx, "sid", "v", sessionstore.DefaultEntryOptions())
				_, _ = s.ReadEntry(ctx, "sid")
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 1, s.Len())
	})
}

func TestDisabledStore(t *testing.T) {
	t.Parallel()
	var s sessionstore.Store = sessionstore.DisabledStore{}

	_, err := s.ReadEntry(context.Background(), "sid")
	assert.ErrorIs(t, err, sessionstore.ErrEntryNotFound)

	err = s.WriteEntry(context.Background(), "sid", "v", sessionstore.DefaultEntryOptions())
	assert.ErrorIs(t, err, sessionstore.ErrStoreUnavailable)
}

func TestEntryOptions(t *testing.T) {
	t.Parallel()

	o := sessionstore.DefaultEntryOptions()
	assert.Equal(t, "/", o.Path)
	assert.Equal(t, sessionstore.SameSiteLax, o.SameSite)
	assert.True(t, o.Secure)

	o = sessionstore.NewEntryOptions(sessionstore.WithPath(""), sessionstore.WithSameSite(""))
	assert.Equal(t, "/", o.Path, "empty path keeps default")
	assert.Equal(t, sessionstore.SameSiteLax, o.SameSite, "empty same-site keeps default")

	assert.Equal(t, sessionstore.SameSiteStrict, sessionstore.ParseSameSite("strict"))
	assert.Equal(t, sessionstore.SameSiteNone, sessionstore.ParseSameSite("NONE"))
	assert.Equal(t, sessionstore.SameSiteLax, sessionstore.ParseSameSite("weird"))
}
