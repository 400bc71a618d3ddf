package session_test

import (
	"testing"
	"time"

	"mealdash/internal/adapters/out/session"
	"mealdash/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCartStore_InvalidTTL(t *testing.T) {
	_, err := session.NewInMemoryCartStore(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrTTLIsInvalid)

	_, err = session.NewInMemoryCartStore(-time.Minute)
	require.Error(t, err)
}

func TestInMemoryCartStore_Get_CreatesEmptyCartOnFirstTouch(t *testing.T) {
	ctx := t.Context()
	store, err := session.NewInMemoryCartStore(time.Hour)
	require.NoError(t, err)

	c, err := store.Get(ctx, "session-1")

	require.NoError(t, err)
	assert.Equal(t, "session-1", c.SessionID())
	assert.True(t, c.IsEmpty())
}

func TestInMemoryCartStore_SaveAndGet_RoundTrip(t *testing.T) {
	ctx := t.Context()
	store, err := session.NewInMemoryCartStore(time.Hour)
	require.NoError(t, err)

	c, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.NoError(t, c.AddItem(kernel.NewUUID()))
	require.NoError(t, store.Save(ctx, c))

	loaded, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, loaded.Entries(), 1)
}

func TestInMemoryCartStore_Clear_EmptiesSession(t *testing.T) {
	ctx := t.Context()
	store, err := session.NewInMemoryCartStore(time.Hour)
	require.NoError(t, err)

	c, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.NoError(t, c.AddItem(kernel.NewUUID()))
	require.NoError(t, store.Save(ctx, c))

	require.NoError(t, store.Clear(ctx, "session-1"))

	loaded, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestInMemoryCartStore_SessionsAreIsolated(t *testing.T) {
	ctx := t.Context()
	store, err := session.NewInMemoryCartStore(time.Hour)
	require.NoError(t, err)

	first, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.NoError(t, first.AddItem(kernel.NewUUID()))
	require.NoError(t, store.Save(ctx, first))

	second, err := store.Get(ctx, "session-2")
	require.NoError(t, err)
	assert.True(t, second.IsEmpty())
}

func TestInMemoryCartStore_PruneExpired(t *testing.T) {
	ctx := t.Context()
	store, err := session.NewInMemoryCartStore(time.Minute)
	require.NoError(t, err)

	c, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.NoError(t, c.AddItem(kernel.NewUUID()))
	require.NoError(t, store.Save(ctx, c))

	// before the deadline nothing goes
	assert.Equal(t, 0, store.PruneExpired(time.Now()))

	pruned := store.PruneExpired(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 1, pruned)

	loaded, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestInMemoryCartStore_ExpiredCartReadsAsEmpty(t *testing.T) {
	ctx := t.Context()
	store, err := session.NewInMemoryCartStore(time.Nanosecond)
	require.NoError(t, err)

	c, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.NoError(t, c.AddItem(kernel.NewUUID()))
	require.NoError(t, store.Save(ctx, c))

	time.Sleep(time.Millisecond)

	loaded, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
