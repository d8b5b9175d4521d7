package cache

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/openrelief/disasterhub/internal/database/testutil"
)

func TestDatabaseStoreRoundTrip(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := clockwork.NewFakeClock()
	store := NewDatabaseStore(db, WithClock(clock))

	ctx := context.Background()

	_, found, err := store.Get(ctx, "/disasters/xyz/official-updates")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Set(ctx, "/disasters/xyz/official-updates", []byte(`[{"title":"Flood in NYC"}]`)))

	entry, found, err := store.Get(ctx, "/disasters/xyz/official-updates")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`[{"title":"Flood in NYC"}]`), entry.Value)
	require.WithinDuration(t, clock.Now().Add(DefaultTTL), entry.ExpiresAt, time.Second)
}

func TestDatabaseStoreUpsertLastWriterWins(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	store := NewDatabaseStore(db)

	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`"v1"`)))
	require.NoError(t, store.Set(ctx, "k", []byte(`"v2"`)))

	entry, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`"v2"`), entry.Value)

	// A second key does not disturb the first.
	require.NoError(t, store.Set(ctx, "other", []byte(`"v3"`)))
	entry, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`"v2"`), entry.Value)
}

func TestDatabaseStoreExpiryWindow(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := clockwork.NewFakeClock()
	store := NewDatabaseStore(db, WithClock(clock))

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte(`[]`)))

	// Just inside the TTL window the entry is fresh.
	clock.Advance(DefaultTTL - time.Second)
	entry, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, entry.Fresh(clock.Now()))

	// Expired entries are still returned; freshness is the caller's call.
	clock.Advance(2 * time.Second)
	entry, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, entry.Fresh(clock.Now()))
}

func TestEntryFreshBoundary(t *testing.T) {
	now := time.Now()

	// expires_at == now is already stale; strictly-greater is required.
	require.False(t, Entry{ExpiresAt: now}.Fresh(now))
	require.True(t, Entry{ExpiresAt: now.Add(time.Nanosecond)}.Fresh(now))
	require.False(t, Entry{ExpiresAt: now.Add(-time.Second)}.Fresh(now))
}

func TestDatabaseStoreCustomTTL(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := clockwork.NewFakeClock()
	store := NewDatabaseStore(db, WithClock(clock), WithTTL(time.Minute))

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte(`[]`)))

	entry, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.WithinDuration(t, clock.Now().Add(time.Minute), entry.ExpiresAt, time.Second)
}

func TestDatabaseStoreDelete(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	store := NewDatabaseStore(db)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte(`[]`)))
	require.NoError(t, store.Delete(ctx, "k"))

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)
}
