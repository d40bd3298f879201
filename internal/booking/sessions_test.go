package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreAt(ttl time.Duration, start time.Time) (*SessionStore, *time.Time) {
	store := NewSessionStore(ttl)
	current := start
	store.now = func() time.Time { return current }
	return store, &current
}

func TestSessionStorePutGet(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	defer store.Close()

	w := NewWizard(mustService(t, "laboratory"), instantProcessor(), &fakeGateway{}, nil)
	id := store.Put(w)
	require.NotEmpty(t, id)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Same(t, w, got)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	defer store.Close()

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreExpiry(t *testing.T) {
	store, clock := newStoreAt(30*time.Minute, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
	defer store.Close()

	w := NewWizard(mustService(t, "laboratory"), instantProcessor(), &fakeGateway{}, nil)
	id := store.Put(w)

	*clock = clock.Add(31 * time.Minute)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len(), "expired entry is evicted on access")
}

func TestSessionStoreGetRefreshesTTL(t *testing.T) {
	store, clock := newStoreAt(30*time.Minute, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
	defer store.Close()

	w := NewWizard(mustService(t, "laboratory"), instantProcessor(), &fakeGateway{}, nil)
	id := store.Put(w)

	// Touch the session just before it would expire.
	*clock = clock.Add(29 * time.Minute)
	_, err := store.Get(id)
	require.NoError(t, err)

	// The refresh bought another full TTL.
	*clock = clock.Add(29 * time.Minute)
	_, err = store.Get(id)
	assert.NoError(t, err)
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	defer store.Close()

	w := NewWizard(mustService(t, "laboratory"), instantProcessor(), &fakeGateway{}, nil)
	id := store.Put(w)

	store.Delete(id)
	_, err := store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting again is a no-op.
	store.Delete(id)
}

func TestSessionStoreSweep(t *testing.T) {
	store, clock := newStoreAt(30*time.Minute, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
	defer store.Close()

	fresh := NewWizard(mustService(t, "laboratory"), instantProcessor(), &fakeGateway{}, nil)
	stale := NewWizard(mustService(t, "dental"), instantProcessor(), &fakeGateway{}, nil)

	staleID := store.Put(stale)
	*clock = clock.Add(31 * time.Minute)
	freshID := store.Put(fresh)

	store.sweep()

	assert.Equal(t, 1, store.Len())
	_, err := store.Get(staleID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(freshID)
	assert.NoError(t, err)
}
