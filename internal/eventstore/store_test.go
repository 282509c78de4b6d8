package eventstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_AppendAndByRun(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "run-1", TypeRunStarted, []byte(`{"command":"month"}`), map[string]string{"host": "a"}))
	require.NoError(t, store.Append(ctx, "run-2", TypeRunStarted, []byte(`{}`), nil))
	require.NoError(t, store.Append(ctx, "run-1", TypeRunCompleted, nil, nil))

	events, err := store.ByRun(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, TypeRunStarted, events[0].Type())
	assert.Equal(t, "run-1", events[0].RunID())
	assert.Equal(t, "a", events[0].Metadata()["host"])
	assert.JSONEq(t, `{"command":"month"}`, string(events[0].Payload()))
	assert.Equal(t, "{}", string(events[1].Payload()))
	assert.Less(t, events[0].ID(), events[1].ID())
	assert.WithinDuration(t, time.Now(), events[1].Timestamp(), time.Minute)
}

func TestSQLiteStore_RangeAndRecentRuns(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Append(ctx, id, TypeRunStarted, nil, nil))
	}
	require.NoError(t, store.Append(ctx, "a", TypeRunCompleted, nil, nil))

	events, err := store.Range(ctx, time.Now().Add(-time.Minute), time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, events, 4)

	events, err = store.Range(ctx, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, events)

	runs, err := store.RecentRuns(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, runs)
}

func TestSQLiteStore_FilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, "r", TypeRunStarted, nil, nil))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	events, err := reopened.ByRun(ctx, "r")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
