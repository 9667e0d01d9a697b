package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) DocumentStore {
	t.Helper()
	return NewSQLiteDocumentStore(testutil.NewTestDB(t))
}

func TestDocumentStore_GetMiss(t *testing.T) {
	store := newStore(t)

	value, ok, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestDocumentStore_PutGet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "doc", []byte(`{"a":1}`)))

	value, ok, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), value)
}

func TestDocumentStore_PutOverwrites(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "doc", []byte("first")))
	require.NoError(t, store.Put(ctx, "doc", []byte("second")))

	value, ok, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("second"), value)
}

func TestDocumentStore_Delete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "doc", []byte("v")))
	require.NoError(t, store.Delete(ctx, "doc"))

	_, ok, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete(ctx, "doc"))
}
