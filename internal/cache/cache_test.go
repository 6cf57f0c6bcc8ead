package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

func TestRemember_LoadsOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	calls := 0

	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{ID: 1, Nome: "Cardiologia"}}, nil
	}

	first, err := Remember(ctx, store, "especialidades", time.Minute, load)
	require.NoError(t, err)
	second, err := Remember(ctx, store, "especialidades", time.Minute, load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestRemember_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := Remember(ctx, store, "k", time.Minute, func(context.Context) (int, error) {
		return 0, errors.New("db down")
	})
	assert.Error(t, err)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "a", []byte("1"), time.Second))
	v, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	now = now.Add(2 * time.Second)
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, store.Delete(ctx, "a", "b"))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
}
