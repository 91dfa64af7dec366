package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrPopulateCachesWithinTTL(t *testing.T) {
	c := New[string](time.Minute)
	calls := 0
	populate := func(context.Context) (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrPopulate(context.Background(), "k", populate)
		require.NoError(t, err)
		assert.Equal(t, "value", got)
	}
	assert.Equal(t, 1, calls)
}

func TestGetOrPopulateRepopulatesAfterExpiry(t *testing.T) {
	c := New[int](time.Minute)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	calls := 0
	populate := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	got, err := c.GetOrPopulate(context.Background(), "k", populate)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	now = now.Add(59 * time.Second)
	got, _ = c.GetOrPopulate(context.Background(), "k", populate)
	assert.Equal(t, 1, got)

	now = now.Add(2 * time.Second)
	got, _ = c.GetOrPopulate(context.Background(), "k", populate)
	assert.Equal(t, 2, got)
}

func TestGetOrPopulateDoesNotCacheErrors(t *testing.T) {
	c := New[string](time.Minute)
	calls := 0
	boom := errors.New("boom")
	populate := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", boom
		}
		return "ok", nil
	}

	_, err := c.GetOrPopulate(context.Background(), "k", populate)
	assert.ErrorIs(t, err, boom)

	got, err := c.GetOrPopulate(context.Background(), "k", populate)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)
}

func TestKeysAreIndependent(t *testing.T) {
	c := New[string](time.Minute)
	a, err := c.GetOrPopulate(context.Background(), "a", func(context.Context) (string, error) { return "A", nil })
	require.NoError(t, err)
	b, err := c.GetOrPopulate(context.Background(), "b", func(context.Context) (string, error) { return "B", nil })
	require.NoError(t, err)
	assert.Equal(t, "A", a)
	assert.Equal(t, "B", b)
}
