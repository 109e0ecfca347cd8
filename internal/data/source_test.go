package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchFirstPage(t *testing.T) {
	t.Parallel()

	src := NewSource(5, 12, 0)
	page, err := src.Fetch(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, page.Entries, 5)
	require.True(t, page.HasMore)

	seen := make(map[string]bool)
	for i, entry := range page.Entries {
		require.Equal(t, i, entry.Index())
		require.False(t, seen[entry.ID()], "duplicate id %s", entry.ID())
		seen[entry.ID()] = true
	}
}

func TestFetchLastPartialPage(t *testing.T) {
	t.Parallel()

	src := NewSource(5, 12, 0)
	page, err := src.Fetch(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, page.Entries, 2)
	require.False(t, page.HasMore)
	require.Equal(t, 10, page.Entries[0].Index())
}

func TestFetchPastEnd(t *testing.T) {
	t.Parallel()

	src := NewSource(5, 12, 0)
	page, err := src.Fetch(context.Background(), 50)
	require.NoError(t, err)

	require.Empty(t, page.Entries)
	require.False(t, page.HasMore)
}

func TestFetchCanceled(t *testing.T) {
	t.Parallel()

	src := NewSource(5, 12, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Fetch(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}
