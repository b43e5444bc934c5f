package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavorite(t *testing.T) {
	repo := openTestStore(t).PreferenceRepo()
	ctx := context.Background()

	favs, err := repo.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)

	on, err := repo.ToggleFavorite(ctx, "/s/")
	require.NoError(t, err)
	assert.True(t, on)
	_, err = repo.ToggleFavorite(ctx, "/p/")
	require.NoError(t, err)

	favs, err = repo.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/", "/s/"}, favs)

	on, err = repo.ToggleFavorite(ctx, "/s/")
	require.NoError(t, err)
	assert.False(t, on)

	favs, err = repo.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/"}, favs)
}

func TestMarkCompleted_Idempotent(t *testing.T) {
	repo := openTestStore(t).PreferenceRepo()
	ctx := context.Background()

	require.NoError(t, repo.MarkCompleted(ctx, "p-initial"))
	require.NoError(t, repo.MarkCompleted(ctx, "p-initial"))
	require.NoError(t, repo.MarkCompleted(ctx, "k-final"))

	done, err := repo.Completed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k-final", "p-initial"}, done)
}
