package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("", filepath.Join(t.TempDir(), "atlas.db"))
	require.NoError(t, err)
	return s
}

func TestCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entry := &ResponseLog{
		UserPrompt:     "i feel like nothing matters",
		NormalResponse: "plain reply",
		AtlasResponse:  `{"internal_chs_analysis": {}}`,
	}
	require.NoError(t, s.Create(ctx, entry))
	assert.NotEmpty(t, entry.ID)

	got, err := s.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.UserPrompt, got.UserPrompt)
	assert.Equal(t, entry.NormalResponse, got.NormalResponse)
	assert.Nil(t, got.UserRating)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttachFeedback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entry := &ResponseLog{UserPrompt: "p", NormalResponse: "n", AtlasResponse: "a"}
	require.NoError(t, s.Create(ctx, entry))

	updated, err := s.AttachFeedback(ctx, entry.ID, 4, "the second reply felt warmer")
	require.NoError(t, err)
	require.NotNil(t, updated.UserRating)
	assert.Equal(t, 4, *updated.UserRating)
	require.NotNil(t, updated.UserFeedback)
	assert.Equal(t, "the second reply felt warmer", *updated.UserFeedback)

	_, err = s.AttachFeedback(ctx, "missing", 1, "")
	assert.ErrorIs(t, err, ErrNotFound)
}
