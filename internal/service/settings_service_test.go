package service

import (
	"context"
	"testing"

	"anoa.com/classsite/internal/mocks"
	"anoa.com/classsite/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceToString(t *testing.T) {
	assert.Equal(t, "plain", coerceToString("plain"))
	assert.Equal(t, "", coerceToString(nil))
	assert.Equal(t, "5", coerceToString(float64(5)))
	assert.Equal(t, "2.5", coerceToString(2.5))
	assert.Equal(t, "true", coerceToString(true))
	assert.Equal(t, `{"a":"b"}`, coerceToString(map[string]any{"a": "b"}))
	assert.Equal(t, `["x","y"]`, coerceToString([]any{"x", "y"}))
}

func TestSettingsGroupRoundTrip(t *testing.T) {
	repo := mocks.NewMockSettingRepository()
	svc := NewSettingsService(repo, nil)
	ctx := context.Background()

	written, err := svc.GroupPut(ctx, "about", map[string]any{
		"title":   "About Our Class",
		"mission": "Learn together",
	})
	require.NoError(t, err)
	assert.Equal(t, "About Our Class", written["title"])

	// Keys land in the store under the page prefix.
	assert.Equal(t, "Learn together", repo.Settings["about.mission"])

	values, err := svc.GroupGet(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "About Our Class", values["title"])
	_, present := values["vision"]
	assert.False(t, present)
}

func TestSettingsUnknownPage(t *testing.T) {
	svc := NewSettingsService(mocks.NewMockSettingRepository(), nil)
	ctx := context.Background()

	_, err := svc.GroupGet(ctx, "nope")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.GroupPut(ctx, "nope", map[string]any{"a": "b"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSettingsGroupPutPartialFailure(t *testing.T) {
	repo := mocks.NewMockSettingRepository()
	svc := NewSettingsService(repo, nil)
	ctx := context.Background()

	_, err := svc.GroupPut(ctx, "home", map[string]any{
		"title":    "Kelas 9A",
		"subtitle": "One class, one family",
	})
	require.NoError(t, err)

	repo.FailOnKey = "home.title"
	_, err = svc.GroupPut(ctx, "home", map[string]any{"title": "renamed"})
	assert.Error(t, err)

	// The failed write leaves earlier state in place, and a fresh group-get
	// reflects the store, not a stale cache entry.
	values, err := svc.GroupGet(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Kelas 9A", values["title"])
	assert.Equal(t, "One class, one family", values["subtitle"])
}
