package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"public-chat-app/entity"
	"public-chat-app/exception"
	"public-chat-app/repository"
	"public-chat-app/testutil"
	"public-chat-app/usecase"
)

func newThemeUsecase(t *testing.T) (usecase.ThemeUsecase, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	uc := usecase.NewThemeUsecase(repository.NewThemeRepository(), db, testutil.NewQuietLog())
	return uc, db
}

func activeCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&entity.ChatTheme{}).Where("is_active = ?", true).Count(&count).Error)
	return count
}

func TestListThemesSeedsPresets(t *testing.T) {
	uc, _ := newThemeUsecase(t)

	themes, err := uc.ListThemes(context.Background())
	require.NoError(t, err)
	require.Len(t, themes, 6)
	assert.Equal(t, "Classic Blue", themes[0].Name)
	assert.Equal(t, "Dark Mode", themes[5].Name)
}

func TestGetActiveThemeUnset(t *testing.T) {
	uc, _ := newThemeUsecase(t)

	_, err := uc.GetActiveTheme(context.Background())
	var notFoundErr *exception.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestSetActiveTheme(t *testing.T) {
	uc, db := newThemeUsecase(t)

	set, err := uc.SetActiveTheme(context.Background(), 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, set.ID)
	assert.True(t, set.IsActive)

	active, err := uc.GetActiveTheme(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, active.ID)
	assert.EqualValues(t, 1, activeCount(t, db))
}

func TestSetActiveThemeSwitch(t *testing.T) {
	uc, db := newThemeUsecase(t)

	_, err := uc.SetActiveTheme(context.Background(), 2)
	require.NoError(t, err)

	_, err = uc.SetActiveTheme(context.Background(), 5)
	require.NoError(t, err)

	active, err := uc.GetActiveTheme(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, active.ID)

	// switching never leaves two actives behind
	assert.EqualValues(t, 1, activeCount(t, db))
}

func TestSetActiveThemeUnknown(t *testing.T) {
	uc, db := newThemeUsecase(t)

	_, err := uc.SetActiveTheme(context.Background(), 999)
	var notFoundErr *exception.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	assert.EqualValues(t, 0, activeCount(t, db))
}
