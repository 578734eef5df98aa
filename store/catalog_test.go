package store

import (
	"errors"
	"testing"

	"greenscreen_kiosk/model"
	"greenscreen_kiosk/utils"

	"github.com/stretchr/testify/assert"
)

func TestCreateBackgroundDerivesDisplayNameAndSlug(t *testing.T) {
	s := NewCatalogStore(testDB(t))

	bg, err := s.CreateBackground(model.BackgroundInput{Filename: "beach-sunset.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, "beach-sunset", bg.DisplayName)
	assert.Equal(t, "beach-sunset", bg.Slug)
	assert.True(t, bg.Enabled)

	// Same display name gets a suffixed slug.
	dup, err := s.CreateBackground(model.BackgroundInput{
		Filename:    "beach-sunset-v2.jpg",
		DisplayName: "beach-sunset",
	})
	assert.NoError(t, err)
	assert.Equal(t, "beach-sunset-1", dup.Slug)

	got, err := s.GetBackgroundBySlug("beach-sunset")
	assert.NoError(t, err)
	assert.Equal(t, bg.ID, got.ID)
}

func TestListBackgroundsEnabledFilter(t *testing.T) {
	s := NewCatalogStore(testDB(t))

	_, err := s.CreateBackground(model.BackgroundInput{Filename: "on.jpg"})
	assert.NoError(t, err)
	_, err = s.CreateBackground(model.BackgroundInput{
		Filename: "off.jpg",
		Enabled:  utils.Ptr(false),
	})
	assert.NoError(t, err)

	all, err := s.ListBackgrounds(false)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	enabled, err := s.ListBackgrounds(true)
	assert.NoError(t, err)
	assert.Len(t, enabled, 1)
	assert.Equal(t, "on.jpg", enabled[0].Filename)
}

func TestDeleteThemeKeepsBackgrounds(t *testing.T) {
	s := NewCatalogStore(testDB(t))

	theme, err := s.CreateTheme(model.ThemeInput{Name: "Beach", TabLabel: "beach"})
	assert.NoError(t, err)

	bg, err := s.CreateBackground(model.BackgroundInput{
		Filename: "beach-waves.jpg",
		ThemeID:  &theme.ID,
	})
	assert.NoError(t, err)

	assert.NoError(t, s.DeleteTheme(theme.ID))

	themes, err := s.ListThemes()
	assert.NoError(t, err)
	assert.Empty(t, themes)

	orphan, err := s.GetBackgroundBySlug(bg.Slug)
	assert.NoError(t, err)
	assert.Nil(t, orphan.ThemeID)
}

func TestDeleteThemeNotFound(t *testing.T) {
	s := NewCatalogStore(testDB(t))
	assert.True(t, errors.Is(s.DeleteTheme(42), ErrNotFound))
}

func TestUpdateBackground(t *testing.T) {
	s := NewCatalogStore(testDB(t))

	bg, err := s.CreateBackground(model.BackgroundInput{Filename: "city.jpg"})
	assert.NoError(t, err)

	updated, err := s.UpdateBackground(bg.ID, model.BackgroundInput{
		Filename:    bg.Filename,
		DisplayName: "City Lights",
		Enabled:     utils.Ptr(false),
		SortOrder:   5,
	})
	assert.NoError(t, err)
	assert.Equal(t, "City Lights", updated.DisplayName)
	assert.False(t, updated.Enabled)
	assert.Equal(t, 5, updated.SortOrder)

	_, err = s.UpdateBackground(9999, model.BackgroundInput{Filename: "x.jpg"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteBackground(t *testing.T) {
	s := NewCatalogStore(testDB(t))

	bg, err := s.CreateBackground(model.BackgroundInput{Filename: "gone.jpg"})
	assert.NoError(t, err)

	assert.NoError(t, s.DeleteBackground(bg.ID))
	assert.True(t, errors.Is(s.DeleteBackground(bg.ID), ErrNotFound))
}
