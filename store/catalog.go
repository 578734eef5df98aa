package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"greenscreen_kiosk/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CatalogStore owns the theme and background reference data consumed by the
// kiosk selection UI.
type CatalogStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) ListThemes() ([]model.Theme, error) {
	var themes []model.Theme
	err := s.db.Preload("Backgrounds", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order, id")
	}).Order("sort_order, id").Find(&themes).Error
	return themes, err
}

func (s *CatalogStore) CreateTheme(input model.ThemeInput) (*model.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme := model.Theme{
		Name:      input.Name,
		TabLabel:  input.TabLabel,
		Enabled:   true,
		SortOrder: input.SortOrder,
	}
	if input.Enabled != nil {
		theme.Enabled = *input.Enabled
	}
	if err := s.db.Create(&theme).Error; err != nil {
		return nil, err
	}
	return &theme, nil
}

func (s *CatalogStore) UpdateTheme(id uint, input model.ThemeInput) (*model.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var theme model.Theme
	if err := s.db.First(&theme, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	theme.Name = input.Name
	theme.TabLabel = input.TabLabel
	theme.SortOrder = input.SortOrder
	if input.Enabled != nil {
		theme.Enabled = *input.Enabled
	}
	if err := s.db.Save(&theme).Error; err != nil {
		return nil, err
	}
	return &theme, nil
}

// DeleteTheme removes a theme and clears (never deletes) the association on
// its backgrounds.
func (s *CatalogStore) DeleteTheme(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var theme model.Theme
		if err := tx.First(&theme, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Model(&model.Background{}).
			Where("theme_id = ?", id).
			Update("theme_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&theme).Error
	})
}

func (s *CatalogStore) ListBackgrounds(enabledOnly bool) ([]model.Background, error) {
	query := s.db.Order("sort_order, id")
	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}
	var backgrounds []model.Background
	err := query.Find(&backgrounds).Error
	return backgrounds, err
}

func (s *CatalogStore) GetBackgroundBySlug(bgSlug string) (*model.Background, error) {
	var bg model.Background
	if err := s.db.Where("slug = ?", bgSlug).First(&bg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bg, nil
}

func (s *CatalogStore) CreateBackground(input model.BackgroundInput) (*model.Background, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bg := model.Background{
		ThemeID:     input.ThemeID,
		Filename:    input.Filename,
		DisplayName: input.DisplayName,
		Enabled:     true,
		SortOrder:   input.SortOrder,
	}
	if input.Enabled != nil {
		bg.Enabled = *input.Enabled
	}
	if bg.DisplayName == "" {
		bg.DisplayName = displayNameFromFilename(input.Filename)
	}
	bg.Slug = s.uniqueBackgroundSlug(bg.DisplayName)

	if err := s.db.Create(&bg).Error; err != nil {
		return nil, err
	}
	return &bg, nil
}

func (s *CatalogStore) UpdateBackground(id uint, input model.BackgroundInput) (*model.Background, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bg model.Background
	if err := s.db.First(&bg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	bg.ThemeID = input.ThemeID
	bg.SortOrder = input.SortOrder
	if input.DisplayName != "" {
		bg.DisplayName = input.DisplayName
	}
	if input.Enabled != nil {
		bg.Enabled = *input.Enabled
	}
	if err := s.db.Save(&bg).Error; err != nil {
		return nil, err
	}
	return &bg, nil
}

func (s *CatalogStore) DeleteBackground(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.Delete(&model.Background{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// uniqueBackgroundSlug derives the kiosk-facing id from the display name,
// suffixing a counter on collision.
func (s *CatalogStore) uniqueBackgroundSlug(name string) string {
	base := slug.Make(name)
	result := base
	i := 1
	for {
		var count int64
		s.db.Model(&model.Background{}).Where("slug = ?", result).Count(&count)
		if count == 0 {
			return result
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}
}

func displayNameFromFilename(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
