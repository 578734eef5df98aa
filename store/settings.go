package store

import (
	"sync"
	"time"

	"greenscreen_kiosk/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// SettingsStore owns the singleton settings row.
type SettingsStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) Get() (*model.Settings, error) {
	var settings model.Settings
	if err := s.db.First(&settings, model.SettingsID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Update replaces the record wholesale.
func (s *SettingsStore) Update(input model.SettingsInput) (*model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings model.Settings
	if err := copier.Copy(&settings, &input); err != nil {
		return nil, err
	}
	settings.ID = model.SettingsID
	settings.UpdatedAt = time.Now().In(time.Local)

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&settings).Error
	}); err != nil {
		return nil, err
	}
	return &settings, nil
}
