package database

import (
	"log"

	"greenscreen_kiosk/model"

	"gorm.io/gorm"
)

// schemaVersion is the stored migration marker. Migrations run in order,
// once, against whatever version the file last reached.
type schemaVersion struct {
	ID      uint `gorm:"primaryKey"`
	Version int
}

type migration struct {
	Version int
	Name    string
	Run     func(db *gorm.DB) error
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "create core tables",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&model.Order{},
				&model.Settings{},
				&model.Theme{},
				&model.Background{},
			)
		},
	},
	{
		Version: 2,
		Name:    "operator accounts",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(&model.Account{})
		},
	},
}

// Migrate applies every migration newer than the stored schema version.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaVersion{}); err != nil {
		return err
	}

	var current schemaVersion
	if err := db.FirstOrCreate(&current, schemaVersion{ID: 1}).Error; err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current.Version {
			continue
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Model(&schemaVersion{}).Where("id = ?", 1).
				Update("version", m.Version).Error
		}); err != nil {
			return err
		}
		current.Version = m.Version
		log.Printf("applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}
