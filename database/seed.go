package database

import (
	"log"
	"os"
	"time"

	"greenscreen_kiosk/config"
	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"

	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSettings bootstraps the settings singleton on first run. When the
// legacy KEY=VALUE file exists it is migrated; otherwise hard-coded defaults
// are inserted. Runs at most once per fresh database.
func SeedSettings(db *gorm.DB, legacyPath string) error {
	var count int64
	if err := db.Model(&model.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	input := config.DefaultSettings()
	if legacyPath != "" {
		if values, err := config.ParseLegacyConfig(legacyPath); err == nil {
			input = config.SettingsFromLegacy(values)
			log.Printf("migrated legacy configuration from %s", legacyPath)
		} else if !os.IsNotExist(err) {
			log.Printf("legacy configuration unreadable, using defaults: %v", err)
		}
	}

	var settings model.Settings
	if err := copier.Copy(&settings, &input); err != nil {
		return err
	}
	settings.ID = model.SettingsID
	settings.UpdatedAt = time.Now().In(time.Local)
	return db.Create(&settings).Error
}

// SeedOperator creates the operator dashboard login if missing.
func SeedOperator(db *gorm.DB, username, password string) error {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	account := model.Account{
		Username: username,
		Password: string(bytes),
		Role:     constants.ROLE_OPERATOR,
		Active:   true,
	}
	if err := db.Where(model.Account{Username: account.Username}).
		FirstOrCreate(&account).Error; err != nil {
		log.Println("failed to seed operator account:", username, "error:", err)
		return err
	}
	return nil
}

// SeedThemes inserts the stock theme tabs on first run. Operators can
// rename or disable them later.
func SeedThemes(db *gorm.DB) error {
	themes := []model.Theme{
		{Name: "Beach", TabLabel: "beach", Enabled: true, SortOrder: 1},
		{Name: "City", TabLabel: "city", Enabled: true, SortOrder: 2},
		{Name: "Nature", TabLabel: "nature", Enabled: true, SortOrder: 3},
		{Name: "Space", TabLabel: "space", Enabled: true, SortOrder: 4},
		{Name: "Fantasy", TabLabel: "fantasy", Enabled: true, SortOrder: 5},
		{Name: "Sports", TabLabel: "sports", Enabled: true, SortOrder: 6},
		{Name: "Holiday", TabLabel: "holiday", Enabled: true, SortOrder: 7},
	}

	for _, theme := range themes {
		if err := db.Where(model.Theme{TabLabel: theme.TabLabel}).
			FirstOrCreate(&theme).Error; err != nil {
			log.Println("failed to seed theme:", theme.Name, "error:", err)
		}
	}
	return nil
}
