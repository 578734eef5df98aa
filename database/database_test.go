package database

import (
	"os"
	"path/filepath"
	"testing"

	"greenscreen_kiosk/model"
	"greenscreen_kiosk/store"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)

	assert.NoError(t, Migrate(db))
	assert.NoError(t, Migrate(db))

	var version int
	db.Raw("SELECT MAX(version) FROM schema_versions").Scan(&version)
	assert.Equal(t, len(migrations), version)
}

func TestSeedSettingsDefaultsOnce(t *testing.T) {
	db := testDB(t)

	assert.NoError(t, SeedSettings(db, ""))
	assert.NoError(t, SeedSettings(db, ""))

	var count int64
	db.Model(&model.Settings{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var settings model.Settings
	assert.NoError(t, db.First(&settings, model.SettingsID).Error)
	assert.Equal(t, "Greenscreen Photo Booth", settings.BusinessName)
	assert.Equal(t, 15.00, settings.PrintPrice1)
}

func TestSeedSettingsFromLegacyFile(t *testing.T) {
	db := testDB(t)

	path := filepath.Join(t.TempDir(), "booth.cfg")
	assert.NoError(t, os.WriteFile(path, []byte("BUSINESS_NAME=Sunset Booth Co\nPRINT_PRICE_1=18.50\n"), 0o644))

	assert.NoError(t, SeedSettings(db, path))

	var settings model.Settings
	assert.NoError(t, db.First(&settings, model.SettingsID).Error)
	assert.Equal(t, "Sunset Booth Co", settings.BusinessName)
	assert.Equal(t, 18.50, settings.PrintPrice1)
}

func TestSeedOperator(t *testing.T) {
	db := testDB(t)

	assert.NoError(t, SeedOperator(db, "operator", "hunter2"))
	assert.NoError(t, SeedOperator(db, "operator", "different"))

	var accounts []model.Account
	assert.NoError(t, db.Find(&accounts).Error)
	assert.Len(t, accounts, 1)
	assert.True(t, accounts[0].Active)
	// The first password wins; reseeding never rotates credentials.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(accounts[0].Password), []byte("hunter2")))
}

func TestSeedThemes(t *testing.T) {
	db := testDB(t)

	assert.NoError(t, SeedThemes(db))
	assert.NoError(t, SeedThemes(db))

	var count int64
	db.Model(&model.Theme{}).Count(&count)
	assert.Equal(t, int64(7), count)
}

func TestImportBackgrounds(t *testing.T) {
	db := testDB(t)
	catalog := store.NewCatalogStore(db)
	assert.NoError(t, SeedThemes(db))

	dir := t.TempDir()
	for _, name := range []string{
		"beach-01.jpg",
		"beach-02.png",
		"city_night.webp",
		"unmatched.jpg", // no theme prefix
		"notes.txt",     // not an image
	} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	ImportBackgrounds(db, catalog, dir)

	backgrounds, err := catalog.ListBackgrounds(false)
	assert.NoError(t, err)
	assert.Len(t, backgrounds, 3)
	for _, bg := range backgrounds {
		assert.NotNil(t, bg.ThemeID)
	}

	// Rescan is a no-op for files already on record.
	ImportBackgrounds(db, catalog, dir)
	backgrounds, _ = catalog.ListBackgrounds(false)
	assert.Len(t, backgrounds, 3)
}

func TestImportBackgroundsMissingDir(t *testing.T) {
	db := testDB(t)
	catalog := store.NewCatalogStore(db)

	ImportBackgrounds(db, catalog, filepath.Join(t.TempDir(), "absent"))

	backgrounds, err := catalog.ListBackgrounds(false)
	assert.NoError(t, err)
	assert.Empty(t, backgrounds)
}
