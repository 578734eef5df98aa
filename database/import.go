package database

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"greenscreen_kiosk/helper"
	"greenscreen_kiosk/model"
	"greenscreen_kiosk/store"

	"gorm.io/gorm"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// ImportBackgrounds reconciles the backgrounds directory against the
// catalog: any image file not yet represented is inserted under the theme
// matched by its lowercased filename prefix (<theme>-<n>.<ext>). Files whose
// theme cannot be matched are skipped and reported, never fatal.
func ImportBackgrounds(db *gorm.DB, catalog *store.CatalogStore, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("backgrounds directory unreadable: %v", err)
		}
		return
	}

	var themes []model.Theme
	if err := db.Find(&themes).Error; err != nil {
		log.Printf("background import: load themes: %v", err)
		return
	}
	labels := make([]string, 0, len(themes))
	themeByLabel := make(map[string]uint, len(themes))
	for _, t := range themes {
		labels = append(labels, t.TabLabel)
		themeByLabel[t.TabLabel] = t.ID
	}

	imported, skipped := 0, 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()
		if !imageExtensions[strings.ToLower(filepath.Ext(filename))] {
			continue
		}

		var count int64
		if err := db.Model(&model.Background{}).
			Where("filename = ?", filename).Count(&count).Error; err != nil {
			log.Printf("background import: check %s: %v", filename, err)
			continue
		}
		if count > 0 {
			continue
		}

		label, ok := helper.MatchThemeByFilename(filename, labels)
		if !ok {
			log.Printf("background import: no theme matches %s, skipped", filename)
			skipped++
			continue
		}

		themeID := themeByLabel[label]
		if _, err := catalog.CreateBackground(model.BackgroundInput{
			ThemeID:  &themeID,
			Filename: filename,
		}); err != nil {
			log.Printf("background import: insert %s: %v", filename, err)
			continue
		}
		imported++
	}

	if imported > 0 || skipped > 0 {
		log.Printf("background import: %d added, %d skipped", imported, skipped)
	}
}
