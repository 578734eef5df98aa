package handler

import (
	"greenscreen_kiosk/config"
	"greenscreen_kiosk/store"

	"gorm.io/gorm"
)

// Handler carries the owned store handles into the fiber routes. The
// database is never reached through a package-level singleton; everything
// flows through this struct, wired once in main.
type Handler struct {
	DB        *gorm.DB
	Cfg       *config.Config
	Orders    *store.OrderStore
	Settings  *store.SettingsStore
	Catalog   *store.CatalogStore
	Analytics *store.Analytics
}

func New(db *gorm.DB, cfg *config.Config, gen store.NumberGenerator) *Handler {
	return &Handler{
		DB:        db,
		Cfg:       cfg,
		Orders:    store.NewOrderStore(db, gen),
		Settings:  store.NewSettingsStore(db),
		Catalog:   store.NewCatalogStore(db),
		Analytics: store.NewAnalytics(db),
	}
}
