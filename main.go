package main

import (
	"log"
	"os"

	"greenscreen_kiosk/config"
	"greenscreen_kiosk/database"
	"greenscreen_kiosk/handler"
	"greenscreen_kiosk/helper"
	"greenscreen_kiosk/router"
	"greenscreen_kiosk/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := database.SeedSettings(db, cfg.LegacyConfig); err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	if err := database.SeedOperator(db, cfg.OperatorUser, cfg.OperatorPassword); err != nil {
		log.Fatalf("seed operator: %v", err)
	}
	if err := database.SeedThemes(db); err != nil {
		log.Fatalf("seed themes: %v", err)
	}

	var gen store.NumberGenerator
	switch cfg.NumberMode {
	case "sequential":
		gen = store.NewSequentialGenerator(nextSequentialNumber(db))
	default:
		gen = store.NewFormattedGenerator(cfg.NumberPrefix)
	}

	h := handler.New(db, cfg, gen)

	database.ImportBackgrounds(db, h.Catalog, cfg.BackgroundsDir)
	helper.StartBackgroundRescanScheduler(func() {
		database.ImportBackgrounds(db, h.Catalog, cfg.BackgroundsDir)
	})
	defer helper.StopBackgroundRescanScheduler()

	if err := os.MkdirAll(cfg.PhotosDir, 0o755); err != nil {
		log.Fatalf("photos dir: %v", err)
	}

	if helper.CloudinaryConfigured() {
		if _, err := helper.InitCloudinary(); err != nil {
			log.Printf("cloudinary disabled: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: false,
	}))

	router.SetupRoutes(app, h)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// nextSequentialNumber resumes plain counting from the highest numeric
// customer number already on file.
func nextSequentialNumber(db *gorm.DB) int64 {
	var max int64
	db.Raw("SELECT COALESCE(MAX(CAST(customer_number AS INTEGER)), 0) FROM orders WHERE customer_number GLOB '[0-9]*'").Scan(&max)
	return max + 1
}
