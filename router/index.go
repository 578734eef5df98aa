package router

import (
	"greenscreen_kiosk/handler"
	"greenscreen_kiosk/middleware"
	"greenscreen_kiosk/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)

	// Kiosk-facing routes. The kiosk runs unattended so these stay public;
	// the box only listens on the event LAN.
	orders := v1.Group("/orders")
	orders.Post("/", validate.CreateOrder(), h.CreateOrder)
	orders.Get("/", middleware.Protected(), h.GetOrders)
	orders.Get("/:customerNumber", h.GetOrderByNumber)
	orders.Get("/:customerNumber/receipt", h.GetReceipt)
	orders.Post("/:customerNumber/email-receipt", middleware.Protected(), h.EmailReceipt)
	orders.Put("/:customerNumber/status", middleware.Protected(), validate.UpdateStatus(), h.UpdateStatus)
	orders.Put("/:customerNumber/notes", middleware.Protected(), validate.UpdateNotes(), h.UpdateNotes)

	settings := v1.Group("/settings")
	settings.Get("/", h.GetSettings)
	settings.Put("/", middleware.Protected(), validate.UpdateSettings(), h.UpdateSettings)

	themes := v1.Group("/themes")
	themes.Get("/", h.GetThemes)
	themes.Post("/", middleware.Protected(), validate.CreateTheme(), h.CreateTheme)
	themes.Put("/:id", middleware.Protected(), validate.CreateTheme(), h.UpdateTheme)
	themes.Delete("/:id", middleware.Protected(), h.DeleteTheme)

	backgrounds := v1.Group("/backgrounds")
	backgrounds.Get("/", h.GetBackgrounds)
	backgrounds.Post("/", middleware.Protected(), validate.CreateBackground(), h.CreateBackground)
	backgrounds.Put("/:id", middleware.Protected(), validate.CreateBackground(), h.UpdateBackground)
	backgrounds.Delete("/:id", middleware.Protected(), h.DeleteBackground)

	photos := v1.Group("/photos")
	photos.Post("/", validate.UploadPhoto(), h.UploadPhoto)

	v1.Post("/cloudinary-signature", h.CloudinarySignature)

	analytics := v1.Group("/analytics", middleware.Protected())
	analytics.Get("/statistics", h.GetStatistics)
	analytics.Get("/orders-by-hour", validate.AnalyticsDate(), h.GetOrdersByHour)
	analytics.Get("/daily-summary", validate.AnalyticsDate(), h.GetDailySummary)

	v1.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	v1.Get("/ws/orders", websocket.New(handler.OrderFeed))
}
