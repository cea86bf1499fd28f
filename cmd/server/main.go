package main

import (
	"backend-quicklink/internal/config"
	"backend-quicklink/internal/http/handler"
	"backend-quicklink/internal/http/middleware"
	"backend-quicklink/internal/notify"
	"backend-quicklink/internal/store"
	"log"
	"os"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
	})

	config.LoadEnv()
	config.InitRedis()

	st := store.New()
	notifier := notify.New(notify.NewProvider(os.Getenv("NOTIFY_PROVIDER")), config.Redis)
	h := handler.New(st, notifier, config.LoadAdminAccount())

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "QuickLink API running",
		})
	})

	// Public: booking form, request tracking, login
	app.Post("/api/login", h.Login)
	app.Get("/api/catalog", h.GetCatalog)
	app.Post("/api/requests", h.CreateRequest)
	app.Get("/api/requests", h.GetAllRequests)
	app.Get("/api/requests/paginate", h.GetAllRequestsPagination)
	app.Get("/api/requests/:id", h.GetRequestByID)

	// Ops: snapshot export, basic-auth so it can be curl'd from cron
	app.Get("/ops/export", middleware.BasicAuth(), h.ExportSnapshot)

	// Base API (login required)
	api := app.Group("/api", middleware.JWTAuth())

	api.Post("/logout", h.Logout)

	// ===== ADMIN ROUTES =====
	// Requests
	api.Put("/requests/:id/status", middleware.RoleAuth("admin"), h.UpdateRequestStatus)
	api.Put("/requests/:id/assign", middleware.RoleAuth("admin"), h.AssignRequest)
	api.Post("/requests/:id/complete", middleware.RoleAuth("admin"), h.CompleteRequest)

	// Staff
	api.Get("/staff", middleware.RoleAuth("admin"), h.GetAllStaff)
	api.Get("/staff/:id", middleware.RoleAuth("admin"), h.GetStaffByID)
	api.Post("/staff", middleware.RoleAuth("admin"), h.CreateStaff)
	api.Put("/staff/:id", middleware.RoleAuth("admin"), h.UpdateStaff)
	api.Put("/staff/:id/toggle", middleware.RoleAuth("admin"), h.ToggleStaffStatus)
	api.Delete("/staff/:id", middleware.RoleAuth("admin"), h.DeleteStaff)

	// Reporting
	api.Get("/dashboard", middleware.RoleAuth("admin"), h.GetDashboard)
	api.Get("/analytics", middleware.RoleAuth("admin"), h.GetAnalytics)

	// Messaging
	api.Post("/messages", middleware.RoleAuth("admin"), h.SendMessage)
	api.Get("/messages/stats", middleware.RoleAuth("admin"), h.GetMessageStats)
	api.Get("/messages/templates", middleware.RoleAuth("admin"), h.GetMessageTemplates)

	addr := os.Getenv("APP_HOST") + ":" + os.Getenv("APP_PORT")
	log.Println("Server running on", addr)
	log.Fatal(app.Listen(addr))
}
