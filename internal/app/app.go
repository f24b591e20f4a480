package app

import (
	"brickvale-backend/internal/auth"
	"brickvale-backend/internal/companies"
	"brickvale-backend/internal/config"
	"brickvale-backend/internal/dashboard"
	"brickvale-backend/internal/documents"
	"brickvale-backend/internal/health"
	"brickvale-backend/internal/middleware"
	"brickvale-backend/internal/models"
	"brickvale-backend/internal/notifications"
	"brickvale-backend/internal/payments"
	"brickvale-backend/internal/projects"
	"brickvale-backend/internal/unitagents"
	"brickvale-backend/internal/units"
	"brickvale-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and routes.
// db is required; rdb may be nil, in which case the dashboard cache is a
// no-op and every dashboard request recomputes.
func CreateApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(cors.New())
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	secret := []byte(cfg.JWTSecret)
	requireAuth := middleware.RequireAuth(secret)
	adminOnly := middleware.RequireRole(models.RoleAdmin)
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleAgent)

	cache := &dashboard.Cache{Rdb: rdb, TTL: cfg.DashboardCacheTTL}
	notifService := &notifications.Service{
		DB:     db,
		Pusher: notifications.NewExpoPusher(cfg.ExpoPushURL),
	}

	authHandlers := &auth.Handlers{Service: &auth.Service{
		DB: db, Secret: secret, TokenTTL: cfg.TokenTTL,
	}}
	userHandlers := &users.Handlers{Service: &users.Service{DB: db}}
	projectHandlers := &projects.Handlers{Service: &projects.Service{DB: db}}
	unitHandlers := &units.Handlers{Service: &units.Service{DB: db, Cache: cache}}
	paymentHandlers := &payments.Handlers{Service: &payments.Service{
		DB: db, Notifier: notifService, Cache: cache,
	}}
	companyHandlers := &companies.Handlers{Service: &companies.Service{DB: db}}
	unitAgentHandlers := &unitagents.Handlers{Service: &unitagents.Service{DB: db}}
	documentHandlers := &documents.Handlers{Service: &documents.Service{DB: db}}
	notifHandlers := &notifications.Handlers{Service: notifService}
	dashboardHandlers := &dashboard.Handlers{
		Service: &dashboard.Service{DB: db},
		Cache:   cache,
	}

	app.Get("/health", (&health.Handlers{DB: db, Rdb: rdb}).Get)

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", requireAuth, authHandlers.Me)

	userGroup := v1.Group("/users", requireAuth)
	userGroup.Post("/", adminOnly, userHandlers.Create)
	userGroup.Get("/", staffOnly, userHandlers.List)
	userGroup.Get("/:id", userHandlers.Get)

	projectGroup := v1.Group("/projects", requireAuth)
	projectGroup.Post("/", adminOnly, projectHandlers.Create)
	projectGroup.Get("/", projectHandlers.List)
	projectGroup.Get("/:id", projectHandlers.Get)
	projectGroup.Patch("/:id", adminOnly, projectHandlers.Update)
	projectGroup.Delete("/:id", adminOnly, projectHandlers.Delete)

	unitGroup := v1.Group("/units", requireAuth)
	unitGroup.Post("/", adminOnly, unitHandlers.Create)
	unitGroup.Get("/", unitHandlers.List)
	unitGroup.Get("/:id", unitHandlers.Get)
	unitGroup.Patch("/:id", adminOnly, unitHandlers.Update)
	unitGroup.Delete("/:id", adminOnly, unitHandlers.Delete)
	unitGroup.Get("/:id/warranty", unitHandlers.GetWarranty)
	unitGroup.Get("/:id/payment-summary", unitHandlers.GetSummary)
	unitGroup.Get("/:id/graph-data", unitHandlers.GetGraph)
	unitGroup.Get("/:id/payments", paymentHandlers.ListByUnit)

	paymentGroup := v1.Group("/payments", requireAuth)
	paymentGroup.Post("/", adminOnly, paymentHandlers.Create)
	paymentGroup.Get("/", paymentHandlers.List)
	paymentGroup.Get("/:id", paymentHandlers.Get)
	paymentGroup.Patch("/:id", adminOnly, paymentHandlers.Update)
	paymentGroup.Delete("/:id", adminOnly, paymentHandlers.Delete)

	companyGroup := v1.Group("/companies", requireAuth, adminOnly)
	companyGroup.Post("/", companyHandlers.Create)
	companyGroup.Get("/", companyHandlers.List)
	companyGroup.Get("/:id", companyHandlers.Get)
	companyGroup.Patch("/:id", companyHandlers.Update)
	companyGroup.Delete("/:id", companyHandlers.Delete)

	unitAgentGroup := v1.Group("/unit-agents", requireAuth, staffOnly)
	unitAgentGroup.Post("/", unitAgentHandlers.Create)
	unitAgentGroup.Get("/", unitAgentHandlers.List)
	unitAgentGroup.Get("/unit/:id", unitAgentHandlers.ListByUnit)
	unitAgentGroup.Get("/agent/:id", unitAgentHandlers.ListByAgent)

	documentGroup := v1.Group("/documents", requireAuth)
	documentGroup.Post("/templates", adminOnly, documentHandlers.CreateTemplate)
	documentGroup.Get("/templates/unit/:id", adminOnly, documentHandlers.TemplatesByUnit)
	documentGroup.Post("/signed", documentHandlers.CreateSigned)
	documentGroup.Get("/signed/unit/:id", documentHandlers.SignedByUnit)
	documentGroup.Get("/signed/client/:id", documentHandlers.SignedByClient)
	documentGroup.Get("/signed/agent/:id", documentHandlers.SignedByAgent)
	documentGroup.Delete("/:id", adminOnly, documentHandlers.Delete)

	notifGroup := v1.Group("/notifications", requireAuth)
	notifGroup.Get("/", notifHandlers.List)
	notifGroup.Patch("/:id/read", notifHandlers.MarkRead)
	notifGroup.Post("/push-token", notifHandlers.RegisterToken)

	v1.Get("/dashboard", requireAuth, adminOnly, dashboardHandlers.Get)

	return app
}
