package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/moviehub-app/moviehub-backend/internal/config"
	"github.com/moviehub-app/moviehub-backend/internal/handlers"
	"github.com/moviehub-app/moviehub-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	reviewHandler *handlers.ReviewHandler,
	petitionHandler *handlers.PetitionHandler,
	favoritesHandler *handlers.FavoritesHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Catalog and visible reviews — public
	api.Get("/movies", catalogHandler.List)
	api.Get("/movies/:id", catalogHandler.Get)
	api.Get("/movies/:id/reviews", reviewHandler.List)

	// Petition list is public; signed-in viewers also get their voted set
	api.Get("/petitions", petitionHandler.List)

	// Favorites — session-scoped, no account needed
	api.Post("/movies/:id/favorite", favoritesHandler.Toggle)
	api.Get("/favorites", favoritesHandler.List)

	// Reviews and petitions — authenticated
	api.Post("/movies/:id/reviews", middleware.JWTProtected(cfg), reviewHandler.Create)
	api.Put("/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Edit)
	api.Delete("/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Delete)
	api.Post("/movies/:id/reviews/:review_id/report", middleware.JWTProtected(cfg), reviewHandler.Report)
	api.Post("/petitions", middleware.JWTProtected(cfg), petitionHandler.Create)
	api.Post("/petitions/:id/vote", middleware.JWTProtected(cfg), petitionHandler.Vote)

	// Admin catalog management
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/movies", catalogHandler.Create)
	admin.Put("/movies/:id", catalogHandler.Update)
	admin.Delete("/movies/:id", catalogHandler.Delete)
}
