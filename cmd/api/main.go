package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"trip-album/internal/config"
	"trip-album/internal/handler"
	"trip-album/internal/middleware"
	"trip-album/internal/repository"
	"trip-album/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := config.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (uploads will be inlined as data URLs)", err)
		minioClient = nil
	}

	repos := repository.NewRepositories(db)

	if err := repos.Session.DeleteExpired(context.Background()); err != nil {
		log.Printf("Warning: failed to purge expired sessions: %v", err)
	}

	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    64 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", h.Auth.Logout)

	// Media bytes are public and long-cached; everything else carries
	// credentials (body pair or Bearer token).
	api.Get("/media/:mediaId", h.Media.Get)

	protected := api.Group("", middleware.AuthRequired(authService))

	albums := protected.Group("/albums")
	albums.Post("/:albumId/full", h.Album.GetFull)
	albums.Post("/:albumId/invites", h.Album.Invite)

	days := protected.Group("/trip-days")
	days.Post("/", h.TripDay.Create)
	days.Put("/:dayId", h.TripDay.Update)
	days.Delete("/:dayId", h.TripDay.Delete)
	days.Put("/:dayId/event-order", h.TripDay.ReorderEvents)

	events := protected.Group("/events")
	events.Post("/", h.Event.Create)
	events.Put("/:eventId", h.Event.Update)
	events.Delete("/:eventId", h.Event.Delete)
	events.Post("/:eventId/participants", h.Event.SetParticipant)

	media := protected.Group("/media")
	media.Post("/upload", h.Media.Upload)
	media.Delete("/:mediaId", h.Media.Delete)
	media.Get("/:mediaKey/comments", h.Comment.List)
	media.Post("/:mediaKey/comments", h.Comment.Create)

	comments := protected.Group("/comments")
	comments.Put("/:commentId", h.Comment.Update)
	comments.Delete("/:commentId", h.Comment.Delete)

	protected.Get("/audit", h.Audit.Recent)
}
