// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"devconnect/internal/auth"
	"devconnect/internal/cache"
	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	codec          *auth.Codec
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	profileRepo    repository.ProfileRepository
	authService    *service.AuthService
	postService    *service.PostService
	profileService *service.ProfileService
	adminService   *service.AdminService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	prom := middleware.InitMetrics("devconnect-api")
	codec := auth.NewCodec(cfg.JWTSecret, auth.DefaultTTL)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		codec:          codec,
		userRepo:       userRepo,
		postRepo:       postRepo,
		profileRepo:    profileRepo,
	}
	server.authService = service.NewAuthService(userRepo, codec, cfg.AdminSecret)
	server.postService = service.NewPostService(postRepo)
	server.profileService = service.NewProfileService(profileRepo, userRepo, postRepo)
	server.adminService = service.NewAdminService(userRepo, postRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded images
	app.Static("/uploads", s.config.UploadDir)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "register"), s.Register)
	authGroup.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	authGroup.Get("/logout", s.Logout)

	authRequired := middleware.AuthRequired(s.codec)

	// Public post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/user/:userId", s.GetUserPosts)
	posts.Get("/:id", s.GetPost)

	// Protected post routes
	posts.Post("/", authRequired, middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_post"), s.CreatePost)
	posts.Post("/:id/like", authRequired, s.LikePost)
	posts.Post("/:id/comment", authRequired, s.CommentPost)
	posts.Put("/:id", authRequired, s.UpdatePost)
	posts.Delete("/:id", authRequired, s.DeletePost)

	// Profile routes
	profile := api.Group("/profile", authRequired)
	profile.Get("/", s.GetAllProfiles)
	profile.Get("/me", s.GetMyProfile)
	profile.Get("/user/:userId", s.GetProfileByUser)
	profile.Post("/", s.CreateProfile)
	profile.Put("/", s.UpdateProfile)
	profile.Delete("/", s.DeleteAccount)

	// Admin routes
	admin := api.Group("/admin", authRequired, middleware.AdminRequired())
	adminUsers := admin.Group("/users")
	adminUsers.Get("/", s.AdminListUsers)
	adminUsers.Get("/:id/posts", s.AdminGetUserPosts)
	adminUsers.Get("/:id", s.AdminGetUser)
	adminUsers.Put("/:id/role", s.AdminUpdateRole)
	adminUsers.Delete("/:id", s.AdminDeleteUser)
	adminPosts := admin.Group("/posts")
	adminPosts.Get("/", s.AdminListPosts)
	adminPosts.Delete("/:id", s.AdminDeletePost)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "DevConnect API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("Server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
