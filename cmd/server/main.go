package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/luxehaven/admin-api/internal/adapter/credentials"
	"github.com/luxehaven/admin-api/internal/adapter/store"
	"github.com/luxehaven/admin-api/internal/handler"
	"github.com/luxehaven/admin-api/internal/middleware"
	"github.com/luxehaven/admin-api/internal/service"
	"github.com/luxehaven/admin-api/internal/session"
	"github.com/luxehaven/admin-api/internal/token"
	"github.com/luxehaven/admin-api/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting LuxeHaven Admin",
		"port", cfg.Port,
		"session_hours", cfg.SessionHours,
		"cookie_secure", cfg.CookieSecure,
	)

	// ── Database ─────────────────────────────────────────────────────────
	pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	if err := pgStore.RunMigrations(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// ── Credentials ──────────────────────────────────────────────────────
	// Database accounts first, bootstrap account as fallback so the back
	// office stays reachable on a fresh install.
	creds := credentials.Fallback{pgStore}
	if cfg.AdminPassword != "" {
		hash, err := service.HashPassword(cfg.AdminPassword)
		if err != nil {
			slog.Error("failed to hash bootstrap password", "error", err)
			os.Exit(1)
		}
		if err := pgStore.SeedAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, hash); err != nil {
			slog.Error("failed to seed admin", "error", err)
			os.Exit(1)
		}

		static, err := credentials.NewStaticStore(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			slog.Error("failed to build bootstrap store", "error", err)
			os.Exit(1)
		}
		creds = append(creds, static)
	}

	// ── Services ─────────────────────────────────────────────────────────
	issuer := token.NewIssuer(cfg.JWTSecret,
		token.WithTTL(time.Duration(cfg.SessionHours)*time.Hour))
	authService := service.NewAuthService(creds, issuer)
	sessions := session.Store{Secure: cfg.CookieSecure}

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	// Audit middleware (logs all requests)
	app.Use(middleware.Audit(pgStore))

	// ── Pages ────────────────────────────────────────────────────────────
	// Presence-only gate: /dashboard needs a session cookie, /login and
	// /forgot-password bounce authenticated visitors back to the dashboard.
	app.Use(middleware.RouteGuard(middleware.DefaultGuardConfig()))
	handler.NewPageHandler().Register(app)

	// ── Public Routes ────────────────────────────────────────────────────
	authHandler := handler.NewAuthHandler(authService, sessions, pgStore)
	authHandler.Register(app.Group("/api/v1"))

	// Health check
	app.Get("/api/v1/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"app":     cfg.AppName,
			"version": "1.0.0",
		})
	})

	// ── Protected Routes ─────────────────────────────────────────────────
	// Full token verification, unlike the presence-only page gate.
	api := app.Group("/api/v1", middleware.RequireAuth(sessions, issuer))

	handler.NewListingHandler(pgStore).Register(api)
	handler.NewBookingHandler(pgStore).Register(api)
	handler.NewInquiryHandler(pgStore).Register(api)
	handler.NewMembershipHandler(pgStore).Register(api)
	handler.NewOverviewHandler(pgStore, pgStore, pgStore).Register(api)
	handler.NewAuditHandler(pgStore).Register(api)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
