package main

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wichananm65/fashion-marketplace-backend/internal/catalog"
	"github.com/wichananm65/fashion-marketplace-backend/internal/config"
	"github.com/wichananm65/fashion-marketplace-backend/internal/identity"
	"github.com/wichananm65/fashion-marketplace-backend/internal/intent"
	"github.com/wichananm65/fashion-marketplace-backend/internal/recommendation"
	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

const createProductsTable = `
	CREATE TABLE IF NOT EXISTS products (
		id uuid PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT,
		color TEXT,
		size TEXT,
		seller_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'draft',
		image_urls TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return serve(config.Load())
		},
	}
}

func serve(cfg config.Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	var repo catalog.Repository
	if cfg.DatabaseURL == "" {
		log.Warnw("DATABASE_URL is not set, serving the in-memory sample catalog")
		repo = catalog.NewInMemoryRepository(catalog.SampleProducts())
	} else {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		// ensure the products table exists so the catalog can be seeded in dev
		if _, err := db.Exec(createProductsTable); err != nil {
			return fmt.Errorf("ensure products table: %w", err)
		}
		repo = catalog.NewPostgresRepository(db)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	setupCORS(app, cfg.AllowOrigins)

	sessions := stylecontext.NewStore()
	products := catalog.NewService(repo)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	catalog.NewHandler(products, cfg.AllowResetProducts).RegisterPublicRoutes(app)

	app.Use(identity.Middleware(cfg.JWTSecret, nil))
	stylecontext.NewHandler(sessions).RegisterProtectedRoutes(app)
	intent.NewHandler(sessions).RegisterProtectedRoutes(app)
	recommendation.NewHandler(recommendation.NewService(products, sessions, nil)).RegisterProtectedRoutes(app)

	log.Infow("starting server", "addr", cfg.Addr, "resetProducts", cfg.AllowResetProducts)
	return app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}
