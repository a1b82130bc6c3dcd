package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"skillbridge/internal/config"
	"skillbridge/internal/database/migration"
	"skillbridge/internal/database/seeder"
	"skillbridge/internal/delivery/http/handler"
	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/delivery/http/routes"
	"skillbridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects dependencies, brings the schema up to date and builds
// the HTTP app. The returned cleanup closes the database and cache.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if !cfg.Migrations.Disable {
		if err := (migration.Runner{Dir: cfg.Migrations.Dir, Logger: c.Logger}).Run(ctx, c.DB); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}).Run(ctx, c.DB); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("run seeders: %w", err)
		}
	}

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.Metrics())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		ws.NewHandler(c.Hub, c.AuthMiddleware, c.Logger),
		c.RouteDeps(),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
