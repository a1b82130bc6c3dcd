package routes

import (
	"skillbridge/internal/delivery/http/handler"
	v1 "skillbridge/internal/delivery/http/routes/v1"
	"skillbridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     *ws.Handler
	v1     v1.Deps
}

func NewRegistry(health *handler.HealthHandler, wsHandler *ws.Handler, deps v1.Deps) *Registry {
	return &Registry{health: health, ws: wsHandler, v1: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerRealtime(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerRealtime(app *fiber.App) {
	r.ws.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
