package ws

import (
	"log"
	"net/http"

	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// TokenAuthenticator validates the access token carried in the query
// string, since browsers cannot set headers on websocket upgrades.
type TokenAuthenticator interface {
	Authenticate(token string) (jwt.Claims, error)
}

type Handler struct {
	hub    *Hub
	auth   TokenAuthenticator
	logger *log.Logger
}

func NewHandler(hub *Hub, auth TokenAuthenticator, logger *log.Logger) *Handler {
	return &Handler{hub: hub, auth: auth, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/ws/notifications", h.HandleNotificationsWS)
}

func (h *Handler) HandleNotificationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.auth == nil {
		return fiber.ErrServiceUnavailable
	}

	token := c.Query("token")
	if token == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	claims, err := h.auth.Authenticate(token)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("[WS] upgrade error user=%s err=%v", claims.UserID, err)
			}
			return
		}

		client := NewClient(h.hub, conn, claims.UserID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
