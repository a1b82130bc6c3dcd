package middleware

import (
	"errors"

	"skillbridge/internal/domain/actor"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const CtxActorKey = "actor"

type ActorMiddleware struct {
	resolver usecase.ActorResolver
}

func NewActorMiddleware(resolver usecase.ActorResolver) *ActorMiddleware {
	return &ActorMiddleware{resolver: resolver}
}

// Middleware resolves the caller once per request. It must run after
// AuthMiddleware; unauthenticated requests resolve to an anonymous actor.
func (m *ActorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			c.Locals(CtxActorKey, actor.Anonymous(uuid.Nil))
			return c.Next()
		}

		a, err := m.resolver.ResolveActor(c.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthorized) {
				return NewAppError(fiber.StatusUnauthorized, usecase.ErrorMessage(err), nil, err)
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		c.Locals(CtxActorKey, a)
		return c.Next()
	}
}

// Actor returns the actor resolved for this request.
func Actor(c fiber.Ctx) actor.Actor {
	a, ok := c.Locals(CtxActorKey).(actor.Actor)
	if !ok {
		return actor.Anonymous(uuid.Nil)
	}
	return a
}
