package v1

import (
	"skillbridge/internal/delivery/http/handler"
	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Auth          usecase.AuthUsecase
	Profiles      usecase.ProfileUsecase
	Missions      usecase.MissionUsecase
	Applications  usecase.ApplicationUsecase
	Ratings       usecase.RatingUsecase
	Notifications usecase.NotificationUsecase
	Skills        usecase.SkillUsecase

	AuthMiddleware  *middleware.AuthMiddleware
	ActorMiddleware *middleware.ActorMiddleware
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	g := handler.Guards{
		Auth:     d.AuthMiddleware.Middleware(),
		Optional: d.AuthMiddleware.Optional(),
		Actor:    d.ActorMiddleware.Middleware(),
	}

	handler.NewAuthHandler(d.Auth).RegisterRoutes(r, g)
	handler.NewProfileHandler(d.Profiles).RegisterRoutes(r, g)
	handler.NewMissionHandler(d.Missions).RegisterRoutes(r, g)
	handler.NewRatingHandler(d.Ratings).RegisterRoutes(r, g)
	handler.NewApplicationHandler(d.Applications).RegisterRoutes(r, g)
	handler.NewNotificationHandler(d.Notifications).RegisterRoutes(r, g)
	handler.NewSkillHandler(d.Skills).RegisterRoutes(r, g)
}
