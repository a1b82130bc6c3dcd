package app

import (
	"context"
	"log"
	"time"

	"skillbridge/internal/config"
	"skillbridge/internal/database"
	dbpostgres "skillbridge/internal/database/postgres"
	"skillbridge/internal/delivery/http/middleware"
	v1 "skillbridge/internal/delivery/http/routes/v1"
	"skillbridge/internal/infrastructure/cache"
	"skillbridge/internal/pkg/jwt"
	"skillbridge/internal/pkg/metrics"
	"skillbridge/internal/repository"
	"skillbridge/internal/usecase"
	"skillbridge/internal/ws"
)

// Container owns the long-lived dependencies of the API process.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	AuthMiddleware  *middleware.AuthMiddleware
	ActorMiddleware *middleware.ActorMiddleware

	Auth          usecase.AuthUsecase
	Profiles      usecase.ProfileUsecase
	Missions      usecase.MissionUsecase
	Applications  usecase.ApplicationUsecase
	Ratings       usecase.RatingUsecase
	Notifications usecase.NotificationUsecase
	Skills        usecase.SkillUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return Assemble(cfg, db, logger), nil
}

// Assemble wires repositories, usecases and middleware over an open
// database.
func Assemble(cfg config.Config, db database.DB, logger *log.Logger) *Container {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
	}
	c.wire()
	return c
}

func (c *Container) wire() {
	users := repository.NewPostgresUserRepository(c.DB)
	profiles := repository.NewPostgresProfileRepository(c.DB)
	missions := repository.NewPostgresMissionRepository(c.DB)
	applications := repository.NewPostgresApplicationRepository(c.DB)
	ratings := repository.NewPostgresRatingRepository(c.DB)
	notifications := repository.NewPostgresNotificationRepository(c.DB)
	skills := repository.NewPostgresSkillRepository(c.DB)

	notifier := usecase.NewNotificationUsecase(notifications, c.Hub, c.Logger)

	c.AuthMiddleware = middleware.NewAuthMiddleware(c.JWT)
	c.ActorMiddleware = middleware.NewActorMiddleware(usecase.NewActorResolver(users, profiles, profiles))

	c.Auth = usecase.NewAuthUsecase(users, c.JWT)
	c.Profiles = usecase.NewProfileUsecase(users, profiles, profiles)
	c.Missions = usecase.NewMissionUsecase(missions, c.Logger)
	c.Applications = usecase.NewApplicationUsecase(
		applications,
		missions,
		profiles,
		profiles,
		notifier,
		c.Cache,
		c.Cache.TTL(),
		metrics.NewRecorder(),
		c.Logger,
	)
	c.Ratings = usecase.NewRatingUsecase(ratings, applications, profiles, notifier, c.Logger)
	c.Notifications = notifier
	c.Skills = usecase.NewSkillUsecase(skills)
}

func (c *Container) RouteDeps() v1.Deps {
	return v1.Deps{
		Auth:            c.Auth,
		Profiles:        c.Profiles,
		Missions:        c.Missions,
		Applications:    c.Applications,
		Ratings:         c.Ratings,
		Notifications:   c.Notifications,
		Skills:          c.Skills,
		AuthMiddleware:  c.AuthMiddleware,
		ActorMiddleware: c.ActorMiddleware,
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
