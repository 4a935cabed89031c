package router

import (
	"github.com/eventsnow/booking-api/internal/application"
	"github.com/eventsnow/booking-api/internal/container"
	pginfra "github.com/eventsnow/booking-api/internal/infrastructure/postgres"
	handlers "github.com/eventsnow/booking-api/internal/interface/http"
	"github.com/eventsnow/booking-api/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once during startup, after
// main has populated the container. The pool must be present; modules that
// need persistence are meaningless without it.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	userSvc := application.NewUserService(userRepo, jwt, container.GetRabbitPub(), logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	r.Add(modules.NewUserModule(userHandler, jwt))

	eventRepo := pginfra.NewEventRepository(pool)
	eventSvc := application.NewEventService(eventRepo, container.GetRedis(), container.GetES(), cfg.ESEventsIndex, cfg.EventsCacheTTL, logger)
	eventHandler := handlers.NewEventHandler(eventSvc, logger)
	r.Add(modules.NewEventModule(eventHandler, jwt))

	uploadHandler := handlers.NewUploadHandler(container.GetGCS(), cfg.GCSBucket, logger)
	r.Add(modules.NewUploadModule(uploadHandler, jwt))
}
