package http

import (
	"log/slog"

	"cadastro/internal/adapter/database"
	"cadastro/internal/adapter/database/repository"
	"cadastro/internal/adapter/http/handler"
	"cadastro/internal/adapter/web"
	"cadastro/internal/core/port"
	"cadastro/internal/core/service"
	"cadastro/pkg/logger"
)

type Container struct {
	UserRepo  port.UserRepository
	MovieRepo port.MovieRepository

	UserService  port.UserService
	MovieService port.MovieService

	UserHandler   *handler.UserHandler
	MovieHandler  *handler.MovieHandler
	HealthHandler *handler.HealthHandler
	WebHandler    *web.Handler
}

func NewContainer(db *database.DB, probe port.Telemetry, log *logger.Logger) (*Container, error) {
	userRepo := repository.NewUserRepository(db, probe)
	movieRepo := repository.NewMovieRepository(db, probe)

	userSvc := service.NewUserService(userRepo, service.WithTelemetry(probe))
	movieSvc := service.NewMovieService(movieRepo, service.WithTelemetry(probe))

	webHandler, err := web.NewHandler()

	if err != nil {
		slog.Error("Failed to load web client", "error", err)
		return nil, err
	}

	return &Container{
		UserRepo:  userRepo,
		MovieRepo: movieRepo,

		UserService:  userSvc,
		MovieService: movieSvc,

		UserHandler:   handler.NewUserHandler(userSvc, log),
		MovieHandler:  handler.NewMovieHandler(movieSvc, log),
		HealthHandler: handler.NewHealthHandler(db, log),
		WebHandler:    webHandler,
	}, nil
}
