package routes

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"cadastro/internal/adapter/http/handler"
	"cadastro/internal/adapter/http/middleware"
	"cadastro/internal/adapter/web"
	"cadastro/internal/core/telemetry"
	"cadastro/pkg/logger"
)

type HandlersConfig struct {
	UserHandler   *handler.UserHandler
	MovieHandler  *handler.MovieHandler
	HealthHandler *handler.HealthHandler
	WebHandler    *web.Handler
}

type Config struct {
	ServiceName string
	Production  bool
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, log *logger.Logger, config Config) *gin.Engine {
	if config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	if log == nil {
		log = logger.NewNop()
	}

	router := gin.New()

	router.Use(otelgin.Middleware(config.ServiceName))
	router.Use(middleware.CurrentMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}

	if handlers.HealthHandler != nil {
		router.GET("/health", handlers.HealthHandler.Check)
	}

	if handlers.WebHandler != nil {
		router.GET("/", handlers.WebHandler.Index)
	}

	if handlers.UserHandler != nil {
		setupUserRoutes(router, handlers.UserHandler)
	}

	if handlers.MovieHandler != nil {
		setupMovieRoutes(router, handlers.MovieHandler)
	}

	return router
}

func setupUserRoutes(router *gin.Engine, userHandler *handler.UserHandler) {
	users := router.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.FindAll)
		users.GET("/:id", userHandler.FindOne)
		users.PATCH("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Remove)
	}
}

func setupMovieRoutes(router *gin.Engine, movieHandler *handler.MovieHandler) {
	filmes := router.Group("/filmes")
	{
		filmes.POST("", movieHandler.Create)
		filmes.GET("", movieHandler.FindAll)
		filmes.GET("/:id", movieHandler.FindOne)
		filmes.PATCH("/:id", movieHandler.Update)
		filmes.DELETE("/:id", movieHandler.Remove)
	}
}
