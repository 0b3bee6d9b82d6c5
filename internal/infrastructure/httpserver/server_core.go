package httpserver

import (
	"time"

	"github.com/culinara/recipe-service/internal/core/ports"
	customMiddleware "github.com/culinara/recipe-service/internal/infrastructure/httpserver/middleware"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ServerDeps struct {
	RecipeService  ports.RecipeService
	HealthCheckers []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	recipeSvc      ports.RecipeService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
	startedAt      time.Time
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		recipeSvc:      deps.RecipeService,
		healthCheckers: deps.HealthCheckers,
		startedAt:      time.Now(),
		middleware: customMiddleware.NewMiddlewareCollection(
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
