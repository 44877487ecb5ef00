package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/config"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/handler"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/middleware"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

type Server struct {
	echo            *echo.Echo
	cfg             *config.Config
	logger          *logger.Logger
	transferHandler *handler.TransferHandler
	healthHandler   *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	transferHandler *handler.TransferHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:            e,
		cfg:             cfg,
		logger:          log,
		transferHandler: transferHandler,
		healthHandler:   healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	s.echo.GET("/transfers", s.transferHandler.List)
	s.echo.GET("/transfers/config/account-info", s.transferHandler.AccountInfo)
	s.echo.GET("/transfers/:id/candidates", s.transferHandler.Candidates)
	s.echo.POST("/transfers/:id/match", s.transferHandler.Match)
	s.echo.POST("/transfers/:id/reject", s.transferHandler.Reject)
	s.echo.POST("/transfers/sync", s.transferHandler.Sync)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
