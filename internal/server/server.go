package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Jain-Tirth/Journalite/internal/app"
	"github.com/Jain-Tirth/Journalite/internal/config"
	apperrors "github.com/Jain-Tirth/Journalite/internal/errors"
	"github.com/Jain-Tirth/Journalite/internal/logging"
)

type Server struct {
	echo        *echo.Echo
	config      *config.Config
	app         *app.Service
	db          *pgxpool.Pool
	redisClient *goredis.Client
	startTime   time.Time
}

func NewServer(cfg *config.Config, svc *app.Service, db *pgxpool.Pool, redisClient *goredis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(correlationMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:        e,
		config:      cfg,
		app:         svc,
		db:          db,
		redisClient: redisClient,
		startTime:   time.Now(),
	}

	srv.registerRoutes()

	return srv
}

// correlationMiddleware tags every request's context with a correlation ID
// so log lines emitted while handling it can be tied together.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := logging.WithCorrelationID(req.Context(), logging.NewCorrelationID())
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
