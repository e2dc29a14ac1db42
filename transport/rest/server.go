package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/tictactoe-engine/internal/gamequery"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

func New(logger *slog.Logger, decoder *gamequery.Decoder, moves moveUseCase) *Server {
	log := logger.With("component", "rest")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 30 * time.Second

	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	moveHandler := NewMoveHandler(log, decoder, moves)

	e.GET("/ping", PingHandler)
	e.GET("/move", moveHandler.NextMove)

	return &Server{
		logger: log,
		echo:   e,
	}
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start - serves until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := that.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	that.logger.Info("HTTP server stopped")

	return nil
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				log.LogAttrs(ctx.Request().Context(), slog.LevelError, "request failed", attrs...)
				return nil
			}

			log.LogAttrs(ctx.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}
