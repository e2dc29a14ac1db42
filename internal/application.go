package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/gamequery"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	defaultKind, err := engine.ParseKind(conf.Engine)
	if err != nil {
		return fmt.Errorf("invalid engine in config: %w", err)
	}

	var moveUseCase *usecase.MoveUseCase
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		log.Info("Move cache enabled", "addr", conf.Redis.GetRedisAddr(), "ttl", conf.Redis.TTL)

		moveRepo := repository.NewMoveRepository(redisStorage.Connection, conf.Redis.TTL)
		moveUseCase = usecase.NewMoveUseCase(logger, defaultKind, engine.DefaultSource(), moveRepo)
	} else {
		moveUseCase = usecase.NewMoveUseCase(logger, defaultKind, engine.DefaultSource(), nil)
	}

	decoder := gamequery.NewDecoder(conf.StrictSize)
	server := rest.New(logger, decoder, moveUseCase)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "engine", defaultKind, "strict_size", conf.StrictSize)

	if err = server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
