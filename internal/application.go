package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-bot/transport/discord"
	"github.com/rocketscienceinc/tictactoe-bot/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the bot until SIGINT or SIGTERM.
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

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	fenceRepo := repository.NewFenceRepository(redisStorage, conf.Redis.FenceTTL)
	gameUseCase := usecase.NewGameUseCase(logger, fenceRepo)

	gateway, err := discord.NewGateway(logger, conf.Discord.Token, gameUseCase)
	if err != nil {
		return fmt.Errorf("could not create discord gateway: %w", err)
	}

	health := rest.NewHealthHandler(logger, map[string]rest.Check{
		"redis": func(ctx context.Context) error {
			return redisStorage.Ping(ctx).Err()
		},
		"discord": gateway.Check,
	})

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, health); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Discord gateway
	gatewayErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting Discord gateway")
		if gatewayErr := gateway.Start(ctx); gatewayErr != nil {
			log.Error("Discord gateway error", "error", gatewayErr)
			gatewayErrCh <- gatewayErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-gatewayErrCh:
		return fmt.Errorf("discord gateway error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
