package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

var errNotReady = errors.New("discord gateway is not ready")

const gatewayIntents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsDirectMessages

// Gateway owns the websocket session and feeds its interactions to the Server.
type Gateway struct {
	logger  *slog.Logger
	session *discordgo.Session
	server  *Server
	ready   atomic.Bool
}

func NewGateway(logger *slog.Logger, token string, game gameUseCase) (*Gateway, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	dg.Identify.Intents = gatewayIntents

	return &Gateway{
		logger:  logger.With("component", "gateway"),
		session: dg,
		server:  New(logger, dg, game),
	}, nil
}

// Start - connects and serves interactions until ctx is done.
func (that *Gateway) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	removeReady := that.session.AddHandler(func(_ *discordgo.Session, event *discordgo.Ready) {
		that.ready.Store(true)
		log.Info("connected", "user", event.User.Username, "guilds", len(event.Guilds))
	})
	defer removeReady()

	removeDisconnect := that.session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		that.ready.Store(false)
		log.Warn("disconnected")
	})
	defer removeDisconnect()

	removeInteraction := that.session.AddHandler(func(_ *discordgo.Session, event *discordgo.InteractionCreate) {
		that.server.HandleInteraction(ctx, event.Interaction)
	})
	defer removeInteraction()

	if err := that.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	log.Info("serving commands", "commands", that.server.Commands())

	<-ctx.Done()

	that.ready.Store(false)

	if err := that.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord gateway: %w", err)
	}

	log.Info("gateway closed")

	return nil
}

// Check - health check: the gateway has received its Ready event.
func (that *Gateway) Check(_ context.Context) error {
	if !that.ready.Load() {
		return errNotReady
	}
	return nil
}
