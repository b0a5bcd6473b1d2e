package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

// session is the part of the Discord REST API the commands use.
type session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponse(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
}

type gameUseCase interface {
	Challenge(ctx context.Context, challenger, target *entity.User) (tictactoe.Result, error)
	Click(ctx context.Context, messageID string, snapshot tictactoe.Snapshot, click tictactoe.Click) (tictactoe.Result, error)
	Abandon(ctx context.Context, messageID string)
}

// HandlerFunc handles one interaction.
type HandlerFunc func(ctx context.Context, interaction *discordgo.Interaction) error

// Command binds a command name to its handlers. Namespace routes component clicks:
// a custom id "<namespace>_..." goes to Component.
type Command struct {
	Name      string
	Namespace string
	Slash     HandlerFunc
	Component HandlerFunc
}

type Server struct {
	logger  *slog.Logger
	session session
	game    gameUseCase

	commands   map[string]Command
	namespaces map[string]Command
}

func New(logger *slog.Logger, session session, game gameUseCase) *Server {
	server := &Server{
		logger:     logger.With("component", "discord"),
		session:    session,
		game:       game,
		commands:   make(map[string]Command),
		namespaces: make(map[string]Command),
	}

	server.register(Command{
		Name:      TicTacToeCommand,
		Namespace: tictactoe.Namespace,
		Slash:     server.handleTicTacToe,
		Component: server.handleTicTacToeClick,
	})
	server.register(Command{Name: HelloCommand, Slash: server.handleHello})
	server.register(Command{Name: SmashOrPassCommand, Slash: server.handleSmashOrPass})
	server.register(Command{Name: WeekPlannerCommand, Slash: server.handleWeekPlanner})

	return server
}

func (that *Server) register(cmd Command) {
	if _, ok := that.commands[cmd.Name]; ok {
		panic(fmt.Sprintf("command %q already registered", cmd.Name))
	}
	that.commands[cmd.Name] = cmd

	if cmd.Namespace != "" {
		that.namespaces[cmd.Namespace] = cmd
	}
}

// Commands - names of every registered command.
func (that *Server) Commands() []string {
	names := make([]string, 0, len(that.commands))
	for name := range that.commands {
		names = append(names, name)
	}
	return names
}

// HandleInteraction - routes an interaction to its command. Failures are logged, never returned:
// the gateway has nobody to return them to.
func (that *Server) HandleInteraction(ctx context.Context, interaction *discordgo.Interaction) {
	log := that.logger.With("method", "HandleInteraction", "interactionID", interaction.ID)

	if err := that.dispatch(ctx, interaction); err != nil {
		log.Error("failed to handle interaction", "type", interaction.Type.String(), "error", err)
		return
	}

	log.Debug("handled interaction", "type", interaction.Type.String())
}

func (that *Server) dispatch(ctx context.Context, interaction *discordgo.Interaction) error {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		name := interaction.ApplicationCommandData().Name

		cmd, ok := that.commands[name]
		if !ok || cmd.Slash == nil {
			return fmt.Errorf("%w: application command %q", apperror.ErrUnknownCommand, name)
		}

		return cmd.Slash(ctx, interaction)
	case discordgo.InteractionMessageComponent:
		customID := interaction.MessageComponentData().CustomID
		namespace, _, _ := strings.Cut(customID, entity.CoordSeparator)

		cmd, ok := that.namespaces[namespace]
		if !ok || cmd.Component == nil {
			return fmt.Errorf("%w: message component %q", apperror.ErrUnknownCommand, customID)
		}

		return cmd.Component(ctx, interaction)
	default:
		return fmt.Errorf("%w: interaction type %s", apperror.ErrUnknownCommand, interaction.Type.String())
	}
}

// reject - answers a rejection to the acting user only.
func (that *Server) reject(interaction *discordgo.Interaction, err error) error {
	that.logger.Info("interaction rejected", "interactionID", interaction.ID, "reason", err.Error())

	return that.respondEphemeral(interaction, apperror.UserMessage(err))
}

func (that *Server) respondEphemeral(interaction *discordgo.Interaction, content string) error {
	err := that.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to respond: %w", err)
	}

	return nil
}

func (that *Server) respond(interaction *discordgo.Interaction, content string) error {
	err := that.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to respond: %w", err)
	}

	return nil
}

// actingUser - the member in a guild, the user in a direct message.
func actingUser(interaction *discordgo.Interaction) *discordgo.User {
	if interaction.Member != nil && interaction.Member.User != nil {
		return interaction.Member.User
	}
	return interaction.User
}

func toUser(user *discordgo.User) *entity.User {
	if user == nil {
		return nil
	}
	return &entity.User{ID: user.ID, Bot: user.Bot}
}
