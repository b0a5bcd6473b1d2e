package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

const (
	TicTacToeCommand = "TicTacToe"

	removedText = "The game has been removed"
)

// handleTicTacToe - the user command: posts a fresh board challenging the target user.
func (that *Server) handleTicTacToe(ctx context.Context, interaction *discordgo.Interaction) error {
	data := interaction.ApplicationCommandData()

	var target *discordgo.User
	if data.Resolved != nil {
		target = data.Resolved.Users[data.TargetID]
	}

	result, err := that.game.Challenge(ctx, toUser(actingUser(interaction)), toUser(target))
	if apperror.IsRejection(err) {
		return that.reject(interaction, err)
	}
	if err != nil {
		return fmt.Errorf("failed to challenge: %w", err)
	}

	err = that.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    result.Content,
			Components: toComponents(result.Grid),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to post board: %w", err)
	}

	return nil
}

// handleTicTacToeClick - a button on a board message: the message itself is the game state.
func (that *Server) handleTicTacToeClick(ctx context.Context, interaction *discordgo.Interaction) error {
	log := that.logger.With("method", "handleTicTacToeClick")

	message := interaction.Message
	if message == nil {
		return fmt.Errorf("%w: click without a message", apperror.ErrMissingContext)
	}

	if message.Interaction == nil || message.Interaction.User == nil {
		return fmt.Errorf("%w: there was no interaction on the message", apperror.ErrMissingContext)
	}

	actor := actingUser(interaction)
	if actor == nil {
		return fmt.Errorf("%w: click without a user", apperror.ErrMissingContext)
	}

	cells, err := fromComponents(message.Components)
	if err != nil {
		return fmt.Errorf("failed to read board: %w", err)
	}

	snapshot := tictactoe.Snapshot{
		Content: message.Content,
		Cells:   cells,
		Participants: tictactoe.Participants{
			Challenger: message.Interaction.User.ID,
			Mentions:   userIDs(message.Mentions),
		},
	}
	click := tictactoe.Click{
		Actor:    actor.ID,
		ActionID: interaction.MessageComponentData().CustomID,
	}

	result, err := that.game.Click(ctx, message.ID, snapshot, click)
	if apperror.IsRejection(err) {
		return that.reject(interaction, err)
	}
	if err != nil {
		return fmt.Errorf("failed to play: %w", err)
	}

	if result.State == tictactoe.StateRemoved {
		if err = that.session.ChannelMessageDelete(interaction.ChannelID, message.ID); err != nil {
			return fmt.Errorf("failed to delete board: %w", err)
		}

		log.Info("game removed", "messageID", message.ID, "by", actor.ID)

		return that.respondEphemeral(interaction, removedText)
	}

	err = that.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    result.Content,
			Components: toComponents(result.Grid),
		},
	})
	if err != nil {
		// the message still shows the previous board, so the fence must not keep the new count
		that.game.Abandon(ctx, message.ID)
		return fmt.Errorf("failed to update board: %w", err)
	}

	if result.State.IsTerminal() {
		log.Info("game finished", "messageID", message.ID, "state", result.State.String())
	}

	return nil
}
