package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

const (
	HelloCommand       = "hello"
	SmashOrPassCommand = "smashorpass"
	WeekPlannerCommand = "Week Planner"

	smashOrPassOption = "name"
	smashReaction     = "🥵"
	passReaction      = "😒"

	weekPlannerText = "New week planner"
)

var weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (that *Server) handleHello(_ context.Context, interaction *discordgo.Interaction) error {
	user := actingUser(interaction)
	if user == nil {
		return fmt.Errorf("%w: hello without a user", apperror.ErrMissingContext)
	}

	return that.respondEphemeral(interaction, "Hello "+tictactoe.Mention(user.ID)+"!")
}

// handleSmashOrPass - posts the candidate and seeds the two voting reactions.
func (that *Server) handleSmashOrPass(_ context.Context, interaction *discordgo.Interaction) error {
	var name string
	for _, option := range interaction.ApplicationCommandData().Options {
		if option.Name == smashOrPassOption && option.Type == discordgo.ApplicationCommandOptionString {
			name = option.StringValue()
		}
	}

	if name == "" {
		return that.reject(interaction, apperror.ErrMissingOption)
	}

	if err := that.respond(interaction, "Smash or Pass: **"+name+"**"); err != nil {
		return err
	}

	message, err := that.session.InteractionResponse(interaction)
	if err != nil {
		return fmt.Errorf("failed to fetch response: %w", err)
	}

	for _, reaction := range []string{smashReaction, passReaction} {
		if err = that.session.MessageReactionAdd(message.ChannelID, message.ID, reaction); err != nil {
			return fmt.Errorf("failed to add reaction %s: %w", reaction, err)
		}
	}

	return nil
}

// handleWeekPlanner - the message command: one message per weekday, each carrying the target's reactions.
func (that *Server) handleWeekPlanner(_ context.Context, interaction *discordgo.Interaction) error {
	data := interaction.ApplicationCommandData()

	var target *discordgo.Message
	if data.Resolved != nil {
		target = data.Resolved.Messages[data.TargetID]
	}

	if target == nil {
		return fmt.Errorf("%w: week planner without a target message", apperror.ErrMissingContext)
	}

	if err := that.respondEphemeral(interaction, weekPlannerText); err != nil {
		return err
	}

	for _, day := range weekdays {
		message, err := that.session.ChannelMessageSend(interaction.ChannelID, day)
		if err != nil {
			return fmt.Errorf("failed to send %s: %w", day, err)
		}

		for _, reaction := range target.Reactions {
			if reaction == nil || reaction.Emoji == nil {
				continue
			}

			if err = that.session.MessageReactionAdd(interaction.ChannelID, message.ID, reaction.Emoji.APIName()); err != nil {
				return fmt.Errorf("failed to react on %s: %w", day, err)
			}
		}
	}

	return nil
}
