package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

// toComponents - one action row per board row, then a row holding the remove control.
func toComponents(grid tictactoe.Grid) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, len(grid.Cells)+1)

	for _, cells := range grid.Cells {
		buttons := make([]discordgo.MessageComponent, 0, len(cells))
		for _, cell := range cells {
			style := discordgo.SecondaryButton
			if cell.Highlighted {
				style = discordgo.SuccessButton
			}

			buttons = append(buttons, discordgo.Button{
				CustomID: cell.ActionID,
				Style:    style,
				Disabled: cell.Disabled,
				Emoji:    &discordgo.ComponentEmoji{Name: cell.Glyph},
			})
		}

		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	rows = append(rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: grid.Control.ActionID,
				Label:    grid.Control.Label,
				Style:    discordgo.DangerButton,
				Disabled: grid.Control.Disabled,
			},
		},
	})

	return rows
}

// fromComponents - reads the cells back out of a received message.
// Components that are neither action rows nor buttons are ignored.
func fromComponents(components []discordgo.MessageComponent) ([]tictactoe.Cell, error) {
	cells := make([]tictactoe.Cell, 0, len(entity.Rows)*len(entity.Columns))

	for _, component := range components {
		row, ok := asActionsRow(component)
		if !ok {
			continue
		}

		for _, child := range row.Components {
			button, ok := asButton(child)
			if !ok || button.CustomID == tictactoe.RemoveActionID {
				continue
			}

			if button.Emoji == nil {
				return nil, fmt.Errorf("%w: button %q has no emoji", apperror.ErrParse, button.CustomID)
			}

			mark, err := entity.ParseGlyph(button.Emoji.Name)
			if err != nil {
				return nil, fmt.Errorf("button %q: %w", button.CustomID, err)
			}

			cells = append(cells, tictactoe.Cell{ActionID: button.CustomID, Mark: mark})
		}
	}

	return cells, nil
}

func asActionsRow(component discordgo.MessageComponent) (*discordgo.ActionsRow, bool) {
	switch row := component.(type) {
	case *discordgo.ActionsRow:
		return row, row != nil
	case discordgo.ActionsRow:
		return &row, true
	default:
		return nil, false
	}
}

func asButton(component discordgo.MessageComponent) (*discordgo.Button, bool) {
	switch button := component.(type) {
	case *discordgo.Button:
		return button, button != nil
	case discordgo.Button:
		return &button, true
	default:
		return nil, false
	}
}

func userIDs(users []*discordgo.User) []string {
	ids := make([]string, 0, len(users))
	for _, user := range users {
		if user != nil {
			ids = append(ids, user.ID)
		}
	}
	return ids
}
