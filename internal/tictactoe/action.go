package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Namespace - prefix of every action id owned by the game.
const Namespace = "tictactoe"

// RemoveActionID - action id of the control that removes the game.
const RemoveActionID = Namespace + entity.CoordSeparator + "remove"

// Action is a decoded button click: either a cell or the remove control.
type Action struct {
	Remove bool
	Coord  entity.Coord
}

// ActionID - the action id attached to the button of a cell.
func ActionID(coord entity.Coord) string {
	return Namespace + entity.CoordSeparator + coord.String()
}

// ParseAction - decodes an action id produced by ActionID or RemoveActionID.
func ParseAction(id string) (Action, error) {
	namespace, token, found := strings.Cut(id, entity.CoordSeparator)
	if !found || namespace != Namespace {
		return Action{}, fmt.Errorf("%w: action id %q is not in namespace %q", apperror.ErrParse, id, Namespace)
	}

	if id == RemoveActionID {
		return Action{Remove: true}, nil
	}

	coord, err := entity.ParseCoord(token)
	if err != nil {
		return Action{}, fmt.Errorf("action id %q: %w", id, err)
	}

	return Action{Coord: coord}, nil
}
