package apperror

import (
	"errors"
	"fmt"
)

// Fatal errors abort the interaction and are reported to the operator.
var (
	ErrParse             = errors.New("parse error")
	ErrMissingContext    = errors.New("missing interaction context")
	ErrAmbiguousOpponent = errors.New("ambiguous opponent")
	ErrInvalidBoard      = errors.New("board is not reachable by alternating moves")
	ErrUnknownCommand    = errors.New("unknown command")
)

// ErrUnauthorized - the acting user may not make this move.
var ErrUnauthorized = errors.New("unauthorized")

// Rejections are expected outcomes. They are answered to the acting user and never logged as errors.
var (
	ErrNotPartOfGame = fmt.Errorf("%w: not part of this game", ErrUnauthorized)
	ErrNotYourTurn   = fmt.Errorf("%w: not your turn", ErrUnauthorized)
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrGameFinished  = errors.New("game is already finished")
	ErrStaleMove     = errors.New("the board has changed since this move was made")
	ErrBotOpponent   = errors.New("bots cannot be challenged")
	ErrMissingOption = errors.New("required option is missing")
)

const fallbackUserMessage = "Something went wrong"

var userMessages = map[error]string{
	ErrNotPartOfGame: "You are not part of this game",
	ErrNotYourTurn:   "Its not your turn",
	ErrCellOccupied:  "That cell is already taken",
	ErrGameFinished:  "The game is already over",
	ErrStaleMove:     "The board has changed, try again",
	ErrBotOpponent:   "You cannot challenge a bot to TicTacToe!",
	ErrMissingOption: "No candidate given",
}

// IsRejection - reports whether err should be answered to the user instead of aborting the interaction.
func IsRejection(err error) bool {
	_, ok := rejection(err)
	return ok
}

// UserMessage - returns the fixed user-facing text for a rejection.
func UserMessage(err error) string {
	if target, ok := rejection(err); ok {
		return userMessages[target]
	}
	return fallbackUserMessage
}

func rejection(err error) (error, bool) {
	if err == nil {
		return nil, false
	}

	for target := range userMessages {
		if errors.Is(err, target) {
			return target, true
		}
	}

	return nil, false
}
