package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type State int

const (
	StateInProgress State = iota
	StateWon
	StateTied
	StateRemoved
)

func (that State) String() string {
	switch that {
	case StateWon:
		return "won"
	case StateTied:
		return "tied"
	case StateRemoved:
		return "removed"
	default:
		return "in_progress"
	}
}

// IsTerminal - no move is accepted once a game is won, tied or removed.
func (that State) IsTerminal() bool {
	return that != StateInProgress
}

// Snapshot is the rendered game message as the platform delivers it with a click.
type Snapshot struct {
	Content      string
	Cells        []Cell
	Participants Participants
}

// Click - a user pressed a button of the game message.
type Click struct {
	Actor    string
	ActionID string
}

// Result is the next rendering of the game. Grid and Content are empty for a removed game.
type Result struct {
	State   State
	Board   entity.Board
	Outcome entity.Outcome
	Players Players
	Grid    Grid
	Content string
}

// Challenge - renders a fresh game where the opponent moves first.
func Challenge(challenger, opponent string) Result {
	return newResult(ChallengeText(opponent), entity.Board{}, Players{
		Challenger: challenger,
		Opponent:   opponent,
	})
}

// Play - derives the next rendering of a game from its previous rendering and one click.
// Nothing is kept between calls: the snapshot is the whole game.
func Play(snapshot Snapshot, click Click) (Result, error) {
	action, err := ParseAction(click.ActionID)
	if err != nil {
		return Result{}, fmt.Errorf("invalid click: %w", err)
	}

	if click.Actor == "" {
		return Result{}, fmt.Errorf("%w: no acting user", apperror.ErrMissingContext)
	}

	if snapshot.Participants.Challenger == "" {
		return Result{}, fmt.Errorf("%w: no recorded challenger", apperror.ErrMissingContext)
	}

	if action.Remove {
		if err = AuthorizeRemove(snapshot.Participants, click.Actor); err != nil {
			return Result{}, err
		}
		return Result{State: StateRemoved}, nil
	}

	if !snapshot.Participants.Includes(click.Actor) {
		return Result{}, apperror.ErrNotPartOfGame
	}

	headline, err := snapshot.headline()
	if err != nil {
		return Result{}, err
	}

	prior, err := ReadBoard(snapshot.Cells)
	if err != nil {
		return Result{}, err
	}

	if !Evaluate(prior).IsNone() {
		return Result{}, apperror.ErrGameFinished
	}

	players, err := Authorize(snapshot.Participants, click.Actor, prior.NextToMove())
	if err != nil {
		return Result{}, err
	}

	board, err := Apply(prior, action.Coord)
	if err != nil {
		return Result{}, err
	}

	return newResult(headline, board, players), nil
}

// headline - the first line of the message, which announced the challenge.
func (that Snapshot) headline() (string, error) {
	headline, _, _ := strings.Cut(that.Content, "\n")
	if strings.TrimSpace(headline) == "" {
		return "", fmt.Errorf("%w: game message has no content", apperror.ErrMissingContext)
	}
	return headline, nil
}

func newResult(headline string, board entity.Board, players Players) Result {
	outcome := Evaluate(board)

	return Result{
		State:   stateOf(outcome),
		Board:   board,
		Outcome: outcome,
		Players: players,
		Grid:    Render(board, outcome),
		Content: headline + "\n" + StatusText(board, outcome, players),
	}
}

func stateOf(outcome entity.Outcome) State {
	switch {
	case outcome.IsLine():
		return StateWon
	case outcome.IsTie():
		return StateTied
	default:
		return StateInProgress
	}
}
