package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Participants is what the platform message records about who plays: the user who
// started the game and every user mentioned in it.
type Participants struct {
	Challenger string
	Mentions   []string
}

// Players maps both roles to user ids. Both may be the same user.
type Players struct {
	Challenger string
	Opponent   string
}

// User - the user id playing role.
func (that Players) User(role entity.Role) string {
	if role == entity.RoleChallenger {
		return that.Challenger
	}
	return that.Opponent
}

// Includes - reports whether user is the challenger or one of the mentioned users.
func (that Participants) Includes(user string) bool {
	if user == "" {
		return false
	}

	if user == that.Challenger {
		return true
	}

	for _, mention := range that.Mentions {
		if mention == user {
			return true
		}
	}

	return false
}

// Resolve - picks the opponent from the mentions. A single mention is the opponent even
// when it is the challenger; otherwise exactly one mention other than the challenger must remain.
func (that Participants) Resolve() (Players, error) {
	if that.Challenger == "" {
		return Players{}, fmt.Errorf("%w: no recorded challenger", apperror.ErrMissingContext)
	}

	switch len(that.Mentions) {
	case 0:
		return Players{}, fmt.Errorf("%w: no mentioned opponent", apperror.ErrMissingContext)
	case 1:
		return Players{Challenger: that.Challenger, Opponent: that.Mentions[0]}, nil
	}

	candidates := make(map[string]struct{}, len(that.Mentions))
	var opponent string
	for _, mention := range that.Mentions {
		if mention == that.Challenger {
			continue
		}
		candidates[mention] = struct{}{}
		opponent = mention
	}

	switch len(candidates) {
	case 0:
		return Players{}, fmt.Errorf("%w: no mentions other than the challenger", apperror.ErrMissingContext)
	case 1:
		return Players{Challenger: that.Challenger, Opponent: opponent}, nil
	default:
		return Players{}, fmt.Errorf("%w: %d users besides the challenger are mentioned",
			apperror.ErrAmbiguousOpponent, len(candidates))
	}
}

// Authorize - checks that actor may make the move when nextToMove is on turn.
// Several candidate opponents only stop a mentioned user: the challenger is known
// and plays against the first other mention.
func Authorize(participants Participants, actor string, nextToMove entity.Role) (Players, error) {
	if !participants.Includes(actor) {
		return Players{}, apperror.ErrNotPartOfGame
	}

	players, err := participants.Resolve()
	if errors.Is(err, apperror.ErrAmbiguousOpponent) && actor == participants.Challenger {
		players, err = Players{Challenger: actor, Opponent: participants.firstCandidate()}, nil
	}
	if err != nil {
		return Players{}, err
	}

	if players.User(nextToMove) != actor {
		return Players{}, apperror.ErrNotYourTurn
	}

	return players, nil
}

// AuthorizeRemove - any participant may remove the game, regardless of turn.
func AuthorizeRemove(participants Participants, actor string) error {
	if !participants.Includes(actor) {
		return apperror.ErrNotPartOfGame
	}
	return nil
}

func (that Participants) firstCandidate() string {
	for _, mention := range that.Mentions {
		if mention != that.Challenger {
			return mention
		}
	}
	return ""
}
