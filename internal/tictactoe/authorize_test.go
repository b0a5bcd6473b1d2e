package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	challengerID = "100"
	opponentID   = "200"
	strangerID   = "300"
)

func TestAuthorize(t *testing.T) {
	participants := Participants{Challenger: challengerID, Mentions: []string{opponentID}}

	t.Run("Opponent on turn", func(t *testing.T) {
		// Given: it is the opponent's move
		// When: the opponent clicks
		players, err := Authorize(participants, opponentID, entity.RoleOpponent)

		// Then: the move is allowed
		require.NoError(t, err)
		assert.Equal(t, Players{Challenger: challengerID, Opponent: opponentID}, players)
	})

	t.Run("Challenger on turn", func(t *testing.T) {
		_, err := Authorize(participants, challengerID, entity.RoleChallenger)

		require.NoError(t, err)
	})

	t.Run("Challenger out of turn", func(t *testing.T) {
		// Given: it is the opponent's move
		// When: the challenger clicks
		_, err := Authorize(participants, challengerID, entity.RoleOpponent)

		// Then: it is not their turn
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Opponent out of turn", func(t *testing.T) {
		_, err := Authorize(participants, opponentID, entity.RoleChallenger)

		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Stranger is rejected regardless of turn", func(t *testing.T) {
		for _, role := range []entity.Role{entity.RoleOpponent, entity.RoleChallenger} {
			// When: a user outside the game clicks
			_, err := Authorize(participants, strangerID, role)

			// Then: they are not part of the game
			require.ErrorIs(t, err, apperror.ErrNotPartOfGame)
			assert.ErrorIs(t, err, apperror.ErrUnauthorized)
		}
	})

	t.Run("Stranger is rejected before ambiguity is reported", func(t *testing.T) {
		crowded := Participants{Challenger: challengerID, Mentions: []string{opponentID, "400"}}

		_, err := Authorize(crowded, strangerID, entity.RoleOpponent)

		assert.ErrorIs(t, err, apperror.ErrNotPartOfGame)
	})

	t.Run("Challenger is known among several candidates", func(t *testing.T) {
		// Given: a message mentioning two users besides the challenger
		crowded := Participants{Challenger: challengerID, Mentions: []string{opponentID, "400"}}

		// When: the challenger clicks on their turn
		players, err := Authorize(crowded, challengerID, entity.RoleChallenger)

		// Then: the move is allowed against the first other mention
		require.NoError(t, err)
		assert.Equal(t, Players{Challenger: challengerID, Opponent: opponentID}, players)

		// When: the challenger clicks out of turn
		_, err = Authorize(crowded, challengerID, entity.RoleOpponent)

		// Then: the turn check still applies
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// When: one of the mentioned users clicks
		_, err = Authorize(crowded, opponentID, entity.RoleOpponent)

		// Then: their role cannot be told apart
		assert.ErrorIs(t, err, apperror.ErrAmbiguousOpponent)
	})

	t.Run("Self challenge plays both roles", func(t *testing.T) {
		// Given: the challenger challenged themselves
		solo := Participants{Challenger: challengerID, Mentions: []string{challengerID}}

		for _, role := range []entity.Role{entity.RoleOpponent, entity.RoleChallenger} {
			// When: they click on either turn
			_, err := Authorize(solo, challengerID, role)

			// Then: the move is allowed
			require.NoError(t, err)
		}
	})
}

func TestParticipants_Resolve(t *testing.T) {
	t.Run("Challenger among the mentions", func(t *testing.T) {
		// Given: the message mentions the challenger and one other user
		participants := Participants{Challenger: challengerID, Mentions: []string{challengerID, opponentID}}

		// When: resolving the players
		players, err := participants.Resolve()

		// Then: the other user is the opponent
		require.NoError(t, err)
		assert.Equal(t, opponentID, players.Opponent)
	})

	t.Run("Several candidate opponents", func(t *testing.T) {
		participants := Participants{Challenger: challengerID, Mentions: []string{opponentID, strangerID}}

		_, err := participants.Resolve()

		assert.ErrorIs(t, err, apperror.ErrAmbiguousOpponent)
	})

	t.Run("Only the challenger repeated", func(t *testing.T) {
		participants := Participants{Challenger: challengerID, Mentions: []string{challengerID, challengerID}}

		_, err := participants.Resolve()

		assert.ErrorIs(t, err, apperror.ErrMissingContext)
	})

	t.Run("No mentions", func(t *testing.T) {
		_, err := Participants{Challenger: challengerID}.Resolve()

		assert.ErrorIs(t, err, apperror.ErrMissingContext)
	})

	t.Run("No challenger", func(t *testing.T) {
		_, err := Participants{Mentions: []string{opponentID}}.Resolve()

		assert.ErrorIs(t, err, apperror.ErrMissingContext)
	})
}

func TestAuthorizeRemove(t *testing.T) {
	participants := Participants{Challenger: challengerID, Mentions: []string{opponentID}}

	assert.NoError(t, AuthorizeRemove(participants, challengerID))
	assert.NoError(t, AuthorizeRemove(participants, opponentID))
	assert.ErrorIs(t, AuthorizeRemove(participants, strangerID), apperror.ErrNotPartOfGame)
	assert.ErrorIs(t, AuthorizeRemove(participants, ""), apperror.ErrNotPartOfGame)
}
