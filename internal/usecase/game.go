package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

type GameUseCase interface {
	Challenge(ctx context.Context, challenger, target *entity.User) (tictactoe.Result, error)
	Click(ctx context.Context, messageID string, snapshot tictactoe.Snapshot, click tictactoe.Click) (tictactoe.Result, error)
	Abandon(ctx context.Context, messageID string)
}

type fenceRepo interface {
	Advance(ctx context.Context, messageID string, moves int) (bool, error)
	Clear(ctx context.Context, messageID string) error
}

type gameUseCase struct {
	logger    *slog.Logger
	fenceRepo fenceRepo
}

func NewGameUseCase(logger *slog.Logger, fenceRepo fenceRepo) GameUseCase {
	return &gameUseCase{
		logger:    logger.With("component", "game"),
		fenceRepo: fenceRepo,
	}
}

// Challenge - starts a game of the challenger against target.
func (that *gameUseCase) Challenge(_ context.Context, challenger, target *entity.User) (tictactoe.Result, error) {
	if challenger == nil || target == nil {
		return tictactoe.Result{}, fmt.Errorf("%w: challenge needs a challenger and a target", apperror.ErrMissingContext)
	}

	if target.Bot {
		return tictactoe.Result{}, apperror.ErrBotOpponent
	}

	that.logger.Info("game started", "challenger", challenger.ID, "opponent", target.ID)

	return tictactoe.Challenge(challenger.ID, target.ID), nil
}

// Click - plays one click on the game message. A click whose board is not newer than the last
// one rendered on the same message is stale: it lost a race against another click.
func (that *gameUseCase) Click(ctx context.Context, messageID string, snapshot tictactoe.Snapshot, click tictactoe.Click) (tictactoe.Result, error) {
	log := that.logger.With("method", "Click", "messageID", messageID, "actor", click.Actor)

	result, err := tictactoe.Play(snapshot, click)
	if err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to play: %w", err)
	}

	if result.State == tictactoe.StateRemoved {
		that.Abandon(ctx, messageID)

		log.Info("game removed")

		return result, nil
	}

	advanced, err := that.fenceRepo.Advance(ctx, messageID, result.Board.Occupied())
	if err != nil {
		// the message stays the source of truth, so the move goes through unguarded
		log.Warn("failed to advance move fence", "error", err)
	}

	if err == nil && !advanced {
		return tictactoe.Result{}, apperror.ErrStaleMove
	}

	log.Info("move applied", "moves", result.Board.Occupied(), "state", result.State.String())

	return result, nil
}

// Abandon - forgets the move fence of a message, used when it is removed or its edit failed.
func (that *gameUseCase) Abandon(ctx context.Context, messageID string) {
	if err := that.fenceRepo.Clear(ctx, messageID); err != nil {
		that.logger.Warn("failed to clear move fence", "messageID", messageID, "error", err)
	}
}
