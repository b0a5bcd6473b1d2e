package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	fenceKeyPrefix  = "tictactoe:fence:"
	DefaultFenceTTL = 24 * time.Hour
)

// advanceScript - stores ARGV[1] only when it is greater than the stored value.
var advanceScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '-1')
local moves = tonumber(ARGV[1])
if moves <= current then
	return 0
end
redis.call('SET', KEYS[1], moves, 'PX', ARGV[2])
return 1
`)

// FenceRepository remembers how many marks the newest rendering of each game message has.
type FenceRepository interface {
	Advance(ctx context.Context, messageID string, moves int) (bool, error)
	Clear(ctx context.Context, messageID string) error
}

type dbFence struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFenceRepository(client *redis.Client, ttl time.Duration) FenceRepository {
	if ttl <= 0 {
		ttl = DefaultFenceTTL
	}

	return &dbFence{
		client: client,
		ttl:    ttl,
	}
}

// Advance - records moves for the message. It reports false when a rendering with as many
// or more moves was already recorded.
func (that *dbFence) Advance(ctx context.Context, messageID string, moves int) (bool, error) {
	advanced, err := advanceScript.Run(ctx, that.client, []string{fenceKey(messageID)}, moves, that.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to advance fence: %w", err)
	}

	return advanced == 1, nil
}

func (that *dbFence) Clear(ctx context.Context, messageID string) error {
	if err := that.client.Del(ctx, fenceKey(messageID)).Err(); err != nil {
		return fmt.Errorf("failed to clear fence: %w", err)
	}

	return nil
}

func fenceKey(messageID string) string {
	return fenceKeyPrefix + messageID
}
