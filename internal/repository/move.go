package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const moveKeyPrefix = "move:"

type MoveRepository interface {
	Get(ctx context.Context, key string) (entity.Move, error)
	Set(ctx context.Context, key string, move entity.Move) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository - stored moves expire after ttl; zero keeps them forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Set(ctx context.Context, key string, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKeyPrefix+key, moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) Get(ctx context.Context, key string) (entity.Move, error) {
	response, err := that.client.Get(ctx, moveKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return entity.Move{}, apperror.ErrNotFound
	}

	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get move: %w", err)
	}

	var move entity.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return entity.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}
