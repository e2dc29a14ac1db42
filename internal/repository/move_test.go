package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRepository_Set(t *testing.T) {
	ctx, st := suite.New(t)

	moveRepo := NewMoveRepository(st.Storage, time.Minute)

	// Given: a computed move
	move := entity.Move{Player: entity.X, Position: entity.Position{Row: 1, Col: 2}}

	// When: Set is called
	err := moveRepo.Set(ctx, "game:3:X:random:", move)

	// Then: no error should be returned, and the key expires
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "move:game:3:X:random:").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestMoveRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, time.Minute)

		// Given: a stored move
		move := entity.Move{Player: entity.O, Position: entity.Position{Row: 4, Col: 4}}
		err := moveRepo.Set(ctx, "key", move)
		require.NoError(t, err)

		// When: Get is called with the same key
		retrievedMove, err := moveRepo.Get(ctx, "key")

		// Then: the retrieved move should match the stored one
		require.NoError(t, err)
		assert.Equal(t, move, retrievedMove)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, time.Minute)

		// When: Get is called with an unknown key
		retrievedMove, err := moveRepo.Get(ctx, "missing")

		// Then: an ErrNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, entity.Move{}, retrievedMove)
	})

	t.Run("Get_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, time.Minute)

		// Given: a value that is not a move
		require.NoError(t, st.Storage.Set(ctx, "move:broken", `{"player":"Z"}`, 0).Err())

		// When: Get is called
		_, err := moveRepo.Get(ctx, "broken")

		// Then: the decoding error surfaces
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrNotFound)
	})
}
