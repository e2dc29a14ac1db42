package gamequery

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGameID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func mv(player entity.Player, row, col int) entity.Move {
	return entity.Move{Player: player, Position: entity.Position{Row: row, Col: col}}
}

func TestDecoder_Decode(t *testing.T) {
	decoder := NewDecoder(false)

	t.Run("Well-formed query", func(t *testing.T) {
		// Given: a query with three moves on a 5x5 board
		params := Params{GameID: testGameID, Size: "5", Playing: "O", Moves: "X-1-1_O-0-2_X-4-3"}

		// When: decoding it
		query, err := decoder.Decode(params)

		// Then: every field is filled in order
		require.NoError(t, err)
		assert.Equal(t, testGameID, query.GameID.String())
		assert.Equal(t, entity.Size5, query.Size)
		assert.Equal(t, entity.O, query.Playing)
		assert.Equal(t, []entity.Move{mv(entity.X, 1, 1), mv(entity.O, 0, 2), mv(entity.X, 4, 3)}, query.Moves)
	})

	t.Run("Empty moves token for every size", func(t *testing.T) {
		for _, size := range []string{"3", "5", "7"} {
			query, err := decoder.Decode(Params{GameID: testGameID, Size: size, Playing: "X", Moves: ""})

			require.NoError(t, err)
			assert.Empty(t, query.Moves)
			assert.Equal(t, size, query.Size.String()[:1])
		}
	})

	t.Run("Game id is case-insensitive", func(t *testing.T) {
		query, err := decoder.Decode(Params{GameID: "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", Playing: "X"})

		require.NoError(t, err)
		assert.Equal(t, testGameID, query.GameID.String())
	})

	t.Run("Error on invalid game id", func(t *testing.T) {
		for _, gameID := range []string{"", "123", "not-a-uuid"} {
			_, err := decoder.Decode(Params{GameID: gameID, Playing: "X"})
			assert.ErrorIs(t, err, apperror.ErrInvalidGameID, gameID)
		}
	})

	t.Run("Error on unknown player to move", func(t *testing.T) {
		_, err := decoder.Decode(Params{GameID: testGameID, Playing: "Y"})
		assert.ErrorIs(t, err, apperror.ErrUnknownPlayer)
	})

	t.Run("Error on invalid player symbol in a move", func(t *testing.T) {
		// Given: a move list with a "Z" mark in the middle
		params := Params{GameID: testGameID, Size: "3", Playing: "X", Moves: "X-0-0_Z-1-1_O-2-2"}

		// When: decoding it
		query, err := decoder.Decode(params)

		// Then: the whole query is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Nil(t, query)
	})
}

func TestDecoder_DecodeSize(t *testing.T) {
	t.Run("Absent size defaults to 3", func(t *testing.T) {
		for _, strict := range []bool{false, true} {
			size, err := NewDecoder(strict).DecodeSize("")
			require.NoError(t, err)
			assert.Equal(t, entity.Size3, size)
		}
	})

	t.Run("Lenient mode coerces unsupported sizes", func(t *testing.T) {
		decoder := NewDecoder(false)
		for _, raw := range []string{"4", "9", "0", "-5", "100"} {
			size, err := decoder.DecodeSize(raw)
			require.NoError(t, err)
			assert.Equal(t, entity.Size3, size, raw)
		}
	})

	t.Run("Strict mode rejects unsupported sizes", func(t *testing.T) {
		decoder := NewDecoder(true)
		for _, raw := range []string{"4", "9", "0"} {
			_, err := decoder.DecodeSize(raw)
			assert.ErrorIs(t, err, apperror.ErrUnsupportedSize, raw)
		}
	})

	t.Run("Supported sizes pass in both modes", func(t *testing.T) {
		for _, strict := range []bool{false, true} {
			size, err := NewDecoder(strict).DecodeSize("7")
			require.NoError(t, err)
			assert.Equal(t, entity.Size7, size)
		}
	})

	t.Run("Non-numeric size is rejected", func(t *testing.T) {
		_, err := NewDecoder(false).DecodeSize("three")
		assert.ErrorIs(t, err, apperror.ErrUnsupportedSize)
	})
}

func TestDecodeMoves(t *testing.T) {
	t.Run("Single unreadable segment means no moves", func(t *testing.T) {
		for _, token := range []string{"", "-", "Z-1-1", "X-1", "garbage"} {
			moves, err := DecodeMoves(token, entity.Size3)

			require.NoError(t, err, token)
			assert.Empty(t, moves, token)
		}
	})

	t.Run("Single move", func(t *testing.T) {
		moves, err := DecodeMoves("O-2-0", entity.Size3)

		require.NoError(t, err)
		assert.Equal(t, []entity.Move{mv(entity.O, 2, 0)}, moves)
	})

	t.Run("Any unreadable segment among several fails", func(t *testing.T) {
		for _, token := range []string{"X-0-0_", "X-0-0_O-1", "X-0-0_O-a-1", "X-0-0_O-1--1", "_X-0-0"} {
			_, err := DecodeMoves(token, entity.Size3)
			assert.ErrorIs(t, err, apperror.ErrInvalidMove, token)
		}
	})

	t.Run("Token is cut into at most size*size segments", func(t *testing.T) {
		// Given: ten segments on a 3x3 board, so the ninth swallows the tenth
		token := "X-0-0_O-0-1_X-0-2_O-1-0_X-1-1_O-1-2_X-2-0_O-2-1_X-2-2_O-0-0"

		// When: decoding it
		_, err := DecodeMoves(token, entity.Size3)

		// Then: the ninth segment "X-2-2_O-0-0" has an unreadable column
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Out of range coordinates still decode", func(t *testing.T) {
		moves, err := DecodeMoves("X-9-9", entity.Size3)

		require.NoError(t, err)
		assert.Equal(t, []entity.Move{mv(entity.X, 9, 9)}, moves)
	})
}

func TestEncodeMoves(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		moves := []entity.Move{mv(entity.X, 0, 0), mv(entity.O, 6, 5), mv(entity.X, 3, 3)}

		token := EncodeMoves(moves)
		assert.Equal(t, "X-0-0_O-6-5_X-3-3", token)

		decoded, err := DecodeMoves(token, entity.Size7)
		require.NoError(t, err)
		assert.Equal(t, moves, decoded)
	})

	t.Run("No moves", func(t *testing.T) {
		token := EncodeMoves(nil)
		assert.Equal(t, "", token)

		decoded, err := DecodeMoves(token, entity.Size3)
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})
}
