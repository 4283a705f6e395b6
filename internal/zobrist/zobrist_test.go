package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/example/corechess/internal/types"
)

func TestDistinctWords(t *testing.T) {
	assert.NotEqual(t, Piece(WhitePawn, SqE2), Piece(WhitePawn, SqE4))
	assert.NotEqual(t, Piece(WhitePawn, SqE2), Piece(BlackPawn, SqE2))
	assert.NotEqual(t, Castling(CastlingWhite), Castling(CastlingNone))
	assert.NotEqual(t, EnPassant(SqE3), EnPassant(SqNone))
}

func TestComputeDeterministic(t *testing.T) {
	var board [SqLength]Piece
	board[SqE1] = WhiteKing
	board[SqE8] = BlackKing
	board[SqA2] = WhitePawn

	k1 := Compute(board, White, CastlingAny, SqNone)
	k2 := Compute(board, White, CastlingAny, SqNone)
	assert.Equal(t, k1, k2)

	k3 := Compute(board, Black, CastlingAny, SqNone)
	assert.NotEqual(t, k1, k3)

	k4 := Compute(board, White, CastlingAny, SqE3)
	assert.NotEqual(t, k1, k4)
}
