package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/corechess/internal/position"
	. "github.com/example/corechess/internal/types"
)

func init() {
	Init()
}

func TestGenerateLegalMovesStartPosition(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(p, GenAll)
	// 16 pawn moves (8 single + 8 double) + 4 knight moves = 20
	assert.Equal(t, 20, moves.Len())
}

func TestGenerateLegalMovesPinnedPieceCannotMove(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/r2NK3 w - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, SqD1, moves.At(i).From(), "the knight on d1 is pinned against the king by the rook on a1")
	}
}

func TestForcingMovesOnlyCapturesAndPromotions(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()
	forcing := mg.ForcingMoves(p)
	require.Equal(t, 1, forcing.Len())
	assert.Equal(t, SqE4, forcing.At(0).From())
	assert.Equal(t, SqD5, forcing.At(0).To())
}

func TestAnyMoveFalseOnStalemate(t *testing.T) {
	// classic stalemate: black king on a8, white king c7, white queen b6 -
	// black to move, no legal moves, not in check.
	p, err := position.NewPositionFen("k7/2K5/1Q6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()
	assert.False(t, mg.AnyMove(p))
	assert.False(t, p.HasCheck())
}

func TestGetMoveFromUci(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()
	m := mg.GetMoveFromUci(p, "e2e4")
	assert.True(t, m.IsValid())
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
}
