package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/example/corechess/internal/types"
)

func init() {
	Init()
}

func TestNewPositionStartFen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.StringFen())
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.GetEnPassantSquare())
}

func TestDoUndoMoveNormal(t *testing.T) {
	p := NewPosition()
	before := p.ZobristKey()
	beforeFen := p.StringFen()

	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	p.DoMove(m)
	assert.Equal(t, SqE3, p.GetEnPassantSquare())
	assert.Equal(t, Black, p.NextPlayer())

	p.UndoMove()
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, beforeFen, p.StringFen())
}

func TestDoUndoMoveCapture(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	before := p.ZobristKey()

	m := CreateMove(SqE4, SqD5, Normal, PtNone)
	require.True(t, p.IsCapturingMove(m))
	p.DoMove(m)
	assert.Equal(t, WhitePawn, p.GetPiece(SqD5))
	assert.Equal(t, PieceNone, p.GetPiece(SqE4))

	p.UndoMove()
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, BlackPawn, p.GetPiece(SqD5))
}

func TestDoUndoMoveCastling(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := p.ZobristKey()

	m := CreateMove(SqE1, SqG1, Castling, PtNone)
	p.DoMove(m)
	assert.Equal(t, WhiteKing, p.GetPiece(SqG1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqF1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))

	p.UndoMove()
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, WhiteKing, p.GetPiece(SqE1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqH1))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteOO))
}

func TestDoUndoMoveEnPassant(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	require.NoError(t, err)
	before := p.ZobristKey()

	m := CreateMove(SqD4, SqE3, EnPassant, PtNone)
	p.DoMove(m)
	assert.Equal(t, BlackPawn, p.GetPiece(SqE3))
	assert.Equal(t, PieceNone, p.GetPiece(SqE4))
	assert.Equal(t, PieceNone, p.GetPiece(SqD4))

	p.UndoMove()
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, WhitePawn, p.GetPiece(SqE4))
	assert.Equal(t, BlackPawn, p.GetPiece(SqD4))
}

func TestDoUndoMovePromotion(t *testing.T) {
	p, err := NewPositionFen("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	before := p.ZobristKey()

	m := CreateMove(SqA7, SqA8, Promotion, Queen)
	p.DoMove(m)
	assert.Equal(t, WhiteQueen, p.GetPiece(SqA8))
	assert.Equal(t, PieceNone, p.GetPiece(SqA7))

	p.UndoMove()
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, WhitePawn, p.GetPiece(SqA7))
}

func TestEqualsIgnoresHistoryTail(t *testing.T) {
	p1 := NewPosition()
	p2 := NewPosition()
	p1.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	p1.DoMove(CreateMove(SqE7, SqE5, Normal, PtNone))
	p1.UndoMove()
	p1.UndoMove()
	assert.True(t, p1.Equals(p2))
}

func TestIsLegalMoveRejectsMoveIntoCheck(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/4r3/3K4 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasCheck())
	sidestep := CreateMove(SqD1, SqC1, Normal, PtNone)
	assert.True(t, p.IsLegalMove(sidestep))
	intoCheck := CreateMove(SqD1, SqE1, Normal, PtNone)
	assert.False(t, p.IsLegalMove(intoCheck))
}
