//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package position represents data structures and functions for a chess board
// and its position.
// It uses an 8x8 piece board and bitboards, growable undo stacks for en
// passant and castling rights, zobrist keys for transposition tables, and
// material/positional value counters updated incrementally by DoMove/UndoMove.
//
// Create a new instance with NewPosition(...) to get the chess start
// position, or NewPositionFen(fen) for an arbitrary position.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/example/corechess/internal/assert"
	myLogging "github.com/example/corechess/internal/corelog"
	. "github.com/example/corechess/internal/types"
	"github.com/example/corechess/internal/zobrist"
)

var log *logging.Logger

// StartFen is a string with the fen position for a standard chess game.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is used for zobrist keys in chess positions.
type Key = zobrist.Key

// undoEntry captures everything DoMove needs to restore on UndoMove. One
// entry is pushed per DoMove/UndoMove pair, giving the en-passant square and
// castling rights their growable stack discipline instead of a fixed-size
// history array.
type undoEntry struct {
	zobristKey      Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position represents the chess board and its position. Needs to be created
// with NewPosition() or NewPositionFen().
type Position struct {
	zobristKey Key

	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	sideToMove      Color

	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int
	piecesBb           [ColorLength][PtLength]Bitboard
	occupiedBb         [ColorLength]Bitboard

	// undo stack - grows with DoMove, shrinks with UndoMove. Top of stack
	// mirrors the "TOP element" framing of the en-passant/castling stacks.
	undoStack []undoEntry

	material        [ColorLength]Value
	materialNonPawn [ColorLength]Value
	psqMidValue     [ColorLength]Value
	psqEndValue     [ColorLength]Value
	gamePhase       int
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewPosition creates a new position. Called without arguments it returns
// the standard starting position.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen creates a new position from the given FEN string. Returns
// an error if the FEN is invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{enPassantSquare: SqNone}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// Equals implements the entity-equality used by the transposition table to
// detect hash collisions: all eight bitboards, sideToMove, and the current
// (top-of-stack) en-passant square and castling rights must match.
// Historical stack tails are deliberately ignored.
func (p *Position) Equals(o *Position) bool {
	if p.sideToMove != o.sideToMove ||
		p.castlingRights != o.castlingRights ||
		p.enPassantSquare != o.enPassantSquare {
		return false
	}
	for c := White; c <= Black; c++ {
		if p.occupiedBb[c] != o.occupiedBb[c] {
			return false
		}
	}
	for pt := King; pt <= Queen; pt++ {
		if p.piecesBb[White][pt]|p.piecesBb[Black][pt] != o.piecesBb[White][pt]|o.piecesBb[Black][pt] {
			return false
		}
	}
	return true
}

// DoMove commits a move to the board. There is no check that the move is
// legal on the current position; legality must be verified beforehand (or
// checked afterwards via IsLegalMove). Moves are normally produced by a
// MoveGenerator and assumed legal.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position DoMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "Position DoMove: no piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(myColor == p.sideToMove, "Position DoMove: piece to move does not belong to side to move %s", fromPc.String())
		assert.Assert(targetPc.TypeOf() != King, "Position DoMove: king cannot be captured")
	}

	p.undoStack = append(p.undoStack, undoEntry{
		zobristKey:      p.zobristKey,
		move:            m,
		fromPiece:       fromPc,
		capturedPiece:   targetPc,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
	})

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc, myColor)
	case Promotion:
		p.doPromotionMove(m, fromPc, myColor, toSq, targetPc, fromSq)
	case EnPassant:
		p.doEnPassantMove(toSq, myColor, fromPc, fromSq)
	case Castling:
		p.doCastlingMove(fromPc, myColor, toSq, fromSq)
	}

	p.nextHalfMoveNumber++
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.NextPlayer()
}

// UndoMove resets the position to the state before the last DoMove call.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(len(p.undoStack) > 0, "Position UndoMove: cannot undo initial position")
	}

	top := p.undoStack[len(p.undoStack)-1]
	p.undoStack = p.undoStack[:len(p.undoStack)-1]

	p.nextHalfMoveNumber--
	p.sideToMove = p.sideToMove.Flip()
	move := top.move

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if top.capturedPiece != PieceNone {
			p.putPiece(top.capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.sideToMove, Pawn), move.From())
		if top.capturedPiece != PieceNone {
			p.putPiece(top.capturedPiece, move.To())
		}
	case EnPassant:
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.sideToMove.Flip(), Pawn), move.To().To(p.sideToMove.Flip().MoveDirection()))
	case Castling:
		p.movePiece(move.To(), move.From())
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		default:
			panic("Position UndoMove: invalid castling move")
		}
	}

	p.castlingRights = top.castlingRights
	p.enPassantSquare = top.enPassantSquare
	p.halfMoveClock = top.halfMoveClock
	p.zobristKey = top.zobristKey
}

// IsAttacked reports whether sq is attacked by a piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if (GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) ||
		(GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0) ||
		(GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0) {
		return true
	}
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != 0 ||
		GetAttacksBb(Rook, sq, occ)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	if p.enPassantSquare != SqNone {
		switch by {
		case White:
			if p.board[p.enPassantSquare.To(South)] == BlackPawn && p.enPassantSquare.To(South) == sq {
				if p.board[sq.To(West)] == WhitePawn {
					return true
				}
				return p.board[sq.To(East)] == WhitePawn
			}
		case Black:
			if p.board[p.enPassantSquare.To(North)] == WhitePawn && p.enPassantSquare.To(North) == sq {
				if p.board[sq.To(West)] == BlackPawn {
					return true
				}
				return p.board[sq.To(East)] == BlackPawn
			}
		}
	}
	return false
}

// IsLegalMove reports whether move is legal: it does not leave the mover's
// own king in check and, for castling, the king does not pass through or
// start on an attacked square.
func (p *Position) IsLegalMove(move Move) bool {
	if move.MoveType() == Castling {
		if p.IsAttacked(move.From(), p.sideToMove.Flip()) {
			return false
		}
		switch move.To() {
		case SqG1:
			if p.IsAttacked(SqF1, p.sideToMove.Flip()) {
				return false
			}
		case SqC1:
			if p.IsAttacked(SqD1, p.sideToMove.Flip()) {
				return false
			}
		case SqG8:
			if p.IsAttacked(SqF8, p.sideToMove.Flip()) {
				return false
			}
		case SqC8:
			if p.IsAttacked(SqD8, p.sideToMove.Flip()) {
				return false
			}
		}
	}
	p.DoMove(move)
	legal := !p.IsAttacked(p.kingSquare[p.sideToMove.Flip()], p.sideToMove)
	p.UndoMove()
	return legal
}

// IsCapturingMove reports whether move captures an opponent piece, including
// en passant.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.sideToMove.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// HasCheck reports whether the side to move is in check.
func (p *Position) HasCheck() bool {
	return p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// String returns a human-readable summary: FEN, board matrix, and the
// running material/positional counters.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.StringFen())
	b.WriteString("\n")
	b.WriteString(p.StringBoard())
	b.WriteString(fmt.Sprintf("Side to move   : %s\n", p.sideToMove.String()))
	b.WriteString(fmt.Sprintf("Game phase     : %d\n", p.gamePhase))
	b.WriteString(fmt.Sprintf("Material white : %d\n", p.material[White]))
	b.WriteString(fmt.Sprintf("Material black : %d\n", p.material[Black]))
	return b.String()
}

// StringFen returns the FEN representation of the current position.
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns a visual matrix of the board and pieces.
func (p *Position) StringBoard() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			b.WriteString("| ")
			b.WriteString(p.board[SquareOf(f, Rank8-r)].Char())
			b.WriteString(" ")
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return b.String()
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

func (p *Position) doNormalMove(fromSq, toSq Square, targetPc, fromPc Piece, myColor Color) {
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= zobrist.Castling(p.castlingRights)
			p.castlingRights.Remove(cr)
			p.zobristKey ^= zobrist.Castling(p.castlingRights)
		}
	}
	p.clearEnPassant()
	switch {
	case targetPc != PieceNone:
		p.removePiece(toSq)
		p.halfMoveClock = 0
	case fromPc.TypeOf() == Pawn:
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			p.zobristKey ^= zobrist.EnPassant(p.enPassantSquare)
			p.enPassantSquare = toSq.To(myColor.Flip().MoveDirection())
			p.zobristKey ^= zobrist.EnPassant(p.enPassantSquare)
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doCastlingMove(fromPc Piece, myColor Color, toSq, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, King), "Position DoMove: castling move but from piece not king")
	}
	switch toSq {
	case SqG1:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqH1, SqF1)
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
		p.castlingRights.Remove(CastlingWhite)
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
	case SqC1:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqA1, SqD1)
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
		p.castlingRights.Remove(CastlingWhite)
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
	case SqG8:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqH8, SqF8)
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
		p.castlingRights.Remove(CastlingBlack)
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
	case SqC8:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqA8, SqD8)
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
		p.castlingRights.Remove(CastlingBlack)
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
	default:
		panic("Position DoMove: invalid castling move")
	}
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) doEnPassantMove(toSq Square, myColor Color, fromPc Piece, fromSq Square) {
	capSq := toSq.To(myColor.Flip().MoveDirection())
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: en passant move but from piece not pawn")
		assert.Assert(p.enPassantSquare != SqNone, "Position DoMove: en passant move type without en passant square set")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m Move, fromPc Piece, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: promotion move but from piece not pawn")
		assert.Assert(myColor.PromotionRankBb().Has(toSq), "Position DoMove: promotion move but wrong rank")
	}
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= zobrist.Castling(p.castlingRights)
			p.castlingRights.Remove(cr)
			p.zobristKey ^= zobrist.Castling(p.castlingRights)
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "tried to put piece on an occupied square: %s", square.String())
	}

	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	p.zobristKey ^= zobrist.Piece(piece, square)

	p.gamePhase += pieceType.GamePhaseValue()
	if p.gamePhase > GamePhaseMax {
		p.gamePhase = GamePhaseMax
	}
	p.material[color] += pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] += pieceType.ValueOf()
	}
	p.psqMidValue[color] += PosMidValue(piece, square)
	p.psqEndValue[color] += PosEndValue(piece, square)
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] != PieceNone, "tried to remove piece from an empty square: %s", square.String())
	}

	p.board[square] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	p.zobristKey ^= zobrist.Piece(removed, square)

	p.gamePhase -= pieceType.GamePhaseValue()
	if p.gamePhase < 0 {
		p.gamePhase = 0
	}
	p.material[color] -= pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] -= pieceType.ValueOf()
	}
	p.psqMidValue[color] -= PosMidValue(removed, square)
	p.psqEndValue[color] -= PosEndValue(removed, square)
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassant(p.enPassantSquare)
		p.enPassantSquare = SqNone
		p.zobristKey ^= zobrist.EnPassant(p.enPassantSquare)
	}
}

func (p *Position) fen() string {
	var b strings.Builder
	for r := Rank1; r <= Rank8; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r < Rank8 {
			b.WriteString("/")
		}
	}
	b.WriteString(" ")
	b.WriteString(p.sideToMove.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.enPassantSquare.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))
	return b.String()
}

var (
	regexFenPos           = regexp.MustCompile("[0-8pPnNbBrRqQkK/]+")
	regexWorB             = regexp.MustCompile("^[wb]$")
	regexCastlingRights   = regexp.MustCompile("^(K?Q?k?q?|-)$")
	regexEnPassant        = regexp.MustCompile("^([a-h][1-8]|-)$")
)

// setupBoard parses a FEN and initializes all position state; the only
// supported way to produce a valid Position.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")
	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	currentSquare := SqA8
	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil {
			currentSquare = Square(int(currentSquare) + number*int(East))
		} else if string(c) == "/" {
			currentSquare = Square(int(currentSquare) + 2*int(South))
		} else {
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 {
		return errors.New("fen did not terminate at a2 after reading board")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen side to move contains invalid characters")
		}
		if fenParts[1] == "b" {
			p.sideToMove = Black
			p.zobristKey ^= zobrist.NextPlayer()
			p.nextHalfMoveNumber++
		}
	}

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contain invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch string(c) {
				case "K":
					p.castlingRights.Add(CastlingWhiteOO)
				case "Q":
					p.castlingRights.Add(CastlingWhiteOOO)
				case "k":
					p.castlingRights.Add(CastlingBlackOO)
				case "q":
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
	}

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
		}
	}
	p.zobristKey ^= zobrist.EnPassant(p.enPassantSquare)

	if len(fenParts) >= 5 {
		n, e := strconv.Atoi(fenParts[4])
		if e != nil {
			return e
		}
		p.halfMoveClock = n
	}

	if len(fenParts) >= 6 {
		moveNumber, e := strconv.Atoi(fenParts[5])
		if e != nil {
			return e
		}
		if moveNumber == 0 {
			moveNumber = 1
		}
		p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.sideToMove))
	}

	return nil
}

// //////////////////////////////////////////////////////
// // Getters
// //////////////////////////////////////////////////////

// ZobristKey returns the current zobrist key for this position.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.sideToMove }

// GetPiece returns the piece on sq, or PieceNone.
func (p *Position) GetPiece(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedAll returns the bitboard of all occupied squares.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// OccupiedBb returns the bitboard of all squares occupied by color c.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occupiedBb[c] }

// GamePhase returns the current game phase value (0..GamePhaseMax).
func (p *Position) GamePhase() int { return p.gamePhase }

// GetEnPassantSquare returns the current en passant square, or SqNone.
func (p *Position) GetEnPassantSquare() Square { return p.enPassantSquare }

// CastlingRights returns the current combined castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// HalfMoveClock returns the half move clock (for the 50-move rule).
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Material returns the material value (in centipawns) for color c.
func (p *Position) Material(c Color) Value { return p.material[c] }

// MaterialNonPawn returns the non-pawn material value for color c.
func (p *Position) MaterialNonPawn(c Color) Value { return p.materialNonPawn[c] }

// GamePhaseFactor returns a value between 0 and 1 reflecting the ratio
// between the actual game phase and the maximum game phase.
func (p *Position) GamePhaseFactor() float64 { return float64(p.gamePhase) / GamePhaseMax }

// PsqMidValue returns the piece-square positional value for color c as
// used in earlier game phases. Best combined with GamePhaseFactor.
func (p *Position) PsqMidValue(c Color) Value { return p.psqMidValue[c] }

// PsqEndValue returns the piece-square positional value for color c as
// used in later game phases. Best combined with GamePhaseFactor.
func (p *Position) PsqEndValue(c Color) Value { return p.psqEndValue[c] }

// HasInsufficientMaterial returns true if neither side has enough material
// left on the board to deliver checkmate.
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}
	if p.piecesBb[White][Pawn].PopCount() == 0 && p.piecesBb[Black][Pawn].PopCount() == 0 {
		if p.materialNonPawn[White] < 400 && p.materialNonPawn[Black] < 400 {
			return true
		}
		if (p.materialNonPawn[White] == 2*Knight.ValueOf() && p.materialNonPawn[Black] <= Bishop.ValueOf()) ||
			(p.materialNonPawn[Black] == 2*Knight.ValueOf() && p.materialNonPawn[White] <= Bishop.ValueOf()) {
			return true
		}
		if (p.materialNonPawn[White] == 2*Bishop.ValueOf() && p.materialNonPawn[Black] == Bishop.ValueOf()) ||
			(p.materialNonPawn[Black] == 2*Bishop.ValueOf() && p.materialNonPawn[White] == Bishop.ValueOf()) {
			return true
		}
		if p.materialNonPawn[White] == 2*Bishop.ValueOf() || p.materialNonPawn[Black] == 2*Bishop.ValueOf() {
			return false
		}
		if (p.materialNonPawn[White] < 2*Bishop.ValueOf() && p.materialNonPawn[Black] <= Bishop.ValueOf()) ||
			(p.materialNonPawn[White] <= Bishop.ValueOf() && p.materialNonPawn[Black] < 2*Bishop.ValueOf()) {
			return true
		}
	}
	return false
}

// LastMove returns the most recently played move, or MoveNone if none.
func (p *Position) LastMove() Move {
	if len(p.undoStack) == 0 {
		return MoveNone
	}
	return p.undoStack[len(p.undoStack)-1].move
}
