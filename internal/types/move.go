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

package types

import (
	"fmt"

	"github.com/example/corechess/internal/assert"
)

// Move is a move encoded into 32 bits:
//
//	Bits 0-5:   to square    (6 bits)
//	Bits 6-11:  from square  (6 bits)
//	Bits 12-13: promotion piece type (2 bits: N=0, B=1, R=2, Q=3 offset from Knight)
//	Bits 14-15: move type (2 bits, see MoveType)
//	Bits 16-31: sort value (16 bits, signed)
//
// The low 16 bits (MoveOf) are what participates in move equality; the
// value bits are search-only sort keys and are stripped before comparing
// moves for board purposes.
type Move uint32

// MoveNone is the zero value, never a legal move.
const MoveNone Move = 0

const (
	squareMask   = 0x3F
	toMask       = squareMask
	fromShift    = 6
	fromMask     = squareMask << fromShift
	promTypeShift = 12
	promTypeMask  = 3 << promTypeShift
	typeShift     = 14
	moveTypeMask  = 3 << typeShift
	moveMask      = 0xFFFF
	valueShift    = 16
	valueMask     = 0xFFFF << valueShift
)

// CreateMove packs a from/to/type/promotion move with no sort value.
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(uint32(to)&toMask |
		(uint32(from)&squareMask)<<fromShift |
		(uint32(promType-Knight)&3)<<promTypeShift |
		(uint32(t)&3)<<typeShift)
}

// CreateMoveValue packs a move together with a search sort value.
func CreateMoveValue(from, to Square, t MoveType, promType PieceType, value Value) Move {
	m := CreateMove(from, to, t, promType)
	return m.SetValue(value)
}

// MoveType returns the move's type field.
func (m Move) MoveType() MoveType {
	return MoveType((uint32(m) & moveTypeMask) >> typeShift)
}

// PromotionType returns the piece type a pawn promotes to; meaningless
// unless MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((uint32(m)&promTypeMask)>>promTypeShift) + Knight
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(uint32(m) & toMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((uint32(m) & fromMask) >> fromShift)
}

// MoveOf strips the sort-value bits, returning just the board-relevant
// part of the move.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the move's sort value.
func (m Move) ValueOf() Value {
	return Value(int16((uint32(m) & valueMask) >> valueShift))
}

// SetValue returns a copy of m with its sort value replaced by v.
func (m Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v >= -ValueInfinite && v <= ValueInfinite, "move value out of range")
	}
	return (m & moveMask) | Move((uint32(uint16(v)))<<valueShift)
}

// IsValid reports whether m has distinct, valid from/to squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String renders the move in a human readable long-algebraic form.
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += m.PromotionType().Char()
	}
	return s
}

// StringUci renders the move as UCI expects it: lowercase, promotion
// letter lowercased.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		switch m.PromotionType() {
		case Knight:
			s += "n"
		case Bishop:
			s += "b"
		case Rook:
			s += "r"
		case Queen:
			s += "q"
		}
	}
	return s
}

// StringBits renders the raw bit pattern for debugging.
func (m Move) StringBits() string {
	return fmt.Sprintf("%032b", uint32(m))
}
