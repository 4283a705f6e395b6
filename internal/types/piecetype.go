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

// PieceType identifies a kind of chess piece, independent of color.
type PieceType uint8

// Piece types
const (
	PtNone   PieceType = 0b0000
	King     PieceType = 0b0001
	Pawn     PieceType = 0b0010
	Knight   PieceType = 0b0011
	Bishop   PieceType = 0b0100
	Rook     PieceType = 0b0101
	Queen    PieceType = 0b0110
	PtLength PieceType = 0b0111
)

var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}
var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}
var pieceTypeToString = [PtLength]string{"none", "king", "pawn", "knight", "bishop", "rook", "queen"}
var pieceTypeToChar = "-KPNBRQ"

// IsValid reports whether pt is one of the six piece types (or PtNone).
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// GamePhaseValue returns pt's contribution to the game-phase counter used
// to interpolate between midgame and endgame piece-square tables.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// ValueOf returns the static material value of pt.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// String returns the full name of pt, e.g. "knight".
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// Char returns the single uppercase FEN letter for pt, "-" for PtNone.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}
