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

import "strings"

// Piece is a colored chess piece, or PieceNone.
type Piece int8

// Pieces. Values are chosen so ColorOf/TypeOf are cheap bit operations:
// White pieces occupy 1..6, Black pieces occupy 9..14.
const (
	PieceNone Piece = 0

	WhiteKing Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen

	BlackKing   = WhiteKing + 8
	BlackPawn   = WhitePawn + 8
	BlackKnight = WhiteKnight + 8
	BlackBishop = WhiteBishop + 8
	BlackRook   = WhiteRook + 8
	BlackQueen  = WhiteQueen + 8

	PieceLength = 16
)

var pieceToString = [PieceLength]string{
	"none", "white king", "white pawn", "white knight", "white bishop", "white rook", "white queen", "-",
	"-", "black king", "black pawn", "black knight", "black bishop", "black rook", "black queen", "-",
}
var pieceToChar = " KPNBRQ- kpnbrq-"
var pieceToUnicode = [PieceLength]string{
	" ", "♔", "♙", "♘", "♗", "♖", "♕", "-",
	"-", "♚", "♟", "♞", "♝", "♜", "♛", "-",
}

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// ValueOf returns the static material value of p.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// PieceFromChar parses a single FEN piece letter, returning PieceNone if s
// is not a recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToChar, s[0])
	if idx < 0 {
		return PieceNone
	}
	return Piece(idx)
}

// String returns a human-readable description of p, e.g. "white knight".
func (p Piece) String() string {
	return pieceToString[p]
}

// Char returns the FEN letter for p (uppercase white, lowercase black).
func (p Piece) Char() string {
	return string(pieceToChar[p])
}

// UniChar returns the unicode chess glyph for p.
func (p Piece) UniChar() string {
	return pieceToUnicode[p]
}
