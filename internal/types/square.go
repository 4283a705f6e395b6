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

// Square is a board square, 0 (a1) to 63 (h8), little-endian rank-file
// mapped: file = sq % 8, rank = sq / 8.
type Square uint8

// Squares
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// sqTo holds the precomputed result of sq.toPreCompute(d) for every square
// and every entry of Directions, indexed in Directions order.
var sqTo [SqLength][8]Square

// initSquareTo fills sqTo. Must run before any call to Square.To. Called
// from the package's central Init, not as a file-local init(), since this
// package has other precompute steps that must run in a fixed order.
func initSquareTo() {
	for sq := SqA1; sq <= SqH8; sq++ {
		for i, dir := range Directions {
			sqTo[sq][i] = sq.toPreCompute(dir)
		}
	}
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq <= SqH8
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// MakeSquare parses a two character algebraic square string ("e4") and
// returns SqNone if it is not well formed.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0] - 'a'
	r := s[1] - '1'
	if f > 7 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// SquareOf combines a file and rank into a square.
func SquareOf(f File, r Rank) Square {
	return Square(uint8(r)*8 + uint8(f))
}

// To returns the square reached by moving one step in direction d from sq,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	for i, dir := range Directions {
		if dir == d {
			return sqTo[sq][i]
		}
	}
	return SqNone
}

// toPreCompute computes sq.To(d) from scratch by checking file/rank wrap.
func (sq Square) toPreCompute(d Direction) Square {
	t := Square(int8(sq) + int8(d))
	if !t.IsValid() {
		return SqNone
	}
	if FileDistance(sq.FileOf(), t.FileOf()) > 1 || RankDistance(sq.RankOf(), t.RankOf()) > 1 {
		return SqNone
	}
	return t
}

// String returns the algebraic representation of sq, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
