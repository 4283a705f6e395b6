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

// Color is one of the two sides.
type Color uint8

// Colors
const (
	White Color = iota
	Black
	ColorLength int = 2
)

var moveDirectionFactor = [2]int{1, -1}
var pawnDir = [2]Direction{North, South}
var promRankBb = [2]Bitboard{Rank8_Bb, Rank1_Bb}
var pawnDoubleRankBb = [2]Bitboard{Rank3_Bb, Rank6_Bb}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// Direction returns +1 for White, -1 for Black; useful for scoring from
// White's perspective.
func (c Color) Direction() int {
	return moveDirectionFactor[c]
}

// MoveDirection returns the direction pawns of this color advance in.
func (c Color) MoveDirection() Direction {
	return pawnDir[c]
}

// PromotionRankBb returns the rank a pawn of this color promotes on.
func (c Color) PromotionRankBb() Bitboard {
	return promRankBb[c]
}

// PawnDoubleRank returns the rank a pawn of this color lands on after a
// two-square advance from its start rank.
func (c Color) PawnDoubleRank() Bitboard {
	return pawnDoubleRankBb[c]
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}
