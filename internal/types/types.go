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

// Package types holds the primitive chess data types shared by every other
// package: squares, pieces, bitboards, moves and values. Nothing in this
// package depends on position, movegen or search.
package types

// Board-wide constants
const (
	SqLength     = 64
	GamePhaseMax = 24
	MaxPly       = 128
	MaxMoves     = 512

	KB = 1024
	MB = 1024 * KB
	GB = 1024 * MB
)

// initialized is set once Init() has run. PosValue/PosMidValue/PosEndValue
// assert against it to catch use before initialization.
var initialized = false

// Init precomputes every lookup table used by the package: square/direction
// tables, bitboard masks, the magic-bitboard attack database and the
// piece-square tables. Must be called once before any other package in this
// module is used; cmd/corechess calls it from main().
func Init() {
	initSquareTo()
	initBb()
	initPosValues()
	initialized = true
}
