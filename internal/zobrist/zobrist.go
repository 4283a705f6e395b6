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

// Package zobrist holds the process-wide random word tables used to fold a
// Position into a single 64 bit Key. The tables are generated once from a
// fixed seed so keys are reproducible from run to run and across machines.
package zobrist

import (
	. "github.com/example/corechess/internal/types"
)

// Key is the hash type used throughout the engine to identify a position,
// most prominently as the lookup key of the transposition table.
type Key uint64

// base holds one random word per zobrist "fact" that can be true about a
// position: a piece standing on a square, the side to move, a castling
// rights combination, and the current en passant square (SqNone included
// as its own column so "no en passant" also folds in a word).
type table struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingRightsLength]Key
	enPassant      [SqLength + 1]Key
	nextPlayer     Key
}

var base table

const seed uint64 = 1070372

func init() {
	r := newRandom(seed)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			base.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := CastlingNone; cr <= CastlingAny; cr++ {
		base.castlingRights[cr] = Key(r.rand64())
	}
	for sq := SqA1; sq <= SqNone; sq++ {
		base.enPassant[sq] = Key(r.rand64())
	}
	base.nextPlayer = Key(r.rand64())
}

// Piece returns the word folded in when pc stands on sq.
func Piece(pc Piece, sq Square) Key {
	return base.pieces[pc][sq]
}

// Castling returns the word folded in for the given combined
// castling rights value.
func Castling(cr CastlingRights) Key {
	return base.castlingRights[cr]
}

// EnPassant returns the word folded in for the given en passant square.
// sq may be SqNone, which has its own dedicated column.
func EnPassant(sq Square) Key {
	return base.enPassant[sq]
}

// NextPlayer returns the word folded in whenever it is Black to move.
// Folding it in once per ply is enough to distinguish the two side-to-move
// cases since it is applied (and un-applied) by exactly one XOR per move.
func NextPlayer() Key {
	return base.nextPlayer
}

// Compute folds a full zobrist key from scratch given the raw position
// facts. Position setup from a FEN and the incremental updates during
// DoMove/UndoMove do not call it: they XOR in the same words themselves,
// so a key they maintain equals Compute of the same facts.
func Compute(board [SqLength]Piece, stm Color, castling CastlingRights, ep Square) Key {
	var k Key
	for sq := SqA1; sq <= SqH8; sq++ {
		if pc := board[sq]; pc != PieceNone {
			k ^= Piece(pc, sq)
		}
	}
	k ^= Castling(castling)
	k ^= EnPassant(ep)
	if stm == Black {
		k ^= NextPlayer()
	}
	return k
}

// random is the xorshift64star PRNG used to fill the zobrist tables.
// Taken from the same family used for magic bitboard search: fast,
// seedable, and good enough a distribution for hashing purposes.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("zobrist: seed must not be 0")
	}
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * uint64(2685821657736338717)
}
