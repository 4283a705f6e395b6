/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// MagicSeed seeds the PRNG that searches for rook/bishop magic numbers at
// startup. Zero (the default) reproduces the same tables on every run; set
// from config.Settings.Search.MagicSeed before calling Init() to use a
// different deterministic table.
var MagicSeed uint64 = 0

// Magic holds the per-square lookup parameters for one piece type (rook or
// bishop). All 64 squares of a piece type share one flat attacks array, Dat;
// SpanBase is this square's offset into it.
// Taken from Stockfish, extended with the shared-array SpanBase layout.
// License see https://stockfishchess.org/about/
type Magic struct {
	Mask     Bitboard
	Magic    Bitboard
	Dat      []Bitboard
	Shift    uint
	SpanBase int
}

// initMagics() computes all rook and bishop attacks at startup. Magic
// bitboards are used to look up attacks of sliding pieces. As a reference see
// https://www.chessprogramming.org/Magic_Bitboards. In particular, here we use the so
// called "fancy" approach.
//
// Construction is two phases: phase 1 computes mask/shift/spanBase for every
// square and allocates the single shared attacks array sized to the exclusive
// prefix sum of 2^(64-shift(sq)); phase 2 runs the Carry-Rippler subset
// enumeration and magic search per square, writing into that shared array at
// spanBase+localIndex.
// Taken from Stockfish, adapted to the SpanBase layout above.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	var spans [SqLength]int
	total := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.SpanBase = total
		spans[sq] = 1 << (64 - m.Shift)
		total += spans[sq]
	}

	*table = make([]Bitboard, total)

	occupancy := [4096]Bitboard{}
	reference := [4096]Bitboard{}
	epoch := [4096]int{}
	var b Bitboard
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		m := &(*magics)[sq]
		m.Dat = *table

		// Use Carry-Rippler trick to enumerate all subsets of masks[s] and
		// store the corresponding sliding attack bitboard in reference[].
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 { // do - while(b)
				break
			}
		}

		// PRNG seeded from the single configurable MagicSeed, salted per
		// square so MagicSeed==0 (the spec default) doesn't leave the
		// xorshift64star generator stuck at its degenerate all-zero state.
		rng := newPrnG(MagicSeed + uint64(sq) + 1)

		// Find a magic for square 's' picking up an (almost) random number
		// until we find the one that passes the verification test.
		found := false
		for attempt := 0; attempt < 1_000_000 && !found; attempt++ {
			var candidate Bitboard
			for {
				candidate = Bitboard(rng.sparseRand())
				if ((candidate * m.Mask) >> 56).PopCount() >= 6 {
					break
				}
			}

			// A good magic must map every possible occupancy to an index that
			// looks up the correct sliding attack in the attacks[s] database.
			// Note that we build up the database for square 's' as a side
			// effect of verifying the magic. Keep track of the attempt count
			// and save it in epoch[], little speed-up trick to avoid resetting
			// m.Dat[] after every failed attempt.
			cnt++
			m.Magic = candidate
			i := 0
			for ; i < size; i++ {
				idx := m.localIndex(occupancy[i])
				slot := m.SpanBase + idx
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Dat[slot] = reference[i]
				} else if m.Dat[slot] != reference[i] {
					break
				}
			}
			found = i == size
		}
		if !found {
			panic("magic bitboard construction failed to find a valid magic number for square " + sq.String())
		}
	}
}

// slidingAttack calculate sliding attacks along the given directions for the given square
// and the given board occupation. Uses loop in loop and is not very efficient.
// Doesn't matter for pre-computing but should not be used during move gen or search
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
			if !s.To(directions[i]).IsValid() || SquareDistance(s, s.To(directions[i])) != 1 {
				break
			}
		}
	}
	return attack
}

// localIndex calculates the per-square index within a magic's span, before
// adding SpanBase. https://www.chessprogramming.org/Magic_Bitboards
//  occ      &= mBishopTbl[sq].mask;
//  occ      *= mBishopTbl[sq].magic;
//  occ     >>= mBishopTbl[sq].shift;
func (m *Magic) localIndex(occupied Bitboard) int {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return int(occ)
}

// index calculates the index into the shared Dat array: spanBase + localIndex.
func (m *Magic) index(occupied Bitboard) int {
	return m.SpanBase + m.localIndex(occupied)
}

// PrnG random generator for magic bitboards
// from Stockfish
// xorshift64star Pseudo-Random Number Generator
// This class is based on original code written and dedicated
// to the public domain by Sebastiano Vigna (2014).
// It has the following characteristics:
//  -  Outputs 64-bit numbers
//  -  Passes Dieharder and SmallCrush test batteries
//  -  Does not require warm-up, no zeroland to escape
//  -  Internal state is a single 64-bit integer
//  -  Period is 2^64 - 1
//  -  Speed: 1.60 ns/call (Core i7 @3.40GHz)
// For further analysis see
//   <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>
type PrnG struct {
	s uint64
}

// newPrnG creates a new instance of the pseudo random generator
func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Special generator used to fast init magic numbers.
// Output values only have 1/8th of their bits set on average.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
