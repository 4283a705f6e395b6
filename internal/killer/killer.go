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

// Package killer provides a per-ply table of quiet moves that recently
// caused a beta cutoff, used by the search to try those moves earlier
// at the same ply in sibling subtrees.
package killer

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/example/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

// capacity is the number of killer moves kept per ply. Two is the usual
// choice in the literature: enough to catch a cutoff move missed by the
// primary killer without meaningfully slowing move ordering.
const capacity = 2

// Table holds, for every ply from the root up to MaxPly, a small ordered
// list of killer moves, most recent first.
type Table struct {
	kill [MaxPly][capacity]Move
	len  [MaxPly]int
}

// NewTable creates an empty killer table.
func NewTable() *Table {
	return &Table{}
}

// Ordered returns moves with any move present in this ply's killer list
// moved to the front, in killer order, preserving the relative order of
// the remaining (non-killer) moves.
func (t *Table) Ordered(ply int, moves []Move) []Move {
	n := t.len[ply]
	if n == 0 {
		return moves
	}
	ordered := make([]Move, 0, len(moves))
	isKiller := make(map[Move]bool, n)
	for i := 0; i < n; i++ {
		k := t.kill[ply][i]
		isKiller[k] = true
		for _, m := range moves {
			if m == k {
				ordered = append(ordered, m)
				break
			}
		}
	}
	for _, m := range moves {
		if !isKiller[m] {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

// Insert records move as having caused a beta cutoff at ply. A move
// already at the front is left alone; otherwise it is pushed to the
// front (dropping a duplicate entry further back, if any) and the list
// is truncated at capacity.
func (t *Table) Insert(ply int, move Move) {
	if ply < 0 || ply >= MaxPly || move == MoveNone {
		return
	}
	if t.len[ply] > 0 && t.kill[ply][0] == move {
		return
	}
	dedup := [capacity]Move{move}
	n := 1
	for i := 0; i < t.len[ply] && n < capacity; i++ {
		if t.kill[ply][i] != move {
			dedup[n] = t.kill[ply][i]
			n++
		}
	}
	t.kill[ply] = dedup
	t.len[ply] = n
}

// InsertPV seeds the killer table from a completed iterative-deepening
// principal variation, inserting its i-th move at ply i. Called once per
// completed iteration.
func (t *Table) InsertPV(pv []Move) {
	for ply, m := range pv {
		if ply >= MaxPly {
			break
		}
		t.Insert(ply, m)
	}
}

func (t *Table) String() string {
	sb := strings.Builder{}
	for ply := 0; ply < MaxPly; ply++ {
		if t.len[ply] == 0 {
			continue
		}
		sb.WriteString(out.Sprintf("ply %d:", ply))
		for i := 0; i < t.len[ply]; i++ {
			sb.WriteString(out.Sprintf(" %s", t.kill[ply][i].StringUci()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
