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

package transpositiontable

import (
	"github.com/example/corechess/internal/position"
	. "github.com/example/corechess/internal/types"
)

// TtEntry is one transposition table record: the position it was computed
// for (kept in full so a hash collision against a different position can
// be detected), the depth it was searched to, the resulting score and PV,
// and whether that score is exact or a bound.
type TtEntry struct {
	positionSnapshot *position.Position
	depth            int
	result           SearchResult
	kind             ValueType
}

// Depth returns the search depth this entry was stored at.
func (e *TtEntry) Depth() int { return e.depth }

// Result returns the stored search result.
func (e *TtEntry) Result() SearchResult { return e.result }

// Kind returns whether the stored score is Exact or a bound.
func (e *TtEntry) Kind() ValueType { return e.kind }

// Matches reports whether e was computed for a position equal to p -
// i.e. whether the zobrist-key match that led here was not a collision.
func (e *TtEntry) Matches(p *position.Position) bool {
	return e.positionSnapshot.Equals(p)
}
