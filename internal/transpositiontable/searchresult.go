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
	. "github.com/example/corechess/internal/types"
)

// SearchResult bundles a search score with the principal variation that
// produced it. It lives here, rather than in package search, because a
// TtEntry embeds one directly and search already depends on this package
// for its cache - putting it the other way round would create an import
// cycle.
type SearchResult struct {
	Score     Value
	Variation []Move
}

// Negate flips the score while keeping the same variation. Used when a
// result computed from the opponent's point of view is folded back into
// the caller's.
func (r SearchResult) Negate() SearchResult {
	return SearchResult{Score: -r.Score, Variation: r.Variation}
}

// Prepend returns a copy of r with m inserted at the front of its
// variation, e.g. when a move's subtree result is propagated up to its
// parent node.
func (r SearchResult) Prepend(m Move) SearchResult {
	v := make([]Move, 0, len(r.Variation)+1)
	v = append(v, m)
	v = append(v, r.Variation...)
	return SearchResult{Score: r.Score, Variation: v}
}

// First returns the first move of the variation, or MoveNone if the
// variation is empty.
func (r SearchResult) First() Move {
	if len(r.Variation) == 0 {
		return MoveNone
	}
	return r.Variation[0]
}
