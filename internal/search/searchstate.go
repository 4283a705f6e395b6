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

package search

import (
	"fmt"

	"github.com/example/corechess/internal/position"
	"github.com/example/corechess/internal/transpositiontable"
)

// InfoSink receives the informational lines a search emits at the root.
// The default sink writes to stdout; tests inject a capturing sink so
// assertions don't depend on process output.
type InfoSink interface {
	Send(line string)
}

// stdoutSink is the default InfoSink, used whenever a Searcher is created
// without an explicit one.
type stdoutSink struct{}

func (stdoutSink) Send(line string) { fmt.Println(line) }

// capturingSink is a trivial InfoSink that only appends lines, useful for
// tests and for an EngineFrontend that wants to print everything once the
// search has finished rather than interleaved with its own output.
type capturingSink struct {
	lines []string
}

// NewCapturingSink creates an InfoSink that stores every line it receives.
func NewCapturingSink() *capturingSink {
	return &capturingSink{}
}

func (s *capturingSink) Send(line string) { s.lines = append(s.lines, line) }

// Lines returns every line collected so far, in emission order.
func (s *capturingSink) Lines() []string { return s.lines }

// SearchState bundles a position with the Searcher operating on it - the
// minimal inbound API an EngineFrontend drives: makeSearchState,
// setPosition, search.
type SearchState struct {
	position *position.Position
	searcher *Searcher
}

// NewSearchState creates a SearchState for p, with a fresh transposition
// table of the default capacity and an empty killer table.
func NewSearchState(p *position.Position) *SearchState {
	tt := transpositiontable.NewTtTable(transpositiontable.DefaultCapacity)
	return &SearchState{
		position: p,
		searcher: NewSearcher(tt),
	}
}

// SetPosition replaces the position the next Search call will search from.
// The transposition table and killer table are kept - reusing them across
// positions from the same game is safe, since entries are validated against
// the stored position snapshot on lookup.
func (st *SearchState) SetPosition(p *position.Position) {
	st.position = p
}

// Position returns the position this state currently holds.
func (st *SearchState) Position() *position.Position { return st.position }

// SetInfoSink overrides where the underlying Searcher sends info lines.
func (st *SearchState) SetInfoSink(sink InfoSink) {
	st.searcher.SetInfoSink(sink)
}

// Search runs iterative deepening to maxDepth on the current position and
// returns the resulting SearchResult.
func (st *SearchState) Search(maxDepth int) SearchResult {
	return st.searcher.Search(st.position, maxDepth)
}
