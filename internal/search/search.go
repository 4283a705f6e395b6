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

// Package search implements negascout (principal variation search) over a
// Position, with iterative deepening, quiescence search at the horizon,
// a transposition table and a killer-move table for move ordering.
package search

import (
	"context"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/example/corechess/internal/corelog"
	"github.com/example/corechess/internal/evaluator"
	"github.com/example/corechess/internal/killer"
	"github.com/example/corechess/internal/movegen"
	"github.com/example/corechess/internal/moveslice"
	"github.com/example/corechess/internal/position"
	"github.com/example/corechess/internal/transpositiontable"
	. "github.com/example/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

// SearchResult is the score and principal variation a search produces.
// Defined in package transpositiontable (a TtEntry embeds one); re-exported
// here so callers of package search never need to import that package
// directly for the type.
type SearchResult = transpositiontable.SearchResult

// Searcher runs negascout searches against a transposition table and
// killer-move table it owns. Create one with NewSearcher and reuse it
// across searches from the same game so the TT and killers keep paying off.
type Searcher struct {
	log *logging.Logger

	mg   *movegen.Movegen
	eval *evaluator.Evaluator
	tt   *transpositiontable.TtTable
	kill *killer.Table
	sink InfoSink

	sem *semaphore.Weighted

	nodes    uint64
	ttHits   uint64
	ttMisses uint64
}

// NewSearcher creates a Searcher backed by tt. A nil tt is not valid;
// callers construct one with transpositiontable.NewTtTable.
func NewSearcher(tt *transpositiontable.TtTable) *Searcher {
	return &Searcher{
		log:  myLogging.GetLog(),
		mg:   movegen.NewMoveGen(),
		eval: evaluator.NewEvaluator(),
		tt:   tt,
		kill: killer.NewTable(),
		sink: stdoutSink{},
		sem:  semaphore.NewWeighted(1),
	}
}

// SetInfoSink overrides where info lines are sent; nil restores the
// default stdout sink.
func (s *Searcher) SetInfoSink(sink InfoSink) {
	if sink == nil {
		sink = stdoutSink{}
	}
	s.sink = sink
}

// NodesVisited returns the node count from the most recent Search call.
func (s *Searcher) NodesVisited() uint64 { return s.nodes }

// Search performs iterative deepening from depth 1 to maxDepth on p,
// seeding the killer table from each iteration's principal variation and
// reporting an "info depth <d>" line at the start of each iteration. A
// semaphore of weight 1 guards against re-entrant calls - a Searcher runs
// one search at a time.
func (s *Searcher) Search(p *position.Position, maxDepth int) SearchResult {
	_ = s.sem.Acquire(context.Background(), 1)
	defer s.sem.Release(1)

	s.nodes, s.ttHits, s.ttMisses = 0, 0, 0

	colorSign := Value(p.NextPlayer().Direction())
	var best SearchResult
	for d := 1; d <= maxDepth; d++ {
		s.sink.Send(out.Sprintf("info depth %d", d))
		best = s.negascout(p, d, d, -ValueInfinite, ValueInfinite, colorSign)
		s.kill.InsertPV(best.Variation)
	}
	return best
}

// negascout searches p to depthRemaining plies (out of maxDepth total),
// returning the score from the mover's point of view (colorSign folds in
// White/Black so the recursion can always maximize).
func (s *Searcher) negascout(p *position.Position, maxDepth, depthRemaining int, alpha, beta, colorSign Value) SearchResult {
	return s.withTransPosCache(p, depthRemaining, alpha, beta, func(alpha, beta Value, hint Move) SearchResult {
		ply := maxDepth - depthRemaining

		if !s.mg.AnyMove(p) {
			s.nodes++
			return SearchResult{Score: colorSign * s.eval.Evaluate(p, ply)}
		}
		if depthRemaining == 0 {
			return s.quiescence(p, ply, alpha, beta, colorSign)
		}

		moves := moveSliceToSlice(s.mg.Moves(p))
		moves = withHintFirst(moves, hint)
		moves = s.kill.Ordered(ply, moves)

		reportInfo := depthRemaining == maxDepth
		return s.iterateMoves(p, maxDepth, depthRemaining, alpha, beta, colorSign, moves, reportInfo)
	})
}

// iterateMoves runs the PVS move loop: the first move gets a full window,
// every subsequent move a null-window scout with a full-window re-search
// only if the scout landed strictly inside (runningScore, beta).
func (s *Searcher) iterateMoves(p *position.Position, maxDepth, depthRemaining int, alpha, beta, colorSign Value, moves []Move, reportInfo bool) SearchResult {
	ply := maxDepth - depthRemaining
	runningScore := alpha
	best := SearchResult{Score: alpha}
	kind := ALPHA

	for i, m := range moves {
		n := s.ac(p, maxDepth, depthRemaining, i == 0, m, runningScore, beta, colorSign)

		if n.Score >= beta {
			s.kill.Insert(ply, m)
			result := SearchResult{Score: beta, Variation: []Move{m}}
			s.tt.Insert(p, depthRemaining, BETA, result)
			if reportInfo {
				s.reportRootMove(n.Variation, m)
			}
			return result
		}
		if n.Score > runningScore {
			runningScore = n.Score
			best = n
			kind = EXACT
		}
		if reportInfo {
			s.reportRootMove(best.Variation, m)
		}
	}

	s.tt.Insert(p, depthRemaining, kind, best)
	return best
}

// ac computes one move's contribution to iterateMoves' loop: the PVS
// scheduling function from the spec (named ac there too). a plays the
// role of the running best score seen so far in the enclosing node, not
// the node's original alpha.
func (s *Searcher) ac(p *position.Position, maxDepth, depthRemaining int, isFirst bool, m Move, a, beta, colorSign Value) SearchResult {
	if isFirst {
		n := s.withMove(p, m, func() SearchResult {
			return s.negascout(p, maxDepth, depthRemaining-1, -beta, -a, -colorSign)
		}).Negate()
		return n.Prepend(m)
	}

	n := s.withMove(p, m, func() SearchResult {
		return s.negascout(p, maxDepth, depthRemaining-1, -a-1, -a, -colorSign)
	}).Negate()

	if n.Score > a && n.Score < beta {
		n = s.withMove(p, m, func() SearchResult {
			return s.negascout(p, maxDepth, depthRemaining-1, -beta, -a, -colorSign)
		}).Negate()
	}
	return n.Prepend(m)
}

// quiescence extends the search along capturing lines only,
// until no side wants to continue trading (standPat holds up against
// beta) or there are no forcing moves left.
func (s *Searcher) quiescence(p *position.Position, ply int, alpha, beta, colorSign Value) SearchResult {
	return s.withTransPosCache(p, 0, alpha, beta, func(alpha, beta Value, hint Move) SearchResult {
		s.nodes++
		standPat := colorSign * s.eval.Evaluate(p, ply)
		if standPat >= beta {
			result := SearchResult{Score: beta}
			s.tt.Insert(p, 0, BETA, result)
			return result
		}

		a := alpha
		if standPat > a {
			a = standPat
		}

		moves := moveSliceToSlice(s.mg.ForcingMoves(p))
		moves = withHintFirst(moves, hint)

		best := SearchResult{Score: a}
		for _, m := range moves {
			n := s.withMove(p, m, func() SearchResult {
				return s.quiescence(p, ply+1, -beta, -a, -colorSign)
			}).Negate().Prepend(m)

			if n.Score >= beta {
				return SearchResult{Score: beta, Variation: n.Variation}
			}
			if n.Score > a {
				a = n.Score
				best = n
			}
		}
		return best
	})
}

// withTransPosCache implements the TT-consult step shared by negascout and
// quiescence: probe the cache, fold a usable bound into alpha/beta, short
// circuit on a resulting empty window, and otherwise hand off to body with
// the (possibly narrowed) window and a move-ordering hint.
func (s *Searcher) withTransPosCache(p *position.Position, depth int, alpha, beta Value, body func(alpha, beta Value, hint Move) SearchResult) SearchResult {
	hint := MoveNone
	lr := s.tt.Lookup(p, depth)
	switch lr.Outcome {
	case transpositiontable.Hit:
		s.ttHits++
		switch lr.Entry.Kind() {
		case EXACT:
			return lr.Entry.Result()
		case BETA: // lower bound
			if lr.Entry.Result().Score > alpha {
				alpha = lr.Entry.Result().Score
			}
		case ALPHA: // upper bound
			if lr.Entry.Result().Score < beta {
				beta = lr.Entry.Result().Score
			}
		}
		if alpha >= beta {
			return SearchResult{Score: alpha}
		}
		hint = lr.Entry.Result().First()
	case transpositiontable.Shallow:
		s.ttHits++
		hint = lr.MoveHint
	default:
		s.ttMisses++
	}
	return body(alpha, beta, hint)
}

// withMove applies m to p, runs action, and restores p exactly via
// UndoMove - the "withMove" wrapper the spec requires around every
// recursive call.
func (s *Searcher) withMove(p *position.Position, m Move, action func() SearchResult) SearchResult {
	p.DoMove(m)
	result := action()
	p.UndoMove()
	return result
}

// reportRootMove emits the root-iteration info line for the move just
// completed: TT hit ratio, node count in kilonodes, the best variation
// found so far, and the move currently under consideration.
func (s *Searcher) reportRootMove(pv []Move, curr Move) {
	total := s.ttHits + s.ttMisses
	ratio := uint64(0)
	if total > 0 {
		ratio = 100 * s.ttHits / total
	}
	s.sink.Send(out.Sprintf("info TPC : %d%% %dkn  PV : %s  curr : %s",
		ratio, s.nodes/1000, variationString(pv), curr.StringUci()))
}

func variationString(pv []Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.StringUci()
	}
	return strings.Join(parts, " ")
}

func moveSliceToSlice(ms *moveslice.MoveSlice) []Move {
	out := make([]Move, ms.Len())
	for i := 0; i < ms.Len(); i++ {
		out[i] = ms.At(i)
	}
	return out
}

// withHintFirst moves hint to the front of moves, deduplicated, if present.
func withHintFirst(moves []Move, hint Move) []Move {
	if hint == MoveNone {
		return moves
	}
	found := false
	for _, m := range moves {
		if m == hint {
			found = true
			break
		}
	}
	if !found {
		return moves
	}
	ordered := make([]Move, 0, len(moves))
	ordered = append(ordered, hint)
	for _, m := range moves {
		if m != hint {
			ordered = append(ordered, m)
		}
	}
	return ordered
}
