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

// Package transpositiontable implements a bounded LRU cache of searched
// positions for a chess engine search. The TtTable type is not thread
// safe and needs to be synchronized externally if used from multiple
// goroutines.
package transpositiontable

import (
	"container/list"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/example/corechess/internal/corelog"
	"github.com/example/corechess/internal/position"
	. "github.com/example/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

// DefaultCapacity is the default number of entries the table holds,
// chosen as 4 x 8192 per the engine's sizing note.
const DefaultCapacity = 4 * 8192

// LookupOutcome classifies the result of a TtTable.Lookup call.
type LookupOutcome int8

const (
	// Miss means the key was absent, or present but for a colliding
	// (unequal) position.
	Miss LookupOutcome = iota
	// Shallow means the position was found but searched to a depth
	// lower than requested; only a move hint can be reused.
	Shallow
	// Hit means the position was found searched to at least the
	// requested depth; the stored result can be reused outright.
	Hit
)

func (o LookupOutcome) String() string {
	switch o {
	case Hit:
		return "Hit"
	case Shallow:
		return "Shallow"
	default:
		return "Miss"
	}
}

// LookupResult is everything TtTable.Lookup hands back to the caller.
type LookupResult struct {
	Outcome  LookupOutcome
	Entry    *TtEntry // valid only when Outcome == Hit
	MoveHint Move     // valid only when Outcome == Shallow; may be MoveNone
}

// TtStats holds counters on table usage. Observational only; they never
// affect lookup/insert behavior.
type TtStats struct {
	Puts       uint64
	Overwrites uint64
	Collisions uint64
	Lookups    uint64
	Hits       uint64
	Shallows   uint64
	Misses     uint64
}

// TtTable is a bounded LRU cache of searched positions, keyed by zobrist
// key. Create one with NewTtTable.
type TtTable struct {
	log      *logging.Logger
	capacity int
	recency  *list.List // most-recently-used at the front
	index    map[position.Key]*list.Element
	Stats    TtStats
}

type ttRecord struct {
	key   position.Key
	entry TtEntry
}

// NewTtTable creates a table bounded to capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func NewTtTable(capacity int) *TtTable {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &TtTable{
		log:      myLogging.GetLog(),
		capacity: capacity,
		recency:  list.New(),
		index:    make(map[position.Key]*list.Element, capacity),
	}
}

// Lookup probes the table for p searched to at least depth. Both a hit
// and a shallow hit count as an access and touch the LRU recency list; a
// miss (key absent, or key present for a colliding position) does not.
func (tt *TtTable) Lookup(p *position.Position, depth int) LookupResult {
	tt.Stats.Lookups++
	key := p.ZobristKey()
	elem, ok := tt.index[key]
	if !ok {
		tt.Stats.Misses++
		return LookupResult{Outcome: Miss}
	}
	rec := elem.Value.(*ttRecord)
	if !rec.entry.Matches(p) {
		tt.Stats.Misses++
		return LookupResult{Outcome: Miss}
	}
	tt.recency.MoveToFront(elem)
	if rec.entry.depth >= depth {
		tt.Stats.Hits++
		return LookupResult{Outcome: Hit, Entry: &rec.entry}
	}
	tt.Stats.Shallows++
	return LookupResult{Outcome: Shallow, MoveHint: rec.entry.result.First()}
}

// Insert stores result for p at depth with the given kind. If no entry
// exists for p's key yet, it is inserted unconditionally (evicting the
// least-recently-used entry if the table is full). If an entry already
// exists, it is overwritten only when the new entry is Exact and the old
// one is not - this is the one piece of domain knowledge worth keeping:
// an exact score is strictly more useful than a bound. Either way this
// counts as an access and touches the LRU recency list.
func (tt *TtTable) Insert(p *position.Position, depth int, kind ValueType, result SearchResult) {
	if tt.capacity == 0 {
		return
	}
	tt.Stats.Puts++
	key := p.ZobristKey()
	snapshot := *p
	if elem, ok := tt.index[key]; ok {
		tt.recency.MoveToFront(elem)
		rec := elem.Value.(*ttRecord)
		if kind == EXACT && rec.entry.kind != EXACT {
			tt.Stats.Overwrites++
			rec.entry = TtEntry{positionSnapshot: &snapshot, depth: depth, result: result, kind: kind}
		} else if !rec.entry.Matches(p) {
			tt.Stats.Collisions++
		}
		return
	}
	if tt.recency.Len() >= tt.capacity {
		tt.evictOldest()
	}
	rec := &ttRecord{key: key, entry: TtEntry{positionSnapshot: &snapshot, depth: depth, result: result, kind: kind}}
	elem := tt.recency.PushFront(rec)
	tt.index[key] = elem
}

// Clear empties the table and resets its stats.
func (tt *TtTable) Clear() {
	tt.recency.Init()
	tt.index = make(map[position.Key]*list.Element, tt.capacity)
	tt.Stats = TtStats{}
}

// Len returns the number of entries currently stored.
func (tt *TtTable) Len() int { return tt.recency.Len() }

// Hashfull returns how full the table is, in permille, matching the UCI
// "hashfull" convention.
func (tt *TtTable) Hashfull() int {
	if tt.capacity == 0 {
		return 0
	}
	return (1000 * tt.Len()) / tt.capacity
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: capacity %d entries %d (%d%%) puts %d overwrites %d collisions %d lookups %d hits %d shallow %d misses %d",
		tt.capacity, tt.Len(), tt.Hashfull()/10, tt.Stats.Puts, tt.Stats.Overwrites, tt.Stats.Collisions,
		tt.Stats.Lookups, tt.Stats.Hits, tt.Stats.Shallows, tt.Stats.Misses)
}

func (tt *TtTable) evictOldest() {
	oldest := tt.recency.Back()
	if oldest == nil {
		return
	}
	tt.recency.Remove(oldest)
	delete(tt.index, oldest.Value.(*ttRecord).key)
}
