package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/corechess/internal/position"
	. "github.com/example/corechess/internal/types"
)

func init() {
	Init()
}

func TestLookupMissOnEmptyTable(t *testing.T) {
	tt := NewTtTable(8)
	p := position.NewPosition()
	res := tt.Lookup(p, 4)
	assert.Equal(t, Miss, res.Outcome)
}

func TestInsertThenHitAtSufficientDepth(t *testing.T) {
	tt := NewTtTable(8)
	p := position.NewPosition()
	sr := SearchResult{Score: 15, Variation: []Move{CreateMove(SqE2, SqE4, Normal, PtNone)}}
	tt.Insert(p, 6, EXACT, sr)

	res := tt.Lookup(p, 4)
	assert.Equal(t, Hit, res.Outcome)
	assert.Equal(t, sr.Score, res.Entry.Result().Score)
}

func TestLookupShallowReturnsMoveHintOnly(t *testing.T) {
	tt := NewTtTable(8)
	p := position.NewPosition()
	m := CreateMove(SqD2, SqD4, Normal, PtNone)
	tt.Insert(p, 2, EXACT, SearchResult{Score: 10, Variation: []Move{m}})

	res := tt.Lookup(p, 8)
	assert.Equal(t, Shallow, res.Outcome)
	assert.Equal(t, m, res.MoveHint)
	assert.Nil(t, res.Entry)
}

func TestInsertOverwritesOnlyWhenNewIsExactAndOldIsNot(t *testing.T) {
	tt := NewTtTable(8)
	p := position.NewPosition()
	tt.Insert(p, 4, BETA, SearchResult{Score: 50})
	// a non-exact insert at a higher depth must not replace the stored entry's kind
	tt.Insert(p, 6, ALPHA, SearchResult{Score: -50})
	res := tt.Lookup(p, 4)
	assert.Equal(t, Hit, res.Outcome)
	assert.Equal(t, BETA, res.Entry.Kind())
	assert.EqualValues(t, 50, res.Entry.Result().Score)

	// an exact insert does replace it
	tt.Insert(p, 6, EXACT, SearchResult{Score: 99})
	res = tt.Lookup(p, 4)
	assert.Equal(t, EXACT, res.Entry.Kind())
	assert.EqualValues(t, 99, res.Entry.Result().Score)
}

func TestEvictsLeastRecentlyUsedWhenFull(t *testing.T) {
	tt := NewTtTable(2)
	p1 := position.NewPosition()
	p2, _ := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	p3, _ := position.NewPositionFen("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")

	tt.Insert(p1, 1, EXACT, SearchResult{Score: 1})
	tt.Insert(p2, 1, EXACT, SearchResult{Score: 2})
	assert.Equal(t, 2, tt.Len())

	// touch p1 so p2 becomes the least recently used
	tt.Lookup(p1, 1)
	tt.Insert(p3, 1, EXACT, SearchResult{Score: 3})

	assert.Equal(t, Miss, tt.Lookup(p2, 1).Outcome)
	assert.Equal(t, Hit, tt.Lookup(p1, 1).Outcome)
	assert.Equal(t, Hit, tt.Lookup(p3, 1).Outcome)
}

func TestNegatePrependFirst(t *testing.T) {
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqE7, SqE5, Normal, PtNone)
	r := SearchResult{Score: 30, Variation: []Move{m2}}
	negated := r.Negate()
	assert.EqualValues(t, -30, negated.Score)

	prepended := r.Prepend(m1)
	assert.Equal(t, []Move{m1, m2}, prepended.Variation)
	assert.Equal(t, m1, prepended.First())

	empty := SearchResult{}
	assert.Equal(t, MoveNone, empty.First())
}
