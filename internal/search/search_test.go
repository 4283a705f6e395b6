package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/corechess/internal/position"
	"github.com/example/corechess/internal/transpositiontable"
	. "github.com/example/corechess/internal/types"
)

func init() {
	Init()
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Qd1-d8 covers the whole back rank, mating the boxed-in king.
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	st := NewSearchState(p)
	st.SetInfoSink(NewCapturingSink())
	res := st.Search(3)

	require.NotEmpty(t, res.Variation)
	assert.True(t, res.Score.IsCheckMateValue(), "expected a mate score, got %d", res.Score)
	assert.True(t, res.Score > 0, "mate should favor the side to move")
}

func TestSearchIsDeterministic(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"

	p1, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	st1 := NewSearchState(p1)
	res1 := st1.Search(3)

	p2, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	st2 := NewSearchState(p2)
	res2 := st2.Search(3)

	assert.Equal(t, res1.Score, res2.Score)
	assert.Equal(t, res1.Variation, res2.Variation)
}

func TestSearchScoreIsSymmetricAcrossColors(t *testing.T) {
	white := "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
	black := "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1"

	pw, err := position.NewPositionFen(white)
	require.NoError(t, err)
	resW := NewSearchState(pw).Search(2)

	pb, err := position.NewPositionFen(black)
	require.NoError(t, err)
	resB := NewSearchState(pb).Search(2)

	assert.Equal(t, resW.Score, resB.Score)
}

func TestSearchReportsIncreasingDepthLines(t *testing.T) {
	p := position.NewPosition()
	sink := NewCapturingSink()
	st := NewSearchState(p)
	st.SetInfoSink(sink)
	st.Search(2)

	assert.Contains(t, sink.Lines(), "info depth 1")
	assert.Contains(t, sink.Lines(), "info depth 2")
}

func TestSearchReportsTpcLinesWithPvAndCurr(t *testing.T) {
	p := position.NewPosition()
	sink := NewCapturingSink()
	st := NewSearchState(p)
	st.SetInfoSink(sink)
	st.Search(2)

	found := false
	for _, line := range sink.Lines() {
		if len(line) > len("info TPC") && line[:8] == "info TPC" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one info TPC line, got %v", sink.Lines())
}

func TestWithTransPosCacheReturnsExactHitDirectly(t *testing.T) {
	tt := transpositiontable.NewTtTable(8)
	s := NewSearcher(tt)
	p := position.NewPosition()

	stored := SearchResult{Score: 42, Variation: []Move{CreateMove(SqE2, SqE4, Normal, PtNone)}}
	tt.Insert(p, 5, EXACT, stored)

	calledBody := false
	res := s.withTransPosCache(p, 3, -ValueInfinite, ValueInfinite, func(a, b Value, hint Move) SearchResult {
		calledBody = true
		return SearchResult{}
	})

	assert.False(t, calledBody, "an exact hit at sufficient depth must short-circuit the body")
	assert.Equal(t, stored.Score, res.Score)
}

func TestKillerTableIsSeededAfterIteration(t *testing.T) {
	p := position.NewPosition()
	tt := transpositiontable.NewTtTable(transpositiontable.DefaultCapacity)
	s := NewSearcher(tt)
	s.SetInfoSink(NewCapturingSink())

	res := s.Search(p, 2)
	require.NotEmpty(t, res.Variation)
	assert.Equal(t, res.Variation[0], s.kill.Ordered(0, []Move{MoveNone, res.Variation[0]})[0])
}

func TestVariationStringJoinsUciMoves(t *testing.T) {
	pv := []Move{
		CreateMove(SqE2, SqE4, Normal, PtNone),
		CreateMove(SqE7, SqE5, Normal, PtNone),
	}
	s := variationString(pv)
	assert.Equal(t, pv[0].StringUci()+" "+pv[1].StringUci(), s)
}

func TestWithHintFirstReordersWhenPresent(t *testing.T) {
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqD2, SqD4, Normal, PtNone)
	m3 := CreateMove(SqG1, SqF3, Normal, PtNone)

	ordered := withHintFirst([]Move{m1, m2, m3}, m3)
	assert.Equal(t, []Move{m3, m1, m2}, ordered)

	unchanged := withHintFirst([]Move{m1, m2}, MoveNone)
	assert.Equal(t, []Move{m1, m2}, unchanged)
}
