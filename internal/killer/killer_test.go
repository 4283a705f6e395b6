package killer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/example/corechess/internal/types"
)

func init() {
	Init()
}

func TestOrderedNoKillersReturnsOriginal(t *testing.T) {
	tbl := NewTable()
	moves := []Move{CreateMove(SqE2, SqE4, Normal, PtNone), CreateMove(SqD2, SqD4, Normal, PtNone)}
	assert.Equal(t, moves, tbl.Ordered(0, moves))
}

func TestInsertThenOrderedMovesKillerToFront(t *testing.T) {
	tbl := NewTable()
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqD2, SqD4, Normal, PtNone)
	m3 := CreateMove(SqG1, SqF3, Normal, PtNone)
	tbl.Insert(3, m2)
	ordered := tbl.Ordered(3, []Move{m1, m2, m3})
	assert.Equal(t, []Move{m2, m1, m3}, ordered)
}

func TestInsertDedupsAndBoundsCapacity(t *testing.T) {
	tbl := NewTable()
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqD2, SqD4, Normal, PtNone)
	m3 := CreateMove(SqG1, SqF3, Normal, PtNone)
	tbl.Insert(0, m1)
	tbl.Insert(0, m2)
	tbl.Insert(0, m1) // already present but not at the front: moved to the front, list is m1, m2
	tbl.Insert(0, m3) // pushes out the oldest (m2) since capacity is 2
	assert.Equal(t, 2, tbl.len[0])
	assert.Equal(t, m3, tbl.kill[0][0])
}

func TestInsertPVSeedsSuccessivePlies(t *testing.T) {
	tbl := NewTable()
	pv := []Move{CreateMove(SqE2, SqE4, Normal, PtNone), CreateMove(SqE7, SqE5, Normal, PtNone)}
	tbl.InsertPV(pv)
	assert.Equal(t, pv[0], tbl.kill[0][0])
	assert.Equal(t, pv[1], tbl.kill[1][0])
}
