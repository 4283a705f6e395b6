package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/corechess/internal/position"
	. "github.com/example/corechess/internal/types"
)

func init() {
	Init()
}

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	p := position.NewPosition()
	e := NewEvaluator()
	// material and piece-square terms cancel; only the tempo bonus for the
	// side to move (White) remains
	assert.EqualValues(t, tempoBonus, e.Evaluate(p, 0))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator()
	v := e.Evaluate(p, 0)
	assert.Greater(t, int(v), 0, "white has an extra queen, score must favor white")
}

func TestEvaluateCheckmateFavorsNonMatedSide(t *testing.T) {
	// fool's mate final position: black has delivered mate, white to move has none.
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	require.True(t, p.HasCheck())
	e := NewEvaluator()
	v := e.Evaluate(p, 4)
	assert.Less(t, int(v), 0, "white is checkmated, score must favor black")
	assert.True(t, v.IsCheckMateValue())
}

func TestEvaluateStalemateIsDraw(t *testing.T) {
	p, err := position.NewPositionFen("k7/2K5/1Q6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator()
	assert.EqualValues(t, ValueDraw, e.Evaluate(p, 10))
}
