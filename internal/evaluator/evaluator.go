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

// Package evaluator scores a chess position from White's perspective in
// centipawns, combining material balance with a piece-square positional
// score interpolated over the game phase.
package evaluator

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/example/corechess/internal/corelog"
	"github.com/example/corechess/internal/movegen"
	"github.com/example/corechess/internal/position"
	. "github.com/example/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

// tempoBonus rewards the side to move a little for having the move -
// reduces evaluation alternation between successive plies.
const tempoBonus = 34

// Evaluator scores chess positions. Create one with NewEvaluator and
// reuse it across calls to Evaluate to avoid repeated allocation.
type Evaluator struct {
	log *logging.Logger
	mg  *movegen.Movegen

	score Score
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
		mg:  movegen.NewMoveGen(),
	}
}

// Evaluate scores the given position in centipawns from White's
// perspective. If the position has no legal move it returns the terminal
// mate (adjusted by ply so shorter mates score higher) or stalemate
// score instead of a material/positional estimate.
func (e *Evaluator) Evaluate(p *position.Position, ply int) Value {
	if !e.mg.AnyMove(p) {
		if p.HasCheck() {
			mateValue := ValueCheckMate - Value(ply)
			return Value(p.NextPlayer().Direction()) * -mateValue
		}
		return ValueDraw
	}
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}
	return e.evaluate(p)
}

// evaluate sums the material and positional partial scores, always from
// White's point of view, and returns the phase-interpolated value.
func (e *Evaluator) evaluate(p *position.Position) Value {
	e.score.MidGameValue = int(p.Material(White) - p.Material(Black))
	e.score.EndGameValue = e.score.MidGameValue

	e.score.MidGameValue += int(p.PsqMidValue(White) - p.PsqMidValue(Black))
	e.score.EndGameValue += int(p.PsqEndValue(White) - p.PsqEndValue(Black))

	if p.NextPlayer() == White {
		e.score.MidGameValue += tempoBonus
	} else {
		e.score.MidGameValue -= tempoBonus
	}

	return e.score.ValueFromScore(p.GamePhaseFactor())
}

// Report renders the current partial score for debugging and logging.
func (e *Evaluator) Report() string {
	return out.Sprintf("Material/Positional Score: %s", e.score.String())
}
