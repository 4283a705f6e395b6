//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"fmt"
	"strconv"

	"github.com/example/corechess/internal/util"
)

// Value is a centipawn evaluation score, wide enough to hold mate distances
// without overflowing during negation or aggregation across a deep search.
type Value int32

// Value bounds and sentinels
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueOne                Value = 1
	ValueInfinite           Value = 15000
	ValueNA                 Value = -ValueInfinite - 1
	ValueMax                Value = 10000
	ValueMin                Value = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - Value(MaxPly) - 1
)

// IsValid reports whether v is within the representable value range.
func (v Value) IsValid() bool {
	return v >= ValueNA && v <= ValueInfinite
}

// IsCheckMateValue reports whether v encodes a forced mate (in either
// direction).
func (v Value) IsCheckMateValue() bool {
	return util.Abs(int(v)) >= int(ValueCheckMateThreshold) && util.Abs(int(v)) <= int(ValueCheckMate)
}

// String renders v as "mate N", "cp N" or "N/A".
func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v.IsCheckMateValue():
		plies := int(ValueCheckMate) - util.Abs(int(v))
		moves := (plies + 1) / 2
		if v < 0 {
			moves = -moves
		}
		return "mate " + strconv.Itoa(moves)
	default:
		return fmt.Sprintf("cp %d", int(v))
	}
}
