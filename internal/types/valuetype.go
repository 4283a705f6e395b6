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

// ValueType classifies a transposition table entry's score relative to the
// search window that produced it.
type ValueType int8

// Value types
const (
	Vnone  ValueType = 0
	EXACT  ValueType = 1
	ALPHA  ValueType = 2 // upper bound, score <= alpha, fail-low
	BETA   ValueType = 3 // lower bound, score >= beta, fail-high
	Vlength          = 4
)

// IsValid reports whether vt is one of the three meaningful value types.
func (vt ValueType) IsValid() bool {
	return vt > Vnone && vt < Vlength
}

// String returns a short mnemonic for vt.
func (vt ValueType) String() string {
	switch vt {
	case EXACT:
		return "EXACT"
	case ALPHA:
		return "ALPHA"
	case BETA:
		return "BETA"
	default:
		return "NONE"
	}
}
