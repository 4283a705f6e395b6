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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/example/corechess/internal/types"
)

func TestPushBackAndLen(t *testing.T) {
	ms := NewMoveSlice(10)
	assert.EqualValues(t, 0, ms.Len())
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	ms.PushBack(m)
	assert.EqualValues(t, 1, ms.Len())
	assert.EqualValues(t, m, ms.At(0))
}

func TestClear(t *testing.T) {
	ms := NewMoveSlice(10)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal, PtNone))
	ms.PushBack(CreateMove(SqD2, SqD4, Normal, PtNone))
	ms.Clear()
	assert.EqualValues(t, 0, ms.Len())
}

func TestSortByValue(t *testing.T) {
	ms := NewMoveSlice(10)
	ms.PushBack(CreateMoveValue(SqE2, SqE4, Normal, PtNone, Value(10)))
	ms.PushBack(CreateMoveValue(SqD2, SqD4, Normal, PtNone, Value(30)))
	ms.PushBack(CreateMoveValue(SqC2, SqC4, Normal, PtNone, Value(20)))
	ms.Sort()
	assert.EqualValues(t, Value(30), ms.At(0).ValueOf())
	assert.EqualValues(t, Value(20), ms.At(1).ValueOf())
	assert.EqualValues(t, Value(10), ms.At(2).ValueOf())
}

func TestFilterCopy(t *testing.T) {
	ms := NewMoveSlice(10)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal, PtNone))
	ms.PushBack(CreateMove(SqD2, SqD4, Normal, PtNone))
	dest := NewMoveSlice(10)
	ms.FilterCopy(dest, func(i int) bool {
		return ms.At(i).From() == SqD2
	})
	assert.EqualValues(t, 1, dest.Len())
	assert.EqualValues(t, SqD2, dest.At(0).From())
}
