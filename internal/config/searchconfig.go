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

package config

// searchConfiguration holds the tunables of a single search instance.
type searchConfiguration struct {
	// Iterative deepening
	MaxPly int

	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool

	// Move ordering
	UsePVS    bool
	UseKiller bool

	// Killer move table
	KillerCapacity int

	// Transposition table
	UseTT    bool
	TTSizeMb int

	// Magic bitboard generation seed, fixed so attack tables are
	// reproducible across runs. Wired into types.MagicSeed by the
	// frontend before types.Init() is called.
	MagicSeed uint64
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.MaxPly = 64

	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true
	Settings.Search.KillerCapacity = 2

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMb = 64

	Settings.Search.MagicSeed = 0
}
