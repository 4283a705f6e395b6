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

// corechess is a minimal frontend over the search core: it reads a FEN and
// a depth, runs an iterative-deepening negascout search, and prints the
// info lines and the final result.
package main

import (
	"flag"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/example/corechess/internal/config"
	"github.com/example/corechess/internal/corelog"
	"github.com/example/corechess/internal/position"
	"github.com/example/corechess/internal/search"
	"github.com/example/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen of the position to search from")
	depth := flag.Int("depth", 6, "maximum search depth")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	corelog.GetLog()

	types.MagicSeed = config.Settings.Search.MagicSeed
	types.Init()

	p, err := position.NewPositionFen(*fen)
	if err != nil {
		out.Printf("invalid fen %q: %v\n", *fen, err)
		return
	}

	st := search.NewSearchState(p)
	result := st.Search(*depth)

	out.Printf("bestmove %s\n", result.First().StringUci())
	out.Printf("score %d\n", result.Score)
}

func printVersionInfo() {
	out.Println("corechess")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
