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

// Package config holds globally available configuration variables which
// are either set by defaults or read from a TOML config file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/example/corechess/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the working
	// directory, the executable, or $HOME, in that order).
	ConfFile = "./config.toml"

	// LogLevel is the standard logger's level, overridable by the config file.
	LogLevel = 4

	// SearchLogLevel is the search logger's level, overridable by the config file.
	SearchLogLevel = 4

	// TestLogLevel is the test logger's level.
	TestLogLevel = 3

	// Settings is the global configuration read in from the config file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// Setup reads the configuration file (if present) and applies it on top
// of the compiled-in defaults. Safe to call more than once; only the
// first call has effect.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found, using defaults. (", err, ")")
	}
	setupLogLvl()
	initialized = true
}

// String renders the current configuration settings, mostly useful for
// startup diagnostics.
func (settings *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-20s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
	return b.String()
}
