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

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

const pathResolvDebug = false

// ResolveFile resolves a path to a file, trying in order: the path itself
// if absolute, relative to the working directory, relative to the
// executable, and relative to the user's home directory. Returns an error
// if none of those exist.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)
	notFoundErr := fmt.Errorf("file could not be found: %s", file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, notFoundErr
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(home, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	return file, notFoundErr
}

// ResolveCreateFolder resolves folderPath to an existing folder, trying the
// working directory then the OS temp directory, creating it in whichever
// location succeeds first.
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if folderExists(folderPath) {
			return folderPath, nil
		}
		err := os.Mkdir(folderPath, 0755)
		return folderPath, err
	}

	dir, _ := os.Getwd()
	candidate := filepath.Join(dir, filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	if err := os.Mkdir(candidate, 0755); err == nil {
		return candidate, nil
	}

	candidate = filepath.Join(os.TempDir(), filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	err := os.Mkdir(candidate, 0755)
	return candidate, err
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		if pathResolvDebug {
			fmt.Fprintln(os.Stderr, "stat failed for", filename, err)
		}
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(foldername string) bool {
	info, err := os.Stat(foldername)
	if err != nil || info == nil {
		if pathResolvDebug {
			fmt.Fprintln(os.Stderr, "stat failed for", foldername, err)
		}
		return false
	}
	return info.Mode().IsDir()
}
