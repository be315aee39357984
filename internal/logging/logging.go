// Corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
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

// Package logging wraps github.com/op/go-logging with the two loggers this
// engine needs: a general-purpose one and a dedicated search logger, each
// with its own configured level.
package logging

import (
	"os"

	logging "github.com/op/go-logging"

	"github.com/kiranbaskarv/corvid/internal/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}: %{message}`,
)

var levelNames = map[int]logging.Level{
	0: logging.CRITICAL,
	1: logging.ERROR,
	2: logging.WARNING,
	3: logging.NOTICE,
	4: logging.INFO,
	5: logging.DEBUG,
}

var initialized = false

var leveled logging.LeveledBackend

// Setup wires up the "corvid" and "corvid_search" loggers against stdout,
// at the levels configured in config.Settings.Log. Safe to call more than
// once; the backend is created on the first call and every call re-applies
// the configured levels.
func Setup() {
	if !initialized {
		backend := logging.NewLogBackend(os.Stdout, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled = logging.AddModuleLevel(formatted)
		logging.SetBackend(leveled)
		initialized = true
	}
	leveled.SetLevel(level(config.Settings.Log.LogLevel), "")
	leveled.SetLevel(level(config.Settings.Log.SearchLogLevel), "corvid_search")
}

func level(l int) logging.Level {
	if lv, ok := levelNames[l]; ok {
		return lv
	}
	return logging.INFO
}

// GetLog returns the named logger, configured at the general log level.
func GetLog(name string) *logging.Logger {
	Setup()
	return logging.MustGetLogger(name)
}

// GetSearchLog returns a logger dedicated to search tracing, configured at
// the (usually noisier) search log level.
func GetSearchLog() *logging.Logger {
	Setup()
	l := logging.MustGetLogger("corvid_search")
	logging.SetLevel(level(config.Settings.Log.SearchLogLevel), "corvid_search")
	return l
}
