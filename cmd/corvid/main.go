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

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kiranbaskarv/corvid/internal/attacks"
	"github.com/kiranbaskarv/corvid/internal/config"
	"github.com/kiranbaskarv/corvid/internal/logging"
	"github.com/kiranbaskarv/corvid/internal/movegen"
	"github.com/kiranbaskarv/corvid/internal/position"
	"github.com/kiranbaskarv/corvid/internal/uci"
	"github.com/kiranbaskarv/corvid/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", -1, "standard log level (0=critical .. 5=debug); -1 leaves the config file's value")
	searchLogLvl := flag.Int("searchloglvl", -1, "search log level (0=critical .. 5=debug); -1 leaves the config file's value")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	perft := flag.Int("perft", 0, "run perft to the given depth on -fen (or the start position) and exit")
	fen := flag.String("fen", position.StartFEN, "FEN used by -perft")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl >= 0 {
		config.Settings.Log.LogLevel = *logLvl
	}
	if *searchLogLvl >= 0 {
		config.Settings.Log.SearchLogLevel = *searchLogLvl
	}
	logging.Setup()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *perft > 0 {
		runPerft(*fen, *perft)
		return
	}

	uci.NewHandler().Loop()
}

func runPerft(fen string, depth int) {
	attacks.Init()
	p := position.New()
	if err := p.SetFEN(fen); err != nil {
		out.Printf("invalid -fen: %v\n", err)
		return
	}
	for d := 1; d <= depth; d++ {
		out.Printf("perft %d: %d nodes\n", d, movegen.Perft(p, d))
	}
}

func printVersionInfo() {
	out.Printf("%s\n", version.Full())
	out.Println("Environment:")
	out.Printf("  Using Go version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
