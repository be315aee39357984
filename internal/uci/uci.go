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

// Package uci implements the Handler that speaks the UCI protocol between a
// chess GUI and the engine: it reads commands from stdin (or any
// bufio.Scanner), drives an engine.Engine, and writes responses to stdout
// (or any bufio.Writer).
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kiranbaskarv/corvid/internal/engine"
	"github.com/kiranbaskarv/corvid/internal/logging"
	"github.com/kiranbaskarv/corvid/internal/search"
	"github.com/kiranbaskarv/corvid/internal/timecontrol"
	"github.com/kiranbaskarv/corvid/internal/version"
)

var log = logging.GetLog("uci")

// out formats human-readable diagnostic text (not wire-protocol numbers,
// which must stay plain decimal for the GUI's parser).
var out = message.NewPrinter(language.German)

// Handler owns the input/output streams and the running Engine, and
// translates each line of UCI text into an Engine call.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	eng *engine.Engine

	searching errgroup.Group
}

// NewHandler creates a Handler wired to stdin/stdout and a fresh Engine.
func NewHandler() *Handler {
	return &Handler{
		InIo:  bufio.NewScanner(os.Stdin),
		OutIo: bufio.NewWriter(os.Stdout),
		eng:   engine.New(),
	}
}

// Loop reads commands until "quit" or EOF.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns everything it
// wrote before handle returned, for tests that don't want a live
// stdin/stdout loop. A "go" search runs on its own goroutine, so its info
// and bestmove lines are not part of the returned text.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// handle dispatches a single command line, returning true when the caller
// should stop the loop ("quit").
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		h.eng.Stop()
		_ = h.searching.Wait()
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.eng.Stop()
		_ = h.searching.Wait()
		h.eng.NewGame()
	case "position":
		h.eng.Stop()
		_ = h.searching.Wait()
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.eng.Stop()
		_ = h.searching.Wait()
	case "ponderhit":
		// No pondering support; ignore, matching spec.md's "unknown
		// commands are ignored silently".
	case "setoption", "debug", "register":
		// Accepted but inert: this engine exposes no tunable UCI options.
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + version.Full())
	h.send("id author The Corvid Authors")
	h.send("uciok")
}

// positionCommand implements spec.md §6's "position [startpos|fen ...]
// [moves ...]" contract.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("command 'position' malformed")
		return
	}
	i := 1
	switch tokens[i] {
	case "startpos":
		h.eng.NewGame()
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		h.eng.SetPositionFEN(strings.TrimSpace(fenb.String()))
	default:
		h.sendInfoString(out.Sprintf("command 'position' malformed: %v", tokens))
		return
	}
	if i < len(tokens) && tokens[i] == "moves" {
		h.eng.ApplyMoves(tokens[i+1:])
	}
}

// goCommand parses the search limits and starts the search asynchronously
// so that "stop" arriving on the next input line can interrupt it.
func (h *Handler) goCommand(tokens []string) {
	limits, ok := parseLimits(tokens)
	if !ok {
		h.sendInfoString(out.Sprintf("command 'go' malformed: %v", tokens))
		return
	}
	h.eng.Stop()
	_ = h.searching.Wait()
	h.searching.Go(func() error {
		result := h.eng.Go(limits, h.sendInfo)
		h.sendResult(result)
		return nil
	})
}

func (h *Handler) sendInfo(info search.Info) {
	var pv strings.Builder
	for i, m := range info.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(m.String())
	}
	nps := timecontrol.NPS(info.Nodes, info.Time)
	h.send(fmt.Sprintf("info score cp %d depth %d nodes %d nps %d time %d pv %s",
		info.Score, info.Depth, info.Nodes, nps, info.Time.Milliseconds(), pv.String()))
}

func (h *Handler) sendResult(result search.Result) {
	if result.BestMove == 0 {
		h.send("bestmove 0000")
		return
	}
	if result.PonderMove != 0 {
		h.send(fmt.Sprintf("bestmove %s ponder %s", result.BestMove.String(), result.PonderMove.String()))
		return
	}
	h.send(fmt.Sprintf("bestmove %s", result.BestMove.String()))
}

func (h *Handler) send(s string) {
	log.Debugf(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}

// sendInfoString reports a diagnostic to both the engine log and the GUI,
// as a UCI "info string" line.
func (h *Handler) sendInfoString(s string) {
	log.Warning(s)
	h.send("info string " + s)
}

// parseLimits implements spec.md §6's "go" token grammar.
func parseLimits(tokens []string) (search.Limits, bool) {
	var l search.Limits
	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		i++
		var err error
		switch tok {
		case "infinite":
			l.Infinite = true
		case "depth":
			i, err = readInt(tokens, i, &l.Depth)
		case "nodes":
			var n int
			i, err = readInt(tokens, i, &n)
			l.Nodes = uint64(n)
		case "movetime":
			var ms int
			i, err = readInt(tokens, i, &ms)
			l.MoveTime = time.Duration(ms) * time.Millisecond
			l.TimeControl = true
		case "wtime":
			var ms int
			i, err = readInt(tokens, i, &ms)
			l.WTime = time.Duration(ms) * time.Millisecond
			l.TimeControl = true
		case "btime":
			var ms int
			i, err = readInt(tokens, i, &ms)
			l.BTime = time.Duration(ms) * time.Millisecond
			l.TimeControl = true
		case "winc":
			var ms int
			i, err = readInt(tokens, i, &ms)
			l.WInc = time.Duration(ms) * time.Millisecond
		case "binc":
			var ms int
			i, err = readInt(tokens, i, &ms)
			l.BInc = time.Duration(ms) * time.Millisecond
		case "movestogo":
			i, err = readInt(tokens, i, &l.MovesToGo)
		case "ponder":
			// Accepted syntactically; pondering itself isn't supported.
		default:
			return search.Limits{}, false
		}
		if err != nil {
			return search.Limits{}, false
		}
	}
	if !(l.Infinite || l.Depth > 0 || l.Nodes > 0 || l.MoveTime > 0 || l.TimeControl) {
		l.Depth = 64
	}
	return l, true
}

func readInt(tokens []string, i int, dst *int) (int, error) {
	if i >= len(tokens) {
		return i, fmt.Errorf("missing value")
	}
	v, err := strconv.Atoi(tokens[i])
	if err != nil {
		return i, err
	}
	*dst = v
	return i + 1, nil
}
