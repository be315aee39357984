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

package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/types"
)

// SetFEN populates the position from a standard six-field Forsyth-Edwards
// string. On a malformed FEN it returns an error and leaves the position
// reset to the start position, per the documented "safe implementation"
// behavior - callers are not required to validate FEN themselves.
func (p *Position) SetFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		p.resetToStart()
		return fmt.Errorf("position: malformed FEN %q: need at least 4 fields", fen)
	}

	var np Position
	np.EP = bitboard.NoSquare

	row, col := 0, 0
	for _, c := range fields[0] {
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			pc := types.PieceFromGlyph(byte(c))
			if pc == types.NoPiece || row > 7 || col > 7 {
				p.resetToStart()
				return fmt.Errorf("position: malformed FEN %q: bad placement field", fen)
			}
			sq := bitboard.Square(row*8 + col)
			np.Piece[pc] = bitboard.Set(np.Piece[pc], sq)
			col++
		}
	}

	switch fields[1] {
	case "w":
		np.Side = types.White
	case "b":
		np.Side = types.Black
	default:
		p.resetToStart()
		return fmt.Errorf("position: malformed FEN %q: bad active color", fen)
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				np.Castle |= types.WKC
			case 'Q':
				np.Castle |= types.WQC
			case 'k':
				np.Castle |= types.BKC
			case 'q':
				np.Castle |= types.BQC
			default:
				p.resetToStart()
				return fmt.Errorf("position: malformed FEN %q: bad castling field", fen)
			}
		}
	}

	ep, err := bitboard.ParseSquare(fields[3])
	if err != nil {
		p.resetToStart()
		return fmt.Errorf("position: malformed FEN %q: %w", fen, err)
	}
	np.EP = ep

	np.HalfMoves = 0
	np.FullMoves = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			np.HalfMoves = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			np.FullMoves = n
		}
	}

	np.RecomputeOccupancy()
	*p = np
	return nil
}

func (p *Position) resetToStart() {
	var np Position
	np.EP = bitboard.NoSquare
	row, col := 0, 0
	for _, c := range "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR" {
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			pc := types.PieceFromGlyph(byte(c))
			sq := bitboard.Square(row*8 + col)
			np.Piece[pc] = bitboard.Set(np.Piece[pc], sq)
			col++
		}
	}
	np.Side = types.White
	np.Castle = types.WKC | types.WQC | types.BKC | types.BQC
	np.FullMoves = 1
	np.RecomputeOccupancy()
	*p = np
}

// FEN renders the position as a Forsyth-Edwards string (placement, side,
// castling, en-passant, halfmove, fullmove).
func (p *Position) FEN() string {
	var b strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			sq := bitboard.Square(row*8 + col)
			pc := p.PieceAt(sq)
			if pc == types.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(pc.Glyph())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	if p.Side == types.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')
	b.WriteString(p.CastleString())
	b.WriteByte(' ')
	b.WriteString(p.EP.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.HalfMoves))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullMoves))
	return b.String()
}
