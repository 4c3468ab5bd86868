// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package board implements the minimal chess position representation the
// evaluator and tables consult: bitboards, a mailbox for point lookups,
// the side to move, and the incrementally-maintained Zobrist hashes and
// material/PSQT totals described in the data model's board collaborator
// view (see the package doc of eval for the consuming side).
//
// Move generation, legality checking, and make/unmake are out of scope
// here: positions are built directly from FEN, which is all evaluation
// and its tests need from a board.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arbiter-chess/arbiter/pkg/bitboard"
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/psqt"
	"github.com/arbiter-chess/arbiter/pkg/scorepair"
	"github.com/arbiter-chess/arbiter/pkg/square"
	"github.com/arbiter-chess/arbiter/pkg/zobrist"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is a snapshot of a chess position.
type Board struct {
	ColorBBs [piece.ColorN]bitboard.Board
	PieceBBs [piece.TypeN]bitboard.Board
	Position [square.N]piece.Piece

	SideToMove piece.Color

	Hash     zobrist.Key
	PawnHash zobrist.Key

	// incremental material + PSQT totals, maintained by FillSquare and
	// ClearSquare; the evaluator reads these directly and never
	// re-derives them from the piece tables.
	Midgame scorepair.Score
	Endgame scorepair.Score

	HalfmoveClock int
	FullMoves     int
}

// New returns an empty board, ready to be populated by FillSquare or by
// NewFromFEN.
func New() *Board {
	return &Board{}
}

// NewFromFEN parses a FEN string into a new Board.
func NewFromFEN(fen string) *Board {
	b := New()

	fields := strings.Fields(fen)
	for len(fields) < 6 {
		fields = append(fields, "-")
	}

	ranks := strings.Split(fields[0], "/")
	for i, rankData := range ranks {
		r := square.Rank(7 - i)
		f := square.FileA

		for _, ch := range rankData {
			if ch >= '1' && ch <= '8' {
				f += square.File(ch - '0')
				continue
			}
			s := square.New(f, r)
			b.FillSquare(s, piece.NewFromString(string(ch)))
			f++
		}
	}

	b.SideToMove = piece.White
	if len(fields[1]) > 0 && fields[1][0] == 'b' {
		b.SideToMove = piece.Black
		b.Hash ^= zobrist.SideToMove
	}

	if fields[3] != "-" {
		ep := square.NewFromString(fields[3])
		if ep != square.None {
			b.Hash ^= zobrist.EnPassant[ep.File()]
		}
	}

	if n, err := strconv.Atoi(fields[4]); err == nil {
		b.HalfmoveClock = n
	}
	if n, err := strconv.Atoi(fields[5]); err == nil {
		b.FullMoves = n
	}

	return b
}

// FillSquare places p on square s, updating bitboards, the mailbox, the
// Zobrist hashes, and the incremental material/PSQT totals.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	b.Position[s] = p
	b.ColorBBs[p.Color()].Set(s)
	b.PieceBBs[p.Type()].Set(s)

	b.Hash ^= zobrist.PieceSquare[p][s]
	if p.Type() == piece.Pawn {
		b.PawnHash ^= zobrist.PieceSquare[p][s]
	}

	b.Midgame = scorepair.Add(b.Midgame, scorepair.S(psqt.Expanded[p][s].MG(), 0))
	b.Endgame = scorepair.Add(b.Endgame, scorepair.S(psqt.Expanded[p][s].EG(), 0))
}

// ClearSquare removes whatever piece stands on s, the inverse of
// FillSquare.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]
	if p == piece.NoPiece {
		return
	}

	b.Position[s] = piece.NoPiece
	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)

	b.Hash ^= zobrist.PieceSquare[p][s]
	if p.Type() == piece.Pawn {
		b.PawnHash ^= zobrist.PieceSquare[p][s]
	}

	b.Midgame = scorepair.Add(b.Midgame, scorepair.S(-psqt.Expanded[p][s].MG(), 0))
	b.Endgame = scorepair.Add(b.Endgame, scorepair.S(-psqt.Expanded[p][s].EG(), 0))
}

// Occupied returns the bitboard of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// PieceAt returns the piece standing on s, or piece.NoPiece.
func (b *Board) PieceAt(s square.Square) piece.Piece {
	return b.Position[s]
}

// BitboardColor returns the combined bitboard of colour c's pieces.
func (b *Board) BitboardColor(c piece.Color) bitboard.Board {
	return b.ColorBBs[c]
}

// BitboardPiece returns the combined bitboard of every piece of type t,
// both colours.
func (b *Board) BitboardPiece(t piece.Type) bitboard.Board {
	return b.PieceBBs[t]
}

// PieceBB returns the bitboard of colour c's pieces of type t.
func (b *Board) PieceBB(c piece.Color, t piece.Type) bitboard.Board {
	return b.ColorBBs[c] & b.PieceBBs[t]
}

func (b *Board) PawnsBB(c piece.Color) bitboard.Board   { return b.PieceBB(c, piece.Pawn) }
func (b *Board) KnightsBB(c piece.Color) bitboard.Board { return b.PieceBB(c, piece.Knight) }
func (b *Board) BishopsBB(c piece.Color) bitboard.Board { return b.PieceBB(c, piece.Bishop) }
func (b *Board) RooksBB(c piece.Color) bitboard.Board   { return b.PieceBB(c, piece.Rook) }
func (b *Board) QueensBB(c piece.Color) bitboard.Board  { return b.PieceBB(c, piece.Queen) }
func (b *Board) KingBB(c piece.Color) bitboard.Board    { return b.PieceBB(c, piece.King) }

// King returns the square of colour c's king.
func (b *Board) King(c piece.Color) square.Square {
	return b.KingBB(c).FirstOne()
}

// Mirror returns a new Board with colours swapped and every square
// flipped vertically: the position a mirrored-symmetry test compares
// the original's evaluation against.
func (b *Board) Mirror() *Board {
	m := New()

	for s := square.Square(0); s < square.N; s++ {
		p := b.Position[s]
		if p == piece.NoPiece {
			continue
		}
		mirrored := piece.New(p.Type(), p.Color().Other())
		m.FillSquare(s.Flip(), mirrored)
	}

	m.SideToMove = b.SideToMove.Other()
	if m.SideToMove == piece.Black {
		m.Hash ^= zobrist.SideToMove
	}
	m.HalfmoveClock = b.HalfmoveClock
	m.FullMoves = b.FullMoves

	return m
}

// String renders the piece-placement and side-to-move fields of a FEN,
// used only for debugging output; castling, en-passant and the move
// counters are not rendered.
func (b *Board) String() string {
	var sb strings.Builder

	for r := square.Rank8; ; r-- {
		empty := 0
		for f := square.FileA; f < square.FileN; f++ {
			p := b.Position[square.New(f, r)]
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != square.Rank1 {
			sb.WriteByte('/')
		}
		if r == square.Rank1 {
			break
		}
	}

	return fmt.Sprintf("%s %s", sb.String(), b.SideToMove)
}
