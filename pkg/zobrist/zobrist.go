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

// Package zobrist implements the 64-bit Zobrist hash keys used to
// identify chess positions, including the narrower pawn-only hash the
// pawn-structure cache is keyed by.
package zobrist

import (
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

// Key is a 64-bit Zobrist hash.
type Key uint64

// PieceSquare holds one random key per (piece, square) pair.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one random key per en-passant target file.
var EnPassant [square.FileN]Key

// SideToMove is xored into the hash whenever it is Black's turn.
var SideToMove Key

// prng is the xorshift64* generator also used for magic-number search in
// other engines; here it only needs to fill the key tables once at
// startup, seeded the way Stockfish seeds its own Zobrist tables.
type prng struct {
	seed uint64
}

func (p *prng) next() uint64 {
	p.seed ^= p.seed >> 12
	p.seed ^= p.seed << 25
	p.seed ^= p.seed >> 27
	return p.seed * 2685821657736338717
}

func init() {
	rng := prng{seed: 1070372}

	for p := 0; p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.next())
		}
	}

	for f := square.FileA; f < square.FileN; f++ {
		EnPassant[f] = Key(rng.next())
	}

	SideToMove = Key(rng.next())
}
