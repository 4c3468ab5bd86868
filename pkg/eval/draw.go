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

package eval

import (
	"github.com/arbiter-chess/arbiter/pkg/board"
	"github.com/arbiter-chess/arbiter/pkg/piece"
)

// insufficientMaterial reports whether b matches one of the trivial
// drawn-by-material patterns: bare kings, king plus a single minor, or
// king plus two knights against a bare king, on both sides, as long as
// no pawns, rooks or queens remain on the board at all.
func insufficientMaterial(b *board.Board) bool {
	if b.BitboardPiece(piece.Pawn) != 0 || b.BitboardPiece(piece.Rook) != 0 || b.BitboardPiece(piece.Queen) != 0 {
		return false
	}

	return sideIsTrivial(b, piece.White, piece.Black) && sideIsTrivial(b, piece.Black, piece.White)
}

// sideIsTrivial reports whether c's non-king material, combined with
// whatever other has, cannot force checkmate: c has at most a single
// minor, or two knights and nothing else, and other has no pieces that
// could contest that material.
func sideIsTrivial(b *board.Board, c, other piece.Color) bool {
	knights := b.KnightsBB(c).Count()
	bishops := b.BishopsBB(c).Count()

	if knights == 0 && bishops == 0 {
		return true
	}
	if knights+bishops == 1 {
		return true
	}
	if knights == 2 && bishops == 0 {
		return b.KnightsBB(other).Count() == 0 && b.BishopsBB(other).Count() == 0
	}
	return false
}
