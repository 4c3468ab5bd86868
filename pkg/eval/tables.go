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

import "github.com/arbiter-chess/arbiter/pkg/scorepair"

// S is a local alias so the bonus tables below read the way psqt's tables
// do, without importing scorepair.S at every call site.
func S(mg, eg int32) scorepair.Score { return scorepair.S(mg, eg) }

// Tempo is added to the white-oriented score when it is that colour's
// turn to move, and subtracted when it is the other's; see evaluate's
// final interpolation step.
var Tempo = [2]scorepair.Score{
	S(28, 10),
	S(-28, -10),
}

// pawn structure
var (
	IsolatedPawnPenalty = S(-11, -9)
	DoubledPawnPenalty  = S(-10, -25)
	BackwardPawnPenalty = S(-8, -12)
)

// ConnectedPawnBonus is indexed by relative-32, matching the PSQT
// indexing convention: a pawn defended by or forming a phalanx with a
// neighbour is worth more the further advanced it is.
var ConnectedPawnBonus [32]scorepair.Score

func init() {
	// one row per relative rank (0..7), broadcast across the 4 file
	// columns of the relative-32 table; a pawn has no meaningful
	// connected bonus on its own back rank or the promotion rank, which
	// it can never reach as a pawn anyway.
	perRank := [8][2]int32{
		{0, 0}, {2, 1}, {4, 3}, {8, 6},
		{14, 12}, {24, 20}, {38, 32}, {0, 0},
	}
	for rank := 0; rank < 8; rank++ {
		mg, eg := perRank[rank][0], perRank[rank][1]
		for file := 0; file < 4; file++ {
			ConnectedPawnBonus[4*rank+file] = S(mg, eg)
		}
	}
}

// PassedPawn[canAdvance][safeAdvance][relativeRank] is the bonus for a
// passed pawn, keyed by whether its stop square is empty and whether
// that stop square is free of enemy attacks.
var PassedPawn [2][2][8]scorepair.Score

func init() {
	base := [8][2]int32{
		{0, 0}, {0, 0}, {5, 10}, {10, 20},
		{20, 35}, {35, 60}, {60, 100}, {0, 0},
	}
	for rank := 0; rank < 8; rank++ {
		mg, eg := base[rank][0], base[rank][1]
		PassedPawn[0][0][rank] = S(mg*6/10, eg*6/10)
		PassedPawn[0][1][rank] = S(mg*8/10, eg*8/10)
		PassedPawn[1][0][rank] = S(mg*8/10, eg*8/10)
		PassedPawn[1][1][rank] = S(mg, eg)
	}
}

// PawnAttackedPenalty is applied once to a minor piece standing on a
// square attacked by an enemy pawn.
var PawnAttackedPenalty = S(-28, -22)

// outposts
var (
	KnightOutpostBonus         = S(20, 10)
	KnightOutpostDefendedBonus = S(32, 18)
	BishopOutpostBonus         = S(14, 8)
	BishopOutpostDefendedBonus = S(22, 13)
)

// bishop-specific
var (
	BishopPairBonus  = S(32, 48)
	BishopWingsBonus = S(8, 10)
)

// mobility, indexed by popcount(attacks & mobilityArea)
var (
	KnightMobility [9]scorepair.Score
	BishopMobility [14]scorepair.Score
	RookMobility   [15]scorepair.Score
	QueenMobility  [28]scorepair.Score
)

func init() {
	for i := range KnightMobility {
		KnightMobility[i] = S(int32(4*i-8), int32(4*i-8))
	}
	for i := range BishopMobility {
		BishopMobility[i] = S(int32(5*i-10), int32(5*i-10))
	}
	for i := range RookMobility {
		RookMobility[i] = S(int32(3*i-8), int32(4*i-8))
	}
	for i := range QueenMobility {
		QueenMobility[i] = S(int32(2*i-6), int32(3*i-6))
	}
}

// rooks
var (
	RookSemiOpenFileBonus = S(16, 10)
	RookOpenFileBonus     = S(32, 18)
	RookSeventhRankBonus  = S(14, 32)
)

// queens
var (
	QueenMinorThreatPenalty = S(-18, -14)
	QueenPawnThreatPenalty  = S(-42, -32)
)

// KingDefenders is indexed by popcount of own minors/pawns in the king
// area, capped at 7.
var KingDefenders [8]scorepair.Score

func init() {
	values := [8][2]int32{
		{-20, 0}, {-10, 0}, {0, 0}, {8, 0},
		{16, 0}, {22, 0}, {26, 0}, {28, 0},
	}
	for i, v := range values {
		KingDefenders[i] = S(v[0], v[1])
	}
}

// KingDangerScale is the attacker-count scale table from the king-danger
// formula, preserved verbatim: index is min(attackerCount, 7).
var KingDangerScale = [8]float64{0.00, 0.00, 0.40, 0.60, 0.75, 0.90, 0.95, 1.00}

// KingDangerExponent is the exponent applied to the scaled attack count
// for the quadratic danger term, preserved verbatim.
const KingDangerExponent = 1.20

// KingDangerLinear and KingDangerQuad are the coefficients of the linear
// and power terms of the king-danger polynomial.
var (
	KingDangerLinear = S(-1, 0)
	KingDangerQuad   = S(-1, -1)
)

// KingShelter[isKingFile][onCentreFiles][distance] is the bonus/penalty
// for the rank distance to the nearest own pawn on a file in the king's
// shelter zone. distance 0 means no pawn on that file.
var KingShelter [2][2][8]scorepair.Score

func init() {
	noPawn := [2]int32{-20, -10}
	near := [2]int32{24, 4}
	far := [2]int32{-4, 0}

	for isKingFile := 0; isKingFile < 2; isKingFile++ {
		for onCentre := 0; onCentre < 2; onCentre++ {
			extra := int32(0)
			if isKingFile == 1 {
				extra = 6
			}
			if onCentre == 1 {
				extra -= 4
			}
			KingShelter[isKingFile][onCentre][0] = S(noPawn[0]+extra, noPawn[1])
			for d := 1; d < 8; d++ {
				if d <= 2 {
					KingShelter[isKingFile][onCentre][d] = S(near[0]+extra, near[1])
				} else {
					KingShelter[isKingFile][onCentre][d] = S(far[0]+extra, far[1])
				}
			}
		}
	}
}
