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

package scorepair_test

import (
	"testing"

	"github.com/arbiter-chess/arbiter/pkg/scorepair"
)

func FuzzRecovery(f *testing.F) {
	f.Add(int32(1000), int32(-1000))
	f.Add(int32(2648), int32(7346))
	f.Add(int32(-3683), int32(-8374))

	f.Fuzz(func(t *testing.T, mg, eg int32) {
		s := scorepair.S(mg, eg)
		if s.MG() != mg || s.EG() != eg {
			t.Errorf("S(%d, %d).MG/EG() = %d, %d", mg, eg, s.MG(), s.EG())
		}
	})
}

func FuzzAdditionDistributes(f *testing.F) {
	f.Add(int32(1000), int32(-1000), int32(-1000), int32(1000))
	f.Add(int32(2648), int32(7346), int32(3683), int32(8374))

	f.Fuzz(func(t *testing.T, mg1, eg1, mg2, eg2 int32) {
		// keep halves within the +-30000 bound the spec guarantees
		clamp := func(x int32) int32 {
			if x > 30000 {
				return 30000
			}
			if x < -30000 {
				return -30000
			}
			return x
		}
		mg1, eg1, mg2, eg2 = clamp(mg1), clamp(eg1), clamp(mg2), clamp(eg2)

		a, b := scorepair.S(mg1, eg1), scorepair.S(mg2, eg2)
		sum := scorepair.Add(a, b)

		if sum.MG() != a.MG()+b.MG() {
			t.Errorf("MG(a+b) = %d, want %d", sum.MG(), a.MG()+b.MG())
		}
		if sum.EG() != a.EG()+b.EG() {
			t.Errorf("EG(a+b) = %d, want %d", sum.EG(), a.EG()+b.EG())
		}
	})
}

func TestScale(t *testing.T) {
	s := scorepair.S(10, -20)
	scaled := scorepair.Scale(s, 3)
	if scaled.MG() != 30 || scaled.EG() != -60 {
		t.Errorf("Scale(S(10,-20), 3) = (%d, %d), want (30, -60)", scaled.MG(), scaled.EG())
	}
}
