// Copyright 2026 go-fmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fmath

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

// sweep evaluates got and want on n evenly spaced points of [lo, hi] and
// fails when the error exceeds tol. Relative errors are used when rel is set.
func sweep(t *testing.T, name string, lo, hi float64, n int, got func(float32) float32, want func(float64) float64, tol float64, rel bool) {
	t.Helper()
	xs := floats.Span(make([]float64, n), lo, hi)
	worst, worstX := 0.0, 0.0
	for _, x := range xs {
		x32 := float32(x)
		g := float64(got(x32))
		w := want(float64(x32))
		err := stdmath.Abs(g - w)
		if rel && w != 0 {
			err /= stdmath.Abs(w)
		}
		if err > worst {
			worst, worstX = err, x
		}
	}
	if worst > tol {
		t.Errorf("%s: max error %g at x=%v exceeds %g", name, worst, worstX, tol)
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{"sqrt(4) = 2", 4, 2},
		{"sqrt(9) = 3", 9, 3},
		{"sqrt(2)", 2, Sqrt2},
		{"sqrt(0.25) = 0.5", 0.25, 0.5},
		{"sqrt(1e6) = 1e3", 1e6, 1e3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sqrt(tt.x)
			if stdmath.Abs(float64(got-tt.want))/float64(tt.want) > 1e-4 {
				t.Errorf("Sqrt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
	sweep(t, "Sqrt", 1e-3, 1e4, 10000, Sqrt, stdmath.Sqrt, 1e-4, true)
}

func TestRSqrt(t *testing.T) {
	sweep(t, "RSqrt", 1e-3, 1e4, 10000, RSqrt, func(x float64) float64 { return 1 / stdmath.Sqrt(x) }, 1e-4, true)
	assert.InEpsilon(t, 0.5, RSqrt(4), 1e-4)
}

func TestCbrt(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{"cbrt(8) = 2", 8, 2},
		{"cbrt(27) = 3", 27, 3},
		{"cbrt(1) = 1", 1, 1},
		{"cbrt(0) = 0", 0, 0},
		{"cbrt(-8) = -2", -8, -2},
		{"cbrt(-27) = -3", -27, -3},
		{"cbrt(0.001) = 0.1", 0.001, 0.1},
		{"cbrt(1000) = 10", 1000, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cbrt(tt.x)
			if stdmath.Abs(float64(got-tt.want)) > 1e-4*stdmath.Max(1, stdmath.Abs(float64(tt.want))) {
				t.Errorf("Cbrt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
	sweep(t, "Cbrt", -1e4, 1e4, 10001, Cbrt, stdmath.Cbrt, 1e-4, true)
}

func TestCbrtOddSymmetry(t *testing.T) {
	for _, x := range []float32{0.5, 3, 17.25, 1e5} {
		assert.Equal(t, -Cbrt(x), Cbrt(-x), "x=%v", x)
	}
}

func TestLog(t *testing.T) {
	assert.Equal(t, float32(0), Log(1))
	sweep(t, "Log", 1e-3, 1e3, 10000, Log, stdmath.Log, 1e-4, false)
	sweep(t, "Log2", 1e-3, 1e3, 1000, Log2, stdmath.Log2, 2e-4, false)
	sweep(t, "Log10", 1e-3, 1e3, 1000, Log10, stdmath.Log10, 1e-4, false)
}

func TestLogBase(t *testing.T) {
	assert.InDelta(t, 3, LogBase(2, 8), 1e-4)
	assert.InDelta(t, 2, LogBase(10, 100), 1e-4)
}

func TestLog2Int(t *testing.T) {
	tests := []struct {
		x    uint32
		want uint32
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{1024, 10},
		{1<<31 + 5, 31},
	}
	for _, tt := range tests {
		if got := Log2Int(tt.x); got != tt.want {
			t.Errorf("Log2Int(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestExp(t *testing.T) {
	assert.Equal(t, float32(1), Exp(0))
	sweep(t, "Exp", -20, 20, 10000, Exp, stdmath.Exp, 1e-4, true)
	sweep(t, "Exp2", -20, 20, 1000, Exp2, stdmath.Exp2, 1e-4, true)
	sweep(t, "Exp10", -6, 6, 1000, Exp10, func(x float64) float64 { return stdmath.Pow(10, x) }, 1e-4, true)
}

func TestPow(t *testing.T) {
	assert.InEpsilon(t, 8, Pow(2, 3), 1e-4)
	assert.InEpsilon(t, 3, Pow(9, 0.5), 1e-4)
	assert.InEpsilon(t, 0.25, Pow(4, -1), 1e-4)
}

func TestSin(t *testing.T) {
	assert.Equal(t, float32(0), Sin(0))
	sweep(t, "Sin", -2*stdmath.Pi, 2*stdmath.Pi, 10000, Sin, stdmath.Sin, 1e-4, false)
	for _, x := range []float32{0.3, 1.2, 2.5, 4.1, 6} {
		assert.Equal(t, -Sin(x), Sin(-x), "Sin is odd, x=%v", x)
	}
}

func TestCos(t *testing.T) {
	assert.Equal(t, float32(1), Cos(0))
	sweep(t, "Cos", -2*stdmath.Pi, 2*stdmath.Pi, 10000, Cos, stdmath.Cos, 1e-4, false)
}

func TestTan(t *testing.T) {
	sweep(t, "Tan", -1.4, 1.4, 10000, Tan, stdmath.Tan, 1e-3, true)
	// The period is Pi, so arguments beyond the first quadrant reduce too.
	sweep(t, "Tan shifted", 1.8, 4.4, 1000, Tan, stdmath.Tan, 1e-3, true)
	assert.Less(t, Tan(-0.5), float32(0))
}

func TestReciprocalTrig(t *testing.T) {
	x := float32(0.7)
	assert.Equal(t, 1/Tan(x), Cot(x))
	assert.Equal(t, 1/Cos(x), Sec(x))
	assert.Equal(t, 1/Sin(x), Csc(x))
}

func TestAsin(t *testing.T) {
	assert.Equal(t, HalfPi, Asin(1))
	assert.Equal(t, -HalfPi, Asin(-1))
	assert.Equal(t, float32(0), Asin(0))
	sweep(t, "Asin", -0.985, 0.985, 10000, Asin, stdmath.Asin, 1e-2, false)
	sweep(t, "Acos", -0.985, 0.985, 1000, Acos, stdmath.Acos, 1e-2, false)
}

func TestAsinRegions(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		tol  float64
	}{
		{"newton", 0.5, 1e-4},
		{"newton edge", 0.7, 1e-3},
		{"taylor at 0.8", 0.8, 1e-4},
		{"taylor at 0.95", 0.95, 1e-4},
		{"negative", -0.8, 1e-4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Asin(tt.x)
			want := stdmath.Asin(float64(tt.x))
			if stdmath.Abs(float64(got)-want) > tt.tol {
				t.Errorf("Asin(%v) = %v, want %v", tt.x, got, want)
			}
		})
	}
}

func TestAtan(t *testing.T) {
	sweep(t, "Atan", -1, 1, 10000, Atan, stdmath.Atan, 2e-3, false)
	assert.Equal(t, -Atan(0.4), Atan(-0.4))
	sweep(t, "Acot", -1, 1, 1000, Acot, func(x float64) float64 { return stdmath.Pi/2 - stdmath.Atan(x) }, 2e-3, false)
}

func TestAsecAcsc(t *testing.T) {
	assert.InDelta(t, stdmath.Acos(0.5), Asec(2), 1e-3)
	assert.InDelta(t, stdmath.Asin(0.5), Acsc(2), 1e-3)
}
