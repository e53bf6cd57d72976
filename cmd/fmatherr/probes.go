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

package main

import (
	"math"

	"github.com/ajroetker/go-fmath/fmath"
)

type metric int

const (
	absolute metric = iota
	relative
)

func (m metric) String() string {
	if m == relative {
		return "rel"
	}
	return "abs"
}

// probe pairs an approximation with its reference, the domain it is
// documented on and the error bound it promises there.
type probe struct {
	name   string
	approx func(float32) float32
	exact  func(float64) float64
	lo, hi float64
	metric metric
	bound  float64
}

var probes = []probe{
	{"sqrt", fmath.Sqrt, math.Sqrt, 1e-3, 1e4, relative, 1e-4},
	{"rsqrt", fmath.RSqrt, func(x float64) float64 { return 1 / math.Sqrt(x) }, 1e-3, 1e4, relative, 1e-4},
	{"cbrt", fmath.Cbrt, math.Cbrt, -1e3, 1e3, relative, 1e-4},
	{"log", fmath.Log, math.Log, 1e-3, 1e3, absolute, 1e-4},
	{"log2", fmath.Log2, math.Log2, 1e-3, 1e3, absolute, 2e-4},
	{"log10", fmath.Log10, math.Log10, 1e-3, 1e3, absolute, 1e-4},
	{"exp", fmath.Exp, math.Exp, -20, 20, relative, 1e-4},
	{"exp2", fmath.Exp2, math.Exp2, -20, 20, relative, 1e-4},
	{"exp10", fmath.Exp10, func(x float64) float64 { return math.Pow(10, x) }, -8, 8, relative, 1e-4},
	{"sin", fmath.Sin, math.Sin, -2 * math.Pi, 2 * math.Pi, absolute, 1e-4},
	{"cos", fmath.Cos, math.Cos, -2 * math.Pi, 2 * math.Pi, absolute, 1e-4},
	{"tan", fmath.Tan, math.Tan, -1.4, 1.4, relative, 1e-3},
	{"asin", fmath.Asin, math.Asin, -0.985, 0.985, absolute, 1e-2},
	{"acos", fmath.Acos, math.Acos, -0.985, 0.985, absolute, 1e-2},
	{"atan", fmath.Atan, math.Atan, -1, 1, absolute, 2e-3},
}
