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

//go:build amd64 && goexperiment.simd

package backend

import (
	"simd/archsimd"

	"github.com/ajroetker/go-fmath/fmath"
)

// AVX2 constants for the bit-trick roots, see fmath.Sqrt and fmath.RSqrt.
var (
	avxSqrtMagic  = archsimd.BroadcastInt32x8(0x1fbd1df5)
	avxRSqrtMagic = archsimd.BroadcastInt32x8(0x5f375a86)
	avxHalf       = archsimd.BroadcastFloat32x8(0.5)
	avxThreeHalf  = archsimd.BroadcastFloat32x8(1.5)
)

func installArch(level DispatchLevel) {
	if level < DispatchAVX2 {
		return
	}
	AddFloat32 = addFloat32AVX2
	SubFloat32 = subFloat32AVX2
	MulFloat32 = mulFloat32AVX2
	ScaleFloat32 = scaleFloat32AVX2
	DotFloat32 = dotFloat32AVX2
	SqrtFloat32 = sqrtFloat32AVX2
	RSqrtFloat32 = rsqrtFloat32AVX2
}

func addFloat32AVX2(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		x := archsimd.LoadFloat32x8Slice(a[i:])
		y := archsimd.LoadFloat32x8Slice(b[i:])
		x.Add(y).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subFloat32AVX2(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		x := archsimd.LoadFloat32x8Slice(a[i:])
		y := archsimd.LoadFloat32x8Slice(b[i:])
		x.Sub(y).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulFloat32AVX2(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		x := archsimd.LoadFloat32x8Slice(a[i:])
		y := archsimd.LoadFloat32x8Slice(b[i:])
		x.Mul(y).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func scaleFloat32AVX2(dst, a []float32, s float32) {
	n := min(len(dst), len(a))
	vs := archsimd.BroadcastFloat32x8(s)
	i := 0
	for ; i+8 <= n; i += 8 {
		archsimd.LoadFloat32x8Slice(a[i:]).Mul(vs).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func dotFloat32AVX2(a, b []float32) float32 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastFloat32x8(0)
	i := 0
	for ; i+8 <= n; i += 8 {
		x := archsimd.LoadFloat32x8Slice(a[i:])
		y := archsimd.LoadFloat32x8Slice(b[i:])
		acc = x.MulAdd(y, acc)
	}
	var lanes [8]float32
	acc.StoreSlice(lanes[:])
	sum := ((lanes[0] + lanes[1]) + (lanes[2] + lanes[3])) + ((lanes[4] + lanes[5]) + (lanes[6] + lanes[7]))
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// sqrtFloat32AVX2 runs the fmath.Sqrt algorithm on eight lanes.
func sqrtFloat32AVX2(dst, src []float32) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		x := archsimd.LoadFloat32x8Slice(src[i:])
		half := x.Mul(avxHalf)
		y := x.AsInt32x8().ShiftAllRight(1).Add(avxSqrtMagic).AsFloat32x8()
		y = y.Mul(avxHalf).Add(half.Div(y))
		y = y.Mul(avxHalf).Add(half.Div(y))
		y.StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = fmath.Sqrt(src[i])
	}
}

// rsqrtFloat32AVX2 runs the fmath.RSqrt algorithm on eight lanes.
func rsqrtFloat32AVX2(dst, src []float32) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		x := archsimd.LoadFloat32x8Slice(src[i:])
		half := x.Mul(avxHalf)
		y := avxRSqrtMagic.Sub(x.AsInt32x8().ShiftAllRight(1)).AsFloat32x8()
		y = y.Mul(avxThreeHalf.Sub(half.Mul(y).Mul(y)))
		y = y.Mul(avxThreeHalf.Sub(half.Mul(y).Mul(y)))
		y.StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = fmath.RSqrt(src[i])
	}
}
