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

package backend

// Kernel function variables. They hold the Base* kernels until install picks
// the implementations for the dispatch level.
var (
	AddFloat32    = BaseAdd[float32]
	SubFloat32    = BaseSub[float32]
	MulFloat32    = BaseMul[float32]
	ScaleFloat32  = BaseScale[float32]
	DotFloat32    = BaseDot[float32]
	MatVecFloat32 = BaseMatVec[float32]
	SqrtFloat32   = BaseSqrt
	RSqrtFloat32  = BaseRSqrt

	AddFloat64    = BaseAdd[float64]
	SubFloat64    = BaseSub[float64]
	MulFloat64    = BaseMul[float64]
	ScaleFloat64  = BaseScale[float64]
	DotFloat64    = BaseDot[float64]
	MatVecFloat64 = BaseMatVec[float64]

	AddInt32   = BaseAdd[int32]
	SubInt32   = BaseSub[int32]
	ScaleInt32 = BaseScale[int32]
	DotInt32   = BaseDot[int32]
)

// install selects the kernels for level and records it as current.
func install(level DispatchLevel) {
	currentLevel = level

	AddFloat32, SubFloat32, MulFloat32 = BaseAdd[float32], BaseSub[float32], BaseMul[float32]
	ScaleFloat32, DotFloat32, MatVecFloat32 = BaseScale[float32], BaseDot[float32], BaseMatVec[float32]
	SqrtFloat32, RSqrtFloat32 = BaseSqrt, BaseRSqrt
	AddFloat64, SubFloat64, MulFloat64 = BaseAdd[float64], BaseSub[float64], BaseMul[float64]
	ScaleFloat64, DotFloat64, MatVecFloat64 = BaseScale[float64], BaseDot[float64], BaseMatVec[float64]
	AddInt32, SubInt32, ScaleInt32, DotInt32 = BaseAdd[int32], BaseSub[int32], BaseScale[int32], BaseDot[int32]

	if level == DispatchScalar {
		return
	}

	AddFloat32, SubFloat32, MulFloat32 = unrolledAdd[float32], unrolledSub[float32], unrolledMul[float32]
	ScaleFloat32, DotFloat32, MatVecFloat32 = unrolledScale[float32], unrolledDot[float32], unrolledMatVec[float32]
	AddFloat64, SubFloat64, MulFloat64 = unrolledAdd[float64], unrolledSub[float64], unrolledMul[float64]
	ScaleFloat64, DotFloat64, MatVecFloat64 = unrolledScale[float64], unrolledDot[float64], unrolledMatVec[float64]
	AddInt32, SubInt32, ScaleInt32, DotInt32 = unrolledAdd[int32], unrolledSub[int32], unrolledScale[int32], unrolledDot[int32]

	installArch(level)
}

// Add computes dst[i] = a[i] + b[i] with the kernel for T.
func Add[T Lanes](dst, a, b []T) {
	switch d := any(dst).(type) {
	case []float32:
		AddFloat32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		AddFloat64(d, any(a).([]float64), any(b).([]float64))
	case []int32:
		AddInt32(d, any(a).([]int32), any(b).([]int32))
	default:
		BaseAdd(dst, a, b)
	}
}

// Sub computes dst[i] = a[i] - b[i] with the kernel for T.
func Sub[T Lanes](dst, a, b []T) {
	switch d := any(dst).(type) {
	case []float32:
		SubFloat32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		SubFloat64(d, any(a).([]float64), any(b).([]float64))
	case []int32:
		SubInt32(d, any(a).([]int32), any(b).([]int32))
	default:
		BaseSub(dst, a, b)
	}
}

// Mul computes the element-wise product dst[i] = a[i] * b[i].
func Mul[T Lanes](dst, a, b []T) {
	switch d := any(dst).(type) {
	case []float32:
		MulFloat32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		MulFloat64(d, any(a).([]float64), any(b).([]float64))
	default:
		BaseMul(dst, a, b)
	}
}

// Scale computes dst[i] = a[i] * s.
func Scale[T Lanes](dst, a []T, s T) {
	switch d := any(dst).(type) {
	case []float32:
		ScaleFloat32(d, any(a).([]float32), any(s).(float32))
	case []float64:
		ScaleFloat64(d, any(a).([]float64), any(s).(float64))
	case []int32:
		ScaleInt32(d, any(a).([]int32), any(s).(int32))
	default:
		BaseScale(dst, a, s)
	}
}

// Div computes dst[i] = a[i] / s. Integer division truncates.
func Div[T Lanes](dst, a []T, s T) {
	BaseDiv(dst, a, s)
}

// Dot returns the dot product of a and b.
func Dot[T Lanes](a, b []T) T {
	switch x := any(a).(type) {
	case []float32:
		return any(DotFloat32(x, any(b).([]float32))).(T)
	case []float64:
		return any(DotFloat64(x, any(b).([]float64))).(T)
	case []int32:
		return any(DotInt32(x, any(b).([]int32))).(T)
	default:
		return BaseDot(a, b)
	}
}

// MatVec computes result = M * v for a row-major rows×cols matrix.
func MatVec[T Lanes](m []T, rows, cols int, v, result []T) {
	switch x := any(m).(type) {
	case []float32:
		MatVecFloat32(x, rows, cols, any(v).([]float32), any(result).([]float32))
	case []float64:
		MatVecFloat64(x, rows, cols, any(v).([]float64), any(result).([]float64))
	default:
		BaseMatVec(m, rows, cols, v, result)
	}
}

// MatTVec computes result = Mᵀ * v for a row-major rows×cols matrix.
func MatTVec[T Lanes](m []T, rows, cols int, v, result []T) {
	BaseMatTVec(m, rows, cols, v, result)
}

// MatMul computes C = A * B with A m×k, B k×n and C m×n, all row-major.
func MatMul[T Lanes](a, b, c []T, m, n, k int) {
	BaseMatMul(a, b, c, m, n, k)
}

// Transpose transposes the row-major m×k matrix src into dst.
func Transpose[T Lanes](src []T, m, k int, dst []T) {
	BaseTranspose(src, m, k, dst)
}

// Sqrt computes dst[i] ≈ sqrt(src[i]) with the fmath approximation.
func Sqrt(dst, src []float32) {
	SqrtFloat32(dst, src)
}

// RSqrt computes dst[i] ≈ 1/sqrt(src[i]) with the fmath approximation.
func RSqrt(dst, src []float32) {
	RSqrtFloat32(dst, src)
}
