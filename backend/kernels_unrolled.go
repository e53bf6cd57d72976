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

// Unrolled kernels process four lanes per iteration, matching a 128-bit
// register of float32. The compiler keeps the four accumulators of the
// reductions in registers, which breaks the add dependency chain of BaseDot.
// They replace the Base* kernels on any level above DispatchScalar.

func unrolledAdd[T Lanes](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+4 <= n; i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		d[0] = x[0] + y[0]
		d[1] = x[1] + y[1]
		d[2] = x[2] + y[2]
		d[3] = x[3] + y[3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func unrolledSub[T Lanes](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+4 <= n; i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		d[0] = x[0] - y[0]
		d[1] = x[1] - y[1]
		d[2] = x[2] - y[2]
		d[3] = x[3] - y[3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func unrolledMul[T Lanes](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+4 <= n; i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		d[0] = x[0] * y[0]
		d[1] = x[1] * y[1]
		d[2] = x[2] * y[2]
		d[3] = x[3] * y[3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func unrolledScale[T Lanes](dst, a []T, s T) {
	n := min(len(dst), len(a))
	i := 0
	for ; i+4 <= n; i += 4 {
		d, x := dst[i:i+4:i+4], a[i:i+4:i+4]
		d[0] = x[0] * s
		d[1] = x[1] * s
		d[2] = x[2] * s
		d[3] = x[3] * s
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func unrolledDot[T Lanes](a, b []T) T {
	n := min(len(a), len(b))
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= n; i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
		s2 += x[2] * y[2]
		s3 += x[3] * y[3]
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func unrolledMatVec[T Lanes](m []T, rows, cols int, v, result []T) {
	checkMatVec(len(m), rows, cols, len(v), cols, len(result), rows)
	for i := range rows {
		result[i] = unrolledDot(m[i*cols:(i+1)*cols], v[:cols])
	}
}
