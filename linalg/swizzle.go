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

package linalg

// Swizzle2 gathers components i and j into a 2-dimensional vector. Indices
// may repeat. It panics if an index is not in [0, N).
//
//	v := linalg.NewVector[float32, linalg.D4](1, 2, 3, 4)
//	v.Swizzle2(3, 0) // (4, 1)
func (a Vector[T, N]) Swizzle2(i, j int) Vector[T, D2] {
	s := a.lanes()
	return Vector[T, D2]{v: [MaxDim]T{s[i], s[j]}}
}

// Swizzle3 gathers three components into a 3-dimensional vector.
func (a Vector[T, N]) Swizzle3(i, j, k int) Vector[T, D3] {
	s := a.lanes()
	return Vector[T, D3]{v: [MaxDim]T{s[i], s[j], s[k]}}
}

// Swizzle4 gathers four components into a 4-dimensional vector.
func (a Vector[T, N]) Swizzle4(i, j, k, l int) Vector[T, D4] {
	s := a.lanes()
	return Vector[T, D4]{v: [MaxDim]T{s[i], s[j], s[k], s[l]}}
}
