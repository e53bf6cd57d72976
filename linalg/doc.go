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

// Package linalg provides fixed-size vectors, matrices and complex numbers.
//
// Dimensions are part of the type. A Vector[float32, D3] and a
// Vector[float32, D4] are different types, and Mul only accepts matrices whose
// inner dimensions agree, so shape mismatches are compile errors rather than
// runtime checks:
//
//	a := linalg.NewMatrix[float32, linalg.D2, linalg.D3](1, 2, 3, 4, 5, 6)
//	b := linalg.Identity[float32, linalg.D3]()
//	c := linalg.Mul(a, b) // Matrix[float32, D2, D3]
//
// All types are values: copying a Vector or Matrix copies its elements and the
// zero value is the zero vector or matrix. Storage is a fixed array of MaxDim
// elements, so a Vector never allocates.
//
// Float32 lengths and normalisation go through the fmath approximations;
// float64 uses the standard library. Element loops run on the kernels chosen
// by the backend package.
package linalg
