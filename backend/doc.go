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

// Package backend selects and runs the inner loops used by the vector,
// matrix and complex types.
//
// Every kernel is a package-level function variable that starts out pointing
// at a portable Base* implementation. At init time the CPU is probed with
// golang.org/x/sys/cpu (or simd/archsimd when built with GOEXPERIMENT=simd)
// and faster kernels replace the defaults when the dispatch level allows it.
// The Base* implementations are always correct and are what runs when
// FMATH_NO_SIMD is set or FMATH_BACKEND=scalar.
//
// The generic entry points (Add, Dot, MatVec, ...) switch on the element type
// and call the matching function variable, so callers never pick a kernel by
// hand.
package backend
