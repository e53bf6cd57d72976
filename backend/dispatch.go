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

import (
	"unsafe"

	"github.com/ajroetker/go-fmath/internal/config"
)

// DispatchLevel represents the instruction set the kernels are tuned for.
type DispatchLevel int

const (
	// DispatchScalar indicates pure Go Base* kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		// Scalar mode keeps 16-byte groups, the size of a 4-lane float32 vector.
		return 16
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// detectedLevel is what the CPU supports, before any override.
var detectedLevel DispatchLevel

// CurrentLevel returns the instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// DetectedLevel returns the instruction set the CPU supports, ignoring
// FMATH_NO_SIMD, FMATH_BACKEND and ForceScalar.
func DetectedLevel() DispatchLevel {
	return detectedLevel
}

// CurrentWidth returns the register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns a human-readable name for the current target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// MaxLanes returns the number of lanes of type T in one register at the
// current width.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 {
		return 0
	}
	return CurrentWidth() / size
}

// scalarForced reports whether the environment asks for the scalar kernels.
func scalarForced() bool {
	cfg := config.LoadOrDefault()
	return cfg.Backend.NoSIMD || cfg.Backend.Mode == config.ModeScalar
}

// setLevel records the detected level and installs the kernels for it,
// honouring the environment override.
func setLevel(detected DispatchLevel) {
	detectedLevel = detected
	if scalarForced() {
		detected = DispatchScalar
	}
	install(detected)
}

// ForceScalar switches every kernel to its Base* implementation. It returns
// a function restoring the previous selection. It is meant for tests and
// benchmarks and must not race with kernel calls.
func ForceScalar() (restore func()) {
	prev := currentLevel
	install(DispatchScalar)
	return func() { install(prev) }
}
