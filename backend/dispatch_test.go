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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 16},
		{DispatchSSE2, "sse2", 16},
		{DispatchAVX2, "avx2", 32},
		{DispatchAVX512, "avx512", 64},
		{DispatchNEON, "neon", 16},
		{DispatchLevel(99), "unknown", 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.level.String())
		assert.Equal(t, tt.width, tt.level.Width())
	}
}

func TestCurrentLevel(t *testing.T) {
	t.Logf("detected %s, running %s (%d bytes)", DetectedLevel(), CurrentName(), CurrentWidth())
	assert.Equal(t, CurrentLevel().String(), CurrentName())
	assert.LessOrEqual(t, CurrentLevel(), DetectedLevel())
	assert.Equal(t, CurrentWidth()/4, MaxLanes[float32]())
	assert.Equal(t, CurrentWidth()/8, MaxLanes[float64]())
}

func TestForceScalar(t *testing.T) {
	before := CurrentLevel()
	restore := ForceScalar()
	assert.Equal(t, DispatchScalar, CurrentLevel())
	assert.Equal(t, "scalar", CurrentName())
	restore()
	assert.Equal(t, before, CurrentLevel())
}

func TestInstallHonoursScalarOverride(t *testing.T) {
	t.Setenv("FMATH_NO_SIMD", "1")
	prev := CurrentLevel()
	defer install(prev)

	setLevel(DetectedLevel())
	assert.Equal(t, DispatchScalar, CurrentLevel())
	assert.Equal(t, DetectedLevel(), detectedLevel)
}
