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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipe(t *testing.T) {
	p, err := NewPipe[float32](1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []float32{1, 2, 3}, p.Values())

	_, err = NewPipe[float32](1, 2, 3, 4, 5)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestPipeAppend(t *testing.T) {
	p := NewVector[float32, D2](1, 2).Pipe()
	require.NoError(t, p.Append(3))
	v := FromPipe[float32, D3](p)
	assert.Equal(t, NewVector[float32, D3](1, 2, 3), v)

	require.NoError(t, p.Append(4))
	err := p.Append(5)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 4, capErr.Len)
	assert.Equal(t, 1, capErr.Added)
	assert.Equal(t, []float32{1, 2, 3, 4}, p.Values(), "failed append leaves the pipe unchanged")
}

func TestPipeConcat(t *testing.T) {
	p := NewVector[int32, D2](1, 2).Pipe()
	q := NewVector[int32, D2](3, 4).Pipe()
	require.NoError(t, p.Concat(q))
	assert.Equal(t, NewVector[int32, D4](1, 2, 3, 4), FromPipe[int32, D4](p))

	before := p.Values()
	err := p.Concat(NewVector[int32, D1](5).Pipe())
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, before, p.Values())
	assert.Contains(t, err.Error(), "capacity 4")
}

func TestFromPipeShapes(t *testing.T) {
	p, err := NewPipe[float64](7)
	require.NoError(t, err)

	// Shorter pipes zero-fill, longer ones truncate.
	assert.Equal(t, NewVector[float64, D3](7, 0, 0), FromPipe[float64, D3](p))
	full := NewVector[float64, D4](1, 2, 3, 4).Pipe()
	assert.Equal(t, NewVector[float64, D2](1, 2), FromPipe[float64, D2](full))
}
