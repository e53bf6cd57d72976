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

// PipeCapacity is the number of elements a Pipe can hold.
const PipeCapacity = MaxDim

// Pipe accumulates scalars and vector components in order, up to
// PipeCapacity elements. It is used to build a vector of one dimension out
// of smaller pieces:
//
//	p := xy.Pipe()       // Vec2f
//	err := p.Append(z)
//	xyz := linalg.FromPipe[float32, linalg.D3](p)
type Pipe[T Scalar] struct {
	data [PipeCapacity]T
	n    int
}

// NewPipe returns a pipe holding values. It fails with ErrCapacityExceeded
// when there are more than PipeCapacity values.
func NewPipe[T Scalar](values ...T) (Pipe[T], error) {
	var p Pipe[T]
	if len(values) > PipeCapacity {
		return p, &CapacityError{Len: 0, Added: len(values)}
	}
	p.n = copy(p.data[:], values)
	return p, nil
}

// Len returns the number of elements in the pipe.
func (p Pipe[T]) Len() int { return p.n }

// Values returns a copy of the elements.
func (p Pipe[T]) Values() []T {
	return append([]T(nil), p.data[:p.n]...)
}

// Append adds x. The pipe is unchanged when it is already full.
func (p *Pipe[T]) Append(x T) error {
	if p.n >= PipeCapacity {
		return &CapacityError{Len: p.n, Added: 1}
	}
	p.data[p.n] = x
	p.n++
	return nil
}

// Concat appends every element of q. The pipe is unchanged when the result
// would not fit.
func (p *Pipe[T]) Concat(q Pipe[T]) error {
	if p.n+q.n > PipeCapacity {
		return &CapacityError{Len: p.n, Added: q.n}
	}
	p.n += copy(p.data[p.n:], q.data[:q.n])
	return nil
}

// Pipe returns a pipe holding the N components of a.
func (a Vector[T, N]) Pipe() Pipe[T] {
	p := Pipe[T]{data: a.v, n: a.Len()}
	return p
}

// FromPipe builds an N-dimensional vector from the first N elements of p,
// zero-filling when p is shorter.
func FromPipe[T Scalar, N Dim](p Pipe[T]) Vector[T, N] {
	return NewVector[T, N](p.data[:p.n]...)
}
