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

package fmath

import (
	"errors"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ErrNoAntiderivative is returned by Antiderivative for functions that have
// no entry in the calculus table.
var ErrNoAntiderivative = errors.New("fmath: no known antiderivative")

// Central difference step used by Derivative when the table has no entry.
const (
	diffStep32 = 0.99e-6
	diffStep64 = 1e-12
)

// calculusEntry holds the closed forms known for a function.
type calculusEntry[T constraints.Float] struct {
	derivative     func(T) T
	antiderivative func(T) T
}

var (
	table32 = map[uintptr]calculusEntry[float32]{
		funcKey(Sin): {derivative: Cos, antiderivative: func(x float32) float32 { return -Cos(x) }},
		funcKey(Cos): {derivative: func(x float32) float32 { return -Sin(x) }, antiderivative: Sin},
	}
	table64 = map[uintptr]calculusEntry[float64]{
		funcKey(math.Sin): {derivative: math.Cos, antiderivative: func(x float64) float64 { return -math.Cos(x) }},
		funcKey(math.Cos): {derivative: func(x float64) float64 { return -math.Sin(x) }, antiderivative: math.Sin},
		funcKey(math.Exp): {derivative: math.Exp, antiderivative: math.Exp},
	}
)

// funcKey identifies a top-level function by its code pointer. Closures
// created at different sites never share a key with Sin or Cos.
func funcKey[F any](f F) uintptr {
	return reflect.ValueOf(f).Pointer()
}

func lookup[T constraints.Float](f func(T) T) (calculusEntry[T], bool) {
	key := funcKey(f)
	if e, ok := find[T](table32, key); ok {
		return e, true
	}
	return find[T](table64, key)
}

// find succeeds only when the table's element type is T.
func find[T, U constraints.Float](table map[uintptr]calculusEntry[U], key uintptr) (calculusEntry[T], bool) {
	e, ok := table[key]
	if !ok {
		return calculusEntry[T]{}, false
	}
	ce, ok := any(e).(calculusEntry[T])
	return ce, ok
}

// Sum returns f(i) + f(i+1) + ... + f(n). It returns 0 when i > n.
func Sum[T constraints.Float](f func(T) T, i, n int) T {
	var s T
	for ; i <= n; i++ {
		s += f(T(i))
	}
	return s
}

// Product returns f(i) * f(i+1) * ... * f(n). It returns 1 when i > n.
func Product[T constraints.Float](f func(T) T, i, n int) T {
	s := T(1)
	for ; i <= n; i++ {
		s *= f(T(i))
	}
	return s
}

// Derivative returns f'(x). Sin and Cos (and math.Sin, math.Cos, math.Exp for
// float64) use their closed form; any other function falls back to the
// central difference (f(x+h) - f(x-h)) / 2h, which is coarse in float32.
func Derivative[T constraints.Float](f func(T) T, x T) T {
	if e, ok := lookup(f); ok {
		return e.derivative(x)
	}
	var h T
	switch any(h).(type) {
	case float32:
		h = T(diffStep32)
	default:
		h = T(diffStep64)
	}
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Antiderivative returns F(x) for a known antiderivative F of f, with zero
// integration constant. It returns ErrNoAntiderivative when f is not in the
// table.
func Antiderivative[T constraints.Float](f func(T) T, x T) (T, error) {
	e, ok := lookup(f)
	if !ok {
		return 0, ErrNoAntiderivative
	}
	return e.antiderivative(x), nil
}
