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
	"fmt"
)

// ErrCapacityExceeded is returned when combining values into a Pipe would
// exceed its capacity.
var ErrCapacityExceeded = errors.New("linalg: pipe capacity exceeded")

// CapacityError describes a rejected Pipe combination. It matches
// ErrCapacityExceeded with errors.Is.
type CapacityError struct {
	Len   int // elements already in the pipe
	Added int // elements that were being added
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("linalg: cannot add %d elements to a pipe holding %d (capacity %d)", e.Added, e.Len, PipeCapacity)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
