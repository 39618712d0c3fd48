/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package quantity

import (
	"errors"
	"fmt"
)

// ErrNegativeScalar is returned whenever a Scalar subtraction would produce
// a negative magnitude.
var ErrNegativeScalar = errors.New("quantity: scalar cannot be negative")

// Scalar is the abstract, non-negative floating-point resource magnitude a
// SkylineBlock's size and a pool's max_size are expressed in. It is
// deliberately not Memory: a pool's capacity is a unitless scalar (could be
// CPU-seconds, a slot count, or a fraction of a resource) rather than a
// byte count, and sizes may be fractional in a way an integer byte count
// cannot represent. Memory remains the typed quantity
// for the configuration boundary, where a concrete seam expresses capacity
// in actual bytes and converts to a Scalar once, at construction.
type Scalar struct {
	value float64
}

// NewScalar constructs a Scalar from a raw magnitude.
func NewScalar(value float64) Scalar { return Scalar{value: value} }

// ZeroScalar is the zero magnitude.
var ZeroScalar = Scalar{}

// Value returns the underlying float64 magnitude.
func (s Scalar) Value() float64 { return s.value }

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar {
	return Scalar{value: s.value + other.value}
}

// Sub returns s - other, failing with ErrNegativeScalar if the result
// would be negative.
func (s Scalar) Sub(other Scalar) (Scalar, error) {
	result := s.value - other.value
	if result < 0 {
		return Scalar{}, fmt.Errorf("%w: %g - %g", ErrNegativeScalar, s.value, other.value)
	}
	return Scalar{value: result}, nil
}

// Cmp returns -1, 0, or 1 as s is less than, equal to, or greater than
// other.
func (s Scalar) Cmp(other Scalar) int {
	switch {
	case s.value < other.value:
		return -1
	case s.value > other.value:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether the magnitude is exactly zero.
func (s Scalar) IsZero() bool { return s.value == 0 }

func (s Scalar) String() string {
	return fmt.Sprintf("%g", s.value)
}
