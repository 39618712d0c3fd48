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

// ErrNegativeMemory is returned whenever a Memory subtraction would produce
// a negative byte count.
var ErrNegativeMemory = errors.New("quantity: memory cannot be negative")

// Memory is a non-negative count of bytes for the configuration boundary:
// a seam that expresses a pool's capacity in actual bytes converts it to a
// Scalar once, at construction. Scheduling itself only ever sees Scalar.
type Memory struct {
	bytes int64
}

// Bytes constructs a Memory quantity from a count of bytes.
func Bytes(n int64) Memory { return Memory{bytes: n} }

// KiB constructs a Memory quantity from a count of kibibytes.
func KiB(n int64) Memory { return Memory{bytes: n * 1024} }

// MiB constructs a Memory quantity from a count of mebibytes.
func MiB(n int64) Memory { return Memory{bytes: n * 1024 * 1024} }

// GiB constructs a Memory quantity from a count of gibibytes.
func GiB(n int64) Memory { return Memory{bytes: n * 1024 * 1024 * 1024} }

// ZeroMemory is the zero quantity.
var ZeroMemory = Memory{}

// Bytes returns the quantity as a raw byte count.
func (m Memory) Bytes() int64 { return m.bytes }

// Add returns m + other.
func (m Memory) Add(other Memory) Memory {
	return Memory{bytes: m.bytes + other.bytes}
}

// Sub returns m - other, failing with ErrNegativeMemory if the result would
// be negative.
func (m Memory) Sub(other Memory) (Memory, error) {
	result := m.bytes - other.bytes
	if result < 0 {
		return Memory{}, fmt.Errorf("%w: %d - %d", ErrNegativeMemory, m.bytes, other.bytes)
	}
	return Memory{bytes: result}, nil
}

// Cmp returns -1, 0, or 1 as m is less than, equal to, or greater than other.
func (m Memory) Cmp(other Memory) int {
	switch {
	case m.bytes < other.bytes:
		return -1
	case m.bytes > other.bytes:
		return 1
	default:
		return 0
	}
}

// Less reports whether m < other.
func (m Memory) Less(other Memory) bool { return m.bytes < other.bytes }

// LessOrEqual reports whether m <= other.
func (m Memory) LessOrEqual(other Memory) bool { return m.bytes <= other.bytes }

// Equal reports whether m == other.
func (m Memory) Equal(other Memory) bool { return m.bytes == other.bytes }

// IsZero reports whether the quantity is exactly zero.
func (m Memory) IsZero() bool { return m.bytes == 0 }

func (m Memory) String() string {
	return fmt.Sprintf("%db", m.bytes)
}
