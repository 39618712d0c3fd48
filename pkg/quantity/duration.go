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

// Package quantity provides the non-negative, checked-arithmetic value
// objects (Duration, Timestamp, Memory) that every other package in this
// module builds on.
package quantity

import (
	"errors"
	"fmt"
)

// ErrNegativeDuration is returned whenever a Duration subtraction would
// produce a negative number of seconds.
var ErrNegativeDuration = errors.New("quantity: duration cannot be negative")

// Duration is a non-negative, integer-second span of time. The zero value
// is zero seconds.
type Duration struct {
	seconds int64
}

// Seconds constructs a Duration from a count of seconds.
func Seconds(n int64) Duration { return Duration{seconds: n} }

// Minutes constructs a Duration from a count of minutes.
func Minutes(n int64) Duration { return Duration{seconds: n * 60} }

// Hours constructs a Duration from a count of hours.
func Hours(n int64) Duration { return Duration{seconds: n * 3600} }

// Days constructs a Duration from a count of days.
func Days(n int64) Duration { return Duration{seconds: n * 86400} }

// Zero is the zero-length Duration.
var Zero = Duration{}

// Seconds returns the duration as a whole number of seconds.
func (d Duration) Seconds() int64 { return d.seconds }

// Add returns d + other. Addition of two non-negative durations can never
// be negative, so this never fails.
func (d Duration) Add(other Duration) Duration {
	return Duration{seconds: d.seconds + other.seconds}
}

// Sub returns d - other, failing with ErrNegativeDuration if the result
// would be negative.
func (d Duration) Sub(other Duration) (Duration, error) {
	result := d.seconds - other.seconds
	if result < 0 {
		return Duration{}, fmt.Errorf("%w: %d - %d", ErrNegativeDuration, d.seconds, other.seconds)
	}
	return Duration{seconds: result}, nil
}

// Cmp returns -1, 0, or 1 as d is less than, equal to, or greater than other.
func (d Duration) Cmp(other Duration) int {
	switch {
	case d.seconds < other.seconds:
		return -1
	case d.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

// Less reports whether d < other.
func (d Duration) Less(other Duration) bool { return d.seconds < other.seconds }

// LessOrEqual reports whether d <= other.
func (d Duration) LessOrEqual(other Duration) bool { return d.seconds <= other.seconds }

// Equal reports whether d == other.
func (d Duration) Equal(other Duration) bool { return d.seconds == other.seconds }

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool { return d.seconds == 0 }

// Hash returns a stable hash key for use in maps keyed by Duration values
// that also need to be compared for equality outside the map (sorted
// output, test fixtures, and the like).
func (d Duration) Hash() int64 { return d.seconds }

func (d Duration) String() string {
	return fmt.Sprintf("%ds", d.seconds)
}
