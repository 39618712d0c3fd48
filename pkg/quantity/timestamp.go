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

// ErrNegativeTimestamp is returned when a Timestamp would be constructed or
// computed as a negative number of seconds since midnight.
var ErrNegativeTimestamp = errors.New("quantity: timestamp cannot be negative")

// ErrTimestampOutOfRange is returned when a Timestamp would fall beyond the
// year-3000 bound this module treats as an unreachable sentinel horizon.
var ErrTimestampOutOfRange = errors.New("quantity: timestamp exceeds year-3000 bound")

// maxTimestampSeconds is the number of seconds between the Unix epoch and
// 3000-01-01T00:00:00Z. Any Timestamp beyond this is rejected: it can only
// be the result of a runaway computation, since no real plan horizon
// approaches it.
const maxTimestampSeconds int64 = 32503680000

// Timestamp is a non-negative count of seconds since the Unix epoch.
type Timestamp struct {
	seconds int64
}

// NewTimestamp constructs a Timestamp from a count of seconds since the
// epoch, rejecting negative values and values beyond the year-3000 bound.
func NewTimestamp(seconds int64) (Timestamp, error) {
	if seconds < 0 {
		return Timestamp{}, fmt.Errorf("%w: %d", ErrNegativeTimestamp, seconds)
	}
	if seconds > maxTimestampSeconds {
		return Timestamp{}, fmt.Errorf("%w: %d", ErrTimestampOutOfRange, seconds)
	}
	return Timestamp{seconds: seconds}, nil
}

// Midnight returns the reference origin timestamp, Timestamp(0). Every
// UniqueTask offset in this system is measured from and promoted back to an
// absolute Timestamp against this one fixed origin; it is not the calendar
// midnight of any particular period.
func Midnight() Timestamp { return Timestamp{seconds: 0} }

// Seconds returns the timestamp as seconds since the epoch.
func (t Timestamp) Seconds() int64 { return t.seconds }

// Add returns t shifted forward by d.
func (t Timestamp) Add(d Duration) Timestamp {
	return Timestamp{seconds: t.seconds + d.seconds}
}

// Sub returns the Duration between two timestamps, failing with
// ErrNegativeDuration if other is after t.
func (t Timestamp) Sub(other Timestamp) (Duration, error) {
	delta := t.seconds - other.seconds
	if delta < 0 {
		return Duration{}, fmt.Errorf("%w: %d - %d", ErrNegativeDuration, t.seconds, other.seconds)
	}
	return Duration{seconds: delta}, nil
}

// SubDuration returns t shifted backward by d, failing with
// ErrNegativeTimestamp if that would land before the epoch. Subtraction is
// never saturated to zero: a result that would go negative is rejected
// outright, per the non-negative Timestamp contract.
func (t Timestamp) SubDuration(d Duration) (Timestamp, error) {
	result := t.seconds - d.seconds
	if result < 0 {
		return Timestamp{}, fmt.Errorf("%w: %d - %d", ErrNegativeTimestamp, t.seconds, d.seconds)
	}
	return Timestamp{seconds: result}, nil
}

// Cmp returns -1, 0, or 1 as t is before, equal to, or after other.
func (t Timestamp) Cmp(other Timestamp) int {
	switch {
	case t.seconds < other.seconds:
		return -1
	case t.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

// Before reports whether t < other.
func (t Timestamp) Before(other Timestamp) bool { return t.seconds < other.seconds }

// After reports whether t > other.
func (t Timestamp) After(other Timestamp) bool { return t.seconds > other.seconds }

// Equal reports whether t == other.
func (t Timestamp) Equal(other Timestamp) bool { return t.seconds == other.seconds }

func (t Timestamp) String() string {
	return fmt.Sprintf("%ds", t.seconds)
}
