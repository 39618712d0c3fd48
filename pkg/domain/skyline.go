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

package domain

import (
	"errors"
	"fmt"

	"github.com/clockworksched/planner/pkg/quantity"
)

// ErrNonPositiveBlockDuration is returned when a SkylineBlock is
// constructed with a zero or negative duration.
var ErrNonPositiveBlockDuration = errors.New("domain: skyline block duration must be positive")

// ErrNegativeBlockSize is returned when a SkylineBlock is constructed with
// a negative resource size.
var ErrNegativeBlockSize = errors.New("domain: skyline block size cannot be negative")

// SkylineBlock is one contiguous segment of a task's resource profile: for
// Duration seconds starting wherever the block lands, the task occupies
// Size units of whatever scalar resource the enclosing pool tracks.
type SkylineBlock struct {
	Duration quantity.Duration
	Size     quantity.Scalar
}

// NewSkylineBlock constructs a SkylineBlock, rejecting a non-positive
// duration or a negative size.
func NewSkylineBlock(duration quantity.Duration, size quantity.Scalar) (SkylineBlock, error) {
	if duration.Cmp(quantity.Zero) <= 0 {
		return SkylineBlock{}, fmt.Errorf("%w: %s", ErrNonPositiveBlockDuration, duration)
	}
	if size.Cmp(quantity.ZeroScalar) < 0 {
		return SkylineBlock{}, fmt.Errorf("%w: %s", ErrNegativeBlockSize, size)
	}
	return SkylineBlock{Duration: duration, Size: size}, nil
}

// Skyline is the ordered sequence of resource-usage blocks a task walks
// through from its start time onward.
type Skyline []SkylineBlock

// TotalDuration returns the sum of every block's duration: the total span
// of wall-clock time the skyline occupies once placed.
func (s Skyline) TotalDuration() quantity.Duration {
	total := quantity.Zero
	for _, block := range s {
		total = total.Add(block.Duration)
	}
	return total
}

// RightBasedMetadata is the scheduling window and resource shape for one
// UniqueTask under the right-based algorithm: the task may start anywhere
// in [MinStart, MaxStart], walking through Skyline once placed.
type RightBasedMetadata struct {
	MinStart quantity.Duration
	MaxStart quantity.Duration
	Skyline  Skyline
}

// ErrMaxStartBeforeMinStart is returned when RightBasedMetadata is
// constructed with a window that ends before it begins.
var ErrMaxStartBeforeMinStart = errors.New("domain: max start time precedes min start time")

// NewRightBasedMetadata constructs RightBasedMetadata, rejecting a window
// whose max start precedes its min start.
func NewRightBasedMetadata(minStart, maxStart quantity.Duration, skyline Skyline) (RightBasedMetadata, error) {
	if maxStart.Cmp(minStart) < 0 {
		return RightBasedMetadata{}, fmt.Errorf("%w: min=%s max=%s", ErrMaxStartBeforeMinStart, minStart, maxStart)
	}
	return RightBasedMetadata{MinStart: minStart, MaxStart: maxStart, Skyline: skyline}, nil
}

// OrderKey returns the (MinStart, MaxStart) pair scheduling sorts on.
func (m RightBasedMetadata) OrderKey() (quantity.Duration, quantity.Duration) {
	return m.MinStart, m.MaxStart
}
