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

// Package skyline implements the binned resource accumulator that the
// right-based algorithm consults to decide whether a task's placement at a
// given start time fits alongside everything already scheduled.
package skyline

import (
	"errors"
	"fmt"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
)

// ErrBoundsExceeded is returned by Tracker.AddJob/RemoveJob when applying a
// job would push some bin's occupancy outside [0, max size].
var ErrBoundsExceeded = errors.New("skyline: operation would exceed tracker bounds")

// Tracker accumulates the resource footprint of every job placed on one
// pool, bucketed into fixed-width bins of Granularity. Within one job's
// skyline, blocks that share a bin take the max rather than their sum,
// mirroring how a single contiguous job occupies one level of a resource
// rather than stacking with itself at a block seam; separate jobs landing in
// the same bin add.
type Tracker struct {
	granularity quantity.Duration
	maxSize     quantity.Scalar
	series      map[int64]quantity.Scalar
}

// NewTracker constructs an empty Tracker with the given bin width and
// per-bin capacity.
func NewTracker(granularity quantity.Duration, maxSize quantity.Scalar) *Tracker {
	return &Tracker{
		granularity: granularity,
		maxSize:     maxSize,
		series:      make(map[int64]quantity.Scalar),
	}
}

// Granularity returns the bin width this tracker was constructed with.
func (t *Tracker) Granularity() quantity.Duration { return t.granularity }

// CanAdd reports whether placing the given skyline at startTime would stay
// within bounds, without mutating the tracker.
func (t *Tracker) CanAdd(startTime quantity.Timestamp, blocks domain.Skyline) bool {
	_, err := t.updatedSeries(startTime, blocks, add)
	return err == nil
}

// CanRemove reports whether retracting the given skyline from startTime
// would stay within bounds, without mutating the tracker.
func (t *Tracker) CanRemove(startTime quantity.Timestamp, blocks domain.Skyline) bool {
	_, err := t.updatedSeries(startTime, blocks, sub)
	return err == nil
}

// AddJob commits the given skyline's occupancy starting at startTime. It
// fails with ErrBoundsExceeded, leaving the tracker unmodified, if any bin
// would be pushed outside [0, max size].
func (t *Tracker) AddJob(startTime quantity.Timestamp, blocks domain.Skyline) error {
	updated, err := t.updatedSeries(startTime, blocks, add)
	if err != nil {
		return err
	}
	t.series = updated
	return nil
}

// RemoveJob retracts the given skyline's occupancy starting at startTime.
// It fails with ErrBoundsExceeded, leaving the tracker unmodified, if any
// bin would be pushed outside [0, max size].
func (t *Tracker) RemoveJob(startTime quantity.Timestamp, blocks domain.Skyline) error {
	updated, err := t.updatedSeries(startTime, blocks, sub)
	if err != nil {
		return err
	}
	t.series = updated
	return nil
}

// combineFn merges an existing bin value with an incoming one.
type combineFn func(existing, incoming quantity.Scalar) (quantity.Scalar, error)

func add(existing, incoming quantity.Scalar) (quantity.Scalar, error) {
	return existing.Add(incoming), nil
}

func sub(existing, incoming quantity.Scalar) (quantity.Scalar, error) {
	return existing.Sub(incoming)
}

// updatedSeries computes the bin map that would result from combining the
// tracker's current series with the series generated by blocks placed at
// startTime, without mutating the receiver. This copy-then-commit shape
// means a rejected placement never leaves partial state behind.
func (t *Tracker) updatedSeries(startTime quantity.Timestamp, blocks domain.Skyline, combine combineFn) (map[int64]quantity.Scalar, error) {
	incoming := t.makeSeries(startTime, blocks)

	merged := make(map[int64]quantity.Scalar, len(t.series)+len(incoming))
	for bin, size := range t.series {
		merged[bin] = size
	}
	for bin, incomingSize := range incoming {
		existing := merged[bin]
		newSize, err := combine(existing, incomingSize)
		if err != nil {
			return nil, fmt.Errorf("%w: bin %d: %w", ErrBoundsExceeded, bin, err)
		}
		if newSize.Cmp(t.maxSize) > 0 {
			return nil, fmt.Errorf("%w: bin %d size %s exceeds max %s", ErrBoundsExceeded, bin, newSize, t.maxSize)
		}
		merged[bin] = newSize
	}
	return merged, nil
}

// makeSeries materializes a placed skyline into per-bin max occupancy
// values. The cursor advances by each block's exact duration; every bin the
// block's span touches records the block's size, taking the max against
// whatever another block already recorded for that bin (the seam case: two
// blocks abutting mid-bin both contribute their own level, not a sum).
func (t *Tracker) makeSeries(startTime quantity.Timestamp, blocks domain.Skyline) map[int64]quantity.Scalar {
	series := make(map[int64]quantity.Scalar)
	cursor := startTime
	for _, block := range blocks {
		blockEnd := cursor.Add(block.Duration)
		lastInstant, _ := blockEnd.SubDuration(quantity.Seconds(1))
		startBin := t.bin(cursor)
		endBin := t.bin(lastInstant)
		for bin := startBin; bin <= endBin; bin += t.granularity.Seconds() {
			if existing, ok := series[bin]; !ok || block.Size.Cmp(existing) > 0 {
				series[bin] = block.Size
			}
		}
		cursor = blockEnd
	}
	return series
}

// Peak returns the occupancy of the busiest bin.
func (t *Tracker) Peak() quantity.Scalar {
	peak := quantity.ZeroScalar
	for _, size := range t.series {
		if size.Cmp(peak) > 0 {
			peak = size
		}
	}
	return peak
}

// PeakUtilization returns the busiest bin's occupancy as a fraction of the
// tracker's max size, or zero when max size is zero.
func (t *Tracker) PeakUtilization() float64 {
	if t.maxSize.IsZero() {
		return 0
	}
	return t.Peak().Value() / t.maxSize.Value()
}

// bin floors a timestamp down to the start of its granularity bucket.
func (t *Tracker) bin(ts quantity.Timestamp) int64 {
	g := t.granularity.Seconds()
	return (ts.Seconds() / g) * g
}
