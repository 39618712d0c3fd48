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

// Package rightbased implements the greedy, right-to-left placement
// algorithm: for each task, taken in descending order of scheduling
// urgency, try the latest possible start time first and walk backward one
// granularity step at a time until a fit is found or the window is
// exhausted.
package rightbased

import (
	"context"
	"sort"

	"github.com/go-logr/logr"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
	"github.com/clockworksched/planner/pkg/skyline"
)

// Assignments maps each scheduled UniqueTask to its chosen absolute offset
// from midnight. A UniqueTask absent from the map was rejected: its window
// was exhausted without finding a fit.
type Assignments map[domain.UniqueTask]quantity.Duration

// Algorithm exposes ScheduleTasks behind the orchestrator's algorithm
// seam, registered under the name "right_based".
type Algorithm struct{}

// Schedule runs ScheduleTasks and reports the peak bin utilization of the
// resulting tracker.
func (Algorithm) Schedule(ctx context.Context, metadata map[domain.UniqueTask]domain.RightBasedMetadata, granularity quantity.Duration, maxSize quantity.Scalar) (map[domain.UniqueTask]quantity.Duration, float64) {
	assignments, tracker := ScheduleTasks(ctx, metadata, granularity, maxSize)
	return assignments, tracker.PeakUtilization()
}

// ScheduleTasks places every task in metadata onto a fresh Tracker sized to
// granularity/maxSize, latest-opening window first, and returns the
// resulting offset assignments along with the final tracker so callers can
// report on the occupancy the plan produced.
//
// Ordering is descending by (MinStart, MaxStart): tasks whose window opens
// later are placed first, and among equal MinStart the task whose window
// closes later goes first. Ties break first by
// TaskID ascending and then by Offset ascending, since Go map iteration
// order is randomized and the placement order must be deterministic for a
// reproducible plan.
func ScheduleTasks(ctx context.Context, metadata map[domain.UniqueTask]domain.RightBasedMetadata, granularity quantity.Duration, maxSize quantity.Scalar) (Assignments, *skyline.Tracker) {
	log := logr.FromContextOrDiscard(ctx)
	tracker := skyline.NewTracker(granularity, maxSize)

	ordered := orderedTasks(metadata)
	assignments := make(Assignments, len(ordered))

	for i, task := range ordered {
		if i%1000 == 0 {
			log.V(1).Info("scheduling progress", "placed", i, "total", len(ordered), "accepted", len(assignments))
		}
		meta := metadata[task]
		startTime := meta.MaxStart
		for startTime.Cmp(meta.MinStart) >= 0 {
			candidate, err := quantity.NewTimestamp(startTime.Seconds())
			if err != nil {
				break
			}
			if tracker.CanAdd(candidate, meta.Skyline) {
				if addErr := tracker.AddJob(candidate, meta.Skyline); addErr == nil {
					assignments[task] = startTime
					break
				}
			}
			next, err := startTime.Sub(granularity)
			if err != nil {
				break
			}
			startTime = next
		}
	}
	return assignments, tracker
}

// orderedTasks returns every task key from metadata sorted by the
// deterministic tie-break order ScheduleTasks requires.
func orderedTasks(metadata map[domain.UniqueTask]domain.RightBasedMetadata) []domain.UniqueTask {
	tasks := make([]domain.UniqueTask, 0, len(metadata))
	for task := range metadata {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		ma, mb := metadata[a], metadata[b]
		if cmp := mb.MinStart.Cmp(ma.MinStart); cmp != 0 {
			return cmp < 0
		}
		if cmp := mb.MaxStart.Cmp(ma.MaxStart); cmp != 0 {
			return cmp < 0
		}
		if a.TaskID != b.TaskID {
			return a.TaskID < b.TaskID
		}
		return a.Offset.Cmp(b.Offset) < 0
	})
	return tasks
}
