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

// Package orchestrator drives one planning cycle: fetch tasks, fetch each
// pool's metadata concurrently, schedule each pool independently, and merge
// the per-pool assignments into a single plan.
package orchestrator

import (
	"context"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
)

// TaskFetcher returns the full, current set of task instances that need a
// schedule.
type TaskFetcher interface {
	Fetch(ctx context.Context) ([]domain.TaskInstance, error)
}

// MetadataProvider supplies one pool's scheduling inputs: the per-task
// window and resource shape, plus that pool's capacity.
type MetadataProvider interface {
	Metadata(ctx context.Context, tasks []domain.TaskInstance) (map[domain.UniqueTask]domain.RightBasedMetadata, error)
	MaxSize(ctx context.Context) (quantity.Scalar, error)
}

// PlanWriter persists the final plan. It is only ever called with a
// complete plan; a cancelled or failed cycle never reaches it.
type PlanWriter interface {
	Overwrite(ctx context.Context, plan map[domain.TaskInstance]quantity.Timestamp) error
}

// Algorithm computes one pool's start-offset assignments from that pool's
// metadata and capacity. The second return is the peak bin utilization the
// chosen placements produced, as a fraction of maxSize.
type Algorithm interface {
	Schedule(ctx context.Context, metadata map[domain.UniqueTask]domain.RightBasedMetadata, granularity quantity.Duration, maxSize quantity.Scalar) (map[domain.UniqueTask]quantity.Duration, float64)
}
