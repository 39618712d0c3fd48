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

package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/metrics"
	"github.com/clockworksched/planner/pkg/quantity"
)

// schedulingGranularity is the bin width every pool's tracker uses. It is
// fixed rather than configurable per pool: a single shared granularity
// keeps plans comparable across pools.
var schedulingGranularity = quantity.Minutes(1)

// Pool names one execution pool's metadata source. Pools are evaluated in
// the order given; that order is also this orchestrator's merge
// priority — a UniqueTask present in more than one pool's assignment
// resolves to whichever pool appears first.
type Pool struct {
	Name     string
	Metadata MetadataProvider
}

// Orchestrator runs one planning cycle across a fixed, ordered set of
// pools.
type Orchestrator struct {
	Fetcher   TaskFetcher
	Algorithm Algorithm
	Pools     []Pool
	Writer    PlanWriter
}

// poolOutcome holds one pool's fetched metadata and capacity, gathered
// concurrently with every other pool's.
type poolOutcome struct {
	name     string
	metadata map[domain.UniqueTask]domain.RightBasedMetadata
	maxSize  quantity.Scalar
}

// Run executes a single planning cycle: fetch tasks, fetch every pool's
// metadata concurrently, schedule each pool serially, merge the results,
// and write the plan. A cancellation at any point before the plan is
// assembled means the writer is never invoked.
func (o *Orchestrator) Run(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)

	tasks, err := o.Fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("orchestrator: fetching tasks: %w", err)
	}
	log.V(1).Info("fetched tasks", "count", len(tasks))

	outcomes, err := o.gatherPoolMetadata(ctx, tasks)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("orchestrator: cancelled before scheduling: %w", err)
	}

	poolAssignments := make(map[string]map[domain.UniqueTask]quantity.Duration, len(outcomes))
	for _, outcome := range outcomes {
		start := time.Now()
		assignments, utilization := o.Algorithm.Schedule(ctx, outcome.metadata, schedulingGranularity, outcome.maxSize)
		metrics.ObservePoolDuration(outcome.name, time.Since(start).Seconds())
		metrics.ObserveTasksScheduled(outcome.name, len(assignments))
		metrics.ObserveTasksRejected(outcome.name, len(outcome.metadata)-len(assignments))
		metrics.ObserveBinUtilization(outcome.name, utilization)
		poolAssignments[outcome.name] = assignments
		log.V(1).Info("pool scheduled", "pool", outcome.name, "placed", len(assignments), "total", len(outcome.metadata))
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("orchestrator: cancelled before merge: %w", err)
	}

	plan, missing, err := o.mergePlan(tasks, poolAssignments)
	if err != nil {
		return err
	}
	log.V(1).Info("planning finished", "in_plan", len(plan), "missing_from_plan", missing)

	if err := o.Writer.Overwrite(ctx, plan); err != nil {
		return fmt.Errorf("orchestrator: writing plan: %w", err)
	}
	return nil
}

// gatherPoolMetadata fetches every pool's metadata and capacity
// concurrently: this is pure I/O-latency overlap, not CPU parallelism, so a
// single errgroup with no limit is appropriate.
func (o *Orchestrator) gatherPoolMetadata(ctx context.Context, tasks []domain.TaskInstance) ([]poolOutcome, error) {
	outcomes := make([]poolOutcome, len(o.Pools))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, pool := range o.Pools {
		i, pool := i, pool
		group.Go(func() error {
			metadata, err := pool.Metadata.Metadata(groupCtx, tasks)
			if err != nil {
				return fmt.Errorf("orchestrator: pool %q metadata: %w", pool.Name, err)
			}
			maxSize, err := pool.Metadata.MaxSize(groupCtx)
			if err != nil {
				return fmt.Errorf("orchestrator: pool %q max size: %w", pool.Name, err)
			}
			outcomes[i] = poolOutcome{name: pool.Name, metadata: metadata, maxSize: maxSize}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// mergePlan promotes each pool's relative offset assignment to an absolute
// Timestamp and resolves first-pool-wins precedence for any UniqueTask
// placed by more than one pool.
func (o *Orchestrator) mergePlan(tasks []domain.TaskInstance, poolAssignments map[string]map[domain.UniqueTask]quantity.Duration) (map[domain.TaskInstance]quantity.Timestamp, int, error) {
	plan := make(map[domain.TaskInstance]quantity.Timestamp, len(tasks))
	missing := 0

	for _, instance := range tasks {
		unique, err := instance.Unique()
		if err != nil {
			return nil, 0, fmt.Errorf("orchestrator: merging %s: %w", instance, err)
		}

		placed := false
		for _, pool := range o.Pools {
			offset, ok := poolAssignments[pool.Name][unique]
			if !ok {
				continue
			}
			plan[instance] = quantity.Midnight().Add(offset)
			placed = true
			break
		}
		if !placed {
			missing++
		}
	}
	return plan, missing, nil
}
