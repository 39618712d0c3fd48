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

// Package fixture provides trivial in-memory implementations of the
// orchestrator's external seams, usable both as the "hard_coded"
// production task fetcher and as test doubles.
package fixture

import (
	"context"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
)

// TaskFetcher returns a fixed, pre-populated set of task instances.
type TaskFetcher struct {
	Tasks []domain.TaskInstance
}

// NewHardCodedTaskFetcher returns the six-task fixture the planner ships
// as its default development fetcher.
func NewHardCodedTaskFetcher() *TaskFetcher {
	midnight := quantity.Midnight()
	tenPast, err := quantity.NewTimestamp(10)
	if err != nil {
		panic(err)
	}
	return &TaskFetcher{
		Tasks: []domain.TaskInstance{
			{TaskID: "task1", PeriodID: midnight},
			{TaskID: "task2", PeriodID: midnight},
			{TaskID: "task3", PeriodID: midnight},
			{TaskID: "task4", PeriodID: tenPast},
			{TaskID: "task5", PeriodID: tenPast},
			{TaskID: "task6", PeriodID: tenPast},
		},
	}
}

// Fetch returns the fixed task set.
func (f *TaskFetcher) Fetch(_ context.Context) ([]domain.TaskInstance, error) {
	return f.Tasks, nil
}

// MetadataProvider answers RightBasedMetadata lookups from a fixed map and
// a fixed capacity, ignoring the requested task set.
type MetadataProvider struct {
	Entries map[domain.UniqueTask]domain.RightBasedMetadata
	Max     quantity.Scalar
}

// Metadata returns the fixed entries regardless of which tasks were
// requested.
func (p *MetadataProvider) Metadata(_ context.Context, _ []domain.TaskInstance) (map[domain.UniqueTask]domain.RightBasedMetadata, error) {
	return p.Entries, nil
}

// MaxSize returns the fixed capacity.
func (p *MetadataProvider) MaxSize(_ context.Context) (quantity.Scalar, error) {
	return p.Max, nil
}

// PlanWriter records the most recently written plan for later inspection.
type PlanWriter struct {
	LastPlan map[domain.TaskInstance]quantity.Timestamp
}

// Overwrite records plan as the most recently written plan.
func (w *PlanWriter) Overwrite(_ context.Context, plan map[domain.TaskInstance]quantity.Timestamp) error {
	w.LastPlan = plan
	return nil
}
