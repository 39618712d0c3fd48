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

// Package logwriter implements orchestrator.PlanWriter by logging the
// final plan at debug verbosity: the default writer for local runs and
// development.
package logwriter

import (
	"context"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/logging"
	"github.com/clockworksched/planner/pkg/quantity"
)

// Writer logs the plan it receives and does not persist it anywhere.
type Writer struct{}

// New constructs a Writer.
func New() *Writer { return &Writer{} }

// Overwrite logs the final plan.
func (w *Writer) Overwrite(ctx context.Context, plan map[domain.TaskInstance]quantity.Timestamp) error {
	logging.FromContext(ctx).V(1).Info("final plan", "size", len(plan), "plan", plan)
	return nil
}
