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

// Package domain holds the entities shared by every scheduling algorithm:
// TaskInstance, UniqueTask, SkylineBlock, and RightBasedMetadata.
package domain

import (
	"errors"
	"fmt"

	"github.com/clockworksched/planner/pkg/quantity"
)

// ErrOffsetExceedsDay is returned when a UniqueTask is constructed with an
// offset of a day or more: a within-day offset beyond 24h cannot correspond
// to any sensible daily schedule slot.
var ErrOffsetExceedsDay = errors.New("domain: unique task offset must be less than one day")

// TaskInstance identifies one concrete, dated occurrence of a task: the
// task's logical id together with the period (day) it belongs to. It is
// comparable and therefore usable directly as a map key.
type TaskInstance struct {
	TaskID   string
	PeriodID quantity.Timestamp
}

// UniqueTask strips the day off a TaskInstance, leaving the task's logical
// id together with its offset from midnight on whatever day it runs. Two
// TaskInstances on different days that share a UniqueTask are scheduled
// identically relative to their own midnight.
type UniqueTask struct {
	TaskID string
	Offset quantity.Duration
}

// NewUniqueTask constructs a UniqueTask, rejecting an offset of a day or
// more.
func NewUniqueTask(taskID string, offset quantity.Duration) (UniqueTask, error) {
	if offset.Cmp(quantity.Days(1)) >= 0 {
		return UniqueTask{}, fmt.Errorf("%w: task %q offset %s", ErrOffsetExceedsDay, taskID, offset)
	}
	return UniqueTask{TaskID: taskID, Offset: offset}, nil
}

// Unique collapses a TaskInstance to its UniqueTask by measuring the
// instance's period against quantity.Midnight(), the fixed Timestamp(0)
// origin; a period of a day or more past that origin is rejected.
func (ti TaskInstance) Unique() (UniqueTask, error) {
	offset, err := ti.PeriodID.Sub(quantity.Midnight())
	if err != nil {
		return UniqueTask{}, fmt.Errorf("domain: computing offset for %q: %w", ti.TaskID, err)
	}
	return NewUniqueTask(ti.TaskID, offset)
}

func (ti TaskInstance) String() string {
	return fmt.Sprintf("TaskInstance(%s@%s)", ti.TaskID, ti.PeriodID)
}

func (u UniqueTask) String() string {
	return fmt.Sprintf("UniqueTask(%s+%s)", u.TaskID, u.Offset)
}
