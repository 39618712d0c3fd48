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

// Package s3writer implements orchestrator.PlanWriter by overwriting a
// single JSON object in S3 with the latest plan.
package s3writer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/avast/retry-go"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/clockworksched/planner/pkg/awsclients"
	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
)

// planEntry is the wire shape of one plan assignment.
type planEntry struct {
	TaskID   string `json:"task_id"`
	PeriodID int64  `json:"period_id"`
	RunAt    int64  `json:"run_at"`
}

// Writer overwrites one S3 object with the plan on every call.
type Writer struct {
	api    awsclients.S3API
	bucket string
	key    string
}

// New constructs a Writer targeting bucket/key.
func New(api awsclients.S3API, bucket, key string) *Writer {
	return &Writer{api: api, bucket: bucket, key: key}
}

// Overwrite serializes plan as a JSON array and PUTs it to the configured
// bucket/key, replacing whatever was there before. Entries are sorted so
// the same plan always produces the same object bytes.
func (w *Writer) Overwrite(ctx context.Context, plan map[domain.TaskInstance]quantity.Timestamp) error {
	entries := make([]planEntry, 0, len(plan))
	for instance, runAt := range plan {
		entries = append(entries, planEntry{
			TaskID:   instance.TaskID,
			PeriodID: instance.PeriodID.Seconds(),
			RunAt:    runAt.Seconds(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TaskID != entries[j].TaskID {
			return entries[i].TaskID < entries[j].TaskID
		}
		return entries[i].PeriodID < entries[j].PeriodID
	})

	body, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("s3writer: marshaling plan: %w", err)
	}

	err = retry.Do(
		func() error {
			_, putErr := w.api.PutObject(ctx, &s3.PutObjectInput{
				Bucket: &w.bucket,
				Key:    &w.key,
				Body:   bytes.NewReader(body),
			})
			return putErr
		},
		retry.Attempts(3),
		retry.Context(ctx),
	)
	if err != nil {
		return fmt.Errorf("s3writer: put object: %w", err)
	}
	return nil
}
