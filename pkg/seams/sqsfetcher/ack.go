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

package sqsfetcher

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"

	"github.com/clockworksched/planner/pkg/batcher"
)

// ackRequest is one caller's request to delete a single message once its
// task has been durably placed in the written plan.
type ackRequest struct {
	receiptHandle string
}

// Ack schedules receiptHandle for deletion. Callers typically invoke this
// once per TaskInstance that made it into the final plan; concurrent calls
// within the same batch window collapse into a single DeleteMessageBatch
// call against SQS.
func (f *Fetcher) Ack(ctx context.Context, receiptHandle string) error {
	result := f.ackBatch.Add(ctx, &ackRequest{receiptHandle: receiptHandle})
	return result.Err
}

// ackHasher groups every ack request into a single shared batch window:
// there is only one queue, so all deletes can share one DeleteMessageBatch
// call regardless of content.
func ackHasher(_ context.Context, _ *ackRequest) uint64 {
	return 0
}

// execAckBatch issues one DeleteMessageBatch call covering up to ten
// receipt handles, the AWS-imposed limit for that API.
func (f *Fetcher) execAckBatch(ctx context.Context, inputs []*ackRequest) []batcher.Result[struct{}] {
	results := make([]batcher.Result[struct{}], len(inputs))

	entries := make([]types.DeleteMessageBatchRequestEntry, len(inputs))
	for i, in := range inputs {
		id := uuid.NewString()
		entries[i] = types.DeleteMessageBatchRequestEntry{
			Id:            &id,
			ReceiptHandle: &in.receiptHandle,
		}
	}

	output, err := f.api.DeleteMessageBatch(ctx, &sqs.DeleteMessageBatchInput{
		QueueUrl: &f.queueURL,
		Entries:  entries,
	})
	if err != nil {
		for i := range results {
			results[i] = batcher.Result[struct{}]{Err: err}
		}
		return results
	}

	failed := make(map[string]string, len(output.Failed))
	for _, failure := range output.Failed {
		if failure.Id != nil {
			failed[*failure.Id] = *failure.Message
		}
	}
	for i, entry := range entries {
		if msg, ok := failed[*entry.Id]; ok {
			results[i] = batcher.Result[struct{}]{Err: fmt.Errorf("sqsfetcher: delete failed: %s", msg)}
		} else {
			results[i] = batcher.Result[struct{}]{Output: &struct{}{}}
		}
	}
	return results
}
