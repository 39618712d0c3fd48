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

// Package sqsfetcher implements orchestrator.TaskFetcher against an SQS
// queue: each message body is one pending TaskInstance declaration.
package sqsfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/avast/retry-go"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/clockworksched/planner/pkg/awsclients"
	"github.com/clockworksched/planner/pkg/batcher"
	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/logging"
	"github.com/clockworksched/planner/pkg/quantity"
)

// messageBody is the wire shape of one SQS message: a pending task
// declaration.
type messageBody struct {
	TaskID   string `json:"task_id"`
	PeriodID int64  `json:"period_id"`
}

// dedupeTTL bounds how long a message's hash is remembered: long enough to
// survive SQS's at-least-once redelivery window within a single planning
// cycle, short enough not to leak memory across many cycles.
const dedupeTTL = 10 * time.Minute

// Fetcher fetches pending TaskInstances from one SQS queue.
type Fetcher struct {
	api       awsclients.SQSAPI
	queueURL  string
	seen      *cache.Cache
	ackBatch  *batcher.Batcher[ackRequest, struct{}]
	maxPolls  int
	batchSize int32
}

// New constructs a Fetcher against queueURL. maxPolls bounds how many
// ReceiveMessage calls one Fetch performs before returning whatever it has
// collected, guarding against an unbounded loop on a queue that never
// empties.
func New(api awsclients.SQSAPI, queueURL string, maxPolls int) *Fetcher {
	f := &Fetcher{
		api:       api,
		queueURL:  queueURL,
		seen:      cache.New(dedupeTTL, dedupeTTL/2),
		maxPolls:  maxPolls,
		batchSize: 10,
	}
	f.ackBatch = batcher.NewBatcher(context.Background(), batcher.Options[ackRequest, struct{}]{
		Name:          "sqs_ack",
		IdleTimeout:   50 * time.Millisecond,
		MaxTimeout:    500 * time.Millisecond,
		MaxItems:      10,
		RequestHasher: ackHasher,
		BatchExecutor: f.execAckBatch,
	})
	return f
}

// Fetch drains the queue (bounded by maxPolls), parses each message body
// into a TaskInstance, and discards messages whose content hash has been
// seen within dedupeTTL.
func (f *Fetcher) Fetch(ctx context.Context) ([]domain.TaskInstance, error) {
	log := logging.FromContext(ctx)
	var instances []domain.TaskInstance
	var parseErrs error

	for poll := 0; poll < f.maxPolls; poll++ {
		output, err := f.receiveWithRetry(ctx)
		if err != nil {
			return nil, fmt.Errorf("sqsfetcher: receive message: %w", err)
		}
		if len(output.Messages) == 0 {
			break
		}

		for _, msg := range output.Messages {
			hash, hashErr := hashstructure.Hash(lo.FromPtr(msg.Body), hashstructure.FormatV2, nil)
			if hashErr == nil {
				if _, found := f.seen.Get(fmt.Sprintf("%d", hash)); found {
					continue
				}
				f.seen.SetDefault(fmt.Sprintf("%d", hash), struct{}{})
			}

			instance, err := parseMessage(lo.FromPtr(msg.Body))
			if err != nil {
				parseErrs = multierr.Append(parseErrs, fmt.Errorf("sqsfetcher: message %s: %w", lo.FromPtr(msg.MessageId), err))
				continue
			}
			instances = append(instances, instance)
		}
	}

	if parseErrs != nil {
		log.Error(parseErrs, "some sqs messages failed to parse", "accepted", len(instances))
	}
	return instances, nil
}

// receiveWithRetry wraps one ReceiveMessage call with exponential-backoff
// retries: transient SQS throttling should not fail an entire planning
// cycle.
func (f *Fetcher) receiveWithRetry(ctx context.Context) (*sqs.ReceiveMessageOutput, error) {
	var output *sqs.ReceiveMessageOutput
	err := retry.Do(
		func() error {
			out, err := f.api.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            &f.queueURL,
				MaxNumberOfMessages: f.batchSize,
				WaitTimeSeconds:     1,
			})
			if err != nil {
				return err
			}
			output = out
			return nil
		},
		retry.Attempts(3),
		retry.Context(ctx),
	)
	return output, err
}

// parseMessage decodes one SQS message body into a TaskInstance.
func parseMessage(body string) (domain.TaskInstance, error) {
	var decoded messageBody
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return domain.TaskInstance{}, fmt.Errorf("decoding message body: %w", err)
	}
	periodID, err := quantity.NewTimestamp(decoded.PeriodID)
	if err != nil {
		return domain.TaskInstance{}, fmt.Errorf("invalid period_id: %w", err)
	}
	return domain.TaskInstance{TaskID: decoded.TaskID, PeriodID: periodID}, nil
}
