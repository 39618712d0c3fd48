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

package sqsfetcher_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clockworksched/planner/pkg/seams/sqsfetcher"
)

type fakeSQS struct {
	pages [][]types.Message
	call  int
}

func (f *fakeSQS) ReceiveMessage(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	if f.call >= len(f.pages) {
		return &sqs.ReceiveMessageOutput{}, nil
	}
	page := f.pages[f.call]
	f.call++
	return &sqs.ReceiveMessageOutput{Messages: page}, nil
}

func (f *fakeSQS) DeleteMessageBatch(_ context.Context, input *sqs.DeleteMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageBatchOutput, error) {
	return &sqs.DeleteMessageBatchOutput{}, nil
}

func message(id, body string) types.Message {
	return types.Message{MessageId: &id, Body: &body, ReceiptHandle: &id}
}

var _ = Describe("Fetcher", func() {
	It("parses valid message bodies into TaskInstances", func() {
		fake := &fakeSQS{pages: [][]types.Message{
			{message("1", `{"task_id":"task1","period_id":0}`)},
		}}
		f := sqsfetcher.New(fake, "https://queue.example/q", 3)
		instances, err := f.Fetch(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(instances).To(HaveLen(1))
		Expect(instances[0].TaskID).To(Equal("task1"))
	})

	It("deduplicates messages with identical bodies across polls", func() {
		body := `{"task_id":"task1","period_id":0}`
		fake := &fakeSQS{pages: [][]types.Message{
			{message("1", body)},
			{message("2", body)},
		}}
		f := sqsfetcher.New(fake, "https://queue.example/q", 5)
		instances, err := f.Fetch(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(instances).To(HaveLen(1))
	})

	It("skips unparseable messages without failing the whole fetch", func() {
		fake := &fakeSQS{pages: [][]types.Message{
			{
				message("1", `not json`),
				message("2", `{"task_id":"task2","period_id":5}`),
			},
		}}
		f := sqsfetcher.New(fake, "https://queue.example/q", 3)
		instances, err := f.Fetch(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(instances).To(HaveLen(1))
		Expect(instances[0].TaskID).To(Equal("task2"))
	})

	It("acks a receipt handle through the batched delete path", func() {
		fake := &fakeSQS{}
		f := sqsfetcher.New(fake, "https://queue.example/q", 1)
		Expect(f.Ack(context.Background(), "receipt-1")).To(Succeed())
	})
})
