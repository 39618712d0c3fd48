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

package s3writer_test

import (
	"context"
	"encoding/json"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
	"github.com/clockworksched/planner/pkg/seams/s3writer"
)

type fakeS3 struct {
	lastBucket string
	lastKey    string
	lastBody   []byte
	err        error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastBucket = *params.Bucket
	f.lastKey = *params.Key
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.lastBody = body
	return &s3.PutObjectOutput{}, nil
}

var _ = Describe("Writer", func() {
	It("serializes the plan and PUTs it to the configured bucket/key", func() {
		fake := &fakeS3{}
		writer := s3writer.New(fake, "my-bucket", "plans/latest.json")

		ts, err := quantity.NewTimestamp(42)
		Expect(err).NotTo(HaveOccurred())
		plan := map[domain.TaskInstance]quantity.Timestamp{
			{TaskID: "task1", PeriodID: quantity.Midnight()}: ts,
		}

		Expect(writer.Overwrite(context.Background(), plan)).To(Succeed())
		Expect(fake.lastBucket).To(Equal("my-bucket"))
		Expect(fake.lastKey).To(Equal("plans/latest.json"))

		var decoded []struct {
			TaskID string `json:"task_id"`
			RunAt  int64  `json:"run_at"`
		}
		Expect(json.Unmarshal(fake.lastBody, &decoded)).To(Succeed())
		Expect(decoded).To(HaveLen(1))
		Expect(decoded[0].RunAt).To(Equal(int64(42)))
	})

	It("propagates a PutObject failure", func() {
		fake := &fakeS3{err: io.ErrUnexpectedEOF}
		writer := s3writer.New(fake, "my-bucket", "plans/latest.json")
		err := writer.Overwrite(context.Background(), map[domain.TaskInstance]quantity.Timestamp{})
		Expect(err).To(HaveOccurred())
	})
})
