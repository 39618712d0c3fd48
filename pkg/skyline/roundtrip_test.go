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

package skyline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
	"github.com/clockworksched/planner/pkg/skyline"
)

var _ = Describe("round-trip law", func() {
	It("returns to an equivalent empty state after adding then removing, in reverse order", func() {
		tracker := skyline.NewTracker(quantity.Seconds(1), quantity.NewScalar(5))

		placements := []struct {
			start  quantity.Timestamp
			blocks domain.Skyline
		}{
			{mustTimestamp(0), domain.Skyline{mustBlock(quantity.Seconds(1), quantity.NewScalar(2))}},
			{mustTimestamp(1), domain.Skyline{mustBlock(quantity.Seconds(2), quantity.NewScalar(3))}},
			{mustTimestamp(3), domain.Skyline{mustBlock(quantity.Seconds(1), quantity.NewScalar(1))}},
		}

		for _, p := range placements {
			Expect(tracker.AddJob(p.start, p.blocks)).To(Succeed())
		}
		for i := len(placements) - 1; i >= 0; i-- {
			p := placements[i]
			Expect(tracker.RemoveJob(p.start, p.blocks)).To(Succeed())
		}

		// Equivalent to empty: every bin that could have been touched now
		// accepts the maximum placement again.
		Expect(tracker.CanAdd(mustTimestamp(0), domain.Skyline{mustBlock(quantity.Seconds(5), quantity.NewScalar(5))})).To(BeTrue())
	})

	It("never lets add_job followed by can_remove disagree", func() {
		tracker := skyline.NewTracker(quantity.Seconds(1), quantity.NewScalar(1))
		blocks := domain.Skyline{mustBlock(quantity.Seconds(1), quantity.NewScalar(1))}
		start := mustTimestamp(0)

		Expect(tracker.CanAdd(start, blocks)).To(BeTrue())
		Expect(tracker.AddJob(start, blocks)).To(Succeed())
		Expect(tracker.CanRemove(start, blocks)).To(BeTrue())
	})
})
