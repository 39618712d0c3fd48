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

package domain_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
)

var _ = Describe("TaskInstance and UniqueTask", func() {
	It("rejects a UniqueTask offset of a day or more", func() {
		_, err := domain.NewUniqueTask("task1", quantity.Days(1))
		Expect(err).To(MatchError(domain.ErrOffsetExceedsDay))
	})

	It("accepts an offset just under a day", func() {
		almostDay, err := quantity.Days(1).Sub(quantity.Seconds(1))
		Expect(err).NotTo(HaveOccurred())
		ut, err := domain.NewUniqueTask("task1", almostDay)
		Expect(err).NotTo(HaveOccurred())
		Expect(ut.TaskID).To(Equal("task1"))
	})

	It("is directly usable as a map key", func() {
		ts, err := quantity.NewTimestamp(10)
		Expect(err).NotTo(HaveOccurred())
		instances := map[domain.TaskInstance]bool{
			{TaskID: "task1", PeriodID: ts}: true,
		}
		Expect(instances[domain.TaskInstance{TaskID: "task1", PeriodID: ts}]).To(BeTrue())
	})

	It("collapses a TaskInstance to its UniqueTask via offset from midnight", func() {
		ts, err := quantity.NewTimestamp(10)
		Expect(err).NotTo(HaveOccurred())
		instance := domain.TaskInstance{TaskID: "task4", PeriodID: ts}
		unique, err := instance.Unique()
		Expect(err).NotTo(HaveOccurred())
		Expect(unique).To(Equal(domain.UniqueTask{TaskID: "task4", Offset: quantity.Seconds(10)}))
	})
})
