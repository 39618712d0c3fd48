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

package quantity_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clockworksched/planner/pkg/quantity"
)

var _ = Describe("Duration", func() {
	It("constructs from seconds/minutes/hours/days consistently", func() {
		Expect(quantity.Minutes(1).Seconds()).To(Equal(int64(60)))
		Expect(quantity.Hours(1).Seconds()).To(Equal(int64(3600)))
		Expect(quantity.Days(1).Seconds()).To(Equal(quantity.Hours(24).Seconds()))
	})

	It("adds without error", func() {
		sum := quantity.Seconds(10).Add(quantity.Seconds(5))
		Expect(sum.Seconds()).To(Equal(int64(15)))
	})

	It("subtracts cleanly when the result is non-negative", func() {
		diff, err := quantity.Seconds(10).Sub(quantity.Seconds(4))
		Expect(err).NotTo(HaveOccurred())
		Expect(diff.Seconds()).To(Equal(int64(6)))
	})

	It("rejects a subtraction that would go negative", func() {
		_, err := quantity.Seconds(4).Sub(quantity.Seconds(10))
		Expect(err).To(MatchError(quantity.ErrNegativeDuration))
	})

	It("compares via Cmp and the Less/LessOrEqual/Equal helpers", func() {
		small := quantity.Seconds(1)
		big := quantity.Seconds(2)
		Expect(small.Cmp(big)).To(Equal(-1))
		Expect(big.Cmp(small)).To(Equal(1))
		Expect(small.Cmp(small)).To(Equal(0))
		Expect(small.Less(big)).To(BeTrue())
		Expect(small.LessOrEqual(small)).To(BeTrue())
		Expect(small.Equal(quantity.Seconds(1))).To(BeTrue())
	})

	It("treats the zero value as IsZero", func() {
		Expect(quantity.Duration{}.IsZero()).To(BeTrue())
		Expect(quantity.Zero.IsZero()).To(BeTrue())
		Expect(quantity.Seconds(1).IsZero()).To(BeFalse())
	})
})
