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

var _ = Describe("SkylineBlock", func() {
	It("rejects a non-positive duration", func() {
		_, err := domain.NewSkylineBlock(quantity.Zero, quantity.NewScalar(1))
		Expect(err).To(MatchError(domain.ErrNonPositiveBlockDuration))
	})

	It("accepts a zero size", func() {
		block, err := domain.NewSkylineBlock(quantity.Seconds(1), quantity.ZeroScalar)
		Expect(err).NotTo(HaveOccurred())
		Expect(block.Size.IsZero()).To(BeTrue())
	})
})

var _ = Describe("RightBasedMetadata", func() {
	It("rejects a window whose max start precedes its min start", func() {
		_, err := domain.NewRightBasedMetadata(quantity.Seconds(10), quantity.Seconds(5), nil)
		Expect(err).To(MatchError(domain.ErrMaxStartBeforeMinStart))
	})

	It("accepts an equal min and max start (a single candidate window)", func() {
		meta, err := domain.NewRightBasedMetadata(quantity.Seconds(5), quantity.Seconds(5), nil)
		Expect(err).NotTo(HaveOccurred())
		min, max := meta.OrderKey()
		Expect(min).To(Equal(max))
	})
})

var _ = Describe("Skyline", func() {
	It("sums block durations for TotalDuration", func() {
		block1, _ := domain.NewSkylineBlock(quantity.Seconds(3), quantity.NewScalar(1))
		block2, _ := domain.NewSkylineBlock(quantity.Seconds(4), quantity.NewScalar(2))
		sky := domain.Skyline{block1, block2}
		Expect(sky.TotalDuration()).To(Equal(quantity.Seconds(7)))
	})
})
