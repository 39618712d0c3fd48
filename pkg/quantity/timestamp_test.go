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

var _ = Describe("Timestamp", func() {
	It("rejects negative seconds", func() {
		_, err := quantity.NewTimestamp(-1)
		Expect(err).To(MatchError(quantity.ErrNegativeTimestamp))
	})

	It("rejects timestamps beyond the year-3000 bound", func() {
		_, err := quantity.NewTimestamp(32503680001)
		Expect(err).To(MatchError(quantity.ErrTimestampOutOfRange))
	})

	It("treats Midnight as the zero-second origin", func() {
		Expect(quantity.Midnight().Seconds()).To(Equal(int64(0)))
	})

	It("adds a Duration to shift forward", func() {
		ts, err := quantity.NewTimestamp(100)
		Expect(err).NotTo(HaveOccurred())
		shifted := ts.Add(quantity.Seconds(50))
		Expect(shifted.Seconds()).To(Equal(int64(150)))
	})

	It("subtracts to a Duration when non-negative", func() {
		later, _ := quantity.NewTimestamp(200)
		earlier, _ := quantity.NewTimestamp(50)
		d, err := later.Sub(earlier)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Seconds()).To(Equal(int64(150)))
	})

	It("rejects a subtraction that would produce a negative duration", func() {
		later, _ := quantity.NewTimestamp(200)
		earlier, _ := quantity.NewTimestamp(50)
		_, err := earlier.Sub(later)
		Expect(err).To(MatchError(quantity.ErrNegativeDuration))
	})

	It("subtracts a Duration to shift backward", func() {
		ts, _ := quantity.NewTimestamp(100)
		shifted, err := ts.SubDuration(quantity.Seconds(30))
		Expect(err).NotTo(HaveOccurred())
		Expect(shifted.Seconds()).To(Equal(int64(70)))
	})

	It("rejects a SubDuration that would precede the epoch", func() {
		ts, _ := quantity.NewTimestamp(10)
		_, err := ts.SubDuration(quantity.Seconds(11))
		Expect(err).To(MatchError(quantity.ErrNegativeTimestamp))
	})

	It("orders via Before/After/Equal", func() {
		earlier, _ := quantity.NewTimestamp(50)
		later, _ := quantity.NewTimestamp(200)
		Expect(earlier.Before(later)).To(BeTrue())
		Expect(later.After(earlier)).To(BeTrue())
		Expect(earlier.Equal(earlier)).To(BeTrue())
	})
})
