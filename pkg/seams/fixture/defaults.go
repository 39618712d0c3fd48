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

package fixture

import (
	"github.com/clockworksched/planner/pkg/domain"
	"github.com/clockworksched/planner/pkg/quantity"
)

func mustUnique(taskID string, offset quantity.Duration) domain.UniqueTask {
	u, err := domain.NewUniqueTask(taskID, offset)
	if err != nil {
		panic(err)
	}
	return u
}

func mustMeta(minStart, maxStart quantity.Duration, skyline domain.Skyline) domain.RightBasedMetadata {
	m, err := domain.NewRightBasedMetadata(minStart, maxStart, skyline)
	if err != nil {
		panic(err)
	}
	return m
}

func mustBlock(duration quantity.Duration, size quantity.Scalar) domain.SkylineBlock {
	b, err := domain.NewSkylineBlock(duration, size)
	if err != nil {
		panic(err)
	}
	return b
}

// NewPrestoMetadataProvider returns the hard-coded presto pool fixture the
// planner ships as its development metadata source.
func NewPrestoMetadataProvider() *MetadataProvider {
	return &MetadataProvider{
		Max: quantity.NewScalar(3),
		Entries: map[domain.UniqueTask]domain.RightBasedMetadata{
			mustUnique("task1", quantity.Zero): mustMeta(quantity.Seconds(10), quantity.Seconds(20),
				domain.Skyline{mustBlock(quantity.Seconds(1), quantity.NewScalar(1))}),
			mustUnique("task5", quantity.Seconds(10)): mustMeta(quantity.Seconds(15), quantity.Seconds(35),
				domain.Skyline{mustBlock(quantity.Seconds(5), quantity.NewScalar(1))}),
			mustUnique("task6", quantity.Seconds(10)): mustMeta(quantity.Seconds(50), quantity.Seconds(60),
				domain.Skyline{mustBlock(quantity.Seconds(5), quantity.NewScalar(1))}),
		},
	}
}

// NewSparkMetadataProvider returns the hard-coded spark pool fixture the
// planner ships as its development metadata source.
func NewSparkMetadataProvider() *MetadataProvider {
	return &MetadataProvider{
		Max: quantity.NewScalar(3),
		Entries: map[domain.UniqueTask]domain.RightBasedMetadata{
			mustUnique("task2", quantity.Zero): mustMeta(quantity.Zero, quantity.Seconds(100),
				domain.Skyline{
					mustBlock(quantity.Seconds(1), quantity.NewScalar(1)),
					mustBlock(quantity.Seconds(2), quantity.NewScalar(2)),
				}),
			mustUnique("task3", quantity.Zero): mustMeta(quantity.Seconds(100), quantity.Seconds(100),
				domain.Skyline{mustBlock(quantity.Seconds(5), quantity.NewScalar(2))}),
			mustUnique("task4", quantity.Seconds(10)): mustMeta(quantity.Seconds(19), quantity.Seconds(59),
				domain.Skyline{mustBlock(quantity.Seconds(4), quantity.NewScalar(4))}),
		},
	}
}
