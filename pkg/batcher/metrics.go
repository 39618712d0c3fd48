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

package batcher

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/clockworksched/planner/pkg/metrics"
)

const (
	subsystem  = "batcher"
	nameLabel  = "batcher"
	sizeHistHi = 500.0
)

// sizeBuckets returns threshold values for batch-size histograms.
func sizeBuckets() []float64 {
	return []float64{1, 2, 4, 5, 10, 15, 20, 25, 30, 40, 50, 75, 100, 150, 200, 300, 400, sizeHistHi}
}

var (
	batchWindowDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "planner",
		Subsystem: subsystem,
		Name:      "batch_time_seconds",
		Help:      "Duration of the batching window per batcher.",
		Buckets:   prometheus.DefBuckets,
	}, []string{nameLabel})
	batchSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "planner",
		Subsystem: subsystem,
		Name:      "batch_size",
		Help:      "Size of the request batch per batcher.",
		Buckets:   sizeBuckets(),
	}, []string{nameLabel})
)

func init() {
	metrics.Registry.MustRegister(batchWindowDuration, batchSize)
}
