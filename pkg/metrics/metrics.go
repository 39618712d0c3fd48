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

// Package metrics holds the planner's Prometheus registry and the counters
// and histograms every planning cycle reports against. The binary has no
// framework manager to own a default registry, so a package-level registry
// is constructed directly and served by cmd/planner.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "planner"

// Registry is the planner's Prometheus registry. cmd/planner exposes it
// over an HTTP handler; tests may scrape it directly.
var Registry = prometheus.NewRegistry()

var (
	tasksScheduled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_scheduled_total",
		Help:      "Count of tasks successfully placed by schedule_tasks, by pool.",
	}, []string{"pool"})

	tasksRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_rejected_total",
		Help:      "Count of tasks whose window was fully contended, by pool.",
	}, []string{"pool"})

	poolDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pool_duration_seconds",
		Help:      "Wall time spent running schedule_tasks for one pool.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"pool"})

	binUtilization = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tracker_bin_utilization_ratio",
		Help:      "Fraction of max_size occupied by the busiest tracker bin after scheduling, by pool.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	}, []string{"pool"})
)

func init() {
	Registry.MustRegister(tasksScheduled, tasksRejected, poolDuration, binUtilization)
}

// ObserveTasksScheduled records that n tasks were placed in pool.
func ObserveTasksScheduled(pool string, n int) {
	tasksScheduled.WithLabelValues(pool).Add(float64(n))
}

// ObserveTasksRejected records that n tasks were rejected in pool.
func ObserveTasksRejected(pool string, n int) {
	if n <= 0 {
		return
	}
	tasksRejected.WithLabelValues(pool).Add(float64(n))
}

// ObservePoolDuration records how long schedule_tasks took for pool.
func ObservePoolDuration(pool string, seconds float64) {
	poolDuration.WithLabelValues(pool).Observe(seconds)
}

// ObserveBinUtilization records the busiest bin's occupancy ratio for pool.
func ObserveBinUtilization(pool string, ratio float64) {
	binUtilization.WithLabelValues(pool).Observe(ratio)
}
