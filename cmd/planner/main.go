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

// Command planner runs a single planning cycle: fetch pending task
// instances, schedule each pool independently, merge, and write the plan.
// It exits 0 on success and non-zero on any uncaught seam or orchestration
// failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clockworksched/planner/pkg/awsclients"
	"github.com/clockworksched/planner/pkg/logging"
	"github.com/clockworksched/planner/pkg/metrics"
	"github.com/clockworksched/planner/pkg/options"
	"github.com/clockworksched/planner/pkg/orchestrator"
	"github.com/clockworksched/planner/pkg/rightbased"
	"github.com/clockworksched/planner/pkg/seams/fixture"
	"github.com/clockworksched/planner/pkg/seams/logwriter"
	"github.com/clockworksched/planner/pkg/seams/s3writer"
	"github.com/clockworksched/planner/pkg/seams/sqsfetcher"
)

func main() {
	opts := &options.Options{}
	opts.AddFlags(flag.CommandLine)
	flag.Parse()

	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.NewLogger(opts.Debug)
	ctx := logging.IntoContext(context.Background(), log)

	if configHash, err := hashstructure.Hash(opts, hashstructure.FormatV2, nil); err == nil {
		log.V(1).Info("starting planner", "config_hash", configHash)
	}

	go serveMetrics(log, opts.MetricsPort)

	o, err := buildOrchestrator(ctx, opts)
	if err != nil {
		log.Error(err, "failed to build orchestrator")
		os.Exit(1)
	}

	if err := o.Run(ctx); err != nil {
		log.Error(err, "planning cycle failed")
		os.Exit(1)
	}
}

// buildOrchestrator resolves the configured task fetcher, algorithm, and
// plan writer against their registries and wires the default presto and
// spark pools.
func buildOrchestrator(ctx context.Context, opts *options.Options) (*orchestrator.Orchestrator, error) {
	fetcher, err := resolveTaskFetcher(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("resolving task fetcher %q: %w", opts.TaskFetcherName, err)
	}
	writer, err := resolvePlanWriter(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("resolving plan writer %q: %w", opts.PlanWriterName, err)
	}
	algorithm, err := resolveAlgorithm(opts)
	if err != nil {
		return nil, fmt.Errorf("resolving algorithm %q: %w", opts.AlgorithmName, err)
	}

	return &orchestrator.Orchestrator{
		Fetcher:   fetcher,
		Algorithm: algorithm,
		Writer:    writer,
		Pools: []orchestrator.Pool{
			{Name: "presto", Metadata: fixture.NewPrestoMetadataProvider()},
			{Name: "spark", Metadata: fixture.NewSparkMetadataProvider()},
		},
	}, nil
}

// resolveAlgorithm is the string-keyed algorithm registry.
func resolveAlgorithm(opts *options.Options) (orchestrator.Algorithm, error) {
	switch opts.AlgorithmName {
	case "right_based":
		return rightbased.Algorithm{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", opts.AlgorithmName)
	}
}

// resolveTaskFetcher is the string-keyed TaskFetcher registry.
func resolveTaskFetcher(ctx context.Context, opts *options.Options) (orchestrator.TaskFetcher, error) {
	switch opts.TaskFetcherName {
	case "hard_coded":
		return fixture.NewHardCodedTaskFetcher(), nil
	case "sqs":
		cfg, err := awsclients.LoadConfig(ctx, opts.AWSRegion)
		if err != nil {
			return nil, err
		}
		return sqsfetcher.New(awsclients.NewSQSClient(cfg), opts.SQSQueueURL, 10), nil
	default:
		return nil, fmt.Errorf("unknown task fetcher %q", opts.TaskFetcherName)
	}
}

// resolvePlanWriter is the string-keyed PlanWriter registry.
func resolvePlanWriter(ctx context.Context, opts *options.Options) (orchestrator.PlanWriter, error) {
	switch opts.PlanWriterName {
	case "log":
		return logwriter.New(), nil
	case "s3":
		cfg, err := awsclients.LoadConfig(ctx, opts.AWSRegion)
		if err != nil {
			return nil, err
		}
		return s3writer.New(awsclients.NewS3Client(cfg), opts.S3Bucket, opts.S3Key), nil
	default:
		return nil, fmt.Errorf("unknown plan writer %q", opts.PlanWriterName)
	}
}

func serveMetrics(log logr.Logger, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil { //nolint:gosec
		log.Error(err, "metrics server stopped")
	}
}
