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

// Package options defines the planner's command-line/environment
// configuration surface: the fetcher/algorithm/writer registry selectors,
// plus the connection settings the concrete cloud-backed seams need.
package options

import (
	"flag"
	"fmt"
)

// Options holds every flag/env-driven setting the planner binary accepts.
type Options struct {
	TaskFetcherName string
	AlgorithmName   string
	PlanWriterName  string
	Debug           bool
	MetricsPort     int

	AWSRegion   string
	SQSQueueURL string
	S3Bucket    string
	S3Key       string
}

// AddFlags registers every option against fs, seeding each default from the
// matching environment variable.
func (o *Options) AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.TaskFetcherName, "task-fetcher", withDefaultString("TASK_FETCHER", "hard_coded"), "Name of the registered TaskFetcher to use")
	fs.StringVar(&o.AlgorithmName, "algorithm", withDefaultString("ALGORITHM", "right_based"), "Name of the registered scheduling algorithm to use")
	fs.StringVar(&o.PlanWriterName, "plan-writer", withDefaultString("PLAN_WRITER", "log"), "Name of the registered PlanWriter to use")
	fs.BoolVar(&o.Debug, "debug", withDefaultBool("DEBUG", true), "Enable debug-level structured logging")
	fs.IntVar(&o.MetricsPort, "metrics-port", 8080, "Port the Prometheus metrics endpoint binds to")
	fs.StringVar(&o.AWSRegion, "aws-region", withDefaultString("AWS_REGION", "us-east-1"), "AWS region for the sqs/s3 seams")
	fs.StringVar(&o.SQSQueueURL, "sqs-queue-url", withDefaultString("SQS_QUEUE_URL", ""), "SQS queue URL for the sqs task fetcher")
	fs.StringVar(&o.S3Bucket, "s3-bucket", withDefaultString("S3_BUCKET", ""), "S3 bucket for the s3 plan writer")
	fs.StringVar(&o.S3Key, "s3-key", withDefaultString("S3_KEY", "plans/latest.json"), "S3 object key for the s3 plan writer")
}

// Validate checks that the selected fetcher/writer have the settings they
// need to construct.
func (o *Options) Validate() error {
	if o.TaskFetcherName == "sqs" && o.SQSQueueURL == "" {
		return fmt.Errorf("options: task-fetcher=sqs requires -sqs-queue-url")
	}
	if o.PlanWriterName == "s3" && o.S3Bucket == "" {
		return fmt.Errorf("options: plan-writer=s3 requires -s3-bucket")
	}
	return nil
}
