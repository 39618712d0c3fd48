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

// Package logging builds the planner's structured logger and carries it on
// a context.Context: zap-backed, logr-fronted.
package logging

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// NewLogger constructs a logr.Logger backed by zap. debug selects
// development mode: human-readable, DEBUG-and-above output to stdout.
func NewLogger(debug bool) logr.Logger {
	var zapLog *zap.Logger
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stdout"}
		zapLog = zap.Must(cfg.Build())
	} else {
		zapLog = zap.Must(zap.NewProduction())
	}
	return zapr.NewLogger(zapLog)
}

// IntoContext returns a copy of ctx carrying log as the logger FromContext
// will retrieve.
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger carried on ctx, or a no-op logger if none
// was set.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
