// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/adocsync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes operations and reports their outcome
type Runner struct {
	logger  *zerolog.Logger
	userLog *status.UserLogger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, userLog *status.UserLogger) *Runner {
	return &Runner{
		logger:  logger,
		userLog: userLog,
	}
}

// 🏃 Run executes an operation and prints the final summary partition
func (r *Runner) Run(ctx context.Context, op Operation) (*Summary, error) {
	start := time.Now()

	summary, err := op.Execute(ctx)
	if err != nil {
		return nil, errors.Errorf("executing operation: %w", err)
	}

	successful := []string{}
	skipped := []status.SkippedJob{}
	for _, result := range summary.Results {
		switch result.State {
		case JobSuccessful:
			successful = append(successful, result.Job.Name)
		case JobSkipped:
			skipped = append(skipped, status.SkippedJob{Name: result.Job.Name, Reason: result.Reason})
		}
	}

	if r.userLog != nil {
		r.userLog.LogSummary(successful, skipped)
	}

	r.logger.Info().
		Int("successful", len(successful)).
		Int("skipped", len(skipped)).
		Dur("elapsed", time.Since(start)).
		Msg("operation complete")

	return summary, nil
}
