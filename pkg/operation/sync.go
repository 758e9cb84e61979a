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
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/adocsync/pkg/config"
	"github.com/walteh/adocsync/pkg/convert"
	"github.com/walteh/adocsync/pkg/log"
	"github.com/walteh/adocsync/pkg/splice"
	"github.com/walteh/adocsync/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// asyncJobLimit bounds concurrent jobs when async execution is enabled.
const asyncJobLimit = 4

// 📦 NewSyncOperation creates the conversion driver operation
func NewSyncOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("invalid options: %w", err)
	}
	return &syncOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 📦 syncOperation implements the mapping driver
type syncOperation struct {
	BaseOperation
}

// 🏃 Execute converts every configured job. Jobs are isolated: one
// job's failure records a skip and never aborts the run. The returned
// error is reserved for faults outside any job's scope.
func (op *syncOperation) Execute(ctx context.Context) (*Summary, error) {
	jobs := op.Config.Jobs
	results := make([]Result, len(jobs))

	op.StatusMgr.StartOperation(ctx, len(jobs))
	defer op.StatusMgr.FinishOperation(ctx)

	if op.Config.Async {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(asyncJobLimit)
		for i, job := range jobs {
			i, job := i, job
			g.Go(func() error {
				results[i] = op.runJob(gctx, job)
				return nil
			})
		}
		// The group never returns a job error, only context failures.
		if err := g.Wait(); err != nil {
			return nil, errors.Errorf("waiting for jobs: %w", err)
		}
	} else {
		for i, job := range jobs {
			results[i] = op.runJob(ctx, job)
			op.StatusMgr.UpdateProgress(ctx, i+1)
		}
	}

	return &Summary{Results: results}, nil
}

// 🏃 runJob converts one job: read source, extract body, convert once,
// then splice into each target independently.
func (op *syncOperation) runJob(ctx context.Context, job config.Job) Result {
	logger := op.Logger.With().Str("job", job.Name).Logger()

	if op.UserLog != nil {
		op.UserLog.LogJobStart(job.Name, job.Source)
	}
	if op.Console != nil {
		op.Console.StartJobOperation(ctx, log.JobOperation{Name: job.Name, Source: job.Source})
		defer op.Console.EndJobOperation(ctx)
	}

	exists, err := op.Provider.Exists(ctx, job.Source)
	if err != nil {
		return op.skip(job, fmt.Sprintf("checking source: %v", err))
	}
	if !exists {
		logger.Info().Str("source", job.Source).Msg("source missing, skipping")
		return op.skip(job, "source missing")
	}

	source, err := op.readSource(ctx, job.Source)
	if err != nil {
		return op.skip(job, fmt.Sprintf("reading source: %v", err))
	}

	body, err := splice.ExtractContent(source, job.ContentStartMarker)
	if err != nil {
		logger.Warn().Err(err).Msg("content marker not found")
		return op.skip(job, fmt.Sprintf("extracting content: %v", err))
	}

	// One conversion per job, shared by every target.
	converted := convert.Document(body)

	targets, err := op.expandTargets(job)
	if err != nil {
		return op.skip(job, fmt.Sprintf("expanding targets: %v", err))
	}
	if len(targets) == 0 {
		return op.skip(job, "no targets matched")
	}

	result := Result{Job: job, State: JobSuccessful}
	for _, target := range targets {
		info, err := op.writeTarget(ctx, job, target, converted)
		result.Targets = append(result.Targets, info)
		if err != nil {
			logger.Warn().Err(err).Str("target", target).Msg("target failed")
			result.State = JobSkipped
			result.Reason = fmt.Sprintf("target %s: %v", target, err)
			// Earlier targets of this job stay written; later ones are
			// not attempted.
			break
		}
	}
	return result
}

// 📥 readSource reads the whole source document through the provider
func (op *syncOperation) readSource(ctx context.Context, path string) (string, error) {
	rc, err := op.Provider.GetFile(ctx, path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", errors.Errorf("reading source: %w", err)
	}
	return string(data), nil
}

// 📄 writeTarget splices the converted body under the target's own
// header and overwrites the target file.
func (op *syncOperation) writeTarget(ctx context.Context, job config.Job, target, converted string) (status.FileInfo, error) {
	info := status.FileInfo{Path: target, Job: job.Name}

	// Targets must pre-exist: their header is the preserved region. A
	// missing target fails the job here, so StatusNew never classifies
	// a sync write.
	current, err := op.StatusMgr.ReadFile(ctx, target)
	if err != nil {
		info.Status, info.Error = status.StatusFailed, err
		op.track(ctx, target, info)
		return info, err
	}

	header, err := splice.ExtractHeader(string(current), job.HeaderEndMarker)
	if err != nil {
		info.Status, info.Error = status.StatusFailed, err
		op.track(ctx, target, info)
		return info, err
	}

	final := []byte(splice.Splice(header, converted))

	fileStatus, err := op.StatusMgr.Compare(ctx, target, final)
	if err != nil {
		info.Status, info.Error = status.StatusFailed, err
		op.track(ctx, target, info)
		return info, err
	}
	info.Status = fileStatus
	info.Size = int64(len(final))

	if !op.DryRun {
		if err := op.StatusMgr.WriteFileAtomic(ctx, target, final); err != nil {
			info.Status, info.Error = status.StatusFailed, err
			op.track(ctx, target, info)
			return info, err
		}
	}

	op.track(ctx, target, info)
	return info, nil
}

// 📝 track records and prints one target outcome
func (op *syncOperation) track(ctx context.Context, target string, info status.FileInfo) {
	op.StatusMgr.TrackFile(ctx, target, info)

	if op.UserLog != nil {
		op.UserLog.LogFileChange(status.FileChange{
			Type:  status.ChangeTypeFor(info.Status),
			Path:  target,
			Error: info.Error,
		})
	}

	if op.Console != nil {
		op.Console.LogFileOperation(ctx, log.FileOperation{
			Path:       target,
			Job:        info.Job,
			Status:     info.Status.String(),
			IsNew:      info.Status == status.StatusNew,
			IsModified: info.Status == status.StatusModified,
			IsFailed:   info.Status == status.StatusFailed,
		})
	}
}

// 🔍 expandTargets resolves glob targets against the filesystem and
// filters out ignored paths. Literal targets pass through untouched so
// a missing target is reported by the job, not silently dropped.
func (op *syncOperation) expandTargets(job config.Job) ([]string, error) {
	var targets []string
	for _, t := range job.Targets {
		if !strings.ContainsAny(t, "*?[{") {
			targets = append(targets, t)
			continue
		}
		matches, err := doublestar.FilepathGlob(t)
		if err != nil {
			return nil, errors.Errorf("bad target pattern %q: %w", t, err)
		}
		targets = append(targets, matches...)
	}

	if len(job.IgnorePatterns) == 0 {
		return targets, nil
	}

	kept := targets[:0]
	for _, t := range targets {
		ignored := false
		for _, pattern := range job.IgnorePatterns {
			matched, err := doublestar.Match(pattern, t)
			if err != nil {
				return nil, errors.Errorf("bad ignore pattern %q: %w", pattern, err)
			}
			if matched {
				ignored = true
				break
			}
		}
		if !ignored {
			kept = append(kept, t)
		}
	}
	return kept, nil
}

// ⏭️ skip records a job as skipped with the given reason
func (op *syncOperation) skip(job config.Job, reason string) Result {
	return Result{Job: job, State: JobSkipped, Reason: reason}
}
