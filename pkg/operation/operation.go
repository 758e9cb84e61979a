// Package operation provides the core conversion driver: it walks the
// configured jobs, converts each source document once, and splices the
// result into every target file.
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/adocsync/pkg/config"
	"github.com/walteh/adocsync/pkg/log"
	"github.com/walteh/adocsync/pkg/remote"
	"github.com/walteh/adocsync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a runnable unit of work over the configured jobs
type Operation interface {
	// Execute runs the operation and returns the per-job outcome
	Execute(ctx context.Context) (*Summary, error)
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Config is the adocsync configuration
	Config *config.Config
	// Provider reads job source documents
	Provider remote.Provider
	// StatusMgr handles target file I/O and status tracking
	StatusMgr *status.Manager
	// UserLog prints user-facing job feedback
	UserLog *status.UserLogger
	// Console prints per-file operation lines
	Console *log.Logger
	// Logger is the structured logger
	Logger *zerolog.Logger
	// DryRun computes statuses without writing any target
	DryRun bool
}

// 🔍 validate checks that all required options are set
func (opts Options) validate() error {
	if opts.Config == nil {
		return errors.New("config is required")
	}
	if opts.Provider == nil {
		return errors.New("provider is required")
	}
	if opts.StatusMgr == nil {
		return errors.New("status manager is required")
	}
	if opts.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// 🏗️ BaseOperation provides common functionality for operations
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}

// 📊 JobState is the terminal state of one job
type JobState int

const (
	JobPending JobState = iota
	JobSuccessful
	JobSkipped
)

// String returns a string representation of JobState
func (s JobState) String() string {
	switch s {
	case JobSuccessful:
		return "successful"
	case JobSkipped:
		return "skipped"
	default:
		return "pending"
	}
}

// 📋 Result is the outcome of one job
type Result struct {
	Job     config.Job
	State   JobState
	Reason  string            // why the job was skipped, empty on success
	Targets []status.FileInfo // per-target outcome, in target order
}

// 📊 Summary partitions job results, preserving configured order
type Summary struct {
	Results []Result
}

// Successful returns the successful jobs in configured order
func (s *Summary) Successful() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.State == JobSuccessful {
			out = append(out, r)
		}
	}
	return out
}

// Skipped returns the skipped jobs in configured order
func (s *Summary) Skipped() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.State == JobSkipped {
			out = append(out, r)
		}
	}
	return out
}
