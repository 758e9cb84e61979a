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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/adocsync/pkg/config"
	"github.com/walteh/adocsync/pkg/log"
	"github.com/walteh/adocsync/pkg/operation"
	"github.com/walteh/adocsync/pkg/remote"
	"github.com/walteh/adocsync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	async      bool
)

// rootOpts holds the shared dependencies built once per invocation
type rootOpts struct {
	Config    *config.Config
	Provider  remote.Provider
	StatusMgr *status.Manager
	UserLog   *status.UserLogger
	Console   *log.Logger
	Logger    *zerolog.Logger
}

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*rootOpts, error) {
	logger := zerolog.Ctx(ctx)
	userLog := status.NewUserLogger(ctx)

	// Load config: the built-in job list unless a file is given
	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			userLog.LogValidation(false, "configuration invalid", err)
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
		if err := cfg.Validate(); err != nil {
			userLog.LogValidation(false, "built-in configuration invalid", err)
			return nil, errors.Errorf("validating built-in config: %w", err)
		}
	}
	userLog.LogValidation(true, "configuration valid: "+cfg.String(), nil)
	if async {
		cfg.Async = true
	}

	// Create source provider
	provider, err := remote.New(ctx, *cfg.Source)
	if err != nil {
		return nil, errors.Errorf("creating provider: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &rootOpts{
		Config:    cfg,
		Provider:  provider,
		StatusMgr: status.NewManager(logger, status.NewDefaultFileFormatter()),
		UserLog:   userLog,
		Console:   log.New(os.Stdout, level),
		Logger:    logger,
	}, nil
}

// operationOptions maps rootOpts onto operation options
func (o *rootOpts) operationOptions(dryRun bool) operation.Options {
	return operation.Options{
		Config:    o.Config,
		Provider:  o.Provider,
		StatusMgr: o.StatusMgr,
		UserLog:   o.UserLog,
		Console:   o.Console,
		Logger:    o.Logger,
		DryRun:    dryRun,
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: built-in job list)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "convert jobs concurrently")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}
