package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/adocsync/pkg/operation"
	"github.com/walteh/adocsync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report which targets a sync would change, without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "status").Logger().WithContext(ctx)

			opts, err := newRootOpts(ctx)
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}

			opts.Console.Header("checking documentation status")

			op, err := operation.NewStatusOperation(opts.operationOptions(true))
			if err != nil {
				return errors.Errorf("creating status operation: %w", err)
			}

			runner := operation.NewRunner(opts.Logger, opts.UserLog)
			summary, err := runner.Run(ctx, op)
			if err != nil {
				opts.Console.Errorf("status check failed: %v", err)
				return errors.Errorf("checking status: %w", err)
			}

			changed := 0
			for _, result := range summary.Successful() {
				for _, target := range result.Targets {
					if target.Status == status.StatusModified || target.Status == status.StatusNew {
						changed++
					}
				}
			}
			opts.Console.LogNewline()
			opts.Console.Infof("%d targets would change", changed)

			return nil
		},
	}
}
