package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/adocsync/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

var dryRun bool

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Convert AsciiDoc sources and update Markdown targets",
		Long: `Sync runs every configured job in order. For each job it:
1. Reads the AsciiDoc source (skipping the job if it is missing)
2. Extracts the body from the content start marker onward
3. Converts the body to Markdown
4. Splices the result under each target's preserved header and overwrites it`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "sync").Logger().WithContext(ctx)

			opts, err := newRootOpts(ctx)
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}

			opts.Console.Header("syncing documentation")

			op, err := operation.NewSyncOperation(opts.operationOptions(dryRun))
			if err != nil {
				return errors.Errorf("creating sync operation: %w", err)
			}

			runner := operation.NewRunner(opts.Logger, opts.UserLog)
			summary, err := runner.Run(ctx, op)
			if err != nil {
				opts.Console.Errorf("sync failed: %v", err)
				return errors.Errorf("syncing documentation: %w", err)
			}

			opts.Console.LogNewline()
			if skipped := summary.Skipped(); len(skipped) > 0 {
				opts.Console.Warningf("%d of %d jobs skipped", len(skipped), len(summary.Results))
			} else {
				opts.Console.Successf("synced %d jobs", len(summary.Results))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing targets")

	return cmd
}
