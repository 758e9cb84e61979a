package operation

import (
	"gitlab.com/tozd/go/errors"
)

// 🔍 NewStatusOperation creates a dry-run operation that reports what a
// sync would change without writing any target.
func NewStatusOperation(opts Options) (Operation, error) {
	opts.DryRun = true
	op, err := NewSyncOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating status operation: %w", err)
	}
	return op, nil
}
