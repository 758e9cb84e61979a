package remote

import (
	"context"
	"io"
	"os"

	"github.com/walteh/adocsync/pkg/config"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register("local", NewLocal)
}

// LocalProvider reads source documents from the local filesystem.
type LocalProvider struct{}

// NewLocal creates a new local filesystem provider.
func NewLocal(ctx context.Context, args config.SourceArgs) (Provider, error) {
	return &LocalProvider{}, nil
}

// Name returns the name of the provider
func (p *LocalProvider) Name() string {
	return "local"
}

// Exists reports whether the file exists on disk
func (p *LocalProvider) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking source existence: %w", err)
}

// GetFile opens the file for reading
func (p *LocalProvider) GetFile(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening source file: %w", err)
	}
	return f, nil
}
