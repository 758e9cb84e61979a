package remote

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/walteh/adocsync/pkg/config"
	"gitlab.com/tozd/go/errors"
)

var registry = map[string]Factory{}

// Factory constructs a provider from the configured source arguments.
type Factory func(ctx context.Context, args config.SourceArgs) (Provider, error)

func Register(name string, factory Factory) {
	registry[name] = factory
}

// New returns the provider selected by args.Provider.
func New(ctx context.Context, args config.SourceArgs) (Provider, error) {
	factory, ok := registry[args.Provider]
	if !ok {
		options := []string{}
		for k := range registry {
			options = append(options, k)
		}
		sort.Strings(options)
		return nil, errors.Errorf("provider %s not found, options: %s", args.Provider, strings.Join(options, ", "))
	}
	return factory(ctx, args)
}

// Provider is the primary interface for reading job source documents,
// whether from the local filesystem or a remote repository.
type Provider interface {
	// Name returns the name of the provider (e.g. "github")
	Name() string
	// Exists reports whether the source document exists. A missing
	// source is a skip condition for its job, not an error.
	Exists(ctx context.Context, path string) (bool, error)
	// GetFile returns a reader for the source document content
	GetFile(ctx context.Context, path string) (io.ReadCloser, error)
}
