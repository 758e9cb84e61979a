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

package remote

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/walteh/adocsync/pkg/config"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register("github", NewGitHub)
}

// 🎯 GitHubProvider reads source documents from a GitHub repository at a
// fixed ref, so docs can be converted without a local checkout.
type GitHubProvider struct {
	client *github.Client
	owner  string
	repo   string
	ref    string
}

// 🏭 NewGitHub creates a new GitHub provider. GITHUB_TOKEN is optional;
// without it the client is unauthenticated and rate-limited.
func NewGitHub(ctx context.Context, args config.SourceArgs) (Provider, error) {
	owner, repo, err := parseRepo(args.Repo)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(nil)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = client.WithAuthToken(token)
	} else {
		zerolog.Ctx(ctx).Debug().Msg("GITHUB_TOKEN not set, using unauthenticated client")
	}

	return &GitHubProvider{
		client: client,
		owner:  owner,
		repo:   repo,
		ref:    args.Ref,
	}, nil
}

// 🔍 parseRepo parses a GitHub repository URL
func parseRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(strings.TrimPrefix(repo, "github.com/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("invalid repository format: %s", repo)
	}
	return parts[0], parts[1], nil
}

// 📝 Name returns the name of the provider
func (p *GitHubProvider) Name() string {
	return "github"
}

// 🔍 Exists reports whether the file exists in the repository at the ref
func (p *GitHubProvider) Exists(ctx context.Context, path string) (bool, error) {
	_, _, resp, err := p.client.Repositories.GetContents(ctx, p.owner, p.repo, path, &github.RepositoryContentGetOptions{
		Ref: p.ref,
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, errors.Errorf("checking source existence: %w", err)
	}
	return true, nil
}

// 📥 GetFile retrieves a single file's contents
func (p *GitHubProvider) GetFile(ctx context.Context, path string) (io.ReadCloser, error) {
	content, _, _, err := p.client.Repositories.GetContents(ctx, p.owner, p.repo, path, &github.RepositoryContentGetOptions{
		Ref: p.ref,
	})
	if err != nil {
		return nil, errors.Errorf("getting file content: %w", err)
	}
	if content == nil {
		return nil, errors.Errorf("path is not a file: %s", path)
	}

	data, err := content.GetContent()
	if err != nil {
		return nil, errors.Errorf("decoding content: %w", err)
	}

	return io.NopCloser(strings.NewReader(data)), nil
}
