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

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 SourceArgs selects where job sources are read from. The default is
// the local filesystem; setting Repo switches jobs to the GitHub
// provider, resolving job sources as paths within that repository.
type SourceArgs struct {
	Provider string `yaml:"provider,omitempty" hcl:"provider,optional"` // "local" or "github"
	Repo     string `yaml:"repo,omitempty" hcl:"repo,optional"`         // e.g. github.com/org/repo
	Ref      string `yaml:"ref,omitempty" hcl:"ref,optional"`           // branch or tag
}

// 🔄 Job is one configured conversion: an AsciiDoc source spliced into
// one or more Markdown targets. Markers are exact-match line strings.
type Job struct {
	Name               string   `yaml:"name" hcl:"name,label"`
	Source             string   `yaml:"source" hcl:"source"`
	Targets            []string `yaml:"targets" hcl:"targets"`
	ContentStartMarker string   `yaml:"content_start_marker" hcl:"content_start_marker"`
	HeaderEndMarker    string   `yaml:"header_end_marker" hcl:"header_end_marker"`
	IgnorePatterns     []string `yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Source *SourceArgs `yaml:"source,omitempty" hcl:"source,block"`
	Jobs   []Job       `yaml:"jobs" hcl:"job,block"`
	Async  bool        `yaml:"async,omitempty" hcl:"async,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Jobs) == 0 {
		return errors.New("at least one job is required")
	}

	seen := map[string]bool{}
	for i, job := range cfg.Jobs {
		if job.Name == "" {
			return errors.Errorf("job %d: name is required", i)
		}
		if seen[job.Name] {
			return errors.Errorf("job %q: duplicate name", job.Name)
		}
		seen[job.Name] = true

		if job.Source == "" {
			return errors.Errorf("job %q: source is required", job.Name)
		}
		if len(job.Targets) == 0 {
			return errors.Errorf("job %q: at least one target is required", job.Name)
		}
		if job.ContentStartMarker == "" {
			return errors.Errorf("job %q: content_start_marker is required", job.Name)
		}
		if job.HeaderEndMarker == "" {
			return errors.Errorf("job %q: header_end_marker is required", job.Name)
		}
	}

	// Set defaults
	if cfg.Source == nil {
		cfg.Source = &SourceArgs{}
	}
	if cfg.Source.Provider == "" {
		if cfg.Source.Repo != "" {
			cfg.Source.Provider = "github"
		} else {
			cfg.Source.Provider = "local"
		}
	}
	if cfg.Source.Provider == "github" {
		if cfg.Source.Repo == "" {
			return errors.New("source.repo is required for the github provider")
		}
		if cfg.Source.Ref == "" {
			cfg.Source.Ref = "main"
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	names := make([]string, len(cfg.Jobs))
	for i, job := range cfg.Jobs {
		names[i] = job.Name
	}
	provider := "local"
	if cfg.Source != nil && cfg.Source.Provider != "" {
		provider = cfg.Source.Provider
	}
	return fmt.Sprintf("%s: [%s]", provider, strings.Join(names, ", "))
}
