package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/adocsync/pkg/config"
)

func TestParserRegistry(t *testing.T) {
	assert.NotNil(t, config.GetParser("jobs.yaml"))
	assert.NotNil(t, config.GetParser("jobs.yml"))
	assert.NotNil(t, config.GetParser("jobs.hcl"))
	assert.Nil(t, config.GetParser("jobs.toml"))
}

func TestLoad_YAML(t *testing.T) {
	content := `
jobs:
  - name: customer-360
    source: modules/finserv/pages/customer-360.adoc
    targets:
      - markdown/finserv/customer-360.md
    content_start_marker: "== 1. Node Labels and Properties"
    header_end_marker: "## 1. Node Labels and Properties"
  - name: fraud-detection
    source: modules/finserv/pages/fraud-detection.adoc
    targets:
      - markdown/finserv/fraud-detection.md
      - markdown/shared/fraud-detection.md
    content_start_marker: "== 1. Node Labels and Properties"
    header_end_marker: "## 1. Node Labels and Properties"
`
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, cfg.Jobs, 2)
	assert.Equal(t, "customer-360", cfg.Jobs[0].Name)
	assert.Equal(t, "modules/finserv/pages/customer-360.adoc", cfg.Jobs[0].Source)
	assert.Equal(t, []string{"markdown/finserv/customer-360.md"}, cfg.Jobs[0].Targets)
	assert.Equal(t, "== 1. Node Labels and Properties", cfg.Jobs[0].ContentStartMarker)
	assert.Len(t, cfg.Jobs[1].Targets, 2)
	assert.Equal(t, "local", cfg.Source.Provider)
}

func TestLoad_YAML_UnknownFieldRejected(t *testing.T) {
	content := `
jobs:
  - name: a
    source: a.adoc
    targets: [a.md]
    content_start_marker: x
    header_end_marker: y
    bogus_field: true
`
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := config.Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoad_HCL(t *testing.T) {
	content := `
job "customer-360" {
  source               = "modules/finserv/pages/customer-360.adoc"
  targets              = ["markdown/finserv/customer-360.md"]
  content_start_marker = "== 1. Node Labels and Properties"
  header_end_marker    = "## 1. Node Labels and Properties"
}

source {
  repo = "github.com/neo4j-graph-examples/industry-use-cases"
  ref  = "main"
}
`
	path := filepath.Join(t.TempDir(), "jobs.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, cfg.Jobs, 1)
	assert.Equal(t, "customer-360", cfg.Jobs[0].Name)
	assert.Equal(t, "github", cfg.Source.Provider)
	assert.Equal(t, "main", cfg.Source.Ref)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Jobs: []config.Job{{
				Name:               "a",
				Source:             "a.adoc",
				Targets:            []string{"a.md"},
				ContentStartMarker: "== A",
				HeaderEndMarker:    "## A",
			}},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantError string
	}{
		{name: "valid", mutate: func(cfg *config.Config) {}},
		{
			name:      "no_jobs",
			mutate:    func(cfg *config.Config) { cfg.Jobs = nil },
			wantError: "at least one job",
		},
		{
			name:      "missing_name",
			mutate:    func(cfg *config.Config) { cfg.Jobs[0].Name = "" },
			wantError: "name is required",
		},
		{
			name:      "duplicate_names",
			mutate:    func(cfg *config.Config) { cfg.Jobs = append(cfg.Jobs, cfg.Jobs[0]) },
			wantError: "duplicate name",
		},
		{
			name:      "missing_source",
			mutate:    func(cfg *config.Config) { cfg.Jobs[0].Source = "" },
			wantError: "source is required",
		},
		{
			name:      "missing_targets",
			mutate:    func(cfg *config.Config) { cfg.Jobs[0].Targets = nil },
			wantError: "at least one target",
		},
		{
			name:      "missing_content_marker",
			mutate:    func(cfg *config.Config) { cfg.Jobs[0].ContentStartMarker = "" },
			wantError: "content_start_marker is required",
		},
		{
			name:      "missing_header_marker",
			mutate:    func(cfg *config.Config) { cfg.Jobs[0].HeaderEndMarker = "" },
			wantError: "header_end_marker is required",
		},
		{
			name:      "github_provider_requires_repo",
			mutate:    func(cfg *config.Config) { cfg.Source = &config.SourceArgs{Provider: "github"} },
			wantError: "source.repo is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "local", cfg.Source.Provider)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.NotEmpty(t, cfg.Jobs)
	for _, job := range cfg.Jobs {
		assert.NotEmpty(t, job.Name)
		assert.NotEmpty(t, job.Targets)
	}
}
