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

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the current state of a target file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusNew                  // Path doesn't exist yet (Compare-level only: sync targets must pre-exist)
	StatusModified             // Target exists but spliced content differs
	StatusUnchanged            // Target exists and content matches
	StatusFailed               // Target could not be written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a target file
type FileInfo struct {
	Path     string     // Path to the target file
	Job      string     // Name of the job that owns the target
	Status   FileStatus // Current status
	Size     int64      // Content size in bytes
	Checksum string     // Content hash for diff detection
	Error    error      // Any error associated with this file
}

// 🔧 Manager handles target file I/O and tracks per-target status
type Manager struct {
	logger    *zerolog.Logger
	formatter FileFormatter

	// Status tracking
	mu    sync.RWMutex
	files map[string]FileInfo

	// Progress tracking
	total     int
	processed int
}

// 🏭 NewManager creates a new status manager
func NewManager(logger *zerolog.Logger, formatter FileFormatter) *Manager {
	return &Manager{
		logger:    logger,
		formatter: formatter,
		files:     make(map[string]FileInfo),
	}
}

// 🔍 calculateChecksum generates a SHA-256 hash of the content
func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ReadFile reads a target file's current content
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// FileExists reports whether a target file exists
func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// WriteFileAtomic writes content through a temp file and rename, so a
// crash never leaves a half-written target behind
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 🔍 Compare classifies what writing content to path would change
func (m *Manager) Compare(ctx context.Context, path string, content []byte) (FileStatus, error) {
	exists, err := m.FileExists(ctx, path)
	if err != nil {
		return StatusUnknown, err
	}
	if !exists {
		return StatusNew, nil
	}

	current, err := m.ReadFile(ctx, path)
	if err != nil {
		return StatusUnknown, err
	}
	if calculateChecksum(current) == calculateChecksum(content) {
		return StatusUnchanged, nil
	}
	return StatusModified, nil
}

// StatusReporter implementation

// TrackFile records the status of a target file
func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info.Path = path
	m.files[path] = info

	m.logger.Debug().
		Str("path", path).
		Str("job", info.Job).
		Str("status", info.Status.String()).
		Msg("tracking file")
}

// GetFileInfo returns the recorded status of a target file
func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", path)
	}
	return info, nil
}

// ListFiles returns all tracked files sorted by path
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })
	return infos
}

// StartOperation begins progress tracking for a run of total targets
func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total = total
	m.processed = 0
}

// UpdateProgress records that processed targets are done
func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed = processed
	m.logger.Debug().Msg(m.formatter.FormatProgress(processed, m.total))
}

// FinishOperation ends progress tracking
func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger.Debug().Msg(m.formatter.FormatProgress(m.processed, m.total))
	m.total = 0
	m.processed = 0
}
