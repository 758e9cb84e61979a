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

package status_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/adocsync/pkg/status"
)

func newTestManager(t *testing.T) *status.Manager {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return status.NewManager(&logger, status.NewDefaultFileFormatter())
}

func TestWriteFileAtomic(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	dir := t.TempDir()

	t.Run("creates_file_and_parents", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "deep", "file.md")
		err := mgr.WriteFileAtomic(ctx, path, []byte("content"))
		require.NoError(t, err)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "content", string(got))
	})

	t.Run("overwrites_existing", func(t *testing.T) {
		path := filepath.Join(dir, "file.md")
		require.NoError(t, mgr.WriteFileAtomic(ctx, path, []byte("first")))
		require.NoError(t, mgr.WriteFileAtomic(ctx, path, []byte("second")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("leaves_no_temp_file", func(t *testing.T) {
		path := filepath.Join(dir, "clean.md")
		require.NoError(t, mgr.WriteFileAtomic(ctx, path, []byte("x")))

		_, err := os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestCompare(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	dir := t.TempDir()

	t.Run("missing_file_is_new", func(t *testing.T) {
		st, err := mgr.Compare(ctx, filepath.Join(dir, "absent.md"), []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, status.StatusNew, st)
	})

	t.Run("same_content_is_unchanged", func(t *testing.T) {
		path := filepath.Join(dir, "same.md")
		require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0644))

		st, err := mgr.Compare(ctx, path, []byte("hello\n"))
		require.NoError(t, err)
		assert.Equal(t, status.StatusUnchanged, st)
	})

	t.Run("different_content_is_modified", func(t *testing.T) {
		path := filepath.Join(dir, "diff.md")
		require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0644))

		st, err := mgr.Compare(ctx, path, []byte("goodbye\n"))
		require.NoError(t, err)
		assert.Equal(t, status.StatusModified, st)
	})
}

func TestFileTracking(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)

	mgr.TrackFile(ctx, "b.md", status.FileInfo{Job: "beta", Status: status.StatusModified})
	mgr.TrackFile(ctx, "a.md", status.FileInfo{Job: "alpha", Status: status.StatusUnchanged})

	info, err := mgr.GetFileInfo(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, "alpha", info.Job)
	assert.Equal(t, "a.md", info.Path)

	_, err = mgr.GetFileInfo(ctx, "untracked.md")
	require.Error(t, err)

	files := mgr.ListFiles(ctx)
	require.Len(t, files, 2)
	assert.Equal(t, "a.md", files[0].Path)
	assert.Equal(t, "b.md", files[1].Path)
}

func TestFileStatusString(t *testing.T) {
	assert.Equal(t, "new", status.StatusNew.String())
	assert.Equal(t, "modified", status.StatusModified.String())
	assert.Equal(t, "unchanged", status.StatusUnchanged.String())
	assert.Equal(t, "failed", status.StatusFailed.String())
	assert.Equal(t, "unknown", status.StatusUnknown.String())
}

func TestDefaultFileFormatter(t *testing.T) {
	f := status.NewDefaultFileFormatter()

	assert.Contains(t, f.FormatFileOperation("doc.md", status.StatusNew), "doc.md")
	assert.Contains(t, f.FormatFileOperation("doc.md", status.StatusModified), "Updated")
	assert.Contains(t, f.FormatProgress(1, 4), "25%")
}
