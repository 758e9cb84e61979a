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
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/adocsync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func newTestUserLogger(t *testing.T) (*status.UserLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	printers := []*pterm.PrefixPrinter{&pterm.Info, &pterm.Success, &pterm.Warning, &pterm.Error, &pterm.Debug}
	saved := make([]io.Writer, len(printers))
	for i, p := range printers {
		saved[i] = p.Writer
		p.Writer = &buf
	}
	t.Cleanup(func() {
		for i, p := range printers {
			p.Writer = saved[i]
		}
		pterm.SetDefaultOutput(os.Stdout)
	})

	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	return status.NewUserLogger(ctx), &buf
}

func TestChangeTypeFor(t *testing.T) {
	assert.Equal(t, status.FileAdded, status.ChangeTypeFor(status.StatusNew))
	assert.Equal(t, status.FileUpdated, status.ChangeTypeFor(status.StatusModified))
	assert.Equal(t, status.FileError, status.ChangeTypeFor(status.StatusFailed))
	assert.Equal(t, status.FileUnchanged, status.ChangeTypeFor(status.StatusUnchanged))
	assert.Equal(t, status.FileUnchanged, status.ChangeTypeFor(status.StatusUnknown))
}

func TestLogFileChange(t *testing.T) {
	u, buf := newTestUserLogger(t)

	u.LogFileChange(status.FileChange{
		Type: status.FileUpdated,
		Path: "markdown/customer-360.md",
	})
	assert.Contains(t, buf.String(), "Updated markdown/customer-360.md")

	buf.Reset()
	u.LogFileChange(status.FileChange{
		Type:  status.FileError,
		Path:  "markdown/broken.md",
		Error: errors.New("permission denied"),
	})
	assert.Contains(t, buf.String(), "Error markdown/broken.md")
	assert.Contains(t, buf.String(), "permission denied")
}

func TestLogValidation(t *testing.T) {
	u, buf := newTestUserLogger(t)

	u.LogValidation(true, "configuration valid", nil)
	assert.Contains(t, buf.String(), "configuration valid")

	buf.Reset()
	u.LogValidation(false, "configuration invalid", errors.New("missing marker"))
	assert.Contains(t, buf.String(), "configuration invalid")
	assert.Contains(t, buf.String(), "missing marker")
}

func TestLogSummary(t *testing.T) {
	u, buf := newTestUserLogger(t)

	u.LogSummary(
		[]string{"customer-360", "fraud-detection"},
		[]status.SkippedJob{{Name: "supply-chain", Reason: "source missing"}},
	)

	out := buf.String()
	assert.Contains(t, out, "Successful (2)")
	assert.Contains(t, out, "customer-360")
	assert.Contains(t, out, "Skipped (1)")
	assert.Contains(t, out, "supply-chain: source missing")
}
