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

// Package splice joins a preserved target header with a freshly
// converted document body, normalizing blank lines across the seam.
// Headers and bodies are delimited by exact-match marker lines.
package splice

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrContentMarkerNotFound means the source document has no line
	// equal to the configured content start marker.
	ErrContentMarkerNotFound = errors.New("content start marker not found in source")

	// ErrHeaderMarkerNotFound means the target document has no line
	// equal to the configured header end marker. This is a hard failure:
	// treating the whole target as header would duplicate its content on
	// the next write.
	ErrHeaderMarkerNotFound = errors.New("header end marker not found in target")
)

// ExtractHeader returns every line of targetText before the first line
// exactly equal to headerEndMarker, excluding the marker line itself.
func ExtractHeader(targetText, headerEndMarker string) (string, error) {
	lines := strings.Split(targetText, "\n")
	for i, line := range lines {
		if line == headerEndMarker {
			return strings.Join(lines[:i], "\n"), nil
		}
	}
	return "", errors.Errorf("%w: %q", ErrHeaderMarkerNotFound, headerEndMarker)
}

// ExtractContent returns the suffix of sourceText starting at (and
// including) the first line exactly equal to contentStartMarker.
func ExtractContent(sourceText, contentStartMarker string) (string, error) {
	lines := strings.Split(sourceText, "\n")
	for i, line := range lines {
		if line == contentStartMarker {
			return strings.Join(lines[i:], "\n"), nil
		}
	}
	return "", errors.Errorf("%w: %q", ErrContentMarkerNotFound, contentStartMarker)
}

// CollapseBlankLines reduces every run of two-or-more consecutive blank
// lines to exactly one blank line. Applying it twice yields the same
// result as applying it once.
func CollapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Splice concatenates header, one blank line, and the trimmed body,
// collapsing blank-line runs within the body and again across the full
// result so the header/body boundary is covered. The result always ends
// with a single trailing newline and is the exact content written back
// to the target file.
func Splice(header, body string) string {
	body = CollapseBlankLines(strings.TrimSpace(body))
	joined := strings.TrimRight(header, "\n") + "\n\n" + body
	return CollapseBlankLines(joined) + "\n"
}
