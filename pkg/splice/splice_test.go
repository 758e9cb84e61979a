package splice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestExtractHeader(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		marker    string
		want      string
		wantError error
	}{
		{
			name:   "header_before_marker",
			target: "# Title\n\nIntro paragraph.\n## 1. Node Labels and Properties\nold body",
			marker: "## 1. Node Labels and Properties",
			want:   "# Title\n\nIntro paragraph.",
		},
		{
			name:   "marker_on_first_line_yields_empty_header",
			target: "## 1. Node Labels and Properties\nbody",
			marker: "## 1. Node Labels and Properties",
			want:   "",
		},
		{
			name:   "only_first_marker_counts",
			target: "a\nMARK\nb\nMARK\nc",
			marker: "MARK",
			want:   "a",
		},
		{
			name:      "missing_marker_is_an_error",
			target:    "# Title\nno marker here",
			marker:    "## 1. Node Labels and Properties",
			wantError: ErrHeaderMarkerNotFound,
		},
		{
			name:      "partial_match_does_not_count",
			target:    "prefix MARK suffix\n",
			marker:    "MARK",
			wantError: ErrHeaderMarkerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractHeader(tt.target, tt.marker)
			if tt.wantError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractContent(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		marker    string
		want      string
		wantError error
	}{
		{
			name:   "body_from_marker_inclusive",
			source: "= Page Title\n:attr: x\n\n== 1. Node Labels and Properties\nbody line",
			marker: "== 1. Node Labels and Properties",
			want:   "== 1. Node Labels and Properties\nbody line",
		},
		{
			name:   "marker_on_last_line",
			source: "a\nb\nMARK",
			marker: "MARK",
			want:   "MARK",
		},
		{
			name:      "missing_marker_is_an_error",
			source:    "= Page Title\nno marker",
			marker:    "== 1. Node Labels and Properties",
			wantError: ErrContentMarkerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractContent(tt.source, tt.marker)
			if tt.wantError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Extracted content always starts with the marker line itself.
func TestExtractContent_RoundTrip(t *testing.T) {
	sources := []string{
		"MARK\nbody",
		"a\nb\nMARK\nc",
		"a\n\nMARK",
	}
	for _, source := range sources {
		got, err := ExtractContent(source, "MARK")
		require.NoError(t, err)
		assert.Equal(t, "MARK", strings.Split(got, "\n")[0])
	}
}

func TestCollapseBlankLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no_blanks", input: "a\nb", want: "a\nb"},
		{name: "single_blank_kept", input: "a\n\nb", want: "a\n\nb"},
		{name: "double_blank_collapsed", input: "a\n\n\nb", want: "a\n\nb"},
		{name: "long_run_collapsed", input: "a\n\n\n\n\n\nb", want: "a\n\nb"},
		{name: "whitespace_only_lines_are_blank", input: "a\n \n\t\nb", want: "a\n\nb"},
		{name: "empty_input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseBlankLines(tt.input))
		})
	}
}

func TestCollapseBlankLines_Idempotent(t *testing.T) {
	inputs := []string{
		"a\n\n\nb\n\n\n\nc",
		"\n\na\n\n",
		"a\nb\nc",
	}
	for _, input := range inputs {
		once := CollapseBlankLines(input)
		assert.Equal(t, once, CollapseBlankLines(once))
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name   string
		header string
		body   string
		want   string
	}{
		{
			name:   "single_blank_seam",
			header: "# Title\nIntro.",
			body:   "## Section\ncontent",
			want:   "# Title\nIntro.\n\n## Section\ncontent\n",
		},
		{
			name:   "body_trimmed_and_collapsed",
			header: "# Title",
			body:   "\n\n## Section\n\n\n\ncontent\n\n",
			want:   "# Title\n\n## Section\n\ncontent\n",
		},
		{
			name:   "header_trailing_blanks_do_not_stack",
			header: "# Title\n\n\n",
			body:   "content",
			want:   "# Title\n\ncontent\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Splice(tt.header, tt.body)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\n\n\n")
		})
	}
}
