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

package convert

import (
	"regexp"
	"strings"
)

const (
	// codeFence is the AsciiDoc listing-block delimiter.
	codeFence = "----"
	// admonitionFence delimits the end of an admonition block.
	admonitionFence = "===="
	// markdownFence is the Markdown fenced-code delimiter.
	markdownFence = "```"

	// XrefBaseURL is the link base prepended to converted xref paths.
	XrefBaseURL = "https://neo4j.com/developer/industry-use-cases/"
)

var (
	sourceTagRe  = regexp.MustCompile(`^\[source,(\w+)\]$`)
	admonitionRe = regexp.MustCompile(`^\[(IMPORTANT|NOTE|CAUTION|WARNING|TIP)\]$`)
	xrefRe       = regexp.MustCompile(`xref:([^\[\]]+)\[([^\]]*)\]`)

	// * *Key:* value bullets, where the bullet text opens with a bold run.
	boldKeyBulletRe = regexp.MustCompile(`^\* \*([^*]+)\*`)

	// Leading *emphasis* run at the start of a line (no space after the
	// opening asterisk).
	leadingEmphasisRe = regexp.MustCompile(`^\*([^\s*][^*]*)\*`)

	// *emphasis* with a non-asterisk character before it and a
	// non-asterisk character (or end of line) after it. The interior may
	// not start or end with whitespace, so "2 * 3 * 4" stays literal. The
	// character classes keep the pattern from re-firing on **already
	// doubled** text.
	inlineEmphasisRe = regexp.MustCompile(`([^*])\*([^\s*](?:[^*]*[^\s*])?)\*([^*]|$)`)
)

// sourceTag consumes a [source,<lang>] tag and records the language for
// the fence that follows. Inside a code block the tag is literal text.
func sourceTag(line string, st State) ([]string, State, bool) {
	if st.Mode == ModeCodeBlock {
		return nil, st, false
	}
	m := sourceTagRe.FindStringSubmatch(line)
	if m == nil {
		return nil, st, false
	}
	st.PendingLang = m[1]
	return nil, st, true
}

// openCodeFence turns a ---- delimiter into a language-annotated
// Markdown fence, but only when a source tag announced the language.
// A bare ---- with no pending language falls through to plainLine.
func openCodeFence(line string, st State) ([]string, State, bool) {
	if line != codeFence || st.Mode == ModeCodeBlock || st.PendingLang == "" {
		return nil, st, false
	}
	lang := st.PendingLang
	st.Mode = ModeCodeBlock
	st.PendingLang = ""
	return []string{markdownFence + lang}, st, true
}

// closeCodeFence turns the matching ---- delimiter into a bare fence.
func closeCodeFence(line string, st State) ([]string, State, bool) {
	if line != codeFence || st.Mode != ModeCodeBlock {
		return nil, st, false
	}
	st.Mode = ModeNormal
	return []string{markdownFence}, st, true
}

// openAdmonition consumes an [IMPORTANT]-style tag line.
func openAdmonition(line string, st State) ([]string, State, bool) {
	if st.Mode != ModeNormal || !admonitionRe.MatchString(line) {
		return nil, st, false
	}
	st.Mode = ModeAdmonition
	return nil, st, true
}

// closeAdmonition consumes the ==== delimiter ending an admonition.
func closeAdmonition(line string, st State) ([]string, State, bool) {
	if line != admonitionFence || st.Mode != ModeAdmonition {
		return nil, st, false
	}
	st.Mode = ModeNormal
	return nil, st, true
}

// admonitionBody handles lines inside an admonition: a .Title line
// becomes a bolded standalone line padded with blanks, blank lines are
// dropped, and everything else passes through untouched.
func admonitionBody(line string, st State) ([]string, State, bool) {
	if st.Mode != ModeAdmonition {
		return nil, st, false
	}
	if strings.HasPrefix(line, ".") {
		return []string{"", "**" + line[1:] + "**", ""}, st, true
	}
	if strings.TrimSpace(line) == "" {
		return nil, st, true
	}
	return []string{line}, st, true
}

// codeBody passes code-block interiors through byte-for-byte.
func codeBody(line string, st State) ([]string, State, bool) {
	if st.Mode != ModeCodeBlock {
		return nil, st, false
	}
	return []string{line}, st, true
}

// plainLine applies the ordinary content rewrites: headings, xref
// links, then bullets or inline emphasis.
func plainLine(line string, st State) ([]string, State, bool) {
	line = convertHeading(line)
	line = ConvertXrefs(line)
	line = convertBulletsAndEmphasis(line)
	return []string{line}, st, true
}

// convertHeading maps two- and three-equals AsciiDoc headings to the
// same-depth Markdown headings.
func convertHeading(line string) string {
	if strings.HasPrefix(line, "=== ") {
		return "### " + line[len("=== "):]
	}
	if strings.HasPrefix(line, "== ") {
		return "## " + line[len("== "):]
	}
	return line
}

// ConvertXrefs replaces every xref:<path>[<text>] occurrence with
// "<text> (<base><urlPath>)", where urlPath drops .adoc suffixes and
// turns anchors into trailing /#fragment paths.
func ConvertXrefs(line string) string {
	return xrefRe.ReplaceAllStringFunc(line, func(m string) string {
		sub := xrefRe.FindStringSubmatch(m)
		urlPath := strings.ReplaceAll(sub[1], ".adoc", "")
		urlPath = strings.ReplaceAll(urlPath, "#", "/#")
		return sub[2] + " (" + XrefBaseURL + urlPath + ")"
	})
}

// convertBulletsAndEmphasis applies the mutually exclusive bullet
// rewrites, falling back to inline emphasis doubling. First match wins.
func convertBulletsAndEmphasis(line string) string {
	switch {
	case strings.HasPrefix(line, "** "):
		// Double-marker sub-bullet becomes an indented dash bullet.
		return "  - " + line[len("** "):]
	case boldKeyBulletRe.MatchString(line):
		return boldKeyBulletRe.ReplaceAllString(line, "* **$1**")
	case strings.HasPrefix(line, "* "):
		// Single bullets are already valid Markdown.
		return line
	default:
		return convertEmphasis(line)
	}
}

// convertEmphasis doubles single-asterisk emphasis runs. Already
// doubled text never re-fires: the regexes require non-asterisk
// characters around the run.
func convertEmphasis(line string) string {
	line = leadingEmphasisRe.ReplaceAllString(line, "**$1**")
	// ReplaceAll skips past each match, so back-to-back runs separated
	// by a single character need another pass. Loop to a fixpoint.
	for {
		next := inlineEmphasisRe.ReplaceAllString(line, "$1**$2**$3")
		if next == line {
			return line
		}
		line = next
	}
}
