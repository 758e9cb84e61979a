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

// Package convert rewrites a supported subset of AsciiDoc into Markdown,
// one line at a time. Unrecognized markup passes through unchanged: the
// converter is best-effort and never fails.
package convert

import (
	"strings"
)

// Mode identifies which region of the document the converter is in.
type Mode int

const (
	ModeNormal Mode = iota
	ModeCodeBlock
	ModeAdmonition
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeCodeBlock:
		return "code_block"
	case ModeAdmonition:
		return "admonition"
	default:
		return "normal"
	}
}

// State is the per-document converter state threaded through the line
// fold. PendingLang holds the language recorded by a [source,<lang>]
// tag until the fence that opens the block consumes it.
type State struct {
	Mode        Mode
	PendingLang string
}

// Rule rewrites a single line given the current state. It returns the
// zero-or-more output lines, the next state, and whether it handled the
// line. Rules are tried in a fixed precedence order; the first rule that
// reports ok wins.
type Rule func(line string, st State) (out []string, next State, ok bool)

// rules is the precedence-ordered rule table. Marker-only lines
// (source tags, admonition wrappers) are consumed and emit nothing.
var rules = []Rule{
	sourceTag,
	openCodeFence,
	closeCodeFence,
	openAdmonition,
	closeAdmonition,
	admonitionBody,
	codeBody,
	plainLine,
}

// Document converts an AsciiDoc document body to Markdown.
func Document(body string) string {
	st := State{}
	var out []string
	for _, line := range strings.Split(body, "\n") {
		for _, rule := range rules {
			lines, next, ok := rule(line, st)
			if !ok {
				continue
			}
			out = append(out, lines...)
			st = next
			break
		}
	}
	return strings.Join(out, "\n")
}
