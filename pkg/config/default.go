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

// 🗂️ Default returns the built-in job list used when no config file is
// given. Each job splices the body of an AsciiDoc data-model page into
// the matching Markdown guide, keeping the guide's hand-written header.
func Default() *Config {
	return &Config{
		Jobs: []Job{
			{
				Name:   "customer-360",
				Source: "modules/finserv/pages/customer-360/graph-data-model.adoc",
				Targets: []string{
					"markdown/finserv/customer-360.md",
				},
				ContentStartMarker: "== 1. Node Labels and Properties",
				HeaderEndMarker:    "## 1. Node Labels and Properties",
			},
			{
				Name:   "fraud-detection",
				Source: "modules/finserv/pages/fraud-detection/graph-data-model.adoc",
				Targets: []string{
					"markdown/finserv/fraud-detection.md",
				},
				ContentStartMarker: "== 1. Node Labels and Properties",
				HeaderEndMarker:    "## 1. Node Labels and Properties",
			},
			{
				Name:   "supply-chain",
				Source: "modules/manufacturing/pages/supply-chain/graph-data-model.adoc",
				Targets: []string{
					"markdown/manufacturing/supply-chain.md",
				},
				ContentStartMarker: "== 1. Node Labels and Properties",
				HeaderEndMarker:    "## 1. Node Labels and Properties",
			},
		},
	}
}
