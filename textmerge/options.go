// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package textmerge

import (
	"znkr.io/diff3"
	"znkr.io/diff3/internal/config"
)

// Labels sets the labels that are appended to the conflict markers: left to <<<<<<<, base to
// ||||||| and right to >>>>>>>. Empty labels are omitted.
func Labels(left, base, right string) diff3.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LeftLabel, cfg.BaseLabel, cfg.RightLabel = left, base, right
		return config.Labels
	}
}

// ShowBase includes the lines from base in conflict blocks, like the diff3 conflict style of git.
func ShowBase() diff3.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ShowBase = true
		return config.ShowBase
	}
}
