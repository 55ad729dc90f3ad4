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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/diff3"
	"znkr.io/diff3/internal/config"
	"znkr.io/diff3/textmerge"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "align-limit",
			opts: []config.Option{
				diff3.AlignLimit(5),
			},
			want: config.Config{
				AlignLimit: 5,
			},
		},
		{
			name: "negative-align-limit",
			opts: []config.Option{
				diff3.AlignLimit(-1),
			},
			want: config.Config{
				AlignLimit: 0,
			},
		},
		{
			name: "labels",
			opts: []config.Option{
				textmerge.Labels("ours", "base", "theirs"),
			},
			want: config.Config{
				AlignLimit: config.Default.AlignLimit,
				LeftLabel:  "ours",
				BaseLabel:  "base",
				RightLabel: "theirs",
			},
		},
		{
			name: "override",
			opts: []config.Option{
				diff3.AlignLimit(5),
				textmerge.ShowBase(),
				diff3.AlignLimit(1),
			},
			want: config.Config{
				AlignLimit: 1,
				ShowBase:   true,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				diff3.AlignLimit(5),
				textmerge.Labels("a", "o", "b"),
				textmerge.ShowBase(),
			},
			want: config.Config{
				AlignLimit: 5,
				LeftLabel:  "a",
				BaseLabel:  "o",
				RightLabel: "b",
				ShowBase:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.AlignLimit|config.Labels|config.ShowBase)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	tests := []struct {
		name    string
		opts    []config.Option
		allowed config.Flag
		want    string
	}{
		{
			name:    "align-limit",
			opts:    []config.Option{diff3.AlignLimit(3)},
			allowed: config.Labels | config.ShowBase,
			want:    "Option diff3.AlignLimit not allowed here",
		},
		{
			name:    "show-base",
			opts:    []config.Option{diff3.AlignLimit(3), textmerge.ShowBase()},
			allowed: config.AlignLimit,
			want:    "Option textmerge.ShowBase not allowed here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if got := recover(); got != tt.want {
					t.Errorf("FromOptions(...) panicked with %v, want %q", got, tt.want)
				}
			}()
			config.FromOptions(tt.opts, tt.allowed)
		})
	}
}
