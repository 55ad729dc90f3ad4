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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name              string
		cfg               config
		left, base, right string
		want              string
		wantConflicts     int
	}{
		{
			name:  "clean",
			left:  "a\nB\nc\nd\n",
			base:  "a\nb\nc\nd\n",
			right: "a\nb\nc\nD\n",
			want:  "a\nB\nc\nD\n",
		},
		{
			name:          "conflict",
			cfg:           config{showBase: true, labels: labels{"ours", "base", "theirs"}},
			left:          "x\n",
			base:          "y\n",
			right:         "z\n",
			want:          "<<<<<<< ours\nx\n||||||| base\ny\n=======\nz\n>>>>>>> theirs\n",
			wantConflicts: 1,
		},
		{
			name:          "one-label",
			cfg:           config{labels: labels{"ours"}},
			left:          "x\n",
			base:          "y\n",
			right:         "z\n",
			want:          "<<<<<<< ours\nx\n=======\nz\n>>>>>>>\n",
			wantConflicts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			files := []string{filepath.Join(dir, "left"), filepath.Join(dir, "base"), filepath.Join(dir, "right")}
			for i, data := range []string{tt.left, tt.base, tt.right} {
				if err := os.WriteFile(files[i], []byte(data), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			conflicts, err := run(&tt.cfg, files)
			if err != nil {
				t.Fatalf("run(...) failed: %v", err)
			}
			if conflicts != tt.wantConflicts {
				t.Errorf("run(...) = %d conflicts, want %d", conflicts, tt.wantConflicts)
			}
			got, err := os.ReadFile(files[0])
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("merged file is different:\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := run(&config{}, []string{"a", "b"}); err == nil {
		t.Errorf("run(...) with two files succeeded, want error")
	}
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	if _, err := run(&config{}, []string{missing, missing, missing}); err == nil {
		t.Errorf("run(...) with missing files succeeded, want error")
	}
}

func TestRunKeepsLabels(t *testing.T) {
	dir := t.TempDir()
	left, base, right := filepath.Join(dir, "left"), filepath.Join(dir, "base"), filepath.Join(dir, "right")
	for name, content := range map[string]string{left: "x\n", base: "y\n", right: "z\n"} {
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	backing := make(labels, 1, 4)
	backing[0] = "ours"
	full := backing[:4]
	full[1], full[2], full[3] = "keep1", "keep2", "keep3"

	cfg := &config{labels: backing}
	if _, err := run(cfg, []string{left, base, right}); err != nil {
		t.Fatalf("run(...) failed: %v", err)
	}
	want := labels{"ours", "keep1", "keep2", "keep3"}
	if diff := cmp.Diff(want, full); diff != "" {
		t.Errorf("run(...) modified the labels [-want,+got]:\n%s", diff)
	}
}

func TestLabels(t *testing.T) {
	var l labels
	for _, v := range []string{"a", "b", "c"} {
		if err := l.Set(v); err != nil {
			t.Fatalf("Set(%q) failed: %v", v, err)
		}
	}
	if err := l.Set("d"); err == nil {
		t.Errorf("Set(...) accepted a fourth label")
	}
	if got, want := l.String(), "a,b,c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
