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

// Package gitmerge provides a simple wrapper around git merge-file.
//
// This package is only for testing.
package gitmerge

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// MergeFile merges left and right with base using git merge-file and returns the merged text and
// the number of conflicts git reported.
func MergeFile(base, left, right string) (string, int, error) {
	dir, err := os.MkdirTemp("", "merge-*")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	basefile := filepath.Join(dir, "base")
	leftfile := filepath.Join(dir, "left")
	rightfile := filepath.Join(dir, "right")

	for name, data := range map[string]string{basefile: base, leftfile: left, rightfile: right} {
		if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
			return "", 0, fmt.Errorf("failed to write %s: %v", filepath.Base(name), err)
		}
	}

	cmd := exec.Command("git", "merge-file", "-p", leftfile, basefile, rightfile)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		// git merge-file exits with the number of conflicts, negative values indicate errors.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 && exitErr.ExitCode() < 128 {
			return string(out), exitErr.ExitCode(), nil
		}
		return "", 0, fmt.Errorf("failed to run merge command: %s: %v\n%s", strings.Join(cmd.Args, " "), err, stderr.String())
	}
	return string(out), 0, nil
}
