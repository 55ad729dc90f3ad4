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

// Package git provides a simplified git interface for reading the merges of a repository for
// evaluations.
package git

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

const nullID = "0000000000000000000000000000000000000000"

type Repo struct {
	dir string

	mu  sync.Mutex // guards the cat-file process
	cat *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	cat := exec.Command("git", "-C", dir, "cat-file", "--batch")
	in, err := cat.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %v", err)
	}
	out, err := cat.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %v", err)
	}
	if err := cat.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %v", err)
	}
	return &Repo{dir: dir, cat: cat, in: in, out: bufio.NewReader(out)}, nil
}

func (r *Repo) Close() error {
	r.in.Close()
	return r.cat.Wait()
}

// Merge is a merge commit with exactly two parents.
type Merge struct {
	ID          string
	Left, Right string
}

// Merges returns all merge commits reachable from HEAD that have exactly two parents.
func (r *Repo) Merges() ([]Merge, error) {
	out, err := git("-C", r.dir, "rev-list", "--merges", "--parents", "HEAD")
	if err != nil {
		return nil, err
	}
	var merges []Merge
	for line := range strings.Lines(out) {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue // octopus merge
		}
		merges = append(merges, Merge{ID: fields[0], Left: fields[1], Right: fields[2]})
	}
	return merges, nil
}

// MergeBase returns the best common ancestor of two commits.
func (r *Repo) MergeBase(a, b string) (string, error) {
	out, err := git("-C", r.dir, "merge-base", a, b)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Change is a file that was modified between two commits.
type Change struct {
	Name  string
	OldID string
	NewID string
}

// DiffTree returns the files that differ between two commits.
func (r *Repo) DiffTree(from, to string) (map[string]Change, error) {
	out, err := git("-C", r.dir, "diff-tree", "-r", from, to)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]Change)
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			return nil, fmt.Errorf("diff-tree file not starting with ':': %q", line)
		}
		fields := strings.Fields(line[1:])
		if len(fields) < 6 {
			return nil, fmt.Errorf("diff-tree line with %d fields: %q", len(fields), line)
		}
		ret[fields[5]] = Change{
			Name:  fields[5],
			OldID: fields[2],
			NewID: fields[3],
		}
	}
	return ret, nil
}

// Read returns the contents of the blobs with the given IDs. The null ID reads as an empty blob.
func (r *Repo) Read(ids ...string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(ids))
	for i, id := range ids {
		if id == nullID {
			continue
		}
		if _, err := fmt.Fprintf(r.in, "%s\n", id); err != nil {
			return nil, fmt.Errorf("writing to cat-file: %v", err)
		}
		header, err := r.out.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading from cat-file: %v", err)
		}
		fields := strings.Fields(header)
		if len(fields) != 3 || fields[0] != id {
			return nil, fmt.Errorf("unexpected cat-file header for %s: %q", id, header)
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("parsing blob size: %v", err)
		}
		buf := make([]byte, n+1) // contents are followed by a newline
		if _, err := io.ReadFull(r.out, buf); err != nil {
			return nil, fmt.Errorf("reading blob %s: %v", id, err)
		}
		out[i] = string(buf[:n])
	}
	return out, nil
}

func git(args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.Command("git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %v\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
