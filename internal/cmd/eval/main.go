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

// eval provides a way to evaluate the merge algorithm by replaying the merge commits of a git
// repository. For every file that was modified by both parents of a merge, the file is merged with
// textmerge and, optionally, compared against the result of git merge-file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"znkr.io/diff3/internal/cmd/eval/internal/git"
	"znkr.io/diff3/internal/gitmerge"
	"znkr.io/diff3/textmerge"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
	validate bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample merges to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.BoolVar(&cfg.validate, "validate", true, "if results should be compared against git merge-file")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

type note struct {
	prefix string
	msg    string
}

// merge is a file that was modified by both sides of a merge commit.
type merge struct {
	commitID          string
	filename          string
	base, left, right string
}

type result struct {
	commitID     string
	file         string
	N            int // lines in base
	conflicts    int
	gitConflicts int
	duration     time.Duration
}

func run(cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var mergesDone atomic.Int64
	var processed atomic.Int64

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}
	defer repo.Close()

	commits, err := repo.Merges()
	if err != nil {
		return fmt.Errorf("listing merges: %v", err)
	}
	if cfg.sample > 0 && cfg.sample < len(commits) {
		rand.Shuffle(len(commits), func(i, j int) { commits[i], commits[j] = commits[j], commits[i] })
		commits = commits[:cfg.sample]
	}
	if len(commits) == 0 {
		return fmt.Errorf("no merge commits in %s", cfg.repo)
	}

	// Find files modified on both sides.
	merges := make(chan merge)
	var mergesWG sync.WaitGroup
	chunkSize := max(1, len(commits)/(4*runtime.GOMAXPROCS(0)))
	for chunk := range slices.Chunk(commits, chunkSize) {
		mergesWG.Add(1)
		go func() {
			defer mergesWG.Done()
			for _, commit := range chunk {
				if err := collect(repo, commit, merges); err != nil {
					notes <- note{prefix: commit.ID, msg: fmt.Sprintf("error processing merge: %v", err)}
				}
				mergesDone.Add(1)
			}
		}()
	}

	// Run merges.
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	var processWG sync.WaitGroup
	for range cfg.parallel {
		processWG.Add(1)
		go func() {
			defer processWG.Done()
			for m := range merges {
				prefix := m.commitID + ":" + m.filename
				t0 := time.Now()
				merged, conflicts := textmerge.Merge(m.base, m.left, m.right)
				duration := time.Since(t0)

				gitConflicts := -1
				if cfg.validate {
					want, n, err := gitmerge.MergeFile(m.base, m.left, m.right)
					switch {
					case err != nil:
						notes <- note{prefix: prefix, msg: fmt.Sprintf("failed to run git merge-file: %v", err)}
					case n == 0 && conflicts == 0 && want != merged:
						notes <- note{prefix: prefix, msg: fmt.Sprintf("clean merge differs from git. got:\n%s\nwant:\n%s", merged, want)}
					}
					gitConflicts = n
				}
				if results != nil {
					results <- result{
						commitID:     m.commitID,
						file:         m.filename,
						N:            strings.Count(m.base, "\n"),
						conflicts:    conflicts,
						gitConflicts: gitConflicts,
						duration:     duration,
					}
				}
				processed.Add(1)
			}
		}()
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		mergesDone := mergesDone.Load()
		processed := processed.Load()
		progress := float64(mergesDone) / float64(len(commits))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		elapsed := time.Since(start).Seconds()
		fmt.Printf("\r[%-*s] % 3.1f%% (%.0f merges/s, %.0f files/s) ", width, bar, 100*progress, float64(mergesDone)/elapsed, float64(processed)/elapsed)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()
			case <-ticker.C:
				render()
			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	var statsErr error
	var statsWG sync.WaitGroup
	if results != nil {
		statsWG.Add(1)
		go func() {
			defer statsWG.Done()
			statsErr = writeStats(cfg.stats, results)
		}()
	}

	// Shutdown
	mergesWG.Wait()
	close(merges)
	processWG.Wait()
	if results != nil {
		close(results)
	}
	statsWG.Wait()
	close(done)
	ioWG.Wait()

	return statsErr
}

// collect sends every file that both parents of commit modified relative to their merge base.
func collect(repo *git.Repo, commit git.Merge, out chan<- merge) error {
	base, err := repo.MergeBase(commit.Left, commit.Right)
	if err != nil {
		return err
	}
	left, err := repo.DiffTree(base, commit.Left)
	if err != nil {
		return err
	}
	right, err := repo.DiffTree(base, commit.Right)
	if err != nil {
		return err
	}
	for name, l := range left {
		r, ok := right[name]
		if !ok || l.NewID == r.NewID || isBinary(name) {
			continue
		}
		contents, err := repo.Read(l.OldID, l.NewID, r.NewID)
		if err != nil {
			return err
		}
		out <- merge{
			commitID: commit.ID,
			filename: name,
			base:     contents[0],
			left:     contents[1],
			right:    contents[2],
		}
	}
	return nil
}

func isBinary(name string) bool {
	return strings.HasSuffix(name, ".zip") || strings.HasSuffix(name, ".syso") || strings.HasSuffix(name, ".png")
}

func writeStats(filename string, results <-chan result) error {
	f, err := os.Create(filename)
	if err != nil {
		for range results {
			// drain
		}
		return fmt.Errorf("creating stats file: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteString("commit_id,file,N,conflicts,git_conflicts,duration_ns\n")
	for r := range results {
		fmt.Fprintf(w, "%s,%s,%d,%d,%d,%d\n", r.commitID, r.file, r.N, r.conflicts, r.gitConflicts, r.duration.Nanoseconds())
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing stats: %v", err)
	}
	return f.Close()
}
