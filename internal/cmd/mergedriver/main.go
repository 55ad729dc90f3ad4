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

// mergedriver merges three versions of a file line by line. It can be used as a git merge driver:
//
//	[merge "diff3"]
//		name = znkr.io/diff3 merge driver
//		driver = mergedriver -L ours -L base -L theirs %A %O %B
//
// The merged result is written to the left file (or stdout with -stdout). The exit status is 0 for
// a clean merge, 1 if conflicts remain and 2 on errors.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"znkr.io/diff3"
	"znkr.io/diff3/textmerge"
)

type labels []string

func (l *labels) String() string { return strings.Join(*l, ",") }

func (l *labels) Set(v string) error {
	if len(*l) == 3 {
		return fmt.Errorf("at most three labels are allowed")
	}
	*l = append(*l, v)
	return nil
}

type config struct {
	showBase bool
	stdout   bool
	labels   labels
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.showBase, "diff3", false, "include the base version in conflicts")
	flag.BoolVar(&cfg.stdout, "stdout", false, "write the result to stdout instead of the left file")
	flag.Var(&cfg.labels, "L", "label for the left, base, and right version (can be repeated up to three times)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-diff3] [-stdout] [-L label]... left base right\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	conflicts, err := run(&cfg, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if conflicts > 0 {
		os.Exit(1)
	}
}

func run(cfg *config, args []string) (int, error) {
	if len(args) != 3 {
		return 0, fmt.Errorf("expected 3 files, got %v: %v", len(args), args)
	}
	leftFile, baseFile, rightFile := args[0], args[1], args[2]

	var in [3][]byte
	for i, name := range []string{leftFile, baseFile, rightFile} {
		var err error
		in[i], err = os.ReadFile(name)
		if err != nil {
			return 0, fmt.Errorf("reading file: %v", err)
		}
	}
	left, base, right := in[0], in[1], in[2]

	var opts []diff3.Option
	if cfg.showBase {
		opts = append(opts, textmerge.ShowBase())
	}
	if len(cfg.labels) > 0 {
		l := append(slices.Clone(cfg.labels), "", "", "")
		opts = append(opts, textmerge.Labels(l[0], l[1], l[2]))
	}
	merged, conflicts := textmerge.Merge(base, left, right, opts...)

	if cfg.stdout {
		if _, err := os.Stdout.Write(merged); err != nil {
			return 0, fmt.Errorf("writing result: %v", err)
		}
		return conflicts, nil
	}
	if err := os.WriteFile(leftFile, merged, 0o644); err != nil {
		return 0, fmt.Errorf("writing result: %v", err)
	}
	return conflicts, nil
}
