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

package textmerge_test

import (
	"fmt"

	"znkr.io/diff3/textmerge"
)

func ExampleMerge() {
	base := `[server]
host = localhost
name = test
port = 8080
`
	left := `[server]
host = example.com
name = test
port = 8080
`
	right := `[server]
host = localhost
name = test
port = 9090
timeout = 30s
`
	merged, conflicts := textmerge.Merge(base, left, right)
	fmt.Print(merged)
	fmt.Println("conflicts:", conflicts)
	// Output:
	// [server]
	// host = example.com
	// name = test
	// port = 9090
	// timeout = 30s
	// conflicts: 0
}

func ExampleShowBase() {
	base := "color = red\n"
	left := "color = green\n"
	right := "color = blue\n"
	merged, conflicts := textmerge.Merge(base, left, right, textmerge.ShowBase(), textmerge.Labels("ours", "base", "theirs"))
	fmt.Print(merged)
	fmt.Println("conflicts:", conflicts)
	// Output:
	// <<<<<<< ours
	// color = green
	// ||||||| base
	// color = red
	// =======
	// color = blue
	// >>>>>>> theirs
	// conflicts: 1
}
