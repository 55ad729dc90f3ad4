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

package diff3

import "znkr.io/diff3/internal/config"

// Option configures the behavior of functions in this module.
type Option = config.Option

// AlignLimit sets the maximum number of elements on either side of a replaced region that [Align]
// and [AlignFunc] try to pair up. Larger regions are reported as deletions followed by insertions.
// The default is 64.
//
// Alignment is O(N·M) in the size of the replaced region, so large limits can be slow.
func AlignLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.AlignLimit = max(0, n)
		return config.AlignLimit
	}
}
