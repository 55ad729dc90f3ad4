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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff3.Option.
package config

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// AlignLimit is the maximum number of elements on either side of a replaced region that
	// alignment pairs up.
	AlignLimit int

	// Labels appended to the conflict markers written by textmerge.
	LeftLabel, BaseLabel, RightLabel string

	// If set, textmerge includes the base version in conflict blocks.
	ShowBase bool
}

// Default is the default configuration.
var Default = Config{
	AlignLimit: 64,
	ShowBase:   false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	AlignLimit Flag = 1 << iota
	Labels
	ShowBase
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case AlignLimit:
		return "diff3.AlignLimit"
	case Labels:
		return "textmerge.Labels"
	case ShowBase:
		return "textmerge.ShowBase"
	default:
		panic("never reached")
	}
}
