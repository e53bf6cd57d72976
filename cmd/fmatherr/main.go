// Copyright 2026 go-fmath Authors
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

// Command fmatherr measures the error of the fmath approximations against the
// standard library.
//
// Usage:
//
//	fmatherr sweep                             # every function, text table
//	fmatherr sweep --func sin,cos --samples 1e5
//	fmatherr sweep --format json               # machine readable
//	fmatherr info                              # active kernel dispatch level
//
// Each function is sampled on an evenly spaced grid over its documented
// domain. The sweep reports the maximum and mean absolute and relative error
// and whether the documented bound holds. The exit status is non-zero when
// any bound is exceeded.
//
// Logging goes to stderr and is configured through FMATH_LOG_LEVEL and
// FMATH_LOG_DEV.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
