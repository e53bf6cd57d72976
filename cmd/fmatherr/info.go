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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fmath/backend"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the kernel dispatch level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "detected:  %s\n", backend.DetectedLevel())
			fmt.Fprintf(out, "active:    %s (%d bytes)\n", backend.CurrentName(), backend.CurrentWidth())
			fmt.Fprintf(out, "float32:   %d lanes\n", backend.MaxLanes[float32]())
			if a.cfg != nil {
				fmt.Fprintf(out, "FMATH_NO_SIMD=%t FMATH_BACKEND=%s\n", a.cfg.Backend.NoSIMD, a.cfg.Backend.Mode)
			}
			return nil
		},
	}
}
