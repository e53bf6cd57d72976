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
	"go.uber.org/zap"

	"github.com/ajroetker/go-fmath/internal/config"
	"github.com/ajroetker/go-fmath/internal/logging"
)

// app carries state shared by the subcommands. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg     *config.Config
	log     *logging.Logger
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewOrNop(logging.Config{Level: "fatal"})}

	root := &cobra.Command{
		Use:           "fmatherr",
		Short:         "Measure the error of the fmath approximations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newSweepCmd(a), newInfoCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.FromEnv(cfg.Logging)
	if a.verbose {
		logCfg.Level = "debug"
	}
	log, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.log = log.Component("fmatherr")
	a.log.Debug("configuration loaded",
		zap.Bool("no_simd", cfg.Backend.NoSIMD),
		zap.String("backend", cfg.Backend.Mode))
	return nil
}
