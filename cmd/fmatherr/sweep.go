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
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// relFloor is the reference magnitude below which the relative error falls
// back to the absolute error.
const relFloor = 1e-30

// Result holds the error statistics of one function.
type Result struct {
	Func    string  `json:"func" yaml:"func"`
	Samples int     `json:"samples" yaml:"samples"`
	Lo      float64 `json:"lo" yaml:"lo"`
	Hi      float64 `json:"hi" yaml:"hi"`
	MaxAbs  float64 `json:"max_abs" yaml:"max_abs"`
	MeanAbs float64 `json:"mean_abs" yaml:"mean_abs"`
	MaxRel  float64 `json:"max_rel" yaml:"max_rel"`
	MeanRel float64 `json:"mean_rel" yaml:"mean_rel"`
	// WorstX is the argument with the largest error under Metric.
	WorstX float64 `json:"worst_x" yaml:"worst_x"`
	Metric string  `json:"metric" yaml:"metric"`
	Bound  float64 `json:"bound" yaml:"bound"`
	Pass   bool    `json:"pass" yaml:"pass"`
}

// sweep evaluates p on n evenly spaced points of its domain. Arguments are
// rounded to float32 before the reference is evaluated, so input
// quantization is not counted as error.
func sweep(p probe, n int) Result {
	xs := floats.Span(make([]float64, n), p.lo, p.hi)
	abs := make([]float64, n)
	rel := make([]float64, n)
	for i, x := range xs {
		x32 := float32(x)
		xs[i] = float64(x32)
		got := float64(p.approx(x32))
		want := p.exact(xs[i])
		abs[i] = math.Abs(got - want)
		if d := math.Abs(want); d > relFloor {
			rel[i] = abs[i] / d
		} else {
			rel[i] = abs[i]
		}
	}

	r := Result{
		Func:    p.name,
		Samples: n,
		Lo:      p.lo,
		Hi:      p.hi,
		MaxAbs:  floats.Max(abs),
		MeanAbs: stat.Mean(abs, nil),
		MaxRel:  floats.Max(rel),
		MeanRel: stat.Mean(rel, nil),
		Metric:  p.metric.String(),
		Bound:   p.bound,
	}
	errs := abs
	if p.metric == relative {
		errs = rel
	}
	worst := floats.MaxIdx(errs)
	r.WorstX = xs[worst]
	// NaN fails the comparison, so a NaN anywhere in the sweep fails the bound.
	r.Pass = errs[worst] <= p.bound && !lo.SomeBy(errs, math.IsNaN)
	return r
}

// selectProbes returns the probes named in names, in table order. An empty
// list selects every probe.
func selectProbes(names []string) ([]probe, error) {
	if len(names) == 0 {
		return probes, nil
	}
	names = lo.Map(names, func(s string, _ int) string { return strings.ToLower(strings.TrimSpace(s)) })
	known := lo.Map(probes, func(p probe, _ int) string { return p.name })
	if unknown := lo.Without(names, known...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown function(s) %s; available: %s",
			strings.Join(lo.Uniq(unknown), ", "), strings.Join(known, ", "))
	}
	return lo.Filter(probes, func(p probe, _ int) bool { return lo.Contains(names, p.name) }), nil
}

type sweepOptions struct {
	funcs   []string
	samples int
	format  string
}

func newSweepCmd(a *app) *cobra.Command {
	opts := sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sample every approximation over its domain and report the error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(a, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVarP(&opts.funcs, "func", "f", nil, "comma-separated functions to sweep (default all)")
	cmd.Flags().IntVarP(&opts.samples, "samples", "n", 10001, "sample points per function")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	return cmd
}

func runSweep(a *app, opts sweepOptions, out io.Writer) error {
	if opts.samples < 2 {
		return fmt.Errorf("--samples must be at least 2, got %d", opts.samples)
	}
	selected, err := selectProbes(opts.funcs)
	if err != nil {
		return err
	}

	results := make([]Result, 0, len(selected))
	for _, p := range selected {
		r := sweep(p, opts.samples)
		a.log.Debug("swept",
			zap.String("func", r.Func),
			zap.Float64("max_abs", r.MaxAbs),
			zap.Float64("max_rel", r.MaxRel),
			zap.Float64("worst_x", r.WorstX))
		if !r.Pass {
			a.log.Warn("error bound exceeded",
				zap.String("func", r.Func),
				zap.String("metric", r.Metric),
				zap.Float64("bound", r.Bound))
		}
		results = append(results, r)
	}

	if err := render(out, opts.format, results); err != nil {
		return err
	}
	if failed := lo.Filter(results, func(r Result, _ int) bool { return !r.Pass }); len(failed) > 0 {
		names := lo.Map(failed, func(r Result, _ int) string { return r.Func })
		return fmt.Errorf("error bound exceeded for %s", strings.Join(names, ", "))
	}
	return nil
}

func render(w io.Writer, format string, results []Result) error {
	switch format {
	case "text":
		renderTable(w, results)
		return nil
	case "json":
		data, err := sonic.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q: want text, json or yaml", format)
	}
}

func renderTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"func", "domain", "max abs", "mean abs", "max rel", "mean rel", "worst x", "bound", "ok"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, r := range results {
		table.Append([]string{
			r.Func,
			fmt.Sprintf("[%g, %g]", r.Lo, r.Hi),
			formatErr(r.MaxAbs),
			formatErr(r.MeanAbs),
			formatErr(r.MaxRel),
			formatErr(r.MeanRel),
			strconv.FormatFloat(r.WorstX, 'g', 6, 64),
			r.Metric + " " + formatErr(r.Bound),
			lo.Ternary(r.Pass, "yes", "NO"),
		})
	}
	table.Render()
}

func formatErr(v float64) string {
	return strconv.FormatFloat(v, 'e', 2, 64)
}
