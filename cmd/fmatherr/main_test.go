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
	"bytes"
	"math"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSweepWithinBounds(t *testing.T) {
	for _, p := range probes {
		t.Run(p.name, func(t *testing.T) {
			r := sweep(p, 4001)
			assert.True(t, r.Pass, "%s: max abs %g, max rel %g at x=%g (bound %s %g)",
				r.Func, r.MaxAbs, r.MaxRel, r.WorstX, r.Metric, r.Bound)
			assert.LessOrEqual(t, r.MeanAbs, r.MaxAbs)
			assert.LessOrEqual(t, r.MeanRel, r.MaxRel)
		})
	}
}

func TestSweepDetectsFailure(t *testing.T) {
	broken := probe{
		name:   "zero",
		approx: func(float32) float32 { return 0 },
		exact:  math.Sin,
		lo:     0,
		hi:     math.Pi,
		metric: absolute,
		bound:  1e-3,
	}
	r := sweep(broken, 101)
	assert.False(t, r.Pass)
	assert.InDelta(t, 1, r.MaxAbs, 1e-6)
	assert.InDelta(t, math.Pi/2, r.WorstX, 1e-6)

	broken.approx = func(float32) float32 { return float32(math.NaN()) }
	assert.False(t, sweep(broken, 11).Pass)
}

func TestSelectProbes(t *testing.T) {
	all, err := selectProbes(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(probes))

	some, err := selectProbes([]string{"Cos", " sqrt"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	// Table order, not argument order.
	assert.Equal(t, "sqrt", some[0].name)
	assert.Equal(t, "cos", some[1].name)

	_, err = selectProbes([]string{"sin", "gamma"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gamma")
}

func TestSweepCommandJSON(t *testing.T) {
	out, err := execute(t, "sweep", "--func", "sqrt,exp,sin", "--samples", "501", "--format", "json")
	require.NoError(t, err)

	var results []Result
	require.NoError(t, sonic.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Pass, r.Func)
		assert.Equal(t, 501, r.Samples)
	}
	assert.Equal(t, "rel", results[0].Metric)
	assert.Equal(t, "abs", results[2].Metric)
}

func TestSweepCommandYAML(t *testing.T) {
	out, err := execute(t, "sweep", "-f", "atan", "-n", "101", "--format", "yaml")
	require.NoError(t, err)

	var results []Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "atan", results[0].Func)
	assert.Equal(t, -1.0, results[0].Lo)
}

func TestSweepCommandText(t *testing.T) {
	out, err := execute(t, "sweep", "--func", "log,cbrt", "--samples", "101")
	require.NoError(t, err)
	assert.Contains(t, out, "log")
	assert.Contains(t, out, "cbrt")
	assert.Contains(t, out, "yes")
	assert.NotContains(t, out, "NO")
}

func TestSweepCommandErrors(t *testing.T) {
	_, err := execute(t, "sweep", "--samples", "1")
	assert.ErrorContains(t, err, "at least 2")

	_, err = execute(t, "sweep", "--format", "xml", "--func", "sin")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "sweep", "--func", "nope")
	assert.ErrorContains(t, err, "unknown function")
}

func TestSweepCommandBadConfig(t *testing.T) {
	t.Setenv("FMATH_BACKEND", "turbo")
	_, err := execute(t, "info")
	assert.ErrorContains(t, err, "FMATH_BACKEND")
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "detected:")
	assert.Contains(t, out, "active:")
	assert.Contains(t, out, "FMATH_BACKEND=auto")
}
