/*
Copyright 2024 The Catalano Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package app

import (
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/catalano/optimization/pkg/optimization/benchmarks"
)

// RunOptions holds the flags of the run command.
type RunOptions struct {
	Function    string
	Dimensions  int
	Runs        int
	Parallelism int
	Seed        int64
	Cache       bool

	ConfigFile        string
	PlotFile          string
	SolutionsPlotFile string
	MetricsFile       string
}

// NewRunOptions returns options with their defaults.
func NewRunOptions() *RunOptions {
	return &RunOptions{
		Function:    "sphere",
		Dimensions:  2,
		Runs:        1,
		Parallelism: 4,
	}
}

// AddFlags registers the options on fs.
func (o *RunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Function, "function", "f", o.Function, "Benchmark function to minimise. See 'optimize functions'.")
	fs.IntVarP(&o.Dimensions, "dimensions", "d", o.Dimensions, "Number of decision variables.")
	fs.IntVarP(&o.Runs, "runs", "n", o.Runs, "Number of independent runs.")
	fs.IntVar(&o.Parallelism, "parallelism", o.Parallelism, "Maximum number of runs executed concurrently.")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "Base seed; run i uses seed+i. Overrides the configuration file. Zero means unseeded.")
	fs.BoolVar(&o.Cache, "cache", o.Cache, "Memoise objective evaluations of identical positions.")
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to a SwarmArgs configuration file.")
	fs.StringVar(&o.PlotFile, "plot", o.PlotFile, "Write an HTML convergence chart to this path.")
	fs.StringVar(&o.SolutionsPlotFile, "solutions-plot", o.SolutionsPlotFile, "Write an HTML scatter of the found solutions to this path. Two-dimensional problems only.")
	fs.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile, "Write Prometheus metrics in text format to this path.")
}

// Validate checks the options.
func (o *RunOptions) Validate() field.ErrorList {
	var allErrs field.ErrorList
	if !slices.Contains(benchmarks.Names(), strings.ToLower(o.Function)) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("function"), o.Function, benchmarks.Names()))
	}
	if o.Dimensions < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("dimensions"), o.Dimensions, "must be positive"))
	}
	if o.Runs < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("runs"), o.Runs, "must be positive"))
	}
	if o.Parallelism < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("parallelism"), o.Parallelism, "must be positive"))
	}
	if o.SolutionsPlotFile != "" && o.Dimensions != 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("solutions-plot"), o.SolutionsPlotFile, "requires exactly 2 dimensions"))
	}
	return allErrs
}
