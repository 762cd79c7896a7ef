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
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"k8s.io/component-base/logs"
	"k8s.io/klog/v2"

	"github.com/catalano/optimization/apis/config/v1alpha1"
	"github.com/catalano/optimization/pkg/optimization/benchmarks"
	"github.com/catalano/optimization/pkg/optimization/framework"
	"github.com/catalano/optimization/pkg/optimization/metrics"
	"github.com/catalano/optimization/pkg/optimization/swarm"
	"github.com/catalano/optimization/pkg/optimization/util"
)

// NewOptimizeCommand creates the root command with its subcommands.
func NewOptimizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "optimize",
		Short:        "Run metaheuristic optimizers against benchmark functions",
		SilenceUsage: true,
	}
	logs.AddFlags(cmd.PersistentFlags())
	cmd.AddCommand(newRunCommand(), newFunctionsCommand())
	return cmd
}

func newRunCommand() *cobra.Command {
	opts := NewRunOptions()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Minimise a benchmark function with particle swarm optimisation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := opts.Validate(); len(errs) > 0 {
				return errs.ToAggregate()
			}
			return Run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

type runResult struct {
	id     string
	seed   int64
	result swarm.Result
	hits   int
}

// Run executes opts.Runs independent runs and writes a summary to out.
func Run(ctx context.Context, opts *RunOptions, out io.Writer) error {
	logger := klog.FromContext(ctx)

	args := &v1alpha1.SwarmArgs{}
	if opts.ConfigFile != "" {
		loaded, err := v1alpha1.LoadSwarmArgs(opts.ConfigFile)
		if err != nil {
			return fmt.Errorf("loading %s: %w", opts.ConfigFile, err)
		}
		args = loaded
	}
	if opts.Seed != 0 {
		args.Seed = opts.Seed
	}

	problem, err := benchmarks.New(opts.Function, opts.Dimensions)
	if err != nil {
		return err
	}
	if len(args.Bounds) == 0 {
		for _, b := range problem.Bounds() {
			args.Bounds = append(args.Bounds, v1alpha1.BoundArgs{Min: b.L, Max: b.H})
		}
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)

	results := make([]runResult, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i := range opts.Runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runArgs := args.DeepCopy()
			if runArgs.Seed != 0 {
				runArgs.Seed += int64(i)
			}
			id := uuid.NewString()
			runLogger := logger.WithValues("run", id, "function", problem.Name())

			var objective framework.Objective = problem
			var cached *framework.CachedObjective
			if opts.Cache {
				cached = framework.NewCachedObjective(problem, 0)
				objective = cached
			}

			optimizer, err := swarm.NewFromArgs(objective, runArgs,
				swarm.WithLogger(runLogger), swarm.WithObserver(recorder.ForRun(id)))
			if err != nil {
				return err
			}
			res, err := optimizer.Optimize()
			if err != nil {
				return fmt.Errorf("run %s: %w", id, err)
			}

			results[i] = runResult{id: id, seed: runArgs.Seed, result: res}
			if cached != nil {
				results[i].hits = cached.Hits()
				runLogger.V(2).Info("Objective cache", "hits", cached.Hits(), "misses", cached.Misses())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeSummary(out, problem, results); err != nil {
		return err
	}
	return writeArtifacts(opts, problem, reg, results)
}

func writeSummary(out io.Writer, problem framework.Problem, results []runResult) error {
	fitness := make([]float64, len(results))
	for i, r := range results {
		fitness[i] = r.result.Fitness
	}
	mean, std := stat.MeanStdDev(fitness, nil)
	if len(fitness) == 1 {
		std = 0
	}
	best := results[floats.MinIdx(fitness)]
	_, optimum := problem.Optimum()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSEED\tFITNESS\tEVALUATIONS\tCACHE HITS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.6g\t%s\t%s\n", r.id, r.seed, r.result.Fitness,
			humanize.Comma(int64(r.result.Evaluations)), humanize.Comma(int64(r.hits)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s in %d dimensions, %d runs\n", problem.Name(), problem.Dimensions(), len(results))
	fmt.Fprintf(out, "mean fitness %.6g, std %.6g, known optimum %.6g\n", mean, std, optimum)
	_, err := fmt.Fprintf(out, "best %.6g at %v (run %s)\n", best.result.Fitness, best.result.Location, best.id)
	return err
}

func writeArtifacts(opts *RunOptions, problem framework.Problem, reg *prometheus.Registry, results []runResult) error {
	if opts.PlotFile != "" {
		series := make([]util.Series, len(results))
		for i, r := range results {
			series[i] = util.Series{Name: r.id, Values: r.result.History}
		}
		title := fmt.Sprintf("%s convergence for %s", swarm.Name, problem.Name())
		if err := util.WriteFile(opts.PlotFile, func(w io.Writer) error {
			return util.PlotConvergence(w, title, series)
		}); err != nil {
			return err
		}
	}
	if opts.SolutionsPlotFile != "" {
		found := make([][]float64, len(results))
		for i, r := range results {
			found[i] = r.result.Location
		}
		if err := util.WriteFile(opts.SolutionsPlotFile, func(w io.Writer) error {
			return util.PlotSolutions(w, problem, swarm.Name, found)
		}); err != nil {
			return err
		}
	}
	if opts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			return err
		}
	}
	return nil
}
