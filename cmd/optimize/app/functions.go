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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/catalano/optimization/pkg/optimization/benchmarks"
)

func newFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the available benchmark functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ListFunctions(cmd.OutOrStdout())
		},
	}
}

// ListFunctions writes each benchmark with its default bounds and minimum.
func ListFunctions(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBOUNDS\tMINIMISER\tMINIMUM")
	for _, name := range benchmarks.Names() {
		p, err := benchmarks.New(name, 2)
		if err != nil {
			return err
		}
		b := p.Bounds()[0]
		x, f := p.Optimum()
		fmt.Fprintf(w, "%s\t[%g, %g]\t%g\t%g\n", name, b.L, b.H, x[0], f)
	}
	return w.Flush()
}
