// Package benchmarks provides single-objective test functions with known
// global minima, for checking optimizers. For more details see
// https://en.wikipedia.org/wiki/Test_functions_for_optimization and
// https://www.sfu.ca/~ssurjano/optimization.html.
package benchmarks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

type constructor func(dims int) framework.Problem

var registry = map[string]constructor{
	"sphere":     func(n int) framework.Problem { return Sphere{NDim: n} },
	"rastrigin":  func(n int) framework.Problem { return Rastrigin{NDim: n} },
	"rosenbrock": func(n int) framework.Problem { return Rosenbrock{NDim: n} },
	"schwefel":   func(n int) framework.Problem { return Schwefel{NDim: n} },
	"griewank":   func(n int) framework.Problem { return Griewank{NDim: n} },
	"levy":       func(n int) framework.Problem { return Levy{NDim: n} },
	"salomon":    func(n int) framework.Problem { return Salomon{NDim: n} },
	"ackley":     func(n int) framework.Problem { return Ackley{NDim: n} },
}

// Names lists the registered benchmarks in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New returns the named benchmark in dims dimensions. Names are matched
// case-insensitively.
func New(name string, dims int) (framework.Problem, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown benchmark %q, want one of %v", framework.ErrInvalidArgument, name, Names())
	}
	least := 1
	if strings.EqualFold(name, "rosenbrock") {
		least = 2
	}
	if dims < least {
		return nil, fmt.Errorf("%w: %s needs at least %d dimensions, got %d", framework.ErrInvalidArgument, name, least, dims)
	}
	return ctor(dims), nil
}

func checkDims(name string, want int, x []float64) error {
	if len(x) != want {
		return fmt.Errorf("%w: %s expects %d variables, got %d", framework.ErrInvalidArgument, name, want, len(x))
	}
	return nil
}

func filled(n int, v float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = v
	}
	return x
}
