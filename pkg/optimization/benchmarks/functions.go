package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

var (
	_ framework.Problem = Sphere{}
	_ framework.Problem = Rastrigin{}
	_ framework.Problem = Rosenbrock{}
	_ framework.Problem = Schwefel{}
	_ framework.Problem = Griewank{}
	_ framework.Problem = Levy{}
	_ framework.Problem = Salomon{}
	_ framework.Problem = Ackley{}
)

// Sphere is f(x) = sum x_i^2.
type Sphere struct {
	NDim int
}

func (fn Sphere) Name() string    { return "Sphere" }
func (fn Sphere) Dimensions() int { return fn.NDim }

func (fn Sphere) Bounds() []framework.Bounds {
	return framework.UniformBounds(fn.NDim, -5.12, 5.12)
}

func (fn Sphere) Optimum() ([]float64, float64) { return filled(fn.NDim, 0), 0 }

func (fn Sphere) Objective(x []float64) (float64, error) {
	if err := checkDims(fn.Name(), fn.NDim, x); err != nil {
		return 0, err
	}
	return floats.Dot(x, x), nil
}

// Rastrigin is highly multimodal with a regular grid of local minima.
type Rastrigin struct {
	NDim int
}

func (fn Rastrigin) Name() string    { return "Rastrigin" }
func (fn Rastrigin) Dimensions() int { return fn.NDim }

func (fn Rastrigin) Bounds() []framework.Bounds {
	return framework.UniformBounds(fn.NDim, -5.12, 5.12)
}

func (fn Rastrigin) Optimum() ([]float64, float64) { return filled(fn.NDim, 0), 0 }

func (fn Rastrigin) Objective(x []float64) (float64, error) {
	if err := checkDims(fn.Name(), fn.NDim, x); err != nil {
		return 0, err
	}
	sum := 10 * float64(len(x))
	for _, v := range x {
		sum += v*v - 10*math.Cos(2*math.Pi*v)
	}
	return sum, nil
}

// Rosenbrock is the banana-shaped valley function. It needs at least two
// dimensions.
type Rosenbrock struct {
	NDim int
}

func (fn Rosenbrock) Name() string    { return "Rosenbrock" }
func (fn Rosenbrock) Dimensions() int { return fn.NDim }

func (fn Rosenbrock) Bounds() []framework.Bounds {
	return framework.UniformBounds(fn.NDim, -5, 10)
}

func (fn Rosenbrock) Optimum() ([]float64, float64) { return filled(fn.NDim, 1), 0 }

func (fn Rosenbrock) Objective(x []float64) (float64, error) {
	if err := checkDims(fn.Name(), fn.NDim, x); err != nil {
		return 0, err
	}
	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return sum, nil
}

// schwefelOptimum is the per-dimension minimiser of Schwefel.
const schwefelOptimum = 420.9687463

// Schwefel is deceptive: its global minimum lies near the domain corner,
// far from the next best local minima.
type Schwefel struct {
	NDim int
}

func (fn Schwefel) Name() string    { return "Schwefel" }
func (fn Schwefel) Dimensions() int { return fn.NDim }

func (fn Schwefel) Bounds() []framework.Bounds {
	return framework.UniformBounds(fn.NDim, -500, 500)
}

// Optimum reports a minimum of zero; the closed form evaluates to about
// 1.3e-5 per dimension at the minimiser because the constant is rounded.
func (fn Schwefel) Optimum() ([]float64, float64) { return filled(fn.NDim, schwefelOptimum), 0 }

func (fn Schwefel) Objective(x []float64) (float64, error) {
	if err := checkDims(fn.Name(), fn.NDim, x); err != nil {
		return 0, err
	}
	sum := 418.9829 * float64(len(x))
	for _, v := range x {
		sum -= v * math.Sin(math.Sqrt(math.Abs(v)))
	}
	return sum, nil
}

// Griewank combines a quadratic bowl with a product of cosines.
type Griewank struct {
	NDim int
}

func (fn Griewank) Name() string    { return "Griewank" }
func (fn Griewank) Dimensions() int { return fn.NDim }

func (fn Griewank) Bounds() []framework.Bounds {
	return framework.UniformBounds(fn.NDim, -600, 600)
}

func (fn Griewank) Optimum() ([]float64, float64) { return filled(fn.NDim, 0), 0 }

func (fn Griewank) Objective(x []float64) (float64, error) {
	if err := checkDims(fn.Name(), fn.NDim, x); err != nil {
		return 0, err
	}
	prod := 1.0
	for i, v := range x {
		prod *= math.Cos(v / math.Sqrt(float64(i+1)))
	}
	return 1 + floats.Dot(x, x)/4000 - prod, nil
}

// Levy is multimodal with its minimum at x_i = 1.
type Levy struct {
	NDim int
}

func (fn Levy) Name() string    { return "Levy" }
func (fn Levy) Dimensions() int { return fn.NDim }

func (fn Levy) Bounds() []framework.Bounds {
	return framework.UniformBounds(fn.NDim, -10, 10)
}

func (fn Levy) Optimum() ([]float64, float64) { return filled(fn.NDim, 1), 0 }

func (fn Levy) Objective(x []float64) (float64, error) {
	if err := checkDims(fn.Name(), fn.NDim, x); err != nil {
		return 0, err
	}
	w := make([]float64, len(x))
	for i, v := range x {
		w[i] = 1 + (v-1)/4
	}
	n := len(w) - 1

	s := math.Sin(math.Pi * w[0])
	sum := s * s
	for i := range n {
		s = math.Sin(math.Pi*w[i] + 1)
		sum += (w[i] - 1) * (w[i] - 1) * (1 + 10*s*s)
	}
	s = math.Sin(2 * math.Pi * w[n])
	sum += (w[n] - 1) * (w[n] - 1) * (1 + s*s)
	return sum, nil
}

// Salomon has concentric ridges around the origin.
type Salomon struct {
	NDim int
}

func (fn Salomon) Name() string    { return "Salomon" }
func (fn Salomon) Dimensions() int { return fn.NDim }

func (fn Salomon) Bounds() []framework.Bounds {
	return framework.UniformBounds(fn.NDim, -100, 100)
}

func (fn Salomon) Optimum() ([]float64, float64) { return filled(fn.NDim, 0), 0 }

func (fn Salomon) Objective(x []float64) (float64, error) {
	if err := checkDims(fn.Name(), fn.NDim, x); err != nil {
		return 0, err
	}
	r := floats.Norm(x, 2)
	return 1 - math.Cos(2*math.Pi*r) + 0.1*r, nil
}

// Ackley is the n-dimensional Ackley function.
type Ackley struct {
	NDim int
}

func (fn Ackley) Name() string    { return "Ackley" }
func (fn Ackley) Dimensions() int { return fn.NDim }

func (fn Ackley) Bounds() []framework.Bounds {
	return framework.UniformBounds(fn.NDim, -32.768, 32.768)
}

func (fn Ackley) Optimum() ([]float64, float64) { return filled(fn.NDim, 0), 0 }

func (fn Ackley) Objective(x []float64) (float64, error) {
	if err := checkDims(fn.Name(), fn.NDim, x); err != nil {
		return 0, err
	}
	n := float64(len(x))
	cos := 0.0
	for _, v := range x {
		cos += math.Cos(2 * math.Pi * v)
	}
	return -20*math.Exp(-0.2*math.Sqrt(floats.Dot(x, x)/n)) - math.Exp(cos/n) + 20 + math.E, nil
}
