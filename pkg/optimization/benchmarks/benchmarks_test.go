package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

func TestOptimumValue(t *testing.T) {
	for _, name := range Names() {
		for _, dims := range []int{2, 5, 30} {
			p, err := New(name, dims)
			require.NoError(t, err)
			require.Equal(t, dims, p.Dimensions())
			require.Len(t, p.Bounds(), dims)

			x, want := p.Optimum()
			require.Len(t, x, dims)
			for d, b := range p.Bounds() {
				require.True(t, b.Contains(x[d]), "%s optimum outside bounds", name)
			}
			got, err := p.Objective(x)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-4*float64(dims), "%s in %d dimensions", p.Name(), dims)
		}
	}
}

func TestNoPointBeatsOptimum(t *testing.T) {
	rng := framework.NewRand(17)
	for _, name := range Names() {
		p, err := New(name, 3)
		require.NoError(t, err)
		_, best := p.Optimum()
		x := make([]float64, 3)
		for range 500 {
			for d, b := range p.Bounds() {
				x[d] = b.L + rng.Float64()*b.Width()
			}
			f, err := p.Objective(x)
			require.NoError(t, err)
			require.GreaterOrEqual(t, f, best-1e-9, "%s at %v", name, x)
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		problem framework.Problem
		x       []float64
		want    float64
	}{
		{problem: Sphere{NDim: 3}, x: []float64{1, 2, 3}, want: 14},
		{problem: Rastrigin{NDim: 2}, x: []float64{1, 1}, want: 2},
		{problem: Rosenbrock{NDim: 2}, x: []float64{0, 0}, want: 1},
		{problem: Rosenbrock{NDim: 3}, x: []float64{1, 1, 2}, want: 100},
		{problem: Griewank{NDim: 1}, x: []float64{0}, want: 0},
		{problem: Salomon{NDim: 2}, x: []float64{3, 4}, want: 0.5},
		{problem: Levy{NDim: 1}, x: []float64{1}, want: 0},
	}
	for _, tt := range tests {
		got, err := tt.problem.Objective(tt.x)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "%s%v", tt.problem.Name(), tt.x)
	}
}

func TestWrongDimensions(t *testing.T) {
	for _, name := range Names() {
		p, err := New(name, 4)
		require.NoError(t, err)
		_, err = p.Objective([]float64{1, 2})
		assert.ErrorIs(t, err, framework.ErrInvalidArgument, name)
	}
}

func TestNew(t *testing.T) {
	p, err := New("Ackley", 2)
	require.NoError(t, err)
	assert.Equal(t, "Ackley", p.Name())

	_, err = New("himmelblau", 2)
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)
	_, err = New("sphere", 0)
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)
	_, err = New("rosenbrock", 1)
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)

	assert.Equal(t, []string{"ackley", "griewank", "levy", "rastrigin", "rosenbrock", "salomon", "schwefel", "sphere"}, Names())
}
