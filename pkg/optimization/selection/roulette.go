package selection

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

// ScanMode controls how a wheel draw is matched against the normalised values,
// which are visited in ascending order.
type ScanMode int

const (
	// ScanLastMatch keeps overwriting the pick with every value the draw is
	// greater than or equal to, and falls back to the lowest value. The result
	// is biased towards the largest value not exceeding the draw rather than
	// being a proportional pick.
	ScanLastMatch ScanMode = iota

	// ScanFirstMatch stops at the first value greater than or equal to the
	// draw, falling back to the highest value.
	ScanFirstMatch
)

func (m ScanMode) String() string {
	switch m {
	case ScanLastMatch:
		return "LastMatch"
	case ScanFirstMatch:
		return "FirstMatch"
	}
	return fmt.Sprintf("ScanMode(%d)", int(m))
}

// Roulette normalises fitness by the maximum value and spins the wheel twice.
// The maximum fitness must be positive.
type Roulette struct {
	Scan ScanMode
}

var _ Selector = Roulette{}

func (r Roulette) Select(fitness []float64, rng *rand.Rand) (int, int, error) {
	if err := checkPopulation(fitness); err != nil {
		return 0, 0, err
	}
	top := floats.Max(fitness)
	if !(top > 0) || math.IsInf(top, 1) {
		return 0, 0, fmt.Errorf("%w: roulette needs a finite positive maximum fitness, got %v", framework.ErrInvalidArgument, top)
	}

	normalized := make([]float64, len(fitness))
	copy(normalized, fitness)
	floats.Scale(1/top, normalized)
	return spin(normalized, rng, r.Scan)
}

// Rank replaces each fitness by its rank position divided by the population
// size (the weakest gets 1/n, the fittest 1) and spins the wheel twice.
type Rank struct {
	Scan ScanMode
}

var _ Selector = Rank{}

func (r Rank) Select(fitness []float64, rng *rand.Rand) (int, int, error) {
	if err := checkPopulation(fitness); err != nil {
		return 0, 0, err
	}

	n := len(fitness)
	order := indices(n)
	sortAscending(order, fitness)
	ranks := make([]float64, n)
	for pos, idx := range order {
		ranks[idx] = float64(pos+1) / float64(n)
	}
	return spin(ranks, rng, r.Scan)
}

func spin(values []float64, rng *rand.Rand, mode ScanMode) (int, int, error) {
	order := indices(len(values))
	sortAscending(order, values)
	i := pick(values, order, rng.Float64(), mode)
	j := pick(values, order, rng.Float64(), mode)
	return i, j, nil
}

// pick matches draw r against values visited in the given ascending order.
func pick(values []float64, order []int, r float64, mode ScanMode) int {
	if mode == ScanFirstMatch {
		for _, idx := range order {
			if values[idx] >= r {
				return idx
			}
		}
		return order[len(order)-1]
	}

	selected := order[0]
	for _, idx := range order {
		if r >= values[idx] {
			selected = idx
		}
	}
	return selected
}
