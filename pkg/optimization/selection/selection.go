// Package selection implements parent selection for genetic algorithms.
// Every selector returns two indices into the population; higher fitness is
// better. Selectors read fitness values only and never modify chromosomes.
package selection

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/catalano/optimization/pkg/optimization/chromosome"
	"github.com/catalano/optimization/pkg/optimization/framework"
)

// Selector picks two parent indices. The indices may coincide unless the
// selector documents otherwise.
type Selector interface {
	Select(fitness []float64, rng *rand.Rand) (i, j int, err error)
}

// SelectFrom runs s over the fitness values of population.
func SelectFrom(s Selector, population []chromosome.Chromosome, rng *rand.Rand) (int, int, error) {
	return s.Select(chromosome.FitnessValues(population), rng)
}

func checkPopulation(fitness []float64) error {
	if len(fitness) == 0 {
		return fmt.Errorf("%w: empty population", framework.ErrInvalidArgument)
	}
	return nil
}

// sortDescending orders idx by decreasing fitness, keeping the original order
// of ties.
func sortDescending(idx []int, fitness []float64) {
	sort.SliceStable(idx, func(a, b int) bool {
		return fitness[idx[a]] > fitness[idx[b]]
	})
}

func sortAscending(idx []int, values []float64) {
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})
}

func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Elitism deterministically returns the two fittest chromosomes. A
// single-chromosome population yields (0, 0).
type Elitism struct{}

var _ Selector = Elitism{}

func (Elitism) Select(fitness []float64, _ *rand.Rand) (int, int, error) {
	if err := checkPopulation(fitness); err != nil {
		return 0, 0, err
	}
	if len(fitness) == 1 {
		return 0, 0, nil
	}
	idx := indices(len(fitness))
	sortDescending(idx, fitness)
	return idx[0], idx[1], nil
}

// Random draws two independent uniform indices.
type Random struct{}

var _ Selector = Random{}

func (Random) Select(fitness []float64, rng *rand.Rand) (int, int, error) {
	if err := checkPopulation(fitness); err != nil {
		return 0, 0, err
	}
	return rng.IntN(len(fitness)), rng.IntN(len(fitness)), nil
}
