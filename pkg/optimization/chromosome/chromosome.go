// Package chromosome provides the candidate-solution encodings used by the
// genetic operators: Binary, Integer, Float and Permutation. The set of
// variants is closed; operators switch on the concrete type.
//
// Chromosomes are not safe for concurrent use.
package chromosome

import (
	"fmt"
	"math/rand/v2"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

// Chromosome is the behaviour shared by every encoding. Gene access is typed
// and therefore lives on the concrete variants.
type Chromosome interface {
	// Len is the fixed number of genes.
	Len() int

	// Fitness is zero until set by the caller.
	Fitness() float64
	SetFitness(float64)

	// Generate refills every gene uniformly from the variant's domain.
	Generate(rng *rand.Rand)

	// Swap exchanges the genes at i and j. Every variant supports it and it
	// preserves the permutation property.
	Swap(i, j int) error

	// Clone returns an independent deep copy that carries the fitness over.
	Clone() Chromosome

	// CreateNew returns a freshly generated chromosome with the same domain.
	CreateNew(rng *rand.Rand) Chromosome

	String() string

	sealed()
}

// FitnessFunc scores a chromosome; higher is better for selection.
type FitnessFunc func(Chromosome) float64

// Evaluate stores fn(c) as the fitness of every chromosome in population.
func Evaluate(population []Chromosome, fn FitnessFunc) {
	for _, c := range population {
		c.SetFitness(fn(c))
	}
}

// FitnessValues returns the fitness of each chromosome, in population order.
func FitnessValues(population []Chromosome) []float64 {
	values := make([]float64, len(population))
	for i, c := range population {
		values[i] = c.Fitness()
	}
	return values
}

type base struct {
	fitness float64
}

func (b *base) Fitness() float64 { return b.fitness }

func (b *base) SetFitness(f float64) { b.fitness = f }

func (b *base) sealed() {}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: gene %d, length %d", framework.ErrIndexOutOfRange, i, n)
	}
	return nil
}

func checkLength(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: chromosome length must be positive, got %d", framework.ErrInvalidArgument, n)
	}
	return nil
}
