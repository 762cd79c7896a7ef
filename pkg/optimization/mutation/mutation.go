// Package mutation implements single-chromosome mutation operators. Operators
// never modify their input: they mutate and return a clone.
package mutation

import (
	"fmt"
	"math/rand/v2"

	"github.com/catalano/optimization/pkg/optimization/chromosome"
	"github.com/catalano/optimization/pkg/optimization/framework"
)

// Mutator perturbs a copy of c.
type Mutator interface {
	Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error)
}

func requireRange(op string, c chromosome.Chromosome) error {
	if c.Len() < 2 {
		return fmt.Errorf("%w: %s needs at least 2 genes, got %d", framework.ErrInvalidArgument, op, c.Len())
	}
	return nil
}

func unsupported(op string, c chromosome.Chromosome) error {
	return fmt.Errorf("%w: %s does not support %T", framework.ErrInvalidArgument, op, c)
}

// randomRange returns a < b, both in [0, n). n must be at least 2.
func randomRange(n int, rng *rand.Rand) (int, int) {
	a := rng.IntN(n - 1)
	b := a + 1 + rng.IntN(n-1-a)
	return a, b
}

// reverse reverses genes a..b inclusive.
func reverse(c chromosome.Chromosome, a, b int) error {
	for ; a < b; a, b = a+1, b-1 {
		if err := c.Swap(a, b); err != nil {
			return err
		}
	}
	return nil
}

// Swap exchanges two independently drawn genes. Both draws may hit the same
// position, in which case the result equals the input.
type Swap struct{}

var _ Mutator = Swap{}

func (Swap) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	out := c.Clone()
	if err := out.Swap(rng.IntN(out.Len()), rng.IntN(out.Len())); err != nil {
		return nil, err
	}
	return out, nil
}

// Scramble shuffles a random contiguous range of genes.
type Scramble struct{}

var _ Mutator = Scramble{}

func (Scramble) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	if err := requireRange("scramble", c); err != nil {
		return nil, err
	}
	out := c.Clone()
	a, b := randomRange(out.Len(), rng)
	for i := b; i > a; i-- {
		if err := out.Swap(i, a+rng.IntN(i-a+1)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Inversion reverses a random contiguous range of genes.
type Inversion struct{}

var _ Mutator = Inversion{}

func (Inversion) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	if err := requireRange("inversion", c); err != nil {
		return nil, err
	}
	out := c.Clone()
	a, b := randomRange(out.Len(), rng)
	if err := reverse(out, a, b); err != nil {
		return nil, err
	}
	return out, nil
}

// SimpleInversion reverses a range whose start is drawn from the first half of
// the chromosome and whose end is drawn from the second half.
type SimpleInversion struct{}

var _ Mutator = SimpleInversion{}

func (SimpleInversion) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	if err := requireRange("simple inversion", c); err != nil {
		return nil, err
	}
	out := c.Clone()
	n := out.Len()
	half := n / 2
	a := rng.IntN(half)
	b := half + rng.IntN(n-half)
	if err := reverse(out, a, b); err != nil {
		return nil, err
	}
	return out, nil
}

// Insertion removes a random gene and reinserts it at a different position,
// shifting the genes in between.
type Insertion struct{}

var _ Mutator = Insertion{}

func (Insertion) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	if err := requireRange("insertion", c); err != nil {
		return nil, err
	}
	out := c.Clone()
	n := out.Len()
	from := rng.IntN(n)
	to := rng.IntN(n - 1)
	if to >= from {
		to++
	}
	if err := move(out, from, to); err != nil {
		return nil, err
	}
	return out, nil
}

// move relocates gene from to position to through adjacent swaps.
func move(c chromosome.Chromosome, from, to int) error {
	step := 1
	if to < from {
		step = -1
	}
	for i := from; i != to; i += step {
		if err := c.Swap(i, i+step); err != nil {
			return err
		}
	}
	return nil
}

// Random delegates to one uniformly chosen operator.
type Random struct {
	Operators []Mutator
}

var _ Mutator = Random{}

func (r Random) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	if len(r.Operators) == 0 {
		return nil, fmt.Errorf("%w: no mutation operators configured", framework.ErrInvalidArgument)
	}
	return r.Operators[rng.IntN(len(r.Operators))].Mutate(c, rng)
}
