package chromosome

import (
	"fmt"
	"math/rand/v2"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

// Integer holds genes drawn from [0, maxValue).
type Integer struct {
	base
	genes    []int
	maxValue int
}

var _ Chromosome = &Integer{}

// NewInteger returns a random chromosome of the given length.
func NewInteger(length, maxValue int, rng *rand.Rand) (*Integer, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	if maxValue < 1 {
		return nil, fmt.Errorf("%w: max value must be positive, got %d", framework.ErrInvalidArgument, maxValue)
	}
	c := &Integer{genes: make([]int, length), maxValue: maxValue}
	c.Generate(rng)
	return c, nil
}

// NewIntegerFromGenes copies genes, each of which must lie in [0, maxValue).
func NewIntegerFromGenes(genes []int, maxValue int) (*Integer, error) {
	if err := checkLength(len(genes)); err != nil {
		return nil, err
	}
	if maxValue < 1 {
		return nil, fmt.Errorf("%w: max value must be positive, got %d", framework.ErrInvalidArgument, maxValue)
	}
	c := &Integer{genes: make([]int, len(genes)), maxValue: maxValue}
	for i, g := range genes {
		if err := c.SetGene(i, g); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Integer) Len() int { return len(c.genes) }

// MaxValue is the exclusive upper bound of the gene domain.
func (c *Integer) MaxValue() int { return c.maxValue }

func (c *Integer) Gene(i int) (int, error) {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return 0, err
	}
	return c.genes[i], nil
}

func (c *Integer) SetGene(i, v int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	if v < 0 || v >= c.maxValue {
		return fmt.Errorf("%w: gene value %d outside [0, %d)", framework.ErrInvalidArgument, v, c.maxValue)
	}
	c.genes[i] = v
	return nil
}

// Genes returns a copy of the gene sequence.
func (c *Integer) Genes() []int {
	out := make([]int, len(c.genes))
	copy(out, c.genes)
	return out
}

func (c *Integer) Swap(i, j int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	if err := checkIndex(j, len(c.genes)); err != nil {
		return err
	}
	c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	return nil
}

func (c *Integer) Generate(rng *rand.Rand) {
	for i := range c.genes {
		c.genes[i] = rng.IntN(c.maxValue)
	}
}

func (c *Integer) String() string { return fmt.Sprint(c.genes) }

func (c *Integer) Clone() Chromosome {
	return &Integer{
		base:     c.base,
		genes:    c.Genes(),
		maxValue: c.maxValue,
	}
}

func (c *Integer) CreateNew(rng *rand.Rand) Chromosome {
	n := &Integer{genes: make([]int, len(c.genes)), maxValue: c.maxValue}
	n.Generate(rng)
	return n
}
