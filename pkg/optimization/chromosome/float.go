package chromosome

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

// Float holds real-valued genes. Generated genes are uniform in [min, max);
// explicitly set genes may take any value in [min, max].
type Float struct {
	base
	genes []float64
	min   float64
	max   float64
}

var _ Chromosome = &Float{}

// NewFloat returns a random chromosome of the given length.
func NewFloat(length int, min, max float64, rng *rand.Rand) (*Float, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	if err := checkDomain(min, max); err != nil {
		return nil, err
	}
	c := &Float{genes: make([]float64, length), min: min, max: max}
	c.Generate(rng)
	return c, nil
}

// NewFloatFromGenes copies genes, each of which must lie in [min, max].
func NewFloatFromGenes(genes []float64, min, max float64) (*Float, error) {
	if err := checkLength(len(genes)); err != nil {
		return nil, err
	}
	if err := checkDomain(min, max); err != nil {
		return nil, err
	}
	c := &Float{genes: make([]float64, len(genes)), min: min, max: max}
	for i, g := range genes {
		if err := c.SetGene(i, g); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func checkDomain(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min >= max {
		return fmt.Errorf("%w: domain [%v, %v) is empty or not finite", framework.ErrInvalidArgument, min, max)
	}
	return nil
}

func (c *Float) Len() int { return len(c.genes) }

func (c *Float) Min() float64 { return c.min }

func (c *Float) Max() float64 { return c.max }

// Bounds returns the gene domain as a closed range.
func (c *Float) Bounds() framework.Bounds { return framework.Bounds{L: c.min, H: c.max} }

func (c *Float) Gene(i int) (float64, error) {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return 0, err
	}
	return c.genes[i], nil
}

func (c *Float) SetGene(i int, v float64) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	if !c.Bounds().Contains(v) {
		return fmt.Errorf("%w: gene value %v outside [%v, %v]", framework.ErrInvalidArgument, v, c.min, c.max)
	}
	c.genes[i] = v
	return nil
}

// Genes returns a copy of the gene sequence.
func (c *Float) Genes() []float64 {
	out := make([]float64, len(c.genes))
	copy(out, c.genes)
	return out
}

func (c *Float) Swap(i, j int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	if err := checkIndex(j, len(c.genes)); err != nil {
		return err
	}
	c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	return nil
}

func (c *Float) Generate(rng *rand.Rand) {
	for i := range c.genes {
		c.genes[i] = c.min + rng.Float64()*(c.max-c.min)
	}
}

func (c *Float) String() string { return fmt.Sprint(c.genes) }

func (c *Float) Clone() Chromosome {
	return &Float{
		base:  c.base,
		genes: c.Genes(),
		min:   c.min,
		max:   c.max,
	}
}

func (c *Float) CreateNew(rng *rand.Rand) Chromosome {
	n := &Float{genes: make([]float64, len(c.genes)), min: c.min, max: c.max}
	n.Generate(rng)
	return n
}
