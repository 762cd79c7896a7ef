package chromosome

import (
	"fmt"
	"math/rand/v2"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

// Permutation holds an ordering of 0..Len()-1. Genes can only be rearranged
// through Swap, so the permutation property always holds.
type Permutation struct {
	base
	genes []int
}

var _ Chromosome = &Permutation{}

// NewPermutation returns a uniformly shuffled permutation of 0..length-1.
func NewPermutation(length int, rng *rand.Rand) (*Permutation, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	c := &Permutation{genes: make([]int, length)}
	c.Generate(rng)
	return c, nil
}

// NewPermutationFromGenes copies genes after checking they are a permutation
// of 0..len(genes)-1.
func NewPermutationFromGenes(genes []int) (*Permutation, error) {
	if err := checkLength(len(genes)); err != nil {
		return nil, err
	}
	if !IsPermutation(genes) {
		return nil, fmt.Errorf("%w: %v is not a permutation of 0..%d", framework.ErrInvalidArgument, genes, len(genes)-1)
	}
	out := make([]int, len(genes))
	copy(out, genes)
	return &Permutation{genes: out}, nil
}

// IsPermutation reports whether genes contains each of 0..len(genes)-1 once.
func IsPermutation(genes []int) bool {
	seen := sets.New[int]()
	for _, g := range genes {
		if g < 0 || g >= len(genes) || seen.Has(g) {
			return false
		}
		seen.Insert(g)
	}
	return true
}

func (c *Permutation) Len() int { return len(c.genes) }

func (c *Permutation) Gene(i int) (int, error) {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return 0, err
	}
	return c.genes[i], nil
}

// Genes returns a copy of the ordering.
func (c *Permutation) Genes() []int {
	out := make([]int, len(c.genes))
	copy(out, c.genes)
	return out
}

func (c *Permutation) Swap(i, j int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	if err := checkIndex(j, len(c.genes)); err != nil {
		return err
	}
	c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	return nil
}

func (c *Permutation) Generate(rng *rand.Rand) {
	for i := range c.genes {
		c.genes[i] = i
	}
	rng.Shuffle(len(c.genes), func(i, j int) {
		c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	})
}

func (c *Permutation) String() string { return fmt.Sprint(c.genes) }

func (c *Permutation) Clone() Chromosome {
	return &Permutation{
		base:  c.base,
		genes: c.Genes(),
	}
}

func (c *Permutation) CreateNew(rng *rand.Rand) Chromosome {
	n := &Permutation{genes: make([]int, len(c.genes))}
	n.Generate(rng)
	return n
}
