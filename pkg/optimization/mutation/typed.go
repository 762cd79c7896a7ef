package mutation

import (
	"fmt"
	"math/rand/v2"

	"k8s.io/utils/ptr"

	"github.com/catalano/optimization/apis/config/v1alpha1"
	"github.com/catalano/optimization/pkg/optimization/chromosome"
	"github.com/catalano/optimization/pkg/optimization/framework"
)

// BitFlip inverts one random bit of a Binary chromosome.
type BitFlip struct{}

var _ Mutator = BitFlip{}

func (BitFlip) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	b, ok := c.(*chromosome.Binary)
	if !ok {
		return nil, unsupported("bit flip", c)
	}
	out := b.Clone().(*chromosome.Binary)
	if err := out.Flip(rng.IntN(out.Len())); err != nil {
		return nil, err
	}
	return out, nil
}

// RandomResetting replaces one gene of an Integer chromosome with a fresh
// value from its domain.
type RandomResetting struct{}

var _ Mutator = RandomResetting{}

func (RandomResetting) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	ic, ok := c.(*chromosome.Integer)
	if !ok {
		return nil, unsupported("random resetting", c)
	}
	out := ic.Clone().(*chromosome.Integer)
	if err := out.SetGene(rng.IntN(out.Len()), rng.IntN(out.MaxValue())); err != nil {
		return nil, err
	}
	return out, nil
}

// Multiplier perturbs one gene of a Float chromosome. With probability
// Balancer the gene is multiplied by a factor in [0, 1), otherwise an offset
// in [0, 1) is added. The result is clamped to the chromosome's domain.
type Multiplier struct {
	Balancer float64
}

var _ Mutator = Multiplier{}

// NewMultiplier returns a multiplier mutation; balancer must be in [0, 1].
func NewMultiplier(balancer float64) (Multiplier, error) {
	if !(balancer >= 0 && balancer <= 1) {
		return Multiplier{}, fmt.Errorf("%w: balancer must be in [0, 1], got %v", framework.ErrInvalidArgument, balancer)
	}
	return Multiplier{Balancer: balancer}, nil
}

// NewMultiplierFromArgs builds the operator from configuration. Unset fields
// take their defaults.
func NewMultiplierFromArgs(args *v1alpha1.MultiplierArgs) (Multiplier, error) {
	if args == nil {
		return NewMultiplier(v1alpha1.DefaultBalancer)
	}
	return NewMultiplier(ptr.Deref(args.Balancer, v1alpha1.DefaultBalancer))
}

func (m Multiplier) Mutate(c chromosome.Chromosome, rng *rand.Rand) (chromosome.Chromosome, error) {
	fc, ok := c.(*chromosome.Float)
	if !ok {
		return nil, unsupported("multiplier", c)
	}
	out := fc.Clone().(*chromosome.Float)
	i := rng.IntN(out.Len())
	g, err := out.Gene(i)
	if err != nil {
		return nil, err
	}

	if rng.Float64() < m.Balancer {
		g *= rng.Float64()
	} else {
		g += rng.Float64()
	}
	if err := out.SetGene(i, out.Bounds().Clamp(g)); err != nil {
		return nil, err
	}
	return out, nil
}
