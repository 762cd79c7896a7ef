package mutation

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/catalano/optimization/apis/config/v1alpha1"
	"github.com/catalano/optimization/pkg/optimization/chromosome"
	"github.com/catalano/optimization/pkg/optimization/framework"
)

var orderOperators = map[string]Mutator{
	"swap":             Swap{},
	"scramble":         Scramble{},
	"inversion":        Inversion{},
	"simple inversion": SimpleInversion{},
	"insertion":        Insertion{},
	"random":           Random{Operators: []Mutator{Swap{}, Scramble{}, Inversion{}, SimpleInversion{}, Insertion{}}},
}

func identity(t *testing.T, n int) *chromosome.Permutation {
	t.Helper()
	genes := make([]int, n)
	for i := range genes {
		genes[i] = i
	}
	p, err := chromosome.NewPermutationFromGenes(genes)
	require.NoError(t, err)
	return p
}

func TestPermutationPreserved(t *testing.T) {
	rng := framework.NewRand(1)
	for name, op := range orderOperators {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{2, 3, 10, 33} {
				var c chromosome.Chromosome = identity(t, n)
				for range 200 {
					out, err := op.Mutate(c, rng)
					require.NoError(t, err)
					require.Equal(t, n, out.Len())
					require.True(t, chromosome.IsPermutation(out.(*chromosome.Permutation).Genes()), out.String())
					c = out
				}
			}
		})
	}
}

func TestInputUnchangedAndLengthPreserved(t *testing.T) {
	rng := framework.NewRand(2)
	b, err := chromosome.NewBinary(40, rng)
	require.NoError(t, err)
	i, err := chromosome.NewInteger(12, 50, rng)
	require.NoError(t, err)
	f, err := chromosome.NewFloat(12, -3, 3, rng)
	require.NoError(t, err)
	p, err := chromosome.NewPermutation(12, rng)
	require.NoError(t, err)

	cases := []struct {
		c   chromosome.Chromosome
		ops []Mutator
	}{
		{c: b, ops: []Mutator{BitFlip{}, Swap{}, Scramble{}, Inversion{}, SimpleInversion{}, Insertion{}}},
		{c: i, ops: []Mutator{RandomResetting{}, Swap{}, Scramble{}, Inversion{}, SimpleInversion{}, Insertion{}}},
		{c: f, ops: []Mutator{Multiplier{Balancer: 0.5}, Swap{}, Scramble{}, Inversion{}, SimpleInversion{}, Insertion{}}},
		{c: p, ops: []Mutator{Swap{}, Scramble{}, Inversion{}, SimpleInversion{}, Insertion{}}},
	}
	for _, tc := range cases {
		tc.c.SetFitness(42)
		before := tc.c.String()
		for _, op := range tc.ops {
			for range 50 {
				out, err := op.Mutate(tc.c, rng)
				require.NoError(t, err)
				require.Equal(t, tc.c.Len(), out.Len())
				require.Equal(t, 42.0, out.Fitness())
				require.Equal(t, before, tc.c.String(), "%T mutated its input", op)
			}
		}
	}
}

func TestRangeOperatorsNeedTwoGenes(t *testing.T) {
	one := identity(t, 1)
	for _, op := range []Mutator{Scramble{}, Inversion{}, SimpleInversion{}, Insertion{}} {
		_, err := op.Mutate(one, framework.NewRand(1))
		assert.ErrorIs(t, err, framework.ErrInvalidArgument, "%T", op)
	}
}

func TestSwapSinglePositionIsNoop(t *testing.T) {
	rng := framework.NewRand(3)
	c, err := chromosome.NewFloatFromGenes([]float64{0.25}, 0, 1)
	require.NoError(t, err)
	out, err := Swap{}.Mutate(c, rng)
	require.NoError(t, err)
	assert.Equal(t, c.Genes(), out.(*chromosome.Float).Genes())
}

func TestSwapSamePositionEqualsInput(t *testing.T) {
	// With two genes, half of the draws pick the same position twice.
	rng := framework.NewRand(4)
	c := identity(t, 2)
	var same, swapped int
	for range 400 {
		out, err := Swap{}.Mutate(c, rng)
		require.NoError(t, err)
		switch genes := out.(*chromosome.Permutation).Genes(); {
		case slices.Equal(genes, []int{0, 1}):
			same++
		case slices.Equal(genes, []int{1, 0}):
			swapped++
		default:
			t.Fatalf("unexpected genes %v", genes)
		}
	}
	assert.Positive(t, same)
	assert.Positive(t, swapped)
}

func TestInversionReversesContiguousRange(t *testing.T) {
	rng := framework.NewRand(5)
	for _, op := range []Mutator{Inversion{}, SimpleInversion{}} {
		for range 200 {
			out, err := op.Mutate(identity(t, 15), rng)
			require.NoError(t, err)
			genes := out.(*chromosome.Permutation).Genes()

			first, last := -1, -1
			for i, g := range genes {
				if g != i {
					if first < 0 {
						first = i
					}
					last = i
				}
			}
			if first < 0 {
				continue
			}
			for k := first; k <= last; k++ {
				require.Equal(t, first+last-k, genes[k], "%T produced %v", op, genes)
			}
		}
	}
}

func TestSimpleInversionSpansMiddle(t *testing.T) {
	rng := framework.NewRand(6)
	for range 100 {
		out, err := SimpleInversion{}.Mutate(identity(t, 10), rng)
		require.NoError(t, err)
		genes := out.(*chromosome.Permutation).Genes()
		// The reversed range always starts before 5 and ends at or after 5,
		// so genes 4 and 5 are always out of place or swapped together.
		assert.False(t, genes[4] == 4 && genes[5] == 5, "%v", genes)
	}
}

func TestInsertionMovesOneGene(t *testing.T) {
	rng := framework.NewRand(7)
	for range 200 {
		out, err := Insertion{}.Mutate(identity(t, 9), rng)
		require.NoError(t, err)
		genes := out.(*chromosome.Permutation).Genes()
		require.NotEqual(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, genes)

		// Removing the moved gene leaves the remaining genes in order.
		found := false
		for moved := range 9 {
			rest := slices.DeleteFunc(slices.Clone(genes), func(g int) bool { return g == moved })
			if slices.IsSorted(rest) {
				found = true
				break
			}
		}
		require.True(t, found, "%v", genes)
	}
}

func TestBitFlipChangesOneBit(t *testing.T) {
	rng := framework.NewRand(8)
	b, err := chromosome.NewBinary(100, rng)
	require.NoError(t, err)
	for range 100 {
		out, err := BitFlip{}.Mutate(b, rng)
		require.NoError(t, err)
		require.Equal(t, 1, hamming(b.ToBinary(), out.(*chromosome.Binary).ToBinary()))
	}
}

func TestRandomResetting(t *testing.T) {
	rng := framework.NewRand(9)
	c, err := chromosome.NewInteger(20, 4, rng)
	require.NoError(t, err)
	for range 100 {
		out, err := RandomResetting{}.Mutate(c, rng)
		require.NoError(t, err)
		got := out.(*chromosome.Integer).Genes()
		diff := 0
		for k, g := range c.Genes() {
			require.True(t, got[k] >= 0 && got[k] < 4)
			if got[k] != g {
				diff++
			}
		}
		require.LessOrEqual(t, diff, 1)
	}
}

func TestMultiplier(t *testing.T) {
	rng := framework.NewRand(10)
	c, err := chromosome.NewFloatFromGenes([]float64{5, 5, 5}, 0, 10)
	require.NoError(t, err)

	for range 100 {
		out, err := Multiplier{Balancer: 0}.Mutate(c, rng)
		require.NoError(t, err)
		changed := changedGenes(c.Genes(), out.(*chromosome.Float).Genes())
		for _, g := range changed {
			require.GreaterOrEqual(t, g, 5.0)
			require.Less(t, g, 6.0)
		}

		out, err = Multiplier{Balancer: 1}.Mutate(c, rng)
		require.NoError(t, err)
		changed = changedGenes(c.Genes(), out.(*chromosome.Float).Genes())
		require.LessOrEqual(t, len(changed), 1)
		for _, g := range changed {
			require.GreaterOrEqual(t, g, 0.0)
			require.Less(t, g, 5.0)
		}
	}
}

func TestMultiplierClamps(t *testing.T) {
	rng := framework.NewRand(11)
	c, err := chromosome.NewFloatFromGenes([]float64{0.99}, 0, 1)
	require.NoError(t, err)
	for range 100 {
		out, err := Multiplier{Balancer: 0}.Mutate(c, rng)
		require.NoError(t, err)
		g, _ := out.(*chromosome.Float).Gene(0)
		require.LessOrEqual(t, g, 1.0)
	}

	low, err := chromosome.NewFloatFromGenes([]float64{2}, 1.5, 3)
	require.NoError(t, err)
	for range 100 {
		out, err := Multiplier{Balancer: 1}.Mutate(low, rng)
		require.NoError(t, err)
		g, _ := out.(*chromosome.Float).Gene(0)
		require.GreaterOrEqual(t, g, 1.5)
	}
}

func TestNewMultiplier(t *testing.T) {
	_, err := NewMultiplier(1.1)
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)

	m, err := NewMultiplierFromArgs(&v1alpha1.MultiplierArgs{Balancer: ptr.To(0.25)})
	require.NoError(t, err)
	assert.Equal(t, 0.25, m.Balancer)

	m, err = NewMultiplierFromArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, v1alpha1.DefaultBalancer, m.Balancer)
}

func TestUnsupportedVariants(t *testing.T) {
	rng := framework.NewRand(12)
	p := identity(t, 4)
	for _, op := range []Mutator{BitFlip{}, RandomResetting{}, Multiplier{}} {
		_, err := op.Mutate(p, rng)
		assert.ErrorIs(t, err, framework.ErrInvalidArgument, "%T", op)
	}
}

func TestRandomNeedsOperators(t *testing.T) {
	_, err := Random{}.Mutate(identity(t, 4), framework.NewRand(1))
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)
}

func TestRandomUsesEveryOperator(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	counts := map[int]int{}
	ops := make([]Mutator, 3)
	for i := range ops {
		ops[i] = countingMutator{id: i, counts: counts}
	}
	for range 300 {
		_, err := Random{Operators: ops}.Mutate(identity(t, 3), rng)
		require.NoError(t, err)
	}
	assert.Len(t, counts, 3)
}

type countingMutator struct {
	id     int
	counts map[int]int
}

func (m countingMutator) Mutate(c chromosome.Chromosome, _ *rand.Rand) (chromosome.Chromosome, error) {
	m.counts[m.id]++
	return c.Clone(), nil
}

func hamming(a, b string) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func changedGenes(before, after []float64) []float64 {
	var out []float64
	for i := range before {
		if before[i] != after[i] {
			out = append(out, after[i])
		}
	}
	return out
}
