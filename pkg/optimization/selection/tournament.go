package selection

import (
	"fmt"
	"math/rand/v2"

	"k8s.io/utils/ptr"

	"github.com/catalano/optimization/apis/config/v1alpha1"
	"github.com/catalano/optimization/pkg/optimization/framework"
)

// DefaultTournamentSize is used when Tournament.K is zero.
const DefaultTournamentSize = int(v1alpha1.DefaultTournamentSize)

// Tournament samples K distinct chromosomes and returns the best two of them.
type Tournament struct {
	K int
}

var _ Selector = &Tournament{}

// NewTournament returns a tournament selector of size k.
func NewTournament(k int) (*Tournament, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: tournament size must be at least 2, got %d", framework.ErrInvalidArgument, k)
	}
	return &Tournament{K: k}, nil
}

// NewTournamentFromArgs builds a selector from configuration. Unset fields
// take their defaults.
func NewTournamentFromArgs(args *v1alpha1.TournamentArgs) (*Tournament, error) {
	if args == nil {
		return NewTournament(DefaultTournamentSize)
	}
	return NewTournament(int(ptr.Deref(args.TournamentSize, v1alpha1.DefaultTournamentSize)))
}

func (t *Tournament) Select(fitness []float64, rng *rand.Rand) (int, int, error) {
	k := t.K
	if k == 0 {
		k = DefaultTournamentSize
	}
	if k < 2 {
		return 0, 0, fmt.Errorf("%w: tournament size must be at least 2, got %d", framework.ErrInvalidArgument, k)
	}
	if err := checkPopulation(fitness); err != nil {
		return 0, 0, err
	}
	if len(fitness) < k {
		return 0, 0, fmt.Errorf("%w: population of %d is smaller than tournament size %d", framework.ErrInvalidArgument, len(fitness), k)
	}

	contestants := rng.Perm(len(fitness))[:k]
	sortDescending(contestants, fitness)
	return contestants[0], contestants[1], nil
}
