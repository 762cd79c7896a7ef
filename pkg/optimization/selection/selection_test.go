package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/catalano/optimization/apis/config/v1alpha1"
	"github.com/catalano/optimization/pkg/optimization/chromosome"
	"github.com/catalano/optimization/pkg/optimization/framework"
)

func TestEmptyPopulation(t *testing.T) {
	rng := framework.NewRand(1)
	selectors := map[string]Selector{
		"tournament": &Tournament{K: 2},
		"elitism":    Elitism{},
		"roulette":   Roulette{},
		"rank":       Rank{},
		"random":     Random{},
	}
	for name, s := range selectors {
		t.Run(name, func(t *testing.T) {
			_, _, err := s.Select(nil, rng)
			require.ErrorIs(t, err, framework.ErrInvalidArgument)
		})
	}
}

func TestTournamentWholePopulation(t *testing.T) {
	rng := framework.NewRand(3)
	fitness := []float64{0.3, 9.1, -2, 4.4, 7.5, 0, 1.2}
	for range 200 {
		tour, err := NewTournament(len(fitness))
		require.NoError(t, err)
		i, j, err := tour.Select(fitness, rng)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 4}, []int{i, j})
	}
}

func TestTournamentReturnsBestOfSample(t *testing.T) {
	rng := framework.NewRand(5)
	fitness := make([]float64, 30)
	for i := range fitness {
		fitness[i] = float64(i)
	}
	tour := &Tournament{}
	for range 200 {
		i, j, err := tour.Select(fitness, rng)
		require.NoError(t, err)
		require.NotEqual(t, i, j)
		// The winner beats the runner-up, and both are in the top of any
		// five-way sample, so neither can be among the four weakest.
		require.Greater(t, fitness[i], fitness[j])
		require.GreaterOrEqual(t, j, 3)
	}
}

func TestTournamentTooSmall(t *testing.T) {
	rng := framework.NewRand(1)
	_, _, err := (&Tournament{}).Select([]float64{1, 2, 3, 4}, rng)
	require.ErrorIs(t, err, framework.ErrInvalidArgument)

	_, err = NewTournament(1)
	require.ErrorIs(t, err, framework.ErrInvalidArgument)

	_, _, err = (&Tournament{K: -3}).Select([]float64{1, 2, 3, 4}, rng)
	require.ErrorIs(t, err, framework.ErrInvalidArgument)
}

func TestNewTournamentFromArgs(t *testing.T) {
	tour, err := NewTournamentFromArgs(&v1alpha1.TournamentArgs{TournamentSize: ptr.To[int32](3)})
	require.NoError(t, err)
	assert.Equal(t, 3, tour.K)

	tour, err = NewTournamentFromArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTournamentSize, tour.K)

	_, err = NewTournamentFromArgs(&v1alpha1.TournamentArgs{TournamentSize: ptr.To[int32](0)})
	require.ErrorIs(t, err, framework.ErrInvalidArgument)
}

func TestElitism(t *testing.T) {
	tests := []struct {
		name    string
		fitness []float64
		want    [2]int
	}{
		{name: "distinct", fitness: []float64{3, 1, 8, 5}, want: [2]int{2, 3}},
		{name: "ties keep order", fitness: []float64{2, 9, 9, 1}, want: [2]int{1, 2}},
		{name: "single", fitness: []float64{4}, want: [2]int{0, 0}},
		{name: "negative", fitness: []float64{-3, -1, -2}, want: [2]int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, j, err := Elitism{}.Select(tt.fitness, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, [2]int{i, j})
		})
	}
}

func TestElitismProperty(t *testing.T) {
	rng := framework.NewRand(9)
	for range 100 {
		fitness := make([]float64, 2+rng.IntN(20))
		for k := range fitness {
			fitness[k] = rng.NormFloat64()
		}
		i, j, err := Elitism{}.Select(fitness, rng)
		require.NoError(t, err)
		require.NotEqual(t, i, j)
		for k, f := range fitness {
			if k == i || k == j {
				continue
			}
			require.LessOrEqual(t, f, fitness[i])
			require.LessOrEqual(t, f, fitness[j])
		}
	}
}

func TestSelectFrom(t *testing.T) {
	pop := make([]chromosome.Chromosome, 4)
	for k := range pop {
		c, err := chromosome.NewPermutationFromGenes([]int{0, 1})
		require.NoError(t, err)
		c.SetFitness(float64(k * k))
		pop[k] = c
	}
	i, j, err := SelectFrom(Elitism{}, pop, nil)
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 2}, [2]int{i, j})
}

func TestRandomIndicesInRange(t *testing.T) {
	rng := framework.NewRand(11)
	fitness := make([]float64, 7)
	seen := map[int]bool{}
	for range 500 {
		i, j, err := Random{}.Select(fitness, rng)
		require.NoError(t, err)
		require.True(t, i >= 0 && i < 7 && j >= 0 && j < 7)
		seen[i] = true
		seen[j] = true
	}
	assert.Len(t, seen, 7)
}

// values sorted ascending: idx 2 (0.1), idx 0 (0.4), idx 3 (0.7), idx 1 (1.0)
var wheelValues = []float64{0.4, 1.0, 0.1, 0.7}
var wheelOrder = []int{2, 0, 3, 1}

func TestPickLastMatch(t *testing.T) {
	tests := []struct {
		draw float64
		want int
	}{
		{draw: 0.05, want: 2}, // below every value: falls back to the lowest
		{draw: 0.1, want: 2},
		{draw: 0.5, want: 0}, // largest value not above the draw
		{draw: 0.75, want: 3},
		{draw: 0.999, want: 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pick(wheelValues, wheelOrder, tt.draw, ScanLastMatch), "draw %v", tt.draw)
	}
}

func TestPickFirstMatch(t *testing.T) {
	tests := []struct {
		draw float64
		want int
	}{
		{draw: 0.05, want: 2},
		{draw: 0.1, want: 2},
		{draw: 0.5, want: 3}, // first value at least the draw
		{draw: 0.75, want: 1},
		{draw: 0.999, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pick(wheelValues, wheelOrder, tt.draw, ScanFirstMatch), "draw %v", tt.draw)
	}
}

func TestRouletteScanModes(t *testing.T) {
	// With values 1 and 100 the first-match wheel almost always lands on the
	// fittest, while the last-match scan favours the weakest because most
	// draws fall below the top normalised value.
	fitness := []float64{1, 100}
	counts := map[ScanMode][2]int{}
	for _, mode := range []ScanMode{ScanLastMatch, ScanFirstMatch} {
		rng := framework.NewRand(21)
		var c [2]int
		for range 1000 {
			i, j, err := Roulette{Scan: mode}.Select(fitness, rng)
			require.NoError(t, err)
			c[i]++
			c[j]++
		}
		counts[mode] = c
	}
	assert.Greater(t, counts[ScanFirstMatch][1], 1900)
	assert.Greater(t, counts[ScanLastMatch][0], 1900)
}

func TestRouletteRequiresPositiveMax(t *testing.T) {
	rng := framework.NewRand(1)
	_, _, err := Roulette{}.Select([]float64{-1, 0, -3}, rng)
	require.ErrorIs(t, err, framework.ErrInvalidArgument)
}

func TestRankIgnoresScale(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{-100, 0, 1e3, 1e6, 1e9}
	for _, mode := range []ScanMode{ScanLastMatch, ScanFirstMatch} {
		ra, rb := framework.NewRand(4), framework.NewRand(4)
		for range 100 {
			i1, j1, err := Rank{Scan: mode}.Select(a, ra)
			require.NoError(t, err)
			i2, j2, err := Rank{Scan: mode}.Select(b, rb)
			require.NoError(t, err)
			require.Equal(t, [2]int{i1, j1}, [2]int{i2, j2})
		}
	}
}

func TestScanModeString(t *testing.T) {
	assert.Equal(t, "LastMatch", ScanLastMatch.String())
	assert.Equal(t, "FirstMatch", ScanFirstMatch.String())
	assert.Equal(t, "ScanMode(7)", ScanMode(7).String())
}
