package framework

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsClamp(t *testing.T) {
	b := Bounds{L: -1, H: 2}
	assert.Equal(t, -1.0, b.Clamp(-5))
	assert.Equal(t, 2.0, b.Clamp(7))
	assert.Equal(t, 0.5, b.Clamp(0.5))
	assert.True(t, b.Contains(2))
	assert.False(t, b.Contains(2.0001))
	assert.Equal(t, 3.0, b.Width())
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		bounds  []Bounds
		wantErr bool
	}{
		{name: "ok", bounds: UniformBounds(3, -10, 10)},
		{name: "degenerate range", bounds: []Bounds{{L: 1, H: 1}}},
		{name: "empty", bounds: nil, wantErr: true},
		{name: "inverted", bounds: []Bounds{{L: 0, H: 1}, {L: 2, H: 1}}, wantErr: true},
		{name: "nan", bounds: []Bounds{{L: math.NaN(), H: 1}}, wantErr: true},
		{name: "inf", bounds: []Bounds{{L: 0, H: math.Inf(1)}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBounds(tt.bounds)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewRandSeeded(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for range 100 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}

	c := NewRand(43)
	assert.NotEqual(t, NewRand(42).Uint64(), c.Uint64())
}

type countingObjective struct {
	calls int
	fail  bool
}

func (o *countingObjective) Objective(x []float64) (float64, error) {
	o.calls++
	if o.fail {
		return math.Inf(1), errors.New("boom")
	}
	return x[0] + x[1], nil
}

func (o *countingObjective) Dimensions() int { return 2 }

func TestCachedObjective(t *testing.T) {
	inner := &countingObjective{}
	c := NewCachedObjective(inner, 0)

	v, err := c.Objective([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = c.Objective([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = c.Objective([]float64{2, 1})
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 1, c.Hits())
	assert.Equal(t, 2, c.Misses())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Dimensions())
}

func TestCachedObjectiveSkipsFailures(t *testing.T) {
	inner := &countingObjective{fail: true}
	c := NewCachedObjective(inner, 0)

	_, err := c.Objective([]float64{1, 2})
	require.Error(t, err)
	_, err = c.Objective([]float64{1, 2})
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 0, c.Len())
}

func TestCachedObjectiveDistinguishesSignedZero(t *testing.T) {
	c := NewCachedObjective(ObjectiveFunc(func(x []float64) float64 { return x[0] }), 0)
	_, _ = c.Objective([]float64{0})
	_, _ = c.Objective([]float64{math.Copysign(0, -1)})
	assert.Equal(t, 2, c.Misses())
	assert.Equal(t, 0, c.Dimensions())
}
