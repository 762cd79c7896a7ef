package swarm

import (
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithSwarmSize sets the number of particles.
func WithSwarmSize(n int) Option {
	return func(o *Optimizer) { o.swarmSize = n }
}

// WithIterations sets the number of sweeps Optimize performs.
func WithIterations(n int) Option {
	return func(o *Optimizer) { o.iterations = n }
}

// WithLearnFactors sets the cognitive (c1) and social (c2) factors.
func WithLearnFactors(c1, c2 float64) Option {
	return func(o *Optimizer) {
		o.cognitive = c1
		o.social = c2
	}
}

// WithInertia sets the inertia weight schedule.
func WithInertia(p InertiaPolicy) Option {
	return func(o *Optimizer) { o.inertia = p }
}

// WithVelocityBounds sets explicit per-dimension velocity limits. Particles
// then start at rest.
func WithVelocityBounds(b []framework.Bounds) Option {
	return func(o *Optimizer) { o.velocityBounds = slices.Clone(b) }
}

// WithSeed seeds the optimizer's random source. Zero picks a random seed.
func WithSeed(seed int64) Option {
	return func(o *Optimizer) { o.seed = seed }
}

// WithRand injects the random source. It takes precedence over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Optimizer) { o.rng = rng }
}

// WithSharedCoefficients uses one draw per dimension for both the cognitive
// and the social term.
func WithSharedCoefficients() Option {
	return func(o *Optimizer) { o.shared = true }
}

// WithLogger sets the logger. The default is klog.Background().
func WithLogger(l logr.Logger) Option {
	return func(o *Optimizer) { o.logger = l }
}

// WithObserver registers an observer notified after initialisation and after
// every sweep.
func WithObserver(obs Observer) Option {
	return func(o *Optimizer) { o.observers = append(o.observers, obs) }
}
