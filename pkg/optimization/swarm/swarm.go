// Package swarm implements a global-best particle swarm optimizer for
// box-constrained minimisation.
//
// An Optimizer is not safe for concurrent use. Runs are reproducible when the
// optimizer is seeded.
package swarm

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/catalano/optimization/apis/config/v1alpha1"
	"github.com/catalano/optimization/pkg/optimization/framework"
)

const (
	Name = "PSO"

	DefaultSwarmSize       = int(v1alpha1.DefaultSwarmSize)
	DefaultIterations      = int(v1alpha1.DefaultIterations)
	DefaultCognitiveFactor = v1alpha1.DefaultCognitiveFactor
	DefaultSocialFactor    = v1alpha1.DefaultSocialFactor

	// velocityFraction sizes the derived velocity limits relative to the
	// width of each position bound.
	velocityFraction = 0.2
)

// Observer is notified with the current state after initialisation and after
// every sweep. The state must not be modified.
type Observer interface {
	Observe(s *State)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s *State)

func (fn ObserverFunc) Observe(s *State) { fn(s) }

// Optimizer runs particle swarm optimisation over a fixed objective.
type Optimizer struct {
	objective      framework.Objective
	bounds         []framework.Bounds
	velocityBounds []framework.Bounds
	restStart      bool

	swarmSize  int
	iterations int
	cognitive  float64
	social     float64
	inertia    InertiaPolicy
	shared     bool

	seed int64
	rng  *rand.Rand

	logger    logr.Logger
	observers []Observer
}

// New returns an optimizer minimising objective within bounds.
func New(objective framework.Objective, bounds []framework.Bounds, opts ...Option) (*Optimizer, error) {
	o := &Optimizer{
		objective:  objective,
		bounds:     slices.Clone(bounds),
		swarmSize:  DefaultSwarmSize,
		iterations: DefaultIterations,
		cognitive:  DefaultCognitiveFactor,
		social:     DefaultSocialFactor,
		inertia:    Multiplicative{Weight: v1alpha1.DefaultInertiaWeight, Factor: v1alpha1.DefaultInertiaFactor},
		logger:     klog.Background(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	if o.velocityBounds == nil {
		o.velocityBounds = make([]framework.Bounds, len(o.bounds))
		for i, b := range o.bounds {
			vmax := velocityFraction * b.Width()
			o.velocityBounds[i] = framework.Bounds{L: -vmax, H: vmax}
		}
	} else {
		o.restStart = true
	}
	if o.rng == nil {
		o.rng = framework.NewRand(o.seed)
	}
	o.logger = o.logger.WithValues("algorithm", Name)
	return o, nil
}

func (o *Optimizer) validate() error {
	if o.objective == nil {
		return fmt.Errorf("%w: objective is nil", framework.ErrInvalidArgument)
	}
	if err := framework.ValidateBounds(o.bounds); err != nil {
		return err
	}
	if d, ok := o.objective.(framework.Dimensioned); ok && d.Dimensions() != 0 && d.Dimensions() != len(o.bounds) {
		return fmt.Errorf("%w: objective expects %d dimensions, bounds have %d",
			framework.ErrInvalidArgument, d.Dimensions(), len(o.bounds))
	}
	if o.velocityBounds != nil {
		if len(o.velocityBounds) != len(o.bounds) {
			return fmt.Errorf("%w: %d velocity bounds for %d dimensions",
				framework.ErrInvalidArgument, len(o.velocityBounds), len(o.bounds))
		}
		if err := framework.ValidateBounds(o.velocityBounds); err != nil {
			return fmt.Errorf("velocity: %w", err)
		}
	}
	if o.swarmSize < 1 {
		return fmt.Errorf("%w: swarm size must be positive, got %d", framework.ErrInvalidArgument, o.swarmSize)
	}
	if o.iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", framework.ErrInvalidArgument, o.iterations)
	}
	for _, c := range []float64{o.cognitive, o.social} {
		if !(c >= 0) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: learn factors must be finite and non-negative, got %v",
				framework.ErrInvalidArgument, c)
		}
	}
	if o.inertia == nil {
		return fmt.Errorf("%w: inertia policy is nil", framework.ErrInvalidArgument)
	}
	return nil
}

// NewFromArgs builds an optimizer from configuration. When args carries no
// bounds they are taken from the objective, which must then be a
// framework.Problem. opts are applied after the configuration.
func NewFromArgs(objective framework.Objective, args *v1alpha1.SwarmArgs, opts ...Option) (*Optimizer, error) {
	if args == nil {
		args = &v1alpha1.SwarmArgs{}
	}
	args = args.DeepCopy()
	v1alpha1.SetDefaults_SwarmArgs(args)
	if err := v1alpha1.ValidateSwarmArgs(field.NewPath(v1alpha1.SwarmArgsKind), args); err != nil {
		return nil, fmt.Errorf("%w: %w", framework.ErrInvalidArgument, err)
	}

	bounds := toBounds(args.Bounds)
	if len(bounds) == 0 {
		p, ok := objective.(framework.Problem)
		if !ok {
			return nil, fmt.Errorf("%w: no bounds configured and objective does not provide any", framework.ErrInvalidArgument)
		}
		bounds = p.Bounds()
	}

	var inertia InertiaPolicy
	weight := ptr.Deref(args.Inertia.Weight, v1alpha1.DefaultInertiaWeight)
	switch args.Inertia.Decay {
	case v1alpha1.InertiaDecayLinear:
		inertia = Linear{Upper: weight, Lower: ptr.Deref(args.Inertia.Lower, v1alpha1.DefaultInertiaLower)}
	case v1alpha1.InertiaDecayFixed:
		inertia = Fixed{Weight: weight}
	default:
		inertia = Multiplicative{Weight: weight, Factor: ptr.Deref(args.Inertia.Factor, v1alpha1.DefaultInertiaFactor)}
	}

	all := []Option{
		WithSwarmSize(int(*args.SwarmSize)),
		WithIterations(int(*args.Iterations)),
		WithLearnFactors(*args.CognitiveFactor, *args.SocialFactor),
		WithInertia(inertia),
		WithSeed(args.Seed),
	}
	if args.SharedCoefficients {
		all = append(all, WithSharedCoefficients())
	}
	if len(args.VelocityBounds) > 0 {
		all = append(all, WithVelocityBounds(toBounds(args.VelocityBounds)))
	}
	return New(objective, bounds, append(all, opts...)...)
}

func toBounds(args []v1alpha1.BoundArgs) []framework.Bounds {
	if len(args) == 0 {
		return nil
	}
	out := make([]framework.Bounds, len(args))
	for i, b := range args {
		out[i] = framework.Bounds{L: b.Min, H: b.Max}
	}
	return out
}

// Dimensions returns the number of decision variables.
func (o *Optimizer) Dimensions() int { return len(o.bounds) }

// Bounds returns a copy of the position bounds.
func (o *Optimizer) Bounds() []framework.Bounds { return slices.Clone(o.bounds) }

// VelocityBounds returns a copy of the velocity bounds in effect.
func (o *Optimizer) VelocityBounds() []framework.Bounds { return slices.Clone(o.velocityBounds) }

// Iterations returns the number of sweeps Optimize performs.
func (o *Optimizer) Iterations() int { return o.iterations }

func (o *Optimizer) evaluate(x []float64) (float64, error) {
	f, err := o.objective.Objective(slices.Clone(x))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", framework.ErrEvaluation, err)
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: objective returned NaN at %v", framework.ErrEvaluation, x)
	}
	return f, nil
}

func (o *Optimizer) notify(s *State) {
	for _, obs := range o.observers {
		obs.Observe(s)
	}
}

// Initialize places the particles uniformly at random within the bounds and
// evaluates them. The first particle seeds the global best.
func (o *Optimizer) Initialize() (*State, error) {
	dims := len(o.bounds)
	s := &State{
		Phase:     Initialized,
		Particles: make([]Particle, o.swarmSize),
		Inertia:   o.inertia.Initial(),
	}

	for i := range s.Particles {
		loc := make([]float64, dims)
		for d, b := range o.bounds {
			loc[d] = b.L + o.rng.Float64()*b.Width()
		}
		vel := make([]float64, dims)
		for d, vb := range o.velocityBounds {
			if o.restStart {
				vel[d] = vb.Clamp(0)
			} else {
				vel[d] = vb.L + o.rng.Float64()*vb.Width()
			}
		}

		f, err := o.evaluate(loc)
		if err != nil {
			return nil, fmt.Errorf("initializing particle %d: %w", i, err)
		}
		s.Evaluations++

		s.Particles[i] = Particle{
			Location:     loc,
			Velocity:     vel,
			Fitness:      f,
			BestLocation: slices.Clone(loc),
			BestFitness:  f,
		}
		if i == 0 || f < s.GlobalBest.Fitness {
			s.GlobalBest = Best{Location: slices.Clone(loc), Fitness: f}
		}
	}
	if o.iterations == 0 {
		s.Phase = Converged
	}

	o.logger.V(3).Info("Initialized swarm", "particles", o.swarmSize, "dimensions", dims, "globalBest", s.GlobalBest.Fitness)
	o.notify(s)
	return s, nil
}

// Step performs one sweep over the swarm and returns the resulting state.
// s is not modified.
func (o *Optimizer) Step(s *State) (*State, error) {
	if s == nil || s.Phase == Uninitialized {
		return nil, fmt.Errorf("%w: swarm is not initialized", framework.ErrInvalidArgument)
	}
	if s.Phase == Converged {
		return nil, fmt.Errorf("%w: swarm already converged after %d iterations", framework.ErrInvalidArgument, s.Iteration)
	}
	if len(s.GlobalBest.Location) != len(o.bounds) {
		return nil, fmt.Errorf("%w: state has %d dimensions, optimizer has %d",
			framework.ErrInvalidArgument, len(s.GlobalBest.Location), len(o.bounds))
	}

	next := s.Clone()
	next.Phase = Iterating
	w := next.Inertia
	gbest := &next.GlobalBest

	for i := range next.Particles {
		p := &next.Particles[i]
		if len(p.Location) != len(o.bounds) || len(p.Velocity) != len(o.bounds) || len(p.BestLocation) != len(o.bounds) {
			return nil, fmt.Errorf("%w: particle %d has %d/%d/%d location/velocity/best dimensions, optimizer has %d",
				framework.ErrInvalidArgument, i, len(p.Location), len(p.Velocity), len(p.BestLocation), len(o.bounds))
		}
		for d := range p.Location {
			r1 := o.rng.Float64()
			r2 := r1
			if !o.shared {
				r2 = o.rng.Float64()
			}
			v := w*p.Velocity[d] +
				r1*o.cognitive*(p.BestLocation[d]-p.Location[d]) +
				r2*o.social*(gbest.Location[d]-p.Location[d])
			p.Velocity[d] = o.velocityBounds[d].Clamp(v)
			p.Location[d] = o.bounds[d].Clamp(p.Location[d] + p.Velocity[d])
		}

		f, err := o.evaluate(p.Location)
		if err != nil {
			return nil, fmt.Errorf("iteration %d, particle %d: %w", s.Iteration+1, i, err)
		}
		next.Evaluations++
		p.Fitness = f

		if f < p.BestFitness {
			p.BestFitness = f
			copy(p.BestLocation, p.Location)
			if f < gbest.Fitness {
				gbest.Fitness = f
				copy(gbest.Location, p.Location)
			}
		}
	}

	next.Iteration++
	next.History = append(next.History, gbest.Fitness)
	next.Inertia = o.inertia.Next(w, next.Iteration, o.iterations)
	if next.Iteration >= o.iterations {
		next.Phase = Converged
	}

	o.logger.V(5).Info("Swarm iteration", "iteration", next.Iteration, "inertia", w, "globalBest", gbest.Fitness)
	o.notify(next)
	return next, nil
}

// Optimize initialises the swarm and performs exactly the configured number of
// sweeps.
func (o *Optimizer) Optimize() (Result, error) {
	s, err := o.Initialize()
	if err != nil {
		return Result{}, err
	}
	for s.Phase != Converged {
		if s, err = o.Step(s); err != nil {
			return Result{}, err
		}
	}
	o.logger.V(2).Info("Swarm converged", "iterations", s.Iteration, "evaluations", s.Evaluations,
		"fitness", s.GlobalBest.Fitness, "location", s.GlobalBest.Location)
	return resultOf(s), nil
}
