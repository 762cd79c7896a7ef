package swarm

import (
	"fmt"
	"slices"
)

// Phase is the lifecycle stage of a swarm run.
type Phase int

const (
	Uninitialized Phase = iota
	Initialized
	Iterating
	Converged
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "Uninitialized"
	case Initialized:
		return "Initialized"
	case Iterating:
		return "Iterating"
	case Converged:
		return "Converged"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Particle is a single candidate solution moving through the search space.
type Particle struct {
	Location []float64
	Velocity []float64
	Fitness  float64

	BestLocation []float64
	BestFitness  float64
}

func (p Particle) clone() Particle {
	p.Location = slices.Clone(p.Location)
	p.Velocity = slices.Clone(p.Velocity)
	p.BestLocation = slices.Clone(p.BestLocation)
	return p
}

// Best is a location together with its fitness.
type Best struct {
	Location []float64
	Fitness  float64
}

// State is everything a run carries from one sweep to the next.
type State struct {
	Phase      Phase
	Particles  []Particle
	GlobalBest Best

	// Inertia is the weight the next sweep uses.
	Inertia float64

	// Iteration counts completed sweeps.
	Iteration   int
	Evaluations int

	// History holds the global best fitness after each sweep.
	History []float64
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	out := *s
	out.Particles = make([]Particle, len(s.Particles))
	for i, p := range s.Particles {
		out.Particles[i] = p.clone()
	}
	out.GlobalBest.Location = slices.Clone(s.GlobalBest.Location)
	out.History = slices.Clone(s.History)
	return &out
}

// Result summarises a finished run.
type Result struct {
	Location    []float64
	Fitness     float64
	Iterations  int
	Evaluations int
	History     []float64
}

func resultOf(s *State) Result {
	return Result{
		Location:    slices.Clone(s.GlobalBest.Location),
		Fitness:     s.GlobalBest.Fitness,
		Iterations:  s.Iteration,
		Evaluations: s.Evaluations,
		History:     slices.Clone(s.History),
	}
}
