package swarm

// InertiaPolicy schedules the inertia weight across sweeps.
type InertiaPolicy interface {
	// Initial is the weight used during the first sweep.
	Initial() float64

	// Next returns the weight for the sweep that follows the completed one,
	// given the weight that was just used.
	Next(current float64, completed, total int) float64
}

// Multiplicative multiplies the weight by Factor after every sweep.
type Multiplicative struct {
	Weight float64
	Factor float64
}

func (m Multiplicative) Initial() float64 { return m.Weight }

func (m Multiplicative) Next(current float64, _, _ int) float64 { return current * m.Factor }

// Linear decreases the weight from Upper to Lower over the iteration count.
// For details see:
//
//	Eberhart, R.C.; Yuhui Shi, "Particle swarm optimization: developments,
//	applications and resources," Evolutionary Computation, 2001.
type Linear struct {
	Upper float64
	Lower float64
}

func (l Linear) Initial() float64 { return l.Upper }

func (l Linear) Next(_ float64, completed, total int) float64 {
	if total <= 0 || completed >= total {
		return l.Lower
	}
	return l.Upper - (l.Upper-l.Lower)*float64(completed)/float64(total)
}

// Fixed keeps the weight constant.
type Fixed struct {
	Weight float64
}

func (f Fixed) Initial() float64 { return f.Weight }

func (f Fixed) Next(current float64, _, _ int) float64 { return current }
