package solver

import "math"

const (
	DefaultMaxIterations = 50
	DefaultOmega         = 1.0
	DefaultTolerance     = 1e-9
)

// SOR iterates the registered rows with projected successive
// over-relaxation: each sweep visits every row in insertion order,
// relaxes its multiplier against the current velocity residual, projects
// it onto the row's admissible set and propagates the change into the
// bodies immediately, so later rows in the same sweep see it.
type SOR struct {
	MaxIterations int
	Omega         float64 // relaxation factor, 1.0 = plain Gauss-Seidel
	Tolerance     float64 // largest multiplier change considered converged
}

// NewSOR creates a solver with the default settings.
func NewSOR() *SOR {
	return &SOR{
		MaxIterations: DefaultMaxIterations,
		Omega:         DefaultOmega,
		Tolerance:     DefaultTolerance,
	}
}

// Solve runs sweeps over the descriptor until the largest multiplier
// change in a sweep drops below Tolerance or MaxIterations is reached.
// It returns the sweeps used and the last sweep's largest change; a
// return with iterations == MaxIterations and delta above Tolerance is
// the non-convergence report.
//
// Non-zero multipliers at entry are warm starts: their impulses are
// applied to the bodies up front, then the sweeps refine from there.
func (s *SOR) Solve(d *Descriptor) (iterations int, delta float64) {
	for _, c := range d.Constraints() {
		r := c.Data()
		if r.Lambda != 0 {
			r.applyVelocityDelta(r.Lambda)
		}
	}

	for iterations = 1; iterations <= s.MaxIterations; iterations++ {
		delta = 0

		for _, c := range d.Constraints() {
			r := c.Data()
			if r.Eta <= 0 {
				continue
			}

			candidate := r.Lambda - s.Omega*r.Residual()/r.Eta
			projected := c.Project(candidate)

			dl := projected - r.Lambda
			if dl == 0 {
				continue
			}

			r.Lambda = projected
			r.applyVelocityDelta(dl)

			if math.Abs(dl) > delta {
				delta = math.Abs(dl)
			}
		}

		if delta < s.Tolerance {
			return iterations, delta
		}
	}

	return s.MaxIterations, delta
}
