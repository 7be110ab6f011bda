// Package chrono is the contact-constraint core of a multibody dynamics
// simulator: it turns the contact pairs reported by collision detection
// into complementarity constraint rows, runs them through the global
// solve, and reconstructs the reaction forces.
package chrono

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tws0002/chrono/body"
	"github.com/tws0002/chrono/collision"
	"github.com/tws0002/chrono/constraint"
	"github.com/tws0002/chrono/solver"
)

const (
	DefaultWorkers = 1

	// DefaultRecoveryClamp caps the penetration-recovery speed (m/s).
	DefaultRecoveryClamp = 0.1
)

// PairInput is the handoff record for one candidate pair, produced by
// collision detection: the two model handles, read-only views of each
// body's state, the nearest points, the approach normal, the signed gap
// and the mixed friction coefficient. Feature distinguishes multiple
// manifold points between the same pair.
type PairInput struct {
	ModelA, ModelB *collision.Model
	VarsA, VarsB   *body.Variables
	FrameA, FrameB *body.Frame

	PointA, PointB mgl64.Vec3
	Normal         mgl64.Vec3
	Distance       float64
	Feature        int
	Friction       float64
}

// Container drives the per-step contact lifecycle: it pools contact
// records per pair, keeps the manifold reaction caches alive across
// steps, and runs the two phases of a step — parallel per-contact
// reset/bias, then the sequential global solve — before fetching the
// reaction forces back out.
type Container struct {
	// Workers sizes the pool for the per-contact phase; each worker
	// touches only its own contacts and cache slots.
	Workers int

	RecoveryClamp float64
	ClampRecovery bool

	Solver *solver.SOR

	arena      *constraint.Arena
	caches     *collision.CacheBank
	descriptor *solver.Descriptor
}

// NewContainer creates a container with default settings.
func NewContainer() *Container {
	return &Container{
		Workers:       DefaultWorkers,
		RecoveryClamp: DefaultRecoveryClamp,
		ClampRecovery: true,
		Solver:        solver.NewSOR(),
		arena:         constraint.NewArena(),
		caches:        collision.NewCacheBank(),
		descriptor:    solver.NewDescriptor(),
	}
}

// Descriptor returns the system descriptor the contacts register with,
// so other constraint owners (joints, finite elements) can inject their
// rows into the same solve.
func (ct *Container) Descriptor() *solver.Descriptor {
	return ct.descriptor
}

// Len returns the number of live pooled contacts.
func (ct *Container) Len() int {
	return ct.arena.Len()
}

// ProcessStep runs one step over the reported pairs with timestep h:
// acquire pooled contacts and manifold caches, reset geometry and load
// biases in parallel, register every row with the descriptor, solve, then
// fetch reactions (impulse scaled to force by 1/h) and write the solved
// multipliers back to their caches. Pairs that stopped being reported are
// retired along with their warm-start data.
//
// The returned contacts stay valid for read access until the next call.
func (ct *Container) ProcessStep(pairs []PairInput, h float64) []*constraint.Contact {
	type job struct {
		pair    PairInput
		contact *constraint.Contact
		cache   *collision.ReactionCache
	}

	// map lookups stay on the caller's goroutine
	jobs := make([]job, 0, len(pairs))
	for _, p := range pairs {
		key := collision.NewPairKey(p.ModelA, p.ModelB, p.Feature)
		jobs = append(jobs, job{
			pair:    p,
			contact: ct.arena.Acquire(key),
			cache:   ct.caches.Acquire(key),
		})
	}

	// phase (a): per-contact state only, safe to distribute
	task(ct.Workers, jobs, func(j job) {
		p := j.pair
		j.contact.Reset(
			p.ModelA, p.ModelB,
			p.VarsA, p.VarsB,
			p.FrameA, p.FrameB,
			p.PointA, p.PointB, p.Normal,
			p.Distance,
			j.cache,
			p.Friction,
		)
		j.contact.ConstraintsBiReset()
		j.contact.ConstraintsBiLoadC(h, ct.RecoveryClamp, ct.ClampRecovery)
		j.contact.ConstraintsLiLoadSuggestedSpeedSolution()
	})

	// phase (b): the global solve needs the descriptor fully populated
	// and runs as one critical section
	ct.descriptor.Reset()
	contacts := make([]*constraint.Contact, 0, len(jobs))
	for _, j := range jobs {
		j.contact.InjectConstraints(ct.descriptor)
		contacts = append(contacts, j.contact)
	}

	ct.Solver.Solve(ct.descriptor)

	for _, j := range jobs {
		j.contact.ConstraintsFetchReact(1 / h)
		j.contact.ConstraintsLiFetchSuggestedSpeedSolution()
	}

	ct.arena.Sweep()
	ct.caches.Sweep()

	return contacts
}
