// Package constraint turns the geometric contacts reported by collision
// detection into constraint rows for the global complementarity solve.
package constraint

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tws0002/chrono/body"
	"github.com/tws0002/chrono/collision"
	"github.com/tws0002/chrono/solver"
)

// Contact is a unilateral contact constraint between two 6-DOF rigid
// bodies. It owns the contact geometry (points, normal, plane, signed
// distance) and the three scalar rows derived from it: one non-penetration
// row along the normal and two friction rows spanning the tangent plane,
// bound to the normal row's solved multiplier.
//
// Instances are pooled and fully re-derived by Reset once per colliding
// pair per step; the collision engine keeps ownership of the models and of
// the optional reaction cache.
type Contact struct {
	modA *collision.Model
	modB *collision.Model

	p1     mgl64.Vec3 // deepest point on A, world space
	p2     mgl64.Vec3 // deepest point on B, world space
	normal mgl64.Vec3 // unit, world space, from A toward separation

	// contact plane, column 0 is the normal direction
	plane mgl64.Mat3

	// signed gap, negative while interpenetrating
	distance float64

	cache *collision.ReactionCache

	nx solver.NormalRow
	tu solver.FrictionRow
	tv solver.FrictionRow

	// warm-start buffer for the position-stabilization pass, which solves
	// its own complementarity problem and is not manifold-persisted
	positionCache [3]float64

	force mgl64.Vec3 // reaction in the contact frame: x normal, y/z tangential
}

// NewContact creates a contact and initializes it like Reset.
func NewContact(
	modA, modB *collision.Model,
	varsA, varsB *body.Variables,
	frameA, frameB *body.Frame,
	pointA, pointB, normal mgl64.Vec3,
	distance float64,
	cache *collision.ReactionCache,
	friction float64,
) *Contact {
	c := &Contact{}
	c.Reset(modA, modB, varsA, varsB, frameA, frameB, pointA, pointB, normal, distance, cache, friction)

	return c
}

// Reset re-derives the whole contact from fresh collision output: stores
// the geometry, rebuilds the plane from the normal, rebuilds the three
// rows' Jacobians from the points relative to each body's center of mass,
// and primes the multipliers from the reaction cache when one is given,
// from zero otherwise. No state from a previous use survives, so pooled
// instances can be handed new pairs freely.
//
// The normal must be non-degenerate; collision detection validates that
// upstream.
func (c *Contact) Reset(
	modA, modB *collision.Model,
	varsA, varsB *body.Variables,
	frameA, frameB *body.Frame,
	pointA, pointB, normal mgl64.Vec3,
	distance float64,
	cache *collision.ReactionCache,
	friction float64,
) {
	c.modA, c.modB = modA, modB
	c.p1, c.p2 = pointA, pointB
	c.normal = normal
	c.plane = PlaneFromNormal(normal)
	c.distance = distance
	c.cache = cache

	c.nx.Friction = friction
	c.tu.Normal = &c.nx
	c.tv.Normal = &c.nx

	// Positive row residual is separation speed along each plane axis:
	// moving A along the axis opens the gap, moving B closes it.
	rA := pointA.Sub(frameA.Position)
	rB := pointB.Sub(frameB.Position)

	for i, row := range [3]*solver.Row{&c.nx.Row, &c.tu.Row, &c.tv.Row} {
		d := c.plane.Col(i)
		cqA := solver.Jacobian{Linear: d, Angular: rA.Cross(d)}
		cqB := solver.Jacobian{Linear: d.Mul(-1), Angular: rB.Cross(d).Mul(-1)}
		row.SetJacobians(varsA, varsB, cqA, cqB)
		row.Bias = 0
	}

	if cache != nil {
		c.nx.Lambda, c.tu.Lambda, c.tv.Lambda = cache.Load()
	} else {
		c.nx.Lambda, c.tu.Lambda, c.tv.Lambda = 0, 0, 0
	}

	c.positionCache = [3]float64{}
	c.force = mgl64.Vec3{}
}

// ContactCoords returns the contact coordinate system in world space:
// origin at the point on B, orientation equal to the contact plane.
// Reaction forces are expressed in this frame.
func (c *Contact) ContactCoords() body.Frame {
	return body.FrameFromMatrix(c.p2, c.plane)
}

// Plane returns the contact plane; column 0 is the normal direction.
func (c *Contact) Plane() mgl64.Mat3 { return c.plane }

// P1 returns the contact point on model A, world space.
func (c *Contact) P1() mgl64.Vec3 { return c.p1 }

// P2 returns the contact point on model B, world space.
func (c *Contact) P2() mgl64.Vec3 { return c.p2 }

// Normal returns the contact normal, world space.
func (c *Contact) Normal() mgl64.Vec3 { return c.normal }

// Distance returns the signed gap, negative while interpenetrating.
func (c *Contact) Distance() float64 { return c.distance }

// Force returns the last fetched reaction, in the contact frame.
func (c *Contact) Force() mgl64.Vec3 { return c.force }

// Friction returns the friction coefficient.
func (c *Contact) Friction() float64 { return c.nx.Friction }

// SetFriction changes the coefficient bounding future friction
// projections; multipliers already solved are left as they are.
func (c *Contact) SetFriction(f float64) { c.nx.Friction = f }

// ModelA returns the collision model owning P1.
func (c *Contact) ModelA() *collision.Model { return c.modA }

// ModelB returns the collision model owning P2.
func (c *Contact) ModelB() *collision.Model { return c.modB }

// InjectConstraints registers the three rows with the descriptor. It does
// not guard against double registration; the container registers each
// contact once per step.
func (c *Contact) InjectConstraints(d *solver.Descriptor) {
	d.InsertConstraint(&c.nx)
	d.InsertConstraint(&c.tu)
	d.InsertConstraint(&c.tv)
}

// ConstraintsBiReset zeroes the rows' bias terms. Runs before the bias
// load each step.
func (c *Contact) ConstraintsBiReset() {
	c.nx.Bias = 0
	c.tu.Bias = 0
	c.tv.Bias = 0
}

// ConstraintsBiLoadC loads the penetration-recovery bias: while the bodies
// interpenetrate the normal row demands a separation speed of
// -distance/factor, optionally clamped to recoveryClamp so deep or
// erroneous penetrations do not recover explosively. A non-negative
// distance leaves the bias at its resting value. Friction rows carry no
// bias of their own.
func (c *Contact) ConstraintsBiLoadC(factor, recoveryClamp float64, doClamp bool) {
	if c.distance >= 0 {
		return
	}

	bias := -c.distance / factor
	if doClamp && bias > recoveryClamp {
		bias = recoveryClamp
	}
	c.nx.Bias = bias
}

// ConstraintsFetchReact assembles the solved multipliers, scaled by
// factor, into the reaction force in the contact frame. With factor equal
// to the inverse timestep the solver's impulses become forces.
func (c *Contact) ConstraintsFetchReact(factor float64) {
	c.force = mgl64.Vec3{
		c.nx.Lambda * factor,
		c.tu.Lambda * factor,
		c.tv.Lambda * factor,
	}
}

// ConstraintsLiLoadSuggestedSpeedSolution primes the rows' multipliers
// from the reaction cache for the velocity-level solve. Without a cache
// the multipliers keep their reset state.
func (c *Contact) ConstraintsLiLoadSuggestedSpeedSolution() {
	if c.cache == nil {
		return
	}
	c.nx.Lambda, c.tu.Lambda, c.tv.Lambda = c.cache.Load()
}

// ConstraintsLiFetchSuggestedSpeedSolution stores the solved velocity-pass
// multipliers back into the reaction cache for the next step.
func (c *Contact) ConstraintsLiFetchSuggestedSpeedSolution() {
	if c.cache == nil {
		return
	}
	c.cache.Store(c.nx.Lambda, c.tu.Lambda, c.tv.Lambda)
}

// ConstraintsLiLoadSuggestedPositionSolution primes the rows' multipliers
// for the position-stabilization solve, which warm-starts independently of
// the velocity pass.
func (c *Contact) ConstraintsLiLoadSuggestedPositionSolution() {
	c.nx.Lambda = c.positionCache[collision.SlotN]
	c.tu.Lambda = c.positionCache[collision.SlotU]
	c.tv.Lambda = c.positionCache[collision.SlotV]
}

// ConstraintsLiFetchSuggestedPositionSolution stores the solved
// position-pass multipliers.
func (c *Contact) ConstraintsLiFetchSuggestedPositionSolution() {
	c.positionCache[collision.SlotN] = c.nx.Lambda
	c.positionCache[collision.SlotU] = c.tu.Lambda
	c.positionCache[collision.SlotV] = c.tv.Lambda
}
