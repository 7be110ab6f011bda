// Package solver holds the scalar constraint rows fed to the global
// complementarity solve, the descriptor they register with, and a
// projected successive-over-relaxation iteration over the whole set.
package solver

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tws0002/chrono/body"
)

// Jacobian is one body's half of a scalar constraint row: the gradients of
// the constraint with respect to the body's linear and angular velocity,
// both in world space.
type Jacobian struct {
	Linear  mgl64.Vec3
	Angular mgl64.Vec3
}

// Dot contracts the Jacobian with a body velocity state.
func (j Jacobian) Dot(v, w mgl64.Vec3) float64 {
	return j.Linear.Dot(v) + j.Angular.Dot(w)
}

// Row is a scalar constraint coupling the velocity states of two bodies.
// Its residual is CqA·(vA,wA) + CqB·(vB,wB) − Bias; the solver drives the
// residual and the multiplier Lambda to the row's complementarity
// conditions, propagating multiplier changes into both bodies through
// M⁻¹·Cqᵀ.
type Row struct {
	VarsA, VarsB *body.Variables
	CqA, CqB     Jacobian

	// Eta is the effective mass denominator g = Cq·M⁻¹·Cqᵀ summed over
	// both bodies. Zero means neither body can respond to this row.
	Eta float64

	Bias   float64
	Lambda float64
}

// SetJacobians binds the row to its two bodies, stores both Jacobians and
// recomputes Eta. The multiplier and bias are left untouched.
func (r *Row) SetJacobians(varsA, varsB *body.Variables, cqA, cqB Jacobian) {
	r.VarsA, r.VarsB = varsA, varsB
	r.CqA, r.CqB = cqA, cqB

	r.Eta = varsA.InvMass*cqA.Linear.Dot(cqA.Linear) +
		varsA.InvInertia.Mul3x1(cqA.Angular).Dot(cqA.Angular) +
		varsB.InvMass*cqB.Linear.Dot(cqB.Linear) +
		varsB.InvInertia.Mul3x1(cqB.Angular).Dot(cqB.Angular)
}

// Residual evaluates Cq·v − Bias for the bodies' current velocities.
func (r *Row) Residual() float64 {
	return r.CqA.Dot(r.VarsA.V, r.VarsA.W) + r.CqB.Dot(r.VarsB.V, r.VarsB.W) - r.Bias
}

// applyVelocityDelta propagates a multiplier change into both bodies'
// velocity states without touching Lambda bookkeeping.
func (r *Row) applyVelocityDelta(dl float64) {
	r.VarsA.V = r.VarsA.V.Add(r.CqA.Linear.Mul(r.VarsA.InvMass * dl))
	r.VarsA.W = r.VarsA.W.Add(r.VarsA.InvInertia.Mul3x1(r.CqA.Angular).Mul(dl))
	r.VarsB.V = r.VarsB.V.Add(r.CqB.Linear.Mul(r.VarsB.InvMass * dl))
	r.VarsB.W = r.VarsB.W.Add(r.VarsB.InvInertia.Mul3x1(r.CqB.Angular).Mul(dl))
}
