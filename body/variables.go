package body

import "github.com/go-gl/mathgl/mgl64"

// Variables is the 6-DOF velocity-state block of one rigid body as seen by
// the constraint solver: current linear and angular velocity plus the
// inverse mass data needed to turn impulses into velocity changes.
//
// The body container owns the block; constraints read it when building
// Jacobians and the solver updates V and W while iterating. Angular state
// is kept in world space.
type Variables struct {
	V mgl64.Vec3 // linear velocity (m/s)
	W mgl64.Vec3 // angular velocity (rad/s), world space

	InvMass    float64
	InvInertia mgl64.Mat3 // inverse inertia tensor, world space
}

// NewVariables builds the block for a dynamic body from its mass, its local
// inertia tensor and its current orientation.
func NewVariables(mass float64, inertiaLocal mgl64.Mat3, rotation mgl64.Quat) *Variables {
	v := &Variables{InvMass: 1.0 / mass}
	v.SetInertia(inertiaLocal, rotation)

	return v
}

// NewStaticVariables builds the block for an immovable body: zero inverse
// mass and inertia, so no impulse ever changes its velocity.
func NewStaticVariables() *Variables {
	return &Variables{}
}

// SetInertia recomputes the world-space inverse inertia from the local
// tensor and the body orientation: I_world^(-1) = R * I_local^(-1) * R^T.
// Call it whenever the body rotates; static blocks keep a zero tensor.
func (v *Variables) SetInertia(inertiaLocal mgl64.Mat3, rotation mgl64.Quat) {
	if v.InvMass == 0 {
		v.InvInertia = mgl64.Mat3{}
		return
	}

	R := rotation.Mat4().Mat3()
	v.InvInertia = R.Mul3(inertiaLocal.Inv()).Mul3(R.Transpose())
}

// IsStatic reports whether the block belongs to an immovable body.
func (v *Variables) IsStatic() bool {
	return v.InvMass == 0
}

// PointVelocity returns the world velocity of a point attached to the body,
// given the point's offset from the center of mass.
func (v *Variables) PointVelocity(r mgl64.Vec3) mgl64.Vec3 {
	return v.V.Add(v.W.Cross(r))
}

// ApplyImpulse applies a world-space impulse at an offset from the center
// of mass, updating both linear and angular velocity.
func (v *Variables) ApplyImpulse(impulse, r mgl64.Vec3) {
	v.V = v.V.Add(impulse.Mul(v.InvMass))
	v.W = v.W.Add(v.InvInertia.Mul3x1(r.Cross(impulse)))
}

// KineticEnergy returns the body's kinetic energy, ½m·v² + ½w·Iw.
// Static bodies never move, so they hold none.
func (v *Variables) KineticEnergy() float64 {
	if v.IsStatic() {
		return 0
	}

	linear := v.V.Dot(v.V) / v.InvMass
	angular := v.InvInertia.Inv().Mul3x1(v.W).Dot(v.W)

	return 0.5 * (linear + angular)
}

// SphereInertia returns the local inertia tensor of a solid sphere.
func SphereInertia(mass, radius float64) mgl64.Mat3 {
	i := 2.0 / 5.0 * mass * radius * radius

	return mgl64.Diag3(mgl64.Vec3{i, i, i})
}
