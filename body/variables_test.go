package body

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewVariables(t *testing.T) {
	vars := NewVariables(2.0, SphereInertia(2.0, 0.5), mgl64.QuatIdent())

	if vars.InvMass != 0.5 {
		t.Errorf("InvMass = %v, want 0.5", vars.InvMass)
	}
	if vars.IsStatic() {
		t.Error("dynamic block reported static")
	}

	// solid sphere: I = 2/5 m r², inverse on the diagonal
	wantInv := 1.0 / (2.0 / 5.0 * 2.0 * 0.25)
	if !mgl64.FloatEqualThreshold(vars.InvInertia.At(0, 0), wantInv, 1e-12) {
		t.Errorf("InvInertia[0][0] = %v, want %v", vars.InvInertia.At(0, 0), wantInv)
	}
}

func TestNewStaticVariables(t *testing.T) {
	vars := NewStaticVariables()

	if !vars.IsStatic() {
		t.Error("static block not reported static")
	}

	vars.ApplyImpulse(mgl64.Vec3{100, 0, 0}, mgl64.Vec3{0, 1, 0})
	if vars.V != (mgl64.Vec3{}) || vars.W != (mgl64.Vec3{}) {
		t.Errorf("impulse moved a static body: V=%v W=%v", vars.V, vars.W)
	}
}

func TestVariables_SetInertiaRotationInvariantForSphere(t *testing.T) {
	// a sphere's world inertia must not depend on orientation
	local := SphereInertia(1.0, 1.0)
	upright := NewVariables(1.0, local, mgl64.QuatIdent())
	tilted := NewVariables(1.0, local, mgl64.QuatRotate(1.1, mgl64.Vec3{1, 2, 3}.Normalize()))

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !mgl64.FloatEqualThreshold(upright.InvInertia.At(i, j), tilted.InvInertia.At(i, j), 1e-9) {
				t.Fatalf("InvInertia[%d][%d]: %v vs %v", i, j, upright.InvInertia.At(i, j), tilted.InvInertia.At(i, j))
			}
		}
	}
}

func TestVariables_ApplyImpulse(t *testing.T) {
	vars := NewVariables(2.0, SphereInertia(2.0, 1.0), mgl64.QuatIdent())

	vars.ApplyImpulse(mgl64.Vec3{0, 0, -4}, mgl64.Vec3{1, 0, 0})

	if !vars.V.ApproxEqualThreshold(mgl64.Vec3{0, 0, -2}, 1e-12) {
		t.Errorf("V = %v, want (0 0 -2)", vars.V)
	}

	// torque r × j = (0, 4, 0), I = 2/5·2·1 = 0.8
	wantW := 4.0 / 0.8
	if !mgl64.FloatEqualThreshold(vars.W.Y(), wantW, 1e-12) {
		t.Errorf("W.Y = %v, want %v", vars.W.Y(), wantW)
	}
}

func TestVariables_KineticEnergy(t *testing.T) {
	tests := []struct {
		name string
		mass float64
		v    mgl64.Vec3
		w    mgl64.Vec3
		want float64
	}{
		{
			name: "at rest",
			mass: 1.0,
			want: 0.0,
		},
		{
			name: "linear only",
			mass: 2.0,
			v:    mgl64.Vec3{3, 0, 0},
			want: 9.0, // ½·2·9
		},
		{
			name: "angular only",
			mass: 1.0,
			w:    mgl64.Vec3{0, 0, 2},
			want: 0.8, // ½·(2/5·1·1)·4
		},
		{
			name: "combined",
			mass: 1.0,
			v:    mgl64.Vec3{0, 1, 0},
			w:    mgl64.Vec3{0, 0, 2},
			want: 0.5 + 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := NewVariables(tt.mass, SphereInertia(tt.mass, 1.0), mgl64.QuatIdent())
			vars.V = tt.v
			vars.W = tt.w

			if got := vars.KineticEnergy(); !mgl64.FloatEqualThreshold(got, tt.want, 1e-12) {
				t.Errorf("KineticEnergy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariables_KineticEnergyStatic(t *testing.T) {
	vars := NewStaticVariables()
	vars.V = mgl64.Vec3{5, 0, 0} // even if someone writes a velocity

	if got := vars.KineticEnergy(); got != 0 {
		t.Errorf("static KineticEnergy = %v, want 0", got)
	}
}

func TestVariables_PointVelocity(t *testing.T) {
	vars := NewVariables(1.0, SphereInertia(1.0, 1.0), mgl64.QuatIdent())
	vars.V = mgl64.Vec3{1, 0, 0}
	vars.W = mgl64.Vec3{0, 0, math.Pi}

	got := vars.PointVelocity(mgl64.Vec3{0, 1, 0})
	want := mgl64.Vec3{1 - math.Pi, 0, 0}
	if !got.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("PointVelocity = %v, want %v", got, want)
	}
}
