package body

import "github.com/go-gl/mathgl/mgl64"

// Frame is a rigid transform in world space: a position and an orientation.
type Frame struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewFrame creates an identity frame.
func NewFrame() Frame {
	return Frame{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// FrameFromMatrix builds a frame from a position and an orthonormal
// rotation matrix.
func FrameFromMatrix(position mgl64.Vec3, rotation mgl64.Mat3) Frame {
	return Frame{
		Position: position,
		Rotation: mgl64.Mat4ToQuat(rotation.Mat4()).Normalize(),
	}
}

// TransformPoint maps a local point into world space.
func (f Frame) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return f.Position.Add(f.Rotation.Rotate(p))
}

// TransformPointInverse maps a world point into the frame's local space.
func (f Frame) TransformPointInverse(p mgl64.Vec3) mgl64.Vec3 {
	return f.Rotation.Inverse().Rotate(p.Sub(f.Position))
}

// TransformDirection maps a local direction into world space.
func (f Frame) TransformDirection(d mgl64.Vec3) mgl64.Vec3 {
	return f.Rotation.Rotate(d)
}
