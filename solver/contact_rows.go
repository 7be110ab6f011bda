package solver

import "github.com/go-gl/mathgl/mgl64"

// Constraint is what the descriptor aggregates: a scalar row plus the
// projection that keeps its multiplier inside the row's admissible set.
type Constraint interface {
	// Data exposes the row's Jacobians, bias and multiplier storage.
	Data() *Row

	// Project maps a candidate multiplier onto the admissible set.
	Project(lambda float64) float64
}

// NormalRow is the unilateral non-penetration row of a contact: the
// multiplier is a pushing force, never a pulling one, and goes slack once
// the bodies separate (lambda ≥ 0, residual ≥ 0, product = 0). It also
// carries the friction coefficient its two tangential siblings are bound
// by.
type NormalRow struct {
	Row
	Friction float64
}

func (n *NormalRow) Data() *Row { return &n.Row }

func (n *NormalRow) Project(lambda float64) float64 {
	if lambda < 0 {
		return 0
	}

	return lambda
}

// FrictionRow is one tangential direction of a contact's linearized
// friction cone. It keeps an explicit reference to its sibling normal row,
// resolved when the contact builds its triple: the admissible multiplier
// interval is ±(friction × normal multiplier), re-read at every projection
// so the bound tracks the normal row as the solver iterates.
type FrictionRow struct {
	Row
	Normal *NormalRow
}

func (f *FrictionRow) Data() *Row { return &f.Row }

func (f *FrictionRow) Project(lambda float64) float64 {
	limit := f.Normal.Friction * f.Normal.Lambda
	if limit < 0 {
		limit = 0
	}

	return mgl64.Clamp(lambda, -limit, limit)
}
