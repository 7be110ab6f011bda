package solver

// Descriptor is the aggregation point where every constraint of the
// system registers its rows before a solve: contacts, joints and finite
// elements all inject through the same boundary. It does no duplicate
// detection; each owner registers once per step after Reset.
type Descriptor struct {
	constraints []Constraint
}

// NewDescriptor creates an empty descriptor.
func NewDescriptor() *Descriptor {
	return &Descriptor{}
}

// Reset forgets all registered rows, keeping capacity for the next step.
func (d *Descriptor) Reset() {
	d.constraints = d.constraints[:0]
}

// InsertConstraint registers one scalar row.
func (d *Descriptor) InsertConstraint(c Constraint) {
	d.constraints = append(d.constraints, c)
}

// Constraints returns the registered rows in insertion order.
func (d *Descriptor) Constraints() []Constraint {
	return d.constraints
}

// Len returns the number of registered rows.
func (d *Descriptor) Len() int {
	return len(d.constraints)
}
