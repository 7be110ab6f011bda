// Package collision holds the handles this layer shares with the collision
// engine: non-owning references to body geometry and the persistent
// reaction caches that survive contact recreation between steps.
package collision

import "github.com/google/uuid"

// Model is a non-owning handle to one body's collision geometry. The
// collision engine owns the geometry and its lifetime; contacts only keep
// the handle to identify the pair they belong to.
type Model struct {
	ID uuid.UUID

	// Envelope is the outward safety margin the detector inflates the
	// geometry by, so pairs are reported slightly before touching.
	Envelope float64
}

// NewModel creates a handle with a fresh identity.
func NewModel() *Model {
	return &Model{ID: uuid.New()}
}

// PairKey identifies one contact manifold slot: the two model identities
// plus a feature index distinguishing multiple contact points between the
// same pair.
type PairKey struct {
	A, B    uuid.UUID
	Feature int
}

// NewPairKey builds the manifold key for a model pair and feature index.
func NewPairKey(a, b *Model, feature int) PairKey {
	return PairKey{A: a.ID, B: b.ID, Feature: feature}
}
