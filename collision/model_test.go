package collision

import "testing"

func TestNewModel_DistinctIdentity(t *testing.T) {
	a, b := NewModel(), NewModel()

	if a.ID == b.ID {
		t.Error("two models share an identity")
	}
	if NewPairKey(a, b, 0) == NewPairKey(b, a, 0) {
		t.Error("pair keys ignore model order")
	}
}
