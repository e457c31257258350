package keygram

import (
	"testing"
)

func TestAnalyzerStats(t *testing.T) {
	a, err := NewAnalyzer([]Slot{
		OptionalSlot(testHousenr()),
		FixedSlot(testStreet()),
		FixedSlot(testCity()),
	})
	if err != nil {
		t.Fatal(err)
	}

	stats := a.Stats()
	if stats.Slots != 3 {
		t.Errorf("Slots = %d, want 3", stats.Slots)
	}
	if stats.FixedSlots != 2 {
		t.Errorf("FixedSlots = %d, want 2", stats.FixedSlots)
	}
	if stats.OptionalSlots != 1 {
		t.Errorf("OptionalSlots = %d, want 1", stats.OptionalSlots)
	}
	if stats.ExclusiveSlots != 0 {
		t.Errorf("ExclusiveSlots = %d, want 0", stats.ExclusiveSlots)
	}
	// One optional slot doubles the single base vector.
	if stats.VectorBound != 2 {
		t.Errorf("VectorBound = %d, want 2", stats.VectorBound)
	}
}

func TestAnalyzerStats_Exclusive(t *testing.T) {
	a, err := NewAnalyzer([]Slot{
		FixedSlot(testForename()),
		ExclusiveSlot(testUndesirable()),
		FixedSlot(testLastname()),
	})
	if err != nil {
		t.Fatal(err)
	}

	stats := a.Stats()
	if stats.ExclusiveSlots != 1 {
		t.Errorf("ExclusiveSlots = %d, want 1", stats.ExclusiveSlots)
	}
	// The base vector plus the exclusive slot's solo vector.
	if stats.VectorBound != 2 {
		t.Errorf("VectorBound = %d, want 2", stats.VectorBound)
	}
}

func TestClassifierStats(t *testing.T) {
	c := testClassifier(t)

	stats := c.Stats()
	if stats.Terms != 2 {
		t.Errorf("Terms = %d, want 2", stats.Terms)
	}
	if stats.Keywords != 6 {
		t.Errorf("Keywords = %d, want 6", stats.Keywords)
	}
	if stats.OptionalSlots != 1 {
		t.Errorf("OptionalSlots = %d, want 1", stats.OptionalSlots)
	}
	if stats.ExclusiveSlots != 1 {
		t.Errorf("ExclusiveSlots = %d, want 1", stats.ExclusiveSlots)
	}
	if stats.VectorBound != 4 {
		t.Errorf("VectorBound = %d, want 4", stats.VectorBound)
	}
}
