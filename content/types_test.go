package content

import (
	"math/rand"
	"testing"
)

func TestNewWordBank_Normalizes(t *testing.T) {
	bank := NewWordBank([]string{"Apple", "apple", "  pear ", "can't", "x1", "", "café", "Zoo"})

	if bank.Len() != 3 {
		t.Fatalf("Len = %d, want 3", bank.Len())
	}
	if !bank.Has(5) || !bank.Has(4) || !bank.Has(3) {
		t.Errorf("missing lengths: %v", bank.Lengths())
	}
	if got := bank.Words(3); len(got) != 1 || got[0] != "zoo" {
		t.Errorf("Words(3) = %v, want [zoo]", got)
	}
	if bank.Shortest() != 3 || bank.Longest() != 5 {
		t.Errorf("shortest/longest = %d/%d", bank.Shortest(), bank.Longest())
	}
}

func TestWordBank_Random(t *testing.T) {
	bank := NewWordBank([]string{"ant", "bee", "cow"})
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		if w := bank.Random(3, rng); len(w) != 3 {
			t.Fatalf("Random(3) = %q", w)
		}
	}
	if w := bank.Random(9, rng); w != "" {
		t.Errorf("Random(9) = %q, want empty", w)
	}
}

func TestDefaultBank_CoversShortLengths(t *testing.T) {
	bank := DefaultBank()
	for n := 1; n <= 7; n++ {
		if !bank.Has(n) {
			t.Errorf("default bank has no words of length %d", n)
		}
	}
}
