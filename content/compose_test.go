package content

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCompose_ExactLengthWithDefaultBank(t *testing.T) {
	bank := DefaultBank()
	rng := rand.New(rand.NewSource(3))

	for target := 0; target <= 80; target++ {
		words, exact := Compose(target, bank, rng)
		if !exact {
			t.Fatalf("target %d: fell back to greedy", target)
		}
		phrase := Join(words)
		if len(phrase) != target {
			t.Fatalf("target %d: phrase %q has length %d", target, phrase, len(phrase))
		}
		if PhraseLen(words) != target {
			t.Fatalf("target %d: PhraseLen = %d", target, PhraseLen(words))
		}
		if strings.Contains(phrase, "  ") || strings.HasPrefix(phrase, " ") || strings.HasSuffix(phrase, " ") {
			t.Fatalf("target %d: malformed spacing in %q", target, phrase)
		}
	}
}

func TestCompose_UsesOnlyBankWords(t *testing.T) {
	bank := NewWordBank([]string{"ab", "cde", "fghi"})
	rng := rand.New(rand.NewSource(9))

	for target := 2; target < 30; target++ {
		words, exact := Compose(target, bank, rng)
		for _, w := range words {
			if !bank.Has(len(w)) {
				t.Fatalf("word %q not from bank", w)
			}
		}
		if exact && PhraseLen(words) != target {
			t.Fatalf("target %d: exact phrase has length %d", target, PhraseLen(words))
		}
	}
}

func TestCompose_GreedyFallbackWhenUnreachable(t *testing.T) {
	// Only five-letter words: reachable lengths are 5, 11, 17, ...
	bank := NewWordBank([]string{"apple", "lemon", "melon"})
	rng := rand.New(rand.NewSource(1))

	words, exact := Compose(7, bank, rng)
	if exact {
		t.Fatalf("expected greedy fallback, got exact %v", words)
	}
	if got := PhraseLen(words); got < 7 {
		t.Errorf("greedy phrase length %d, want at least 7", got)
	}
	if got := PhraseLen(words); got != 11 {
		t.Errorf("greedy phrase length %d, want 11", got)
	}
}

func TestComposeGreedy(t *testing.T) {
	bank := NewWordBank([]string{"to", "tree", "forest"})
	words := ComposeGreedy(10, bank)
	if len(words) != 2 || words[0] != "forest" {
		t.Errorf("greedy = %v, want two longest words", words)
	}
	if PhraseLen(words) < 10 {
		t.Errorf("greedy phrase too short: %d", PhraseLen(words))
	}

	if got := ComposeGreedy(0, bank); got != nil {
		t.Errorf("zero target should yield nil, got %v", got)
	}

	empty := NewWordBank(nil)
	words = ComposeGreedy(5, empty)
	if PhraseLen(words) != 5 {
		t.Errorf("empty bank filler length %d, want 5", PhraseLen(words))
	}
}

func TestCompose_EmptyBankNeverFails(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	words, exact := Compose(4, NewWordBank(nil), rng)
	if exact {
		t.Error("empty bank cannot be exact")
	}
	if PhraseLen(words) < 4 {
		t.Errorf("phrase length %d, want at least 4", PhraseLen(words))
	}
}

func TestPhraseLen(t *testing.T) {
	tests := []struct {
		words []string
		want  int
	}{
		{nil, 0},
		{[]string{"a"}, 1},
		{[]string{"ab", "cd"}, 5},
		{[]string{"one", "two", "six"}, 11},
	}
	for _, tt := range tests {
		if got := PhraseLen(tt.words); got != tt.want {
			t.Errorf("PhraseLen(%v) = %d, want %d", tt.words, got, tt.want)
		}
		if got := len(Join(tt.words)); got != tt.want {
			t.Errorf("len(Join(%v)) = %d, want %d", tt.words, got, tt.want)
		}
	}
}
