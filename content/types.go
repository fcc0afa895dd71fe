package content

import (
	"math/rand"
	"sort"
	"strings"
	"unicode"
)

// WordBank is a length-indexed dictionary of lowercase letter-only words
// Immutable after construction, safe to share
type WordBank struct {
	byLen   map[int][]string
	lengths []int
	count   int
}

// NewWordBank normalizes and indexes words; entries containing anything but
// ASCII letters are dropped, duplicates are collapsed
func NewWordBank(words []string) *WordBank {
	b := &WordBank{byLen: make(map[int][]string)}
	seen := make(map[string]struct{}, len(words))

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if !isWord(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		b.byLen[len(w)] = append(b.byLen[len(w)], w)
		b.count++
	}

	for n := range b.byLen {
		b.lengths = append(b.lengths, n)
	}
	sort.Ints(b.lengths)
	return b
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Len returns the number of distinct words
func (b *WordBank) Len() int {
	return b.count
}

// Lengths returns available word lengths in ascending order
func (b *WordBank) Lengths() []int {
	return b.lengths
}

// Has reports whether at least one word of length n exists
func (b *WordBank) Has(n int) bool {
	return len(b.byLen[n]) > 0
}

// Words returns all words of length n
func (b *WordBank) Words(n int) []string {
	return b.byLen[n]
}

// Shortest returns the smallest available length, 0 when empty
func (b *WordBank) Shortest() int {
	if len(b.lengths) == 0 {
		return 0
	}
	return b.lengths[0]
}

// Longest returns the largest available length, 0 when empty
func (b *WordBank) Longest() int {
	if len(b.lengths) == 0 {
		return 0
	}
	return b.lengths[len(b.lengths)-1]
}

// Random picks a word of length n, empty string if none
func (b *WordBank) Random(n int, rng *rand.Rand) string {
	words := b.byLen[n]
	if len(words) == 0 {
		return ""
	}
	return words[rng.Intn(len(words))]
}
