package content

import (
	"log"
	"math/rand"
	"strings"
)

const (
	// MaxComposeAttempts is the number of randomized searches before the greedy fallback
	MaxComposeAttempts = 24

	// ComposeNodeBudget caps recursion nodes visited per attempt
	ComposeNodeBudget = 64

	// shortFinish is the remaining length at or below which a matching word always ends the phrase
	shortFinish = 4

	// fillerRune pads phrases when the bank is empty
	fillerRune = "a"
)

// Join renders words as a phrase separated by single spaces
func Join(words []string) string {
	return strings.Join(words, " ")
}

// PhraseLen is the rendered length of words joined by single spaces
func PhraseLen(words []string) int {
	if len(words) == 0 {
		return 0
	}
	n := len(words) - 1
	for _, w := range words {
		n += len(w)
	}
	return n
}

// Compose picks words whose joined length is exactly target
// Best effort: after MaxComposeAttempts failed randomized searches it falls
// back to ComposeGreedy, whose phrase is at least target long. exact reports
// which path produced the result. Composition never fails
func Compose(target int, bank *WordBank, rng *rand.Rand) (words []string, exact bool) {
	if target <= 0 {
		return nil, true
	}

	for attempt := 0; attempt < MaxComposeAttempts; attempt++ {
		if words, ok := ComposeExact(target, bank, rng); ok {
			return words, true
		}
	}

	log.Printf("compose: no exact phrase of length %d after %d attempts, using greedy fallback", target, MaxComposeAttempts)
	return ComposeGreedy(target, bank), false
}

// ComposeExact runs one randomized backtracking search bounded by ComposeNodeBudget
func ComposeExact(target int, bank *WordBank, rng *rand.Rand) ([]string, bool) {
	if target <= 0 {
		return nil, true
	}
	if bank == nil || bank.Len() == 0 {
		return nil, false
	}

	budget := ComposeNodeBudget
	out := make([]string, 0, 4)
	if search(target, bank, rng, &out, &budget) {
		return out, true
	}
	return nil, false
}

func search(remaining int, bank *WordBank, rng *rand.Rand, out *[]string, budget *int) bool {
	if *budget <= 0 {
		return false
	}
	*budget--

	canFinish := bank.Has(remaining)
	if canFinish && (remaining <= shortFinish || rng.Intn(2) == 0) {
		*out = append(*out, bank.Random(remaining, rng))
		return true
	}

	// Each branch needs room for itself, a space and at least the shortest word
	maxLen := remaining - 1 - bank.Shortest()
	cands := make([]int, 0, len(bank.Lengths()))
	for _, n := range bank.Lengths() {
		if n <= maxLen {
			cands = append(cands, n)
		}
	}
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })

	for _, n := range cands {
		*out = append(*out, bank.Random(n, rng))
		if search(remaining-n-1, bank, rng, out, budget) {
			return true
		}
		*out = (*out)[:len(*out)-1]
		if *budget <= 0 {
			break
		}
	}

	if canFinish {
		*out = append(*out, bank.Random(remaining, rng))
		return true
	}
	return false
}

// ComposeGreedy appends the longest available words until the phrase is at
// least target long; deterministic. An empty bank yields filler letters
func ComposeGreedy(target int, bank *WordBank) []string {
	if target <= 0 {
		return nil
	}
	if bank == nil || bank.Len() == 0 {
		return []string{strings.Repeat(fillerRune, target)}
	}

	longest := bank.Longest()
	pool := bank.Words(longest)

	var out []string
	for i := 0; PhraseLen(out) < target; i++ {
		out = append(out, pool[i%len(pool)])
	}
	return out
}
