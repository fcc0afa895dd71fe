package engine

import "unicode"

// Prompt is the phrase a defender types during one rally leg
// Length is immutable once generated
type Prompt struct {
	Text string

	// CenterStep is the index of the character whose entry gives a centered hit
	CenterStep int

	// Distance is the column travel the prompt encodes
	Distance int

	// Exact is false when the composer fell back to a longer greedy phrase
	Exact bool
}

// Len returns the prompt length in characters
func (p Prompt) Len() int {
	return len(p.Text)
}

// Tracker counts correctly typed prompt characters
// One matched character moves the authoritative paddle one column
type Tracker struct {
	prompt Prompt
	typed  int
}

// Reset binds a new prompt and zeroes progress
func (t *Tracker) Reset(p Prompt) {
	t.prompt = p
	t.typed = 0
}

// Prompt returns the bound prompt
func (t *Tracker) Prompt() Prompt {
	return t.prompt
}

// Typed returns the number of correctly typed characters
func (t *Tracker) Typed() int {
	return t.typed
}

// Complete reports whether the whole prompt has been typed
func (t *Tracker) Complete() bool {
	return t.typed >= len(t.prompt.Text)
}

// Expected returns the next character to type, false when complete
func (t *Tracker) Expected() (rune, bool) {
	if t.Complete() {
		return 0, false
	}
	return rune(t.prompt.Text[t.typed]), true
}

// Type advances by one if r matches the next character case-insensitively
// A mismatch changes nothing
func (t *Tracker) Type(r rune) bool {
	want, ok := t.Expected()
	if !ok {
		return false
	}
	if unicode.ToLower(r) != unicode.ToLower(want) {
		return false
	}
	t.typed++
	return true
}
