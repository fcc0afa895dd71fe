package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine decodes tcell events into Intents
// It holds no game state: the game decides what an intent means in each phase
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// SetKeyTable replaces the bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// Process decodes ev; false when the event carries no intent
func (m *Machine) Process(ev tcell.Event) (Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}, true
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return Intent{}, false
}

func (m *Machine) processKey(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() != tcell.KeyRune {
		if it, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return Intent{Type: it}, true
		}
		return Intent{}, false
	}

	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if it, ok := m.keyTable.CtrlRunes[unicode.ToLower(r)]; ok {
			return Intent{Type: it}, true
		}
		return Intent{}, false
	}

	if IsTypable(r) {
		return Intent{Type: IntentChar, Char: r}, true
	}
	return Intent{}, false
}

// IsTypable reports whether r can appear in a prompt (ASCII letter or space)
func IsTypable(r rune) bool {
	return r == ' ' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
