package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps special keys and control runes to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Ctrl-modified runes, for terminals reporting Ctrl+letter as a rune
	CtrlRunes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlR:  IntentReset,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyCtrlD:  IntentToggleHUD,
			tcell.KeyCtrlL:  IntentReload,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyEnter:  IntentConfirm,
		},
		CtrlRunes: map[rune]IntentType{
			'c': IntentQuit,
			'q': IntentQuit,
			'r': IntentReset,
			's': IntentToggleMute,
			'd': IntentToggleHUD,
			'l': IntentReload,
		},
	}
}

// Merge overlays non-empty override bindings onto kt
// IntentNone in the override unbinds the key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, v := range override.SpecialKeys {
		if v == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = v
	}
	for r, v := range override.CtrlRunes {
		if v == IntentNone {
			delete(kt.CtrlRunes, r)
			continue
		}
		kt.CtrlRunes[r] = v
	}
}
