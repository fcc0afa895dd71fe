package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// keymapFile is the TOML layout:
//
//	[keys]
//	"ctrl+r" = "reset"
//	"enter" = "confirm"
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

var namedKeys = map[string]tcell.Key{
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"f1":     tcell.KeyF1,
	"f2":     tcell.KeyF2,
	"f3":     tcell.KeyF3,
	"f4":     tcell.KeyF4,
}

// reservedKeys carry gameplay and cannot be rebound
var reservedKeys = map[string]bool{
	"enter": true,
	"left":  true,
	"right": true,
}

// bindable maps shortcut action names to intents; "none" unbinds
// Gameplay actions (move, confirm, typing) keep fixed keys
var bindable = map[string]IntentType{
	"none":          IntentNone,
	"quit":          IntentQuit,
	"reset":         IntentReset,
	"toggle_mute":   IntentToggleMute,
	"toggle_hud":    IntentToggleHUD,
	"reload_config": IntentReload,
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(f.Keys)),
		CtrlRunes:   make(map[rune]IntentType),
	}

	for keyStr, action := range f.Keys {
		intent, ok := bindable[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("[keys] %q: unknown action %q", keyStr, action)
		}

		key, ctrl, err := resolveKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", keyStr, err)
		}
		kt.SpecialKeys[key] = intent
		if ctrl != 0 {
			kt.CtrlRunes[ctrl] = intent
		}
	}

	return kt, nil
}

// resolveKey parses "ctrl+x" or a named key
// Plain letters are never bindable since they always type
func resolveKey(s string) (tcell.Key, rune, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if reservedKeys[s] {
		return 0, 0, fmt.Errorf("reserved gameplay key")
	}
	if k, ok := namedKeys[s]; ok {
		return k, 0, nil
	}

	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok && len(rest) == 1 {
		r := rune(rest[0])
		if r >= 'a' && r <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(r-'a'), r, nil
		}
	}
	return 0, 0, fmt.Errorf("invalid key name")
}
