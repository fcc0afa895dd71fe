package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMachine_DefaultBindings(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		name string
		ev   tcell.Event
		want Intent
		ok   bool
	}{
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}, true},
		{"ctrl+c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}, true},
		{"ctrl+r resets", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), Intent{Type: IntentReset}, true},
		{"ctrl+s mutes", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), Intent{Type: IntentToggleMute}, true},
		{"ctrl+l reloads", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), Intent{Type: IntentReload}, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Intent{Type: IntentMoveLeft}, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Intent{Type: IntentMoveRight}, true},
		{"enter confirms", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Intent{Type: IntentConfirm}, true},
		{"letter types", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Intent{Type: IntentChar, Char: 'k'}, true},
		{"upper letter types", tcell.NewEventKey(tcell.KeyRune, 'K', tcell.ModShift), Intent{Type: IntentChar, Char: 'K'}, true},
		{"space types", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Intent{Type: IntentChar, Char: ' '}, true},
		{"digit ignored", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), Intent{}, false},
		{"punctuation ignored", tcell.NewEventKey(tcell.KeyRune, ';', tcell.ModNone), Intent{}, false},
		{"unbound key ignored", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), Intent{}, false},
		{"resize", tcell.NewEventResize(80, 24), Intent{Type: IntentResize}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Process(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Process() = %+v/%v, want %+v/%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
"ctrl+n" = "reset"
"ctrl+r" = "none"
"f2" = "toggle_hud"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	kt := DefaultKeyTable()
	kt.Merge(override)
	m := NewMachine()
	m.SetKeyTable(kt)

	if got, ok := m.Process(tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl)); !ok || got.Type != IntentReset {
		t.Errorf("ctrl+n: got %+v/%v, want reset", got, ok)
	}
	if _, ok := m.Process(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)); ok {
		t.Error("ctrl+r should be unbound")
	}
	if got, ok := m.Process(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)); !ok || got.Type != IntentToggleHUD {
		t.Errorf("f2: got %+v/%v, want toggle_hud", got, ok)
	}
	if got, _ := m.Process(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); got.Type != IntentConfirm {
		t.Error("enter should keep its default binding")
	}
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "[keys]\n\"ctrl+x\" = \"fly\"\n"},
		{"plain letter", "[keys]\n\"x\" = \"quit\"\n"},
		{"reserved key", "[keys]\n\"enter\" = \"quit\"\n"},
		{"gameplay action", "[keys]\n\"ctrl+x\" = \"confirm\"\n"},
		{"bad syntax", "[keys\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestIntentTypeString(t *testing.T) {
	if IntentConfirm.String() != "confirm" || IntentChar.String() != "char" {
		t.Errorf("unexpected names %s %s", IntentConfirm, IntentChar)
	}
	if IntentType(200).String() != "unknown" {
		t.Error("out-of-range intent should be unknown")
	}
}
