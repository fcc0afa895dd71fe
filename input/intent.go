package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, Ctrl+Q
	IntentReset      // Ctrl+R
	IntentToggleMute // Ctrl+S
	IntentToggleHUD  // Ctrl+D
	IntentResize     // Terminal resize event
	IntentReload     // Ctrl+L, re-read the config file

	// Serve
	IntentMoveLeft  // Left arrow
	IntentMoveRight // Right arrow
	IntentConfirm   // Enter

	// Typing
	IntentChar // Letter or space
)

var intentNames = [...]string{
	"none", "quit", "reset", "toggle_mute", "toggle_hud", "resize", "reload_config",
	"move_left", "move_right", "confirm", "char",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a decoded key or terminal event
type Intent struct {
	Type IntentType
	Char rune // Set for IntentChar
}
