package engine

// EventType discriminates game events queued for collaborators
type EventType uint8

const (
	EventNone EventType = iota
	EventServe
	EventWallBounce
	EventPaddleHit
	EventMiss
	EventPoint
	EventGameOver
	EventReset
	EventPromptFallback
	EventConfigApplied
)

var eventTypeNames = [...]string{
	"None", "Serve", "WallBounce", "PaddleHit", "Miss", "Point", "GameOver", "Reset", "PromptFallback", "ConfigApplied",
}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "Unknown"
}

// Event is a notification of something that already happened
// Collaborators (audio, metrics) read events and never mutate game state
type Event struct {
	Type  EventType
	Side  Side
	Rel   int
	Score Scoreboard
}

// Listener consumes drained events
type Listener interface {
	OnGameEvent(ev Event)
}

// Dispatch hands every event to every listener in order
func Dispatch(events []Event, listeners ...Listener) {
	for _, ev := range events {
		for _, l := range listeners {
			if l != nil {
				l.OnGameEvent(ev)
			}
		}
	}
}
