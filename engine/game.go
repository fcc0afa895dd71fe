package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/type-pong/config"
	"github.com/lixenwraith/type-pong/constant"
	"github.com/lixenwraith/type-pong/content"
	"github.com/lixenwraith/type-pong/physics"
	"github.com/lixenwraith/type-pong/vmath"
)

const maxCatchUpSegments = 8

// Game is the single simulation-state record and the round state machine
// All methods must be called from the goroutine that advances the scheduler
type Game struct {
	cfg     config.Config
	pending *config.Config
	board   Board

	sched   *Scheduler
	rng     *rand.Rand
	bank    *content.WordBank
	prompts *PromptGenerator

	phase      Phase
	score      Scoreboard
	paddles    [2]Paddle
	attacker   Side
	winner     Side
	travelTime float64

	// Ball state at the start of the live segment, or at rest outside a rally
	ballPos vmath.Vec2
	ballVel vmath.Vec2
	anim    Animator

	rally   *Rally
	tracker Tracker

	serveWord  string
	serveTyped int

	countdownID   TimerID
	countdownLeft time.Duration

	events []Event
}

// NewGame creates a game in preServe with the bottom side serving
func NewGame(cfg config.Config, bank *content.WordBank, sched *Scheduler, rng *rand.Rand) *Game {
	cfg = cfg.Normalize()
	if bank == nil {
		bank = content.DefaultBank()
	}
	g := &Game{
		cfg:    cfg,
		board:  NewBoard(cfg),
		sched:  sched,
		rng:    rng,
		bank:   bank,
		events: make([]Event, 0, constant.GameEventQueueSize),
	}
	g.prompts = NewPromptGenerator(g.board, bank, rng)
	g.resetState()
	return g
}

// resetState zeroes scores, re-centers paddles and enters preServe
func (g *Game) resetState() {
	g.stopRally()
	g.score = Scoreboard{}
	home := g.board.HomeColumn()
	for i := range g.paddles {
		g.paddles[i] = Paddle{Center: home, Width: g.board.PaddleWidth}
	}
	g.attacker = SideBottom
	g.travelTime = g.cfg.TravelTime
	g.enterPreServe()
}

// Reset returns to preServe with both scores zeroed, paddles at home and
// travel time restored. Valid from any phase
func (g *Game) Reset() {
	g.applyPending()
	g.resetState()
	g.emit(Event{Type: EventReset, Score: g.score})
}

// ApplyConfig installs new settings. During a rally the settings are queued
// and applied on the next preServe entry
func (g *Game) ApplyConfig(cfg config.Config) {
	cfg = cfg.Normalize()
	if g.phase == PhaseRally {
		g.pending = &cfg
		return
	}
	g.pending = &cfg
	g.applyPending()
	g.placeBallOnAttacker()
	g.restartCountdown()
}

func (g *Game) applyPending() {
	if g.pending == nil {
		return
	}
	g.cfg = *g.pending
	g.pending = nil
	g.board = NewBoard(g.cfg)
	g.prompts = NewPromptGenerator(g.board, g.bank, g.rng)
	for i := range g.paddles {
		g.paddles[i].Width = g.board.PaddleWidth
		g.paddles[i].Center = vmath.ClampInt(g.paddles[i].Center, 0, g.board.Columns-1)
	}
	g.travelTime = g.cfg.TravelTime
	g.emit(Event{Type: EventConfigApplied})
}

// enterPreServe prepares the serve for the current attacker
func (g *Game) enterPreServe() {
	g.applyPending()
	g.phase = PhasePreServe
	g.rally = nil
	g.tracker.Reset(Prompt{})
	g.serveWord = g.prompts.ServeWord()
	g.serveTyped = 0
	g.placeBallOnAttacker()
	g.restartCountdown()
}

func (g *Game) restartCountdown() {
	if g.countdownID != 0 {
		g.sched.Cancel(g.countdownID)
		g.countdownID = 0
	}
	if g.phase != PhasePreServe {
		return
	}
	g.countdownLeft = g.cfg.ServeCountdown.Duration
	g.countdownID = g.sched.Every(constant.CountdownTickInterval, g.onCountdownTick)
}

func (g *Game) onCountdownTick(time.Time) {
	if g.phase != PhasePreServe {
		return
	}
	g.countdownLeft -= constant.CountdownTickInterval
	if g.countdownLeft <= 0 {
		g.countdownLeft = 0
		g.Launch()
	}
}

func (g *Game) placeBallOnAttacker() {
	p := g.paddles[g.attacker]
	x := vmath.Clamp(g.board.ColumnX(p.Center), g.board.Bounds.MinX, g.board.Bounds.MaxX)
	g.ballPos = vmath.V2(x, g.board.ContactY(g.attacker))
	g.ballVel = vmath.Vec2{}
}

// MoveAttacker shifts the attacker's paddle by dir columns during preServe
func (g *Game) MoveAttacker(dir int) bool {
	if g.phase != PhasePreServe || dir == 0 {
		return false
	}
	p := &g.paddles[g.attacker]
	next := vmath.ClampInt(p.Center+vmath.SignInt(dir), 0, g.board.Columns-1)
	if next == p.Center {
		return false
	}
	p.Center = next
	g.placeBallOnAttacker()
	return true
}

// TypeRune feeds a letter or space to the serve word (preServe) or the
// defender prompt (rally). A mismatch is ignored with no state change
func (g *Game) TypeRune(r rune) bool {
	switch g.phase {
	case PhasePreServe:
		return g.typeServe(r)
	case PhaseRally:
		return g.typePrompt(r)
	}
	return false
}

func (g *Game) typeServe(r rune) bool {
	if g.serveTyped >= len(g.serveWord) {
		return false
	}
	t := Tracker{prompt: Prompt{Text: g.serveWord}, typed: g.serveTyped}
	if !t.Type(r) {
		return false
	}
	g.serveTyped = t.Typed()
	return true
}

func (g *Game) typePrompt(r rune) bool {
	if !g.tracker.Type(r) {
		return false
	}

	def := &g.paddles[g.rally.Defender]
	if g.rally.HasPrediction() {
		def.Center = g.rally.Origin + g.rally.Direction*g.tracker.Typed()
		return true
	}

	// Without a prediction each character steps toward the ball's current column
	ball := g.board.ColumnOf(g.BallPosition(g.sched.Now()).X)
	def.Center += vmath.SignInt(ball - def.Center)
	return true
}

// Confirm launches the serve once at least one serve character is typed
func (g *Game) Confirm() bool {
	if g.phase != PhasePreServe || g.serveTyped == 0 {
		return false
	}
	g.Launch()
	return true
}

// Launch starts the rally from the attacker's paddle at the serve slope
func (g *Game) Launch() {
	if g.phase != PhasePreServe {
		return
	}
	if g.countdownID != 0 {
		g.sched.Cancel(g.countdownID)
		g.countdownID = 0
	}

	g.placeBallOnAttacker()
	vSpeed := physics.VerticalSpeed(g.board.Bounds, g.travelTime)
	vel := physics.Serve(g.attacker.Away(), vSpeed, g.coin)

	g.phase = PhaseRally
	g.beginLeg(g.ballPos, vel, g.attacker)
	g.emit(Event{Type: EventServe, Side: g.attacker})
	g.startSegment(g.ballPos, vel, g.sched.Now())
}

// beginLeg creates the rally context and prompt for a new leg
func (g *Game) beginLeg(pos, vel vmath.Vec2, attacker Side) {
	g.attacker = attacker
	origin := g.paddles[attacker.Opposite()].Center
	rally, prompt := g.prompts.Generate(pos, vel, attacker, origin)
	g.rally = rally
	g.tracker.Reset(prompt)
	if !prompt.Exact {
		g.emit(Event{Type: EventPromptFallback, Side: rally.Defender})
	}
}

// startSegment plans from the exact boundary point and arms the frame callback
func (g *Game) startSegment(pos, vel vmath.Vec2, at time.Time) {
	g.ballPos = pos
	g.ballVel = vel
	seg := physics.Plan(pos, vel, g.board.Bounds)
	if !g.anim.Start(seg, at) {
		if !vel.IsZero() {
			log.Printf("engine: degenerate segment from %v at %v, motion halted", pos, vel)
		}
		g.sched.CancelFrame()
		return
	}
	g.sched.RequestFrame(g.onFrame)
}

// onFrame is the frame-scheduler callback driving the live segment
func (g *Game) onFrame(now time.Time) {
	if g.phase != PhaseRally || !g.anim.Live() {
		return
	}
	// A stalled frame may span several short segments
	for i := 0; i < maxCatchUpSegments && g.phase == PhaseRally && g.anim.Due(now); i++ {
		g.completeSegment()
	}
	if g.phase == PhaseRally && g.anim.Live() {
		g.sched.RequestFrame(g.onFrame)
	}
}

// completeSegment resolves the live segment's event and plans the next one
func (g *Game) completeSegment() {
	seg := g.anim.Segment()
	at := g.anim.EndTime()
	end := physics.SnapToEvent(seg.End, seg.Event.Kind, g.board.Bounds)

	switch {
	case seg.Event.Kind.IsWall():
		vel := physics.ReflectWall(seg.Velocity, seg.Event.Kind)
		g.emit(Event{Type: EventWallBounce})
		g.startSegment(end, vel, at)

	case seg.Event.Kind.IsPaddle():
		pos, vel, scored := g.resolveCollision(SideOf(seg.Event.Kind), end, seg.Velocity)
		if scored {
			// Point awarded inside this handler: no replanning
			return
		}
		g.startSegment(pos, vel, at)
	}
}

// AwardPoint scores for winner and leaves the rally
func (g *Game) AwardPoint(winner Side) {
	if g.phase == PhaseGameOver {
		return
	}
	g.stopRally()
	g.score.add(winner)
	g.travelTime = g.cfg.TravelTime
	g.attacker = winner
	g.emit(Event{Type: EventPoint, Side: winner, Score: g.score})

	if g.cfg.MaxPoints != constant.UnlimitedPoints && g.score.Of(winner) >= g.cfg.MaxPoints {
		g.phase = PhaseGameOver
		g.winner = winner
		g.rally = nil
		g.emit(Event{Type: EventGameOver, Side: winner, Score: g.score})
		return
	}
	g.enterPreServe()
}

// stopRally cancels the pending frame callback and the serve countdown
func (g *Game) stopRally() {
	g.sched.CancelFrame()
	if g.countdownID != 0 {
		g.sched.Cancel(g.countdownID)
		g.countdownID = 0
	}
	if g.anim.Live() {
		g.ballPos = g.anim.Segment().End
	}
	g.anim.Stop()
	g.ballVel = vmath.Vec2{}
}

// Tick advances the scheduler to now, driving frames and timers
func (g *Game) Tick(now time.Time) {
	g.sched.Advance(now)
}

func (g *Game) coin() bool {
	return g.rng.Intn(2) == 0
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// DrainEvents returns and clears queued events
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = make([]Event, 0, constant.GameEventQueueSize)
	return out
}

// ===== Accessors =====

func (g *Game) Phase() Phase { return g.phase }
func (g *Game) Score() Scoreboard { return g.score }
func (g *Game) Attacker() Side { return g.attacker }
func (g *Game) Winner() Side { return g.winner }
func (g *Game) TravelTime() float64 { return g.travelTime }
func (g *Game) Board() Board { return g.board }
func (g *Game) Config() config.Config { return g.cfg }
func (g *Game) Paddle(s Side) Paddle { return g.paddles[s] }
func (g *Game) Velocity() vmath.Vec2 { return g.ballVel }
func (g *Game) Prompt() Prompt { return g.tracker.Prompt() }
func (g *Game) Typed() int { return g.tracker.Typed() }
func (g *Game) CountdownLeft() time.Duration { return g.countdownLeft }

// Rally returns a copy of the live rally context, nil outside a rally
func (g *Game) Rally() *Rally {
	if g.rally == nil {
		return nil
	}
	r := *g.rally
	return &r
}

// ServeWord returns the serve word and how much of it is typed
func (g *Game) ServeWord() (string, int) {
	return g.serveWord, g.serveTyped
}

// ExpectedRune returns the next prompt character during a rally
func (g *Game) ExpectedRune() (rune, bool) {
	if g.phase != PhaseRally {
		return 0, false
	}
	return g.tracker.Expected()
}

// BallPosition interpolates the live segment at now, or returns the resting position
func (g *Game) BallPosition(now time.Time) vmath.Vec2 {
	if g.anim.Live() {
		return g.anim.Sample(now)
	}
	return g.ballPos
}

// VirtualCenter is the authoritative defender center derived from typed
// progress; false when the leg has no predicted impact
func (g *Game) VirtualCenter() (int, bool) {
	if !g.rally.HasPrediction() {
		return 0, false
	}
	return *g.rally.Predicted + (g.tracker.Typed() - g.rally.Distance), true
}
