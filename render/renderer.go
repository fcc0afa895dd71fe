// Package render draws the type-pong board into a tcell screen
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/type-pong/config"
	"github.com/lixenwraith/type-pong/engine"
	"github.com/lixenwraith/type-pong/vmath"
)

// Glyphs
const (
	glyphWall   = '│'
	glyphPaddle = '█'
	glyphGhost  = '░'
	glyphBall   = '●'
	glyphSpace  = '·'
)

// GameView is the read-only game state a frame is drawn from
type GameView interface {
	Board() engine.Board
	Config() config.Config
	Phase() engine.Phase
	Score() engine.Scoreboard
	Attacker() engine.Side
	Winner() engine.Side
	Paddle(s engine.Side) engine.Paddle
	BallPosition(now time.Time) vmath.Vec2
	Prompt() engine.Prompt
	Typed() int
	ServeWord() (string, int)
	CountdownLeft() time.Duration
	TravelTime() float64
}

// Renderer owns per-frame display state: eased paddles, mute flag and HUD line
type Renderer struct {
	screen tcell.Screen
	easers [2]*PaddleEaser
	cols   int

	showHUD bool
	hud     string
	muted   bool
}

// NewRenderer creates a renderer drawing into screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		easers: [2]*PaddleEaser{NewPaddleEaser(0), NewPaddleEaser(0)},
	}
}

// ToggleHUD flips the metrics line and returns the new state
func (r *Renderer) ToggleHUD() bool {
	r.showHUD = !r.showHUD
	return r.showHUD
}

// SetHUD sets the metrics line text
func (r *Renderer) SetHUD(text string) {
	r.hud = text
}

// SetMuted updates the mute indicator
func (r *Renderer) SetMuted(muted bool) {
	r.muted = muted
}

// SnapPaddles drops easing so paddles jump to their authoritative columns
func (r *Renderer) SnapPaddles(view GameView) {
	for _, s := range []engine.Side{engine.SideTop, engine.SideBottom} {
		r.easers[s].Snap(view.Paddle(s).Center)
	}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(view GameView, now time.Time) {
	board := view.Board()
	if board.Columns != r.cols {
		r.cols = board.Columns
		r.SnapPaddles(view)
	}

	sw, sh := r.screen.Size()
	r.screen.Fill(' ', Style(RgbStatusText))

	l := NewLayout(sw, sh, board.Columns)
	if !l.Usable {
		r.drawCentered(sh/2, "terminal too small", Style(RgbSpeedFast))
		r.screen.Show()
		return
	}

	r.drawHeader(view, l)
	r.drawWalls(l)
	r.drawPaddle(view, l, engine.SideTop, board.TopLine)
	r.drawPaddle(view, l, engine.SideBottom, board.BottomLine)
	r.drawBall(view, l, now)
	r.drawPrompt(view, l)
	r.drawStatus(view, l)
	if r.showHUD && l.HUDRow() < sh {
		r.drawText(0, l.HUDRow(), r.hud, Style(RgbPromptPending))
	}

	r.screen.Show()
}

func (r *Renderer) drawHeader(view GameView, l Layout) {
	score := view.Score()
	top := fmt.Sprintf("TOP %d", score.Top)
	bot := fmt.Sprintf("%d BOTTOM", score.Bottom)
	if view.Attacker() == engine.SideTop {
		top = "▸ " + top
	} else {
		bot = bot + " ◂"
	}

	line := top + " : " + bot
	x := (l.ScreenW - runewidth.StringWidth(line)) / 2
	x = r.drawText(x, 0, top, Style(RgbTopPaddle))
	x = r.drawText(x, 0, " : ", Style(RgbStatusText))
	r.drawText(x, 0, bot, Style(RgbBotPaddle))

	if r.muted {
		r.drawText(l.ScreenW-len("MUTED"), 0, "MUTED", Style(RgbSpeedFast))
	}
}

func (r *Renderer) drawWalls(l Layout) {
	style := Style(RgbWall)
	for y := l.Y; y < l.Y+l.H; y++ {
		r.screen.SetContent(l.X-1, y, glyphWall, nil, style)
		r.screen.SetContent(l.X+l.W, y, glyphWall, nil, style)
	}
}

// drawPaddle draws the authoritative span as a faint ghost under the eased paddle
func (r *Renderer) drawPaddle(view GameView, l Layout, side engine.Side, line float64) {
	p := view.Paddle(side)
	y := l.CellY(line)
	color := SideColor(side == engine.SideTop)

	ghost := Style(RgbBackground.Blend(color, 0.35))
	r.fillColumns(l, p.Center-p.Half(), p.Center+p.Half(), y, glyphGhost, ghost)

	eased := r.easers[side].Step(p.Center)
	left := l.X + int(eased*float64(l.CellW)+0.5) - p.Half()*l.CellW
	r.fillCells(l, left, left+p.Width*l.CellW-1, y, glyphPaddle, Style(color))
}

// fillColumns paints board columns [c0, c1], clipped to the board
func (r *Renderer) fillColumns(l Layout, c0, c1, y int, ch rune, style tcell.Style) {
	c0 = vmath.ClampInt(c0, 0, l.Cols-1)
	c1 = vmath.ClampInt(c1, 0, l.Cols-1)
	r.fillCells(l, l.ColumnLeft(c0), l.ColumnLeft(c1)+l.CellW-1, y, ch, style)
}

// fillCells paints screen cells [x0, x1], clipped to the board
func (r *Renderer) fillCells(l Layout, x0, x1, y int, ch rune, style tcell.Style) {
	x0 = max(x0, l.X)
	x1 = min(x1, l.X+l.W-1)
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *Renderer) drawBall(view GameView, l Layout, now time.Time) {
	pos := view.BallPosition(now)
	fg := RgbBall
	if view.Phase() == engine.PhaseRally {
		b := view.Board()
		fg = SpeedColor(view.TravelTime(), view.Config().TravelTime, b.MinTravelTime)
	}
	r.screen.SetContent(l.CellX(pos.X), l.CellY(pos.Y), glyphBall, nil, Style(fg))
}

// drawPrompt shows the defender phrase: typed characters on a progress
// gradient, the rest dim, the centered-hit character marked
func (r *Renderer) drawPrompt(view GameView, l Layout) {
	y := l.PromptRow()
	switch view.Phase() {
	case engine.PhaseRally:
		p := view.Prompt()
		typed := view.Typed()
		defender := view.Attacker().Opposite()
		label := strings.ToUpper(defender.String()) + " ▸ "

		width := runewidth.StringWidth(label) + runewidth.StringWidth(p.Text)
		x := (l.ScreenW - width) / 2
		x = r.drawText(x, y, label, Style(SideColor(defender == engine.SideTop)))

		n := max(p.Len(), 1)
		for i, ch := range []rune(p.Text) {
			style := Style(RgbPromptPending)
			if i < typed {
				style = Style(PromptProgressColor(float64(i+1) / float64(n)))
			}
			if i == p.CenterStep && i >= typed {
				style = Style(RgbCenterMark).Underline(true)
			}
			if ch == ' ' && i >= typed {
				ch = glyphSpace
			}
			r.screen.SetContent(x, y, ch, nil, style)
			x += runewidth.RuneWidth(ch)
		}

	case engine.PhasePreServe:
		word, typed := view.ServeWord()
		label := strings.ToUpper(view.Attacker().String()) + " serve ▸ "
		width := runewidth.StringWidth(label) + runewidth.StringWidth(word)
		x := (l.ScreenW - width) / 2
		x = r.drawText(x, y, label, Style(SideColor(view.Attacker() == engine.SideTop)))
		typed = min(typed, len(word))
		x = r.drawText(x, y, word[:typed], Style(RgbPromptDone))
		r.drawText(x, y, word[typed:], Style(RgbPromptPending))
	}
}

func (r *Renderer) drawStatus(view GameView, l Layout) {
	y := l.StatusRow()
	switch view.Phase() {
	case engine.PhasePreServe:
		secs := int((view.CountdownLeft() + time.Second - 1) / time.Second)
		r.drawCentered(y, fmt.Sprintf("←/→ aim · Enter launch · auto serve in %ds", secs), Style(RgbStatusText))
	case engine.PhaseRally:
		text := fmt.Sprintf("travel %.2fs", view.TravelTime())
		b := view.Board()
		r.drawCentered(y, text, Style(SpeedColor(view.TravelTime(), view.Config().TravelTime, b.MinTravelTime)))
	case engine.PhaseGameOver:
		text := fmt.Sprintf(" %s WINS · Ctrl+R to play again ", strings.ToUpper(view.Winner().String()))
		style := tcell.StyleDefault.Foreground(RGBToTcell(RgbWinner)).Background(RGBToTcell(RgbBannerBg)).Bold(true)
		r.drawCentered(y, text, style)
	}
}

// drawText writes s from x and returns the column after it
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	sw, _ := r.screen.Size()
	r.drawText((sw-runewidth.StringWidth(s))/2, y, s, style)
}
