package engine

import (
	"math/rand"

	"github.com/lixenwraith/type-pong/constant"
	"github.com/lixenwraith/type-pong/content"
	"github.com/lixenwraith/type-pong/physics"
	"github.com/lixenwraith/type-pong/vmath"
)

// PromptGenerator predicts where the ball meets the defender's line and
// composes a phrase whose length encodes the paddle travel needed
type PromptGenerator struct {
	board Board
	bank  *content.WordBank
	rng   *rand.Rand
}

// NewPromptGenerator creates a generator over bank
func NewPromptGenerator(board Board, bank *content.WordBank, rng *rand.Rand) *PromptGenerator {
	return &PromptGenerator{board: board, bank: bank, rng: rng}
}

// PredictImpact returns the defender-line impact column for a ball at pos
// moving at vel, false when the line is not reached (degenerate geometry)
func (pg *PromptGenerator) PredictImpact(pos, vel vmath.Vec2, defender Side) (int, bool) {
	t := physics.TimeToLine(pos, vel, pg.board.ContactY(defender))
	if t <= 0 {
		return 0, false
	}
	x := physics.PredictX(pos.X, vel.X, t, pg.board.Bounds)
	return pg.board.ColumnOf(x), true
}

// Generate builds the rally context and prompt for the defender, whose
// paddle is centered at origin when the leg begins
func (pg *PromptGenerator) Generate(pos, vel vmath.Vec2, attacker Side, origin int) (*Rally, Prompt) {
	rally := &Rally{
		Attacker:  attacker,
		Defender:  attacker.Opposite(),
		Origin:    origin,
		Direction: 1,
	}

	if col, ok := pg.PredictImpact(pos, vel, rally.Defender); ok {
		rally.Predicted = &col
		rally.Distance = vmath.AbsInt(col - origin)
		if col < origin {
			rally.Direction = -1
		}
	} else {
		rally.Distance = constant.FallbackPromptDistance
	}

	return rally, pg.Compose(rally.Distance)
}

// Compose builds a prompt for a travel distance in columns
// The phrase is distance+half characters so a player can overshoot the center
func (pg *PromptGenerator) Compose(distance int) Prompt {
	total := distance + pg.board.Half()
	words, exact := content.Compose(total, pg.bank, pg.rng)
	return Prompt{
		Text:       content.Join(words),
		CenterStep: max(distance-1, 0),
		Distance:   distance,
		Exact:      exact,
	}
}

// ServeWord picks a short word the attacker types before serving
func (pg *PromptGenerator) ServeWord() string {
	var lengths []int
	for _, n := range pg.bank.Lengths() {
		if n >= constant.ServeWordMinLength && n <= constant.ServeWordMaxLength {
			lengths = append(lengths, n)
		}
	}
	if len(lengths) == 0 {
		words := content.ComposeGreedy(constant.ServeWordMinLength, pg.bank)
		return content.Join(words)
	}
	return pg.bank.Random(lengths[pg.rng.Intn(len(lengths))], pg.rng)
}
