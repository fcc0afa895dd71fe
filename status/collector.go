package status

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/type-pong/engine"
)

// Metric keys
const (
	KeyServes      = "game.serves"
	KeyPaddleHits  = "game.paddle_hits"
	KeyWallBounces = "game.wall_bounces"
	KeyMisses      = "game.misses"
	KeyPoints      = "game.points"
	KeyGames       = "game.games"
	KeyFallbacks   = "prompt.fallbacks"
	KeyConfigs     = "config.applied"
	KeyRallyHits   = "rally.hits"
	KeyLongest     = "rally.longest"
	KeyTravelTime  = "rally.travel_time"
	KeyFastest     = "rally.fastest"
)

// Collector counts game events into a Registry
type Collector struct {
	reg *Registry

	serves    *atomic.Int64
	hits      *atomic.Int64
	walls     *atomic.Int64
	misses    *atomic.Int64
	points    *atomic.Int64
	games     *atomic.Int64
	fallbacks *atomic.Int64
	configs   *atomic.Int64
	rallyHits *atomic.Int64
	longest   *atomic.Int64
	travel    *Gauge
	fastest   *Gauge
}

// NewCollector registers the game metrics in reg
func NewCollector(reg *Registry) *Collector {
	return &Collector{
		reg:       reg,
		serves:    reg.Ints.Get(KeyServes),
		hits:      reg.Ints.Get(KeyPaddleHits),
		walls:     reg.Ints.Get(KeyWallBounces),
		misses:    reg.Ints.Get(KeyMisses),
		points:    reg.Ints.Get(KeyPoints),
		games:     reg.Ints.Get(KeyGames),
		fallbacks: reg.Ints.Get(KeyFallbacks),
		configs:   reg.Ints.Get(KeyConfigs),
		rallyHits: reg.Ints.Get(KeyRallyHits),
		longest:   reg.Ints.Get(KeyLongest),
		travel:    reg.Gauges.Get(KeyTravelTime),
		fastest:   reg.Gauges.Get(KeyFastest),
	}
}

// OnGameEvent implements engine.Listener
func (c *Collector) OnGameEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventServe:
		c.serves.Add(1)
		c.rallyHits.Store(0)
	case engine.EventWallBounce:
		c.walls.Add(1)
	case engine.EventPaddleHit:
		c.hits.Add(1)
		if n := c.rallyHits.Add(1); n > c.longest.Load() {
			c.longest.Store(n)
		}
	case engine.EventMiss:
		c.misses.Add(1)
	case engine.EventPoint:
		c.points.Add(1)
	case engine.EventGameOver:
		c.games.Add(1)
	case engine.EventPromptFallback:
		c.fallbacks.Add(1)
	case engine.EventConfigApplied:
		c.configs.Add(1)
	case engine.EventReset:
		c.rallyHits.Store(0)
	}
}

// SetTravelTime records the current rally speed and the session's fastest
func (c *Collector) SetTravelTime(seconds float64) {
	c.travel.Set(seconds)
	c.fastest.Lower(seconds)
}

// Summary renders a one-line digest of all registered metrics in key order
func (c *Collector) Summary() string {
	var parts []string
	c.reg.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", shortKey(key), v.Load()))
	})
	c.reg.Gauges.Range(func(key string, v *Gauge) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", shortKey(key), v.Get()))
	})
	return strings.Join(parts, " ")
}

func shortKey(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}
