// Package config holds game settings: board size, paddle width, speed and
// scoring. Settings load from a TOML file with environment overrides and are
// normalized before the engine sees them
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/type-pong/constant"
	"github.com/lixenwraith/type-pong/vmath"
)

// Sentinel errors
var (
	ErrColumnsRange    = errors.New("columns out of range")
	ErrPaddleWidth     = errors.New("paddle width must be at least 1")
	ErrTravelTimeRange = errors.New("starting travel time out of range")
	ErrMaxPointsRange  = errors.New("max points out of range")
	ErrMinTravelTime   = errors.New("minimum travel time must be positive")
	ErrPaddleLines     = errors.New("paddle lines must satisfy 0 <= top < bottom <= 1")
)

// Environment overrides
const (
	EnvColumns     = "TYPE_PONG_COLUMNS"
	EnvPaddleWidth = "TYPE_PONG_PADDLE_WIDTH"
	EnvTravelTime  = "TYPE_PONG_TRAVEL_TIME"
	EnvMaxPoints   = "TYPE_PONG_MAX_POINTS"
	EnvMute        = "TYPE_PONG_MUTE"
	EnvWordsDir    = "TYPE_PONG_WORDS_DIR"
)

// Config is the full set of tunables
// Only applied to a game between rallies
type Config struct {
	Columns     int `toml:"columns"`
	PaddleWidth int `toml:"paddle_width"`

	TravelTime     float64 `toml:"travel_time"`
	MinTravelTime  float64 `toml:"min_travel_time"`
	TravelTimeStep float64 `toml:"travel_time_step"`

	// MaxPoints of 0 plays forever
	MaxPoints int `toml:"max_points"`

	ServeCountdown Duration `toml:"serve_countdown"`

	TopLine    float64 `toml:"top_line"`
	BottomLine float64 `toml:"bottom_line"`
	BallRadius float64 `toml:"ball_radius"`

	WordsDir string `toml:"words_dir"`
	Mute     bool   `toml:"mute"`
}

// Duration wraps time.Duration for TOML text encoding ("30s")
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Columns:        constant.DefaultColumns,
		PaddleWidth:    constant.DefaultPaddleWidth,
		TravelTime:     constant.DefaultTravelTime,
		MinTravelTime:  constant.DefaultMinTravelTime,
		TravelTimeStep: constant.DefaultTravelTimeStep,
		MaxPoints:      constant.DefaultMaxPoints,
		ServeCountdown: Duration{constant.DefaultServeCountdown},
		TopLine:        constant.TopPaddleLine,
		BottomLine:     constant.BottomPaddleLine,
		BallRadius:     constant.BallRadius,
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path or a missing file yields the defaults plus overrides
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg.Normalize(), nil
}

// Save writes cfg as TOML to path
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from TYPE_PONG_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvColumns); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvColumns, err)
		}
		c.Columns = n
	}

	if v := os.Getenv(EnvPaddleWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPaddleWidth, err)
		}
		c.PaddleWidth = n
	}

	if v := os.Getenv(EnvTravelTime); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTravelTime, err)
		}
		c.TravelTime = f
	}

	if v := os.Getenv(EnvMaxPoints); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxPoints, err)
		}
		c.MaxPoints = n
	}

	if v := os.Getenv(EnvMute); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMute, err)
		}
		c.Mute = b
	}

	if v := os.Getenv(EnvWordsDir); v != "" {
		c.WordsDir = v
	}

	return nil
}

// Validate reports every out-of-range setting that Normalize cannot repair
// silently. An even paddle width is not an error, it is forced odd
func (c Config) Validate() error {
	var errs []error

	if c.Columns < constant.MinColumns || c.Columns > constant.MaxColumns {
		errs = append(errs, fmt.Errorf("%w: %d not in [%d,%d]", ErrColumnsRange, c.Columns, constant.MinColumns, constant.MaxColumns))
	}
	if c.PaddleWidth < 1 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrPaddleWidth, c.PaddleWidth))
	}
	if c.TravelTime < constant.MinStartTravelTime || c.TravelTime > constant.MaxStartTravelTime {
		errs = append(errs, fmt.Errorf("%w: %.2f not in [%.0f,%.0f]", ErrTravelTimeRange, c.TravelTime, constant.MinStartTravelTime, constant.MaxStartTravelTime))
	}
	if c.MaxPoints != constant.UnlimitedPoints && (c.MaxPoints < constant.MinMaxPoints || c.MaxPoints > constant.MaxMaxPoints) {
		errs = append(errs, fmt.Errorf("%w: %d not in {%d..%d} or %d", ErrMaxPointsRange, c.MaxPoints, constant.MinMaxPoints, constant.MaxMaxPoints, constant.UnlimitedPoints))
	}
	if c.MinTravelTime <= 0 {
		errs = append(errs, fmt.Errorf("%w: %.2f", ErrMinTravelTime, c.MinTravelTime))
	}
	if c.TopLine < 0 || c.BottomLine > 1 || c.TopLine >= c.BottomLine {
		errs = append(errs, fmt.Errorf("%w: top=%.3f bottom=%.3f", ErrPaddleLines, c.TopLine, c.BottomLine))
	}

	return errors.Join(errs...)
}

// Normalize clamps every field into its legal range and forces the paddle
// width odd and at most Columns-1
func (c Config) Normalize() Config {
	c.Columns = vmath.ClampInt(c.Columns, constant.MinColumns, constant.MaxColumns)
	c.PaddleWidth = OddWidth(c.PaddleWidth, c.Columns)

	c.TravelTime = vmath.Clamp(c.TravelTime, constant.MinStartTravelTime, constant.MaxStartTravelTime)
	if c.MinTravelTime <= 0 || c.MinTravelTime > c.TravelTime {
		c.MinTravelTime = min(constant.DefaultMinTravelTime, c.TravelTime)
	}
	if c.TravelTimeStep < 0 {
		c.TravelTimeStep = 0
	}

	if c.MaxPoints != constant.UnlimitedPoints {
		c.MaxPoints = vmath.ClampInt(c.MaxPoints, constant.MinMaxPoints, constant.MaxMaxPoints)
	}

	if c.ServeCountdown.Duration <= 0 {
		c.ServeCountdown.Duration = constant.DefaultServeCountdown
	}

	if c.TopLine < 0 || c.BottomLine > 1 || c.TopLine >= c.BottomLine {
		c.TopLine, c.BottomLine = constant.TopPaddleLine, constant.BottomPaddleLine
	}
	maxRadius := 0.5 / float64(c.Columns)
	if c.BallRadius < 0 || c.BallRadius >= maxRadius {
		c.BallRadius = min(constant.BallRadius, maxRadius/2)
	}

	return c
}

// OddWidth forces w odd and into [1, columns-1]
func OddWidth(w, columns int) int {
	limit := columns - 1
	if limit%2 == 0 {
		limit--
	}
	if w < 1 {
		w = 1
	}
	if w%2 == 0 {
		w++
	}
	if w > limit {
		w = limit
	}
	return w
}
