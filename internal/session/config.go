package session

import (
	"math"
	"strconv"
	"strings"

	"ringjump/internal/agent"
	"ringjump/internal/stage"
)

// Mode selects solo or head-to-head play.
type Mode int

const (
	// Solo runs one agent through an endless sequence of stages.
	Solo Mode = iota
	// Duel puts two agents on one fixed board until both die or the
	// pickups run out.
	Duel
)

func (m Mode) String() string {
	switch m {
	case Solo:
		return "solo"
	case Duel:
		return "duel"
	default:
		return "unknown"
	}
}

// Agents returns the number of agents the mode plays with.
func (m Mode) Agents() int {
	if m == Duel {
		return 2
	}
	return 1
}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solo", "single", "1":
		return Solo, true
	case "duel", "versus", "vs", "2":
		return Duel, true
	}
	return Solo, false
}

// Config holds session-wide tunables.
type Config struct {
	Mode Mode
	Seed int64

	Stage stage.Config

	Speed         float64 // radians per second for the first agent on stage 1
	SpeedPerStage float64
	RivalSpeed    float64 // second agent in duel mode
	TapWindow     float64
	SnapTolerance float64 // radians
	MaxStep       float64 // seconds
	PickupPoints  int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Mode:          Solo,
		Seed:          42,
		Stage:         stage.DefaultConfig(),
		Speed:         1.2,
		SpeedPerStage: 0.08,
		RivalSpeed:    1.35,
		TapWindow:     agent.DefaultTapWindow,
		SnapTolerance: agent.DefaultSnapTolerance,
		MaxStep:       0.05,
		PickupPoints:  100,
	}
}

// FromMap populates the config from a string map. Stage keys are forwarded
// to stage.FromMap. Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Stage = stage.FromMap(cfg)
	if v, ok := cfg["mode"]; ok {
		if m, ok := ParseMode(v); ok {
			c.Mode = m
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	setFloat("speed", &c.Speed)
	setFloat("rival_speed", &c.RivalSpeed)
	setFloat("tap_window", &c.TapWindow)
	setFloat("max_step", &c.MaxStep)
	if v, ok := cfg["speed_per_stage"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.SpeedPerStage = parsed
		}
	}
	if v, ok := cfg["snap_deg"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 180 {
			c.SnapTolerance = parsed * math.Pi / 180
		}
	}
	if v, ok := cfg["pickup_points"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PickupPoints = parsed
		}
	}
	return c
}

func (c Config) agentConfig(speed float64) agent.Config {
	return agent.Config{Speed: speed, TapWindow: c.TapWindow, SnapTolerance: c.SnapTolerance}
}
