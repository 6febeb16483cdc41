package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"ringjump/internal/session"
)

// EnvPrefix namespaces the environment variables read by ApplyEnv.
const EnvPrefix = "RINGJUMP_"

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the list into a map. Later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters for the hosts.
type Config struct {
	Mode      string
	Seed      int64
	Scale     float64
	TPS       int
	HUDWidth  int
	Sound     bool
	Debug     bool
	LogLevel  string
	LogFile   string
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:     "solo",
		Seed:     42,
		Scale:    1,
		TPS:      60,
		HUDWidth: 220,
		Sound:    true,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "game mode (solo or duel)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for stage generation")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "board-to-screen scale")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play audio cues")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with the debug overlay visible")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, error, none)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
	fs.Var(&c.Overrides, "set", "tunable override in key=value form (repeatable)")
}

// ApplyEnv overlays values from a dotenv file at path and then from the
// process environment. A missing file is not an error. Call it before
// parsing flags so that flags take precedence.
func (c *Config) ApplyEnv(path string) error {
	vars := map[string]string{}
	if path != "" {
		file, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range file {
			vars[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}
	return c.applyVars(vars)
}

func (c *Config) applyVars(vars map[string]string) error {
	for key, value := range vars {
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok {
			continue
		}
		var err error
		switch name {
		case "MODE":
			c.Mode = value
		case "SEED":
			c.Seed, err = strconv.ParseInt(value, 10, 64)
		case "SCALE":
			c.Scale, err = strconv.ParseFloat(value, 64)
		case "TPS":
			c.TPS, err = strconv.Atoi(value)
		case "HUD":
			c.HUDWidth, err = strconv.Atoi(value)
		case "SOUND":
			c.Sound, err = strconv.ParseBool(value)
		case "DEBUG":
			c.Debug, err = strconv.ParseBool(value)
		case "LOG_LEVEL":
			c.LogLevel = value
		case "LOG_FILE":
			c.LogFile = value
		default:
			// Anything else is a tunable, e.g. RINGJUMP_SPEED=1.5.
			c.Overrides = append(c.Overrides, strings.ToLower(name)+"="+value)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// SessionConfig resolves the mode, seed and overrides into a session config.
func (c *Config) SessionConfig() (session.Config, error) {
	mode, ok := session.ParseMode(c.Mode)
	if !ok {
		return session.Config{}, fmt.Errorf("unknown mode %q", c.Mode)
	}
	cfg := session.FromMap(c.Overrides.Map())
	cfg.Mode = mode
	cfg.Seed = c.Seed
	return cfg, nil
}
