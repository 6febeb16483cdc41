package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ringjump/internal/session"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-mode", "duel", "-seed", "7", "-scale", "1.5", "-set", "speed=2", "-set", "base_circles=9"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Mode != "duel" || cfg.Seed != 7 || cfg.Scale != 1.5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	sc, err := cfg.SessionConfig()
	if err != nil {
		t.Fatalf("session config: %v", err)
	}
	if sc.Mode != session.Duel || sc.Seed != 7 {
		t.Fatalf("mode/seed not forwarded: %+v", sc)
	}
	if sc.Speed != 2 || sc.Stage.Params.BaseCircles != 9 {
		t.Fatalf("overrides not applied: speed %v circles %d", sc.Speed, sc.Stage.Params.BaseCircles)
	}
}

func TestSetRejectsMalformedOverride(t *testing.T) {
	var l KVList
	if err := l.Set("speed"); err == nil {
		t.Fatal("expected error for missing '='")
	}
}

func TestApplyEnvReadsDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "RINGJUMP_SEED=99\nRINGJUMP_MODE=duel\nRINGJUMP_SOUND=false\nRINGJUMP_TAP_WINDOW=0.3\nOTHER=ignored\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	if err := cfg.ApplyEnv(path); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Seed != 99 || cfg.Mode != "duel" || cfg.Sound {
		t.Fatalf("dotenv values not applied: %+v", cfg)
	}
	if got := cfg.Overrides.Map()["tap_window"]; got != "0.3" {
		t.Fatalf("tunable override = %q", got)
	}
}

func TestApplyEnvPrefersProcessEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("RINGJUMP_SEED=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RINGJUMP_SEED", "2")
	cfg := NewConfig()
	if err := cfg.ApplyEnv(path); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Seed != 2 {
		t.Fatalf("seed = %d, expected environment to win", cfg.Seed)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("defaults changed: %+v", cfg)
	}
}

func TestApplyEnvNamesBadKey(t *testing.T) {
	t.Setenv("RINGJUMP_TPS", "fast")
	cfg := NewConfig()
	err := cfg.ApplyEnv("")
	if err == nil || !strings.Contains(err.Error(), "RINGJUMP_TPS") {
		t.Fatalf("expected error naming RINGJUMP_TPS, got %v", err)
	}
}

func TestSessionConfigUnknownMode(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = "coop"
	if _, err := cfg.SessionConfig(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	cfg := NewConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")
	cfg.LogLevel = "debug"
	logger, closer, err := cfg.OpenLogger(nil)
	if err != nil {
		t.Fatalf("open logger: %v", err)
	}
	logger.Debugf("hello %d", 1)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[DEBUG] hello 1") {
		t.Fatalf("log file contents %q", data)
	}
}
