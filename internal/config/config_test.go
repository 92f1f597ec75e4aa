package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "FRAME_WIDTH", "FRAME_HEIGHT", "MAX_SESSIONS", "PRESETS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	want := Config{
		Port:         "3000",
		Environment:  "development",
		ReadTimeout:  10,
		WriteTimeout: 10,
		FrameWidth:   800,
		FrameHeight:  600,
		MaxSessions:  64,
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
	if !cfg.Development() {
		t.Error("default environment should be development")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("READ_TIMEOUT", "3")
	t.Setenv("WRITE_TIMEOUT", "not-a-number")
	t.Setenv("FRAME_WIDTH", "320")
	t.Setenv("MAX_SESSIONS", "2")
	t.Setenv("PRESETS", "/etc/spiro/presets.toml")

	cfg := Load()
	if cfg.Port != "8080" || cfg.Development() {
		t.Errorf("port/env = %q/%q", cfg.Port, cfg.Environment)
	}
	if cfg.ReadTimeoutDuration() != 3*time.Second {
		t.Errorf("read timeout = %v", cfg.ReadTimeoutDuration())
	}
	if cfg.WriteTimeoutDuration() != 10*time.Second {
		t.Errorf("malformed write timeout should fall back, got %v", cfg.WriteTimeoutDuration())
	}
	if cfg.FrameWidth != 320 || cfg.MaxSessions != 2 || cfg.PresetsPath != "/etc/spiro/presets.toml" {
		t.Errorf("cfg = %+v", *cfg)
	}
}
