package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":2888" || cfg.Depth != 4 || cfg.MaxDepth != 6 || cfg.FirstColor() != xiangqi.Red {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xiangqi.yaml")
	body := "addr: \":9000\"\ndepth: 3\nfirst: black\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.Depth != 3 || cfg.FirstColor() != xiangqi.Black || cfg.LogLevel != "debug" {
		t.Fatalf("file values: %+v", cfg)
	}

	t.Setenv("XIANGQI_DEPTH", "2")
	t.Setenv("XIANGQI_ADDR", "127.0.0.1:7000")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("load with env: %v", err)
	}
	if cfg.Depth != 2 || cfg.Addr != "127.0.0.1:7000" {
		t.Fatalf("env should override file: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("XIANGQI_DEPTH", "0")
	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("depth 0: expected ErrInvalidConfig, got %v", err)
	}

	t.Setenv("XIANGQI_DEPTH", "9")
	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("depth above max: expected ErrInvalidConfig, got %v", err)
	}
	t.Setenv("XIANGQI_MAX_DEPTH", "10")
	if cfg, err := Load(""); err != nil || cfg.Depth != 9 || cfg.MaxDepth != 10 {
		t.Fatalf("raised max_depth: cfg=%+v err=%v", cfg, err)
	}

	t.Setenv("XIANGQI_DEPTH", "")
	t.Setenv("XIANGQI_FIRST", "green")
	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("bad color: expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
