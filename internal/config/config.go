package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

type Config struct {
	Addr   string `yaml:"addr"`
	WebDir string `yaml:"web_dir"`

	// AI 默认搜索深度（ply），新对局可以单独覆盖
	Depth int `yaml:"depth"`
	// 新对局允许请求的最大深度
	MaxDepth int `yaml:"max_depth"`
	// 先手方：red / black
	First string `yaml:"first"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

var ErrInvalidConfig = errors.New("invalid config")

func Default() *Config {
	return &Config{
		Addr:      ":2888",
		Depth:     engine.DefaultDepth,
		MaxDepth:  engine.MaxDepth,
		First:     "red",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load 默认值 → YAML 文件（path 为空则跳过）→ 环境变量
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("XIANGQI_ADDR")); v != "" {
		c.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("XIANGQI_WEB_DIR")); v != "" {
		c.WebDir = v
	}
	if v := strings.TrimSpace(os.Getenv("XIANGQI_DEPTH")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Depth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("XIANGQI_MAX_DEPTH")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxDepth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("XIANGQI_FIRST")); v != "" {
		c.First = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		c.LogFormat = v
	}
}

func (c *Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be >= 1, got %d", ErrInvalidConfig, c.Depth)
	}
	if c.Depth > c.MaxDepth {
		return fmt.Errorf("%w: depth %d exceeds max_depth %d", ErrInvalidConfig, c.Depth, c.MaxDepth)
	}
	if _, ok := xiangqi.ParseColor(c.First); !ok {
		return fmt.Errorf("%w: unknown first color %q", ErrInvalidConfig, c.First)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr is required", ErrInvalidConfig)
	}
	return nil
}

// FirstColor Validate 之后调用
func (c *Config) FirstColor() xiangqi.Color {
	col, _ := xiangqi.ParseColor(c.First)
	return col
}
