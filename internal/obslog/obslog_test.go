package obslog

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		if err != nil || got != want {
			t.Fatalf("parseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestInit(t *testing.T) {
	prev := globalLogger
	t.Cleanup(func() { globalLogger = prev })

	if err := Init("debug", "json"); err != nil {
		t.Fatalf("init json: %v", err)
	}
	if !L().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be enabled")
	}
	if err := Init("info", "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
