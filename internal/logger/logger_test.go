package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, test := range tests {
		level, err := ParseLevel(test.level)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", test.level, err, test.wantErr)
		}
		if level != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.level, level, test.expected)
		}
	}
}

func TestLogUsableBeforeInit(t *testing.T) {
	if Log == nil {
		t.Fatal("Log should default to a no-op logger")
	}
	Log.Infow("no-op", "key", "value")
	WithFields(map[string]interface{}{"request_id": "abc"}).Debug("no-op")
}

func TestInitRejectsInvalidLevel(t *testing.T) {
	if err := Init("loud", "console"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestInit(t *testing.T) {
	if err := Init("debug", "json"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Log == nil {
		t.Fatal("Log should be set after Init")
	}
	_ = Sync()
}
