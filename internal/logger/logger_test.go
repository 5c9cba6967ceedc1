package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	if err := Init(Config{Level: "debug", Output: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Get().Info().Str("component", "test").Msg("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) || !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("unexpected log output %s", data)
	}
}
