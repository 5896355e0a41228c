package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/dyncanvas/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(&buf, config.LogConfig{Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", "frame", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "frame=3") {
		t.Errorf("output = %q, want the warn record in text form", out)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(&buf, config.LogConfig{Format: "json"})
	if err != nil {
		t.Fatal(err)
	}
	log.Info("frame", "n", 1)
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output %q is not JSON: %v", buf.String(), err)
	}
	if rec["msg"] != "frame" {
		t.Errorf("msg = %v, want frame", rec["msg"])
	}
}

func TestNewFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "demo.log")
	log, closer, err := New(&buf, config.LogConfig{File: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatal(err)
	}
	log.With("scene", "racer").Info("started")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"scene":"racer"`)) {
		t.Errorf("log file = %q, want the JSON record", data)
	}
	if !strings.Contains(buf.String(), "started") {
		t.Errorf("stderr output = %q, want the record too", buf.String())
	}
}

func TestNewErrors(t *testing.T) {
	if _, _, err := New(&bytes.Buffer{}, config.LogConfig{Level: "chatty"}); err == nil {
		t.Error("New() with a bad level succeeded")
	}
	if _, _, err := New(&bytes.Buffer{}, config.LogConfig{Format: "xml"}); err == nil {
		t.Error("New() with a bad format succeeded")
	}
}
