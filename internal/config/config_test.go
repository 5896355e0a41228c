package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dcdemo.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
scene: racer
width: 320
zoom:
  enabled: true
  max: 4
log:
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scene != "racer" || cfg.Width != 320 || cfg.Height != 600 {
		t.Errorf("scene/size = %q %dx%d, want racer 320x600", cfg.Scene, cfg.Width, cfg.Height)
	}
	if !cfg.Zoom.Enabled || cfg.Zoom.Max != 4 || cfg.Zoom.Min != 0.1 {
		t.Errorf("Zoom = %+v, want enabled, max 4, default min", cfg.Zoom)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "info" {
		t.Errorf("Log = %+v, want json at info", cfg.Log)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "scene: circle\nframes: 10\n")
	t.Setenv("DCDEMO_SCENE", "flip")
	t.Setenv("DCDEMO_ZOOM_LEVEL", "2.5")
	t.Setenv("DCDEMO_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scene != "flip" {
		t.Errorf("Scene = %q, want flip", cfg.Scene)
	}
	if cfg.Frames != 10 {
		t.Errorf("Frames = %d, want 10 from the file", cfg.Frames)
	}
	if cfg.Zoom.Level != 2.5 {
		t.Errorf("Zoom.Level = %v, want 2.5", cfg.Zoom.Level)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		env  map[string]string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, nil},
		{"bad yaml", func(t *testing.T) string { return writeFile(t, "width: [1, 2\n") }, nil},
		{"bad env", func(*testing.T) string { return "" }, map[string]string{"DCDEMO_WIDTH": "wide"}},
		{"invalid size", func(t *testing.T) string { return writeFile(t, "width: -1\n") }, nil},
		{"invalid format", func(*testing.T) string { return "" }, map[string]string{"DCDEMO_LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.path(t)); err == nil {
				t.Error("Load() error = nil, want an error")
			}
		})
	}
}
