package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	args := []string{"-scene", "circle", "-frames", "3", "-width", "64", "-height", "48", "-output", dir}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v\n%s", err, stderr.String())
	}

	for _, name := range []string{"circle_0000.png", "circle_0002.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
			t.Errorf("%s bounds = %v, want 64x48", name, b)
		}
	}
	if !strings.Contains(stderr.String(), "done") {
		t.Errorf("log = %q, want a done record", stderr.String())
	}
}

func TestRunList(t *testing.T) {
	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"-list"}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "racer") {
		t.Errorf("-list output = %q, want the racer scene", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := [][]string{
		{"-scene", "teapot", "-output", "unused"},
		{"-width", "-5"},
		{"-config", "does-not-exist.yaml"},
		{"-nonsense"},
	}
	for _, args := range tests {
		if err := run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
			t.Errorf("run(%v) error = nil", args)
		}
	}
}
