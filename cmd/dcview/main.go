// Command dcview shows a demo scene live in a window. Wheel or +/- zoom.
//
// The window needs the fyne build tag:
//
//	go run -tags fyne ./cmd/dcview -scene racer
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/dyncanvas"
	"github.com/gogpu/dyncanvas/internal/config"
	"github.com/gogpu/dyncanvas/internal/demo"
	"github.com/gogpu/dyncanvas/internal/logging"
	"github.com/gogpu/dyncanvas/raster"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "dcview:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("dcview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file")
		scene      = fs.String("scene", "", "scene to show")
		fps        = fs.Int("fps", 0, "frames per second")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *scene != "" {
		cfg.Scene = *scene
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}

	log, closer, err := logging.New(stderr, cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()
	dyncanvas.SetLogger(log)

	info, ok := demo.Describe(cfg.Scene)
	if !ok {
		return fmt.Errorf("unknown scene %q", cfg.Scene)
	}
	// The window always zooms; the configured range still applies.
	opts := []dyncanvas.Option{dyncanvas.WithZoom(dyncanvas.ZoomConfig{
		Level: cfg.Zoom.Level,
		Min:   cfg.Zoom.Min,
		Max:   cfg.Zoom.Max,
		Speed: cfg.Zoom.Speed,
	})}
	if cfg.Background != "" {
		bg, err := raster.ParseColor(cfg.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		opts = append(opts, dyncanvas.WithBackground(bg))
	}
	c := dyncanvas.New(cfg.Width, cfg.Height, opts...)

	s, err := demo.Build(cfg.Scene, c, demo.Options{Loader: demo.Loader(cfg.Assets)})
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()

	return show(ctx, "dyncanvas: "+info.Name, c, s, cfg.FPS)
}
