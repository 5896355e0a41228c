// Command dcdemo renders frames of a demo scene to PNG files without a
// window.
//
// Settings come from the built-in defaults, an optional YAML file given with
// -config, DCDEMO_* environment variables and finally the flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gogpu/dyncanvas"
	"github.com/gogpu/dyncanvas/internal/config"
	"github.com/gogpu/dyncanvas/internal/demo"
	"github.com/gogpu/dyncanvas/internal/logging"
	"github.com/gogpu/dyncanvas/raster"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "dcdemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dcdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file")
		list       = fs.Bool("list", false, "list scenes and exit")
		scene      = fs.String("scene", "", "scene to render")
		width      = fs.Int("width", 0, "frame width")
		height     = fs.Int("height", 0, "frame height")
		frames     = fs.Int("frames", 0, "number of frames to render")
		output     = fs.String("output", "", "output directory")
		zoom       = fs.Float64("zoom", 0, "initial zoom level; enables zoom")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, name := range demo.Names() {
			info, _ := demo.Describe(name)
			fmt.Fprintf(stdout, "%-8s %s\n", name, info.Description)
		}
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *scene
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "frames":
			cfg.Frames = *frames
		case "output":
			cfg.Output = *output
		case "zoom":
			cfg.Zoom.Enabled = true
			cfg.Zoom.Level = *zoom
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logging.New(stderr, cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()
	dyncanvas.SetLogger(log)
	defer dyncanvas.SetLogger(nil)

	info, ok := demo.Describe(cfg.Scene)
	if !ok {
		return fmt.Errorf("unknown scene %q (try -list)", cfg.Scene)
	}
	opts, err := canvasOptions(cfg, info)
	if err != nil {
		return err
	}
	c := dyncanvas.New(cfg.Width, cfg.Height, opts...)

	s, err := demo.Build(cfg.Scene, c, demo.Options{Loader: demo.Loader(cfg.Assets)})
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()

	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = s.WaitLoaded(loadCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("waiting for images: %w", err)
	}

	if err := os.MkdirAll(cfg.Output, 0o750); err != nil {
		return err
	}
	start := time.Now()
	for frame := range uint64(cfg.Frames) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Step(frame)
		if err := c.Tick(); err != nil {
			log.Warn("frame incomplete", "frame", frame, "err", err)
		}
		name := filepath.Join(cfg.Output, fmt.Sprintf("%s_%04d.png", cfg.Scene, frame))
		if err := c.Surface().SavePNG(name); err != nil {
			return err
		}
		log.Debug("frame written", "file", name)
	}
	log.Info("done", "scene", cfg.Scene, "frames", cfg.Frames, "dir", cfg.Output, "elapsed", time.Since(start))
	return nil
}

// canvasOptions turns the settings into canvas options. Zoom is on when the
// configuration enables it or the scene drives it.
func canvasOptions(cfg config.Config, info demo.Info) ([]dyncanvas.Option, error) {
	var opts []dyncanvas.Option
	if cfg.Background != "" {
		bg, err := raster.ParseColor(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		opts = append(opts, dyncanvas.WithBackground(bg))
	}
	if cfg.Zoom.Enabled || info.Zoom {
		opts = append(opts, dyncanvas.WithZoom(dyncanvas.ZoomConfig{
			Level: cfg.Zoom.Level,
			Min:   cfg.Zoom.Min,
			Max:   cfg.Zoom.Max,
			Speed: cfg.Zoom.Speed,
		}))
	}
	opts = append(opts, dyncanvas.WithErrorHandler(func(l dyncanvas.Layer, err error) {
		dyncanvas.Logger().Error("layer failed", "layer", l, "err", err)
	}))
	return opts, nil
}
