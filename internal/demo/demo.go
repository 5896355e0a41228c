// Package demo builds the animated scenes shown by the demo commands.
//
// A scene adds shapes to a canvas and moves them a little on every frame.
// Scenes are deterministic in the frame number, so headless runs produce the
// same images every time.
package demo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/dyncanvas"
	"github.com/gogpu/dyncanvas/shape"
)

// Options configure scene construction.
type Options struct {
	// Loader loads image sources. Nil selects Loader("").
	Loader shape.Loader
}

// Info describes a registered scene.
type Info struct {
	Name        string
	Description string
	// Zoom reports whether the scene drives the canvas zoom; commands
	// enable zoom for it.
	Zoom bool
}

type buildFunc func(b *builder) (func(frame uint64), error)

type entry struct {
	info  Info
	build buildFunc
}

var registry = map[string]entry{}

func register(info Info, build buildFunc) {
	registry[info.Name] = entry{info: info, build: build}
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns the description of the named scene.
func Describe(name string) (Info, bool) {
	e, ok := registry[name]
	return e.info, ok
}

// ErrUnknownScene is returned by Build for a name that is not registered.
var ErrUnknownScene = errors.New("demo: unknown scene")

// Scene is a built scene.
type Scene struct {
	info   Info
	step   func(frame uint64)
	images []*shape.Image
	loads  sync.WaitGroup
}

// Build adds the named scene's shapes to c.
func Build(name string, c *dyncanvas.Canvas, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	if opts.Loader == nil {
		opts.Loader = Loader("")
	}
	s := &Scene{info: e.info}
	b := &builder{c: c, opts: opts, scene: s}
	step, err := e.build(b)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("demo: build %s: %w", name, err)
	}
	s.step = step
	dyncanvas.Logger().Info("demo: scene built", "scene", name, "layers", c.Len())
	return s, nil
}

// Info returns the scene description.
func (s *Scene) Info() Info { return s.info }

// Step advances the scene to frame. Call it before the canvas tick.
func (s *Scene) Step(frame uint64) {
	if s.step != nil {
		s.step(frame)
	}
}

// WaitLoaded blocks until every image of the scene has finished its first
// load, successfully or not, or ctx is done.
func (s *Scene) WaitLoaded(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.loads.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops image loads still in flight.
func (s *Scene) Close() error {
	for _, img := range s.images {
		_ = img.Close()
	}
	return nil
}

// builder creates shapes sized to the canvas and adds them to it.
type builder struct {
	c     *dyncanvas.Canvas
	opts  Options
	scene *Scene
}

func (b *builder) w() float64 { return float64(b.c.Width()) }
func (b *builder) h() float64 { return float64(b.c.Height()) }

func (b *builder) rect(cfg shape.RectangleConfig) (*shape.Rectangle, error) {
	r, err := shape.NewRectangle(b.c, cfg)
	if err != nil {
		return nil, err
	}
	b.c.Add(r)
	return r, nil
}

func (b *builder) ellipse(cfg shape.EllipseConfig) (*shape.Ellipse, error) {
	e, err := shape.NewEllipse(b.c, cfg)
	if err != nil {
		return nil, err
	}
	b.c.Add(e)
	return e, nil
}

func (b *builder) circle(cfg shape.CircleConfig) (*shape.Circle, error) {
	c, err := shape.NewCircle(b.c, cfg)
	if err != nil {
		return nil, err
	}
	b.c.Add(c)
	return c, nil
}

func (b *builder) square(cfg shape.SquareConfig) (*shape.Square, error) {
	s, err := shape.NewSquare(b.c, cfg)
	if err != nil {
		return nil, err
	}
	b.c.Add(s)
	return s, nil
}

func (b *builder) path(cfg shape.PathConfig) (*shape.Path, error) {
	p, err := shape.NewPath(b.c, cfg)
	if err != nil {
		return nil, err
	}
	b.c.Add(p)
	return p, nil
}

// image adds an image shape and tracks its first load for WaitLoaded.
func (b *builder) image(cfg shape.ImageConfig) (*shape.Image, error) {
	var once sync.Once
	b.scene.loads.Add(1)
	done := func() { once.Do(b.scene.loads.Done) }

	onLoad, onError := cfg.OnLoad, cfg.OnError
	cfg.OnLoad = func(w, h int) {
		if onLoad != nil {
			onLoad(w, h)
		}
		done()
	}
	cfg.OnError = func(err error) {
		if onError != nil {
			onError(err)
		}
		done()
	}
	if cfg.Loader == nil {
		cfg.Loader = b.opts.Loader
	}
	img, err := shape.NewImage(b.c, cfg)
	if err != nil {
		done()
		return nil, err
	}
	if cfg.Src == "" {
		done()
	}
	b.scene.images = append(b.scene.images, img)
	b.c.Add(img)
	return img, nil
}
