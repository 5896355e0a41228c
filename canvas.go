package dyncanvas

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"github.com/gogpu/dyncanvas/raster"
)

// Canvas composites an ordered list of layers onto one target surface.
// Each Tick clears the target and draws every layer's buffer in order, so
// later layers appear on top.
//
// A Canvas is not safe for concurrent use: Tick, layer edits and zoom
// changes must come from one goroutine.
type Canvas struct {
	surface *raster.Surface
	ctx     *raster.Context
	layers  []Layer

	zoom *zoom
	// applied is the zoom level the target transform was built for;
	// zero forces a rebuild on the next Tick.
	applied float64

	background color.Color
	onError    func(Layer, error)
	frame      uint64
}

// New creates a canvas with a target surface of the given size.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := raster.NewSurface(width, height)
	c := &Canvas{
		surface:    s,
		ctx:        raster.NewContext(0, 0, raster.WithSurface(s)),
		background: o.background,
		onError:    o.onError,
	}
	if o.zoom != nil {
		c.zoom = newZoom(*o.zoom)
	}
	return c
}

// Width returns the width of the target surface.
func (c *Canvas) Width() int { return c.surface.Width() }

// Height returns the height of the target surface.
func (c *Canvas) Height() int { return c.surface.Height() }

// Surface returns the target surface. It holds the last completed frame
// between ticks.
func (c *Canvas) Surface() *raster.Surface { return c.surface }

// Frame returns the number of completed ticks.
func (c *Canvas) Frame() uint64 { return c.frame }

// Add appends layers on top of the existing ones.
func (c *Canvas) Add(layers ...Layer) {
	for _, l := range layers {
		if l != nil {
			c.layers = append(c.layers, l)
		}
	}
}

// Insert puts l at index i, clamped to [0, Len()]. Index 0 is the bottom.
func (c *Canvas) Insert(i int, l Layer) {
	if l == nil {
		return
	}
	i = min(max(i, 0), len(c.layers))
	c.layers = slices.Insert(c.layers, i, l)
}

// Remove removes the first occurrence of l and reports whether it was found.
func (c *Canvas) Remove(l Layer) bool {
	i := c.index(l)
	if i < 0 {
		return false
	}
	c.layers = slices.Delete(c.layers, i, i+1)
	return true
}

// Replace swaps old for l in place and reports whether old was found.
func (c *Canvas) Replace(old, l Layer) bool {
	i := c.index(old)
	if i < 0 || l == nil {
		return false
	}
	c.layers[i] = l
	return true
}

// Layers returns a copy of the layer list, bottom first.
func (c *Canvas) Layers() []Layer {
	return slices.Clone(c.layers)
}

// Len returns the number of layers.
func (c *Canvas) Len() int {
	return len(c.layers)
}

func (c *Canvas) index(l Layer) int {
	for i, x := range c.layers {
		if x == l {
			return i
		}
	}
	return -1
}

// Resize resizes the target and every layer implementing Resizer. The zoom
// transform is rebuilt for the new center on the next Tick.
func (c *Canvas) Resize(width, height int) {
	c.surface.Resize(width, height)
	for _, l := range c.layers {
		if r, ok := l.(Resizer); ok {
			r.Resize(width, height)
		}
	}
	c.applied = 0
}

// Tick draws one frame. A layer whose Render fails is skipped and reported
// to the error handler; the other layers are still drawn. The returned error
// joins every layer failure of this frame.
func (c *Canvas) Tick() error {
	c.surface.Clear()
	if c.background != nil {
		c.surface.Fill(c.background)
	}

	if c.zoom != nil && c.zoom.level != c.applied {
		c.applyZoom()
	}

	var errs []error
	for i, l := range c.layers {
		buf, err := l.Render()
		if err != nil {
			err = fmt.Errorf("dyncanvas: layer %d: %w", i, err)
			c.report(l, err)
			errs = append(errs, err)
			continue
		}
		if buf != nil {
			c.ctx.DrawSurface(buf, 0, 0)
		}
	}
	c.frame++
	return errors.Join(errs...)
}

// applyZoom resets the target transform to a uniform scale about the
// center of the target.
func (c *Canvas) applyZoom() {
	z := c.zoom.level
	cx := float64(c.surface.Width()) / 2
	cy := float64(c.surface.Height()) / 2
	c.ctx.Identity()
	c.ctx.Translate(cx, cy)
	c.ctx.Scale(z, z)
	c.ctx.Translate(-cx, -cy)
	c.applied = z
	Logger().Debug("dyncanvas: zoom applied", "zoom", z, "frame", c.frame)
}

func (c *Canvas) report(l Layer, err error) {
	Logger().Warn("dyncanvas: layer failed", slog.Any("layer", l), "frame", c.frame, "err", err)
	if c.onError != nil {
		c.onError(l, err)
	}
}

// Run ticks once per scheduler signal until ctx is done, then returns
// ctx.Err(). Frame errors are reported through the error handler and the
// log; they do not stop the loop. A scheduler error other than the
// context's own ends the loop and is returned.
func (c *Canvas) Run(ctx context.Context, s Scheduler) error {
	for {
		if err := s.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("dyncanvas: scheduler: %w", err)
		}
		// Layer failures were already reported by Tick.
		_ = c.Tick()
	}
}
