package shape

import (
	"context"
	"errors"
	"image"
	"sync/atomic"

	"github.com/gogpu/dyncanvas"
	"github.com/gogpu/dyncanvas/raster"
)

// ImageConfig configures an Image.
type ImageConfig struct {
	Config
	// Src is loaded right away when not empty.
	Src string
	// Loader defaults to DefaultLoader.
	Loader Loader
	// OnLoad and OnError run on the loader goroutine when a load that is
	// still current finishes.
	OnLoad  func(width, height int)
	OnError func(err error)
}

// loadResult is handed from a loader goroutine to Render.
type loadResult struct {
	gen uint64
	img image.Image
	err error
}

// Image draws a bitmap scaled into its bounding box. Bitmaps are loaded in
// the background; the next Render after a load finishes picks the bitmap up.
// A zero width or height then takes the bitmap's natural size.
type Image struct {
	Base

	src     string
	loader  Loader
	onLoad  func(width, height int)
	onError func(err error)
	bitmap  image.Image

	// gen identifies the current load. Results from older loads are
	// dropped.
	gen     atomic.Uint64
	pending atomic.Pointer[loadResult]
	lastErr atomic.Pointer[loadResult]
	cancel  context.CancelFunc
}

// NewImage creates an image shape whose buffer matches ref and starts
// loading cfg.Src.
func NewImage(ref Sizer, cfg ImageConfig) (*Image, error) {
	b, err := newBase("image", ref, cfg.Config)
	if err != nil {
		return nil, err
	}
	img := &Image{
		Base:    b,
		loader:  cfg.Loader,
		onLoad:  cfg.OnLoad,
		onError: cfg.OnError,
	}
	if img.loader == nil {
		img.loader = DefaultLoader
	}
	img.draw = img.drawImage
	img.prepare = img.adopt
	if cfg.Src != "" {
		img.SetSrc(cfg.Src)
	}
	return img, nil
}

// Src returns the current image source.
func (img *Image) Src() string { return img.src }

// SetSrc starts loading src and cancels any load in flight. An empty src
// releases the bitmap and clears the buffer. Setting the current source
// again does nothing unless its last load failed.
func (img *Image) SetSrc(src string) {
	if src == img.src && src != "" && img.Err() == nil {
		return
	}
	img.stop()
	gen := img.gen.Add(1)
	img.src = src
	img.lastErr.Store(nil)
	img.pending.Store(nil)

	if src == "" {
		img.bitmap = nil
		if img.buf != nil {
			img.buf.Clear()
		}
		img.dirty = true
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	img.cancel = cancel
	go img.load(ctx, gen, src)
}

// Bitmap returns the bitmap being drawn, nil before the first load
// completes.
func (img *Image) Bitmap() image.Image { return img.bitmap }

// Err returns the error of the last load of the current source, or nil.
// The result is a *LoadError.
func (img *Image) Err() error {
	if r := img.lastErr.Load(); r != nil && r.gen == img.gen.Load() {
		return r.err
	}
	return nil
}

// Close cancels a load in flight. Results still arriving are dropped.
func (img *Image) Close() error {
	img.stop()
	img.gen.Add(1)
	return nil
}

func (img *Image) stop() {
	if img.cancel != nil {
		img.cancel()
		img.cancel = nil
	}
}

// load runs on its own goroutine.
func (img *Image) load(ctx context.Context, gen uint64, src string) {
	log := dyncanvas.Logger()
	bm, err := img.loader.Load(ctx, src)
	if img.gen.Load() != gen || ctx.Err() != nil {
		log.Debug("shape: stale image load dropped", "shape", &img.Base, "src", src)
		return
	}
	if err == nil && bm == nil {
		err = errors.New("loader returned no image")
	}
	if err != nil {
		le := &LoadError{Src: src, Err: err}
		r := &loadResult{gen: gen, err: le}
		img.lastErr.Store(r)
		img.pending.Store(r)
		log.Warn("shape: image load failed", "shape", &img.Base, "src", src, "err", err)
		if img.onError != nil {
			img.onError(le)
		}
		return
	}
	img.pending.Store(&loadResult{gen: gen, img: bm})
	b := bm.Bounds()
	log.Info("shape: image loaded", "shape", &img.Base, "src", src, "width", b.Dx(), "height", b.Dy())
	if img.onLoad != nil {
		img.onLoad(b.Dx(), b.Dy())
	}
}

// adopt takes over a finished load. It runs on the rendering goroutine.
func (img *Image) adopt() {
	r := img.pending.Swap(nil)
	if r == nil || r.gen != img.gen.Load() {
		return
	}
	if r.err != nil {
		img.bitmap = nil
		img.dirty = true
		return
	}
	img.bitmap = r.img
	b := r.img.Bounds()
	if img.width == 0 {
		img.SetWidth(float64(b.Dx()))
	}
	if img.height == 0 {
		img.SetHeight(float64(b.Dy()))
	}
	img.dirty = true
}

func (img *Image) drawImage(ctx *raster.Context) error {
	if img.bitmap == nil {
		return nil
	}
	tl := img.topLeft()
	ctx.DrawImage(img.bitmap, tl.X, tl.Y, img.width, img.height)
	return nil
}
