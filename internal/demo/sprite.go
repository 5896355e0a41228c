package demo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/gogpu/dyncanvas/raster"
	"github.com/gogpu/dyncanvas/shape"
)

// SpritePrefix marks a source drawn in memory instead of loaded, as in
// "sprite:car".
const SpritePrefix = "sprite:"

var spriteColors = map[string]string{
	"car":   "#d62828",
	"rival": "#1d4e89",
	"truck": "#f77f00",
}

// Sprite draws the named car sprite, 40x80 pixels pointing up.
func Sprite(name string) (image.Image, error) {
	hex, ok := spriteColors[name]
	if !ok {
		return nil, fmt.Errorf("demo: unknown sprite %q", name)
	}
	body := raster.MustParseColor(hex)

	dc := raster.NewContext(40, 80)
	dc.SetFillColor(color.Black)
	for _, y := range []float64{10, 56} {
		if err := dc.FillRect(0, y, 6, 16); err != nil {
			return nil, err
		}
		if err := dc.FillRect(34, y, 6, 16); err != nil {
			return nil, err
		}
	}

	dc.SetFillColor(body)
	if err := dc.FillRect(4, 2, 32, 76); err != nil {
		return nil, err
	}
	dc.SetFillColor(raster.MustParseColor("#a8dadc"))
	if err := dc.FillRect(8, 18, 24, 12); err != nil {
		return nil, err
	}
	if err := dc.FillRect(8, 56, 24, 8); err != nil {
		return nil, err
	}
	return dc.Surface().Image(), nil
}

// Loader serves sprites from memory and everything else through
// shape.DefaultLoader, with relative file names resolved against assets.
// Results are cached, so scenes sharing a source decode it once.
func Loader(assets string) shape.Loader {
	files := shape.FileLoader{Root: assets}
	return shape.NewCachingLoader(shape.LoaderFunc(func(ctx context.Context, src string) (image.Image, error) {
		if name, ok := strings.CutPrefix(src, SpritePrefix); ok {
			return Sprite(name)
		}
		if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			return shape.DefaultLoader.Load(ctx, src)
		}
		return files.Load(ctx, src)
	}), 64)
}
