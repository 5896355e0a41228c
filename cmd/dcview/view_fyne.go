//go:build fyne

package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/dyncanvas"
	"github.com/gogpu/dyncanvas/internal/demo"
)

// view shows the canvas target and turns wheel events into zoom steps.
type view struct {
	widget.BaseWidget
	img *canvas.Image
	c   *dyncanvas.Canvas
}

func newView(c *dyncanvas.Canvas) *view {
	img := canvas.NewImageFromImage(c.Surface().Image())
	img.FillMode = canvas.ImageFillOriginal
	img.ScaleMode = canvas.ImageScalePixels
	v := &view{img: img, c: c}
	v.ExtendBaseWidget(v)
	return v
}

func (v *view) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.img)
}

// Scrolled zooms in when the wheel turns up. fyne reports up as positive
// DY, the canvas expects it negative.
func (v *view) Scrolled(ev *fyne.ScrollEvent) {
	v.c.Wheel(-float64(ev.Scrolled.DY))
}

// show runs the scene in a window until it is closed. Every canvas access
// happens on the fyne main goroutine: the frame loop hands each frame over
// with fyne.DoAndWait.
func show(ctx context.Context, title string, c *dyncanvas.Canvas, s *demo.Scene, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := app.New()
	w := a.NewWindow(title)
	v := newView(c)
	w.SetContent(v)
	w.Resize(fyne.NewSize(float32(c.Width()), float32(c.Height())))
	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case '+', '=':
			c.ZoomBy(1.25)
		case '-':
			c.ZoomBy(0.8)
		case '0':
			c.SetZoom(1)
		}
	})
	w.SetOnClosed(cancel)

	go func() {
		sched := dyncanvas.NewTickerScheduler(fps)
		defer sched.Stop()
		for frame := uint64(0); ; frame++ {
			if err := sched.Wait(ctx); err != nil {
				return
			}
			fyne.DoAndWait(func() {
				s.Step(frame)
				if err := c.Tick(); err != nil {
					dyncanvas.Logger().Warn("frame incomplete", "frame", frame, "err", err)
				}
				v.img.Image = c.Surface().Image()
				v.img.Refresh()
			})
		}
	}()

	w.ShowAndRun()
	return nil
}
