package dyncanvas

import "math"

// Zoom defaults.
const (
	DefaultZoomMin   = 0.1
	DefaultZoomMax   = 10
	DefaultZoomSpeed = 0.1
)

// ZoomConfig configures canvas zoom. Zero fields take the defaults: level 1,
// range [DefaultZoomMin, DefaultZoomMax] and DefaultZoomSpeed.
type ZoomConfig struct {
	Level float64
	Min   float64
	Max   float64
	// Speed is the fraction one wheel notch adds or removes.
	Speed float64
}

// zoom is the live zoom state of a canvas.
type zoom struct {
	level    float64
	min, max float64
	speed    float64
}

func newZoom(cfg ZoomConfig) *zoom {
	z := &zoom{
		min:   cfg.Min,
		max:   cfg.Max,
		speed: cfg.Speed,
	}
	if z.min <= 0 {
		z.min = DefaultZoomMin
	}
	if z.max <= 0 {
		z.max = DefaultZoomMax
	}
	if z.max < z.min {
		z.min, z.max = z.max, z.min
	}
	if z.speed <= 0 {
		z.speed = DefaultZoomSpeed
	}
	z.level = 1
	if cfg.Level != 0 {
		z.level = cfg.Level
	}
	z.level = z.clamp(z.level)
	return z
}

func (z *zoom) clamp(level float64) float64 {
	if math.IsNaN(level) {
		return z.level
	}
	return math.Min(math.Max(level, z.min), z.max)
}

// Zoom returns the current zoom level. A canvas without zoom reports 1.
func (c *Canvas) Zoom() float64 {
	if c.zoom == nil {
		return 1
	}
	return c.zoom.level
}

// ZoomRange returns the allowed zoom range. ok is false when the canvas was
// created without zoom.
func (c *Canvas) ZoomRange() (lo, hi float64, ok bool) {
	if c.zoom == nil {
		return 1, 1, false
	}
	return c.zoom.min, c.zoom.max, true
}

// ZoomEnabled reports whether the canvas was created with WithZoom.
func (c *Canvas) ZoomEnabled() bool {
	return c.zoom != nil
}

// SetZoom sets the zoom level, clamped to the zoom range. The new level is
// applied on the next Tick. It returns false, changing nothing, on a canvas
// without zoom.
func (c *Canvas) SetZoom(level float64) bool {
	if c.zoom == nil {
		return false
	}
	c.zoom.level = c.zoom.clamp(level)
	return true
}

// ZoomBy multiplies the zoom level by factor, as a pinch gesture does.
func (c *Canvas) ZoomBy(factor float64) bool {
	if c.zoom == nil {
		return false
	}
	return c.SetZoom(c.zoom.level * factor)
}

// Wheel zooms by one wheel step: in when deltaY is negative, out otherwise.
func (c *Canvas) Wheel(deltaY float64) bool {
	if c.zoom == nil {
		return false
	}
	factor := 1 - c.zoom.speed
	if deltaY < 0 {
		factor = 1 + c.zoom.speed
	}
	return c.ZoomBy(factor)
}
