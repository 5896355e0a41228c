package shape

import (
	"errors"
	"fmt"
)

// Errors returned by shapes.
var (
	// ErrInvalidOrigin is returned for an origin token that is neither an
	// anchor name nor an integer.
	ErrInvalidOrigin = errors.New("shape: invalid origin")

	// ErrSurfaceUnavailable is returned by Render when the shape has no
	// private buffer, which happens when it was created without a
	// reference surface.
	ErrSurfaceUnavailable = errors.New("shape: surface unavailable")

	// ErrInvalidDimension is returned by constructors when a required size
	// is missing or not positive.
	ErrInvalidDimension = errors.New("shape: invalid dimension")

	// ErrImageLoad matches every *LoadError with errors.Is.
	ErrImageLoad = errors.New("shape: image load failed")
)

// LoadError reports a failed image load.
type LoadError struct {
	Src string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("shape: load image %q: %v", e.Src, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrImageLoad) true for every LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrImageLoad }
