package scorechart

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidSurface = errors.New("invalid surface")
	ErrInvalidStyle   = errors.New("invalid style")
)

type SurfaceError struct {
	Width  int
	Height int
}

func (e SurfaceError) Error() string {
	return fmt.Sprintf("surface %dx%d: width and height must be positive", e.Width, e.Height)
}

func (e SurfaceError) Unwrap() error {
	return ErrInvalidSurface
}
