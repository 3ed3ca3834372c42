package scorechart

import (
	"fmt"
	"image"
)

// PointFunc draws a marker of the given size centered on pos.
type PointFunc func(s Surface, pos image.Point, size int)

func GetCircle(s Surface, pos image.Point, size int) {
	half := size / 2
	s.FillOval(pos.X-half, pos.Y-half, size, size)
}

func GetSquare(s Surface, pos image.Point, size int) {
	half := size / 2
	s.FillRect(pos.X-half, pos.Y-half, size, size)
}

func GetPointFunc(name string) (PointFunc, error) {
	switch name {
	case "", "circle":
		return GetCircle, nil
	case "square":
		return GetSquare, nil
	default:
		return nil, fmt.Errorf("%w: %s: unknown point shape", ErrInvalidStyle, name)
	}
}
