package scorechart

import (
	"image"
	"image/color"
)

// Surface is the 2D drawing capability a chart is painted on. Coordinates
// are in pixels with the origin at the top left corner.
type Surface interface {
	SetColor(color.Color)
	SetStrokeWidth(float64)
	FillRect(x, y, w, h int)
	DrawLine(x0, y0, x1, y1 int)
	DrawPolyline([]image.Point)
	FillOval(x, y, w, h int)
	// DrawText draws str with its baseline starting at (x, y).
	DrawText(str string, x, y int)
	MeasureText(str string) (int, int)
}

// Host displays a chart. It is told when the chart must be painted again and
// when the summary label changes.
type Host interface {
	Repaint()
	SetLabel(string)
}
