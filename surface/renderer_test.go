package surface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
)

func drawSample(r *Renderer) {
	r.SetColor(color.White)
	r.FillRect(0, 0, 120, 80)
	r.SetColor(color.Black)
	r.DrawLine(10, 70, 110, 70)
	r.SetStrokeWidth(3)
	r.DrawPolyline([]image.Point{{X: 10, Y: 10}, {X: 60, Y: 60}, {X: 110, Y: 20}})
	r.SetStrokeWidth(1)
	r.FillOval(58, 58, 4, 4)
	r.DrawText("2.5", 2, 40)
}

func TestRenderer_PNG(t *testing.T) {
	r, err := NewRenderer(chart.PNG, 120, 80)
	require.NoError(t, err)
	drawSample(r)

	w, h := r.MeasureText("2.5")
	assert.Positive(t, w)
	assert.Positive(t, h)

	var buf bytes.Buffer
	require.NoError(t, r.Save(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 80), img.Bounds())
}

func TestRenderer_SVG(t *testing.T) {
	r, err := NewRenderer(chart.SVG, 120, 80)
	require.NoError(t, err)
	drawSample(r)

	var buf bytes.Buffer
	require.NoError(t, r.Save(&buf))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "2.5")
}
