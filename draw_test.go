package scorechart

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/midbel/scorechart/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 800
	testHeight = 600
)

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func makeSeries(n int) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = float64(i%7) + float64(i)/10
	}
	return series
}

func drawChart(t *testing.T, series []float64, width, height int) (*Chart, *surface.Recorder) {
	t.Helper()
	ch, err := New(series, color.NRGBA{R: 255, A: 255}, "Score")
	require.NoError(t, err)
	rec := surface.NewRecorder()
	require.NoError(t, ch.Draw(rec, width, height))
	return ch, rec
}

func verticalGridlines(rec *surface.Recorder, st Style) []surface.Op {
	return rec.Filter(surface.KindLine, func(op surface.Op) bool {
		return op.Color == nrgba(st.Grid) && op.Points[0].X == op.Points[1].X
	})
}

func horizontalGridlines(rec *surface.Recorder, st Style) []surface.Op {
	return rec.Filter(surface.KindLine, func(op surface.Op) bool {
		return op.Color == nrgba(st.Grid) && op.Points[0].Y == op.Points[1].Y
	})
}

func TestChart_DrawDensity(t *testing.T) {
	t.Run("dense", func(t *testing.T) {
		ch, rec := drawChart(t, makeSeries(41), testWidth, testHeight)
		lines := rec.Filter(surface.KindPolyline, nil)
		require.Len(t, lines, 1)
		assert.Equal(t, ch.Points(testWidth, testHeight), lines[0].Points)
		assert.Equal(t, ch.GraphStroke, lines[0].Stroke)
		assert.Equal(t, nrgba(ch.Color()), lines[0].Color)
		assert.Zero(t, rec.Count(surface.KindOval))
	})
	t.Run("sparse", func(t *testing.T) {
		ch, rec := drawChart(t, makeSeries(40), testWidth, testHeight)
		assert.Zero(t, rec.Count(surface.KindPolyline))

		ovals := rec.Filter(surface.KindOval, nil)
		require.Len(t, ovals, 40)
		drops := rec.Filter(surface.KindLine, func(op surface.Op) bool {
			return op.Color == nrgba(ch.Color())
		})
		require.Len(t, drops, 40)

		frame := ch.frameFor(testWidth, testHeight)
		for i, pt := range ch.Points(testWidth, testHeight) {
			assert.Equal(t, []image.Point{pt, image.Pt(pt.X, frame.Bottom)}, drops[i].Points)
			assert.Equal(t, ch.GraphStroke, drops[i].Stroke)

			assert.Equal(t, image.Pt(pt.X-2, pt.Y-2), ovals[i].Points[0])
			assert.Equal(t, image.Pt(4, 4), ovals[i].Size)
			assert.Equal(t, 1.0, ovals[i].Stroke)
			assert.Equal(t, nrgba(ch.Marker), ovals[i].Color)
		}
	})
}

func TestChart_DrawGridlines(t *testing.T) {
	tests := []struct {
		count   int
		stride  int
		columns int
	}{
		{count: 100, stride: 6, columns: 17},
		{count: 19, stride: 1, columns: 19},
		{count: 20, stride: 2, columns: 10},
		{count: 41, stride: 3, columns: 14},
		{count: 2, stride: 1, columns: 2},
		{count: 1, stride: 1, columns: 0},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d", tc.count), func(t *testing.T) {
			ch, rec := drawChart(t, makeSeries(tc.count), testWidth, testHeight)
			assert.Equal(t, tc.stride, ch.stride(tc.count))

			var (
				frame = ch.frameFor(testWidth, testHeight)
				cols  = verticalGridlines(rec, ch.Style)
			)
			require.Len(t, cols, tc.columns)
			for i, op := range cols {
				x := i*tc.stride*frame.Width()/(tc.count-1) + frame.Left
				assert.Equal(t, []image.Point{image.Pt(x, frame.Bottom), image.Pt(x, frame.Top)}, op.Points)
			}
			assert.Len(t, horizontalGridlines(rec, ch.Style), ch.YDivisions+1)
		})
	}
}

func TestChart_DrawYAxis(t *testing.T) {
	ch, rec := drawChart(t, []float64{0, 10}, testWidth, testHeight)
	frame := ch.frameFor(testWidth, testHeight)

	texts := rec.Filter(surface.KindText, nil)
	require.Len(t, texts, 11)
	for i, op := range texts {
		want := FormatValue(float64(i))
		assert.Equal(t, want, op.Text)

		w, h := rec.MeasureText(want)
		y := frame.Bottom - (i*frame.Height())/ch.YDivisions
		assert.Equal(t, image.Pt(frame.Left-w-labelGap, y+h/2-3), op.Points[0])
		assert.Equal(t, nrgba(ch.Ink), op.Color)
	}

	ticks := rec.Filter(surface.KindLine, func(op surface.Op) bool {
		return op.Color == nrgba(ch.Ink) && op.Points[0].X == frame.Left && op.Points[1].X == frame.Left+ch.PointWidth
	})
	assert.Len(t, ticks, 11)
}

func TestChart_DrawFrame(t *testing.T) {
	ch, rec := drawChart(t, makeSeries(10), testWidth, testHeight)
	frame := ch.frameFor(testWidth, testHeight)
	assert.Equal(t, Frame{Left: 50, Top: 25, Right: 775, Bottom: 550}, frame)

	ops := rec.Ops()
	require.NotEmpty(t, ops)
	bg := ops[0]
	assert.Equal(t, surface.KindRect, bg.Kind)
	assert.Equal(t, image.Pt(50, 25), bg.Points[0])
	assert.Equal(t, image.Pt(725, 525), bg.Size)
	assert.Equal(t, nrgba(ch.Background), bg.Color)

	axis := rec.Filter(surface.KindLine, func(op surface.Op) bool {
		return op.Color == nrgba(ch.Ink) && op.Points[0] == image.Pt(frame.Left, frame.Bottom)
	})
	require.Len(t, axis, 3)
	assert.Equal(t, image.Pt(frame.Left, frame.Top), axis[1].Points[1])
	assert.Equal(t, image.Pt(frame.Right, frame.Bottom), axis[2].Points[1])
}

func TestChart_DrawSinglePoint(t *testing.T) {
	ch, rec := drawChart(t, []float64{5}, testWidth, testHeight)
	assert.Equal(t, 5.0, ch.Stats().Min)
	assert.Equal(t, 5.0, ch.Stats().Max)

	frame := ch.frameFor(testWidth, testHeight)
	points := ch.Points(testWidth, testHeight)
	require.Len(t, points, 1)
	assert.Equal(t, frame.Left, points[0].X)
	assert.Equal(t, frame.Top+frame.Height()/2, points[0].Y)

	assert.Equal(t, 1, rec.Count(surface.KindOval))
	assert.Empty(t, verticalGridlines(rec, ch.Style))

	texts := rec.Filter(surface.KindText, nil)
	require.Len(t, texts, 11)
	assert.Equal(t, "4.5", texts[0].Text)
	assert.Equal(t, "5.0", texts[5].Text)
	assert.Equal(t, "5.5", texts[10].Text)
}

func TestChart_DrawFlat(t *testing.T) {
	ch, _ := drawChart(t, []float64{3, 3, 3, 3}, testWidth, testHeight)
	frame := ch.frameFor(testWidth, testHeight)
	for _, pt := range ch.Points(testWidth, testHeight) {
		assert.Equal(t, frame.Top+frame.Height()/2, pt.Y)
	}
}

func TestChart_Points(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	series := make([]float64, 30)
	for i := range series {
		series[i] = rng.Float64()*200 - 100
	}
	ch, err := New(series, color.Black, "Score")
	require.NoError(t, err)

	var (
		st     = ch.Stats()
		frame  = ch.frameFor(testWidth, testHeight)
		points = ch.Points(testWidth, testHeight)
	)
	for i, v := range series {
		assert.LessOrEqual(t, st.Min, v)
		assert.GreaterOrEqual(t, st.Max, v)

		assert.GreaterOrEqual(t, points[i].Y, frame.Top)
		assert.LessOrEqual(t, points[i].Y, frame.Bottom)
		if i > 0 {
			assert.Greater(t, points[i].X, points[i-1].X)
		}
	}
	assert.Equal(t, frame.Left, points[0].X)
	assert.Equal(t, frame.Right, points[len(points)-1].X)
}

func TestChart_DrawIdempotent(t *testing.T) {
	ch, err := New(makeSeries(25), color.Black, "Score")
	require.NoError(t, err)

	var (
		fst = surface.NewRecorder()
		snd = surface.NewRecorder()
	)
	before := ch.Series()
	require.NoError(t, ch.Draw(fst, testWidth, testHeight))
	require.NoError(t, ch.Draw(snd, testWidth, testHeight))

	assert.Equal(t, fst.Ops(), snd.Ops())
	assert.Equal(t, before, ch.Series())
	assert.Equal(t, "Average Score: "+FormatValue(ch.Stats().Average), ch.Label())
}

func TestChart_DrawDegenerate(t *testing.T) {
	ch, err := New(makeSeries(50), color.Black, "Score")
	require.NoError(t, err)

	for _, sz := range []image.Point{{X: 1, Y: 1}, {X: 10, Y: 600}, {X: 800, Y: 10}, {X: 75, Y: 75}} {
		rec := surface.NewRecorder()
		require.NoError(t, ch.Draw(rec, sz.X, sz.Y))
		bg := rec.Ops()[0]
		assert.GreaterOrEqual(t, bg.Size.X, 0)
		assert.GreaterOrEqual(t, bg.Size.Y, 0)
	}

	for _, sz := range []image.Point{{X: 0, Y: 10}, {X: 10, Y: 0}, {X: -1, Y: -1}} {
		rec := surface.NewRecorder()
		err := ch.Draw(rec, sz.X, sz.Y)
		assert.ErrorIs(t, err, ErrInvalidSurface)
		assert.Empty(t, rec.Ops())
	}
}

func TestChart_DrawInvalidStyle(t *testing.T) {
	ch, err := New(makeSeries(5), color.Black, "Score")
	require.NoError(t, err)
	ch.YDivisions = 0
	assert.ErrorIs(t, ch.Draw(surface.NewRecorder(), testWidth, testHeight), ErrInvalidStyle)
}

func TestChart_DrawSquarePoints(t *testing.T) {
	ch, err := New(makeSeries(5), color.Black, "Score")
	require.NoError(t, err)
	ch.Point = GetSquare

	rec := surface.NewRecorder()
	require.NoError(t, ch.Draw(rec, testWidth, testHeight))
	assert.Zero(t, rec.Count(surface.KindOval))
	assert.Len(t, rec.Filter(surface.KindRect, func(op surface.Op) bool {
		return op.Size == image.Pt(ch.PointWidth, ch.PointWidth)
	}), 5)
}

func TestNumberAxis_WithoutData(t *testing.T) {
	var (
		st   = DefaultStyle()
		f    = st.frameFor(testWidth, testHeight)
		rec  = surface.NewRecorder()
		axis = NumberAxis{
			Ticks:  st.YDivisions,
			Domain: NumberDomain(0, 1),
		}
	)
	axis.Render(rec, st, f)
	assert.Equal(t, st.YDivisions+1, rec.Count(surface.KindLine))
	assert.Zero(t, rec.Count(surface.KindText))
}

func TestChart_DrawNegativeLabels(t *testing.T) {
	ch, rec := drawChart(t, []float64{-1.005, 0}, testWidth, testHeight)
	assert.Equal(t, "Average Score: -0.51", ch.Label())

	texts := rec.Filter(surface.KindText, nil)
	require.Len(t, texts, 11)
	assert.Equal(t, "-1.0", texts[0].Text)
	assert.NotEqual(t, FormatValue(Floor(-1.005)), texts[0].Text)
	assert.Equal(t, "0.0", texts[10].Text)
}
