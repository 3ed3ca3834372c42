package surface

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontSize is the nominal size of labels on vector surfaces.
const FontSize = 12.0

var face font.Face = basicfont.Face7x13

// measure returns the size of str in the fixed 7x13 face shared by the
// surfaces that have no font engine of their own.
func measure(str string) (int, int) {
	w := font.MeasureString(face, str).Ceil()
	return w, face.Metrics().Height.Ceil()
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
