package scorechart

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// GetPalette returns a palette by name.
func GetPalette(name string) (Palette, error) {
	switch name {
	case "", "category10":
		return Category10, nil
	case "tableau10":
		return Tableau10, nil
	default:
		return nil, fmt.Errorf("%w: %s: unknown palette", ErrInvalidStyle, name)
	}
}

// Color returns the i-th color of the palette, wrapping around.
func (p Palette) Color(i int) color.Color {
	if len(p) == 0 {
		return color.Black
	}
	if i < 0 {
		i = -i
	}
	c, _ := ParseColor(p[i%len(p)])
	return c
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa strings. The leading # is
// optional.
func ParseColor(str string) (color.NRGBA, error) {
	str = strings.TrimPrefix(strings.TrimSpace(str), "#")
	if len(str) == 3 {
		str = string([]byte{str[0], str[0], str[1], str[1], str[2], str[2]})
	}
	if len(str) == 6 {
		str += "ff"
	}
	if len(str) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidStyle, str)
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidStyle, str)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// HexColor is the inverse of ParseColor. The alpha channel is only written
// when the color is not opaque.
func HexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
