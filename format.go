package scorechart

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders v the way scores have always been displayed: the
// shortest decimal representation with at least one fractional digit
// ("2.0", "2.35") and scientific notation outside [1e-3, 1e7) ("1.0E7").
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-3 || a >= 1e7) {
		return formatScientific(v)
	}
	str := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}
	return str
}

func formatScientific(v float64) string {
	str := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(str, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return str
	}
	return mant + "E" + strconv.Itoa(e)
}
