package scorechart

// minSpan is the value span substituted for a flat domain so that the scale
// stays finite.
const minSpan = 1.0

// Domain is a span of data values. From may be greater than To, in which case
// the scale runs backwards (used for the Y axis where larger values plot
// higher on the surface).
type Domain struct {
	From float64
	To   float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		From: f,
		To:   t,
	}
}

func (d Domain) Diff(v float64) float64 {
	return v - d.From
}

func (d Domain) Extend() float64 {
	return d.To - d.From
}

func (d Domain) Flat() bool {
	return d.From == d.To
}

func (d Domain) Reverse() Domain {
	return Domain{
		From: d.To,
		To:   d.From,
	}
}

// Widen returns a domain of minSpan centered on the original one when d is
// flat. Other domains are returned unchanged.
func (d Domain) Widen() Domain {
	if !d.Flat() {
		return d
	}
	half := minSpan / 2
	if d.From > d.To {
		half = -half
	}
	return Domain{
		From: d.From - half,
		To:   d.To + half,
	}
}

// Values returns c+1 evenly spaced values from From to To inclusive.
func (d Domain) Values(c int) []float64 {
	if c <= 0 {
		return []float64{d.From}
	}
	all := make([]float64, 0, c+1)
	for i := 0; i <= c; i++ {
		all = append(all, d.From+d.Extend()*(float64(i)/float64(c)))
	}
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// Scaler maps a Domain onto a pixel Range.
type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return s.Diff(v) * s.Space()
}

// Space is the number of pixels per unit of the domain. A flat domain has no
// space at all.
func (s Scaler) Space() float64 {
	if s.Flat() {
		return 0
	}
	return s.Len() / s.Extend()
}
