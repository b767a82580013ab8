package motion

import (
	"math"
	"strconv"
)

// Easing is a cubic-bezier timing function anchored at (0,0) and (1,1).
// Name is set for the CSS keywords; curves built with Cubic render as cubic-bezier().
type Easing struct {
	Name           string
	X1, Y1, X2, Y2 float64
}

var (
	Ease    = Easing{Name: "ease", X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}
	EaseOut = Easing{Name: "ease-out", X1: 0, Y1: 0, X2: 0.58, Y2: 1}

	// BackOut pops slightly past the target, used for the line chart markers.
	BackOut = Cubic(0.175, 0.885, 0.32, 1.275)

	// Overshoot makes bars bounce past full height before settling.
	Overshoot = Cubic(0.34, 1.56, 0.64, 1)
)

// Cubic builds an unnamed cubic-bezier easing.
func Cubic(x1, y1, x2, y2 float64) Easing {
	return Easing{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// CSS renders the easing as a CSS timing function.
func (e Easing) CSS() string {
	if e.Name != "" {
		return e.Name
	}
	return "cubic-bezier(" + f(e.X1) + ", " + f(e.Y1) + ", " + f(e.X2) + ", " + f(e.Y2) + ")"
}

// At returns the eased progress for linear progress t in [0,1].
// Values outside [0,1] are clamped. The result may exceed 1 for overshooting curves.
func (e Easing) At(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return bezier(e.solveX(t), e.Y1, e.Y2)
}

// solveX finds the curve parameter whose x coordinate equals t.
func (e Easing) solveX(t float64) float64 {
	const epsilon = 1e-7

	s := t
	for i := 0; i < 8; i++ {
		x := bezier(s, e.X1, e.X2) - t
		if math.Abs(x) < epsilon {
			return s
		}
		d := bezierSlope(s, e.X1, e.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
	}

	// Newton failed to converge; x(s) is monotonic on [0,1] so bisect.
	lo, hi := 0.0, 1.0
	s = t
	for lo < hi {
		x := bezier(s, e.X1, e.X2)
		if math.Abs(x-t) < epsilon {
			return s
		}
		if t > x {
			lo = s
		} else {
			hi = s
		}
		next := (lo + hi) / 2
		if next == s {
			break
		}
		s = next
	}
	return s
}

func bezier(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
