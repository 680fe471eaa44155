package figuring

import "math"

// Orientation is the winding direction of a circular arc's three control
// points, matching the sign of orientationIndex(p0, p1, p2): negative turns
// clockwise, positive turns counter-clockwise, zero is collinear.
type Orientation int8

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Collinear"
	}
}

// NormalizePi normalizes r into (-π, π], the range atan2 itself returns.
// This differs deliberately from Radians.Normalize, which targets [0, 2π):
// arc angle math is phrased in terms of atan2, so arithmetic on theta values
// stays in atan2's own range instead of being shifted into the teacher's
// conventional one.
func (r Radians) NormalizePi() Radians {
	const twoPi = 2 * math.Pi
	n := math.Mod(float64(r), twoPi)
	if n <= -math.Pi {
		n += twoPi
	}
	if n > math.Pi {
		n -= twoPi
	}
	return Radians(n)
}

// angleOf returns the angle of p as seen from center, atan2-style.
func angleOf(p, center Pt) Radians {
	px, py := p.XY()
	cx, cy := center.XY()
	return Radians(math.Atan2(float64(py-cy), float64(px-cx))).NormalizePi()
}

// signedAngularDifference returns the signed rotation from `from` to `to`
// travelling in direction o: a value in [0, 2π) for CounterClockwise, or in
// (-2π, 0] for Clockwise. Collinear arcs have no rotation direction and
// always return 0.
func signedAngularDifference(from, to Radians, o Orientation) Radians {
	const twoPi = 2 * math.Pi
	d := float64(to) - float64(from)
	switch o {
	case CounterClockwise:
		d = math.Mod(d, twoPi)
		if d < 0 {
			d += twoPi
		}
	case Clockwise:
		d = math.Mod(d, twoPi)
		if d > 0 {
			d -= twoPi
		}
	default:
		d = 0
	}
	return Radians(d)
}
