package figuring

import "math"

// doubleDouble is a minimal extended-precision float, carrying a value as
// hi+lo where lo captures the rounding error dropped by hi. It exists for
// exactly one purpose: an orientation predicate precise enough that
// Arc.Orientation never misclassifies a nearly-collinear triple of points
// as turning the wrong way. This is not a general arbitrary-precision
// package; it implements only the add/sub/mul/sign this predicate needs,
// grounded on GEOS's doubledouble.h and CGAlgorithmsDD.cpp.
type doubleDouble struct {
	hi, lo float64
}

func ddFromFloat(x float64) doubleDouble { return doubleDouble{hi: x} }

// twoSum computes a+b as hi+lo with no rounding error (Knuth's algorithm).
func twoSum(a, b float64) (hi, lo float64) {
	hi = a + b
	bb := hi - a
	lo = (a - (hi - bb)) + (b - bb)
	return
}

// twoProduct computes a*b as hi+lo with no rounding error, using an FMA to
// recover the rounding term directly instead of Dekker's split-and-multiply.
func twoProduct(a, b float64) (hi, lo float64) {
	hi = a * b
	lo = math.FMA(a, b, -hi)
	return
}

// quickTwoSum assumes |a| >= |b| and renormalizes a+b into hi+lo.
func quickTwoSum(a, b float64) (hi, lo float64) {
	hi = a + b
	lo = b - (hi - a)
	return
}

func (x doubleDouble) add(y doubleDouble) doubleDouble {
	hi, lo := twoSum(x.hi, y.hi)
	lo += x.lo + y.lo
	hi, lo = quickTwoSum(hi, lo)
	return doubleDouble{hi, lo}
}

func (x doubleDouble) neg() doubleDouble { return doubleDouble{-x.hi, -x.lo} }

func (x doubleDouble) sub(y doubleDouble) doubleDouble { return x.add(y.neg()) }

func (x doubleDouble) mul(y doubleDouble) doubleDouble {
	hi, lo := twoProduct(x.hi, y.hi)
	lo += x.hi*y.lo + x.lo*y.hi
	hi, lo = quickTwoSum(hi, lo)
	return doubleDouble{hi, lo}
}

// sign returns -1, 0, or 1, preferring the high word and falling back to the
// low word only when the high word rounded to exactly zero.
func (x doubleDouble) sign() int {
	v := x.hi
	if v == 0 {
		v = x.lo
	}
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// orientationIndex reports whether q lies to the left (CounterClockwise),
// right (Clockwise), or exactly on (Collinear) the directed line through p1
// and p2, computed in double-double precision so that nearly-collinear
// inputs are classified correctly. This is the predicate spec.md lists as a
// caller-supplied collaborator; this core owns the only caller, so it owns
// the implementation too.
func orientationIndex(p1, p2, q Pt) Orientation {
	p1x, p1y := p1.XY()
	p2x, p2y := p2.XY()
	qx, qy := q.XY()

	dx1 := ddFromFloat(float64(p2x)).sub(ddFromFloat(float64(p1x)))
	dy1 := ddFromFloat(float64(p2y)).sub(ddFromFloat(float64(p1y)))
	dx2 := ddFromFloat(float64(qx)).sub(ddFromFloat(float64(p2x)))
	dy2 := ddFromFloat(float64(qy)).sub(ddFromFloat(float64(p2y)))

	det := dx1.mul(dy2).sub(dy1.mul(dx2))
	switch det.sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}
