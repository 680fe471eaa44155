package figuring

import "math"

// Arc is a reference to three consecutive coordinates in a CoordinateSequence
// that define a circular arc: a start point (P0), an interior waypoint (P1)
// used only to pin down which circle and which of its two arcs is meant, and
// an end point (P2). Center, radius, and orientation are ordinary derived
// properties recomputed from the three points on every call; a caller that
// already knows them (the noder, splitting a parent arc) can supply them
// directly through NewArcKnown instead, and Arc trusts them without
// re-deriving. This core deliberately skips the lazy-memoization the GEOS
// CircularArc this is grounded on performs internally (mutable cache fields
// on an otherwise-value type): recomputing center/radius/orientation from
// three atan2/Sqrt calls is cheap, and a plain value type avoids any
// surprises from copying an Arc around.
type Arc struct {
	seq *CoordinateSequence
	pos int

	known       bool
	center      Pt
	radius      Length
	orientation Orientation
}

// NewArc returns the Arc backed by the three coordinates at seq[pos],
// seq[pos+1], seq[pos+2]. Center, radius, and orientation are derived from
// those coordinates on demand.
func NewArc(seq *CoordinateSequence, pos int) Arc {
	return Arc{seq: seq, pos: pos}
}

// NewArcKnown returns the Arc backed by the three coordinates at seq[pos:],
// with center, radius, and orientation taken as given rather than derived.
// The caller is responsible for consistency; they are not checked against
// the referenced coordinates.
func NewArcKnown(seq *CoordinateSequence, pos int, center Pt, radius Length, orientation Orientation) Arc {
	return Arc{seq: seq, pos: pos, known: true, center: center, radius: radius, orientation: orientation}
}

// ArcPt builds a standalone Arc from three plain points, allocating its own
// two-dimensional CoordinateSequence. Convenient for tests and callers that
// don't already have a shared sequence, such as the curve-builder when it
// tests a candidate arc.
func ArcPt(p0, p1, p2 Pt) Arc {
	seq := NewCoordinateSequence(false, false, CoordinateXY(p0), CoordinateXY(p1), CoordinateXY(p2))
	return NewArc(seq, 0)
}

// ArcFromCenter builds the Arc from p0 to p2 on the circle with the given
// center, radius, and orientation, synthesizing the interior waypoint as the
// circle's angular midpoint between p0 and p2. This is the constructor the
// noder uses to split a parent arc without re-deriving (and so possibly
// perturbing) its center or radius.
func ArcFromCenter(p0, p2 Coordinate, center Pt, radius Length, orientation Orientation) Arc {
	return arcFromCenterProfiled(p0, p2, center, radius, orientation, p0.Z != 0 || p2.Z != 0, p0.M != 0 || p2.M != 0)
}

// arcFromCenterProfiled computes the interior waypoint from the arc's
// counter-clockwise end, so that the arc from p0 to p2 and its reverse get a
// bit-identical waypoint.
func arcFromCenterProfiled(p0, p2 Coordinate, center Pt, radius Length, orientation Orientation, hasZ, hasM bool) Arc {
	first, last, o := p0, p2, orientation
	if o == Clockwise {
		first, last, o = p2, p0, CounterClockwise
	}
	mid := arcMidpointOnCircle(first.XY, last.XY, center, radius, o)
	midCoord := Coordinate{
		XY: mid,
		Z:  lerpLength(first.Z, last.Z, 0.5),
		M:  lerpLength(first.M, last.M, 0.5),
	}
	seq := NewCoordinateSequence(hasZ, hasM, p0, midCoord, p2)
	return NewArcKnown(seq, 0, center, radius, orientation)
}

func (a Arc) p0Coord() Coordinate { return a.seq.Get(a.pos) }
func (a Arc) p1Coord() Coordinate { return a.seq.Get(a.pos + 1) }
func (a Arc) p2Coord() Coordinate { return a.seq.Get(a.pos + 2) }

// P0 returns the arc's starting point.
func (a Arc) P0() Pt { return a.p0Coord().XY }

// P1 returns the arc's interior waypoint. Its only role is selecting which
// circle and which of the circle's two arcs are meant; it is never
// consulted by any query below.
func (a Arc) P1() Pt { return a.p1Coord().XY }

// P2 returns the arc's ending point.
func (a Arc) P2() Pt { return a.p2Coord().XY }

// Points returns the arc's three control points in order: P0, P1, P2.
func (a Arc) Points() []Pt { return []Pt{a.P0(), a.P1(), a.P2()} }

// CoordinateSequence returns the sequence this arc is backed by.
func (a Arc) CoordinateSequence() *CoordinateSequence { return a.seq }

// CoordinatePosition returns the index of P0 within the backing sequence.
func (a Arc) CoordinatePosition() int { return a.pos }

// Orientation returns the winding direction of P0, P1, P2.
func (a Arc) Orientation() Orientation {
	if a.known {
		return a.orientation
	}
	return orientationIndex(a.P0(), a.P1(), a.P2())
}

// IsCircle reports whether this arc is a full circle: P0 equals P2 exactly,
// not merely within tolerance.
func (a Arc) IsCircle() bool { return exactlyEqualPt(a.P0(), a.P2()) }

// IsLinear reports whether P0, P1, P2 are collinear, meaning this "arc" is
// really a straight chord with no well-defined center.
func (a Arc) IsLinear() bool { return a.Orientation() == Collinear }

// circumcenter returns the center of the circle through a, b, c. Computed
// with the standard determinant formula; order matters for floating point
// rounding, which is exactly why Center chooses the order by orientation
// instead of always using P0, P1, P2.
func circumcenter(a, b, c Pt) Pt {
	ax, ay := a.XY()
	bx, by := b.XY()
	cx, cy := c.XY()

	d := 2 * (float64(ax)*(float64(by)-float64(cy)) +
		float64(bx)*(float64(cy)-float64(ay)) +
		float64(cx)*(float64(ay)-float64(by)))

	aa := float64(ax)*float64(ax) + float64(ay)*float64(ay)
	bb := float64(bx)*float64(bx) + float64(by)*float64(by)
	cc := float64(cx)*float64(cx) + float64(cy)*float64(cy)

	ux := (aa*(float64(by)-float64(cy)) + bb*(float64(cy)-float64(ay)) + cc*(float64(ay)-float64(by))) / d
	uy := (aa*(float64(cx)-float64(bx)) + bb*(float64(ax)-float64(cx)) + cc*(float64(bx)-float64(ax))) / d

	return PtXy(Length(ux), Length(uy))
}

// Center returns the center of the circle this arc lies on. Undefined
// (PtNaN) for a linear arc.
func (a Arc) Center() Pt {
	if a.known {
		return a.center
	}
	switch a.Orientation() {
	case CounterClockwise:
		return circumcenter(a.P0(), a.P1(), a.P2())
	case Clockwise:
		return circumcenter(a.P2(), a.P1(), a.P0())
	default:
		return PtNaN
	}
}

// Radius returns the radius of the circle this arc lies on. +Inf for a
// linear arc.
func (a Arc) Radius() Length {
	if a.known {
		return a.radius
	}
	switch a.Orientation() {
	case CounterClockwise:
		return a.Center().VectorTo(a.P0()).Magnitude()
	case Clockwise:
		return a.Center().VectorTo(a.P2()).Magnitude()
	default:
		return Length(math.Inf(1))
	}
}

// Theta0 returns the angle of P0 as seen from the center.
func (a Arc) Theta0() Radians { return angleOf(a.P0(), a.Center()) }

// Theta1 returns the angle of P1 as seen from the center.
func (a Arc) Theta1() Radians { return angleOf(a.P1(), a.Center()) }

// Theta2 returns the angle of P2 as seen from the center.
func (a Arc) Theta2() Radians { return angleOf(a.P2(), a.Center()) }

// signedSpan returns the signed angular extent of the arc's sector, in the
// direction of its orientation: in [0, 2π) for CounterClockwise, in
// (-2π, 0] for Clockwise. A full circle reports ±2π (sign matching
// orientation) since its raw Theta0/Theta2 would otherwise coincide.
func (a Arc) signedSpan() Radians {
	if a.IsCircle() && !a.IsLinear() {
		if a.Orientation() == Clockwise {
			return Radians(-2 * math.Pi)
		}
		return Radians(2 * math.Pi)
	}
	return signedAngularDifference(a.Theta0(), a.Theta2(), a.Orientation())
}

// Angle returns the signed inner angle of the arc's sector. A full circle
// reports 2π regardless of orientation, matching GEOS's getAngle().
func (a Arc) Angle() Radians {
	if a.IsCircle() && !a.IsLinear() {
		return Radians(2 * math.Pi)
	}
	return a.signedSpan()
}

// Length returns the length of the arc: the chord length if linear,
// otherwise |angle| * radius.
func (a Arc) Length() Length {
	if a.IsLinear() {
		return a.P0().VectorTo(a.P2()).Magnitude()
	}
	return Length(math.Abs(float64(a.Angle()))) * a.Radius()
}

// Area returns the circular segment's area (the region between the arc
// P0-P1-P2 and the chord P2-P0) plus the signed area of the triangle
// center-P0-P2. The sum is the signed area of the arc's sector,
// radius²·Angle()/2, positive for a counter-clockwise arc.
func (a Arc) Area() Length {
	if a.IsLinear() {
		return 0
	}
	theta := float64(a.Angle())
	r := float64(a.Radius())
	segment := 0.5 * r * r * (theta - math.Sin(theta))

	c, p0, p2 := a.Center(), a.P0(), a.P2()
	cx, cy := c.XY()
	p0x, p0y := p0.XY()
	p2x, p2y := p2.XY()
	triangle := 0.5 * (float64(p0x-cx)*float64(p2y-cy) - float64(p2x-cx)*float64(p0y-cy))

	return Length(segment + triangle)
}

// arcMidpointOnCircle returns the point on the circle (center, radius),
// reached from p0 by travelling half of the signed angular distance to p2
// in direction o. Shared by Midpoint and ArcFromCenter so both compute the
// "angular midpoint" the same way.
func arcMidpointOnCircle(p0, p2, center Pt, radius Length, o Orientation) Pt {
	theta0 := angleOf(p0, center)
	var thetaMid float64
	if exactlyEqualPt(p0, p2) {
		thetaMid = float64(theta0) + math.Pi
	} else {
		span := float64(signedAngularDifference(theta0, angleOf(p2, center), o))
		thetaMid = float64(theta0) + span/2
	}
	return center.Add(VectorFromTheta(Radians(thetaMid)).Scale(radius))
}

// Midpoint returns the point at the arc's angular midpoint: the chord
// midpoint if linear, the point diametrically opposite P0 if a full circle,
// otherwise the point halfway around the arc's sector from P0 to P2.
func (a Arc) Midpoint() Pt {
	if a.IsLinear() {
		p0, p2 := a.P0(), a.P2()
		x0, y0 := p0.XY()
		x2, y2 := p2.XY()
		return PtXy((x0+x2)/2, (y0+y2)/2)
	}
	return arcMidpointOnCircle(a.P0(), a.P2(), a.Center(), a.Radius(), a.Orientation())
}

// Sagitta returns the distance from the arc's midpoint to the chord P0-P2.
// Zero for a linear arc.
func (a Arc) Sagitta() Length {
	if a.IsLinear() {
		return 0
	}
	return DistancePointToSegment(a.Midpoint(), a.P0(), a.P2())
}

// ContainsAngle reports whether theta lies within the arc's angular sector.
func (a Arc) ContainsAngle(theta Radians) bool {
	if a.IsCircle() && !a.IsLinear() {
		return true
	}
	o := a.Orientation()
	if o == Collinear {
		return false
	}
	diff := signedAngularDifference(a.Theta0(), theta, o)
	span := a.signedSpan()
	if o == CounterClockwise {
		return diff <= span || IsEqual(diff, span)
	}
	return diff >= span || IsEqual(diff, span)
}

// ContainsAngleOf is a cheaper containsAngle for a point already known to
// lie on the arc's circle: it skips the on-circle distance check that
// ContainsPoint performs. Named after GEOS's containsPointOnCircle;
// ContainsPoint calls it once its own on-circle check has passed.
func (a Arc) ContainsAngleOf(q Pt) bool {
	return a.ContainsAngle(angleOf(q, a.Center()))
}

// ContainsPoint reports whether q lies on the circle (within tolerance) and
// within the arc's angular sector.
func (a Arc) ContainsPoint(q Pt) bool {
	if a.IsLinear() {
		return IsEqual(DistancePointToSegment(q, a.P0(), a.P2()), 0)
	}
	dist := a.Center().VectorTo(q).Magnitude()
	if !IsEqual(dist, a.Radius()) {
		return false
	}
	return a.ContainsAngleOf(q)
}

// IsUpwardAtPoint reports whether the arc's direction of travel has a
// positive y-component at q, which is assumed to lie on the arc. Not
// specified by spec.md beyond its name; defined here as: the tangent
// direction at q (perpendicular to the radius, rotated +90° for a
// counter-clockwise arc or -90° for a clockwise one) points upward.
func (a Arc) IsUpwardAtPoint(q Pt) bool {
	if a.IsLinear() {
		_, ty := a.P0().VectorTo(a.P2()).Units()
		return ty > 0
	}
	radial := a.Center().VectorTo(q).Normalize()
	var tangent Vector
	if a.Orientation() == CounterClockwise {
		tangent = radial.Rotate(Radians(math.Pi / 2))
	} else {
		tangent = radial.Rotate(Radians(-math.Pi / 2))
	}
	_, ty := tangent.Units()
	return ty > 0
}

// Reverse returns the arc traversed in the opposite direction: P0 and P2
// swap, P1 is unchanged, and orientation flips. Center and radius are
// carried over unchanged rather than re-derived, so they remain bit-for-bit
// identical to the original arc's.
func (a Arc) Reverse() Arc {
	p0c, p1c, p2c := a.p0Coord(), a.p1Coord(), a.p2Coord()
	seq := NewCoordinateSequence(a.seq.HasZ(), a.seq.HasM(), p2c, p1c, p0c)
	if a.IsLinear() {
		return NewArc(seq, 0)
	}
	var o Orientation
	switch a.Orientation() {
	case Clockwise:
		o = CounterClockwise
	case CounterClockwise:
		o = Clockwise
	default:
		o = Collinear
	}
	return NewArcKnown(seq, 0, a.Center(), a.Radius(), o)
}

// Equals reports whether a and other describe the same arc (same endpoints,
// same circle, same orientation) within tolerance tol.
func (a Arc) Equals(other Arc, tol Length) bool {
	within := func(p, q Pt) bool {
		return p.VectorTo(q).Magnitude() <= tol
	}
	if !within(a.P0(), other.P0()) || !within(a.P2(), other.P2()) {
		return false
	}
	if a.IsLinear() != other.IsLinear() {
		return false
	}
	if a.IsLinear() {
		return true
	}
	if a.Orientation() != other.Orientation() {
		return false
	}
	if math.Abs(float64(a.Radius()-other.Radius())) > float64(tol) {
		return false
	}
	return within(a.Center(), other.Center())
}
