package figuring

import "math"

// stepFn resolves the angular step to use when linearizing a single arc.
// Linearize always returns the same step; LinearizeBySagitta derives one
// per arc from its radius, since the same chord-deviation tolerance implies
// a different angular step on a tight arc than on a broad one.
type stepFn func(a Arc) (Radians, error)

// Linearize converts a curve into its linear counterpart, subdividing every
// arc into a fixed angular step. LineString passes through unchanged.
// CircularString, CompoundCurve, CurvePolygon, MultiCurve, and MultiSurface
// become LineString, LineString, Polygon, MultiLineString, and MultiPolygon
// respectively.
func Linearize(c Curve, stepRadians Radians) (Geometry, error) {
	return linearizeDispatch(c, func(Arc) (Radians, error) { return stepRadians, nil })
}

// LinearizeBySagitta converts a curve into its linear counterpart the same
// way Linearize does, but derives each arc's angular step from maxSagitta:
// the largest allowed perpendicular deviation between the arc and its
// chord, via step = 2*acos(1 - maxSagitta/radius).
func LinearizeBySagitta(c Curve, maxSagitta Length) (Geometry, error) {
	if maxSagitta <= 0 {
		return nil, &NumericDomainError{Reason: "maximum sagitta must be positive"}
	}
	return linearizeDispatch(c, func(a Arc) (Radians, error) {
		if a.IsLinear() {
			return Radians(math.Pi), nil
		}
		ratio := 1 - float64(maxSagitta)/float64(a.Radius())
		ratio = Clamp(-1, ratio, 1)
		return Radians(2 * math.Acos(ratio)), nil
	})
}

func linearizeDispatch(c Curve, step stepFn) (Geometry, error) {
	switch v := c.(type) {
	case *LineString:
		return v, nil
	case *CircularString:
		return linearizeCircularString(v, step)
	case *CompoundCurve:
		return linearizeCompoundCurve(v, step)
	case *CurvePolygon:
		return linearizeCurvePolygon(v, step)
	case *MultiCurve:
		return linearizeMultiCurve(v, step)
	case *MultiSurface:
		return linearizeMultiSurface(v, step)
	default:
		return nil, unsupported(c, "linearize")
	}
}

// linearizeArc subdivides a into a coordinate run approximating it, using
// step as the maximum angular increment per segment.
//
// Every internal sample is derived from the arc's counter-clockwise end: the
// angle start + stepSize*k, with start the angle of whichever endpoint the
// counter-clockwise sweep begins at and stepSize the unsigned span over n,
// and Z/M interpolated from that same endpoint. A clockwise arc stores
// sample k at index n-k. An arc and its reverse share center, radius, both
// endpoint angles and the unsigned span bit for bit, so both directions
// evaluate the identical floating-point expression for every sample and the
// reversed output of one equals the output of the other exactly.
func linearizeArc(a Arc, step Radians) ([]Coordinate, error) {
	if a.IsLinear() {
		return []Coordinate{a.p0Coord(), a.p2Coord()}, nil
	}

	switch {
	case math.IsNaN(float64(step)) || math.IsInf(float64(step), 0):
		return []Coordinate{a.p0Coord(), a.p1Coord(), a.p2Coord()}, nil
	case step <= 0:
		return nil, &NumericDomainError{Reason: "angular step must be positive"}
	}

	span := float64(a.signedSpan())
	delta := math.Abs(span)
	n := int(math.Ceil(delta / float64(step)))
	if n < 1 {
		n = 1
	}

	c, r := a.Center(), a.Radius()
	p0c, p2c := a.p0Coord(), a.p2Coord()
	ccw := a.Orientation() == CounterClockwise
	start, from, to := float64(a.Theta0()), p0c, p2c
	if !ccw {
		start, from, to = float64(a.Theta2()), p2c, p0c
	}
	stepSize := delta / float64(n)

	coords := make([]Coordinate, n+1)
	coords[0] = p0c
	coords[n] = p2c
	for k := 1; k < n; k++ {
		frac := float64(k) / float64(n)
		theta := start + stepSize*float64(k)
		pt := c.Add(VectorFromTheta(Radians(theta)).Scale(r))
		i := k
		if !ccw {
			i = n - k
		}
		coords[i] = Coordinate{
			XY: pt,
			Z:  lerpLength(from.Z, to.Z, frac),
			M:  lerpLength(from.M, to.M, frac),
		}
	}
	return coords, nil
}

func linearizeCircularString(cs *CircularString, step stepFn) (Geometry, error) {
	if cs.IsEmpty() {
		ls, _ := NewLineString(NewCoordinateSequence(cs.seq.HasZ(), cs.seq.HasM()))
		return ls, nil
	}
	var all []Coordinate
	for i := 0; i < cs.NumArcs(); i++ {
		arc := cs.Arc(i)
		st, err := step(arc)
		if err != nil {
			return nil, err
		}
		pts, err := linearizeArc(arc, st)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			pts = pts[1:]
		}
		all = append(all, pts...)
	}
	seq := NewCoordinateSequence(cs.seq.HasZ(), cs.seq.HasM(), all...)
	return NewLineString(seq)
}

// linearizeRing linearizes a single-path curve (LineString, CircularString,
// or CompoundCurve) and asserts the result is a LineString, which it always
// is for those types. CurvePolygon, MultiCurve, and MultiSurface linearize to
// other types, and passing one of them here makes the assertion panic.
func linearizeRing(ring Curve, step stepFn) (*LineString, error) {
	g, err := linearizeDispatch(ring, step)
	if err != nil {
		return nil, err
	}
	return g.(*LineString), nil
}

func linearizeCompoundCurve(cc *CompoundCurve, step stepFn) (Geometry, error) {
	seqs := make([]*CoordinateSequence, len(cc.sections))
	for i, s := range cc.sections {
		ls, err := linearizeRing(s, step)
		if err != nil {
			return nil, err
		}
		seqs[i] = ls.seq
	}
	return NewLineString(concatSequences(seqs...))
}

func linearizeCurvePolygon(cp *CurvePolygon, step stepFn) (Geometry, error) {
	if cp.exterior == nil {
		return NewPolygon(nil, nil), nil
	}
	exterior, err := linearizeRing(cp.exterior, step)
	if err != nil {
		return nil, err
	}
	interior := make([]*LineString, len(cp.interior))
	for i, r := range cp.interior {
		ls, err := linearizeRing(r, step)
		if err != nil {
			return nil, err
		}
		interior[i] = ls
	}
	return NewPolygon(exterior, interior), nil
}

func linearizeMultiCurve(mc *MultiCurve, step stepFn) (Geometry, error) {
	lines := make([]*LineString, len(mc.curves))
	for i, c := range mc.curves {
		ls, err := linearizeRing(c, step)
		if err != nil {
			return nil, err
		}
		lines[i] = ls
	}
	return NewMultiLineString(lines), nil
}

func linearizeMultiSurface(ms *MultiSurface, step stepFn) (Geometry, error) {
	polys := make([]*Polygon, len(ms.polygons))
	for i, p := range ms.polygons {
		g, err := linearizeCurvePolygon(p, step)
		if err != nil {
			return nil, err
		}
		polys[i] = g.(*Polygon)
	}
	return NewMultiPolygon(polys), nil
}
