package figuring

import "math"

type builderSection struct {
	isArc  bool
	coords []Coordinate
}

// BuildCurve recognizes circular arcs within line's coordinates and
// reassembles them into the simplest equivalent Curve: a bare LineString if
// no arc is recognized, a bare CircularString if the whole input is one run
// of arcs, or a CompoundCurve mixing both kinds of section.
//
// The recognition loop is greedy, grounded on the same
// recognize-against-tolerance-then-commit shape as gogpu/gg's
// shape_detect.go: starting from index i, a candidate circle is derived
// from three consecutive points, then extended one point at a time for as
// long as each new point stays within distanceTolerance of that circle and
// keeps advancing around it in the candidate's orientation (see
// extendArcRun); the run commits once extension fails. Where no
// three-point run defines a non-degenerate circle, a single straight
// segment is emitted instead and the scan advances by one point.
func BuildCurve(line *LineString, distanceTolerance Length) (Curve, error) {
	coords := line.seq.coords
	n := len(coords)
	if n < 3 {
		return line, nil
	}

	var sections []builderSection

	i := 0
	for i < n-1 {
		if i+2 < n {
			candidate := ArcPt(coords[i].XY, coords[i+1].XY, coords[i+2].XY)
			if !candidate.IsLinear() {
				j := extendArcRun(coords, i, candidate, distanceTolerance)
				if j-i >= 2 {
					sections = append(sections, builderSection{isArc: true, coords: arcRunControlPoints(coords, i, j)})
					i = j
					continue
				}
			}
		}
		sections = append(sections, builderSection{isArc: false, coords: []Coordinate{coords[i], coords[i+1]}})
		i++
	}

	merged := mergeBuilderSections(sections)
	return assembleBuiltCurve(merged, line.seq.HasZ(), line.seq.HasM())
}

// extendArcRun grows the candidate arc (defined by coords[i], coords[i+1],
// coords[i+2]) as far as coords[j] stays on its circle (within tol) and its
// angle keeps advancing in the candidate's orientation direction, returning
// the largest such j.
//
// Testing each new point against the seed triangle's own (small) angular
// span would reject every point beyond that triangle's P2 - the span never
// grows, so a finely-sampled arc could never collapse past its first three
// points. What "extended" means here is tracked directly: the angle
// travelled since the last accepted point, which must keep moving forward
// in the orientation direction. A step of zero (a repeated point) or one
// spanning a half turn or more (too large to trust as a single forward
// step between consecutive polyline vertices) ends the run.
func extendArcRun(coords []Coordinate, i int, candidate Arc, tol Length) int {
	center, radius, orientation := candidate.Center(), candidate.Radius(), candidate.Orientation()
	lastTheta := angleOf(coords[i+2].XY, center)
	j := i + 2
	for j+1 < len(coords) {
		next := coords[j+1].XY
		distErr := math.Abs(float64(center.VectorTo(next).Magnitude()) - float64(radius))
		if Length(distErr) > tol {
			break
		}
		nextTheta := angleOf(next, center)
		step := signedAngularDifference(lastTheta, nextTheta, orientation)
		if step == 0 || math.Abs(float64(step)) >= math.Pi {
			break
		}
		lastTheta = nextTheta
		j++
	}
	return j
}

// arcRunControlPoints collapses the polyline points coords[i..j] (a run
// recognized as lying on one circle) into the three control points a
// CircularArc needs: the run's endpoints and one interior waypoint.
func arcRunControlPoints(coords []Coordinate, i, j int) []Coordinate {
	mid := i + (j-i)/2
	if mid == i {
		mid = i + 1
	}
	return []Coordinate{coords[i], coords[mid], coords[j]}
}

// mergeBuilderSections concatenates consecutive straight sections into one
// line-string section and consecutive arc sections into one
// circular-string section, each merge dropping the duplicated shared
// endpoint.
func mergeBuilderSections(sections []builderSection) []builderSection {
	var out []builderSection
	for _, s := range sections {
		if len(out) > 0 && out[len(out)-1].isArc == s.isArc {
			last := &out[len(out)-1]
			last.coords = append(last.coords, s.coords[1:]...)
			continue
		}
		out = append(out, builderSection{isArc: s.isArc, coords: append([]Coordinate(nil), s.coords...)})
	}
	return out
}

func assembleBuiltCurve(sections []builderSection, hasZ, hasM bool) (Curve, error) {
	if len(sections) == 0 {
		ls, _ := NewLineString(NewCoordinateSequence(hasZ, hasM))
		return ls, nil
	}
	curves := make([]Curve, len(sections))
	for i, s := range sections {
		seq := NewCoordinateSequence(hasZ, hasM, s.coords...)
		var c Curve
		var err error
		if s.isArc {
			c, err = NewCircularString(seq)
		} else {
			c, err = NewLineString(seq)
		}
		if err != nil {
			return nil, err
		}
		curves[i] = c
	}
	if len(curves) == 1 {
		return curves[0], nil
	}
	return NewCompoundCurve(curves)
}
