package figuring

// Geometry is the common capability every shape in this core exposes,
// curved or linear.
type Geometry interface {
	IsEmpty() bool
	NumPoints() int
	Envelope() Envelope
	Dimension() int
}

// Curve is the interface every curved-geometry type implements. LineString,
// CircularString, and CompoundCurve are one-dimensional paths built from
// straight and/or circular sections; CurvePolygon and MultiSurface (dimension
// 2) and MultiCurve implement it too. All of them are modeled as concrete
// structs implementing this interface
// (a tagged-variant style, not virtual dispatch spread across an inheritance
// tree) so a type switch is always enough to recover the concrete shape.
type Curve interface {
	Geometry
	Coordinates() *CoordinateSequence
	Reverse() Curve
	IsClosed() bool
	EqualsExact(other Curve, tol Length) bool
}

// LineString is a linear path of n >= 2 coordinates (or exactly 0, for the
// empty line string). It is simultaneously a Curve in its own right and the
// linear counterpart every curved type linearizes down to.
type LineString struct {
	seq *CoordinateSequence
}

// NewLineString validates and builds a LineString over seq.
func NewLineString(seq *CoordinateSequence) (*LineString, error) {
	if seq.Len() == 1 {
		return nil, &InvalidGeometryError{Reason: "line string must have 0 or at least 2 coordinates"}
	}
	return &LineString{seq: seq}, nil
}

func (l *LineString) IsEmpty() bool                { return l.seq.IsEmpty() }
func (l *LineString) NumPoints() int                { return l.seq.Len() }
func (l *LineString) Envelope() Envelope            { return l.seq.Envelope() }
func (l *LineString) Dimension() int                { return 1 }
func (l *LineString) Coordinates() *CoordinateSequence { return l.seq }
func (l *LineString) Reverse() Curve {
	ls, _ := NewLineString(l.seq.Reverse())
	return ls
}
func (l *LineString) IsClosed() bool {
	if l.IsEmpty() {
		return true
	}
	return exactlyEqualPt(l.seq.First().XY, l.seq.Last().XY)
}
func (l *LineString) EqualsExact(other Curve, tol Length) bool {
	o, ok := other.(*LineString)
	if !ok {
		return false
	}
	return sequencesEqual(l.seq, o.seq, tol)
}

// CircularString is a path of 2k+1 coordinates describing k arcs, the i-th
// arc using coordinates 2i, 2i+1, 2i+2. An empty circular string has zero
// coordinates.
type CircularString struct {
	seq *CoordinateSequence
}

// NewCircularString validates and builds a CircularString over seq.
func NewCircularString(seq *CoordinateSequence) (*CircularString, error) {
	n := seq.Len()
	if n != 0 && (n < 3 || n%2 == 0) {
		return nil, &InvalidGeometryError{Reason: "circular string must have 0 or an odd number >= 3 of coordinates"}
	}
	return &CircularString{seq: seq}, nil
}

func (c *CircularString) IsEmpty() bool                { return c.seq.IsEmpty() }
func (c *CircularString) NumPoints() int                { return c.seq.Len() }
func (c *CircularString) Envelope() Envelope            { return c.seq.Envelope() }
func (c *CircularString) Dimension() int                { return 1 }
func (c *CircularString) Coordinates() *CoordinateSequence { return c.seq }

// NumArcs returns the number of arcs making up this circular string.
func (c *CircularString) NumArcs() int {
	if c.IsEmpty() {
		return 0
	}
	return (c.seq.Len() - 1) / 2
}

// Arc returns the i-th arc of this circular string.
func (c *CircularString) Arc(i int) Arc { return NewArc(c.seq, 2*i) }

func (c *CircularString) Reverse() Curve {
	cs, _ := NewCircularString(c.seq.Reverse())
	return cs
}
func (c *CircularString) IsClosed() bool {
	if c.IsEmpty() {
		return true
	}
	return exactlyEqualPt(c.seq.First().XY, c.seq.Last().XY)
}
func (c *CircularString) EqualsExact(other Curve, tol Length) bool {
	o, ok := other.(*CircularString)
	if !ok {
		return false
	}
	return sequencesEqual(c.seq, o.seq, tol)
}

// CompoundCurve chains LineString and CircularString sections end to end,
// each section's last coordinate coordinate-equal to the next section's
// first.
type CompoundCurve struct {
	sections []Curve
}

// NewCompoundCurve validates continuity between sections and builds the
// CompoundCurve. Every section must be a *LineString or *CircularString.
func NewCompoundCurve(sections []Curve) (*CompoundCurve, error) {
	if len(sections) == 0 {
		return nil, &InvalidGeometryError{Reason: "compound curve must have at least one section"}
	}
	for i, s := range sections {
		switch s.(type) {
		case *LineString, *CircularString:
		default:
			return nil, &InvalidGeometryError{Reason: "compound curve sections must be line strings or circular strings"}
		}
		if i > 0 {
			prev := sections[i-1].Coordinates()
			cur := s.Coordinates()
			if prev.IsEmpty() || cur.IsEmpty() {
				return nil, &InvalidGeometryError{Reason: "compound curve sections must not be empty"}
			}
			if !exactlyEqualPt(prev.Last().XY, cur.First().XY) {
				return nil, &InvalidGeometryError{Reason: "compound curve sections must share endpoints"}
			}
		}
	}
	return &CompoundCurve{sections: sections}, nil
}

// Sections returns the compound curve's sections in path order.
func (c *CompoundCurve) Sections() []Curve { return c.sections }

func (c *CompoundCurve) IsEmpty() bool { return false }
func (c *CompoundCurve) NumPoints() int {
	return c.Coordinates().Len()
}
func (c *CompoundCurve) Envelope() Envelope { return c.Coordinates().Envelope() }
func (c *CompoundCurve) Dimension() int     { return 1 }
func (c *CompoundCurve) Coordinates() *CoordinateSequence {
	seqs := make([]*CoordinateSequence, len(c.sections))
	for i, s := range c.sections {
		seqs[i] = s.Coordinates()
	}
	return concatSequences(seqs...)
}
func (c *CompoundCurve) Reverse() Curve {
	rev := make([]Curve, len(c.sections))
	n := len(c.sections)
	for i, s := range c.sections {
		rev[n-1-i] = s.Reverse()
	}
	cc, _ := NewCompoundCurve(rev)
	return cc
}
func (c *CompoundCurve) IsClosed() bool {
	seq := c.Coordinates()
	if seq.IsEmpty() {
		return true
	}
	return exactlyEqualPt(seq.First().XY, seq.Last().XY)
}
func (c *CompoundCurve) EqualsExact(other Curve, tol Length) bool {
	o, ok := other.(*CompoundCurve)
	if !ok || len(o.sections) != len(c.sections) {
		return false
	}
	for i := range c.sections {
		if !c.sections[i].EqualsExact(o.sections[i], tol) {
			return false
		}
	}
	return true
}

// CurvePolygon is a 2-dimensional region bounded by one exterior ring and
// zero or more interior rings, each ring itself a closed Curve (a
// LineString, CircularString, or CompoundCurve).
type CurvePolygon struct {
	exterior Curve
	interior []Curve
}

func ringValid(ring Curve) error {
	seq := ring.Coordinates()
	if seq.Len() < 4 {
		return &InvalidGeometryError{Reason: "curve polygon ring must have at least 4 coordinates"}
	}
	if !exactlyEqualPt(seq.First().XY, seq.Last().XY) {
		return &InvalidGeometryError{Reason: "curve polygon ring must be closed"}
	}
	return nil
}

// NewCurvePolygon validates exterior and interior as closed rings of at
// least 4 coordinates and builds the CurvePolygon.
func NewCurvePolygon(exterior Curve, interior []Curve) (*CurvePolygon, error) {
	if exterior != nil {
		if err := ringValid(exterior); err != nil {
			return nil, err
		}
	}
	for _, r := range interior {
		if err := ringValid(r); err != nil {
			return nil, err
		}
	}
	return &CurvePolygon{exterior: exterior, interior: interior}, nil
}

// ExteriorRing returns the polygon's exterior ring, or nil for an empty
// polygon.
func (c *CurvePolygon) ExteriorRing() Curve { return c.exterior }

// InteriorRings returns the polygon's interior (hole) rings.
func (c *CurvePolygon) InteriorRings() []Curve { return c.interior }

func (c *CurvePolygon) IsEmpty() bool { return c.exterior == nil }
func (c *CurvePolygon) NumPoints() int {
	if c.exterior == nil {
		return 0
	}
	n := c.exterior.NumPoints()
	for _, r := range c.interior {
		n += r.NumPoints()
	}
	return n
}
func (c *CurvePolygon) Envelope() Envelope {
	if c.exterior == nil {
		return Envelope{}
	}
	return c.exterior.Envelope()
}
func (c *CurvePolygon) Dimension() int { return 2 }
func (c *CurvePolygon) Coordinates() *CoordinateSequence {
	if c.exterior == nil {
		return NewCoordinateSequence(false, false)
	}
	seqs := make([]*CoordinateSequence, 0, 1+len(c.interior))
	seqs = append(seqs, c.exterior.Coordinates())
	for _, r := range c.interior {
		seqs = append(seqs, r.Coordinates())
	}
	return concatSequencesIndependent(seqs...)
}
func (c *CurvePolygon) Reverse() Curve {
	if c.exterior == nil {
		return c
	}
	interior := make([]Curve, len(c.interior))
	for i, r := range c.interior {
		interior[i] = r.Reverse()
	}
	cp, _ := NewCurvePolygon(c.exterior.Reverse(), interior)
	return cp
}
func (c *CurvePolygon) IsClosed() bool { return true }
func (c *CurvePolygon) EqualsExact(other Curve, tol Length) bool {
	o, ok := other.(*CurvePolygon)
	if !ok {
		return false
	}
	if (c.exterior == nil) != (o.exterior == nil) {
		return false
	}
	if c.exterior != nil && !c.exterior.EqualsExact(o.exterior, tol) {
		return false
	}
	if len(c.interior) != len(o.interior) {
		return false
	}
	for i := range c.interior {
		if !c.interior[i].EqualsExact(o.interior[i], tol) {
			return false
		}
	}
	return true
}

// MultiCurve is an ordered collection of curves (LineString, CircularString,
// or CompoundCurve elements), all sharing one Z/M dimension profile.
type MultiCurve struct {
	curves []Curve
}

// NewMultiCurve validates that every curve shares a dimension profile with
// the others and builds the MultiCurve.
func NewMultiCurve(curves []Curve) (*MultiCurve, error) {
	if err := checkDimensionProfiles(curves); err != nil {
		return nil, err
	}
	return &MultiCurve{curves: curves}, nil
}

// Curves returns the collection's elements.
func (m *MultiCurve) Curves() []Curve { return m.curves }

func (m *MultiCurve) IsEmpty() bool { return len(m.curves) == 0 }
func (m *MultiCurve) NumPoints() int {
	n := 0
	for _, c := range m.curves {
		n += c.NumPoints()
	}
	return n
}
func (m *MultiCurve) Envelope() Envelope {
	e := Envelope{}
	for i, c := range m.curves {
		if i == 0 {
			e = c.Envelope()
			continue
		}
		e = e.Union(c.Envelope())
	}
	return e
}
func (m *MultiCurve) Dimension() int { return 1 }
func (m *MultiCurve) Coordinates() *CoordinateSequence {
	seqs := make([]*CoordinateSequence, len(m.curves))
	for i, c := range m.curves {
		seqs[i] = c.Coordinates()
	}
	return concatSequencesIndependent(seqs...)
}
func (m *MultiCurve) Reverse() Curve {
	rev := make([]Curve, len(m.curves))
	for i, c := range m.curves {
		rev[i] = c.Reverse()
	}
	mc, _ := NewMultiCurve(rev)
	return mc
}
func (m *MultiCurve) IsClosed() bool {
	for _, c := range m.curves {
		if !c.IsClosed() {
			return false
		}
	}
	return true
}
func (m *MultiCurve) EqualsExact(other Curve, tol Length) bool {
	o, ok := other.(*MultiCurve)
	if !ok || len(o.curves) != len(m.curves) {
		return false
	}
	for i := range m.curves {
		if !m.curves[i].EqualsExact(o.curves[i], tol) {
			return false
		}
	}
	return true
}

// MultiSurface is an ordered collection of CurvePolygons.
type MultiSurface struct {
	polygons []*CurvePolygon
}

// NewMultiSurface builds a MultiSurface over polygons.
func NewMultiSurface(polygons []*CurvePolygon) (*MultiSurface, error) {
	return &MultiSurface{polygons: polygons}, nil
}

// Polygons returns the collection's elements.
func (m *MultiSurface) Polygons() []*CurvePolygon { return m.polygons }

func (m *MultiSurface) IsEmpty() bool { return len(m.polygons) == 0 }
func (m *MultiSurface) NumPoints() int {
	n := 0
	for _, p := range m.polygons {
		n += p.NumPoints()
	}
	return n
}
func (m *MultiSurface) Envelope() Envelope {
	e := Envelope{}
	for i, p := range m.polygons {
		if i == 0 {
			e = p.Envelope()
			continue
		}
		e = e.Union(p.Envelope())
	}
	return e
}
func (m *MultiSurface) Dimension() int { return 2 }
func (m *MultiSurface) Coordinates() *CoordinateSequence {
	if len(m.polygons) == 0 {
		return NewCoordinateSequence(false, false)
	}
	seqs := make([]*CoordinateSequence, len(m.polygons))
	for i, p := range m.polygons {
		seqs[i] = p.Coordinates()
	}
	return concatSequencesIndependent(seqs...)
}
func (m *MultiSurface) Reverse() Curve {
	rev := make([]*CurvePolygon, len(m.polygons))
	for i, p := range m.polygons {
		rev[i] = p.Reverse().(*CurvePolygon)
	}
	ms, _ := NewMultiSurface(rev)
	return ms
}
func (m *MultiSurface) IsClosed() bool { return true }
func (m *MultiSurface) EqualsExact(other Curve, tol Length) bool {
	o, ok := other.(*MultiSurface)
	if !ok || len(o.polygons) != len(m.polygons) {
		return false
	}
	for i := range m.polygons {
		if !m.polygons[i].EqualsExact(o.polygons[i], tol) {
			return false
		}
	}
	return true
}

// sequencesEqual reports whether a and b have the same length and every
// coordinate pair is within tol of each other.
func sequencesEqual(a, b *CoordinateSequence, tol Length) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ca, cb := a.Get(i), b.Get(i)
		if ca.XY.VectorTo(cb.XY).Magnitude() > tol {
			return false
		}
	}
	return true
}

// checkDimensionProfiles reports an error unless every curve shares the
// same Z/M dimension profile.
func checkDimensionProfiles(curves []Curve) error {
	var hasZ, hasM bool
	for i, c := range curves {
		seq := c.Coordinates()
		if i == 0 {
			hasZ, hasM = seq.HasZ(), seq.HasM()
			continue
		}
		if seq.HasZ() != hasZ || seq.HasM() != hasM {
			return &InvalidGeometryError{Reason: "multi-curve elements must share a dimension profile"}
		}
	}
	return nil
}

// concatSequencesIndependent concatenates sequences without the
// shared-endpoint de-duplication concatSequences performs: a MultiCurve's
// elements are independent paths, not a single continuous one.
func concatSequencesIndependent(seqs ...*CoordinateSequence) *CoordinateSequence {
	var hasZ, hasM bool
	if len(seqs) > 0 {
		hasZ, hasM = seqs[0].HasZ(), seqs[0].HasM()
	}
	var out []Coordinate
	for _, s := range seqs {
		out = append(out, s.coords...)
	}
	return NewCoordinateSequence(hasZ, hasM, out...)
}
