package figuring

// CoordinateSequence is an indexable, ordered run of Coordinates sharing a
// single dimension profile (whether Z and/or M ordinates are meaningful for
// every Coordinate it holds). Curves borrow a CoordinateSequence rather than
// each owning a private copy of their points, the way a CircularArc borrows
// a position into a shared sequence instead of owning three coordinates
// outright.
type CoordinateSequence struct {
	coords     []Coordinate
	hasZ, hasM bool
}

// NewCoordinateSequence builds a CoordinateSequence over coords, tagged with
// the given dimension profile. The sequence takes ownership of coords; the
// caller should not mutate the slice afterward.
func NewCoordinateSequence(hasZ, hasM bool, coords ...Coordinate) *CoordinateSequence {
	return &CoordinateSequence{coords: coords, hasZ: hasZ, hasM: hasM}
}

// Len returns the number of coordinates in the sequence.
func (s *CoordinateSequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.coords)
}

// IsEmpty reports whether the sequence holds no coordinates.
func (s *CoordinateSequence) IsEmpty() bool { return s.Len() == 0 }

// HasZ reports whether coordinates in this sequence carry a meaningful Z
// ordinate.
func (s *CoordinateSequence) HasZ() bool { return s != nil && s.hasZ }

// HasM reports whether coordinates in this sequence carry a meaningful M
// ordinate.
func (s *CoordinateSequence) HasM() bool { return s != nil && s.hasM }

// Get returns the coordinate at index i.
func (s *CoordinateSequence) Get(i int) Coordinate { return s.coords[i] }

// First returns the first coordinate in the sequence.
func (s *CoordinateSequence) First() Coordinate { return s.coords[0] }

// Last returns the last coordinate in the sequence.
func (s *CoordinateSequence) Last() Coordinate { return s.coords[len(s.coords)-1] }

// Points returns the XY ordinates of every coordinate in the sequence, in
// order. Implements OrderedPtser.
func (s *CoordinateSequence) Points() []Pt {
	if s.Len() == 0 {
		return nil
	}
	pts := make([]Pt, len(s.coords))
	for i, c := range s.coords {
		pts[i] = c.XY
	}
	return pts
}

// Envelope returns the bounding Envelope of every coordinate in the
// sequence.
func (s *CoordinateSequence) Envelope() Envelope {
	return EnvelopeOfPts(s.Points())
}

// Reverse returns a new CoordinateSequence with the coordinate order
// reversed. The dimension profile is preserved.
func (s *CoordinateSequence) Reverse() *CoordinateSequence {
	n := len(s.coords)
	out := make([]Coordinate, n)
	for i, c := range s.coords {
		out[n-1-i] = c
	}
	return NewCoordinateSequence(s.hasZ, s.hasM, out...)
}

// concatSequences joins sequences in order, dropping the first coordinate
// of every sequence after the first when it exactly matches the previous
// sequence's last coordinate (the shared-endpoint convention every curve
// section boundary in this core relies on). All inputs must share a
// dimension profile; the result carries that profile.
func concatSequences(seqs ...*CoordinateSequence) *CoordinateSequence {
	var hasZ, hasM bool
	if len(seqs) > 0 {
		hasZ, hasM = seqs[0].HasZ(), seqs[0].HasM()
	}
	var out []Coordinate
	for i, s := range seqs {
		if s.IsEmpty() {
			continue
		}
		coords := s.coords
		if i > 0 && len(out) > 0 && exactlyEqualPt(out[len(out)-1].XY, coords[0].XY) {
			coords = coords[1:]
		}
		out = append(out, coords...)
	}
	return NewCoordinateSequence(hasZ, hasM, out...)
}
