package figuring

import "fmt"

// OrderedPtser is the interface of all types that expose their defining
// points in a stable, meaningful order.
type OrderedPtser interface {
	Points() []Pt
}

// Envelope represents an axis aligned bounding rectangle. The resulting
// rectangle is always aligned with the X and Y axis. Every curve and
// geometry type in this core reports its bounding box as an Envelope.
type Envelope struct {
	pts [2]Pt
}

// EnvelopePt builds the Envelope bounding p1 and p2.
func EnvelopePt(p1, p2 Pt) Envelope {
	lx, mx, ly, my := LimitsPts([]Pt{p1, p2})
	return Envelope{
		pts: [2]Pt{PtXy(lx, ly), PtXy(mx, my)},
	}
}

// EnvelopeOfPts builds the smallest Envelope containing every point in pts.
// Returns the zero Envelope if pts is empty.
func EnvelopeOfPts(pts []Pt) Envelope {
	if len(pts) == 0 {
		return Envelope{}
	}
	lx, mx, ly, my := LimitsPts(pts)
	return Envelope{
		pts: [2]Pt{PtXy(lx, ly), PtXy(mx, my)},
	}
}

// Union returns the smallest Envelope containing both r and o.
func (r Envelope) Union(o Envelope) Envelope {
	return EnvelopeOfPts([]Pt{r.pts[0], r.pts[1], o.pts[0], o.pts[1]})
}

func (r Envelope) MinPt() Pt    { return r.pts[0] }
func (r Envelope) MaxPt() Pt    { return r.pts[1] }
func (r Envelope) Points() []Pt { return r.pts[:] }
func (r Envelope) Dims() (Length, Length) {
	return r.pts[0].VectorTo(r.pts[1]).Units()
}
func (r Envelope) Width() Length {
	w, _ := r.Dims()
	return w
}
func (r Envelope) Height() Length {
	_, h := r.Dims()
	return h
}
func (r Envelope) OrErr() (Envelope, *FloatingPointError) {
	if _, err := r.pts[0].OrErr(); err != nil {
		return r, err
	} else if _, err = r.pts[1].OrErr(); err != nil {
		return r, err
	}
	return r, nil
}
func (r Envelope) String() string {
	minmax, maxmin := PtXy(r.pts[0].X(), r.pts[1].Y()), PtXy(r.pts[1].X(), r.pts[0].Y())
	return fmt.Sprintf("envelope=Polygon(%v, %v, %v, %v)",
		r.pts[0], minmax, r.pts[1], maxmin)
}
