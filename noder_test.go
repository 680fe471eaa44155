package figuring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArcNoderSingleIntersection is grounded on the GEOS NodableArcString
// test's single-split scenario: a quarter arc split at one interior point
// produces two sub-arcs that carry the parent's center, radius, and
// orientation unchanged. The new shared vertex keeps the Z/M it was added
// with, and each sub-arc's interior waypoint averages its own endpoints.
func TestArcNoderSingleIntersection(t *testing.T) {
	center := PtXy(0, 0)
	radius := Length(1)
	a := ArcFromCenter(CoordinateXYZ(PtXy(1, 0), 0), CoordinateXYZ(PtXy(0, 1), 10), center, radius, CounterClockwise)

	noder := NewArcNoder([]Arc{a}, true, false)
	splitAngle := Radians(math.Pi / 4)
	splitPt := center.Add(VectorIj(radius*Length(math.Cos(float64(splitAngle))), radius*Length(math.Sin(float64(splitAngle)))))
	splitZ := Length(6)
	noder.AddIntersection(CoordinateXYZ(splitPt, splitZ), 0)

	out := noder.GetNoded()
	require.Len(t, out, 2)

	assert.Equal(t, center, out[0].Center())
	assert.Equal(t, radius, out[0].Radius())
	assert.Equal(t, center, out[1].Center())
	assert.Equal(t, radius, out[1].Radius())

	assert.True(t, IsEqualPair(out[0].P0(), PtXy(1, 0)))
	assert.True(t, IsEqualPair(out[0].P2(), splitPt))
	assert.True(t, IsEqualPair(out[1].P0(), splitPt))
	assert.True(t, IsEqualPair(out[1].P2(), PtXy(0, 1)))

	// The caller-supplied intersection's own Z is taken as given, not
	// interpolated.
	assert.Equal(t, splitZ, out[0].p2Coord().Z)
	assert.Equal(t, splitZ, out[1].p0Coord().Z)

	// Each sub-arc's synthesized interior waypoint interpolates between its
	// own immediate endpoints, not the original parent's.
	assert.Equal(t, lerpLength(0, splitZ, 0.5), out[0].p1Coord().Z)
	assert.Equal(t, lerpLength(splitZ, 10, 0.5), out[1].p1Coord().Z)
}

func TestArcNoderMultipleIntersectionsSortedAlongArc(t *testing.T) {
	center := PtXy(0, 0)
	radius := Length(1)
	a := ArcFromCenter(CoordinateXY(PtXy(1, 0)), CoordinateXY(PtXy(-1, 0)), center, radius, CounterClockwise)

	noder := NewArcNoder([]Arc{a}, false, false)
	angle60 := Radians(math.Pi / 3)
	angle120 := Radians(2 * math.Pi / 3)
	pt120 := center.Add(VectorIj(radius*Length(math.Cos(float64(angle120))), radius*Length(math.Sin(float64(angle120)))))
	pt60 := center.Add(VectorIj(radius*Length(math.Cos(float64(angle60))), radius*Length(math.Sin(float64(angle60)))))

	// Added out of order on purpose; the noder must sort them along the arc.
	noder.AddIntersection(CoordinateXY(pt120), 0)
	noder.AddIntersection(CoordinateXY(pt60), 0)

	out := noder.GetNoded()
	require.Len(t, out, 3)
	assert.True(t, IsEqualPair(out[0].P0(), PtXy(1, 0)))
	assert.True(t, IsEqualPair(out[0].P2(), pt60))
	assert.True(t, IsEqualPair(out[1].P0(), pt60))
	assert.True(t, IsEqualPair(out[1].P2(), pt120))
	assert.True(t, IsEqualPair(out[2].P0(), pt120))
	assert.True(t, IsEqualPair(out[2].P2(), PtXy(-1, 0)))
}

func TestArcNoderSkipsArcsWithNoIntersections(t *testing.T) {
	a := ArcPt(PtXy(0, 0), PtXy(1, 0), PtXy(2, 0))
	b := ArcFromCenter(CoordinateXY(PtXy(1, 0)), CoordinateXY(PtXy(0, 1)), PtOrig, 1, CounterClockwise)

	noder := NewArcNoder([]Arc{a, b}, false, false)
	out := noder.GetNoded()
	require.Len(t, out, 2)
	assert.True(t, IsEqualPair(out[0].P0(), a.P0()))
	assert.True(t, IsEqualPair(out[1].P0(), b.P0()))
}

func TestArcNoderAddIntersectionAtEndpointIsNoOp(t *testing.T) {
	a := ArcFromCenter(CoordinateXY(PtXy(1, 0)), CoordinateXY(PtXy(0, 1)), PtOrig, 1, CounterClockwise)
	noder := NewArcNoder([]Arc{a}, false, false)
	noder.AddIntersection(CoordinateXY(PtXy(1, 0)), 0)

	out := noder.GetNoded()
	require.Len(t, out, 1)
}
