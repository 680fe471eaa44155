package figuring

// The functions below are every spatial predicate, overlay, and derived
// geometry operation spec.md §4.3 lists as rejected on curved geometry: each
// returns UnsupportedOperationError unconditionally, tagged with its own
// name and the concrete curved type it was invoked on. They exist as named
// entry points (rather than callers reaching for the generic unsupported()
// helper themselves) so the rejection is discoverable and the operation
// name in the error is never misspelled at a call site.

func Contains(a, b Curve) (bool, error)    { return false, unsupported(a, "contains") }
func Intersects(a, b Curve) (bool, error)  { return false, unsupported(a, "intersects") }
func Touches(a, b Curve) (bool, error)     { return false, unsupported(a, "touches") }
func Within(a, b Curve) (bool, error)      { return false, unsupported(a, "within") }
func Covers(a, b Curve) (bool, error)      { return false, unsupported(a, "covers") }
func CoveredBy(a, b Curve) (bool, error)   { return false, unsupported(a, "coveredBy") }
func Crosses(a, b Curve) (bool, error)     { return false, unsupported(a, "crosses") }
func Disjoint(a, b Curve) (bool, error)    { return false, unsupported(a, "disjoint") }
func Overlaps(a, b Curve) (bool, error)    { return false, unsupported(a, "overlaps") }
func Relate(a, b Curve) (string, error)    { return "", unsupported(a, "relate") }

func Union(a, b Curve) (Curve, error)           { return nil, unsupported(a, "union") }
func Difference(a, b Curve) (Curve, error)      { return nil, unsupported(a, "difference") }
func Intersection(a, b Curve) (Curve, error)    { return nil, unsupported(a, "intersection") }
func SymDifference(a, b Curve) (Curve, error)   { return nil, unsupported(a, "symDifference") }

func Buffer(a Curve, distance Length) (Curve, error) { return nil, unsupported(a, "buffer") }
func ConvexHull(a Curve) (Curve, error)              { return nil, unsupported(a, "convexHull") }
func Centroid(a Curve) (Pt, error)                   { return PtNaN, unsupported(a, "centroid") }
func Normalize(a Curve) (Curve, error)               { return nil, unsupported(a, "normalize") }
func IsSimple(a Curve) (bool, error)                 { return false, unsupported(a, "isSimple") }
func IsValid(a Curve) (bool, error)                  { return false, unsupported(a, "isValid") }
func Distance(a, b Curve) (Length, error)            { return 0, unsupported(a, "distance") }
