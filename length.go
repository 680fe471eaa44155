/*
Package figuring is a 2D circular-arc geometry core. It models arcs, the
curve type hierarchy built on top of them (line strings, circular strings,
compound curves, curve polygons, and their multi- collections), and the
operations that convert between curved and linear representations.
*/
package figuring

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// equalEpsilon is used by the equals methods to compare floats.
	// differences less than this are considered equal
	equalEpsilon = 1e-5

	// zeroEpsilon is used to check some values against zero.
	zeroEpsilon = 1e-9
)

// Radians is used for angle measurements.
type Radians float64

// RadiansFromDegrees creates a Radian value from a degrees value.
func RadiansFromDegrees(f float64) Radians { return Radians(f * math.Pi / 180) }

// RadiansFromFloat creates and normalizes a Radian value to be betwee 0 <= r <
// 2*math.Pi
func RadiansFromFloat(f float64) Radians { return Radians(f).Normalize() }

// Degrees create a degree value from a radian value.
func (r Radians) Degrees() float64 { return float64(r) * 180 / math.Pi }

// Normalize the radians to between 0 <= r < 2*math.Pi
func (r Radians) Normalize() Radians {
	n := Radians(math.Mod(float64(r), 2*math.Pi))
	if Signbit(n) {
		n = Radians(2*math.Pi) + n
	}
	if IsEqual(n, Radians(2*math.Pi)) {
		n = 0
	}
	return n
}

// String for outputting.
func (r Radians) String() string { return fmt.Sprintf("θ(%0.5fπ)", float64(r/math.Pi)) }

// OrErr tests if the value is a NaN or Inf value and returns an error if it is.
func (r Radians) OrErr() (Radians, *FloatingPointError) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, -1) || math.IsInf(f, 1) {
		return r, &FloatingPointError{v: f}
	}
	return r, nil
}

// Length is used for distance measurements, in whatever planar unit the
// caller's coordinates are already expressed in - this core never converts
// between units of measure, unlike the teacher's Bezier/polygon toolkit.
type Length float64

// OrErr tests if a length is a NaN or Inf value and returns an error if it is.
func (d Length) OrErr() (Length, *FloatingPointError) {
	f := float64(d)
	if math.IsNaN(f) || math.IsInf(f, -1) || math.IsInf(f, 1) {
		return d, &FloatingPointError{v: f}
	}
	return d, nil
}

// FloatingPointError provides an error interfaced wrapper for floats.
type FloatingPointError struct {
	v float64
}

// Error implements the error interface.
func (e *FloatingPointError) Error() string {
	if math.IsNaN(e.v) {
		return "NaN encountered"
	}
	if math.IsInf(e.v, -1) {
		return "Negative Inf encountered"
	}
	if math.IsInf(e.v, 1) {
		return "Positive Inf encountered"
	}
	return fmt.Sprintf("%g resulted in an error", e.v)
}

// IsNaN tests if the error was because of a NaN value.
func (e *FloatingPointError) IsNaN() bool { return math.IsNaN(e.v) }

// IsInf tests if the error was because of a Inf value, positive or negative.
func (e *FloatingPointError) IsInf() bool { return math.IsInf(e.v, 0) }

// IsPosInf tests if the error was because of a positive Inf value.
func (e *FloatingPointError) IsPosInf() bool { return math.IsInf(e.v, 1) }

// IsNegInf tests if the error was because of a negative Inf value.
func (e *FloatingPointError) IsNegInf() bool { return math.IsInf(e.v, -1) }

// Minimum returns the smallest value from a set of values. Discards NaN values.
func Minimum[T Radians | Length | float64](vals ...T) (ret T) {
	if len(vals) < 1 {
		return ret
	}

	ret = vals[0]
	for _, v := range vals {
		if v < ret || math.IsNaN(float64(ret)) {
			ret = v
		}
	}
	return ret
}

// Maximum returns the largest value from a set of values. Discards NaN values.
func Maximum[T Radians | Length | float64](vals ...T) (ret T) {
	if len(vals) < 1 {
		return ret
	}

	ret = vals[0]
	for _, v := range vals {
		if v > ret || math.IsNaN(float64(ret)) {
			ret = v
		}
	}
	return ret
}

// Clamp value v between min and max. Preserves NaN values.
func Clamp[T Radians | Length | float64](min, v, max T) T {
	if v < min {
		v = min
	} else if v > max {
		v = max
	}
	return v
}

// IsEqual tests if two values are within a tolerance of each other.
func IsEqual[T Radians | Length | float64](a, b T) bool {
	return mgl64.FloatEqualThreshold(float64(a), float64(b), equalEpsilon)
}

// IsZero tests if a value is within a tolerance of zero.
func IsZero[T Radians | Length | float64](a T) bool {
	if -zeroEpsilon < a && a < zeroEpsilon {
		return true
	}
	return false
}

// Signbit tests if the (negative) sign bit is set on a value.
func Signbit[T Radians | Length | float64](a T) bool { return math.Signbit(float64(a)) }

// HumanFormat outputs the floating point value with the desired percision.
// Trailing zeros are trimmed.
func HumanFormat[T Radians | Length | float64](percision int, v T) string {
	fmtstr := fmt.Sprintf("%%.%df", percision)
	str := fmt.Sprintf(fmtstr, v)
	idx := strings.LastIndexAny(str, "123456789.")
	if idx > -1 {
		str = str[:idx+1]
	}
	if strings.HasSuffix(str, ".") {
		str = str[:len(str)-1]
	}
	return str
}
