package figuring

import (
	"fmt"
	"math"
	"testing"
)

func TestRadians(t *testing.T) {
	degreesTests := []struct {
		degrees float64
		rads    Radians
	}{
		{180.0, Radians(math.Pi)},
		{90.0, Radians(math.Pi / 2)},
		{30.0, Radians(math.Pi / 6)},
		{720.0, Radians(4 * math.Pi)},
		{-720.0, Radians(-4 * math.Pi)},
	}
	for h, test := range degreesTests {
		rads := RadiansFromDegrees(test.degrees)
		if !IsEqual(rads, test.rads) {
			t.Errorf("[%d] RadiansFromDegrees(%f). %v != %v",
				h, test.degrees, rads, test.rads)
		}
		degrees := rads.Degrees()
		if !IsEqual(degrees, test.degrees) {
			t.Errorf("[%d] (%v).Degrees() failed. %v != %v",
				h, test.degrees, degrees, test.degrees)
		}
	}

	normalizeTests := []struct {
		rads       Radians
		normalized Radians
	}{
		{Radians(math.Pi), RadiansFromFloat(math.Pi)},
		{Radians(2 * math.Pi), Radians(0)},
		{Radians(3 * math.Pi), Radians(math.Pi)},
		{Radians(-3.3 * math.Pi), Radians(0.7 * math.Pi)},
		{Radians(8 * math.Pi), Radians(0)},
		{Radians(-8 * math.Pi), Radians(0)},
		{Radians(3 * math.Pi), RadiansFromFloat(3 * math.Pi)},
		{Radians(-3 * math.Pi), RadiansFromFloat(3 * math.Pi)},
		{Radians(8 * math.Pi), RadiansFromFloat(8 * math.Pi)},
		{Radians(-8 * math.Pi), RadiansFromFloat(8 * math.Pi)},
	}
	for h, test := range normalizeTests {
		rads := test.rads.Normalize()
		if !IsEqual(rads, test.normalized) {
			t.Errorf("[%d] (%f).Normalize() failed. %v != %v",
				h, test.rads, rads, test.normalized)
		}
	}

	zeroTests := []struct {
		rads   Radians
		isZero bool
	}{
		{Radians(0), true},
		{Radians(1e-10), true},
		{Radians(1e-9 - 1e-10), true},
		{Radians(1e-9 + 1e-11), false},
		{Radians(1), false},
		{RadiansFromFloat(2 * math.Pi), true},
	}
	for h, test := range zeroTests {
		result := IsZero(test.rads)
		if result != test.isZero {
			t.Errorf("[%d] (%v).IsZero() failed. %t != %t",
				h, test.rads, result, test.isZero)
		}
	}

	stringTests := []struct {
		rads      Radians
		expected  string
		expected2 string
	}{
		{Radians(0), "θ(0.00000π)", "0.000000"},
		{Radians(math.Pi), "θ(1.00000π)", "3.141593"},
		{Radians(5 * math.Pi / 6), "θ(0.83333π)", "2.617994"},
		{Radians(15 * math.Pi / 6), "θ(2.50000π)", "7.853982"},
	}
	for h, test := range stringTests {
		str := test.rads.String()
		if str != test.expected {
			t.Errorf("[%d] (%v).String() failed. %s != %s",
				h, test.rads, str, test.expected)
		}
		str = fmt.Sprintf("%f", test.rads)
		if str != test.expected2 {
			t.Errorf("[%d] (%v).%%f failed. %s != %s",
				h, test.rads, str, test.expected2)
		}
	}

	limitTests := []struct {
		s   []Radians
		min Radians
		max Radians
	}{
		{[]Radians{-100, -10, -1, 0, 1, 10, 100}, -100, 100},
		{[]Radians{100, 10, 1, 0, -1, -10, -100}, -100, 100},
		{[]Radians{100, -100, 10, -10, 1, -1, 0}, -100, 100},
		{[]Radians{0.001, 0.002, 0.003, 0.004, 0}, 0, 0.004},
		{[]Radians{0, 0.004, 0.003, 0.002, 0.001}, 0, 0.004},
		{[]Radians{}, 0, 0},
	}
	for h, test := range limitTests {
		min := Minimum(test.s...)
		if !IsEqual(min, test.min) {
			t.Errorf("[%d]MinRadians(...) failed. %v != %v",
				h, min, test.min)
		}
		max := Maximum(test.s...)
		if !IsEqual(max, test.max) {
			t.Errorf("[%d]MaxRadians(...) failed. %v != %v",
				h, max, test.max)
		}
	}

	clampTests := []struct {
		rads     Radians
		min, max Radians
		expected Radians
	}{
		{100, -10, 10, 10},
		{-100, -10, 10, -10},
		{-5, -10, 10, -5},
		{5, -10, 10, 5},
		{0.1, 0, 1, 0.1},
		{0.9, 0, 1, 0.9},
		{-0.1, 0, 1, 0},
		{1.1, 0, 1, 1},
	}
	for h, test := range clampTests {
		r := Clamp(test.min, test.rads, test.max)
		if !IsEqual(r, test.expected) {
			t.Errorf("[%d]ClampLength(...) failed. %v != %v",
				h, r, test.expected)
		}
	}

	isErrorTests := []struct {
		rads  Radians
		isErr bool
	}{
		{Radians(0), false},
		{Radians(math.Pi), false},
		{Radians(math.NaN()), true},
		{Radians(math.Inf(1)), true},
		{Radians(math.Inf(-1)), true},
	}

	for h, test := range isErrorTests {
		_, err := test.rads.OrErr()
		if (err != nil) != test.isErr {
			t.Errorf("[%d](%v).OrErr() failed. %t != %t. %v",
				h, test.rads, (err != nil), test.isErr, err)
		}
	}
}

func TestLengthClampAndLimits(t *testing.T) {
	clampTests := []struct {
		lngth    Length
		min, max Length
		expected Length
	}{
		{100, -10, 10, 10},
		{-100, -10, 10, -10},
		{-5, -10, 10, -5},
		{5, -10, 10, 5},
		{0.1, 0, 1, 0.1},
		{0.9, 0, 1, 0.9},
		{-0.1, 0, 1, 0},
		{1.1, 0, 1, 1},
	}
	for h, test := range clampTests {
		r := Clamp(test.min, test.lngth, test.max)
		if !IsEqual(r, test.expected) {
			t.Errorf("[%d]Clamp(...) failed. %v != %v",
				h, r, test.expected)
		}
	}

	limitTests := []struct {
		s        []Length
		min, max Length
	}{
		{[]Length{-100, -10, -1, 0, 1, 10, 100}, -100, 100},
		{[]Length{100, -100, 10, -10, 1, -1, 0}, -100, 100},
		{[]Length{0.001, 0.002, 0.003}, 0.001, 0.003},
		{[]Length{}, 0, 0},
	}
	for h, test := range limitTests {
		min := Minimum(test.s...)
		if !IsEqual(min, test.min) {
			t.Errorf("[%d]Minimum(...) failed. %v != %v", h, min, test.min)
		}
		max := Maximum(test.s...)
		if !IsEqual(max, test.max) {
			t.Errorf("[%d]Maximum(...) failed. %v != %v", h, max, test.max)
		}
	}
}

func TestLengthZeroAndSignbit(t *testing.T) {
	zeroTests := []struct {
		lngth  Length
		isZero bool
	}{
		{Length(0), true},
		{Length(1e-10), true},
		{Length(1e-9 - 1e-10), true},
		{Length(1e-9 + 1e-11), false},
		{Length(1), false},
		{Length(-1), false},
	}
	for h, test := range zeroTests {
		result := IsZero(test.lngth)
		if result != test.isZero {
			t.Errorf("[%d] (%v).IsZero() failed. %t != %t",
				h, test.lngth, result, test.isZero)
		}
	}

	signTests := []struct {
		lngth    Length
		negative bool
	}{
		{Length(1), false},
		{Length(-1), true},
		{Length(0), false},
		{Length(math.Copysign(0, -1)), true},
	}
	for h, test := range signTests {
		result := Signbit(test.lngth)
		if result != test.negative {
			t.Errorf("[%d] Signbit(%v) failed. %t != %t",
				h, test.lngth, result, test.negative)
		}
	}
}

func TestLengthOrErr(t *testing.T) {
	isErrorTests := []struct {
		lngth Length
		isErr bool
	}{
		{Length(0), false},
		{Length(math.Pi), false},
		{Length(math.NaN()), true},
		{Length(math.Inf(1)), true},
		{Length(math.Inf(-1)), true},
	}

	for h, test := range isErrorTests {
		_, err := test.lngth.OrErr()
		if (err != nil) != test.isErr {
			t.Errorf("[%d](%v).OrErr() failed. %t != %t. %v",
				h, test.lngth, (err != nil), test.isErr, err)
		}
		if err == nil || !test.isErr {
			continue
		}
		nan := math.IsNaN(float64(test.lngth))
		if nan && !err.IsNaN() {
			t.Errorf("[%d] FloatingPointError.IsNaN failed. %f",
				h, test.lngth)
		} else if nan && err.Error() != "NaN encountered" {
			t.Errorf("[%d] FloatingPointError.Error() IsNaN failed. %v",
				h, err.Error())
		}
		posinf := math.IsInf(float64(test.lngth), 1)
		if posinf && !err.IsPosInf() {
			t.Errorf("[%d] FloatingPointError.IsPosInf failed. %f",
				h, test.lngth)
		} else if posinf && err.Error() != "Positive Inf encountered" {
			t.Errorf("[%d] FloatingPointError.Error() IsPosInf failed. %v",
				h, err.Error())
		}
		neginf := math.IsInf(float64(test.lngth), -1)
		if neginf && !err.IsNegInf() {
			t.Errorf("[%d] FloatingPointError.IsNegInf failed. %f",
				h, test.lngth)
		} else if neginf && err.Error() != "Negative Inf encountered" {
			t.Errorf("[%d] FloatingPointError.Error() IsNegInf failed. %v",
				h, err.Error())
		}
		inf := math.IsInf(float64(test.lngth), 0)
		if inf && !err.IsInf() {
			t.Errorf("[%d] FloatingPointError.IsInf failed. %f",
				h, test.lngth)
		}
	}
}

func TestHumanFormat(t *testing.T) {
	tests := []struct {
		precision int
		v         Length
		expected  string
	}{
		{3, Length(5), "5"},
		{3, Length(5.1), "5.1"},
		{3, Length(5.100), "5.1"},
		{3, Length(5.123456), "5.123"},
		{0, Length(5.9), "6"},
		{2, Length(0), "0"},
	}
	for h, test := range tests {
		got := HumanFormat(test.precision, test.v)
		if got != test.expected {
			t.Errorf("[%d] HumanFormat(%d, %v) failed. %s != %s",
				h, test.precision, test.v, got, test.expected)
		}
	}
}
