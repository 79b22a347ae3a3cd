// Package trig provides sine, cosine and two-argument arctangent working in
// degrees. Angles that reduce to a multiple of 90 degrees give exact results
// (0, 1, -1) instead of the rounding noise left behind by a plain
// degree-to-radian conversion, so sin(180) is 0 and not 1.2246e-16.
//
// Every function is generic over the float width. float32 and float64 each
// use their own rounding of Pi, and the arithmetic of each step is done in
// that width.
package trig

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// sin(n*90) for n = -4..6, indexed by n+4.
var sinN90Table = [...]int{0, 1, 0, -1, 0, 1, 0, -1, 0, 1, 0}

func sinN90(n int) int {
	i := n + 4
	if i < 0 || i >= len(sinN90Table) {
		panic(fmt.Sprintf("trig: quadrant %d out of range", n))
	}
	return sinN90Table[i]
}

func pi[T constraints.Float]() T {
	return T(math.Pi)
}

// ToRadians converts degrees to radians.
func ToRadians[T constraints.Float](degrees T) T {
	return degrees * pi[T]() / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees[T constraints.Float](radians T) T {
	return radians * 180 / pi[T]()
}

// SinDegree returns the sine of angle, given in degrees.
//
// NaN and infinite inputs return NaN.
func SinDegree[T constraints.Float](angle T) T {
	v := T(math.Mod(float64(angle), 360))
	x := v / 90
	if x == T(math.Floor(float64(x))) {
		return T(sinN90(int(x)))
	}
	return T(math.Sin(float64(ToRadians(v))))
}

// CosDegree returns the cosine of angle, given in degrees.
func CosDegree[T constraints.Float](angle T) T {
	return SinDegree(90 - angle)
}

// Atan2Degree returns the arc tangent of y/x in degrees, using the signs of
// both to pick the quadrant. The result is in (-180, 180].
func Atan2Degree[T constraints.Float](y, x T) T {
	v := T(math.Atan2(float64(y), float64(x)))
	return ToDegrees(v)
}
