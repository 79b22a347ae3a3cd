package utils

import (
	"math"

	"degtrig/trig"
)

func Cos(angle int) float64 {
	return trig.CosDegree(float64(angle))
}

func Sin(angle int) float64 {
	return trig.SinDegree(float64(angle))
}

// Degrees rounds an angle in radians to whole degrees.
func Degrees(angle float64) int {
	return int(math.Round(trig.ToDegrees(angle)))
}

func Atan2(y, x int) int {
	return int(math.Round(trig.Atan2Degree(float64(y), float64(x))))
}
