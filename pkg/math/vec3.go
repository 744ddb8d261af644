// Package math provides the vector and matrix types used to place road
// centerline vertices in world space.
package math

import (
	"math"
	"strconv"
)

// Vec3 is a 3D point or vector in double precision.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// Round returns v with every component rounded to the given number of
// decimal places.
func (v Vec3) Round(places int) Vec3 {
	return Vec3{Round(v.X, places), Round(v.Y, places), Round(v.Z, places)}
}

// Round rounds x to the given number of decimal places. The exact binary
// value of x is rounded, with exact ties going to the even digit
// (0.125 -> 0.12, 0.375 -> 0.38).
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	if r == 0 {
		// Avoid emitting -0.0.
		return 0
	}
	return r
}

// PathLength returns the summed segment length of an ordered point chain.
func PathLength(points []Vec3) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	return total
}
