package tass

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
	twoPi   = 2 * math.Pi
)

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// dot performs the inner product.
func dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// cross performs the cross product.
func cross(a, b []float64) []float64 {
	return []float64{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]}
}

// finite returns whether none of the components is NaN or infinite.
func finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// reduceAngle returns the angle reduced into (-π, π].
func reduceAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a > math.Pi {
		a -= twoPi
	} else if a <= -math.Pi {
		a += twoPi
	}
	return a
}

// Deg2rad converts degrees to radians in [0, 2π).
func Deg2rad(a float64) float64 {
	r := math.Mod(a*deg2rad, twoPi)
	if r < 0 {
		r += twoPi
	}
	return r
}

// Cartesian2Spherical returns the provided Cartesian vector as (r, right ascension, declination).
func Cartesian2Spherical(a []float64) (b []float64) {
	b = make([]float64, 3)
	r := norm(a)
	if r == 0 {
		return
	}
	b[0] = r
	b[1] = math.Atan2(a[1], a[0])
	if b[1] < 0 {
		b[1] += twoPi
	}
	b[2] = math.Asin(a[2] / r)
	return
}
