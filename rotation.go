package tass

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v []float64) (o []float64) {
	vVec := mat.NewVecDense(len(v), v)
	var rVec mat.VecDense
	rVec.MulVec(m, vVec)
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

// mulVecInto writes m·(x, y, 0) in the first three values of dst.
func mulVecInto(dst []float64, m mat.Matrix, x, y float64) {
	for i := 0; i < 3; i++ {
		dst[i] = m.At(i, 0)*x + m.At(i, 1)*y
	}
}

// equatorToEcliptic returns the rotation from Saturn's equator to the J2000
// ecliptic (node then inclination).
func equatorToEcliptic(c Constants) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		c.CO, -c.SO * c.CI, c.SO * c.SI,
		c.SO, c.CO * c.CI, -c.CO * c.SI,
		0, c.SI, c.CI})
}

// equinoctialPlane returns the rotation from the orbital plane to Saturn's
// equator for the inclination pair (p, q), with p² + q² < 1.
func equinoctialPlane(p, q float64) *mat.Dense {
	dwho := 2 * math.Sqrt(1-p*p-q*q)
	rtp := 1 - 2*p*p
	rtq := 1 - 2*q*q
	rdg := 2 * p * q
	return mat.NewDense(3, 3, []float64{
		rtp, rdg, 0,
		rdg, rtq, 0,
		-p * dwho, q * dwho, 0})
}

// EclipticToEquatorial returns the rotation from the J2000 ecliptic to the
// J2000 equator for the obliquity ε (radians).
func EclipticToEquatorial(ε float64) *mat.Dense {
	return R1(-ε)
}
