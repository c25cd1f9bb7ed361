package tass

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	keplerε = 1e-10
	// MaxKeplerIterations caps the Newton iterations on Kepler's equation.
	MaxKeplerIterations = 50
)

// ErrKeplerDiverged is returned when Kepler's equation does not converge,
// which only happens for non physical eccentricities.
var ErrKeplerDiverged = errors.New("kepler equation did not converge")

// solveKepler solves λ = F - k·sin F + h·cos F for the eccentric longitude F.
func solveKepler(λ, k, h float64) (F float64, iterations int, err error) {
	F = λ - k*math.Sin(λ) + h*math.Cos(λ)
	for iterations = 1; iterations <= MaxKeplerIterations; iterations++ {
		sinF, cosF := math.Sincos(F)
		δF := (λ - F + k*sinF - h*cosF) / (1 - k*cosF - h*sinF)
		F += δF
		if math.Abs(δF) < keplerε {
			return F, iterations, nil
		}
	}
	return F, MaxKeplerIterations, errors.Wrapf(ErrKeplerDiverged, "λ=%g k=%g h=%g after %d iterations", λ, k, h, MaxKeplerIterations)
}

// planeCoordinates returns the position (x1, y1) in units of the semi-major
// axis, and the derivatives of each with respect to F scaled by dF/dM.
func planeCoordinates(F, k, h float64) (x1, y1, dx1, dy1 float64) {
	sinF, cosF := math.Sincos(F)
	dlf := -k*sinF + h*cosF
	rsam1 := -k*cosF - h*sinF
	asr := 1 / (1 + rsam1)
	φ := math.Sqrt(1 - k*k - h*h)
	ψ := 1 / (1 + φ)
	x1 = cosF - k - ψ*h*dlf
	y1 = sinF - h + ψ*k*dlf
	dx1 = asr * (-sinF - ψ*h*rsam1)
	dy1 = asr * (cosF + ψ*k*rsam1)
	return
}

// meanMotion returns the adjusted mean motion in radians per year.
func (t *Theory) meanMotion(sat Satellite, el Elements) float64 {
	return DaysPerYear * t.consts.MeanMotions[sat] * (1 + el.MeanMotionAdjustment)
}

// SemiMajorAxis returns the semi-major axis (AU) for these elements.
func (t *Theory) SemiMajorAxis(sat Satellite, el Elements) float64 {
	am0 := t.meanMotion(sat, el)
	return math.Cbrt(t.consts.mu(sat) / (am0 * am0))
}

// toEcliptic returns the rotation from the orbital plane to the J2000 ecliptic.
func (t *Theory) toEcliptic(el Elements) *mat.Dense {
	var m mat.Dense
	m.Mul(t.frame, equinoctialPlane(el.P, el.Q))
	return &m
}

// state writes the position in R and, unless V is nil, the velocity in V.
// Both must hold at least three values.
func (t *Theory) state(sat Satellite, el Elements, R, V []float64) error {
	if err := sat.check(); err != nil {
		return err
	}
	F, _, err := solveKepler(el.Lambda, el.K, el.H)
	if err != nil {
		t.logger.Log("level", "critical", "satellite", sat, "err", err)
		return err
	}
	a := t.SemiMajorAxis(sat, el)
	x1, y1, dx1, dy1 := planeCoordinates(F, el.K, el.H)
	rot := t.toEcliptic(el)
	mulVecInto(R, rot, a*x1, a*y1)
	if V != nil {
		// AU/yr to AU/day
		an := a * t.meanMotion(sat, el) / DaysPerYear
		mulVecInto(V, rot, an*dx1, an*dy1)
	}
	return nil
}

// Position returns the position (AU) of the satellite with respect to Saturn,
// referred to the J2000 ecliptic and equinox.
func (t *Theory) Position(sat Satellite, el Elements) ([]float64, error) {
	R := make([]float64, 3)
	if err := t.state(sat, el, R, nil); err != nil {
		return nil, err
	}
	return R, nil
}

// PositionInto writes the position in dst, which is allocated if shorter
// than three, and returns it. dst is left untouched on error.
func (t *Theory) PositionInto(sat Satellite, el Elements, dst []float64) ([]float64, error) {
	if len(dst) < 3 {
		return t.Position(sat, el)
	}
	// state fails before writing anything.
	if err := t.state(sat, el, dst, nil); err != nil {
		return dst, err
	}
	return dst, nil
}

// PositionVelocity returns the position (AU) and velocity (AU/day) of the
// satellite with respect to Saturn.
func (t *Theory) PositionVelocity(sat Satellite, el Elements) (R, V []float64, err error) {
	R, V = make([]float64, 3), make([]float64, 3)
	if err = t.state(sat, el, R, V); err != nil {
		return nil, nil, err
	}
	return R, V, nil
}

// ElementsFromState returns the elements which correspond to the provided
// position (AU) and velocity (AU/day) with respect to Saturn. This is the
// inverse of PositionVelocity.
func (t *Theory) ElementsFromState(sat Satellite, R, V []float64) (el Elements, err error) {
	if err = sat.check(); err != nil {
		return
	}
	if len(R) != 3 || len(V) != 3 {
		return el, errors.Errorf("state vectors must be 3x1, got %d and %d", len(R), len(V))
	}
	back := t.frame.T()
	r2 := MxV33(back, R)
	v2 := MxV33(back, V)
	for i := range v2 {
		v2[i] *= DaysPerYear
	}
	hVec := cross(r2, v2)
	hNorm := norm(hVec)
	if hNorm == 0 {
		return el, errors.New("degenerate state: null angular momentum")
	}
	// The orbit normal is (2pc, -2qc, 1-2(p²+q²)) with c = cos(i/2).
	c := math.Sqrt((1 + hVec[2]/hNorm) / 2)
	el.P = hVec[0] / hNorm / (2 * c)
	el.Q = -hVec[1] / hNorm / (2 * c)

	plane := equinoctialPlane(el.P, el.Q)
	f := mat.Col(nil, 0, plane)
	g := mat.Col(nil, 1, plane)
	X, Y := dot(r2, f), dot(r2, g)
	VX, VY := dot(v2, f), dot(v2, g)

	μ := t.consts.mu(sat)
	r := norm(r2)
	a := 1 / (2/r - dot(v2, v2)/μ)
	hz := X*VY - Y*VX
	el.K = VY*hz/μ - X/r
	el.H = -VX*hz/μ - Y/r

	k, h := el.K, el.H
	φ := math.Sqrt(1 - k*k - h*h)
	ψ := 1 / (1 + φ)
	u, w := X/a+k, Y/a+h
	cosF := ((1-ψ*k*k)*u - ψ*h*k*w) / φ
	sinF := ((1-ψ*h*h)*w - ψ*h*k*u) / φ
	F := math.Atan2(sinF, cosF)
	el.Lambda = reduceAngle(F - k*math.Sin(F) + h*math.Cos(F))

	am0 := math.Sqrt(μ / (a * a * a))
	el.MeanMotionAdjustment = am0/(DaysPerYear*t.consts.MeanMotions[sat]) - 1
	if !finite([]float64{el.MeanMotionAdjustment, el.Lambda, el.K, el.H, el.Q, el.P}) {
		return el, errors.New("state is not on an elliptical orbit")
	}
	return el, nil
}
