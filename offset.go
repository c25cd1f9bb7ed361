package tass

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

// OffsetMethod selects how the apparent offset of a satellite is computed.
type OffsetMethod uint8

const (
	// Simplified projects the satellite's Saturn centric vector on the plane of the sky.
	Simplified OffsetMethod = iota
	// Rigorous differences the right ascensions and declinations of the satellite and of Saturn.
	Rigorous
)

func (m OffsetMethod) String() string {
	if m == Rigorous {
		return "rigorous"
	}
	return "simplified"
}

// OffsetMethodFromString returns the method from its name.
func OffsetMethodFromString(name string) (OffsetMethod, error) {
	switch strings.ToLower(name) {
	case "simplified":
		return Simplified, nil
	case "rigorous", "exact":
		return Rigorous, nil
	default:
		return 0, errors.Errorf("unknown offset method '%s'", name)
	}
}

// OffsetComponent is one of the three components of an offset.
type OffsetComponent uint8

const (
	// XOffset is the offset in right ascension (arcseconds, times cos δ).
	XOffset OffsetComponent = iota
	// YOffset is the offset in declination (arcseconds).
	YOffset
	// ZOffset is the offset along the line of sight.
	ZOffset
)

func (c OffsetComponent) String() string {
	return [...]string{"x", "y", "z"}[c%3]
}

// Offset computes the apparent offset of a satellite from Saturn. It is not
// safe for concurrent use because each Offset keeps its method and component.
type Offset struct {
	Theory    *Theory
	Ephemeris SaturnEphemeris
	Satellite Satellite
	Method    OffsetMethod
	Component OffsetComponent
	toJ2000   *mat.Dense
	err       error
}

// NewOffset returns the offset of this satellite, computed with the simplified method.
func NewOffset(theory *Theory, eph SaturnEphemeris, sat Satellite) (*Offset, error) {
	if err := sat.check(); err != nil {
		return nil, err
	}
	ε := nutation.MeanObliquity(EpochHyperion).Rad() // J2000.0
	return &Offset{Theory: theory, Ephemeris: eph, Satellite: sat, toJ2000: EclipticToEquatorial(ε)}, nil
}

// Offsets returns the three components of the offset at jd. The first two
// are in arcseconds. The third is in arcseconds for the simplified method
// and in AU for the rigorous one.
func (o *Offset) Offsets(jd float64) ([3]float64, error) {
	var offsets [3]float64
	saturn, τ, err := o.Ephemeris.GeocentricSaturn(jd)
	if err != nil {
		return offsets, errors.Wrap(err, "saturn ephemeris")
	}
	el, err := o.Theory.Elements(jd-τ, o.Satellite)
	if err != nil {
		return offsets, err
	}
	ecl, err := o.Theory.Position(o.Satellite, el)
	if err != nil {
		return offsets, err
	}
	sat := MxV33(o.toJ2000, ecl)
	sph := Cartesian2Spherical(saturn)
	distance, α, δ := sph[0], sph[1], sph[2]

	switch o.Method {
	case Simplified:
		sα, cα := math.Sincos(α)
		sδ, cδ := math.Sincos(δ)
		u := []float64{cα * cδ, sα * cδ, sδ}
		v := []float64{-sα, cα, 0}
		w := []float64{-cα * sδ, -sα * sδ, cδ}
		offsets[0] = unit.Angle(dot(v, sat) / distance).Sec()
		offsets[1] = unit.Angle(dot(w, sat) / distance).Sec()
		offsets[2] = unit.Angle(dot(u, sat) / distance).Sec()
	case Rigorous:
		satellite := make([]float64, 3)
		for i := range satellite {
			satellite[i] = saturn[i] + sat[i]
		}
		ssph := Cartesian2Spherical(satellite)
		offsets[0] = unit.Angle(reduceAngle(ssph[1]-α) * math.Cos(δ)).Sec()
		offsets[1] = unit.Angle(ssph[2] - δ).Sec()
		offsets[2] = ssph[0] - distance
	default:
		return offsets, errors.Errorf("unknown offset method %d", o.Method)
	}
	return offsets, nil
}

// Evaluate returns the selected component at jd. It is meant to be handed to
// FitChebyshev: any failure is kept and reported by Err, and NaN is returned.
func (o *Offset) Evaluate(jd float64) float64 {
	offsets, err := o.Offsets(jd)
	if err != nil {
		if o.err == nil {
			o.err = err
		}
		return math.NaN()
	}
	return offsets[o.Component]
}

// Err returns the first error met by Evaluate, if any.
func (o *Offset) Err() error {
	return o.err
}

// Chebyshev fits the selected component over [t0, t1] with n coefficients.
func (o *Offset) Chebyshev(t0, t1 float64, n int) ([]float64, error) {
	o.err = nil
	coeffs, err := FitChebyshev(o.Evaluate, t0, t1, n)
	if err != nil {
		return nil, err
	}
	if o.err != nil {
		return nil, errors.Wrapf(o.err, "%s offset of %s", o.Component, o.Satellite)
	}
	return coeffs, nil
}
