package tass

import (
	"math"

	"github.com/mshafiee/jpleph"
	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/planetposition"
	"gonum.org/v1/gonum/mat"
)

// VSOP87Bodies provides heliocentric positions of the Earth and Saturn from
// the VSOP87B files, referred to the J2000 equator. It is a BarycentricProvider
// whose origin is the Sun, which is irrelevant to the difference of two bodies.
type VSOP87Bodies struct {
	earth, saturn *planetposition.V87Planet
	toEquator     *mat.Dense
}

// LoadVSOP87Bodies loads the Earth and Saturn from the VSOP87B files of dir.
// Note that the whole files are loaded.
func LoadVSOP87Bodies(dir string) (*VSOP87Bodies, error) {
	earth, err := planetposition.LoadPlanetPath(planetposition.Earth, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load the Earth from %s", dir)
	}
	saturn, err := planetposition.LoadPlanetPath(planetposition.Saturn, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load Saturn from %s", dir)
	}
	ε := nutation.MeanObliquity(EpochHyperion).Rad()
	return &VSOP87Bodies{earth, saturn, EclipticToEquatorial(ε)}, nil
}

// Barycentric implements BarycentricProvider for the Earth and Saturn only.
func (v *VSOP87Bodies) Barycentric(jd float64, body jpleph.Planet) ([]float64, error) {
	var planet *planetposition.V87Planet
	switch body {
	case jpleph.Earth:
		planet = v.earth
	case jpleph.Saturn:
		planet = v.saturn
	default:
		return nil, errors.Errorf("body %d is not loaded", body)
	}
	l, b, r := planet.Position2000(jd)
	return MxV33(v.toEquator, sphericalToCartesian(r, l.Rad(), b.Rad())), nil
}

// NewVSOP87Saturn returns the Saturn provider backed by VSOP87B files.
func NewVSOP87Saturn(dir string) (*JPLSaturn, error) {
	bodies, err := LoadVSOP87Bodies(dir)
	if err != nil {
		return nil, err
	}
	return NewSaturnFromProvider(bodies), nil
}

// sphericalToCartesian returns the rectangular coordinates from the
// longitude, latitude and distance.
func sphericalToCartesian(r, l, b float64) []float64 {
	sB, cB := math.Sincos(b)
	sL, cL := math.Sincos(l)
	return []float64{r * cB * cL, r * cB * sL, r * sB}
}
