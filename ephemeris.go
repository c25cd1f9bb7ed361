package tass

import (
	"math"

	"github.com/mshafiee/jpleph"
	"github.com/pkg/errors"
)

// LightDay is the distance travelled by light in one day, in AU.
const LightDay = 173.1446326846693

// SaturnEphemeris provides the place of Saturn as seen from the Earth.
type SaturnEphemeris interface {
	// GeocentricSaturn returns the geocentric position of Saturn (AU,
	// J2000 equator and equinox) at jd corrected for light time, and that
	// light time in days.
	GeocentricSaturn(jd float64) (pos []float64, lightTime float64, err error)
}

// BarycentricProvider returns barycentric positions (AU) of solar system
// bodies. *jpleph.Ephemeris satisfies it through jplBarycentric.
type BarycentricProvider interface {
	Barycentric(jd float64, body jpleph.Planet) ([]float64, error)
}

// JPLSaturn computes the place of Saturn from a JPL DE ephemeris.
type JPLSaturn struct {
	source BarycentricProvider
}

type jplBarycentric struct {
	eph *jpleph.Ephemeris
}

func (j jplBarycentric) Barycentric(jd float64, body jpleph.Planet) ([]float64, error) {
	pos, _, err := j.eph.CalculatePV(jd, body, jpleph.CenterSolarSystemBarycenter, false)
	if err != nil {
		return nil, err
	}
	return []float64{pos.X, pos.Y, pos.Z}, nil
}

// NewJPLSaturn returns the Saturn provider backed by an opened JPL ephemeris.
func NewJPLSaturn(eph *jpleph.Ephemeris) *JPLSaturn {
	return &JPLSaturn{jplBarycentric{eph}}
}

// NewSaturnFromProvider returns the Saturn provider backed by any source of barycentric positions.
func NewSaturnFromProvider(source BarycentricProvider) *JPLSaturn {
	return &JPLSaturn{source}
}

// OpenJPLSaturn opens the JPL DE binary file and returns the Saturn provider
// and the ephemeris, which must be closed by the caller.
func OpenJPLSaturn(filename string) (*JPLSaturn, *jpleph.Ephemeris, error) {
	eph, err := jpleph.NewEphemeris(filename, false)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", filename)
	}
	return NewJPLSaturn(eph), eph, nil
}

// GeocentricSaturn implements SaturnEphemeris.
func (j *JPLSaturn) GeocentricSaturn(jd float64) (pos []float64, τ float64, err error) {
	earth, err := j.source.Barycentric(jd, jpleph.Earth)
	if err != nil {
		return nil, 0, errors.Wrap(err, "earth")
	}
	pos = make([]float64, 3)
	// Three iterations leave an error well below a millisecond.
	for i := 0; i < 3; i++ {
		saturn, err := j.source.Barycentric(jd-τ, jpleph.Saturn)
		if err != nil {
			return nil, 0, errors.Wrap(err, "saturn")
		}
		for c := range pos {
			pos[c] = saturn[c] - earth[c]
		}
		τ = norm(pos) / LightDay
	}
	if !finite(pos) || math.IsNaN(τ) {
		return nil, 0, errors.New("invalid Saturn position")
	}
	return pos, τ, nil
}
