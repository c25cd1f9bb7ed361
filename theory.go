package tass

import (
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ElementKind identifies one of the four series of a satellite.
type ElementKind int

const (
	// MeanMotion is the mean motion correction series.
	MeanMotion ElementKind = iota
	// MeanLongitude is the mean longitude series.
	MeanLongitude
	// Eccentricity is the (k, h) series.
	Eccentricity
	// Inclination is the (q, p) series.
	Inclination
)

// NumElementKinds is the number of series per satellite.
const NumElementKinds = 4

func (k ElementKind) String() string {
	switch k {
	case MeanMotion:
		return "mean motion"
	case MeanLongitude:
		return "mean longitude"
	case Eccentricity:
		return "eccentricity"
	case Inclination:
		return "inclination"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// SeriesTable holds the four series of each satellite.
type SeriesTable [NumSatellites][NumElementKinds]*ElementSeries

// Elements are the elements of one satellite at one epoch.
type Elements struct {
	MeanMotionAdjustment float64 // relative to the nominal mean motion
	Lambda               float64 // mean longitude in (-π, π]
	K, H                 float64 // e·cos ϖ, e·sin ϖ
	Q, P                 float64 // sin(i/2)·cos Ω, sin(i/2)·sin Ω
}

// String implements the Stringer interface.
func (e Elements) String() string {
	return fmt.Sprintf("dn=%.8f λ=%.8f k=%.8f h=%.8f q=%.8f p=%.8f", e.MeanMotionAdjustment, e.Lambda, e.K, e.H, e.Q, e.P)
}

// Theory evaluates TASS 1.7. It is immutable once created and may be shared
// between goroutines.
type Theory struct {
	consts Constants
	series SeriesTable
	frame  *mat.Dense // Saturn equator to J2000 ecliptic
	logger kitlog.Logger
}

// NewTheory returns a theory for these constants and series. The series are
// not copied and must not be modified afterwards.
func NewTheory(c Constants, series SeriesTable, logger kitlog.Logger) (*Theory, error) {
	for sat := range series {
		for kind, s := range series[sat] {
			if s == nil {
				return nil, errors.Errorf("missing %s series of %s", ElementKind(kind), Satellite(sat))
			}
		}
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Theory{consts: c, series: series, frame: equatorToEcliptic(c), logger: kitlog.With(logger, "subsys", "tass")}, nil
}

// Constants returns the constants of this theory.
func (t *Theory) Constants() Constants {
	return t.consts
}

// Series returns the series of the provided satellite and element.
func (t *Theory) Series(sat Satellite, kind ElementKind) *ElementSeries {
	return t.series[sat][kind]
}

// TimeArgument returns the time base of the satellite at this Julian date:
// years since the epoch, or days since Hyperion's own epoch.
func (t *Theory) TimeArgument(jd float64, sat Satellite) float64 {
	if sat.Kind() == HyperionSatellite {
		return jd - t.consts.EpochHyperion
	}
	return (jd - t.consts.Epoch) / DaysPerYear
}

// deltaLambdas returns the critical longitude corrections of every satellite.
func (t *Theory) deltaLambdas(jd float64) []float64 {
	δλ := make([]float64, NumSatellites)
	for sat := Mimas; sat <= Iapetus; sat++ {
		if sat.Kind() == HyperionSatellite {
			continue
		}
		δλ[sat] = t.series[sat][MeanLongitude].CriticalSin(t.TimeArgument(jd, sat), nil)
	}
	return δλ
}

func (t *Theory) elements(jd float64, sat Satellite, δλ []float64) (e Elements) {
	τ := t.TimeArgument(jd, sat)
	s := &t.series[sat]
	e.MeanMotionAdjustment = s[MeanMotion].Constant + s[MeanMotion].AllCos(τ, δλ)
	e.Lambda = reduceAngle(s[MeanLongitude].Linear(τ) + δλ[sat] + s[MeanLongitude].ShortPeriodSin(τ, δλ))
	e.K = s[Eccentricity].AllCos(τ, δλ)
	e.H = s[Eccentricity].AllSin(τ, δλ)
	e.Q = s[Inclination].AllCos(τ, δλ)
	e.P = s[Inclination].AllSin(τ, δλ)
	return
}

// Elements returns the elements of one satellite at the Julian date jd.
func (t *Theory) Elements(jd float64, sat Satellite) (Elements, error) {
	if err := sat.check(); err != nil {
		return Elements{}, err
	}
	return t.elements(jd, sat, t.deltaLambdas(jd)), nil
}

// AllElements returns the elements of the eight satellites at the Julian date jd.
func (t *Theory) AllElements(jd float64) (all [NumSatellites]Elements) {
	δλ := t.deltaLambdas(jd)
	for sat := Mimas; sat <= Iapetus; sat++ {
		all[sat] = t.elements(jd, sat, δλ)
	}
	return
}
