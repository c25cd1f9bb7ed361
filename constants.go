package tass

import "math"

const (
	// GaussK is the Gaussian gravitational constant.
	GaussK = 0.01720209895
	// SaturnMass is the mass of Saturn in solar masses.
	SaturnMass = 1.0 / 3498.790
	// EpochTASS is the reference epoch (JD) of every satellite but Hyperion.
	EpochTASS = 2444240.0
	// EpochHyperion is the reference epoch (JD) of Hyperion.
	EpochHyperion = 2451545.0
	// DaysPerYear is the number of days in a Julian year.
	DaysPerYear = 365.25

	// Saturn's equator on the J2000 ecliptic, degrees.
	saturnEquatorInclination = 28.0512
	saturnEquatorNode        = 169.5291
)

// Constants holds the physical constants of a version of the theory.
// A Constants value is never mutated by the theory: substitute a different
// one to evaluate an alternate theory.
type Constants struct {
	// Masses are the satellite masses as fractions of Saturn's.
	Masses [NumSatellites]float64
	// MeanMotions are the nominal mean motions in radians per day.
	MeanMotions [NumSatellites]float64
	// GK1 is k²·M(Saturn) in AU³/yr².
	GK1 float64
	// Epoch is the JD origin of the standard time base.
	Epoch float64
	// EpochHyperion is the JD origin of Hyperion's time base.
	EpochHyperion float64
	// CO, SO are the cosine and sine of the node of Saturn's equator on the J2000 ecliptic.
	CO, SO float64
	// CI, SI are the cosine and sine of the inclination of Saturn's equator.
	CI, SI float64
}

// DefaultConstants returns the constants of TASS 1.7.
func DefaultConstants() Constants {
	c := Constants{
		Masses: [NumSatellites]float64{
			1.0 / 0.1577287066246e+08,
			1.0 / 0.6666666666667e+07,
			1.0 / 0.9433962264151e+06,
			1.0 / 0.5094243504840e+06,
			1.0 / 0.2314814814815e+06,
			1.0 / 0.4225863977890e+04,
			1.0 / 0.3333333333333e+08,
			1.0 / 0.3225806451613e+06,
		},
		MeanMotions: [NumSatellites]float64{
			0.6667061728782e+01,
			0.4585536751534e+01,
			0.3328306445055e+01,
			0.2295717646433e+01,
			0.1390853715957e+01,
			0.3940425676910e+00,
			0.2953088138695e+00,
			0.7920197763193e-01,
		},
		GK1:           math.Pow(GaussK*DaysPerYear, 2) * SaturnMass,
		Epoch:         EpochTASS,
		EpochHyperion: EpochHyperion,
	}
	c.SO, c.CO = math.Sincos(Deg2rad(saturnEquatorNode))
	c.SI, c.CI = math.Sincos(Deg2rad(saturnEquatorInclination))
	return c
}

// mu returns the gravitational parameter of the Saturn and satellite pair (AU³/yr²).
func (c Constants) mu(sat Satellite) float64 {
	return c.GK1 * (1 + c.Masses[sat])
}
