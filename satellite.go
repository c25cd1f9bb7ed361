package tass

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidSatellite is returned for a satellite index outside of [0, 7].
var ErrInvalidSatellite = errors.New("satellite index out of range")

// Satellite identifies one of the eight major satellites of Saturn.
type Satellite int

const (
	// Mimas is Saturn I.
	Mimas Satellite = iota
	// Enceladus is Saturn II.
	Enceladus
	// Tethys is Saturn III.
	Tethys
	// Dione is Saturn IV.
	Dione
	// Rhea is Saturn V.
	Rhea
	// Titan is Saturn VI.
	Titan
	// Hyperion is Saturn VII.
	Hyperion
	// Iapetus is Saturn VIII.
	Iapetus
)

// NumSatellites is the number of satellites in the theory.
const NumSatellites = 8

var satelliteNames = [NumSatellites]string{"Mimas", "Enceladus", "Tethys", "Dione", "Rhea", "Titan", "Hyperion", "Iapetus"}

// SatelliteKind tags the two families of satellites in the theory.
type SatelliteKind uint8

const (
	// StandardSatellite uses a time base in Julian years and coupled series records.
	StandardSatellite SatelliteKind = iota
	// HyperionSatellite uses a time base in days from its own epoch and reduced records.
	HyperionSatellite
)

func (k SatelliteKind) String() string {
	if k == HyperionSatellite {
		return "hyperion"
	}
	return "standard"
}

// Kind returns the variant of the theory which applies to this satellite.
func (s Satellite) Kind() SatelliteKind {
	if s == Hyperion {
		return HyperionSatellite
	}
	return StandardSatellite
}

// Valid returns whether this satellite is part of the theory.
func (s Satellite) Valid() bool {
	return s >= Mimas && s <= Iapetus
}

// check returns a descriptive error if the satellite is invalid.
func (s Satellite) check() error {
	if !s.Valid() {
		return errors.Wrapf(ErrInvalidSatellite, "satellite %d", int(s))
	}
	return nil
}

// String implements the Stringer interface.
func (s Satellite) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Satellite(%d)", int(s))
	}
	return satelliteNames[s]
}

// SatelliteFromString returns the satellite from its name (case insensitive).
func SatelliteFromString(name string) (Satellite, error) {
	for i, sname := range satelliteNames {
		if strings.EqualFold(name, sname) {
			return Satellite(i), nil
		}
	}
	return -1, errors.Errorf("undefined satellite '%s'", name)
}

// Satellites returns all the satellites of the theory in index order.
func Satellites() []Satellite {
	sats := make([]Satellite, NumSatellites)
	for i := range sats {
		sats[i] = Satellite(i)
	}
	return sats
}
