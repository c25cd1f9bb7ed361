package tass

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// NumCoefficients is the number of long period coefficients of a standard term.
const NumCoefficients = NumSatellites

// PeriodicTerm is one trigonometric summand of an element series.
type PeriodicTerm struct {
	Amplitude float64
	Phase     float64 // radians
	Frequency float64 // radians per unit of the time base
	// Coefficients multiply the long period longitude corrections of each
	// satellite; nil for Hyperion.
	Coefficients []int
}

// NewPeriodicTerm returns a coupled term. The coefficients are copied.
func NewPeriodicTerm(amplitude, phase, frequency float64, coeffs []int) PeriodicTerm {
	var cpy []int
	if coeffs != nil {
		cpy = make([]int, len(coeffs))
		copy(cpy, coeffs)
	}
	return PeriodicTerm{amplitude, phase, frequency, cpy}
}

// NewHyperionTerm returns a term without any long period coupling.
func NewHyperionTerm(amplitude, phase, frequency float64) PeriodicTerm {
	return PeriodicTerm{amplitude, phase, frequency, nil}
}

// Argument returns the argument of the term at time t. A nil deltas slice
// means no long period correction.
func (p PeriodicTerm) Argument(t float64, deltas []float64) float64 {
	arg := p.Phase
	n := len(p.Coefficients)
	if len(deltas) < n {
		n = len(deltas)
	}
	for i := 0; i < n; i++ {
		if c := p.Coefficients[i]; c != 0 {
			arg += deltas[i] * float64(c)
		}
	}
	return arg + p.Frequency*t
}

// ElementSeries is the trigonometric series of one element of one satellite.
// The first Critical terms are the critical terms, the rest are short period.
type ElementSeries struct {
	Constant float64
	Secular  float64
	Terms    []PeriodicTerm
	Critical int
}

// NewElementSeries returns a new series after checking the number of critical terms.
func NewElementSeries(constant, secular float64, terms []PeriodicTerm, critical int) (*ElementSeries, error) {
	if critical < 0 || critical > len(terms) {
		return nil, errors.Errorf("%d critical terms for a series of %d terms", critical, len(terms))
	}
	return &ElementSeries{constant, secular, terms, critical}, nil
}

// Linear returns the constant plus the secular drift at t.
func (s *ElementSeries) Linear(t float64) float64 {
	return s.Constant + t*s.Secular
}

// CriticalSin sums the critical terms in sine.
func (s *ElementSeries) CriticalSin(t float64, deltas []float64) float64 {
	return sumSin(s.Terms[:s.Critical], t, deltas)
}

// CriticalCos sums the critical terms in cosine.
func (s *ElementSeries) CriticalCos(t float64, deltas []float64) float64 {
	return sumCos(s.Terms[:s.Critical], t, deltas)
}

// ShortPeriodSin sums the short period terms in sine.
func (s *ElementSeries) ShortPeriodSin(t float64, deltas []float64) float64 {
	return sumSin(s.Terms[s.Critical:], t, deltas)
}

// ShortPeriodCos sums the short period terms in cosine.
func (s *ElementSeries) ShortPeriodCos(t float64, deltas []float64) float64 {
	return sumCos(s.Terms[s.Critical:], t, deltas)
}

// AllSin sums every term in sine.
func (s *ElementSeries) AllSin(t float64, deltas []float64) float64 {
	return sumSin(s.Terms, t, deltas)
}

// AllCos sums every term in cosine.
func (s *ElementSeries) AllCos(t float64, deltas []float64) float64 {
	return sumCos(s.Terms, t, deltas)
}

// String implements the Stringer interface.
func (s *ElementSeries) String() string {
	return fmt.Sprintf("constant=%g secular=%g terms=%d (%d critical)", s.Constant, s.Secular, len(s.Terms), s.Critical)
}

func sumSin(terms []PeriodicTerm, t float64, deltas []float64) (v float64) {
	for _, term := range terms {
		v += term.Amplitude * math.Sin(term.Argument(t, deltas))
	}
	return
}

func sumCos(terms []PeriodicTerm, t float64, deltas []float64) (v float64) {
	for _, term := range terms {
		v += term.Amplitude * math.Cos(term.Argument(t, deltas))
	}
	return
}
