package tass

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrChebyshevOrder is returned when fewer than one coefficient is requested.
	ErrChebyshevOrder = errors.New("chebyshev fit needs at least one coefficient")
	// ErrChebyshevInterval is returned for a zero width fit interval.
	ErrChebyshevInterval = errors.New("chebyshev fit interval has zero width")
	// ErrOutsideInterval is returned when evaluating a series outside of its interval.
	ErrOutsideInterval = errors.New("date outside of the chebyshev interval")
)

// FitChebyshev returns the n Chebyshev coefficients of f over [t0, t1]: f is
// sampled at the n Chebyshev nodes of the interval, and the first coefficient
// is halved so that f ≈ Σ c_j·T_j(x) with x = 2(t-t0)/(t1-t0) - 1.
func FitChebyshev(f func(t float64) float64, t0, t1 float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrChebyshevOrder, "n=%d", n)
	}
	if t0 == t1 {
		return nil, errors.Wrapf(ErrChebyshevInterval, "t0=t1=%f", t0)
	}
	half := (t1 - t0) / 2
	fk := make([]float64, n)
	for k := range fk {
		x := math.Cos(math.Pi * (float64(k) + 0.5) / float64(n))
		fk[k] = f(t0 + (x+1)*half)
	}
	coeffs := make([]float64, n)
	cosjk := make([]float64, n)
	for j := range coeffs {
		for k := range cosjk {
			cosjk[k] = math.Cos(math.Pi * float64(j) * (float64(k) + 0.5) / float64(n))
		}
		coeffs[j] = 2 * floats.Dot(fk, cosjk) / float64(n)
	}
	coeffs[0] /= 2
	return coeffs, nil
}

// ChebyshevSum evaluates Σ c_j·T_j(x) with the Clenshaw recurrence.
func ChebyshevSum(coeffs []float64, x float64) float64 {
	var b1, b2 float64
	for j := len(coeffs) - 1; j >= 1; j-- {
		b1, b2 = 2*x*b1-b2+coeffs[j], b1
	}
	if len(coeffs) == 0 {
		return 0
	}
	return x*b1 - b2 + coeffs[0]
}

// ChebyshevSeries is a Chebyshev approximation of a function of the Julian
// date over [Start, End].
type ChebyshevSeries struct {
	Start, End float64
	Coeffs     []float64
}

// NewChebyshevSeries fits f over [start, end] with n coefficients.
func NewChebyshevSeries(f func(jd float64) float64, start, end float64, n int) (*ChebyshevSeries, error) {
	coeffs, err := FitChebyshev(f, start, end, n)
	if err != nil {
		return nil, err
	}
	return &ChebyshevSeries{start, end, coeffs}, nil
}

// Contains returns whether jd is within the interval of this series.
func (c *ChebyshevSeries) Contains(jd float64) bool {
	lo, hi := c.Start, c.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return jd >= lo && jd <= hi
}

// Evaluate returns the approximated value at jd.
func (c *ChebyshevSeries) Evaluate(jd float64) (float64, error) {
	if !c.Contains(jd) {
		return 0, errors.Wrapf(ErrOutsideInterval, "%f not in [%f, %f]", jd, c.Start, c.End)
	}
	x := 2*(jd-c.Start)/(c.End-c.Start) - 1
	return ChebyshevSum(c.Coeffs, x), nil
}
