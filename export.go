package tass

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ChebyshevCatalog holds the Chebyshev coefficients of the offsets of one
// satellite over consecutive intervals.
type ChebyshevCatalog struct {
	Name     string             `json:"name"`
	Method   string             `json:"method"`
	JDStart  float64            `json:"jdstart"`
	JDFinish float64            `json:"jdfinish"`
	StepSize float64            `json:"stepsize"`
	Data     []*ChebyshevRecord `json:"data"`
}

func (c *ChebyshevCatalog) String() string {
	return fmt.Sprintf("%s (%s) %.5f -> %.5f, %d records", c.Name, c.Method, c.JDStart, c.JDFinish, len(c.Data))
}

// ChebyshevRecord holds the x, y and z coefficients over one interval.
type ChebyshevRecord struct {
	JDStart  float64      `json:"jdstart"`
	JDFinish float64      `json:"jdfinish"`
	Coeffs   [3][]float64 `json:"coeffs"`
}

// Series returns the series of the provided component.
func (r *ChebyshevRecord) Series(c OffsetComponent) *ChebyshevSeries {
	return &ChebyshevSeries{r.JDStart, r.JDFinish, r.Coeffs[c]}
}

// Find returns the record whose interval contains jd.
func (c *ChebyshevCatalog) Find(jd float64) (*ChebyshevRecord, error) {
	for _, rec := range c.Data {
		if jd >= rec.JDStart && jd <= rec.JDFinish {
			return rec, nil
		}
	}
	return nil, errors.Wrapf(ErrOutsideInterval, "%f not in catalog %s", jd, c.Name)
}

// Evaluate returns the three offsets at jd from the catalog.
func (c *ChebyshevCatalog) Evaluate(jd float64) (offsets [3]float64, err error) {
	rec, err := c.Find(jd)
	if err != nil {
		return
	}
	for comp := XOffset; comp <= ZOffset; comp++ {
		if offsets[comp], err = rec.Series(comp).Evaluate(jd); err != nil {
			return
		}
	}
	return
}

// GenerateCatalog fits the three offset components with n coefficients over
// consecutive intervals of step days from start until finish.
func GenerateCatalog(o *Offset, start, finish, step float64, n int) (*ChebyshevCatalog, error) {
	if step <= 0 || finish <= start {
		return nil, errors.Errorf("invalid catalog range %f -> %f by %f", start, finish, step)
	}
	cat := &ChebyshevCatalog{Name: strings.ToLower(o.Satellite.String()), Method: o.Method.String(), JDStart: start, JDFinish: finish, StepSize: step}
	component := o.Component
	defer func() { o.Component = component }()
	for jd0 := start; jd0 < finish; jd0 += step {
		rec := &ChebyshevRecord{JDStart: jd0, JDFinish: jd0 + step}
		for comp := XOffset; comp <= ZOffset; comp++ {
			o.Component = comp
			coeffs, err := o.Chebyshev(rec.JDStart, rec.JDFinish, n)
			if err != nil {
				return nil, err
			}
			rec.Coeffs[comp] = coeffs
		}
		cat.Data = append(cat.Data, rec)
	}
	return cat, nil
}

// WriteCatalog writes the catalog as indented JSON.
func WriteCatalog(w io.Writer, c *ChebyshevCatalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ReadCatalog reads a catalog written by WriteCatalog.
func ReadCatalog(r io.Reader) (*ChebyshevCatalog, error) {
	c := &ChebyshevCatalog{}
	if err := json.NewDecoder(r).Decode(c); err != nil {
		return nil, errors.Wrap(err, "decoding catalog")
	}
	return c, nil
}

// StateRecord is one line of an element stream.
type StateRecord struct {
	JD        float64
	Satellite Satellite
	Elements  Elements
	Position  []float64
	Velocity  []float64
}

// Speed returns the norm of the velocity.
func (s StateRecord) Speed() float64 {
	return norm(s.Velocity)
}

// ToRecord converts to a CSV record.
func (s StateRecord) ToRecord() []string {
	vals := []float64{s.Elements.MeanMotionAdjustment, s.Elements.Lambda, s.Elements.K, s.Elements.H, s.Elements.Q, s.Elements.P}
	vals = append(vals, s.Position...)
	vals = append(vals, s.Velocity...)
	vals = append(vals, s.Speed())
	record := []string{strconv.FormatFloat(s.JD, 'f', 5, 64), strconv.Itoa(int(s.Satellite) + 1)}
	for _, v := range vals {
		record = append(record, strconv.FormatFloat(v, 'f', 10, 64))
	}
	return record
}

// FromRecord initializes from a CSV record as written by ToRecord.
func (s *StateRecord) FromRecord(record []string) error {
	if len(record) != len(stateHeader) {
		return errors.Errorf("expected %d fields, got %d", len(stateHeader), len(record))
	}
	vals := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return errors.Wrapf(err, "field %s", stateHeader[i])
		}
		vals[i] = v
	}
	s.JD = vals[0]
	s.Satellite = Satellite(int(vals[1]) - 1)
	s.Elements = Elements{vals[2], vals[3], vals[4], vals[5], vals[6], vals[7]}
	s.Position = vals[8:11]
	s.Velocity = vals[11:14]
	if math.Abs(s.Speed()-vals[14]) > 1e-9 {
		return errors.Errorf("inconsistent speed for %s at %f", s.Satellite, s.JD)
	}
	return nil
}

var stateHeader = []string{"jd", "satellite", "dn", "lambda", "k", "h", "q", "p", "x", "y", "z", "vx", "vy", "vz", "speed"}

// StreamElements writes the elements, position and velocity of the eight
// satellites for each date received on the channel, until it is closed.
// The channel is drained even after a failure so that the sender never blocks.
func StreamElements(w io.Writer, theory *Theory, jds <-chan float64) (err error) {
	cw := csv.NewWriter(w)
	defer func() {
		cw.Flush()
		if err == nil {
			err = cw.Error()
		}
	}()
	if err = cw.Write(stateHeader); err != nil {
		return
	}
	for jd := range jds {
		if err != nil {
			continue
		}
		all := theory.AllElements(jd)
		for sat := Mimas; sat <= Iapetus && err == nil; sat++ {
			rec := StateRecord{JD: jd, Satellite: sat, Elements: all[sat]}
			if rec.Position, rec.Velocity, err = theory.PositionVelocity(sat, all[sat]); err != nil {
				break
			}
			err = cw.Write(rec.ToRecord())
		}
	}
	return
}

// ReadStateRecords parses an element stream written by StreamElements.
func ReadStateRecords(r io.Reader) ([]StateRecord, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	var records []StateRecord
	for line := 0; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if line == 0 && fields[0] == stateHeader[0] {
			continue
		}
		var rec StateRecord
		if err := rec.FromRecord(fields); err != nil {
			return nil, errors.Wrapf(err, "record %d", line)
		}
		records = append(records, rec)
	}
}
