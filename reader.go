package tass

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/pkg/errors"
)

// hyperionFileIndex is Hyperion's satellite number in the data files (1-based).
const hyperionFileIndex = 7

// Header is the first line of a series data file.
type Header struct {
	Satellite int // 1-based
	Element   int // 1-based
	Terms     int // number of periodic terms, the linear line excluded
	Critical  int
}

// Kind returns the record layout which applies to this file.
func (h Header) Kind() SatelliteKind {
	if h.Satellite == hyperionFileIndex {
		return HyperionSatellite
	}
	return StandardSatellite
}

// hasLinearLine returns whether a constant/secular line follows the header.
func (h Header) hasLinearLine() bool {
	if h.Kind() == HyperionSatellite {
		return h.Element < 3
	}
	return h.Element == 2
}

// SeriesFileName returns the name of the data file of this satellite and element.
func SeriesFileName(sat Satellite, kind ElementKind) string {
	return fmt.Sprintf("S%02d_%02d.dat", int(sat)+1, int(kind)+1)
}

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the fields of the next non blank line.
func (l *lineReader) next() ([]string, error) {
	for l.scanner.Scan() {
		l.line++
		if fields := strings.Fields(l.scanner.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := l.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

func (l *lineReader) floats(fields []string, idx ...int) ([]float64, error) {
	vals := make([]float64, len(idx))
	for i, j := range idx {
		if j >= len(fields) {
			return nil, errors.Errorf("line %d: expected at least %d fields, got %d", l.line, j+1, len(fields))
		}
		v, err := strconv.ParseFloat(strings.Replace(fields[j], "D", "E", 1), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", l.line)
		}
		vals[i] = v
	}
	return vals, nil
}

// ReadSeries reads one series data file.
func ReadSeries(r io.Reader) (*ElementSeries, Header, error) {
	l := &lineReader{scanner: bufio.NewScanner(r)}
	var hdr Header
	fields, err := l.next()
	if err != nil {
		return nil, hdr, errors.Wrap(err, "reading header")
	}
	if len(fields) < 4 {
		return nil, hdr, errors.Errorf("header has %d fields, expected at least 4", len(fields))
	}
	ints := make([]int, 4)
	for i := range ints {
		if ints[i], err = strconv.Atoi(fields[i]); err != nil {
			return nil, hdr, errors.Wrap(err, "header")
		}
	}
	hdr = Header{ints[0], ints[1], ints[2], ints[3]}
	if hdr.Terms < 0 {
		return nil, hdr, errors.Errorf("header announces %d terms", hdr.Terms)
	}

	var constant, secular float64
	if hdr.hasLinearLine() {
		if fields, err = l.next(); err != nil {
			return nil, hdr, errors.Wrap(err, "reading linear term")
		}
		var vals []float64
		switch {
		case hdr.Kind() == StandardSatellite:
			vals, err = l.floats(fields, 1, 2)
		case len(fields) > 1:
			vals, err = l.floats(fields, 0, 1)
		default:
			vals, err = l.floats(fields, 0)
			vals = append(vals, 0)
		}
		if err != nil {
			return nil, hdr, err
		}
		constant, secular = vals[0], vals[1]
	}

	terms := make([]PeriodicTerm, hdr.Terms)
	for i := range terms {
		if fields, err = l.next(); err != nil {
			return nil, hdr, errors.Wrapf(err, "reading term %d of %d", i+1, hdr.Terms)
		}
		if hdr.Kind() == HyperionSatellite {
			vals, err := l.floats(fields, 0, 1, 2)
			if err != nil {
				return nil, hdr, err
			}
			terms[i] = NewHyperionTerm(vals[0], vals[1], vals[2])
			continue
		}
		vals, err := l.floats(fields, 1, 2, 3)
		if err != nil {
			return nil, hdr, err
		}
		if len(fields) < 4+NumCoefficients {
			return nil, hdr, errors.Errorf("line %d: expected %d coefficients, got %d", l.line, NumCoefficients, len(fields)-4)
		}
		coeffs := make([]int, NumCoefficients)
		for j := range coeffs {
			if coeffs[j], err = strconv.Atoi(fields[4+j]); err != nil {
				return nil, hdr, errors.Wrapf(err, "line %d", l.line)
			}
		}
		terms[i] = PeriodicTerm{vals[0], vals[1], vals[2], coeffs}
	}
	series, err := NewElementSeries(constant, secular, terms, hdr.Critical)
	return series, hdr, err
}

// ReadSeriesFile reads the series from the provided file.
func ReadSeriesFile(filename string) (*ElementSeries, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	series, _, err := ReadSeries(f)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return series, nil
}

// LoadSeriesTable reads the 32 data files from the provided directory.
func LoadSeriesTable(dir string, logger kitlog.Logger) (table SeriesTable, err error) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	for _, sat := range Satellites() {
		for kind := MeanMotion; kind <= Inclination; kind++ {
			filename := filepath.Join(dir, SeriesFileName(sat, kind))
			if table[sat][kind], err = ReadSeriesFile(filename); err != nil {
				return
			}
			logger.Log("level", "debug", "subsys", "loader", "file", filename, "series", table[sat][kind])
		}
	}
	return
}

// LoadTheory reads the data files from dir and returns the theory.
func LoadTheory(dir string, c Constants, logger kitlog.Logger) (*Theory, error) {
	table, err := LoadSeriesTable(dir, logger)
	if err != nil {
		return nil, err
	}
	theory, err := NewTheory(c, table, logger)
	if err != nil {
		return nil, err
	}
	theory.logger.Log("level", "info", "loaded", dir)
	return theory, nil
}
