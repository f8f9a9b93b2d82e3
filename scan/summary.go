package scan

import (
	"math"
	"strconv"
)

// Summary collects grid statistics while the body is streamed.
// Only running totals are kept, cell values are not stored.
//
// Set NoData to the NODATA text seen by the listener to count those cells apart.
type Summary struct {
	NoData string

	Rows    int
	Cells   int
	NoDatas int
	Invalid int
	Min     float64
	Max     float64
	Mean    float64
}

// Values returns the number of cells that contributed to Min, Max and Mean.
func (s *Summary) Values() int { return s.Cells - s.NoDatas - s.Invalid }

func (s *Summary) GridBegin() {
	*s = Summary{NoData: s.NoData, Min: math.NaN(), Max: math.NaN(), Mean: math.NaN()}
}

func (*Summary) GridEnd() {}

func (*Summary) RowBegin() {}

func (s *Summary) RowEnd() { s.Rows++ }

func (s *Summary) Cell(value string) string {
	s.Cells++
	if s.NoData != "" && value == s.NoData {
		s.NoDatas++
		return value
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		s.Invalid++
		return value
	}

	n := s.Values()
	if n == 1 {
		s.Min, s.Max, s.Mean = v, v, v
		return value
	}
	s.Min = min(s.Min, v)
	s.Max = max(s.Max, v)
	s.Mean += (v - s.Mean) / float64(n)
	return value
}
