package lut

import (
	"errors"
	"fmt"
	"math"

	"github.com/itohio/ntclut/pkg/ntc"
)

// ErrResistance is returned when the model yields a resistance that cannot be
// truncated to an integer (NaN, infinite or beyond int64).
var ErrResistance = errors.New("resistance out of range")

// Params holds everything needed to build a table.
type Params struct {
	Thermistor ntc.Beta
	RPullup    int64 // Pull-up resistor (Ohm)
	Bits       uint  // ADC resolution
	TStart     int   // First temperature (°C), inclusive
	TStop      int   // Last temperature (°C), inclusive
}

// Table is a generated temperature -> ADC code table.
// Codes[0] belongs to TStart, Codes[len-1] to TStop.
type Table struct {
	Params
	Codes []int64
}

// Generate computes one ADC code per integer temperature in [TStart, TStop].
// The model resistance is truncated to whole Ohms before conversion, as the
// firmware tables always have been. TStart > TStop produces an empty table.
func Generate(p Params) (*Table, error) {
	if p.Bits > ntc.MaxBits {
		return nil, fmt.Errorf("%w: %d bits", ntc.ErrResolution, p.Bits)
	}

	n := p.TStop - p.TStart + 1
	if n < 0 {
		n = 0
	}

	t := &Table{
		Params: p,
		Codes:  make([]int64, 0, n),
	}

	for val := p.TStart; val <= p.TStop; val++ {
		r, err := p.Thermistor.Resistance(val)
		if err != nil {
			return nil, fmt.Errorf("%d°C: %w", val, err)
		}
		if math.IsNaN(r) || r >= math.MaxInt64 || r <= math.MinInt64 {
			return nil, fmt.Errorf("%d°C: %w: %g", val, ErrResistance, r)
		}

		code, err := ntc.Code(int64(r), p.RPullup, p.Bits)
		if err != nil {
			return nil, fmt.Errorf("%d°C: %w", val, err)
		}
		t.Codes = append(t.Codes, code)
	}

	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.Codes)
}

// Size returns the declared array size, 2^Bits.
func (t *Table) Size() int64 {
	return int64(1) << t.Bits
}

// Temperature returns the temperature of entry i.
func (t *Table) Temperature(i int) int {
	return t.TStart + i
}
