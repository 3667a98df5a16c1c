package ntc

import (
	"errors"
	"fmt"
	"math"
)

// MaxBits is the widest ADC resolution Code can represent without overflow.
// Zero bits is accepted: full scale is 0 and every code is 0.
const MaxBits = 30

var (
	// ErrDivideByZero is returned when the pull-up and thermistor resistances sum to zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrResolution is returned for ADC resolutions above MaxBits.
	ErrResolution = errors.New("invalid ADC resolution")
)

// FullScale returns the highest code of a bits-wide ADC (2^bits - 1).
func FullScale(bits uint) int64 {
	return int64(1)<<bits - 1
}

// Code converts a thermistor resistance to the ADC code read across it when it is
// pulled up by rpullup to the ADC reference.
// Formula: code = (2^bits - 1) * r / (rpullup + r), truncated toward zero.
func Code(r, rpullup int64, bits uint) (int64, error) {
	if bits > MaxBits {
		return 0, fmt.Errorf("%w: %d bits", ErrResolution, bits)
	}

	den := rpullup + r
	if den == 0 {
		return 0, fmt.Errorf("%w: rpullup %d + r %d", ErrDivideByZero, rpullup, r)
	}

	fs := FullScale(bits)
	if fs == 0 {
		return 0, nil
	}
	if r > math.MaxInt64/fs || r < math.MinInt64/fs {
		// fs*r overflows int64.
		return int64(float64(fs) * float64(r) / float64(den)), nil
	}
	return int64(float64(fs*r) / float64(den)), nil
}

// ResistanceFromCode inverts Code: r = code * rpullup / (2^bits - 1 - code).
// A code at or above full scale maps to an open circuit (+Inf).
func ResistanceFromCode(code, rpullup int64, bits uint) float64 {
	span := FullScale(bits) - code
	if span <= 0 {
		return math.Inf(1)
	}
	return float64(code) * float64(rpullup) / float64(span)
}
