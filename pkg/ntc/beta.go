package ntc

import (
	"fmt"
	"math"
)

// KelvinOffset converts whole degrees Celsius to Kelvin as the firmware tables expect.
const KelvinOffset = 273

// Beta describes an NTC thermistor using the simplified B-parameter model.
type Beta struct {
	RNominal int64 // Resistance at TNominal (Ohm)
	TNominal int   // Nominal temperature (°C), usually 25
	B        int   // B-constant (K)
}

// Resistance returns the thermistor resistance at tempC.
// At the nominal temperature RNominal is returned as is.
// Formula: R = R0 * e^(B * (1/T - 1/T0))
// Either temperature at absolute zero is ErrDivideByZero.
func (b Beta) Resistance(tempC int) (float64, error) {
	if tempC == b.TNominal {
		return float64(b.RNominal), nil
	}

	if tempC+KelvinOffset == 0 || b.TNominal+KelvinOffset == 0 {
		return 0, fmt.Errorf("%w: T %d°C, T0 %d°C", ErrDivideByZero, tempC, b.TNominal)
	}

	t := float64(tempC + KelvinOffset)
	t0 := float64(b.TNominal + KelvinOffset)
	exp := (1/t - 1/t0) * float64(b.B)

	return float64(b.RNominal) * math.Exp(exp), nil
}

// Celsius returns the temperature at which the thermistor has resistance r.
// Formula: T = 1 / (1/T0 + ln(R/R0) / B)
func (b Beta) Celsius(r float64) float64 {
	t0 := float64(b.TNominal + KelvinOffset)
	inv := 1/t0 + math.Log(r/float64(b.RNominal))/float64(b.B)
	return 1/inv - KelvinOffset
}
