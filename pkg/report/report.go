package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/chewxy/math32"
	"github.com/itohio/ntclut/pkg/lut"
	"github.com/itohio/ntclut/pkg/ntc"
)

// Row describes a single table entry and what the code converts back to.
type Row struct {
	Temperature int
	Resistance  float64 // Model resistance before truncation (Ohm)
	Code        int64
	Celsius     float64 // Temperature recovered from Code (float64)
	Celsius32   float32 // Same, evaluated in single precision as on the MCU
}

// Error returns the difference between the recovered and the tabulated temperature.
func (r Row) Error() float64 {
	return r.Celsius - float64(r.Temperature)
}

// Rows converts every table entry back to a temperature through the inverse model.
func Rows(t *lut.Table) []Row {
	rows := make([]Row, 0, t.Len())
	for i, code := range t.Codes {
		temp := t.Temperature(i)
		r, err := t.Thermistor.Resistance(temp)
		if err != nil {
			r = math.NaN()
		}
		rows = append(rows, Row{
			Temperature: temp,
			Resistance:  r,
			Code:        code,
			Celsius:     t.Thermistor.Celsius(ntc.ResistanceFromCode(code, t.RPullup, t.Bits)),
			Celsius32:   celsius32(t, code),
		})
	}
	return rows
}

// celsius32 mirrors the single-precision conversion the firmware would do:
// T = 1 / (1/T0 + ln(R/R0) / B) - 273
func celsius32(t *lut.Table, code int64) float32 {
	fs := float32(ntc.FullScale(t.Bits))
	c := float32(code)
	if c >= fs {
		return -ntc.KelvinOffset
	}

	r := c * float32(t.RPullup) / (fs - c)
	t0 := float32(t.Thermistor.TNominal + ntc.KelvinOffset)
	inv := 1/t0 + math32.Log(r/float32(t.Thermistor.RNominal))/float32(t.Thermistor.B)
	return 1/inv - ntc.KelvinOffset
}

// MaxError returns the largest absolute recovered temperature error in rows.
func MaxError(rows []Row) float64 {
	var worst float64
	for _, r := range rows {
		worst = math.Max(worst, math.Abs(r.Error()))
	}
	return worst
}

// Write renders a table report followed by a one line summary.
func Write(w io.Writer, t *lut.Table) error {
	rows := Rows(t)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("T (°C)", "R (Ohm)", "code", "T (code)", "T32 (code)", "error")
	for _, r := range rows {
		tbl.Row(
			strconv.Itoa(r.Temperature),
			strconv.FormatFloat(r.Resistance, 'f', 1, 64),
			strconv.FormatInt(r.Code, 10),
			strconv.FormatFloat(r.Celsius, 'f', 3, 64),
			strconv.FormatFloat(float64(r.Celsius32), 'f', 3, 32),
			strconv.FormatFloat(r.Error(), 'f', 3, 64),
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%d entries, %d-bit ADC, pull-up %d Ohm, max error %.3f°C\n",
		tbl.String(), len(rows), t.Bits, t.RPullup, MaxError(rows))
	return err
}
