package lut

import (
	"testing"

	"github.com/itohio/ntclut/pkg/ntc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params10k(tstart, tstop int) Params {
	return Params{
		Thermistor: ntc.NTC10K3380(),
		RPullup:    10000,
		Bits:       10,
		TStart:     tstart,
		TStop:      tstop,
	}
}

func TestGenerate_NominalPoint(t *testing.T) {
	tbl, err := Generate(params10k(25, 25))
	require.NoError(t, err)

	assert.Equal(t, []int64{511}, tbl.Codes)
	assert.Equal(t, int64(1024), tbl.Size())
}

func TestGenerate_KnownTables(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want []int64
	}{
		{
			name: "10k 3380 around room temperature",
			p:    params10k(20, 30),
			want: []int64{560, 550, 540, 531, 521, 511, 501, 492, 482, 473, 463},
		},
		{
			name: "100k 3950 with 4k7 pull-up, 12 bit",
			p: Params{
				Thermistor: ntc.NTC100K3950(),
				RPullup:    4700,
				Bits:       12,
				TStart:     -5,
				TStop:      5,
			},
			want: []int64{4051, 4049, 4046, 4044, 4041, 4038, 4035, 4032, 4029, 4025, 4022},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Generate(tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tbl.Codes)
		})
	}
}

func TestGenerate_Length(t *testing.T) {
	for _, r := range [][2]int{{0, 0}, {-40, 125}, {10, 11}, {-20, -10}} {
		tbl, err := Generate(params10k(r[0], r[1]))
		require.NoError(t, err)
		assert.Equal(t, r[1]-r[0]+1, tbl.Len())
		assert.Equal(t, r[0], tbl.Temperature(0))
		assert.Equal(t, r[1], tbl.Temperature(tbl.Len()-1))
	}
}

func TestGenerate_EmptyRange(t *testing.T) {
	tbl, err := Generate(params10k(30, 20))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, int64(1024), tbl.Size())
}

func TestGenerate_Size(t *testing.T) {
	p := params10k(0, 1)

	p.Bits = 8
	tbl, err := Generate(p)
	require.NoError(t, err)
	assert.Equal(t, int64(256), tbl.Size())

	p.Bits = 10
	tbl, err = Generate(p)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), tbl.Size())
}

func TestGenerate_Monotonic(t *testing.T) {
	tbl, err := Generate(params10k(-40, 125))
	require.NoError(t, err)

	for i := 1; i < tbl.Len(); i++ {
		assert.LessOrEqual(t, tbl.Codes[i], tbl.Codes[i-1], "entry %d", i)
	}
	assert.Empty(t, tbl.Check())
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(params10k(-40, 125))
	require.NoError(t, err)
	b, err := Generate(params10k(-40, 125))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	p := params10k(0, 10)
	p.Bits = ntc.MaxBits + 1
	_, err := Generate(p)
	assert.ErrorIs(t, err, ntc.ErrResolution)

	// Zero resistance at the nominal point with no pull-up.
	p = Params{
		Thermistor: ntc.Beta{RNominal: 0, TNominal: 25, B: 3380},
		RPullup:    0,
		Bits:       10,
		TStart:     25,
		TStop:      25,
	}
	_, err = Generate(p)
	assert.ErrorIs(t, err, ntc.ErrDivideByZero)
}

func TestGenerate_ResistanceOverflow(t *testing.T) {
	p := Params{
		Thermistor: ntc.Beta{RNominal: 10000, TNominal: 25, B: 1000000},
		RPullup:    10000,
		Bits:       10,
		TStart:     -200,
		TStop:      -200,
	}
	_, err := Generate(p)
	assert.ErrorIs(t, err, ErrResistance)
}

func TestGenerate_ZeroBits(t *testing.T) {
	p := params10k(20, 22)
	p.Bits = 0

	tbl, err := Generate(p)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, tbl.Codes)
	assert.Equal(t, int64(1), tbl.Size())
}

func TestGenerate_AbsoluteZero(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{
			name: "nominal temperature at absolute zero",
			p: Params{
				Thermistor: ntc.Beta{RNominal: 10000, TNominal: -273, B: 3380},
				RPullup:    10000,
				Bits:       10,
				TStart:     20,
				TStop:      22,
			},
		},
		{
			name: "range reaching absolute zero",
			p: Params{
				Thermistor: ntc.Beta{RNominal: 10000, TNominal: 25, B: -3380},
				RPullup:    10000,
				Bits:       10,
				TStart:     -273,
				TStop:      -270,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Generate(tt.p)
			assert.ErrorIs(t, err, ntc.ErrDivideByZero)
			assert.Nil(t, tbl)
		})
	}
}
