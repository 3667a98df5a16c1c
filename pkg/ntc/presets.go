package ntc

import (
	"sort"
	"strings"
)

var presets = map[string]Beta{
	"10k3380":  NTC10K3380(),
	"10k3435":  NTC10K3435(),
	"10k3950":  NTC10K3950(),
	"100k3950": NTC100K3950(),
}

// NTC10K3380 is the common 0603 10k part (B25/50 = 3380K).
func NTC10K3380() Beta {
	return Beta{RNominal: 10000, TNominal: 25, B: 3380}
}

// NTC10K3435 is a 10k part with B25/85 = 3435K.
func NTC10K3435() Beta {
	return Beta{RNominal: 10000, TNominal: 25, B: 3435}
}

// NTC10K3950 is the 10k probe found on most hobby boards.
func NTC10K3950() Beta {
	return Beta{RNominal: 10000, TNominal: 25, B: 3950}
}

// NTC100K3950 is the 100k hotend thermistor.
func NTC100K3950() Beta {
	return Beta{RNominal: 100000, TNominal: 25, B: 3950}
}

// Preset looks up a thermistor by name, case-insensitively.
func Preset(name string) (Beta, bool) {
	b, ok := presets[strings.ToLower(name)]
	return b, ok
}

// Presets returns the sorted names of all known thermistors.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
