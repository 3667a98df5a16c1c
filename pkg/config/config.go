package config

import (
	"fmt"
	"os"

	"github.com/itohio/ntclut/pkg/lut"
	"github.com/itohio/ntclut/pkg/ntc"
	"gopkg.in/yaml.v3"
)

// Config represents the generator configuration.
type Config struct {
	Thermistor ThermistorConfig `yaml:"thermistor"`
	Divider    DividerConfig    `yaml:"divider"`
	Table      TableConfig      `yaml:"table"`
	Output     OutputConfig     `yaml:"output"`
}

// ThermistorConfig contains the NTC B-model constants.
type ThermistorConfig struct {
	RNominal int64 `yaml:"rnominal"` // Resistance at TNominal (Ohm)
	TNominal int   `yaml:"tnominal"` // Nominal temperature (°C)
	BConst   int   `yaml:"bconst"`
}

// DividerConfig contains the resistor divider the thermistor sits in.
type DividerConfig struct {
	RPullup int64 `yaml:"rpullup"`
}

// TableConfig contains table range and ADC resolution.
type TableConfig struct {
	Res    uint `yaml:"res"`    // ADC resolution (bits)
	TStart int  `yaml:"tstart"` // Inclusive
	TStop  int  `yaml:"tstop"`  // Inclusive
}

// OutputConfig contains where the header goes.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Default returns the 10k/3380 thermistor with a 10k pull-up on a 10-bit ADC,
// tabulated from -40 to 125°C.
func Default() *Config {
	return &Config{
		Thermistor: ThermistorConfig{
			RNominal: 10000,
			TNominal: 25,
			BConst:   3380,
		},
		Divider: DividerConfig{
			RPullup: 10000,
		},
		Table: TableConfig{
			Res:    10,
			TStart: -40,
			TStop:  125,
		},
		Output: OutputConfig{
			Path: "therm.h",
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetThermistor replaces the thermistor constants, e.g. from a preset.
func (c *Config) SetThermistor(b ntc.Beta) {
	c.Thermistor = ThermistorConfig{
		RNominal: b.RNominal,
		TNominal: b.TNominal,
		BConst:   b.B,
	}
}

// Params converts the configuration into table generation parameters.
func (c *Config) Params() lut.Params {
	return lut.Params{
		Thermistor: ntc.Beta{
			RNominal: c.Thermistor.RNominal,
			TNominal: c.Thermistor.TNominal,
			B:        c.Thermistor.BConst,
		},
		RPullup: c.Divider.RPullup,
		Bits:    c.Table.Res,
		TStart:  c.Table.TStart,
		TStop:   c.Table.TStop,
	}
}

// ensureDefaults fills fields that cannot be left empty. Numeric fields are not
// touched: keys absent from the file keep their defaults during unmarshalling,
// and an explicit zero is a value the user asked for.
func (c *Config) ensureDefaults() {
	if c.Output.Path == "" {
		c.Output.Path = Default().Output.Path
	}
}
