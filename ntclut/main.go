package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itohio/ntclut/pkg/config"
	"github.com/itohio/ntclut/pkg/header"
	"github.com/itohio/ntclut/pkg/lut"
	"github.com/itohio/ntclut/pkg/ntc"
	"github.com/itohio/ntclut/pkg/report"
	"github.com/rs/zerolog"
)

// Parameter flags that must all be given when neither -config nor -preset is used.
var requiredFlags = []string{"rnominal", "tnominal", "bconst", "rpullup", "res", "tstart", "tstop"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ntclut", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		rnominalFlag   = fs.Int64("rnominal", 0, "Rnominal value for NTC thermistor (Ohm)")
		tnominalFlag   = fs.Int("tnominal", 0, "Tnominal value for NTC thermistor (°C)")
		bconstFlag     = fs.Int("bconst", 0, "B constant value for NTC thermistor")
		rpullupFlag    = fs.Int64("rpullup", 0, "R value for pullup resistor for this thermistor (Ohm)")
		resFlag        = fs.Uint("res", 0, "Resolution (in bits) for the LUT")
		tstartFlag     = fs.Int("tstart", 0, "Starting temperature (°C)")
		tstopFlag      = fs.Int("tstop", 0, "Ending temperature (°C)")
		configFlag     = fs.String("config", "", "Configuration file path")
		presetFlag     = fs.String("preset", "", "Thermistor preset ("+strings.Join(ntc.Presets(), ", ")+")")
		outputFlag     = fs.String("o", "", "Output header path (default "+header.DefaultPath+")")
		reportFlag     = fs.Bool("report", false, "Print a conversion report to stdout")
		saveConfigFlag = fs.String("save-config", "", "Save the effective configuration to this file")
		verboseFlag    = fs.Bool("v", false, "Verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := newLogger(stderr, *verboseFlag)

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Load configuration
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			log.Error().Err(err).Str("config", *configFlag).Msg("failed to load configuration")
			return 1
		}
	}

	if *presetFlag != "" {
		b, ok := ntc.Preset(*presetFlag)
		if !ok {
			fmt.Fprintf(stderr, "unknown preset %q\n", *presetFlag)
			fs.Usage()
			return 2
		}
		cfg.SetThermistor(b)
	}

	if *configFlag == "" && *presetFlag == "" {
		var missing []string
		for _, name := range requiredFlags {
			if !set[name] {
				missing = append(missing, "-"+name)
			}
		}
		if len(missing) > 0 {
			fmt.Fprintf(stderr, "missing required flags: %s\n", strings.Join(missing, ", "))
			fs.Usage()
			return 2
		}
	}

	// Flags override configuration
	if set["rnominal"] {
		cfg.Thermistor.RNominal = *rnominalFlag
	}
	if set["tnominal"] {
		cfg.Thermistor.TNominal = *tnominalFlag
	}
	if set["bconst"] {
		cfg.Thermistor.BConst = *bconstFlag
	}
	if set["rpullup"] {
		cfg.Divider.RPullup = *rpullupFlag
	}
	if set["res"] {
		cfg.Table.Res = *resFlag
	}
	if set["tstart"] {
		cfg.Table.TStart = *tstartFlag
	}
	if set["tstop"] {
		cfg.Table.TStop = *tstopFlag
	}
	if *outputFlag != "" {
		cfg.Output.Path = *outputFlag
	}

	log.Debug().Any("config", cfg).Msg("generating table")

	tbl, err := lut.Generate(cfg.Params())
	if err != nil {
		log.Error().Err(err).Msg("failed to generate table")
		return 1
	}

	for _, issue := range tbl.Check() {
		log.Warn().Stringer("issue", issue).Msg("table entry will not convert correctly")
	}

	if err := header.WriteFile(cfg.Output.Path, tbl); err != nil {
		log.Error().Err(err).Str("path", cfg.Output.Path).Msg("failed to write header")
		return 1
	}
	log.Info().
		Str("path", cfg.Output.Path).
		Int("entries", tbl.Len()).
		Int64("size", tbl.Size()).
		Msg("wrote thermistor table")

	if *reportFlag {
		if err := report.Write(stdout, tbl); err != nil {
			log.Error().Err(err).Msg("failed to write report")
			return 1
		}
	}

	if *saveConfigFlag != "" {
		if err := cfg.Save(*saveConfigFlag); err != nil {
			log.Error().Err(err).Str("config", *saveConfigFlag).Msg("failed to save configuration")
			return 1
		}
		log.Info().Str("config", *saveConfigFlag).Msg("saved configuration")
	}

	return 0
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
