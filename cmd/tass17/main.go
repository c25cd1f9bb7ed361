package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ChristopherRabotin/tass"
	kitlog "github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/cobra"
)

const dateFormat = "2006-01-02T15:04:05"

var (
	conf   = tass.NewConfigViper()
	logger kitlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tass17",
	Short: "TASS 1.7 theory of the major satellites of Saturn",
	Long: `Evaluate the TASS 1.7 theory of the eight major satellites of Saturn.

The series data files (S01_01.dat ... S08_04.dat) are read from data.directory.
Configuration is read from conf.toml in $TASS_CONFIG or the current directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := conf.BindPFlag("data.directory", cmd.Flag("data")); err != nil {
			return errors.Wrap(err, "could not bind --data")
		}
		logger = kitlog.NewNopLogger()
		if verbose := cmd.Flag("verbose"); verbose != nil && verbose.Value.String() == "true" {
			logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
			logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("data", "", "directory of the TASS 1.7 series files")
	pf.Bool("verbose", false, "log to stderr")

	rootCmd.AddCommand(elementsCmd, positionCmd, chebyshevCmd, offsetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and the flags bound to it.
func loadConfig() (tass.Config, error) {
	return tass.LoadConfig(conf)
}

// loadTheory reads the configuration and the theory.
func loadTheory() (tass.Config, *tass.Theory, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	theory, err := tass.LoadTheory(cfg.DataDir, tass.DefaultConstants(), logger)
	return cfg, theory, err
}

// parseDate accepts a Julian date or a Gregorian date (UTC) such as
// 2024-03-01 or 2024-03-01T12:00:00.
func parseDate(s string) (float64, error) {
	if jd, err := strconv.ParseFloat(s, 64); err == nil {
		return jd, nil
	}
	for _, layout := range []string{dateFormat, "2006-01-02"} {
		if dt, err := time.Parse(layout, s); err == nil {
			return julian.TimeToJD(dt), nil
		}
	}
	return 0, errors.Errorf("could not understand date `%s`", s)
}

func parseSatellite(s string) (tass.Satellite, error) {
	if idx, err := strconv.Atoi(s); err == nil {
		sat := tass.Satellite(idx - 1)
		if !sat.Valid() {
			return sat, errors.Errorf("satellite number %d not in 1..8", idx)
		}
		return sat, nil
	}
	return tass.SatelliteFromString(s)
}
