package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChristopherRabotin/tass"
	"github.com/mshafiee/jpleph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var chebyshevCmd = &cobra.Command{
	Use:   "chebyshev <satellite> <start> <end>",
	Short: "Generate a JSON catalog of Chebyshev coefficients of the offsets from Saturn",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := setupOffset(cmd, args)
		if err != nil {
			return err
		}
		defer run.Close()
		cfg, start, end := run.cfg, run.start, run.end
		cat, err := tass.GenerateCatalog(run.offset, start, end, cfg.ChebyshevStep, cfg.ChebyshevOrder)
		if err != nil {
			return err
		}
		logger.Log("level", "info", "subsys", "chebyshev", "catalog", cat)
		out := os.Stdout
		if toFile, _ := cmd.Flags().GetBool("write"); toFile {
			filename := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-%.1f-%.1f.json", cat.Name, start, end))
			f, err := os.Create(filename)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return tass.WriteCatalog(out, cat)
	},
}

var offsetCmd = &cobra.Command{
	Use:   "offset <satellite> <start> <end>",
	Short: "Fit one offset component over one interval and compare it with the theory",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := setupOffset(cmd, args)
		if err != nil {
			return err
		}
		defer run.Close()
		offset, start, end := run.offset, run.start, run.end
		comp, _ := cmd.Flags().GetString("component")
		switch strings.ToLower(comp) {
		case "x":
			offset.Component = tass.XOffset
		case "y":
			offset.Component = tass.YOffset
		case "z":
			offset.Component = tass.ZOffset
		default:
			return errors.Errorf("unknown component `%s`", comp)
		}
		coeffs, err := offset.Chebyshev(start, end, run.cfg.ChebyshevOrder)
		if err != nil {
			return err
		}
		for i, c := range coeffs {
			fmt.Printf("%3d  %17.13f\n", i, c)
		}
		series := &tass.ChebyshevSeries{Start: start, End: end, Coeffs: coeffs}
		const samples = 32
		for k := 0; k <= samples; k++ {
			jd := start + float64(k)*(end-start)/samples
			approx, err := series.Evaluate(jd)
			if err != nil {
				return err
			}
			exact := offset.Evaluate(jd)
			if err := offset.Err(); err != nil {
				return err
			}
			fmt.Printf("%13.5f  %12.6f  %12.6f  %10.6f\n", jd, exact, approx, exact-approx)
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{chebyshevCmd, offsetCmd} {
		cmd.Flags().String("ephemeris", "", "JPL DE binary ephemeris file")
		cmd.Flags().Int("order", 0, "number of Chebyshev coefficients")
		cmd.Flags().String("method", "", "offset method: simplified or rigorous")
	}
	chebyshevCmd.Flags().Float64("step", 0, "days per Chebyshev record")
	chebyshevCmd.Flags().Bool("write", false, "write the catalog in general.output_path instead of stdout")
	offsetCmd.Flags().String("component", "x", "offset component: x, y or z")
}

// offsetRun is the setup shared by the offset commands.
type offsetRun struct {
	offset     *tass.Offset
	cfg        tass.Config
	start, end float64
	eph        *jpleph.Ephemeris
}

func (r *offsetRun) Close() error {
	if r.eph == nil {
		return nil
	}
	return r.eph.Close()
}

// setupOffset binds the command flags, loads the theory and the ephemeris,
// and returns the offset of the satellite of args[0] over [args[1], args[2]].
func setupOffset(cmd *cobra.Command, args []string) (*offsetRun, error) {
	for key, flag := range map[string]string{"ephemeris.file": "ephemeris", "chebyshev.order": "order", "chebyshev.method": "method", "chebyshev.step": "step"} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := conf.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}
	sat, err := parseSatellite(args[0])
	if err != nil {
		return nil, err
	}
	run := &offsetRun{}
	if run.start, err = parseDate(args[1]); err != nil {
		return nil, err
	}
	if run.end, err = parseDate(args[2]); err != nil {
		return nil, err
	}
	cfg, theory, err := loadTheory()
	if err != nil {
		return nil, err
	}
	run.cfg = cfg
	var saturn *tass.JPLSaturn
	source := cfg.VSOP87Dir
	switch {
	case cfg.EphemerisFile != "":
		if saturn, run.eph, err = tass.OpenJPLSaturn(cfg.EphemerisFile); err != nil {
			return nil, err
		}
		source = run.eph.GetEphemName()
	case cfg.VSOP87Dir != "":
		if saturn, err = tass.NewVSOP87Saturn(cfg.VSOP87Dir); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("no ephemeris: set ephemeris.file (or --ephemeris) or ephemeris.vsop87")
	}
	if run.offset, err = tass.NewOffset(theory, saturn, sat); err != nil {
		run.Close()
		return nil, err
	}
	run.offset.Method = cfg.Method()
	logger.Log("level", "info", "subsys", "chebyshev", "satellite", sat, "method", run.offset.Method, "ephemeris", source)
	return run, nil
}
