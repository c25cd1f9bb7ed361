package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ChristopherRabotin/tass"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/cobra"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "Stream elements, positions and velocities of all satellites as CSV",
	Long: `Read one date per line on stdin (Julian date or YYYY-MM-DD[THH:MM:SS])
and write the elements, position (AU) and velocity (AU/day) of the eight
satellites as CSV on stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, theory, err := loadTheory()
		if err != nil {
			return err
		}
		jds := make(chan float64, 16)
		errc := make(chan error, 1)
		go func() {
			errc <- tass.StreamElements(os.Stdout, theory, jds)
		}()
		scanner := bufio.NewScanner(os.Stdin)
		var perr error
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			jd, err := parseDate(line)
			if err != nil {
				perr = err
				break
			}
			jds <- jd
		}
		close(jds)
		if err := <-errc; err != nil {
			return err
		}
		if perr != nil {
			return perr
		}
		return scanner.Err()
	},
}

var positionCmd = &cobra.Command{
	Use:   "position <satellite> <date>",
	Short: "Print the elements and state of one satellite",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sat, err := parseSatellite(args[0])
		if err != nil {
			return err
		}
		jd, err := parseDate(args[1])
		if err != nil {
			return err
		}
		_, theory, err := loadTheory()
		if err != nil {
			return err
		}
		el, err := theory.Elements(jd, sat)
		if err != nil {
			return err
		}
		R, V, err := theory.PositionVelocity(sat, el)
		if err != nil {
			return err
		}
		fmt.Printf("%s at JD %.5f (%s UTC)\n", sat, jd, julian.JDToTime(jd).Format(dateFormat))
		fmt.Printf("  %s\n", el)
		fmt.Printf("  a = %.10f AU\n", theory.SemiMajorAxis(sat, el))
		fmt.Printf("  R = [%+.10f %+.10f %+.10f] AU\n", R[0], R[1], R[2])
		fmt.Printf("  V = [%+.10f %+.10f %+.10f] AU/day\n", V[0], V[1], V[2])
		return nil
	},
}
