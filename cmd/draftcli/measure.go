package main

import (
	"fmt"
	"strconv"
	"strings"

	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/measure"
	"github.com/spf13/cobra"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Run a measurement probe over a list of points",
	Long: `Measure feeds the given points to a measurement probe and prints the
formatted result plus the YAML export of the probe history.

Points are given as a space-separated list of x,y pairs:

  draftcli measure --kind area --points "0,0 10,0 10,10 0,10"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kindName, _ := cmd.Flags().GetString("kind")
		kind, err := parseKind(kindName)
		if err != nil {
			return err
		}
		pointsArg, _ := cmd.Flags().GetString("points")
		pts, err := parsePoints(pointsArg)
		if err != nil {
			return err
		}

		precision, _ := cmd.Flags().GetInt("precision")
		unit, _ := cmd.Flags().GetString("unit")
		probe := measure.NewProbe(measure.WithPrecision(precision), measure.WithUnit(unit))

		probe.Begin(kind)
		var m measure.Measurement
		done := false
		for _, pt := range pts {
			m, done = probe.AddPoint(pt)
		}
		if !done {
			if m, done = probe.Complete(); !done {
				return fmt.Errorf("not enough points for %s measurement", kind)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), m.Description)

		if export, _ := cmd.Flags().GetBool("export"); export {
			data, err := probe.Export()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().String("kind", "distance",
		"Measurement kind: distance, angle, area, perimeter, radius, coordinates")
	measureCmd.Flags().String("points", "", "Space-separated x,y pairs")
	measureCmd.Flags().Int("precision", 2, "Decimal places (0-4)")
	measureCmd.Flags().String("unit", "mm", "Unit suffix for non-angular values")
	measureCmd.Flags().Bool("export", false, "Print the YAML export of the history")
}

func parseKind(name string) (measure.Kind, error) {
	switch name {
	case "distance":
		return measure.Distance, nil
	case "angle":
		return measure.Angle, nil
	case "area":
		return measure.Area, nil
	case "perimeter":
		return measure.Perimeter, nil
	case "radius":
		return measure.Radius, nil
	case "coordinates":
		return measure.Coordinates, nil
	default:
		return 0, fmt.Errorf("unknown measurement kind %q", name)
	}
}

func parsePoints(s string) ([]draft.Point, error) {
	fields := strings.Fields(s)
	pts := make([]draft.Point, 0, len(fields))
	for _, f := range fields {
		xy := strings.Split(f, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("bad point %q, want x,y", f)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad point %q: %w", f, err)
		}
		pts = append(pts, draft.Pt(x, y))
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("no points given")
	}
	return pts, nil
}
