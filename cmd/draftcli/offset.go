package main

import (
	"fmt"
	"strconv"
	"strings"

	draft "github.com/draftkit/draft2d"
	"github.com/spf13/cobra"
)

var offsetCmd = &cobra.Command{
	Use:   "offset",
	Short: "Apply the offset engine to a line or circle",
	Long: `Offset generates parallel copies of an entity.

  draftcli offset --line 0,0,100,0 --distance 5 --count 3
  draftcli offset --circle 50,50,20 --distance -5
  draftcli offset --line 0,0,100,0 --distance 5 --both`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, err := offsetEntityFromFlags(cmd)
		if err != nil {
			return err
		}

		distance, _ := cmd.Flags().GetFloat64("distance")
		count, _ := cmd.Flags().GetInt("count")
		both, _ := cmd.Flags().GetBool("both")

		var copies []draft.Entity
		switch {
		case both:
			copies = draft.BidirectionalOffset(entity, distance)
		case count > 1:
			copies = draft.OffsetCopies(entity, count, distance)
		default:
			copies = draft.ParallelCopies(entity, []float64{distance})
		}

		if len(copies) == 0 {
			return fmt.Errorf("offset produced no result (degenerate distance?)")
		}
		for i, c := range copies {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i+1, describeEntity(c))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(offsetCmd)

	offsetCmd.Flags().String("line", "", "Line as x1,y1,x2,y2")
	offsetCmd.Flags().String("circle", "", "Circle as cx,cy,r")
	offsetCmd.Flags().Float64("distance", 1, "Signed offset distance (spacing with --count)")
	offsetCmd.Flags().Int("count", 1, "Number of evenly spaced copies")
	offsetCmd.Flags().Bool("both", false, "Offset to both sides")
}

func offsetEntityFromFlags(cmd *cobra.Command) (draft.Entity, error) {
	if lineArg, _ := cmd.Flags().GetString("line"); lineArg != "" {
		vals, err := parseFloats(lineArg, 4)
		if err != nil {
			return nil, err
		}
		l, err := draft.NewLine(draft.Pt(vals[0], vals[1]), draft.Pt(vals[2], vals[3]))
		if err != nil {
			return nil, err
		}
		return l, nil
	}
	if circleArg, _ := cmd.Flags().GetString("circle"); circleArg != "" {
		vals, err := parseFloats(circleArg, 3)
		if err != nil {
			return nil, err
		}
		c, err := draft.NewCircle(draft.Pt(vals[0], vals[1]), vals[2])
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("one of --line or --circle is required")
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d comma-separated numbers", s, n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
