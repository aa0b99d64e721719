package main

import (
	"fmt"
	"image/color"
	"image/png"
	"os"

	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/surface"
	"github.com/draftkit/draft2d/tool"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay script.yaml",
	Short: "Replay a YAML event script through the tool machine",
	Long: `Replay loads an event script, drives the drafting tools with its
pointer and keyboard events against an in-memory store, and prints the
committed entities. With -o, the committed entities and the final tool
preview are rendered to a PNG.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScript(args[0])
		if err != nil {
			return err
		}

		cfg := tool.DefaultConfig()
		if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
			if cfg, err = tool.LoadConfig(cfgPath); err != nil {
				return err
			}
		}
		if sc.Config != nil {
			cfg = *sc.Config
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		store := tool.NewMemStore()
		scale, _ := cmd.Flags().GetFloat64("pixel-scale")
		mgr := tool.NewManager(store, cfg, tool.WithPixelScale(scale))

		if err := sc.run(mgr); err != nil {
			return err
		}

		for i, e := range store.Entities() {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i+1, describeEntity(e))
		}
		if p := store.Prompt(); p != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "prompt: %s\n", p)
		}

		if out, _ := cmd.Flags().GetString("output"); out != "" {
			w, _ := cmd.Flags().GetInt("width")
			h, _ := cmd.Flags().GetInt("height")
			return renderPNG(out, w, h, store, mgr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringP("config", "c", "", "YAML configuration file")
	replayCmd.Flags().StringP("output", "o", "", "Render committed entities to a PNG file")
	replayCmd.Flags().Int("width", 800, "Output image width in pixels")
	replayCmd.Flags().Int("height", 600, "Output image height in pixels")
	replayCmd.Flags().Float64("pixel-scale", 1, "Drawing-space units per device pixel")
}

// renderPNG draws every committed entity plus the active tool's preview
// onto a software surface and writes it out.
func renderPNG(path string, w, h int, store *tool.MemStore, mgr *tool.Manager) error {
	s := surface.NewImageSurface(w, h)
	defer s.Close()
	s.Clear(color.White)

	for _, e := range store.Entities() {
		drawEntity(s, e)
	}
	mgr.RenderPreview(s)

	if err := s.Flush(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, s.Snapshot())
}

// drawEntity strokes one committed entity with its own style.
func drawEntity(s surface.Surface, e draft.Entity) {
	p := surface.NewPath()
	var style draft.Style

	switch v := e.(type) {
	case draft.Line:
		style = v.Style
		p.MoveTo(v.Start.X, v.Start.Y)
		p.LineTo(v.End.X, v.End.Y)
	case draft.Arc:
		style = v.Style
		p.Arc(v.Center.X, v.Center.Y, v.Radius, v.StartAngle, v.EndAngle, v.Counterclockwise)
	case draft.Circle:
		style = v.Style
		p.Circle(v.Center.X, v.Center.Y, v.Radius)
	case draft.Polyline:
		style = v.Style
		p.MoveTo(v.Points[0].X, v.Points[0].Y)
		for _, pt := range v.Points[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		if v.Closed {
			p.Close()
		}
	case draft.Dimension:
		style = v.Style
		p.MoveTo(v.Points[0].X, v.Points[0].Y)
		for _, pt := range v.Points[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		mid := draft.Midpoint(v.Points[0], v.Points[len(v.Points)-1])
		s.DrawText(v.Text, mid.X+4, mid.Y-4, style.Stroke)
	default:
		return
	}

	s.Stroke(p, surface.StrokeStyle{
		Color:       style.Stroke,
		Width:       style.StrokeWidth,
		DashPattern: style.Dash,
		DashOffset:  style.DashOffset,
	})
}
