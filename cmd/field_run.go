package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gomagnet/internal/config"
	"github.com/alexiusacademia/gomagnet/internal/diagram"
	"github.com/alexiusacademia/gomagnet/internal/field"
	"github.com/alexiusacademia/gomagnet/internal/points"
	"github.com/alexiusacademia/gomagnet/internal/results"
)

// outputOptions selects what an evaluation writes besides the report
type outputOptions struct {
	Output  string
	Echo    string
	Map     string
	Profile string
	ASCII   bool
}

var (
	fieldRunFile string
	fieldRunOpts outputOptions
)

var fieldRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the field of a problem file",
	Long: `Evaluate every magnet of a problem file at every point of its grid.

The file format is chosen by extension: .toml (default), .json, .yaml/.yml.
2D magnets are evaluated over [grid], 3D magnets over [grid3d].

Examples:
  gomagnet field run -f problem.toml
  gomagnet field run -f problem.toml -o result.json --map map.png
  gomagnet field run -f line.toml --profile profile.png --ascii`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.Load(fieldRunFile)
		if err != nil {
			return fmt.Errorf("error loading problem: %w", err)
		}
		return evaluateProblem(cmd.Context(), f, fieldRunOpts)
	},
}

func init() {
	fieldCmd.AddCommand(fieldRunCmd)

	fieldRunCmd.Flags().StringVarP(&fieldRunFile, "file", "f", "", "Path to problem file [required]")
	fieldRunCmd.MarkFlagRequired("file")

	addOutputFlags(fieldRunCmd, &fieldRunOpts, "")
}

func addOutputFlags(cmd *cobra.Command, opts *outputOptions, defaultOutput string) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", defaultOutput, "Write results to a JSON file")
	cmd.Flags().StringVar(&opts.Echo, "echo", "", "Write the effective problem to a TOML file")
	cmd.Flags().StringVar(&opts.Map, "map", "", "Export a |B| field map (png, svg, pdf); needs a grid of kind \"grid\"")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Export a field profile (png, svg, pdf); needs a line grid")
	cmd.Flags().BoolVar(&opts.ASCII, "ascii", false, "Show |B| along a line grid as a terminal graph")
}

// evaluateProblem evaluates f, prints the report and writes the requested
// outputs.
func evaluateProblem(ctx context.Context, f *config.File, opts outputOptions) error {
	logger := newLogger()
	defer logger.Sync()

	mags2, err := f.Build2D()
	if err != nil {
		return fmt.Errorf("error building magnets: %w", err)
	}
	mags3, err := f.Build3D()
	if err != nil {
		return fmt.Errorf("error building magnets: %w", err)
	}
	if len(mags2) == 0 && len(mags3) == 0 {
		return fmt.Errorf("problem has no magnets")
	}

	ev := newEvaluator(logger)
	res := results.New(f.Grid.Units)

	var pts2, field2 []points.Point2
	if len(mags2) > 0 {
		pts2 = f.Points2D()
		field2, err = ev.Field2D(ctx, mags2, pts2)
		if err != nil {
			return fmt.Errorf("error evaluating 2D field: %w", err)
		}
		res.Add2D(mags2, pts2, field2)
	}

	var pts3, field3 []points.Point3
	if len(mags3) > 0 {
		pts3 = f.Points3D()
		field3, err = ev.Field3D(ctx, mags3, pts3)
		if err != nil {
			return fmt.Errorf("error evaluating 3D field: %w", err)
		}
		res.Add3D(mags3, pts3, field3)
	}

	logger.Info("evaluation finished",
		zap.String("run", res.ID),
		zap.Int("magnets", len(mags2)+len(mags3)),
		zap.Int("points", len(pts2)+len(pts3)),
	)

	printReport(f, res, pts2, pts3)

	if opts.Output != "" {
		if err := res.Save(opts.Output); err != nil {
			return fmt.Errorf("error saving results: %w", err)
		}
		fmt.Printf("  Results saved to: %s\n", opts.Output)
	}
	if opts.Echo != "" {
		if err := results.SaveConfig(opts.Echo, f); err != nil {
			return fmt.Errorf("error saving problem: %w", err)
		}
		fmt.Printf("  Problem saved to: %s\n", opts.Echo)
	}

	if opts.Map != "" {
		if f.Grid.Kind != config.GridGrid || len(field2) == 0 {
			return fmt.Errorf("a field map needs 2D magnets over a grid of kind %q", config.GridGrid)
		}
		g, err := diagram.NewFieldGrid(pts2, field2)
		if err != nil {
			return fmt.Errorf("error building field map: %w", err)
		}
		data := diagram.FieldMapData{Units: f.Grid.Units, Grid: g}
		for _, m := range mags2 {
			data.Outlines = append(data.Outlines, m.Outline())
		}
		if err := diagram.ExportFieldMap(data, opts.Map); err != nil {
			return fmt.Errorf("error exporting field map: %w", err)
		}
		fmt.Printf("  Field map exported to: %s\n", opts.Map)
	}

	profile, ok := lineProfile(f, pts2, field2, pts3, field3)
	if opts.Profile != "" {
		if !ok {
			return fmt.Errorf("a field profile needs a grid or grid3d of kind %q", config.GridLine)
		}
		if err := diagram.ExportFieldProfile(profile, opts.Profile); err != nil {
			return fmt.Errorf("error exporting field profile: %w", err)
		}
		fmt.Printf("  Field profile exported to: %s\n", opts.Profile)
	}
	if opts.ASCII {
		fmt.Println()
		if !ok {
			fmt.Println("  Terminal graph needs a line grid.")
		} else {
			fmt.Print(diagram.DrawFieldProfile(profile.Series[0].Values, "|B| (T) along the line", 70, 15))
		}
	}
	fmt.Println()
	return nil
}

// lineProfile returns the field along the 2D line grid, or the 3D one when
// there is no 2D line.
func lineProfile(f *config.File, pts2, field2 []points.Point2, pts3 []points.Point3, field3 []points.Point3) (diagram.ProfileData, bool) {
	switch {
	case f.Grid.Kind == config.GridLine && len(field2) > 0:
		p := diagram.ProfileFromField(pts2, field2)
		p.Units = f.Grid.Units
		return p, true
	case f.Grid3D.Kind == config.GridLine && len(field3) > 0:
		p := diagram.ProfileFromField3(pts3, field3)
		p.Units = f.Grid3D.Units
		return p, true
	}
	return diagram.ProfileData{}, false
}

func printReport(f *config.File, res *results.SimResult, pts2 []points.Point2, pts3 []points.Point3) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MAGNETIC FIELD EVALUATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Run: %s\n", res.ID)
	fmt.Println()

	if len(res.Magnets) > 0 {
		fmt.Println("2D MAGNETS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tKind\tCenter\tSize\tJr (T)\tφ (°)\tα (°)\n")
		fmt.Fprintf(w, "  ─\t────\t──────\t────\t──────\t─────\t─────\n")
		for i, m := range res.Magnets {
			fmt.Fprintf(w, "  %d\t%s\t(%g, %g)\t%s\t%.3f\t%.1f\t%.1f\n",
				i+1, m.Kind, m.Center[0], m.Center[1], describeSize(m), m.Magnetisation[0], m.Magnetisation[1], m.Alpha)
		}
		w.Flush()
		fmt.Println()

		title := fmt.Sprintf("2D FIELD (%s, units %s)", f.Grid.Kind, f.Grid.Units)
		fmt.Print(diagram.DrawSummaryBox(title, summaryLines(res.Summary, func(i int) string { return pts2[i].String() })))
		fmt.Println()
	}

	if len(res.Magnets3D) > 0 {
		fmt.Println("3D MAGNETS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tKind\tCenter\tSize\tJr (T)\tφ (°)\tθ (°)\n")
		fmt.Fprintf(w, "  ─\t────\t──────\t────\t──────\t─────\t─────\n")
		for i, m := range res.Magnets3D {
			fmt.Fprintf(w, "  %d\t%s\t(%g, %g, %g)\t%s\t%.3f\t%.1f\t%.1f\n",
				i+1, m.Kind, m.Center[0], m.Center[1], m.Center[2], joinFloats(m.Size, "×"),
				m.Magnetisation[0], m.Magnetisation[1], m.Magnetisation[2])
		}
		w.Flush()
		fmt.Println()

		title := fmt.Sprintf("3D FIELD (%s, units %s)", f.Grid3D.Kind, f.Grid3D.Units)
		fmt.Print(diagram.DrawSummaryBox(title, summaryLines(res.Summary3D, func(i int) string { return pts3[i].String() })))
		fmt.Println()
	}
}

func summaryLines(s *field.Summary, at func(int) string) []string {
	if s == nil || s.Points == 0 {
		return []string{"No points evaluated"}
	}
	lines := []string{
		fmt.Sprintf("Points evaluated:  %d", s.Points),
		fmt.Sprintf("Not finite:        %d", s.NonFinite),
	}
	if s.MaxIndex < 0 {
		return lines
	}
	return append(lines,
		fmt.Sprintf("Mean |B|:          %.5g T", s.Mean),
		fmt.Sprintf("Std dev |B|:       %.5g T", s.StdDev),
		fmt.Sprintf("Min |B|:           %.5g T", s.Min),
		fmt.Sprintf("Max |B|:           %.5g T at %s", s.Max, at(s.MaxIndex)),
	)
}

func describeSize(m config.Magnet) string {
	switch m.Kind {
	case config.KindPolygon:
		return fmt.Sprintf("%d sides, %s %g", m.NumSides, m.SizeType, m.Size[0])
	case config.KindCustomPolygon:
		return fmt.Sprintf("%d vertices", len(m.Vertices.X))
	default:
		return joinFloats(m.Size, "×")
	}
}

func joinFloats(v []float64, sep string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return strings.Join(parts, sep)
}
