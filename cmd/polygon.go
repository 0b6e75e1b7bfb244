package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomagnet/internal/magnets"
)

var polygonCmd = &cobra.Command{
	Use:   "polygon",
	Short: "Polygon magnet geometry and decomposition",
	Long: `Inspect polygonal magnets.

A uniformly magnetised polygon is equivalent to a set of current sheets on
its edges. Each sheet has a density Kr = J·n, where n is the outward normal
of the edge.

Subcommands:
  generate  - Build a regular polygon and list its vertices and sheets
  analyze   - Decompose every polygon magnet of a problem file`,
}

func init() {
	rootCmd.AddCommand(polygonCmd)
}

// printPolygon writes the geometry, vertices and boundary sheets of p
func printPolygon(p *magnets.Polygon) {
	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if spec, ok := p.Spec().(magnets.Regular); ok {
		fmt.Fprintf(w, "  Sides:\t%d\n", spec.Sides)
		fmt.Fprintf(w, "  Size:\t%s %g\n", spec.Dimension, spec.Size)
		fmt.Fprintf(w, "  Circumradius:\t%.6g\n", spec.CircumRadius())
	} else {
		fmt.Fprintf(w, "  Vertices:\t%d (custom)\n", p.NumVertices())
	}
	fmt.Fprintf(w, "  Center:\t%s\n", p.Center())
	fmt.Fprintf(w, "  Rotation (α):\t%s\n", p.Alpha())
	fmt.Fprintf(w, "  Area:\t%.6g\n", p.Area())
	fmt.Fprintf(w, "  Centroid:\t%s\n", p.Centroid())
	fmt.Fprintf(w, "  Jr:\t%.4f T at %s\n", p.Magnetisation().Jr(), p.Magnetisation().Phi())
	w.Flush()
	fmt.Println()

	fmt.Println("VERTICES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tX\tY\n")
	fmt.Fprintf(w, "  ─\t─\t─\n")
	for i, v := range p.Vertices() {
		fmt.Fprintf(w, "  %d\t%.6g\t%.6g\n", i+1, v.X, v.Y)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("BOUNDARY SHEETS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCenter\tLength\tβ\tKr (T)\n")
	fmt.Fprintf(w, "  ─\t──────\t──────\t─\t──────\n")
	for i, s := range p.Segments() {
		fmt.Fprintf(w, "  %d\t%s\t%.6g\t%s\t%.6g\n", i+1, s.Center(), s.Length(), s.Beta().ToDegrees(), s.Kr())
	}
	w.Flush()
	fmt.Println()
}
