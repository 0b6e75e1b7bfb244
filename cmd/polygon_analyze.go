package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomagnet/internal/config"
	"github.com/alexiusacademia/gomagnet/internal/magnets"
)

var polygonAnalyzeFile string

var polygonAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Decompose the polygon magnets of a problem file",
	Long: `Decompose every polygon and customPolygon magnet of a problem file into
boundary current sheets, with its area and centroid.

Examples:
  gomagnet polygon analyze --file problem.toml
  gomagnet polygon analyze -f shapes.yaml`,
	Run: runPolygonAnalyze,
}

func init() {
	polygonCmd.AddCommand(polygonAnalyzeCmd)

	polygonAnalyzeCmd.Flags().StringVarP(&polygonAnalyzeFile, "file", "f", "", "Path to problem file [required]")
	polygonAnalyzeCmd.MarkFlagRequired("file")
}

func runPolygonAnalyze(cmd *cobra.Command, args []string) {
	f, err := config.Load(polygonAnalyzeFile)
	if err != nil {
		fmt.Printf("Error loading problem: %v\n", err)
		return
	}
	mags, err := f.Build2D()
	if err != nil {
		fmt.Printf("Error building magnets: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     POLYGON DECOMPOSITION")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	found := 0
	for i, m := range mags {
		p, ok := m.(*magnets.Polygon)
		if !ok {
			continue
		}
		found++
		fmt.Println()
		fmt.Printf("  Magnet %d (%s)\n", i+1, f.Magnets[i].Kind)
		fmt.Println()
		printPolygon(p)
	}

	if found == 0 {
		fmt.Println()
		fmt.Printf("  No polygon magnets in %s.\n", polygonAnalyzeFile)
		fmt.Println()
	}
}
