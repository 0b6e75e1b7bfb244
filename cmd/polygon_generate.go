package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomagnet/internal/magnets"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

var (
	genSides     int
	genSize      float64
	genSizeType  string
	genAlpha     float64
	genCenterX   float64
	genCenterY   float64
	genJr        float64
	genPhi       float64
	genAngleUnit string
)

var polygonGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a regular polygon magnet",
	Long: `Generate the vertices of a regular polygon and decompose it into
boundary current sheets.

The size may be given as the side length, the apothem (center to edge
midpoint) or the radius (center to vertex).

Examples:
  gomagnet polygon generate --sides 6 --size 1 --size-type radius
  gomagnet polygon generate --sides 3 --size 2 --alpha 15 --phi 0`,
	Run: runPolygonGenerate,
}

func init() {
	polygonCmd.AddCommand(polygonGenerateCmd)

	polygonGenerateCmd.Flags().IntVarP(&genSides, "sides", "n", 4, "Number of sides (at least 3)")
	polygonGenerateCmd.Flags().Float64Var(&genSize, "size", 1, "Polygon size")
	polygonGenerateCmd.Flags().StringVar(&genSizeType, "size-type", "side", "Size meaning: side, apothem, radius")
	polygonGenerateCmd.Flags().Float64Var(&genAlpha, "alpha", 0, "Polygon rotation")
	polygonGenerateCmd.Flags().Float64Var(&genCenterX, "cx", 0, "Center x")
	polygonGenerateCmd.Flags().Float64Var(&genCenterY, "cy", 0, "Center y")
	polygonGenerateCmd.Flags().Float64Var(&genJr, "jr", 1, "Remnant magnetisation (T)")
	polygonGenerateCmd.Flags().Float64Var(&genPhi, "phi", 90, "Magnetisation angle in the polygon frame")
	polygonGenerateCmd.Flags().StringVar(&genAngleUnit, "angle-unit", "degrees", "Unit of --alpha and --phi: degrees, radians")
}

func runPolygonGenerate(cmd *cobra.Command, args []string) {
	unit := points.ParseUnit(genAngleUnit)
	spec := magnets.Regular{
		Sides:     genSides,
		Dimension: magnets.ParseDimension(genSizeType),
		Size:      genSize,
	}

	p, err := magnets.NewPolygon(spec, points.NewPoint2(genCenterX, genCenterY),
		points.NewAngle(genAlpha, unit), genJr, points.NewAngle(genPhi, unit))
	if err != nil {
		fmt.Printf("Error generating polygon: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     REGULAR POLYGON MAGNET")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	printPolygon(p)
}
