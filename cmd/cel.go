package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomagnet/internal/elliptic"
)

var (
	celKc float64
	celP  float64
	celC  float64
	celS  float64
)

var celCmd = &cobra.Command{
	Use:   "cel",
	Short: "Evaluate Bulirsch's complete elliptic integral",
	Long: `Evaluate the generalized complete elliptic integral

  C(kc, p, c, s) = ∫ (c cos²φ + s sin²φ) / ((cos²φ + p sin²φ) √(cos²φ + kc² sin²φ)) dφ

over φ from 0 to π/2. The Legendre integrals follow as
K = C(kc, 1, 1, 1) and E = C(kc, 1, 1, kc²).

Examples:
  gomagnet cel --kc 0.5
  gomagnet cel --kc 0.8 --p 2 --c 1 --s 0.5`,
	Run: runCel,
}

func init() {
	rootCmd.AddCommand(celCmd)

	celCmd.Flags().Float64Var(&celKc, "kc", 1, "Complementary modulus kc (nonzero)")
	celCmd.Flags().Float64Var(&celP, "p", 1, "Parameter p")
	celCmd.Flags().Float64Var(&celC, "c", 1, "Coefficient c")
	celCmd.Flags().Float64Var(&celS, "s", 1, "Coefficient s")
}

func runCel(cmd *cobra.Command, args []string) {
	value := elliptic.Cel(celKc, celP, celC, celS)

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  C(%g, %g, %g, %g):\t%.15g\n", celKc, celP, celC, celS, value)
	if k2 := 1 - celKc*celKc; k2 >= 0 {
		fmt.Fprintf(w, "  Modulus k:\t%.15g\n", math.Sqrt(k2))
	}
	fmt.Fprintf(w, "  K(k):\t%.15g\n", elliptic.K(celKc))
	fmt.Fprintf(w, "  E(k):\t%.15g\n", elliptic.E(celKc))
	w.Flush()
	fmt.Println()

	if math.IsNaN(value) {
		fmt.Println("  ⚠ The integral diverges or did not converge for these arguments.")
		fmt.Println()
	}
}
