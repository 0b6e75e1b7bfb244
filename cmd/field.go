package cmd

import (
	"github.com/spf13/cobra"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Evaluate magnetic fields",
	Long: `Evaluate the magnetic flux density of one or more magnets.

Subcommands:
  run    - Evaluate a problem file over its grid
  demo   - Evaluate two opposed square magnets over a 100×100 grid
  point  - Evaluate a single magnet at a single point

Example TOML problem file:
  [grid]
  kind = "grid"
  start = [-2.0, -2.0]
  stop = [2.0, 2.0]
  numPoints = 100
  units = "mm"

  [[magnet]]
  kind = "rectangle"
  size = [1.0, 1.0]
  center = [-1.0, -0.5]
  magnetisation = [1.0, 90.0]`,
}

func init() {
	rootCmd.AddCommand(fieldCmd)
}
