package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomagnet/internal/config"
)

var fieldDemoOpts outputOptions

var fieldDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Evaluate two opposed square magnets",
	Long: `Evaluate the demonstration problem: two 1×1 square magnets centered at
(-1, -0.5) and (1, -0.5), magnetised with +1 T and -1 T along 90°,
over a 100×100 grid from (-2, -2) to (2, 2).

Examples:
  gomagnet field demo
  gomagnet field demo -o demo.json --map demo.png
  gomagnet field demo --echo demo.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return evaluateProblem(cmd.Context(), config.Demo(), fieldDemoOpts)
	},
}

func init() {
	fieldCmd.AddCommand(fieldDemoCmd)

	addOutputFlags(fieldDemoCmd, &fieldDemoOpts, "example_out.json")
}
