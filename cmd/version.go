package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomagnet/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomagnet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gomagnet v%s\n", version.Version)
		fmt.Println("Analytical Magnetostatic Field Calculator")
		fmt.Printf("Built %s from commit %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
