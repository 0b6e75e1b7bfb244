package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gomagnet/internal/config"
	"github.com/alexiusacademia/gomagnet/internal/solid"
)

var (
	exportFile   string
	exportOutput string
	exportCells  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the 3D magnets of a problem file as STL",
	Long: `Mesh every [[magnet3d]] entry of a problem file and write the union
as an STL file. Prisms become boxes and solenoids cylinders, each placed at
its center with its orientation.

Examples:
  gomagnet export -f problem.toml -o magnets.stl
  gomagnet export -f problem.toml --cells 200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		f, err := config.Load(exportFile)
		if err != nil {
			return fmt.Errorf("error loading problem: %w", err)
		}
		mags, err := f.Build3D()
		if err != nil {
			return fmt.Errorf("error building magnets: %w", err)
		}

		n, err := solid.Export(exportOutput, mags, exportCells)
		if err != nil {
			return fmt.Errorf("error exporting STL: %w", err)
		}
		logger.Info("mesh written",
			zap.String("path", exportOutput),
			zap.Int("magnets", len(mags)),
			zap.Int("triangles", n),
		)

		fmt.Println()
		fmt.Printf("  %d magnets meshed into %d triangles\n", len(mags), n)
		fmt.Printf("  STL exported to: %s\n", exportOutput)
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Path to problem file [required]")
	exportCmd.MarkFlagRequired("file")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "magnets.stl", "STL output path")
	exportCmd.Flags().IntVar(&exportCells, "cells", solid.DefaultCells, "Marching cubes cells along the longest side")
}
