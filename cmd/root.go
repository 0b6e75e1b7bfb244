package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gomagnet/internal/field"
	"github.com/alexiusacademia/gomagnet/internal/logging"
	"github.com/alexiusacademia/gomagnet/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gomagnet",
	Short: "Analytical magnetostatic field calculator",
	Long: `gomagnet - Go Analytical Magnet Field Calculator

A CLI tool that computes the magnetic flux density of permanent magnets
and solenoids from closed-form solutions, without meshing.

This tool can:
  - Evaluate 2D fields of rectangles, circles and polygons
  - Evaluate 3D fields of rectangular prisms and solenoids
  - Decompose polygons into boundary current sheets
  - Plot field maps and profiles
  - Export 3D magnet layouts as STL

Problems are described in TOML, JSON or YAML files.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gomagnet v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Analytical Magnet Field Calculator                   ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" © "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Closed-form magnetic fields of permanent magnets and solenoids.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Rectangles, circles and polygons in 2D")
		fmt.Println("    • Rectangular prisms and solenoids in 3D")
		fmt.Println("    • Field maps, profiles and terminal graphs")
		fmt.Println("    • STL export of 3D layouts")
		fmt.Println()
		fmt.Println("  Use 'gomagnet --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels a running evaluation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./gomagnet.yaml or $HOME/.gomagnet/gomagnet.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int("workers", 0, "parallel workers for field evaluation (0 = one per CPU)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.SetDefault("chunk_size", field.DefaultChunkSize)
}

// initConfig reads the optional settings file and GOMAGNET_* environment
// variables. Flags take precedence over both.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".gomagnet"))
		}
		viper.SetConfigName("gomagnet")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("GOMAGNET")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
	}
}

// newLogger builds the logger from the effective settings, falling back to
// a no-op logger when the level is invalid.
func newLogger() *zap.Logger {
	logger, err := logging.New(viper.GetString("log_level"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

func newEvaluator(logger *zap.Logger) *field.Evaluator {
	return &field.Evaluator{
		Workers:   viper.GetInt("workers"),
		ChunkSize: viper.GetInt("chunk_size"),
		Logger:    logger,
	}
}
