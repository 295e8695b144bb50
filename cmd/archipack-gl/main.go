package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Benjirez/archipack/pkg/overlay"
	"github.com/Benjirez/archipack/version"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "archipack-gl",
	Short: "Interactive 3D annotation overlays",
	Long: `archipack-gl draws dimension lines, arcs, handles and labels projected
from a 3D scene onto the screen, interactively or into an image.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "style file (YAML)")
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadConfig returns the style file content, or the defaults without one
func loadConfig() (overlay.Config, error) {
	if configPath == "" {
		return overlay.DefaultConfig(), nil
	}
	cfg, err := overlay.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	slog.Debug("loaded style file", "path", configPath)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
