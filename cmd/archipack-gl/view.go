package main

import (
	"github.com/spf13/cobra"

	"github.com/Benjirez/archipack/internal/app"
)

var (
	viewWidth  int32
	viewHeight int32
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer",
	Long:  "Open a window showing the annotated scene. The style file, when given, is reloaded on every change.",
	Args:  cobra.NoArgs,
	RunE:  runView,
}

func init() {
	viewCmd.Flags().Int32Var(&viewWidth, "width", 1400, "window width")
	viewCmd.Flags().Int32Var(&viewHeight, "height", 900, "window height")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return app.Run(app.Options{
		Width:      viewWidth,
		Height:     viewHeight,
		Config:     cfg,
		ConfigPath: configPath,
	})
}
