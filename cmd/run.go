package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/oracle/internal/app"
)

// runApp resolves the dataset source and launches the TUI. The dataset is
// fetched inside the TUI so the splash and spinner show while it loads.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Source: cfg.Source,
		Fetch:  cfg.FetchOptions(),
	})
}
