package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/oracle/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync <url>",
	Short: "Download a dataset and install it as the local copy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		source := args[0]
		if !store.IsRemote(source) {
			return fmt.Errorf("sync needs an http(s) URL, got %q", source)
		}

		target, _ := cmd.Flags().GetString("to")
		if target == "" {
			if target, err = store.DefaultDBPath(); err != nil {
				return err
			}
		}
		if store.IsRemote(target) {
			return fmt.Errorf("sync target must be a local path; set --to")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Downloading %s...\n", source)
		opts := cfg.FetchOptions()
		opts.NoCache = true
		data, err := store.Fetch(cmd.Context(), source, opts)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "Validating snapshot...")
		st, err := store.Load(data)
		if err != nil {
			return err
		}

		if err := store.Save(data, target); err != nil {
			return fmt.Errorf("install dataset: %w", err)
		}
		fmt.Fprintf(out, "Installed %d decks, %d categories, %d messages to %s\n",
			st.DeckCount(), st.CategoryCount(), st.MessageCount(), target)
		return nil
	},
}

func init() {
	syncCmd.Flags().String("to", "", "Destination path (default: $XDG_DATA_HOME/oracle/oracle.db)")
}
