package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/oracle/internal/choice"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the presentation theme of a deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, _, err := selectionFlags(cmd)
		if err != nil {
			return err
		}

		sess, err := loadSession(cmd)
		if err != nil {
			return err
		}
		if err := sess.DeckChanged(deck); err != nil {
			return err
		}
		tag, err := sess.Theme()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tag)
		return nil
	},
}

func init() {
	themeCmd.Flags().String("deck", choice.AnyLabel, "Deck id, or \"any\"")
}
