package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/oracle/internal/choice"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks in id order",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(cmd)
		if err != nil {
			return err
		}
		decks, err := sess.Decks()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, d := range decks {
			fmt.Fprintf(out, "%6d  %s\n", d.ID, d.Name)
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories, marking those a deck cannot reach",
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
		cats, err := sess.Categories()
		if err != nil {
			return err
		}
		visible, err := sess.Visibility()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range cats {
			mark := ""
			if !visible[c.ID] {
				mark = "  (hidden)"
			}
			fmt.Fprintf(out, "%6d  %s%s\n", c.ID, c.Name, mark)
		}
		return nil
	},
}

func init() {
	categoriesCmd.Flags().String("deck", choice.AnyLabel, "Deck id, or \"any\"")
}
