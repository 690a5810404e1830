package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/oracle/internal/choice"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw messages for a deck and category",
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, category, err := selectionFlags(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", count)
		}

		sess, err := loadSession(cmd)
		if err != nil {
			return err
		}

		if err := sess.DeckChanged(deck); err != nil {
			return err
		}
		ok, err := sess.CategoryChanged(category)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("category %s has no messages in deck %s", category, deck)
		}

		out := cmd.OutOrStdout()
		for range count {
			res, err := sess.DrawRequested()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, res.Text())
		}
		return nil
	},
}

// selectionFlags parses --deck and --category. Commands that do not
// define --category get choice.Any for it.
func selectionFlags(cmd *cobra.Command) (deck, category choice.Choice, err error) {
	if s, _ := cmd.Flags().GetString("deck"); s != "" {
		if deck, err = choice.Parse(s); err != nil {
			return deck, category, fmt.Errorf("--deck: %w", err)
		}
	}
	if f := cmd.Flags().Lookup("category"); f != nil {
		if category, err = choice.Parse(f.Value.String()); err != nil {
			return deck, category, fmt.Errorf("--category: %w", err)
		}
	}
	return deck, category, nil
}

func init() {
	drawCmd.Flags().String("deck", choice.AnyLabel, "Deck id, or \"any\"")
	drawCmd.Flags().String("category", choice.AnyLabel, "Category id, or \"any\"")
	drawCmd.Flags().IntP("count", "n", 1, "Number of independent draws")
}
