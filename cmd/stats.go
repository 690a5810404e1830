package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show message counts per deck and category",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(cmd)
		if err != nil {
			return err
		}
		st, err := sess.Store()
		if err != nil {
			return err
		}

		cats := slices.Collect(st.Categories())
		headers := []string{"Deck"}
		for _, c := range cats {
			headers = append(headers, c.Name)
		}
		headers = append(headers, "Total")

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...)

		for _, ds := range st.Stats() {
			row := []string{ds.Deck.Name}
			for _, c := range cats {
				row = append(row, strconv.Itoa(ds.ByCategory[c.ID]))
			}
			row = append(row, strconv.Itoa(ds.Total))
			t.Row(row...)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())
		fmt.Fprintf(out, "\n%d decks, %d categories, %d messages\n",
			st.DeckCount(), st.CategoryCount(), st.MessageCount())
		return nil
	},
}
