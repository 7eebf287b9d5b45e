package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer statistics per game",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().AnswerStats(cmd.Context())
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No answers recorded yet. Play a game first!")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "GAME\tANSWERED\tCORRECT\tACCURACY")
		for _, gs := range stats {
			acc := 0.0
			if gs.Total > 0 {
				acc = float64(gs.Correct) / float64(gs.Total) * 100
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", gs.GameID, gs.Total, gs.Correct, acc)
		}
		return w.Flush()
	},
}
