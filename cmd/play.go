package cmd

import (
	"github.com/spf13/cobra"

	"github.com/misaki/drillbox/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a practice session",
	Long:  "Start free play. With a game id, jump straight into that game; otherwise open the catalog menu.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game := ""
		if len(args) > 0 {
			game = args[0]
		}
		return runApp(cmd, game, quiz.ModePractice)
	},
}
