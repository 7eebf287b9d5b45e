package cmd

import (
	"github.com/spf13/cobra"

	"github.com/misaki/drillbox/internal/quiz"
)

var dailyCmd = &cobra.Command{
	Use:   "daily <game>",
	Short: "Start today's daily mission for a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args[0], quiz.ModeDaily)
	},
}
