package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misaki/drillbox/internal/app"
	"github.com/misaki/drillbox/internal/catalog"
	"github.com/misaki/drillbox/internal/quiz"
	"github.com/misaki/drillbox/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "drillbox",
	Short: "Mini-game arcade for young learners",
	Long:  "Drillbox — terminal mini-games that drill arithmetic and shape recognition, with daily missions and streaks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", quiz.ModePractice)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DRILLBOX_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then DRILLBOX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// runApp launches the TUI, optionally jumping straight into a game.
func runApp(cmd *cobra.Command, startGame string, mode quiz.Mode) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load game catalog: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Catalog:   cat,
		Progress:  st.ProgressRepo(),
		Events:    st.EventRepo(),
		StartGame: startGame,
		StartMode: mode,
	})
}
