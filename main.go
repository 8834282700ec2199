package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var demoStart bool

func main() {
	// A .env next to the binary can hold the serve defaults; absence is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "slider",
		Short: "A sliding-tile puzzle for the terminal",
		Long: "slider is the classic 15-puzzle: slide the numbered tiles around\n" +
			"the single gap until they read 1 through 15 in order.",
		RunE: runPlay,
	}
	root.PersistentFlags().BoolVar(&demoStart, "demo", false,
		"start from the fixed demonstration grid instead of a random shuffle")
	root.AddCommand(serveCommand(), versionCommand())

	if err := root.Execute(); err != nil {
		log.Fatal("slider exited", "error", err)
	}
}

// runPlay runs the game on the local terminal until the player quits.
func runPlay(cmd *cobra.Command, args []string) error {
	program := tea.NewProgram(NewGameModel(0, 0, demoStart), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
