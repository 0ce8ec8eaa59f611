package cmd

import (
	"github.com/jsphweid/guitarnotes/guitar"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(allCmd)
}

var allCmd = &cobra.Command{
	Use:     "all NOTE...",
	Aliases: []string{"a"},
	Short:   "Prints all positions of the given notes on the fretboard",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := guitar.AllNotesOnFretboard(args, currentTuning)
		if err != nil {
			return err
		}
		printBoard(board)
		return nil
	},
}
