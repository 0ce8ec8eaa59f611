package cmd

import (
	"fmt"

	"github.com/jsphweid/guitarnotes/guitar"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:     "notes TAB...",
	Aliases: []string{"n"},
	Short:   "Names the notes and chord of a fingering in tab notation",
	Long: `Names the notes and chord of a fingering in tab notation, e.g.
  guitarnotes notes E0 A2 D2 G1 B0 E0
A repeated string name means the next string of that name up the neck.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return notes(args)
	},
}

func notes(tokens []string) error {
	names, err := guitar.FromTabNotation(tokens, currentTuning)
	if err != nil {
		return err
	}
	fmt.Println(heading("Notes:"), names)

	res, err := guitar.ChordFromTabNotation(tokens, currentTuning, relative)
	if errors.Is(err, guitar.ErrNoChord) {
		fmt.Println(warnStyle.Render("This is not a chord that I know."))
		return nil
	}
	if err != nil {
		return err
	}

	for i, name := range res.Names() {
		switch {
		case name == "":
		case i == 0:
			fmt.Println(heading("Chord:"), name)
		default:
			fmt.Printf("%v %v\n", heading(fmt.Sprintf("%v. inversion:", i)), name)
		}
	}
	fmt.Println()
	printBoard(res.Fretboard)
	return nil
}
