package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/guitarnotes/guitar"
	"github.com/jsphweid/guitarnotes/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify NOTE...",
	Short: "Names the chord formed by note names or midi key numbers",
	Long: `Names the chord formed by note names or midi key numbers, e.g.
  guitarnotes identify c e g bb
  guitarnotes identify 57 60 64`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}
		res, err := guitar.Identify(notes, currentTuning, relative)
		if errors.Is(err, guitar.ErrNoChord) {
			fmt.Println(warnStyle.Render("This is not a chord that I know."))
			return nil
		}
		if err != nil {
			return err
		}
		for i, name := range res.Names() {
			fmt.Printf("%v %v\n", heading(fmt.Sprintf("%v.", i)), name)
		}
		fmt.Println()
		printBoard(res.Fretboard)
		return nil
	},
}

// parseNotes reads names as pitch classes and numbers as midi keys.
func parseNotes(args []string) ([]note.Note, error) {
	var res []note.Note
	for _, arg := range args {
		if key, err := strconv.ParseUint(arg, 10, 8); err == nil {
			res = append(res, note.Note(key))
			continue
		}
		n, ok := note.FromName(arg)
		if !ok {
			return nil, errors.Errorf("could not parse note %q", arg)
		}
		res = append(res, n)
	}
	return res, nil
}
