package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/guitarnotes/guitar"
	"github.com/jsphweid/guitarnotes/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

func scaleNames() string {
	var names []string
	for _, t := range scale.Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

var scaleCmd = &cobra.Command{
	Use:     "scale SCALE ROOT",
	Aliases: []string{"s"},
	Short:   "Prints a scale on the fretboard",
	Long: `Prints a scale on the fretboard with its degrees and, for diatonic
scales, the chord on every degree. Known scales: ` + scaleNames() + `.
The root may also come first.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := guitar.ScaleOnFretboardEitherOrder(args[0], args[1], currentTuning, relative)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(res.Summary(), " "))
		fmt.Println(strings.Join(res.Degrees, " "))
		fmt.Println()
		printBoard(res.Fretboard)
		return nil
	},
}
