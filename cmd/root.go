package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/guitarnotes/constants"
	"github.com/jsphweid/guitarnotes/fretboard"
	"github.com/jsphweid/guitarnotes/tuning"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	tuningName string
	relative   bool
	verbose    bool

	currentTuning *tuning.Tuning
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
)

var rootCmd = &cobra.Command{
	Use:   "guitarnotes",
	Short: "Prints out scales, chords and notes on the fretboard",
	Long: `Prints out scales, chords and notes on the fretboard to the shell.
Also names the chords in midi files, live midi input and over http.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		t, ok := tuning.FromName(tuningName)
		if !ok {
			return errors.Wrapf(tuning.ErrUnknownTuning, "%v (known: %v)", tuningName, strings.Join(tuning.Names(), ", "))
		}
		currentTuning = t
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tuningName, "tuning", "t", constants.GetTuning(), "guitar tuning, see the tunings command")
	rootCmd.PersistentFlags().BoolVarP(&relative, "relative", "r", false, "show scale degrees instead of note names")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setupLogging() error {
	level, err := logrus.ParseLevel(constants.GetLogLevel())
	if err != nil {
		return errors.Wrap(err, "bad GUITARNOTES_LOG_LEVEL")
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	return nil
}

func heading(label string) string {
	return headingStyle.Render(label)
}

// printBoard frames a rendered fretboard with fret numbers like a chart.
func printBoard(board string) {
	numbers := dimStyle.Render(fretboard.FretNumbers())
	fmt.Println(numbers)
	fmt.Println()
	fmt.Println(board)
	fmt.Println()
	fmt.Println(numbers)
	fmt.Println(dimStyle.Render(fretboard.FretMarkers()))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
