package cmd

import (
	"fmt"

	"github.com/jsphweid/guitarnotes/analysis"
	"github.com/jsphweid/guitarnotes/constants"
	"github.com/jsphweid/guitarnotes/db"
	"github.com/jsphweid/guitarnotes/file"
	"github.com/jsphweid/guitarnotes/model"
	"github.com/jsphweid/guitarnotes/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	maxFiles     int
	outDir       string
	withMetadata bool
	fromTick     uint64
	maxNotes     int
	topChords    int
)

func init() {
	analyzeCmd.Flags().IntVar(&maxFiles, "max", 0, "analyze at most this many files, 0 for all")
	analyzeCmd.Flags().StringVar(&outDir, "out", constants.GetIndexDir(), "directory the json report is written to")
	analyzeCmd.Flags().BoolVar(&withMetadata, "metadata", false, "look up file metadata in DynamoDB (METADATA_ENDPOINT)")
	analyzeCmd.Flags().Uint64Var(&fromTick, "from-tick", 0, "only analyze from this tick on")
	analyzeCmd.Flags().IntVar(&maxNotes, "max-notes", 0, "only analyze this many note events per track")
	analyzeCmd.Flags().IntVar(&topChords, "top", 10, "how many of the most common chords to print")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze DIR",
	Short: "Names the chords in every midi file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := analysis.Options{TicksOffset: fromTick, MaxNotes: maxNotes}
		if withMetadata {
			store, err := db.FromEnv()
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("--metadata needs METADATA_ENDPOINT to be set")
			}
			opts.Metadata = store
		}

		report, path, err := Analyze(args[0], maxFiles, outDir, opts)
		if err != nil {
			return err
		}
		printReport(report)
		fmt.Println(dimStyle.Render("Report written to " + path))
		return nil
	},
}

// Analyze names the chords of up to maxNum midi files under root and writes
// the report to out.
func Analyze(root string, maxNum int, out string, opts analysis.Options) (*model.Report, string, error) {
	paths, err := util.GatherAllMidiPaths(root, maxNum)
	if err != nil {
		return nil, "", err
	}
	if len(paths) == 0 {
		return nil, "", errors.Errorf("no midi files under %v", root)
	}

	report := analysis.New(opts).AnalyzeAll(file.CreateFileNumMap(paths))
	path, err := util.WriteJSON(out, report.Id+".json", report)
	if err != nil {
		return nil, "", err
	}
	return report, path, nil
}

func printReport(report *model.Report) {
	fmt.Printf("%v %v (%v skipped)\n", heading("Files:"), len(report.Files), len(report.Skipped))
	fmt.Printf("%v %v, %.1f%% recognized\n", heading("Sonorities:"), report.Sonorities, report.RecognizedRate*100)
	fmt.Printf("%v %.2f (sd %.2f)\n", heading("Notes per sonority:"), report.MeanSize, report.SizeStdDev)
	fmt.Println(heading("Most common chords:"))
	for i, c := range report.Histogram {
		if i >= topChords {
			break
		}
		fmt.Printf("  %-12v %v\n", c.Name, c.Count)
	}
}
