package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/guitarnotes/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuningsCmd)
}

var tuningsCmd = &cobra.Command{
	Use:   "tunings",
	Short: "Lists known tunings",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range tuning.Names() {
			t := tuning.MustFromName(name)
			fmt.Println(heading(fmt.Sprintf("%-8v", name)), strings.ToUpper(strings.Join(t.StringNames(), " ")))
		}
	},
}
