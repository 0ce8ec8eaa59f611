package cmd

import (
	"github.com/jsphweid/guitarnotes/constants"
	"github.com/jsphweid/guitarnotes/server"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord identification over http",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.ListenAndServe(addr, currentTuning)
	},
}
