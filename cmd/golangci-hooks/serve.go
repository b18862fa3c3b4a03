package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the jobs hooks API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		newApp().RunForever()
	},
}
