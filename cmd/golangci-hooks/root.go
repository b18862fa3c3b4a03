package main

import (
	"github.com/golangci/golangci-hooks/internal/shared/config"
	"github.com/golangci/golangci-hooks/pkg/app"
	"github.com/spf13/cobra"
)

var envFiles []string

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"},
		"dotenv files to load before reading config, later files override earlier ones")
}

var rootCmd = &cobra.Command{
	Use:           "golangci-hooks",
	Short:         "keeps GitHub repository hooks in sync with CI jobs",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFiles(envFiles...)
	},
}

func newApp() *app.App {
	return app.NewApp()
}
