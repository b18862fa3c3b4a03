package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var syncTimeout time.Duration

func init() {
	syncCmd.Flags().DurationVar(&syncTimeout, "timeout", 30*time.Minute, "max duration of the whole run")
	rootCmd.AddCommand(syncCmd)
}

// syncCmd re-registers hooks of every job, e.g. after the hook url or
// triggers of many jobs changed.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "register hooks of all jobs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext(syncTimeout)
		defer cancel()

		a := newApp()
		all := a.Jobs().All()

		failed := 0
		for i, job := range all {
			events, err := a.RegisterJob(ctx, job.Name())
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "#%d/%d: can't register %s: %s\n", i+1, len(all), job.Name(), err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "#%d/%d: registered %s: %s\n", i+1, len(all), job.Name(), events)
		}

		if failed != 0 {
			return fmt.Errorf("%d of %d jobs failed", failed, len(all))
		}
		return nil
	},
}
