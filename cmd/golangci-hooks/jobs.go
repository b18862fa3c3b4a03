package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var timeout time.Duration

func init() {
	for _, c := range []*cobra.Command{registerCmd, unregisterCmd} {
		c.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "max duration of the whole run")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(planCmd)
}

func runContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

var registerCmd = &cobra.Command{
	Use:   "register <job>",
	Short: "create or update the hook of every repository of the job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext(timeout)
		defer cancel()

		events, err := newApp().RegisterJob(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "registered %s: %s\n", args[0], events)
		return nil
	},
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister <job>",
	Short: "remove hooks of the job's repositories not used by other jobs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext(timeout)
		defer cancel()

		if err := newApp().UnregisterJob(ctx, args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "unregistered %s\n", args[0])
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan [job]",
	Short: "print events the hooks of jobs are subscribed to",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		var names []string
		if len(args) != 0 {
			names = args
		} else {
			for _, j := range a.Jobs().All() {
				names = append(names, j.Name())
			}
		}

		for _, name := range names {
			events, err := a.PlanJob(context.Background(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, events)
		}

		return nil
	},
}
