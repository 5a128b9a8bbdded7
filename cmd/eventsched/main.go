package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	eventscheduler "github.com/TudorHulban/eventscheduler"
)

var flagResources int

func main() {
	rootCmd := &cobra.Command{
		Use:   "eventsched",
		Short: "Compute feasible schedules for dependent events over a fixed worker pool",
		Long: `Eventsched holds a set of named events with durations, dependencies,
worker requirements, priorities and optional deadlines, and computes a
deterministic resource-constrained schedule for them.`,
	}

	rootCmd.PersistentFlags().IntVar(&flagResources, "resources", 4, "Total workers available")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(scheduleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive scheduling shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, errNew := newShell(flagResources)
			if errNew != nil {
				return errNew
			}

			return shell.loop()
		},
	}
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <file.json>",
		Short: "Load an event set from JSON, compute and print its schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduler, errNew := eventscheduler.NewScheduler(
				&eventscheduler.ParamsNewScheduler{
					TotalResources: flagResources,
				},
			)
			if errNew != nil {
				return errNew
			}

			if errLoad := scheduler.LoadFromFile(args[0], true); errLoad != nil {
				return errLoad
			}

			_, errCompute := scheduler.ComputeSchedule()
			if errCompute != nil {
				var deadlock eventscheduler.ErrSchedulingDeadlock

				if !errors.As(errCompute, &deadlock) {
					return errCompute
				}

				// partial schedule, still worth printing
				fmt.Fprintf(
					os.Stderr,
					"%s %s\n",
					styleWarning("warning:"),
					deadlock.Error(),
				)
			}

			return scheduler.ScheduleReport(os.Stdout)
		},
	}
}
