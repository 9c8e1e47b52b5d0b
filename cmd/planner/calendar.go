package main

import (
	"fmt"
	"time"

	"github.com/diegoclair/gpns-planner/internal/render"
	"github.com/spf13/cobra"
)

var (
	calendarYear  int
	calendarMonth int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar TEMPLATE",
	Short: "Print the month calendar of a template",
	Example: `  planner calendar Est
  planner calendar Ouest --year 2025 --month 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		a.loadTemplates(ctx, logger)

		now := time.Now().In(cfg.Location)
		if calendarYear == 0 {
			calendarYear = now.Year()
		}
		if calendarMonth == 0 {
			calendarMonth = int(now.Month())
		}

		cm, err := a.services.Planning.Calendar(ctx, args[0], calendarYear, time.Month(calendarMonth))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), render.Calendar(cm))
		return nil
	},
}

func init() {
	calendarCmd.Flags().IntVar(&calendarYear, "year", 0, "year (default current)")
	calendarCmd.Flags().IntVar(&calendarMonth, "month", 0, "month 1-12 (default current)")
}
