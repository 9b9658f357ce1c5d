package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
)

func newWindowCmd(g *globalFlags) *cobra.Command {
	var (
		hours  int
		asJSON bool
	)
	c := &cobra.Command{
		Use:   "window",
		Short: "Find the charging window with the highest clean-energy share",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupCLI(cmd, g)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("hours") {
				hours = env.cfg.UI.DefaultDuration
			}
			if hours != model.ClampHours(hours) {
				return fmt.Errorf("--hours must be between %d and %d", model.MinChargingHours, model.MaxChargingHours)
			}
			win, err := env.client.OptimalWindow(cmd.Context(), hours)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), win)
			}
			loc, err := env.cfg.Location()
			if err != nil {
				return err
			}
			return printWindow(cmd.OutOrStdout(), win, hours, loc, time.Now())
		},
	}
	c.Flags().IntVar(&hours, "hours", model.DefaultChargingHours, "charging duration in hours (1-6)")
	c.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON payload")
	return c
}

func printWindow(w io.Writer, win model.OptimalWindow, hours int, loc *time.Location, now time.Time) error {
	_, err := fmt.Fprintf(w,
		"Optimal Charging Window (%d h)\n  Start Time    %s (%s)\n  End Time      %s\n  Clean Energy  %s\n",
		hours,
		engine.FormatWindowTime(win.StartTime, loc), humanize.RelTime(win.StartTime, now, "ago", "from now"),
		engine.FormatWindowTime(win.EndTime, loc),
		engine.FormatPct(win.CleanEnergyPercent))
	return err
}
