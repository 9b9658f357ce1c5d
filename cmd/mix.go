package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
	"github.com/ftahirops/gridmix/util"
)

func newMixCmd(g *globalFlags) *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "mix",
		Short: "Print the generation mix for today and the next two days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupCLI(cmd, g)
			if err != nil {
				return err
			}
			mix, err := env.client.EnergyMix(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), mix)
			}
			return printMix(cmd.OutOrStdout(), mix)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON payload")
	return c
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printMix writes each day as a header line followed by its sources in
// display order.
func printMix(w io.Writer, mix model.EnergyMix) error {
	for i, day := range mix.Days {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s  %s Clean Energy\n",
			engine.FormatDay(day.Date), engine.FormatPct(day.CleanEnergyPercent)); err != nil {
			return err
		}
		for _, src := range engine.SourceList(day.Sources) {
			st := model.Lookup(src.Name)
			mark := ""
			if st.Clean {
				mark = " " + model.CleanIcon
			}
			if _, err := fmt.Fprintf(w, "  %s %-10s %6s%s\n",
				st.Icon, util.Capitalize(src.Name), engine.FormatPct(src.Value), mark); err != nil {
				return err
			}
		}
	}
	return nil
}
